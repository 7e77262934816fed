package export

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"fjacquet/tdstatement/internal/models"
)

// WriteJSONLines writes one JSON object per document, each on its own line.
func WriteJSONLines(w io.Writer, docs ...*models.Document) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, doc := range docs {
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode %s: %w", doc.Identity.Filename, err)
		}
	}
	return nil
}

// WriteYAML writes the documents as a YAML stream, one document each. Values
// go through their JSON form so dates, decimals and field names match the
// JSON output.
func WriteYAML(w io.Writer, docs ...*models.Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, doc := range docs {
		data, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", doc.Identity.Filename, err)
		}
		var generic map[string]any
		if err := json.Unmarshal(data, &generic); err != nil {
			return fmt.Errorf("failed to encode %s: %w", doc.Identity.Filename, err)
		}
		if err := enc.Encode(generic); err != nil {
			return fmt.Errorf("failed to encode %s: %w", doc.Identity.Filename, err)
		}
	}
	return enc.Close()
}
