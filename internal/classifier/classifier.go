// Package classifier recognizes the document type of a statement from the
// text of its first page.
package classifier

import (
	"sync"

	"github.com/cloudflare/ahocorasick"

	"fjacquet/tdstatement/internal/logging"
	"fjacquet/tdstatement/internal/parser"
	"fjacquet/tdstatement/internal/parsererror"
	"fjacquet/tdstatement/internal/schema"
)

const snippetLength = 80

// Classifier finds registry markers in a single pass over the page. When
// several markers are present the registry declared first wins.
type Classifier struct {
	parser.BaseParser
	registries []*schema.Registry

	// ahocorasick.Matcher keeps per-call state, so Match calls are serialized.
	mu      sync.Mutex
	matcher *ahocorasick.Matcher
}

// New builds a Classifier over registries, in priority order.
func New(registries []*schema.Registry, logger logging.Logger) *Classifier {
	c := &Classifier{
		BaseParser: parser.NewBaseParser(logger),
		registries: registries,
	}

	if len(registries) > 0 {
		markers := make([][]byte, len(registries))
		for i, r := range registries {
			markers[i] = []byte(r.Marker)
		}
		c.matcher = ahocorasick.NewMatcher(markers)
	}

	return c
}

// Classify returns the registry whose marker appears on firstPage, or an
// *parsererror.UnrecognizedDocumentTypeError.
func (c *Classifier) Classify(firstPage string) (*schema.Registry, error) {
	hits := c.match(firstPage)

	best := -1
	for _, idx := range hits {
		if idx < 0 || idx >= len(c.registries) {
			continue
		}
		if best == -1 || idx < best {
			best = idx
		}
	}

	if best == -1 {
		return nil, &parsererror.UnrecognizedDocumentTypeError{
			Snippet: parsererror.Snippet(firstPage, snippetLength),
		}
	}

	reg := c.registries[best]
	c.GetLogger().Debug("Classified document",
		logging.Field{Key: logging.FieldDocumentType, Value: reg.Type},
		logging.Field{Key: logging.FieldCount, Value: len(hits)})
	return reg, nil
}

func (c *Classifier) match(text string) []int {
	if c.matcher == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.matcher.Match([]byte(text))
}
