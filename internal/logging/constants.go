package logging

// Standardized field names for structured logging.
// Every diagnostic event is one JSON object on stderr, so consistent keys
// keep the stream filterable.
const (
	FieldFile         = "file_path"
	FieldDocumentType = "document_type"
	FieldTable        = "table"
	FieldLine         = "line_number"
	FieldField        = "field"
	FieldValue        = "value"
	FieldLabel        = "label"
	FieldCounts       = "counts"
	FieldCount        = "count"
	FieldPages        = "page_count"
	FieldEngine       = "engine"
	FieldWorkers      = "workers"
	FieldRunID        = "run_id"
	FieldError        = "error"
	FieldDuration     = "duration_ms"
	FieldOutputFile   = "output_file"
	FieldFormat       = "format"
)
