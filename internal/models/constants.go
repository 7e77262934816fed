package models

// Direction values. Schemas use Debit, Credit, Mixed and None; description
// pattern entries use Debit, Credit or Inherit.
const (
	Debit   Direction = "debit"
	Credit  Direction = "credit"
	Mixed   Direction = "mixed"
	None    Direction = "none"
	Inherit Direction = ""
)

// Well-known record field names.
const (
	FieldDescription       = "description"
	FieldAmount            = "amount"
	FieldDirection         = "direction"
	FieldParsedDescription = "parsed_desc"
)

// Well-known metadata keys.
const (
	MetaPeriodStart = "statement_period_start"
	MetaPeriodEnd   = "statement_period_end"
)
