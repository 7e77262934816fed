package schema

import (
	"regexp"

	"fjacquet/tdstatement/internal/models"
)

// CreditCardMarker identifies credit card statements.
const CreditCardMarker = "Please make check or money order payable to: TD Bank, N.A."

// CreditFlagField carries the trailing "CR" of credit card activity rows.
const CreditFlagField = "credit_flag"

const (
	creditCardHeading = `^\s*Activity Date\s{1,}Post Date\s{1,}Reference Number\s{1,}Description\s{1,}Amount$`
	creditCardRow     = `^\s*(?P<activity_date>\w{3} \d+)?\s{4,}` +
		`(?P<post_date>\w{3} \d+)?\s{4,}` +
		`(?P<reference_number>\d+)?\s{4,}` +
		`(?P<description>.*?)\s{4,}` +
		`(?P<amount>[\d,.]+)\s*(?P<credit_flag>CR)?$`
)

// CreditCardTables returns the tables of credit card statements. Totals Year
// to Date and Interest Charge Calculation are summaries without a direction.
func CreditCardTables() []*TableSchema {
	heading := regexp.MustCompile(creditCardHeading)
	row := regexp.MustCompile(creditCardRow)

	return []*TableSchema{
		{
			Name:               "Transactions",
			NamePattern:        tableName("Transactions"),
			HeaderPattern:      heading,
			RowPattern:         row,
			Direction:          models.Mixed,
			SkipLines:          3,
			CreditFlagField:    CreditFlagField,
			UnflaggedDirection: models.Debit,
		},
		{
			Name:          "Fees",
			NamePattern:   tableName("Fees"),
			HeaderPattern: heading,
			RowPattern:    row,
			Direction:     models.Debit,
		},
		{
			Name:          "Interest Charged",
			NamePattern:   tableName("Interest Charged"),
			HeaderPattern: heading,
			RowPattern:    row,
			Direction:     models.Debit,
		},
		{
			Name:          "Totals Year to Date",
			NamePattern:   regexp.MustCompile(`(?i)^ *\d{4} Totals Year to Date$`),
			HeaderPattern: regexp.MustCompile(`^ *Total fees charged in \d{4}`),
			RowPattern:    regexp.MustCompile(`^ +(?P<key>.*?) {4,}\$(?P<value>[0-9,.]+) *$`),
			Direction:     models.None,
			SkipLines:     1,
		},
		{
			Name:        "Interest Charge Calculation",
			NamePattern: regexp.MustCompile(`(?i)^Interest Charge Calculation$`),
			HeaderPattern: regexp.MustCompile(
				`Your Annual Percentage Rate \(APR\) is the annual interest rate on your account\.`),
			RowPattern: regexp.MustCompile(`^(?P<balance_type>.*?)\s{4,}` +
				`(?P<annual_percentage_rate>[0-9.]+)% *\(?(?P<apr_type>\w)\)?\s{4,}` +
				`\$(?P<balance_subject_to_interest_rate>[0-9,.]+)\s{4,}` +
				`\$(?P<interest_charge>[0-9,.]+) *$`),
			Direction: models.None,
			SkipLines: 4,
		},
	}
}

// CreditCardMetadata returns the header facts of credit card statements.
func CreditCardMetadata() []MetadataEntry {
	return []MetadataEntry{
		metadataEntry(`Account Number Ending in:\s*\d{4}\s+`+
			`(?P<statement_period_start>\w+\s+\d+,?\s+\d+)\s*-\s*`+
			`(?P<statement_period_end>\w+\s+\d+,?\s+\d+)`, Date),
		metadataEntry(`See reverse for changes to address\s+[A-Z]\s*\d{4}-\d{4}\s*[A-Z]\s*`+
			`(?P<primary_account_number>\d+)\s*\w?\s*$`, Clean),
		metadataEntry(`Previous balance +\$(?P<previous_balance>[0-9,.]+)$`, Decimal),
		metadataEntry(`Payments *[-+]? *\$(?P<payments>[0-9,.]+)\s+`, Decimal),
		metadataEntry(`Other Credits *[-+]? *\$(?P<other_credits>[0-9,.]+)\s+`, Decimal),
		metadataEntry(`Purchases *[-+]? *\$(?P<purchases>[0-9,.]+)\s+`, Decimal),
		metadataEntry(`Balance Transfers *[-+]? *\$(?P<balance_transfers>[0-9,.]+)\s+`, Decimal),
		metadataEntry(`Cash Advances *[-+]? *\$(?P<cash_advances>[0-9,.]+)\s+`, Decimal),
		metadataEntry(`Fees Charged *[-+]? *\$(?P<fees_charged>[0-9,.]+)\s+`, Decimal),
		metadataEntry(`Interest Charged *[-+]? *\$(?P<interest_charged>[0-9,.]+)\s+`, Decimal),
		metadataEntry(`New Balance *[-+]? *\$(?P<new_balance>[0-9,.]+) *(CR)? *`, Decimal),
		metadataEntry(`Past Due Amount *[-+]? *\$(?P<past_due_amount>[0-9,.]+)\s+`, Decimal),
		metadataEntry(`Credit Limit *[-+]? *\$(?P<credit_limit>[0-9,.]+)\s+`, Decimal),
		metadataEntry(`Available Credit *[-+]? *\$(?P<available_credit>[0-9,.]+)\s+`, Decimal),
		metadataEntry(`Available Credit for Cash *[-+]? *\$(?P<available_credit_for_cash>[0-9,.]+)\s+`, Decimal),
		metadataEntry(`Statement Closing Date *(?P<statement_closing_date>\d{2}/\d{2}/\d{4})\s+`, Date),
		metadataEntry(`Days in Billing Cycle *(?P<days_in_period>\d+)`, Int),
		metadataEntry(`Minimum Payment Due *[-+]? *\$(?P<minimum_payment_due>[0-9,.]+)\s+`, Decimal),
		metadataEntry(`Payment Due Date *(?P<payment_due_date>\w{3} *\d+,? *\d{4})\s+`, Date),
		metadataEntry(`Previous Points Balance *[-+]? *(?P<previous_points_balance>[0-9,]+)\s+`, Int),
		metadataEntry(`1 Point \(1%\) Earned on All Purchases *[-+]? *(?P<point_earned_on_all_purchases>[0-9,]+)\s+`, Int),
		metadataEntry(`Plus 1 Point Earned on 2% Category *[-+]? *(?P<two_percent_category_points>[0-9,]+)\s+`, Int),
		metadataEntry(`Plus 2 Point Earned on 3% Category *[-+]? *(?P<three_percent_category_points>[0-9,]+)\s+`, Int),
		metadataEntry(`New Points Balance *[-+]? *(?P<new_points_balance>[0-9,]+)\s+`, Int),
	}
}

// CreditCardFields returns the row field transforms of credit card
// statements.
func CreditCardFields() FieldTransforms {
	return FieldTransforms{
		ByName: map[string]Transform{
			"activity_date":                    StatementDate,
			"post_date":                        StatementDate,
			models.FieldAmount:                 Decimal,
			"value":                            Decimal,
			"annual_percentage_rate":           Decimal,
			"balance_subject_to_interest_rate": Decimal,
			"interest_charge":                  Decimal,
		},
		Default: Clean,
	}
}

// CreditCard returns the registry for credit card statements. Card
// descriptions are kept as captured; no description patterns apply.
func CreditCard() *Registry {
	return &Registry{
		Type:     TypeCreditCard,
		Marker:   CreditCardMarker,
		Tables:   CreditCardTables(),
		Metadata: CreditCardMetadata(),
		Fields:   CreditCardFields(),
	}
}
