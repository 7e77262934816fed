package schema

import (
	"regexp"

	"fjacquet/tdstatement/internal/models"
)

// Document type identifiers.
const (
	TypeAccount    = "account"
	TypeCreditCard = "credit_card"
)

// AccountMarker identifies checking and savings statements.
const AccountMarker = "STATEMENT OF ACCOUNT"

// cardAuthorizationEnding decomposes the trailer shared by card and ATM
// descriptions: ", ****1234 AUT 031424 VISA DDA PUR  SHOP NAME  CITY * NY".
const cardAuthorizationEnding = `, (?P<medium_identifier>\*+\d+),?\s*AUT (?P<authorization_date>\d{6})` +
	`\s*(?P<transaction_medium>(?:(?:VISA|INTL) )?(?:DDA|ATM)? *` +
	`(?:PURCHASE|PUR|WITHDRAW|CHECK DEPOSI|MIXED DEPOSI|CASH DEPOSIT|CASH|TRANSFER|PURCH W/CB|REF)` +
	`)?\s*(?P<authorization_location>.*?)\s{2,}(?P<authorization_info>.*?)` +
	`(?:\s*\* (?P<authorization_state>[A-Z]{2}))?$`

const (
	accountHeading = `^POSTING DATE\s{2,}DESCRIPTION\s{4,}AMOUNT$`
	accountRow     = `^(?P<posting_date>\d+/\d+)\s{4,}(?P<description>.*?)\s{4,}(?P<amount>[\d,.]+)$`
)

func description(label, pattern string, direction models.Direction) DescriptionEntry {
	return DescriptionEntry{
		Label:     label,
		Pattern:   regexp.MustCompile(`(?i)` + pattern),
		Direction: direction,
	}
}

func metadataEntry(pattern string, transform Transform) MetadataEntry {
	return MetadataEntry{
		Pattern:   regexp.MustCompile(`(?im)` + pattern),
		Transform: transform,
	}
}

// tableName builds the case-insensitive pattern for a table name line that
// may carry a "(continued)" suffix on later pages.
func tableName(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)^` + regexp.QuoteMeta(name) + `(\s+\(continued\))?\s*$`)
}

// AccountDescriptions returns the description patterns of checking and
// savings statements in priority order.
func AccountDescriptions() DescriptionTable {
	return DescriptionTable{
		Entries: []DescriptionEntry{
			description("ACH DEBIT", `^ACH DEBIT, (?P<transaction_note>.*)$`, models.Debit),
			description("ACH DEPOSIT", `^ACH DEPOSIT, (?P<transaction_note>(?P<authorization_location>.*) `+
				`(DIR DEP|Trans:|ACH OUT|PAYROLL|DIRECT DEP|PAYMENT) `+
				`(?P<medium_identifier>.*?)|.*?)$`, models.Credit),
			description("ATM CASH DEPOSIT", `ATM CASH DEPOSIT`+cardAuthorizationEnding, models.Credit),
			description("ATM CHECK DEPOSIT", `ATM CHECK DEPOSIT`+cardAuthorizationEnding, models.Credit),
			description("ATM MIXED DEPOSIT", `ATM MIXED DEPOSIT`+cardAuthorizationEnding, models.Credit),
			description("CREDIT", `CREDIT, (?P<transaction_note>.*)$`, models.Credit),
			description("DEBIT", `^DEBIT$`, models.Debit),
			description("DEBIT CARD CREDIT", `^DEBIT CARD CREDIT`+cardAuthorizationEnding, models.Credit),
			description("DEBIT CARD PAYMENT", `^DEBIT CARD PAYMENT`+cardAuthorizationEnding, models.Debit),
			description("DEBIT CARD PURCHASE", `^DEBIT CARD PURCHASE`+cardAuthorizationEnding, models.Debit),
			description("DEBIT POS", `^DEBIT POS`+cardAuthorizationEnding, models.Debit),
			description("DEPOSIT", `^DEPOSIT$`, models.Credit),
			description("ELECTRONIC PMT-WEB", `^ELECTRONIC PMT-WEB, (?P<transaction_note>.*?)$`, models.Debit),
			description("INTL DEBIT CARD PUR", `^INTL DEBIT CARD PUR`+cardAuthorizationEnding, models.Debit),
			description("INTL TXN FEE", `^INTL TXN FEE, INTL TXN FEE$`, models.Debit),
			description("MAINTENANCE FEE", `^MAINTENANCE FEE$`, models.Debit),
			description("MAINTENANCE FEE REFUND", `^MAINTENANCE FEE REFUND$`, models.Credit),
			description("MOBILE DEPOSIT", `^MOBILE DEPOSIT$`, models.Credit),
			description("NONTD ATM DEBIT", `^NONTD ATM DEBIT`+cardAuthorizationEnding, models.Debit),
			description("NONTD ATM FEE", `^NONTD ATM FEE(?:, NONTD ATM FEE)?$`, models.Debit),
			description("OVERDRAFT PD", `^OVERDRAFT PD$`, models.Debit),
			description("TD ATM DEBIT", `^TD ATM DEBIT`+cardAuthorizationEnding, models.Debit),
			description("VISA TRANSFER", `VISA TRANSFER`+cardAuthorizationEnding, models.Credit),
			description("WITHDRAWAL TRANSFER", `WITHDRAWAL TRANSFER, To (?P<transfer_account>.\w+ \d+)$`, models.Debit),
			description("ZERO DOLLAR CR", `ZERO DOLLAR CR, (?P<authorization_location>.*?)$`, models.Credit),
			description("eTransfer Credit", `^eTransfer Credit, Online Xfer\s*Transfer from (?P<transfer_account>\w+ \d+)$`, models.Credit),
			description("eTransfer Debit", `^eTransfer Debit, ((?P<transaction_medium>Online Xfer\s*Transfer|Transfer) to)`+
				` (?P<transfer_account>\w+ \d+)$`, models.Debit),
		},
		Merchants: []*regexp.Regexp{
			regexp.MustCompile(`(?P<merchant_method>(AMAZON|AMZN) (MKTPLACE PMTS|COM|MKTP US|PRIME))\s*` +
				`(?P<merchant_transaction_id>[A-Z0-9 ]*)\s*$`),
		},
	}
}

// AccountTables returns the activity tables of checking and savings
// statements.
func AccountTables() []*TableSchema {
	heading := regexp.MustCompile(accountHeading)
	row := regexp.MustCompile(accountRow)

	simple := func(name string, direction models.Direction) *TableSchema {
		return &TableSchema{
			Name:          name,
			NamePattern:   tableName(name),
			HeaderPattern: heading,
			RowPattern:    row,
			Direction:     direction,
		}
	}

	return []*TableSchema{
		simple("Deposits", models.Credit),
		simple("Electronic Deposits", models.Credit),
		simple("Electronic Payments", models.Debit),
		simple("Other Withdrawals", models.Debit),
		simple("Other Credits", models.Credit),
		simple("Service Charges", models.Debit),
		{
			Name:          "Checks Paid",
			NamePattern:   regexp.MustCompile(`(?i)^Checks Paid\s+No\. Checks:\s*\d+\s+`),
			HeaderPattern: regexp.MustCompile(`^DATE\s{4,}SERIAL NO\.\s{4,}AMOUNT$`),
			RowPattern:    regexp.MustCompile(`^(?P<posting_date>\d+/\d+)\s{4,}(?P<serial_number>.*?)\s{4,}(?P<amount>[\d,.]+)$`),
			Direction:     models.Debit,
		},
	}
}

// AccountMetadata returns the header facts of checking and savings
// statements.
func AccountMetadata() []MetadataEntry {
	return []MetadataEntry{
		metadataEntry(`Statement Period:\s+(?P<statement_period_start>\w+\s+\d+\s+\d+)-`+
			`(?P<statement_period_end>\w+\s+\d+\s+\d+)`, Date),
		metadataEntry(`Cust Ref #:\s+(?P<customer_reference_number>.+?)\s*$`, Clean),
		metadataEntry(`Primary Account #:\s+(?P<primary_account_number>.+?)\s*$`, Clean),
		metadataEntry(`Beginning Balance\s+(?P<beginning_balance>[0-9.,]+)($|\s{10})`, Decimal),
		metadataEntry(`Electronic Deposits\s+(?P<electronic_deposits>[0-9.,]+)($|\s{10})`, Decimal),
		metadataEntry(`Checks Paid\s+(?P<checks_paid>[0-9.,]+)($|\s{10})`, Decimal),
		metadataEntry(`Electronic Payments\s+(?P<electronic_payments>[0-9.,]+)($|\s{10})`, Decimal),
		metadataEntry(`Ending Balance\s+(?P<ending_balance>[0-9.,]+)($|\s{10})`, Decimal),
		metadataEntry(`Average Collected Balance\s+(?P<average_collected_balance>[0-9.,]+)($|\s{10})`, Decimal),
		metadataEntry(`Interest Earned This Period\s+(?P<interest_earned_this_period>[0-9.,]+)($|\s{10})`, Decimal),
		metadataEntry(`Interest Paid Year-to-Date\s+(?P<interest_paid_ytd>[0-9.,]+)($|\s{10})`, Decimal),
		metadataEntry(`Annual Percentage Yield Earned\s+(?P<annual_percent_yield_earned>[0-9.,]+)%($|\s{10})`, Decimal),
		metadataEntry(`Days in Period\s+(?P<days_in_period>[0-9.,]+)($|\s{10})`, Int),
	}
}

// AccountFields returns the row field transforms of checking and savings
// statements.
func AccountFields() FieldTransforms {
	return FieldTransforms{
		ByName: map[string]Transform{
			"posting_date":          StatementDate,
			"check_date":            StatementDate,
			models.FieldAmount:      Decimal,
			models.FieldDescription: Trim,
		},
		Default: Clean,
	}
}

// Account returns the registry for checking and savings statements.
func Account() *Registry {
	return &Registry{
		Type:         TypeAccount,
		Marker:       AccountMarker,
		Tables:       AccountTables(),
		Metadata:     AccountMetadata(),
		Descriptions: AccountDescriptions(),
		Fields:       AccountFields(),
	}
}
