package models

// ParsedDescription is the sub-structure decomposed from a transaction's
// free-text description.
type ParsedDescription struct {
	Label                 string    `json:"label"`
	Direction             Direction `json:"direction,omitempty"`
	TransactionNote       string    `json:"transaction_note,omitempty"`
	TransactionMedium     string    `json:"transaction_medium,omitempty"`
	MediumIdentifier      string    `json:"medium_identifier,omitempty"`
	AuthorizationDate     *Date     `json:"authorization_date,omitempty"`
	AuthorizationLocation string    `json:"authorization_location,omitempty"`
	AuthorizationCity     string    `json:"authorization_city,omitempty"`
	AuthorizationPhone    string    `json:"authorization_phone,omitempty"`
	AuthorizationState    string    `json:"authorization_state,omitempty"`
	TransferAccount       string    `json:"transfer_account,omitempty"`
	MerchantMethod        string    `json:"merchant_method,omitempty"`
	MerchantTransactionID string    `json:"merchant_transaction_id,omitempty"`
}

// Sub-field names recognized in description patterns.
const (
	SubTransactionNote       = "transaction_note"
	SubTransactionMedium     = "transaction_medium"
	SubMediumIdentifier      = "medium_identifier"
	SubAuthorizationDate     = "authorization_date"
	SubAuthorizationInfo     = "authorization_info"
	SubAuthorizationLocation = "authorization_location"
	SubAuthorizationCity     = "authorization_city"
	SubAuthorizationPhone    = "authorization_phone"
	SubAuthorizationState    = "authorization_state"
	SubTransferAccount       = "transfer_account"
	SubMerchantMethod        = "merchant_method"
	SubMerchantTransactionID = "merchant_transaction_id"
)

// Set assigns a string sub-field by name. It returns false for names that
// have no string slot (authorization_date, authorization_info, unknown).
func (p *ParsedDescription) Set(name, value string) bool {
	switch name {
	case SubTransactionNote:
		p.TransactionNote = value
	case SubTransactionMedium:
		p.TransactionMedium = value
	case SubMediumIdentifier:
		p.MediumIdentifier = value
	case SubAuthorizationLocation:
		p.AuthorizationLocation = value
	case SubAuthorizationCity:
		p.AuthorizationCity = value
	case SubAuthorizationPhone:
		p.AuthorizationPhone = value
	case SubAuthorizationState:
		p.AuthorizationState = value
	case SubTransferAccount:
		p.TransferAccount = value
	case SubMerchantMethod:
		p.MerchantMethod = value
	case SubMerchantTransactionID:
		p.MerchantTransactionID = value
	default:
		return false
	}
	return true
}
