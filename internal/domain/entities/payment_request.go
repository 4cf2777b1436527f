package entities

// RequestType selects the sub-flow a payment request runs.

type RequestType string

const (
	RequestTypeTokenizeCreditCard RequestType = "tokenizeCreditCard"
	RequestTypeRequestPaypalNonce RequestType = "requestPaypalNonce"
)

func (t RequestType) IsValid() bool {
	switch t {
	case RequestTypeTokenizeCreditCard, RequestTypeRequestPaypalNonce:
		return true
	}
	return false
}

// PayPalIntentAuthorize is the only intent the bridge ever sends.
const PayPalIntentAuthorize = "authorize"

// RequestEnvelope is the request received from the host application.
//
// Field values are passed to the SDK untouched: the SDK decides whether an
// empty card number or address line is fatal.
type RequestEnvelope struct {
	Type          RequestType
	Authorization string

	CardNumber      string
	ExpirationMonth string
	ExpirationYear  string

	Nominativo string
	Indirizzo  string
	Provincia  string
	CountryID  string
	Cap        string

	// Amount is nil when the host did not send one, which selects the vault flow.
	Amount                      *string
	CurrencyCode                string
	DisplayName                 string
	BillingAgreementDescription string
}

// CardDescriptor is what the SDK tokenizes for the credit card flow.
type CardDescriptor struct {
	Number          string
	ExpirationMonth string
	ExpirationYear  string
}

// PostalAddress is copied into the PayPal request as the shipping override.
type PostalAddress struct {
	RecipientName     string
	StreetAddress     string
	Locality          string
	CountryCodeAlpha2 string
	PostalCode        string
}

// PayPalRequest is handed to either the billing agreement or the one-time payment entry point.
type PayPalRequest struct {
	Amount                      *string
	CurrencyCode                string
	DisplayName                 string
	ShippingAddressOverride     PostalAddress
	BillingAgreementDescription string
	Intent                      string
}

// IsVault reports whether the request must go through the billing agreement flow.
func (r PayPalRequest) IsVault() bool {
	return r.Amount == nil
}

// Flow is the SDK entry point the envelope is routed to. Only the type and the
// presence of an amount take part in the decision.
func (e RequestEnvelope) Flow() PaymentFlow {
	if !e.Type.IsValid() {
		return PaymentFlowNone
	}
	if e.Type == RequestTypeTokenizeCreditCard {
		return PaymentFlowCard
	}
	if e.PayPalRequest().IsVault() {
		return PaymentFlowVault
	}
	return PaymentFlowCheckout
}

func (e RequestEnvelope) CardDescriptor() CardDescriptor {
	return CardDescriptor{
		Number:          e.CardNumber,
		ExpirationMonth: e.ExpirationMonth,
		ExpirationYear:  e.ExpirationYear,
	}
}

func (e RequestEnvelope) PostalAddress() PostalAddress {
	return PostalAddress{
		RecipientName:     e.Nominativo,
		StreetAddress:     e.Indirizzo,
		Locality:          e.Provincia,
		CountryCodeAlpha2: e.CountryID,
		PostalCode:        e.Cap,
	}
}

func (e RequestEnvelope) PayPalRequest() PayPalRequest {
	return PayPalRequest{
		Amount:                      e.Amount,
		CurrencyCode:                e.CurrencyCode,
		DisplayName:                 e.DisplayName,
		ShippingAddressOverride:     e.PostalAddress(),
		BillingAgreementDescription: e.BillingAgreementDescription,
		Intent:                      PayPalIntentAuthorize,
	}
}

// PendingAction is what the host must present to the user while a flow is pending.
type PendingAction struct {
	ApprovalURL string `json:"approvalUrl"`
}
