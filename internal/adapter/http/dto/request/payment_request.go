package request

import "payment_bridge/internal/domain/entities"

// PaymentRequest is the envelope the host application posts.
//
// `amount` absent and `amount: null` both decode to a nil pointer and select
// the PayPal vault flow.

type PaymentRequest struct {
	Type          string `json:"type"`
	Authorization string `json:"authorization"`

	CardNumber      string `json:"cardNumber,omitempty"`
	ExpirationMonth string `json:"expirationMonth,omitempty"`
	ExpirationYear  string `json:"expirationYear,omitempty"`

	Nominativo string `json:"nominativo,omitempty"`
	Indirizzo  string `json:"indirizzo,omitempty"`
	Provincia  string `json:"provincia,omitempty"`
	CountryID  string `json:"country_id,omitempty"`
	Cap        string `json:"cap,omitempty"`

	Amount                      *string `json:"amount,omitempty"`
	CurrencyCode                string  `json:"currencyCode,omitempty"`
	DisplayName                 string  `json:"displayName,omitempty"`
	BillingAgreementDescription string  `json:"billingAgreementDescription,omitempty"`
}

func (r PaymentRequest) ToEnvelope() entities.RequestEnvelope {
	return entities.RequestEnvelope{
		Type:                        entities.RequestType(r.Type),
		Authorization:               r.Authorization,
		CardNumber:                  r.CardNumber,
		ExpirationMonth:             r.ExpirationMonth,
		ExpirationYear:              r.ExpirationYear,
		Nominativo:                  r.Nominativo,
		Indirizzo:                   r.Indirizzo,
		Provincia:                   r.Provincia,
		CountryID:                   r.CountryID,
		Cap:                         r.Cap,
		Amount:                      r.Amount,
		CurrencyCode:                r.CurrencyCode,
		DisplayName:                 r.DisplayName,
		BillingAgreementDescription: r.BillingAgreementDescription,
	}
}

// BrowserSwitchRequest carries the URL the PayPal approval page redirected to.
type BrowserSwitchRequest struct {
	ReturnURL string `json:"returnUrl" binding:"required"`
}
