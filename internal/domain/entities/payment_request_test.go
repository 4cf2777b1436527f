package entities

import "testing"

func TestRequestEnvelope_PayPalRequest(t *testing.T) {
	amount := "10.00"
	e := RequestEnvelope{
		Type:                        RequestTypeRequestPaypalNonce,
		Nominativo:                  "Mario Rossi",
		Indirizzo:                   "Via Roma 1",
		Provincia:                   "MI",
		CountryID:                   "IT",
		Cap:                         "20100",
		Amount:                      &amount,
		CurrencyCode:                "EUR",
		DisplayName:                 "Shop",
		BillingAgreementDescription: "monthly",
	}

	req := e.PayPalRequest()
	if req.IsVault() {
		t.Fatalf("expected checkout request when amount is present")
	}
	if req.Intent != PayPalIntentAuthorize {
		t.Fatalf("expected authorize intent, got %q", req.Intent)
	}
	want := PostalAddress{RecipientName: "Mario Rossi", StreetAddress: "Via Roma 1", Locality: "MI", CountryCodeAlpha2: "IT", PostalCode: "20100"}
	if req.ShippingAddressOverride != want {
		t.Fatalf("unexpected address: %+v", req.ShippingAddressOverride)
	}
	if *req.Amount != "10.00" || req.CurrencyCode != "EUR" || req.DisplayName != "Shop" || req.BillingAgreementDescription != "monthly" {
		t.Fatalf("unexpected request: %+v", req)
	}

	e.Amount = nil
	if !e.PayPalRequest().IsVault() {
		t.Fatalf("expected vault request when amount is absent")
	}

	empty := ""
	e.Amount = &empty
	if e.PayPalRequest().IsVault() {
		t.Fatalf("an empty amount is still present")
	}
}

func TestRequestEnvelope_FlowMatchesPayPalRequest(t *testing.T) {
	amount := "1.00"
	for _, a := range []*string{nil, &amount} {
		e := RequestEnvelope{Type: RequestTypeRequestPaypalNonce, Amount: a}
		vault := e.Flow() == PaymentFlowVault
		if vault != e.PayPalRequest().IsVault() {
			t.Fatalf("flow %q disagrees with IsVault for amount %v", e.Flow(), a)
		}
	}
	if f := (RequestEnvelope{Type: "bogus"}).Flow(); f != PaymentFlowNone {
		t.Fatalf("expected no flow for an invalid type, got %q", f)
	}
}

func TestRequestType_IsValid(t *testing.T) {
	if !RequestTypeTokenizeCreditCard.IsValid() || !RequestTypeRequestPaypalNonce.IsValid() {
		t.Fatalf("expected known types to be valid")
	}
	if RequestType("bogus").IsValid() || RequestType("").IsValid() {
		t.Fatalf("expected unknown types to be invalid")
	}
}

func TestResult_State(t *testing.T) {
	if s := SucceededResult(PaymentMethodNonce{Nonce: "n"}).State(); s != SessionStateSucceeded {
		t.Fatalf("expected succeeded, got %s", s)
	}
	if s := CanceledResult().State(); s != SessionStateCanceled {
		t.Fatalf("expected canceled, got %s", s)
	}
	r := FailedResult(ErrorKindSdkError, nil)
	if r.State() != SessionStateFailed || r.Err == nil {
		t.Fatalf("unexpected failed result: %+v", r)
	}
	if !r.State().IsTerminal() || SessionStatePending.IsTerminal() {
		t.Fatalf("unexpected terminal states")
	}
}

func TestRequestEnvelope_Flow(t *testing.T) {
	amount := "1.00"
	cases := []struct {
		name string
		env  RequestEnvelope
		want PaymentFlow
	}{
		{name: "card", env: RequestEnvelope{Type: RequestTypeTokenizeCreditCard, Amount: &amount}, want: PaymentFlowCard},
		{name: "vault", env: RequestEnvelope{Type: RequestTypeRequestPaypalNonce, CurrencyCode: "USD", DisplayName: "Shop"}, want: PaymentFlowVault},
		{name: "checkout", env: RequestEnvelope{Type: RequestTypeRequestPaypalNonce, Amount: &amount}, want: PaymentFlowCheckout},
		{name: "unknown", env: RequestEnvelope{Type: "bogus", Amount: &amount}, want: PaymentFlowNone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.env.Flow(); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
