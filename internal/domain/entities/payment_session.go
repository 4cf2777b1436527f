package entities

import "time"

// SessionState is the lifecycle of a single bridge:
// idle -> pending -> succeeded | canceled | failed.

type SessionState string

const (
	SessionStateIdle      SessionState = "idle"
	SessionStatePending   SessionState = "pending"
	SessionStateSucceeded SessionState = "succeeded"
	SessionStateCanceled  SessionState = "canceled"
	SessionStateFailed    SessionState = "failed"
)

func (s SessionState) IsTerminal() bool {
	switch s {
	case SessionStateSucceeded, SessionStateCanceled, SessionStateFailed:
		return true
	}
	return false
}

// PaymentFlow is the SDK entry point a request was routed to.
type PaymentFlow string

const (
	PaymentFlowNone     PaymentFlow = ""
	PaymentFlowCard     PaymentFlow = "card"
	PaymentFlowVault    PaymentFlow = "vault"
	PaymentFlowCheckout PaymentFlow = "checkout"
)

// PaymentSession is the ledger record kept for a payment request.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The record never holds the nonce, card data or authorization.
type PaymentSession struct {
	ID          string       `json:"id"`
	Type        RequestType  `json:"type"`
	Flow        PaymentFlow  `json:"flow"`
	State       SessionState `json:"state"`
	ErrorKind   ErrorKind    `json:"error_kind,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	CompletedAt time.Time    `json:"completed_at,omitempty"`
}
