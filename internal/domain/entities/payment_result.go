package entities

import "errors"

// Outcome is the terminal state of a payment request.

type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeCanceled  Outcome = "canceled"
	OutcomeFailed    Outcome = "failed"
)

// ErrorKind classifies a failed result.
type ErrorKind string

const (
	ErrorKindInvalidRequestType          ErrorKind = "InvalidRequestType"
	ErrorKindSessionInitializationFailed ErrorKind = "SessionInitializationFailed"
	ErrorKindSdkError                    ErrorKind = "SdkError"
)

// ResultTypePaymentMethodNonce is the type label of a successful result envelope.
const ResultTypePaymentMethodNonce = "paymentMethodNonce"

var ErrNilResultError = errors.New("failed result without error")

// PaymentMethodNonce is the tokenized payment method returned by the SDK.
type PaymentMethodNonce struct {
	Nonce       string `json:"nonce"`
	TypeLabel   string `json:"typeLabel"`
	Description string `json:"description"`
	IsDefault   bool   `json:"isDefault"`
}

// Result is a tagged variant: Nonce is set only when Outcome is succeeded,
// Err and ErrorKind only when Outcome is failed.
type Result struct {
	Outcome   Outcome
	Nonce     *PaymentMethodNonce
	ErrorKind ErrorKind
	Err       error
}

func SucceededResult(n PaymentMethodNonce) Result {
	return Result{Outcome: OutcomeSucceeded, Nonce: &n}
}

func CanceledResult() Result {
	return Result{Outcome: OutcomeCanceled}
}

func FailedResult(kind ErrorKind, err error) Result {
	if err == nil {
		err = ErrNilResultError
	}
	return Result{Outcome: OutcomeFailed, ErrorKind: kind, Err: err}
}

// State maps the outcome to the terminal session state it produces.
func (r Result) State() SessionState {
	switch r.Outcome {
	case OutcomeSucceeded:
		return SessionStateSucceeded
	case OutcomeCanceled:
		return SessionStateCanceled
	default:
		return SessionStateFailed
	}
}
