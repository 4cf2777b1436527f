package response

import (
	"payment_bridge/internal/domain/entities"
	"payment_bridge/internal/usecase"
)

const (
	StatusOK       = "ok"
	StatusCanceled = "canceled"
	StatusError    = "error"
	StatusPending  = "pending"
)

// PaymentResultResponse is the envelope returned to the host. Exactly one of
// PaymentMethodNonce, Error or PendingAction is set, depending on Status.
type PaymentResultResponse struct {
	Status             string                       `json:"status"`
	ID                 string                       `json:"id,omitempty"`
	Type               string                       `json:"type,omitempty"`
	PaymentMethodNonce *entities.PaymentMethodNonce `json:"paymentMethodNonce,omitempty"`
	PendingAction      *entities.PendingAction      `json:"pendingAction,omitempty"`
	Error              *ResultError                 `json:"error,omitempty"`
}

type ResultError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func FromView(v usecase.PaymentRequestView) PaymentResultResponse {
	if v.Result == nil {
		return PaymentResultResponse{Status: StatusPending, ID: v.ID, PendingAction: v.PendingAction}
	}
	return FromResult(*v.Result)
}

func FromResult(r entities.Result) PaymentResultResponse {
	switch r.Outcome {
	case entities.OutcomeSucceeded:
		return PaymentResultResponse{
			Status:             StatusOK,
			Type:               entities.ResultTypePaymentMethodNonce,
			PaymentMethodNonce: r.Nonce,
		}
	case entities.OutcomeCanceled:
		return PaymentResultResponse{Status: StatusCanceled}
	}
	msg := ""
	if r.Err != nil {
		msg = r.Err.Error()
	}
	return PaymentResultResponse{
		Status: StatusError,
		Error:  &ResultError{Kind: string(r.ErrorKind), Message: msg},
	}
}
