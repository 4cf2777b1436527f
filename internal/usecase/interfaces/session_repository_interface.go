package interfaces

import (
	"context"
	"payment_bridge/internal/domain/entities"
	"time"
)

// ISessionRepository keeps the lifecycle ledger of payment requests.
//
// MarkCompleted must only succeed while the stored state is pending, so a
// request is recorded with exactly one terminal state.
type ISessionRepository interface {
	Create(ctx context.Context, s entities.PaymentSession) (entities.PaymentSession, error)
	MarkCompleted(ctx context.Context, id string, state entities.SessionState, kind entities.ErrorKind, completedAt time.Time) (entities.PaymentSession, error)
}
