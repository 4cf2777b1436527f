package interfaces

import (
	"context"
	"errors"
	"payment_bridge/internal/domain/entities"
)

// Errors HandleBrowserSwitchResult implementations return for URLs they refuse.
var (
	ErrReturnURLRejected      = errors.New("return url does not belong to this integration")
	ErrNoBrowserSwitchPending = errors.New("no paypal approval is pending")
)

// ISessionListener receives the terminal events of an SDK session.
//
// SDK implementations may call these from any goroutine and must call at most
// one of them per session in the normal case; the bridge tolerates extra calls.
type ISessionListener interface {
	OnPaymentMethodNonceCreated(nonce entities.PaymentMethodNonce)
	OnCancel()
	OnError(err error)
}

// ISDKSession is a vendor SDK session bound to one authorization.
//
// Entry points start an asynchronous operation whose completion arrives through
// the listener passed to IPaymentSDK.NewSession. A returned error means the
// operation never started.
type ISDKSession interface {
	TokenizeCard(ctx context.Context, card entities.CardDescriptor) error
	RequestBillingAgreement(ctx context.Context, req entities.PayPalRequest) (*entities.PendingAction, error)
	RequestOneTimePayment(ctx context.Context, req entities.PayPalRequest) (*entities.PendingAction, error)
	HandleBrowserSwitchResult(ctx context.Context, returnURL string) error
	Cancel()
	Close() error
}

// IPaymentSDK builds SDK sessions from a caller supplied authorization.
type IPaymentSDK interface {
	NewSession(ctx context.Context, authorization string, listener ISessionListener) (ISDKSession, error)
}
