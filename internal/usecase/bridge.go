package usecase

import (
	"context"
	"errors"
	"fmt"
	"payment_bridge/internal/domain/entities"
	"payment_bridge/internal/usecase/interfaces"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

var (
	ErrInvalidRequestType          = errors.New("invalid request type")
	ErrSessionInitializationFailed = errors.New("session initialization failed")
	ErrPaymentRequestNotPending    = errors.New("payment request is not pending")
	ErrBrowserSwitchNotExpected    = errors.New("payment request does not expect a browser switch result")
)

// Bridge routes one request envelope to the SDK and turns the SDK callbacks
// into exactly one result.
//
// A Bridge is single use: Initialize is called once, the first terminal SDK
// event resolves it and every later event is dropped.
type Bridge struct {
	sdk      interfaces.IPaymentSDK
	log      *zap.Logger
	onResult func(entities.Result)

	started atomic.Bool
	flow    entities.PaymentFlow
	done    *completion

	mu       sync.Mutex
	session  interfaces.ISDKSession
	released bool
}

var _ interfaces.ISessionListener = (*Bridge)(nil)

// NewBridge creates an idle bridge. onResult, when set, runs once with the
// result on the goroutine that produced it.
func NewBridge(sdk interfaces.IPaymentSDK, log *zap.Logger, onResult func(entities.Result)) *Bridge {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bridge{sdk: sdk, log: log, onResult: onResult, done: newCompletion()}
}

// Initialize opens the SDK session and starts the sub-flow selected by the
// envelope. It never returns an error: invalid input and SDK failures become
// the bridge result. The returned action is non-nil when the host must
// present an approval page.
func (b *Bridge) Initialize(ctx context.Context, env entities.RequestEnvelope) *entities.PendingAction {
	if !b.started.CompareAndSwap(false, true) {
		b.log.Warn("[payment][bridge] initialize called twice")
		return nil
	}

	b.flow = env.Flow()
	if b.flow == entities.PaymentFlowNone {
		b.log.Info("[payment][bridge] invalid request type", zap.String("type", string(env.Type)))
		b.complete(entities.FailedResult(entities.ErrorKindInvalidRequestType, fmt.Errorf("%w: %q", ErrInvalidRequestType, env.Type)))
		return nil
	}
	if b.sdk == nil {
		b.complete(entities.FailedResult(entities.ErrorKindSessionInitializationFailed, fmt.Errorf("%w: payment sdk not configured", ErrSessionInitializationFailed)))
		return nil
	}

	session, err := b.sdk.NewSession(ctx, env.Authorization, b)
	if err != nil {
		b.log.Info("[payment][bridge] session initialization failed", zap.String("type", string(env.Type)), zap.Error(err))
		b.complete(entities.FailedResult(entities.ErrorKindSessionInitializationFailed, fmt.Errorf("%w: %w", ErrSessionInitializationFailed, err)))
		return nil
	}
	b.attach(session)

	b.log.Debug("[payment][bridge] dispatch", zap.String("type", string(env.Type)), zap.String("flow", string(b.flow)))

	var action *entities.PendingAction
	switch b.flow {
	case entities.PaymentFlowCard:
		err = session.TokenizeCard(ctx, env.CardDescriptor())
	case entities.PaymentFlowVault:
		action, err = session.RequestBillingAgreement(ctx, env.PayPalRequest())
	case entities.PaymentFlowCheckout:
		action, err = session.RequestOneTimePayment(ctx, env.PayPalRequest())
	}
	if err != nil {
		b.OnError(err)
		return nil
	}
	return action
}

// HandleBrowserSwitch forwards the return URL of the PayPal approval page to the SDK.
func (b *Bridge) HandleBrowserSwitch(ctx context.Context, returnURL string) error {
	session := b.currentSession()
	if b.State().IsTerminal() || session == nil {
		return ErrPaymentRequestNotPending
	}
	if b.flow != entities.PaymentFlowVault && b.flow != entities.PaymentFlowCheckout {
		return ErrBrowserSwitchNotExpected
	}
	return session.HandleBrowserSwitchResult(ctx, returnURL)
}

// Cancel is the host-driven cancellation. It aborts whatever the SDK still has
// in flight and emits the cancel event.
func (b *Bridge) Cancel() {
	if session := b.currentSession(); session != nil && !b.State().IsTerminal() {
		session.Cancel()
	}
	b.OnCancel()
}

func (b *Bridge) OnPaymentMethodNonceCreated(nonce entities.PaymentMethodNonce) {
	b.complete(entities.SucceededResult(nonce))
}

func (b *Bridge) OnCancel() {
	b.complete(entities.CanceledResult())
}

func (b *Bridge) OnError(err error) {
	b.complete(entities.FailedResult(entities.ErrorKindSdkError, err))
}

func (b *Bridge) Done() <-chan struct{} {
	return b.done.Done()
}

func (b *Bridge) Result() (entities.Result, bool) {
	return b.done.Result()
}

func (b *Bridge) Wait(ctx context.Context) (entities.Result, error) {
	return b.done.Wait(ctx)
}

func (b *Bridge) Flow() entities.PaymentFlow {
	return b.flow
}

func (b *Bridge) State() entities.SessionState {
	if r, ok := b.done.Result(); ok {
		return r.State()
	}
	if b.started.Load() {
		return entities.SessionStatePending
	}
	return entities.SessionStateIdle
}

func (b *Bridge) complete(r entities.Result) {
	if !b.done.resolve(r) {
		b.log.Debug("[payment][bridge] late event dropped", zap.String("outcome", string(r.Outcome)))
		return
	}
	b.log.Info("[payment][bridge] result",
		zap.String("flow", string(b.flow)),
		zap.String("outcome", string(r.Outcome)),
		zap.String("error_kind", string(r.ErrorKind)))
	b.release()
	if b.onResult != nil {
		b.onResult(r)
	}
}

// attach keeps the session until the result is produced. A session attached
// after the result already arrived is closed right away.
func (b *Bridge) attach(session interfaces.ISDKSession) {
	b.mu.Lock()
	b.session = session
	b.mu.Unlock()
	if _, done := b.done.Result(); done {
		b.release()
	}
}

func (b *Bridge) currentSession() interfaces.ISDKSession {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.session
}

// release closes the SDK session once.
func (b *Bridge) release() {
	b.mu.Lock()
	session := b.session
	if session == nil || b.released {
		b.mu.Unlock()
		return
	}
	b.released = true
	b.mu.Unlock()

	if err := session.Close(); err != nil {
		b.log.Warn("[payment][bridge] session close failed", zap.Error(err))
	}
}
