package usecase

import (
	"context"
	"errors"
	"payment_bridge/internal/domain/entities"
	"payment_bridge/internal/infrastructure/metrics"
	"payment_bridge/internal/usecase/interfaces"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrPaymentRequestNotFound  = errors.New("payment request not found")
	ErrInvalidPaymentRequestID = errors.New("invalid payment request id")
	ErrInvalidReturnURL        = errors.New("invalid return url")
)

const ledgerWriteTimeout = 5 * time.Second

// PaymentRequestView is what the host sees of a payment request. Result is
// set only once the request reached a terminal state.
type PaymentRequestView struct {
	ID            string
	Type          entities.RequestType
	Flow          entities.PaymentFlow
	State         entities.SessionState
	PendingAction *entities.PendingAction
	Result        *entities.Result
}

// IPaymentRequestUseCase drives payment requests from the host.
//
// A request lives until its result has been handed to the host once (through
// Await, Get or Cancel); after that its id is unknown.

type IPaymentRequestUseCase interface {
	Start(ctx context.Context, env entities.RequestEnvelope) (PaymentRequestView, error)
	Await(ctx context.Context, id string) (PaymentRequestView, error)
	Get(ctx context.Context, id string) (PaymentRequestView, error)
	CompleteBrowserSwitch(ctx context.Context, id string, returnURL string) (PaymentRequestView, error)
	Cancel(ctx context.Context, id string) (PaymentRequestView, error)
}

type pendingRequest struct {
	id        string
	reqType   entities.RequestType
	bridge    *Bridge
	action    *entities.PendingAction
	startedAt time.Time
}

type PaymentRequestUseCase struct {
	sdk     interfaces.IPaymentSDK
	ledger  interfaces.ISessionRepository
	metrics *metrics.PaymentMetrics
	log     *zap.Logger
	now     func() time.Time
	// pendingTTL bounds how long a request may wait for its result to be
	// collected. Zero keeps requests until they are handed over.
	pendingTTL time.Duration

	mu       sync.Mutex
	requests map[string]*pendingRequest
}

var _ IPaymentRequestUseCase = (*PaymentRequestUseCase)(nil)

// NewPaymentRequestUseCase wires the use case. ledger and m may be nil.
func NewPaymentRequestUseCase(sdk interfaces.IPaymentSDK, ledger interfaces.ISessionRepository, m *metrics.PaymentMetrics, log *zap.Logger) *PaymentRequestUseCase {
	if log == nil {
		log = zap.NewNop()
	}
	return &PaymentRequestUseCase{
		sdk:      sdk,
		ledger:   ledger,
		metrics:  m,
		log:      log,
		now:      func() time.Time { return time.Now().UTC() },
		requests: make(map[string]*pendingRequest),
	}
}

// WithPendingTTL sets how long a request is kept before it is canceled and
// dropped by ExpirePending.
func (u *PaymentRequestUseCase) WithPendingTTL(ttl time.Duration) *PaymentRequestUseCase {
	u.pendingTTL = ttl
	return u
}

func (u *PaymentRequestUseCase) Start(ctx context.Context, env entities.RequestEnvelope) (PaymentRequestView, error) {
	p := &pendingRequest{
		id:        uuid.NewString(),
		reqType:   env.Type,
		startedAt: u.now(),
	}
	u.log.Info("[payment][usecase] start", zap.String("request_id", p.id), zap.String("type", string(env.Type)))

	if u.ledger != nil {
		_, err := u.ledger.Create(ctx, entities.PaymentSession{
			ID:        p.id,
			Type:      env.Type,
			Flow:      env.Flow(),
			State:     entities.SessionStatePending,
			CreatedAt: p.startedAt,
		})
		if err != nil {
			u.log.Error("[payment][usecase] ledger create failed", zap.String("request_id", p.id), zap.Error(err))
			return PaymentRequestView{}, err
		}
	}

	p.bridge = NewBridge(u.sdk, u.log.With(zap.String("request_id", p.id)), func(r entities.Result) {
		u.recordResult(p, r)
	})
	p.action = p.bridge.Initialize(ctx, env)

	u.mu.Lock()
	u.requests[p.id] = p
	pending := len(u.requests)
	u.mu.Unlock()
	u.metrics.SetPending(pending)

	return p.view(), nil
}

// Await blocks until the request has a result or ctx ends. When ctx ends
// first the pending view is returned without error.
func (u *PaymentRequestUseCase) Await(ctx context.Context, id string) (PaymentRequestView, error) {
	p, err := u.lookup(id)
	if err != nil {
		return PaymentRequestView{}, err
	}
	if _, err := p.bridge.Wait(ctx); err != nil {
		return p.view(), nil
	}
	return u.handOver(p)
}

// Get returns the request without blocking.
func (u *PaymentRequestUseCase) Get(_ context.Context, id string) (PaymentRequestView, error) {
	p, err := u.lookup(id)
	if err != nil {
		return PaymentRequestView{}, err
	}
	if _, done := p.bridge.Result(); !done {
		return p.view(), nil
	}
	return u.handOver(p)
}

// CompleteBrowserSwitch delivers the URL the PayPal approval page returned to.
// The SDK answers through its listener, so the returned view may still be pending.
func (u *PaymentRequestUseCase) CompleteBrowserSwitch(ctx context.Context, id string, returnURL string) (PaymentRequestView, error) {
	p, err := u.lookup(id)
	if err != nil {
		return PaymentRequestView{}, err
	}
	returnURL = strings.TrimSpace(returnURL)
	if returnURL == "" {
		return PaymentRequestView{}, ErrInvalidReturnURL
	}
	if err := p.bridge.HandleBrowserSwitch(ctx, returnURL); err != nil {
		u.log.Info("[payment][usecase] browser switch rejected", zap.String("request_id", id), zap.Error(err))
		return PaymentRequestView{}, err
	}
	return p.view(), nil
}

// Cancel emits the cancel event for a pending request and hands over its result.
// A request that already finished keeps its original result.
func (u *PaymentRequestUseCase) Cancel(_ context.Context, id string) (PaymentRequestView, error) {
	p, err := u.lookup(id)
	if err != nil {
		return PaymentRequestView{}, err
	}
	p.bridge.Cancel()
	return u.handOver(p)
}

// ExpirePending cancels and drops every request older than the pending TTL.
// A request that already has a result keeps it; the result is discarded with
// the entry. It returns how many requests were dropped.
func (u *PaymentRequestUseCase) ExpirePending() int {
	if u.pendingTTL <= 0 {
		return 0
	}
	now := u.now()

	u.mu.Lock()
	var expired []*pendingRequest
	for id, p := range u.requests {
		if now.Sub(p.startedAt) >= u.pendingTTL {
			expired = append(expired, p)
			delete(u.requests, id)
		}
	}
	pending := len(u.requests)
	u.mu.Unlock()

	if len(expired) == 0 {
		return 0
	}
	u.metrics.SetPending(pending)
	for _, p := range expired {
		p.bridge.Cancel()
		u.log.Info("[payment][usecase] pending request expired",
			zap.String("request_id", p.id),
			zap.String("state", string(p.bridge.State())),
			zap.Duration("age", now.Sub(p.startedAt)))
	}
	return len(expired)
}

// RunExpiry calls ExpirePending every interval until ctx ends.
func (u *PaymentRequestUseCase) RunExpiry(ctx context.Context, interval time.Duration) {
	if u.pendingTTL <= 0 || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			u.ExpirePending()
		}
	}
}

func (u *PaymentRequestUseCase) lookup(id string) (*pendingRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidPaymentRequestID
	}
	u.mu.Lock()
	p, ok := u.requests[id]
	u.mu.Unlock()
	if !ok {
		return nil, ErrPaymentRequestNotFound
	}
	return p, nil
}

// handOver removes a finished request so its result is returned exactly once.
func (u *PaymentRequestUseCase) handOver(p *pendingRequest) (PaymentRequestView, error) {
	u.mu.Lock()
	if _, ok := u.requests[p.id]; !ok {
		u.mu.Unlock()
		return PaymentRequestView{}, ErrPaymentRequestNotFound
	}
	delete(u.requests, p.id)
	pending := len(u.requests)
	u.mu.Unlock()
	u.metrics.SetPending(pending)

	u.log.Info("[payment][usecase] result handed over", zap.String("request_id", p.id), zap.String("state", string(p.bridge.State())))
	return p.view(), nil
}

func (u *PaymentRequestUseCase) recordResult(p *pendingRequest, r entities.Result) {
	completedAt := u.now()
	u.metrics.ObserveResult(string(p.reqType), string(r.Outcome), string(r.ErrorKind), completedAt.Sub(p.startedAt))

	if u.ledger == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), ledgerWriteTimeout)
	defer cancel()
	if _, err := u.ledger.MarkCompleted(ctx, p.id, r.State(), r.ErrorKind, completedAt); err != nil {
		u.log.Warn("[payment][usecase] ledger mark-completed failed",
			zap.String("request_id", p.id),
			zap.String("state", string(r.State())),
			zap.Error(err))
	}
}

func (p *pendingRequest) view() PaymentRequestView {
	v := PaymentRequestView{
		ID:            p.id,
		Type:          p.reqType,
		Flow:          p.bridge.Flow(),
		State:         p.bridge.State(),
		PendingAction: p.action,
	}
	if r, ok := p.bridge.Result(); ok {
		v.Result = &r
		v.State = r.State()
		v.PendingAction = nil
	}
	return v
}
