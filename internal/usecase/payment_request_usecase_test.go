package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"payment_bridge/internal/domain/entities"
	"payment_bridge/internal/infrastructure/metrics"
	"payment_bridge/internal/usecase/interfaces"
	mock_interfaces "payment_bridge/internal/usecase/interfaces/mocks"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/mock/gomock"
)

func TestPaymentRequestUseCase_Start_CardSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sdk := mock_interfaces.NewMockIPaymentSDK(ctrl)
	session := mock_interfaces.NewMockISDKSession(ctrl)
	ledger := mock_interfaces.NewMockISessionRepository(ctrl)
	uc := NewPaymentRequestUseCase(sdk, ledger, metrics.NewPaymentMetrics(prometheus.NewRegistry()), nil)

	var listener interfaces.ISessionListener
	expectSession(sdk, "tok", session, &listener)
	session.EXPECT().TokenizeCard(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, entities.CardDescriptor) error {
			go listener.OnPaymentMethodNonceCreated(entities.PaymentMethodNonce{Nonce: "abc123", TypeLabel: "Visa"})
			return nil
		})
	session.EXPECT().Close().Return(nil)

	var created entities.PaymentSession
	ledger.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s entities.PaymentSession) (entities.PaymentSession, error) {
			created = s
			return s, nil
		})
	marked := make(chan entities.SessionState, 1)
	ledger.EXPECT().MarkCompleted(gomock.Any(), gomock.Any(), entities.SessionStateSucceeded, entities.ErrorKind(""), gomock.Any()).DoAndReturn(
		func(_ context.Context, id string, state entities.SessionState, _ entities.ErrorKind, _ time.Time) (entities.PaymentSession, error) {
			if id != created.ID {
				t.Errorf("expected id %s, got %s", created.ID, id)
			}
			marked <- state
			return entities.PaymentSession{ID: id, State: state}, nil
		})

	view, err := uc.Start(context.Background(), cardEnvelope())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.ID == "" || view.ID != created.ID {
		t.Fatalf("unexpected id %q (ledger %q)", view.ID, created.ID)
	}
	if created.State != entities.SessionStatePending || created.Flow != entities.PaymentFlowCard {
		t.Fatalf("unexpected ledger record: %+v", created)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	got, err := uc.Await(ctx, view.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Result == nil || got.Result.Nonce == nil || got.Result.Nonce.Nonce != "abc123" {
		t.Fatalf("unexpected view: %+v", got)
	}
	if got.State != entities.SessionStateSucceeded {
		t.Fatalf("expected succeeded, got %s", got.State)
	}
	if s := <-marked; s != entities.SessionStateSucceeded {
		t.Fatalf("unexpected ledger state %s", s)
	}

	if _, err := uc.Await(ctx, view.ID); !errors.Is(err, ErrPaymentRequestNotFound) {
		t.Fatalf("result must be handed over once, got %v", err)
	}
}

func TestPaymentRequestUseCase_Start_InvalidType(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sdk := mock_interfaces.NewMockIPaymentSDK(ctrl)
	uc := NewPaymentRequestUseCase(sdk, nil, nil, nil)

	view, err := uc.Start(context.Background(), entities.RequestEnvelope{Type: "bogus"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Result == nil || view.Result.ErrorKind != entities.ErrorKindInvalidRequestType {
		t.Fatalf("expected immediate InvalidRequestType result, got %+v", view)
	}
	if view.State != entities.SessionStateFailed {
		t.Fatalf("expected failed, got %s", view.State)
	}

	got, err := uc.Get(context.Background(), view.ID)
	if err != nil || got.Result == nil {
		t.Fatalf("expected result to be handed over, got %+v err=%v", got, err)
	}
}

func TestPaymentRequestUseCase_Start_LedgerError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sdk := mock_interfaces.NewMockIPaymentSDK(ctrl)
	ledger := mock_interfaces.NewMockISessionRepository(ctrl)
	uc := NewPaymentRequestUseCase(sdk, ledger, nil, nil)

	ledger.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentSession{}, errors.New("db"))

	_, err := uc.Start(context.Background(), cardEnvelope())
	if err == nil || err.Error() != "db" {
		t.Fatalf("expected db error, got %v", err)
	}
}

func TestPaymentRequestUseCase_PayPalBrowserSwitch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sdk := mock_interfaces.NewMockIPaymentSDK(ctrl)
	session := mock_interfaces.NewMockISDKSession(ctrl)
	uc := NewPaymentRequestUseCase(sdk, nil, nil, nil)

	var listener interfaces.ISessionListener
	expectSession(sdk, "tok", session, &listener)
	session.EXPECT().RequestBillingAgreement(gomock.Any(), gomock.Any()).Return(&entities.PendingAction{ApprovalURL: "https://paypal.test/agreement"}, nil)
	session.EXPECT().HandleBrowserSwitchResult(gomock.Any(), "app://onetouch/v1/success?token=EC-1").DoAndReturn(
		func(context.Context, string) error {
			listener.OnPaymentMethodNonceCreated(entities.PaymentMethodNonce{Nonce: "abc123", TypeLabel: "PayPal", Description: "x@y.com"})
			return nil
		})
	session.EXPECT().Close().Return(nil)

	view, err := uc.Start(context.Background(), paypalEnvelope(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.State != entities.SessionStatePending || view.PendingAction == nil || view.Flow != entities.PaymentFlowVault {
		t.Fatalf("unexpected view: %+v", view)
	}

	pending, err := uc.Get(context.Background(), view.ID)
	if err != nil || pending.State != entities.SessionStatePending {
		t.Fatalf("expected pending view, got %+v err=%v", pending, err)
	}

	if _, err := uc.CompleteBrowserSwitch(context.Background(), view.ID, "  "); !errors.Is(err, ErrInvalidReturnURL) {
		t.Fatalf("expected ErrInvalidReturnURL, got %v", err)
	}

	after, err := uc.CompleteBrowserSwitch(context.Background(), view.ID, "app://onetouch/v1/success?token=EC-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if after.Result == nil || after.Result.Nonce.Description != "x@y.com" || after.PendingAction != nil {
		t.Fatalf("unexpected view: %+v", after)
	}

	final, err := uc.Get(context.Background(), view.ID)
	if err != nil || final.State != entities.SessionStateSucceeded {
		t.Fatalf("expected handed over result, got %+v err=%v", final, err)
	}
}

func TestPaymentRequestUseCase_AwaitTimesOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sdk := mock_interfaces.NewMockIPaymentSDK(ctrl)
	session := mock_interfaces.NewMockISDKSession(ctrl)
	uc := NewPaymentRequestUseCase(sdk, nil, nil, nil)

	var listener interfaces.ISessionListener
	expectSession(sdk, "tok", session, &listener)
	session.EXPECT().TokenizeCard(gomock.Any(), gomock.Any()).Return(nil)

	view, _ := uc.Start(context.Background(), cardEnvelope())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	got, err := uc.Await(ctx, view.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.State != entities.SessionStatePending || got.Result != nil {
		t.Fatalf("expected pending view, got %+v", got)
	}
}

func TestPaymentRequestUseCase_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sdk := mock_interfaces.NewMockIPaymentSDK(ctrl)
	session := mock_interfaces.NewMockISDKSession(ctrl)
	ledger := mock_interfaces.NewMockISessionRepository(ctrl)
	uc := NewPaymentRequestUseCase(sdk, ledger, nil, nil)

	var listener interfaces.ISessionListener
	expectSession(sdk, "tok", session, &listener)
	session.EXPECT().RequestOneTimePayment(gomock.Any(), gomock.Any()).Return(&entities.PendingAction{ApprovalURL: "u"}, nil)
	session.EXPECT().Cancel()
	session.EXPECT().Close().Return(nil)
	ledger.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, s entities.PaymentSession) (entities.PaymentSession, error) { return s, nil })
	ledger.EXPECT().MarkCompleted(gomock.Any(), gomock.Any(), entities.SessionStateCanceled, entities.ErrorKind(""), gomock.Any()).Return(entities.PaymentSession{}, nil)

	view, _ := uc.Start(context.Background(), paypalEnvelope(strPtr("10.00")))
	got, err := uc.Cancel(context.Background(), view.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Result == nil || got.Result.Outcome != entities.OutcomeCanceled {
		t.Fatalf("expected canceled result, got %+v", got)
	}

	if _, err := uc.Cancel(context.Background(), view.ID); !errors.Is(err, ErrPaymentRequestNotFound) {
		t.Fatalf("expected ErrPaymentRequestNotFound, got %v", err)
	}
}

func TestPaymentRequestUseCase_LookupErrors(t *testing.T) {
	uc := NewPaymentRequestUseCase(nil, nil, nil, nil)

	if _, err := uc.Get(context.Background(), " "); !errors.Is(err, ErrInvalidPaymentRequestID) {
		t.Fatalf("expected ErrInvalidPaymentRequestID, got %v", err)
	}
	if _, err := uc.Await(context.Background(), "missing"); !errors.Is(err, ErrPaymentRequestNotFound) {
		t.Fatalf("expected ErrPaymentRequestNotFound, got %v", err)
	}
	if _, err := uc.CompleteBrowserSwitch(context.Background(), "missing", "app://x"); !errors.Is(err, ErrPaymentRequestNotFound) {
		t.Fatalf("expected ErrPaymentRequestNotFound, got %v", err)
	}
}

func TestPaymentRequestUseCase_ExpirePending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sdk := mock_interfaces.NewMockIPaymentSDK(ctrl)
	stale := mock_interfaces.NewMockISDKSession(ctrl)
	fresh := mock_interfaces.NewMockISDKSession(ctrl)
	ledger := mock_interfaces.NewMockISessionRepository(ctrl)
	uc := NewPaymentRequestUseCase(sdk, ledger, metrics.NewPaymentMetrics(prometheus.NewRegistry()), nil).
		WithPendingTTL(10 * time.Minute)

	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return clock }

	ledger.EXPECT().Create(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, s entities.PaymentSession) (entities.PaymentSession, error) { return s, nil })

	var staleListener, freshListener interfaces.ISessionListener
	expectSession(sdk, "tok", stale, &staleListener)
	stale.EXPECT().RequestBillingAgreement(gomock.Any(), gomock.Any()).Return(&entities.PendingAction{ApprovalURL: "u1"}, nil)
	old, err := uc.Start(context.Background(), paypalEnvelope(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	clock = clock.Add(6 * time.Minute)
	expectSession(sdk, "tok", fresh, &freshListener)
	fresh.EXPECT().RequestBillingAgreement(gomock.Any(), gomock.Any()).Return(&entities.PendingAction{ApprovalURL: "u2"}, nil)
	young, err := uc.Start(context.Background(), paypalEnvelope(nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if n := uc.ExpirePending(); n != 0 {
		t.Fatalf("nothing is past the ttl yet, expired %d", n)
	}

	stale.EXPECT().Cancel()
	stale.EXPECT().Close().Return(nil)
	ledger.EXPECT().MarkCompleted(gomock.Any(), old.ID, entities.SessionStateCanceled, entities.ErrorKind(""), gomock.Any()).
		Return(entities.PaymentSession{}, nil)

	clock = clock.Add(5 * time.Minute)
	if n := uc.ExpirePending(); n != 1 {
		t.Fatalf("expected one expired request, got %d", n)
	}
	if _, err := uc.Get(context.Background(), old.ID); !errors.Is(err, ErrPaymentRequestNotFound) {
		t.Fatalf("expired request must be dropped, got %v", err)
	}
	got, err := uc.Get(context.Background(), young.ID)
	if err != nil || got.State != entities.SessionStatePending {
		t.Fatalf("fresh request must stay pending, got %+v err=%v", got, err)
	}
}

func TestPaymentRequestUseCase_ExpirePendingDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	sdk := mock_interfaces.NewMockIPaymentSDK(ctrl)
	session := mock_interfaces.NewMockISDKSession(ctrl)
	uc := NewPaymentRequestUseCase(sdk, nil, nil, nil)

	clock := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return clock }

	var listener interfaces.ISessionListener
	expectSession(sdk, "tok", session, &listener)
	session.EXPECT().TokenizeCard(gomock.Any(), gomock.Any()).Return(nil)
	view, _ := uc.Start(context.Background(), cardEnvelope())

	clock = clock.Add(24 * time.Hour)
	if n := uc.ExpirePending(); n != 0 {
		t.Fatalf("expiry without a ttl must be a no-op, expired %d", n)
	}
	if _, err := uc.Get(context.Background(), view.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
