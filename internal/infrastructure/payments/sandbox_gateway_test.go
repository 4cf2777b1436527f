package payments

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"payment_bridge/internal/domain/entities"
	"payment_bridge/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSandboxGateway_RejectsEmptyAuthorization(t *testing.T) {
	_, err := NewSandboxGateway("app", nil).NewSession(context.Background(), " ", newRecordingListener())
	require.ErrorIs(t, err, ErrInvalidAuthorization)
}

func TestSandboxGateway_TokenizeCard(t *testing.T) {
	listener := newRecordingListener()
	session, err := NewSandboxGateway("app", nil).NewSession(context.Background(), "anything", listener)
	require.NoError(t, err)

	require.NoError(t, session.TokenizeCard(context.Background(), entities.CardDescriptor{Number: "4111111111111111"}))
	ev := listener.next(t)
	require.Equal(t, "nonce", ev.kind)
	assert.Equal(t, entities.PaymentMethodNonce{Nonce: SandboxCardNonce, TypeLabel: "Visa", Description: "ending in ••11"}, ev.nonce)

	require.NoError(t, session.TokenizeCard(context.Background(), entities.CardDescriptor{}))
	ev = listener.next(t)
	require.Equal(t, "error", ev.kind)
	var btErr *BraintreeError
	require.True(t, errors.As(ev.err, &btErr))
	assert.Equal(t, 422, btErr.StatusCode)
}

func TestSandboxGateway_PayPalFlows(t *testing.T) {
	tests := []struct {
		name  string
		vault bool
		nonce string
	}{
		{name: "vault", vault: true, nonce: SandboxBillingAgreementNonce},
		{name: "checkout", vault: false, nonce: SandboxOneTimePaymentNonce},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			listener := newRecordingListener()
			session, err := NewSandboxGateway("app", nil).NewSession(context.Background(), "tok", listener)
			require.NoError(t, err)

			require.ErrorIs(t, session.HandleBrowserSwitchResult(context.Background(), "app://onetouch/v1/success"), interfaces.ErrNoBrowserSwitchPending)

			var action *entities.PendingAction
			if tt.vault {
				action, err = session.RequestBillingAgreement(context.Background(), entities.PayPalRequest{})
			} else {
				action, err = session.RequestOneTimePayment(context.Background(), entities.PayPalRequest{})
			}
			require.NoError(t, err)
			assert.True(t, strings.HasPrefix(action.ApprovalURL, "https://www.sandbox.paypal.com/"))

			require.NoError(t, session.HandleBrowserSwitchResult(context.Background(), "app://onetouch/v1/success?token=x"))
			ev := listener.next(t)
			require.Equal(t, "nonce", ev.kind)
			assert.Equal(t, tt.nonce, ev.nonce.Nonce)
			assert.Equal(t, "PayPal", ev.nonce.TypeLabel)
			assert.Equal(t, SandboxPayerEmail, ev.nonce.Description)
		})
	}
}

func TestSandboxGateway_BrowserSwitchCancel(t *testing.T) {
	listener := newRecordingListener()
	session, err := NewSandboxGateway("app", nil).NewSession(context.Background(), "tok", listener)
	require.NoError(t, err)

	_, err = session.RequestOneTimePayment(context.Background(), entities.PayPalRequest{})
	require.NoError(t, err)
	require.NoError(t, session.HandleBrowserSwitchResult(context.Background(), "app://onetouch/v1/cancel"))
	assert.Equal(t, "cancel", listener.next(t).kind)
}

func TestSandboxGateway_ClosedSessionIsSilent(t *testing.T) {
	listener := newRecordingListener()
	session, err := NewSandboxGateway("app", nil).NewSession(context.Background(), "tok", listener)
	require.NoError(t, err)

	require.NoError(t, session.Close())
	session.Cancel()
	require.NoError(t, session.TokenizeCard(context.Background(), entities.CardDescriptor{Number: "4111"}))

	select {
	case ev := <-listener.events:
		t.Fatalf("unexpected event %+v", ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSandboxCardType(t *testing.T) {
	assert.Equal(t, "Visa", sandboxCardType("4111"))
	assert.Equal(t, "American Express", sandboxCardType("378282246310005"))
	assert.Equal(t, "MasterCard", sandboxCardType("5555"))
	assert.Equal(t, "Discover", sandboxCardType("6011"))
	assert.Equal(t, "Unknown", sandboxCardType("9"))
}
