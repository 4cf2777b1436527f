package payments

import (
	"context"
	"net/http"
	"payment_bridge/internal/domain/entities"
	"payment_bridge/internal/usecase/interfaces"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Braintree sandbox test nonces.
const (
	SandboxCardNonce             = "fake-valid-nonce"
	SandboxOneTimePaymentNonce   = "fake-paypal-one-time-nonce"
	SandboxBillingAgreementNonce = "fake-paypal-billing-agreement-nonce"
	SandboxPayerEmail            = "sandbox-payer@paypal.test"
)

// SandboxGateway is the mock-mode SDK. It never leaves the process and
// resolves flows with the Braintree sandbox test nonces.
type SandboxGateway struct {
	returnURLScheme string
	log             *zap.Logger
}

var _ interfaces.IPaymentSDK = (*SandboxGateway)(nil)

func NewSandboxGateway(returnURLScheme string, log *zap.Logger) *SandboxGateway {
	if log == nil {
		log = zap.NewNop()
	}
	log.Info("[payment][gateway] sandbox mode enabled")
	return &SandboxGateway{returnURLScheme: returnURLScheme, log: log}
}

func (g *SandboxGateway) NewSession(_ context.Context, authorization string, listener interfaces.ISessionListener) (interfaces.ISDKSession, error) {
	if strings.TrimSpace(authorization) == "" || listener == nil {
		return nil, ErrInvalidAuthorization
	}
	return &sandboxSession{returnURLScheme: g.returnURLScheme, listener: listener, log: g.log}, nil
}

type sandboxSession struct {
	returnURLScheme string
	listener        interfaces.ISessionListener
	log             *zap.Logger

	mu         sync.Mutex
	payPalFlow entities.PaymentFlow
	closed     bool
}

func (s *sandboxSession) TokenizeCard(_ context.Context, card entities.CardDescriptor) error {
	go func() {
		if strings.TrimSpace(card.Number) == "" {
			s.emitError(&BraintreeError{StatusCode: http.StatusUnprocessableEntity, Message: "Credit card number is required"})
			return
		}
		s.emit(func(l interfaces.ISessionListener) {
			l.OnPaymentMethodNonceCreated(entities.PaymentMethodNonce{
				Nonce:       SandboxCardNonce,
				TypeLabel:   sandboxCardType(card.Number),
				Description: "ending in ••" + lastTwo(card.Number),
			})
		})
	}()
	return nil
}

func (s *sandboxSession) RequestBillingAgreement(_ context.Context, _ entities.PayPalRequest) (*entities.PendingAction, error) {
	return s.approval(entities.PaymentFlowVault, "https://www.sandbox.paypal.com/agreements/approve?ba_token=BA-")
}

func (s *sandboxSession) RequestOneTimePayment(_ context.Context, _ entities.PayPalRequest) (*entities.PendingAction, error) {
	return s.approval(entities.PaymentFlowCheckout, "https://www.sandbox.paypal.com/checkoutnow?token=EC-")
}

func (s *sandboxSession) HandleBrowserSwitchResult(_ context.Context, returnURL string) error {
	outcome, err := parseBrowserSwitchURL(s.returnURLScheme, returnURL)
	if err != nil {
		return err
	}
	s.mu.Lock()
	flow := s.payPalFlow
	s.payPalFlow = entities.PaymentFlowNone
	s.mu.Unlock()
	if flow == entities.PaymentFlowNone {
		return interfaces.ErrNoBrowserSwitchPending
	}

	if outcome == browserSwitchCancel {
		s.emit(func(l interfaces.ISessionListener) { l.OnCancel() })
		return nil
	}
	nonce := SandboxOneTimePaymentNonce
	if flow == entities.PaymentFlowVault {
		nonce = SandboxBillingAgreementNonce
	}
	s.emit(func(l interfaces.ISessionListener) {
		l.OnPaymentMethodNonceCreated(entities.PaymentMethodNonce{
			Nonce:       nonce,
			TypeLabel:   payPalTypeLabel,
			Description: SandboxPayerEmail,
		})
	})
	return nil
}

func (s *sandboxSession) Cancel() {
	s.emit(func(l interfaces.ISessionListener) { l.OnCancel() })
}

func (s *sandboxSession) Close() error {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	return nil
}

func (s *sandboxSession) approval(flow entities.PaymentFlow, prefix string) (*entities.PendingAction, error) {
	s.mu.Lock()
	s.payPalFlow = flow
	s.mu.Unlock()
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:17])
	s.log.Debug("[payment][gateway] sandbox paypal approval pending", zap.String("flow", string(flow)))
	return &entities.PendingAction{ApprovalURL: prefix + token}, nil
}

func (s *sandboxSession) emitError(err error) {
	s.emit(func(l interfaces.ISessionListener) { l.OnError(err) })
}

// emit delivers an event unless the session was already closed.
func (s *sandboxSession) emit(fn func(interfaces.ISessionListener)) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return
	}
	fn(s.listener)
}

func sandboxCardType(number string) string {
	n := strings.TrimSpace(number)
	switch {
	case strings.HasPrefix(n, "4"):
		return "Visa"
	case strings.HasPrefix(n, "34"), strings.HasPrefix(n, "37"):
		return "American Express"
	case strings.HasPrefix(n, "5"), strings.HasPrefix(n, "2"):
		return "MasterCard"
	case strings.HasPrefix(n, "6"):
		return "Discover"
	}
	return "Unknown"
}

func lastTwo(number string) string {
	n := strings.TrimSpace(number)
	if len(n) < 2 {
		return n
	}
	return n[len(n)-2:]
}
