package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"payment_bridge/internal/domain/entities"
	"payment_bridge/internal/usecase/interfaces"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	pathTokenizeCard            = "v1/payment_methods/credit_cards"
	pathTokenizePayPalAccount   = "v1/payment_methods/paypal_accounts"
	pathCreatePaymentResource   = "v1/paypal_hermes/create_payment_resource"
	pathSetupBillingAgreement   = "v1/paypal_hermes/setup_billing_agreement"
	payPalTypeLabel             = "PayPal"
	defaultBraintreeHTTPTimeout = 30 * time.Second
)

// BraintreeConfig configures the client API driver.
type BraintreeConfig struct {
	// BaseURL replaces the client API URL derived from the authorization.
	BaseURL         string
	ReturnURLScheme string
	HTTPTimeout     time.Duration
}

// BraintreeGateway drives the Braintree client API the way the mobile SDKs do:
// card and PayPal account tokenization plus the PayPal approval flows.
type BraintreeGateway struct {
	cfg BraintreeConfig
	log *zap.Logger
}

var _ interfaces.IPaymentSDK = (*BraintreeGateway)(nil)

func NewBraintreeGateway(cfg BraintreeConfig, log *zap.Logger) *BraintreeGateway {
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = defaultBraintreeHTTPTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &BraintreeGateway{cfg: cfg, log: log}
}

func (g *BraintreeGateway) NewSession(ctx context.Context, authorization string, listener interfaces.ISessionListener) (interfaces.ISDKSession, error) {
	auth, err := parseAuthorization(authorization)
	if err != nil {
		g.log.Info("[payment][gateway] invalid authorization", zap.Error(err))
		return nil, err
	}
	if listener == nil {
		return nil, fmt.Errorf("braintree session requires a listener")
	}

	baseURL := auth.baseURL
	if g.cfg.BaseURL != "" {
		baseURL = strings.TrimSuffix(g.cfg.BaseURL, "/") + "/"
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(g.cfg.HTTPTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", "payment-bridge/braintree-go")
	if auth.kind == authTokenizationKey {
		client.SetHeader("Client-Key", auth.raw)
	}

	sessionCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	s := &braintreeSession{
		auth:            auth,
		client:          client,
		listener:        listener,
		returnURLScheme: g.cfg.ReturnURLScheme,
		sessionID:       strings.ReplaceAll(uuid.NewString(), "-", ""),
		ctx:             sessionCtx,
		cancel:          cancel,
		log:             g.log,
	}
	g.log.Debug("[payment][gateway] session created", zap.String("session_id", s.sessionID), zap.String("base_url", baseURL))
	return s, nil
}

type braintreeSession struct {
	auth            clientAuthorization
	client          *resty.Client
	listener        interfaces.ISessionListener
	returnURLScheme string
	sessionID       string
	ctx             context.Context
	cancel          context.CancelFunc
	log             *zap.Logger

	mu         sync.Mutex
	payPalFlow entities.PaymentFlow
	payPalReq  entities.PayPalRequest
}

type cardTokenizeResponse struct {
	CreditCards []nonceJSON `json:"creditCards"`
}

type payPalTokenizeResponse struct {
	PayPalAccounts []nonceJSON `json:"paypalAccounts"`
}

type nonceJSON struct {
	Nonce       string `json:"nonce"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Default     bool   `json:"default"`
	Details     struct {
		CardType  string `json:"cardType"`
		LastTwo   string `json:"lastTwo"`
		Email     string `json:"email"`
		PayerInfo struct {
			Email string `json:"email"`
		} `json:"payerInfo"`
	} `json:"details"`
}

type paymentResourceResponse struct {
	PaymentResource struct {
		RedirectURL string `json:"redirectUrl"`
	} `json:"paymentResource"`
	AgreementSetup struct {
		ApprovalURL string `json:"approvalUrl"`
	} `json:"agreementSetup"`
}

func (s *braintreeSession) TokenizeCard(_ context.Context, card entities.CardDescriptor) error {
	body := map[string]any{
		"credit_card": map[string]any{
			"number":           card.Number,
			"expiration_month": card.ExpirationMonth,
			"expiration_year":  card.ExpirationYear,
			"options":          map[string]any{"validate": false},
		},
	}

	go func() {
		var out cardTokenizeResponse
		if err := s.post(s.ctx, pathTokenizeCard, body, &out); err != nil {
			s.fail("card tokenize", err)
			return
		}
		if len(out.CreditCards) == 0 {
			s.fail("card tokenize", fmt.Errorf("braintree returned no credit card nonce"))
			return
		}
		s.log.Info("[payment][gateway] card tokenized", zap.String("session_id", s.sessionID))
		s.listener.OnPaymentMethodNonceCreated(out.CreditCards[0].cardNonce())
	}()
	return nil
}

func (s *braintreeSession) RequestBillingAgreement(ctx context.Context, req entities.PayPalRequest) (*entities.PendingAction, error) {
	body := s.payPalBody(req)
	if req.BillingAgreementDescription != "" {
		body["description"] = req.BillingAgreementDescription
	}

	var out paymentResourceResponse
	if err := s.post(ctx, pathSetupBillingAgreement, body, &out); err != nil {
		s.log.Info("[payment][gateway] setup billing agreement failed", zap.String("session_id", s.sessionID), zap.Error(err))
		return nil, err
	}
	return s.awaitApproval(entities.PaymentFlowVault, req, out.AgreementSetup.ApprovalURL)
}

func (s *braintreeSession) RequestOneTimePayment(ctx context.Context, req entities.PayPalRequest) (*entities.PendingAction, error) {
	body := s.payPalBody(req)
	if req.Amount != nil {
		body["amount"] = *req.Amount
	}
	body["intent"] = req.Intent

	var out paymentResourceResponse
	if err := s.post(ctx, pathCreatePaymentResource, body, &out); err != nil {
		s.log.Info("[payment][gateway] create payment resource failed", zap.String("session_id", s.sessionID), zap.Error(err))
		return nil, err
	}
	return s.awaitApproval(entities.PaymentFlowCheckout, req, out.PaymentResource.RedirectURL)
}

func (s *braintreeSession) HandleBrowserSwitchResult(_ context.Context, returnURL string) error {
	outcome, err := parseBrowserSwitchURL(s.returnURLScheme, returnURL)
	if err != nil {
		return err
	}

	s.mu.Lock()
	flow, req := s.payPalFlow, s.payPalReq
	s.payPalFlow = entities.PaymentFlowNone
	s.mu.Unlock()
	if flow == entities.PaymentFlowNone {
		return interfaces.ErrNoBrowserSwitchPending
	}

	if outcome == browserSwitchCancel {
		s.log.Info("[payment][gateway] paypal approval canceled", zap.String("session_id", s.sessionID))
		s.listener.OnCancel()
		return nil
	}

	account := map[string]any{
		"correlation_id": s.sessionID,
		"response":       map[string]any{"webURL": returnURL},
		"response_type":  "web",
		"options":        map[string]any{"validate": false},
	}
	if flow == entities.PaymentFlowCheckout {
		account["intent"] = req.Intent
	}
	body := map[string]any{"paypal_account": account}

	go func() {
		var out payPalTokenizeResponse
		if err := s.post(s.ctx, pathTokenizePayPalAccount, body, &out); err != nil {
			s.fail("paypal tokenize", err)
			return
		}
		if len(out.PayPalAccounts) == 0 {
			s.fail("paypal tokenize", fmt.Errorf("braintree returned no paypal account nonce"))
			return
		}
		s.log.Info("[payment][gateway] paypal account tokenized", zap.String("session_id", s.sessionID), zap.String("flow", string(flow)))
		s.listener.OnPaymentMethodNonceCreated(out.PayPalAccounts[0].payPalNonce())
	}()
	return nil
}

func (s *braintreeSession) Cancel() {
	s.cancel()
}

func (s *braintreeSession) Close() error {
	s.cancel()
	return nil
}

func (s *braintreeSession) payPalBody(req entities.PayPalRequest) map[string]any {
	success, cancel := returnURLs(s.returnURLScheme)
	addr := req.ShippingAddressOverride

	profile := map[string]any{
		"no_shipping":      false,
		"address_override": true,
	}
	if req.DisplayName != "" {
		profile["brand_name"] = req.DisplayName
	}

	body := map[string]any{
		"return_url":          success,
		"cancel_url":          cancel,
		"offer_paypal_credit": false,
		"experience_profile":  profile,
		"recipient_name":      addr.RecipientName,
		"line1":               addr.StreetAddress,
		"city":                addr.Locality,
		"postal_code":         addr.PostalCode,
		"country_code":        addr.CountryCodeAlpha2,
	}
	if req.CurrencyCode != "" {
		body["currency_iso_code"] = req.CurrencyCode
	}
	return body
}

func (s *braintreeSession) awaitApproval(flow entities.PaymentFlow, req entities.PayPalRequest, approvalURL string) (*entities.PendingAction, error) {
	if approvalURL == "" {
		return nil, fmt.Errorf("braintree returned no paypal approval url")
	}
	s.mu.Lock()
	s.payPalFlow = flow
	s.payPalReq = req
	s.mu.Unlock()
	s.log.Info("[payment][gateway] paypal approval pending", zap.String("session_id", s.sessionID), zap.String("flow", string(flow)))
	return &entities.PendingAction{ApprovalURL: approvalURL}, nil
}

func (s *braintreeSession) post(ctx context.Context, path string, body map[string]any, out any) error {
	body["_meta"] = map[string]any{
		"source":      "client",
		"integration": "custom",
		"sessionId":   s.sessionID,
	}
	if s.auth.kind == authClientToken {
		body["authorizationFingerprint"] = s.auth.fingerprint
	}

	resp, err := s.client.R().SetContext(ctx).SetBody(body).Post(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return newBraintreeError(resp.StatusCode(), resp.Body())
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode braintree response: %w", err)
	}
	return nil
}

// fail reports err through the listener unless the session was canceled or
// closed, in which case the result was already produced.
func (s *braintreeSession) fail(op string, err error) {
	if s.ctx.Err() != nil {
		s.log.Debug("[payment][gateway] dropped error after session end", zap.String("op", op), zap.Error(err))
		return
	}
	s.log.Info("[payment][gateway] "+op+" failed", zap.String("session_id", s.sessionID), zap.Error(err))
	s.listener.OnError(err)
}

func (n nonceJSON) cardNonce() entities.PaymentMethodNonce {
	typeLabel := n.Details.CardType
	if typeLabel == "" {
		typeLabel = n.Type
	}
	description := n.Description
	if n.Details.LastTwo != "" {
		description = "ending in ••" + n.Details.LastTwo
	}
	return entities.PaymentMethodNonce{
		Nonce:       n.Nonce,
		TypeLabel:   typeLabel,
		Description: description,
		IsDefault:   n.Default,
	}
}

func (n nonceJSON) payPalNonce() entities.PaymentMethodNonce {
	description := n.Description
	if email := firstNonEmpty(n.Details.Email, n.Details.PayerInfo.Email); email != "" {
		description = email
	}
	return entities.PaymentMethodNonce{
		Nonce:       n.Nonce,
		TypeLabel:   payPalTypeLabel,
		Description: description,
		IsDefault:   n.Default,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
