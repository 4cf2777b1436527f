package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	LedgerDynamoDB = "dynamodb"
	LedgerNone     = "none"
)

// Config holds the service settings read from the environment (and .env,
// loaded by godotenv/autoload in main).
//
// Supported env vars:
//   - PORT (default: 8080)
//   - APP_ENV (default: production)
//   - PAYMENT_GATEWAY_MOCK / BRAINTREE_MOCK (sandbox SDK driver)
//   - BRAINTREE_BASE_URL (optional; overrides the client API URL derived from the authorization)
//   - BRAINTREE_RETURN_URL_SCHEME (default: com.paymentbridge.braintree)
//   - BRAINTREE_HTTP_TIMEOUT (default: 30s)
//   - RESULT_WAIT_TIMEOUT (default: 25s)
//   - PENDING_REQUEST_TTL (default: 30m)
//   - SESSION_LEDGER (dynamodb | none, default: dynamodb)
//   - SESSIONS_TABLE (default: payment_sessions)
type Config struct {
	Port                     int
	Env                      string
	MockGateway              bool
	BraintreeBaseURL         string
	BraintreeReturnURLScheme string
	BraintreeHTTPTimeout     time.Duration
	ResultWaitTimeout        time.Duration
	PendingRequestTTL        time.Duration
	SessionLedger            string
	SessionsTable            string
}

func Load() Config {
	return Config{
		Port:                     getenvInt("PORT", 8080),
		Env:                      getenvDefault("APP_ENV", "production"),
		MockGateway:              IsPaymentGatewayMockEnabled(),
		BraintreeBaseURL:         strings.TrimSpace(os.Getenv("BRAINTREE_BASE_URL")),
		BraintreeReturnURLScheme: getenvDefault("BRAINTREE_RETURN_URL_SCHEME", "com.paymentbridge.braintree"),
		BraintreeHTTPTimeout:     getenvDuration("BRAINTREE_HTTP_TIMEOUT", 30*time.Second),
		ResultWaitTimeout:        getenvDuration("RESULT_WAIT_TIMEOUT", 25*time.Second),
		PendingRequestTTL:        getenvDuration("PENDING_REQUEST_TTL", 30*time.Minute),
		SessionLedger:            strings.ToLower(getenvDefault("SESSION_LEDGER", LedgerDynamoDB)),
		SessionsTable:            getenvDefault("SESSIONS_TABLE", "payment_sessions"),
	}
}

// IsPaymentGatewayMockEnabled reports whether the sandbox SDK driver must be used.
func IsPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "BRAINTREE_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}
