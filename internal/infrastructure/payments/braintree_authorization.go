package payments

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	ErrInvalidAuthorization = errors.New("authorization is not a tokenization key or client token")
	ErrUnknownEnvironment   = errors.New("unknown braintree environment")
)

var tokenizationKeyPattern = regexp.MustCompile(`^[a-zA-Z0-9]+_[a-zA-Z0-9]+_[a-zA-Z0-9_]+$`)

type authorizationKind int

const (
	authTokenizationKey authorizationKind = iota + 1
	authClientToken
)

// clientAuthorization is a parsed tokenization key or client token.
type clientAuthorization struct {
	kind        authorizationKind
	raw         string
	fingerprint string
	baseURL     string
}

type clientTokenPayload struct {
	AuthorizationFingerprint string `json:"authorizationFingerprint"`
	ConfigURL                string `json:"configUrl"`
}

// parseAuthorization accepts a tokenization key (<environment>_<id>_<merchant id>)
// or a base64 client token carrying an authorization fingerprint and a configuration URL.
func parseAuthorization(raw string) (clientAuthorization, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return clientAuthorization{}, ErrInvalidAuthorization
	}
	if tokenizationKeyPattern.MatchString(raw) {
		return parseTokenizationKey(raw)
	}
	return parseClientToken(raw)
}

func parseTokenizationKey(raw string) (clientAuthorization, error) {
	parts := strings.SplitN(raw, "_", 3)
	env, merchantID := parts[0], parts[2]

	var host string
	switch env {
	case "development":
		host = "http://localhost:3000"
	case "sandbox":
		host = "https://api.sandbox.braintreegateway.com"
	case "production":
		host = "https://api.braintreegateway.com"
	default:
		return clientAuthorization{}, fmt.Errorf("%w: %q", ErrUnknownEnvironment, env)
	}

	return clientAuthorization{
		kind:    authTokenizationKey,
		raw:     raw,
		baseURL: fmt.Sprintf("%s/merchants/%s/client_api/", host, merchantID),
	}, nil
}

func parseClientToken(raw string) (clientAuthorization, error) {
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return clientAuthorization{}, ErrInvalidAuthorization
	}
	var payload clientTokenPayload
	if err := json.Unmarshal(decoded, &payload); err != nil {
		return clientAuthorization{}, ErrInvalidAuthorization
	}
	if strings.TrimSpace(payload.AuthorizationFingerprint) == "" || strings.TrimSpace(payload.ConfigURL) == "" {
		return clientAuthorization{}, ErrInvalidAuthorization
	}

	base := strings.TrimSuffix(payload.ConfigURL, "v1/configuration")
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return clientAuthorization{
		kind:        authClientToken,
		raw:         raw,
		fingerprint: payload.AuthorizationFingerprint,
		baseURL:     base,
	}, nil
}
