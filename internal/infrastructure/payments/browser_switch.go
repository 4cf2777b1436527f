package payments

import (
	"net/url"
	"payment_bridge/internal/usecase/interfaces"
	"strings"
)

const (
	browserSwitchHost = "onetouch"
	successPath       = "/v1/success"
	cancelPath        = "/v1/cancel"
)

type browserSwitchOutcome int

const (
	browserSwitchSuccess browserSwitchOutcome = iota + 1
	browserSwitchCancel
)

func returnURLs(scheme string) (success, cancel string) {
	base := scheme + "://" + browserSwitchHost
	return base + successPath, base + cancelPath
}

// parseBrowserSwitchURL classifies the URL the PayPal approval page redirected
// to. Only URLs built by returnURLs for scheme are accepted.
func parseBrowserSwitchURL(scheme, raw string) (browserSwitchOutcome, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return 0, interfaces.ErrReturnURLRejected
	}
	if !strings.EqualFold(u.Scheme, scheme) || !strings.EqualFold(u.Host, browserSwitchHost) {
		return 0, interfaces.ErrReturnURLRejected
	}
	switch strings.TrimSuffix(u.Path, "/") {
	case successPath:
		return browserSwitchSuccess, nil
	case cancelPath:
		return browserSwitchCancel, nil
	}
	return 0, interfaces.ErrReturnURLRejected
}
