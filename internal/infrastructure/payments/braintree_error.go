package payments

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// BraintreeError is a non-2xx answer from the client API.
type BraintreeError struct {
	StatusCode  int
	Message     string
	FieldErrors []BraintreeFieldError
}

type BraintreeFieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type braintreeErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	FieldErrors []struct {
		Field       string                `json:"field"`
		FieldErrors []BraintreeFieldError `json:"fieldErrors"`
	} `json:"fieldErrors"`
}

func newBraintreeError(status int, body []byte) *BraintreeError {
	e := &BraintreeError{StatusCode: status}

	var parsed braintreeErrorBody
	if err := json.Unmarshal(body, &parsed); err == nil {
		e.Message = parsed.Error.Message
		for _, group := range parsed.FieldErrors {
			e.FieldErrors = append(e.FieldErrors, group.FieldErrors...)
		}
	}
	if e.Message == "" {
		switch status {
		case http.StatusUnauthorized, http.StatusForbidden:
			e.Message = "authorization rejected by braintree"
		case http.StatusUpgradeRequired:
			e.Message = "client api version no longer supported"
		default:
			e.Message = strings.TrimSpace(string(body))
			if e.Message == "" {
				e.Message = http.StatusText(status)
			}
		}
	}
	return e
}

func (e *BraintreeError) Error() string {
	return fmt.Sprintf("braintree: status=%d message=%s", e.StatusCode, e.Message)
}
