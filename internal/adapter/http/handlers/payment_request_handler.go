package handlers

import (
	"context"
	"errors"
	"net/http"
	request "payment_bridge/internal/adapter/http/dto/request"
	response "payment_bridge/internal/adapter/http/dto/response"
	"payment_bridge/internal/domain/entities"
	"payment_bridge/internal/usecase"
	"payment_bridge/internal/usecase/interfaces"
	"payment_bridge/pkg"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidPaymentRequestPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidBrowserSwitchPayload  = pkg.NewDomainErrorSimple("INVALID_RETURN_URL", "returnUrl is required", http.StatusBadRequest)
	errInvalidWaitParam             = pkg.NewDomainErrorSimple("INVALID_REQUEST", "wait must be a boolean", http.StatusBadRequest)
)

// PaymentRequestHandler exposes payment requests to the host application.
//
// Handlers wait up to waitTimeout for the result and answer 202 with the
// pending request otherwise; the host then polls or delivers the PayPal
// return URL.

type PaymentRequestHandler struct {
	usecase     usecase.IPaymentRequestUseCase
	waitTimeout time.Duration
	log         *zap.Logger
}

func NewPaymentRequestHandler(uc usecase.IPaymentRequestUseCase, waitTimeout time.Duration, log *zap.Logger) *PaymentRequestHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &PaymentRequestHandler{usecase: uc, waitTimeout: waitTimeout, log: log}
}

// CreatePaymentRequest godoc
// @Summary      Start a payment request
// @Description  Tokenizes a credit card or requests a PayPal nonce. Card results are awaited; PayPal requests answer 202 with the approval URL right away.
// @Tags         payment-requests
// @Accept       json
// @Produce      json
// @Param        request  body      request.PaymentRequest  true  "Payment request"
// @Success      200      {object}  response.PaymentResultResponse
// @Success      202      {object}  response.PaymentResultResponse
// @Failure      400      {object}  response.PaymentResultResponse
// @Failure      401      {object}  response.PaymentResultResponse
// @Failure      502      {object}  response.PaymentResultResponse
// @Router       /payment-requests [post]
func (h *PaymentRequestHandler) CreatePaymentRequest(c *gin.Context) {
	var payload request.PaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.log.Info("[payment][handler] invalid payload", zap.Error(err))
		c.JSON(errInvalidPaymentRequestPayload.HTTPStatus, errInvalidPaymentRequestPayload.ToHTTPError())
		return
	}
	h.log.Info("[payment][handler] create start", zap.String("type", payload.Type))

	started, err := h.usecase.Start(c.Request.Context(), payload.ToEnvelope())
	if err != nil {
		h.writeError(c, "create", err)
		return
	}
	// The result of a PayPal flow needs the host to present the approval page first.
	if started.Result == nil && started.PendingAction != nil {
		h.writeView(c, started)
		return
	}

	view, err := h.await(c, started.ID)
	if err != nil {
		h.writeError(c, "create", err)
		return
	}
	h.writeView(c, view)
}

// GetPaymentRequest godoc
// @Summary      Get the result of a payment request
// @Description  Waits for the result unless wait=false. A result is returned only once.
// @Tags         payment-requests
// @Produce      json
// @Param        id    path   string  true   "Payment request id"
// @Param        wait  query  bool    false  "Wait for the result (default true)"
// @Success      200   {object}  response.PaymentResultResponse
// @Success      202   {object}  response.PaymentResultResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /payment-requests/{id} [get]
func (h *PaymentRequestHandler) GetPaymentRequest(c *gin.Context) {
	id := c.Param("id")
	wait, err := strconv.ParseBool(c.DefaultQuery("wait", "true"))
	if err != nil {
		c.JSON(errInvalidWaitParam.HTTPStatus, errInvalidWaitParam.ToHTTPError())
		return
	}

	var view usecase.PaymentRequestView
	if !wait {
		view, err = h.usecase.Get(c.Request.Context(), id)
	} else {
		view, err = h.await(c, id)
	}
	if err != nil {
		h.writeError(c, "get", err)
		return
	}
	h.writeView(c, view)
}

// CompleteBrowserSwitch godoc
// @Summary      Deliver the PayPal return URL
// @Tags         payment-requests
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Payment request id"
// @Param        request  body      request.BrowserSwitchRequest  true  "Return URL"
// @Success      200      {object}  response.PaymentResultResponse
// @Success      202      {object}  response.PaymentResultResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /payment-requests/{id}/browser-switch [post]
func (h *PaymentRequestHandler) CompleteBrowserSwitch(c *gin.Context) {
	id := c.Param("id")
	var payload request.BrowserSwitchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBrowserSwitchPayload.HTTPStatus, errInvalidBrowserSwitchPayload.ToHTTPError())
		return
	}

	if _, err := h.usecase.CompleteBrowserSwitch(c.Request.Context(), id, payload.ReturnURL); err != nil {
		h.writeError(c, "browser-switch", err)
		return
	}

	view, err := h.await(c, id)
	if err != nil {
		h.writeError(c, "browser-switch", err)
		return
	}
	h.writeView(c, view)
}

// CancelPaymentRequest godoc
// @Summary      Cancel a payment request
// @Tags         payment-requests
// @Produce      json
// @Param        id   path      string  true  "Payment request id"
// @Success      200  {object}  response.PaymentResultResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payment-requests/{id} [delete]
func (h *PaymentRequestHandler) CancelPaymentRequest(c *gin.Context) {
	view, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, "cancel", err)
		return
	}
	h.writeView(c, view)
}

func (h *PaymentRequestHandler) await(c *gin.Context, id string) (usecase.PaymentRequestView, error) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.waitTimeout)
	defer cancel()
	return h.usecase.Await(ctx, id)
}

func (h *PaymentRequestHandler) writeView(c *gin.Context, view usecase.PaymentRequestView) {
	status := statusForView(view)
	h.log.Info("[payment][handler] respond",
		zap.String("request_id", view.ID),
		zap.String("state", string(view.State)),
		zap.Int("http_status", status))
	c.JSON(status, response.FromView(view))
}

func (h *PaymentRequestHandler) writeError(c *gin.Context, op string, err error) {
	appErr := mapPaymentRequestError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		h.log.Error("[payment][handler] "+op+" failed", zap.Error(err))
	} else {
		h.log.Info("[payment][handler] "+op+" rejected", zap.Error(err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func statusForView(view usecase.PaymentRequestView) int {
	if view.Result == nil {
		return http.StatusAccepted
	}
	if view.Result.Outcome != entities.OutcomeFailed {
		return http.StatusOK
	}
	switch view.Result.ErrorKind {
	case entities.ErrorKindInvalidRequestType:
		return http.StatusBadRequest
	case entities.ErrorKindSessionInitializationFailed:
		return http.StatusUnauthorized
	default:
		return http.StatusBadGateway
	}
}

func mapPaymentRequestError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentRequestID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid payment request id", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidReturnURL), errors.Is(err, interfaces.ErrReturnURLRejected):
		return pkg.NewDomainErrorSimple("INVALID_RETURN_URL", "Return URL does not belong to this integration", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentRequestNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_REQUEST_NOT_FOUND", "Payment request not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentRequestNotPending):
		return pkg.NewDomainErrorSimple("PAYMENT_REQUEST_NOT_PENDING", "Payment request already has a result", http.StatusConflict)
	case errors.Is(err, usecase.ErrBrowserSwitchNotExpected), errors.Is(err, interfaces.ErrNoBrowserSwitchPending):
		return pkg.NewDomainErrorSimple("BROWSER_SWITCH_NOT_EXPECTED", "Payment request is not waiting for a PayPal approval", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
