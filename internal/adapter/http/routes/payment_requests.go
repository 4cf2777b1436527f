package routes

import (
	"payment_bridge/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathPaymentRequests = "/payment-requests"

func addPaymentRequestRoutes(rg *gin.RouterGroup, h *handlers.PaymentRequestHandler) {
	requests := rg.Group(PathPaymentRequests)
	{
		requests.POST("", h.CreatePaymentRequest)
		requests.GET("/:id", h.GetPaymentRequest)
		requests.POST("/:id/browser-switch", h.CompleteBrowserSwitch)
		requests.DELETE("/:id", h.CancelPaymentRequest)
	}
}
