package routes

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	_ "payment_bridge/docs" // swag generated
	"payment_bridge/internal/adapter/http/handlers"
	"payment_bridge/internal/adapter/persistence/repository"
	"payment_bridge/internal/config"
	"payment_bridge/internal/infrastructure/database"
	"payment_bridge/internal/infrastructure/logger"
	"payment_bridge/internal/infrastructure/metrics"
	"payment_bridge/internal/infrastructure/payments"
	"payment_bridge/internal/usecase"
	"payment_bridge/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Run wires the service and blocks serving HTTP on cfg.Port.
func Run(cfg config.Config, log *zap.Logger) error {
	log = logger.OrNop(log)
	sdk := newPaymentSDK(cfg, log)
	ledger, err := newSessionLedger(cfg, log)
	if err != nil {
		return err
	}
	m := metrics.NewPaymentMetrics(prometheus.DefaultRegisterer)

	uc := usecase.NewPaymentRequestUseCase(sdk, ledger, m, log).WithPendingTTL(cfg.PendingRequestTTL)
	go uc.RunExpiry(context.Background(), expiryInterval(cfg.PendingRequestTTL))
	router := NewRouter(handlers.NewPaymentRequestHandler(uc, cfg.ResultWaitTimeout, log), log)

	log.Info("[payment][http] listening", zap.Int("port", cfg.Port), zap.Bool("mock_gateway", cfg.MockGateway), zap.String("ledger", cfg.SessionLedger))
	if err := router.Run(":" + strconv.Itoa(cfg.Port)); err != nil {
		return fmt.Errorf("failed to start the application: %w", err)
	}
	return nil
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(h *handlers.PaymentRequestHandler, log *zap.Logger) *gin.Engine {
	log = logger.OrNop(log)
	router := gin.New()
	setMiddlewares(router, log)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaymentRequestRoutes(v1, h)
	return router
}

// expiryInterval sweeps twice per TTL, at most once a minute.
func expiryInterval(ttl time.Duration) time.Duration {
	interval := ttl / 2
	if interval > time.Minute {
		interval = time.Minute
	}
	return interval
}

func newPaymentSDK(cfg config.Config, log *zap.Logger) interfaces.IPaymentSDK {
	if cfg.MockGateway {
		return payments.NewSandboxGateway(cfg.BraintreeReturnURLScheme, log)
	}
	return payments.NewBraintreeGateway(payments.BraintreeConfig{
		BaseURL:         cfg.BraintreeBaseURL,
		ReturnURLScheme: cfg.BraintreeReturnURLScheme,
		HTTPTimeout:     cfg.BraintreeHTTPTimeout,
	}, log)
}

func newSessionLedger(cfg config.Config, log *zap.Logger) (interfaces.ISessionRepository, error) {
	switch cfg.SessionLedger {
	case config.LedgerNone:
		log.Info("[payment][ledger] disabled")
		return nil, nil
	case config.LedgerDynamoDB:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		ddb, err := database.ConnectDynamoDB(ctx)
		if err != nil {
			return nil, err
		}
		return repository.NewSessionDynamoRepository(ddb, cfg.SessionsTable), nil
	default:
		return nil, fmt.Errorf("unknown SESSION_LEDGER %q", cfg.SessionLedger)
	}
}

func setMiddlewares(router *gin.Engine, log *zap.Logger) {
	router.Use(requestLogger(log))
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Error("[payment][http] recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}

func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("[payment][http] request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
