package main

import (
	"fmt"
	"os"

	_ "payment_bridge/docs"
	"payment_bridge/internal/adapter/http/routes"
	"payment_bridge/internal/config"
	"payment_bridge/internal/infrastructure/logger"

	"github.com/gin-gonic/gin"
	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Payment Bridge API
// @version         1.0
// @description     Tokenizes credit cards and obtains PayPal nonces through Braintree.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg := config.Load()

	log, err := logger.New(cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if cfg.Env != "development" && cfg.Env != "dev" && cfg.Env != "local" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := routes.Run(cfg, log); err != nil {
		log.Fatal("[payment][main] server stopped", zap.Error(err))
	}
}
