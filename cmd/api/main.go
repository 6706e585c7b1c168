package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-booking/internal/db"
	"github.com/BruksfildServices01/salon-booking/internal/logging"
	"github.com/BruksfildServices01/salon-booking/internal/middleware"
	"github.com/BruksfildServices01/salon-booking/internal/notify"
	"github.com/BruksfildServices01/salon-booking/internal/payments"
	"github.com/BruksfildServices01/salon-booking/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logging.NewLogger(cfg.Env)
	defer log.Sync()

	db := dbpkg.NewDB(cfg)

	// Colaboradores externos: construídos uma vez, vivem o processo
	// inteiro (nunca por request).
	paymentsClient, err := payments.NewMercadoPago(cfg)
	if err != nil {
		log.Fatal("failed to init payment client", zap.Error(err))
	}

	var notifier notify.Notifier
	if cfg.SMTPHost != "" {
		notifier = notify.NewMailer(cfg)
	} else {
		notifier = notify.NewLogNotifier(log)
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, paymentsClient, notifier, log)

	log.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
