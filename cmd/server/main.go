package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"brighterbiz-api/internal/common/config"
	"brighterbiz-api/internal/common/logger"
	"brighterbiz-api/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logger.New("info", "console")
		fallback.Fatal("config load failed", zap.Error(err))
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	// Credentials are checked per request, not at startup, but missing ones
	// are worth flagging as soon as the process comes up.
	if cfg.OpenAI.APIKey == "" {
		log.Warn("OPENAI_API_KEY is not set; recommendation requests will fail", nil)
	}
	if cfg.Webhook.URL == "" {
		log.Warn("N8N_WEBHOOK_URL is not set; consultation requests will fail", nil)
	}

	srv := server.New(cfg, log)

	go func() {
		log.Info("server listening", map[string]interface{}{
			"addr":        srv.Addr,
			"environment": cfg.App.Environment,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down", nil)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("forced shutdown", nil)
	}

	log.Info("server stopped", nil)
}
