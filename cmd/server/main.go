// cmd/server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"ai-navigator/internal/common/config"
	"ai-navigator/internal/common/database"
	"ai-navigator/internal/common/logger"
	"ai-navigator/internal/common/observability"
	generateroadmap "ai-navigator/internal/handlers/generate-roadmap"
	"ai-navigator/internal/handlers/status"
	"ai-navigator/internal/provider"
	"ai-navigator/internal/quota"
	"ai-navigator/internal/server"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting roadmap service...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log = logger.NewZapAdapter(zapLog)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Redis with retry ---
	var rc *database.RedisClient
	err = retryWithBackoff(func() error {
		var err error
		rc, err = database.NewRedis(cfg.Database.Redis)
		if err != nil {
			return err
		}
		return rc.Ping(ctx)
	}, 10, 2*time.Second, zapLog, "Redis connection")

	if err != nil {
		zapLog.Fatal("redis failed after retries", zap.Error(err))
	}
	defer rc.Close()
	zapLog.Info("Redis connected successfully")

	providers := buildProviders(cfg.GenAI)
	quotaStore := quota.NewRedisStore(rc.GetClient(), cfg.Quota.KeyPrefix, cfg.Quota.TTLDays)

	router := server.NewRouter(server.Deps{
		Generate: generateroadmap.NewHandler(
			generateroadmap.ConfigFromGenAI(cfg.GenAI),
			providers,
			quotaStore,
			log,
		),
		Status: status.NewHandler(rc.GetClient(), log),
		Redis:  rc,
		Logger: log,
		Obs:    obs,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Millisecond,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Millisecond,
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLog.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Millisecond)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("graceful shutdown failed", zap.Error(err))
	}

	zapLog.Info("Roadmap service stopped")
}

// buildProviders wires every backend that can serve a generation. In
// local mode the map stays empty and the handler synthesizes instead.
func buildProviders(genai config.GenAIConfig) map[string]provider.Provider {
	providers := make(map[string]provider.Provider)
	if genai.Mode != "provider" {
		return providers
	}

	// The configured model belongs to the default backend; the other
	// one falls back to its stock model for BYOK requests.
	geminiModel, openaiModel := "gemini-1.5-flash", "gpt-4o-mini"
	if genai.Provider == "openai" {
		openaiModel = genai.Model
	} else {
		geminiModel = genai.Model
	}

	providers["gemini"] = provider.NewGeminiProvider(provider.GeminiConfig{
		BaseURL:    genai.BaseURL,
		Model:      geminiModel,
		APIKey:     genai.APIKey,
		MaxRetries: genai.MaxRetries,
	})

	providers["openai"] = provider.NewOpenAIProvider(provider.OpenAIConfig{
		Model:  openaiModel,
		APIKey: genai.APIKey,
	})

	return providers
}
