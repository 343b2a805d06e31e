package main

import (
	"flag"
	"fmt"
	"net/http"
	"time"

	"github.com/Tomaaaaaa13/Assignment2-ProgrammingForFinance/internal/auth"
	"github.com/Tomaaaaaa13/Assignment2-ProgrammingForFinance/internal/cache"
	"github.com/Tomaaaaaa13/Assignment2-ProgrammingForFinance/internal/config"
	"github.com/Tomaaaaaa13/Assignment2-ProgrammingForFinance/internal/server"
	"github.com/Tomaaaaaa13/Assignment2-ProgrammingForFinance/pkg/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set at build time via -ldflags.
var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	format := loggingConfig.Format
	if format == "" {
		format = "json"
	}

	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
	case "json":
		zapConfig = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)

	return zapConfig.Build()
}

// buildAuthenticator constructs the login gate from the configured
// credentials, preferring a bcrypt hash over a plaintext password.
func buildAuthenticator(cfg config.AuthConfig) (auth.Authenticator, error) {
	if cfg.Username == "" {
		return auth.Denied{}, nil
	}
	if cfg.PasswordHash != "" {
		return auth.NewStatic(cfg.Username, cfg.PasswordHash), nil
	}
	if cfg.Password != "" {
		return auth.NewStaticFromPassword(cfg.Username, cfg.Password)
	}
	return auth.Denied{}, nil
}

// buildCache constructs the schedule cache for the configured backend.
func buildCache(cfg config.CacheConfig) cache.Cache {
	if cfg.Backend == config.CacheBackendRedis && cfg.RedisAddress != "" {
		return cache.NewRedis(cfg.RedisAddress)
	}
	return cache.NewMemory()
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	address := flag.String("addr", "", "listen address override")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	authenticator, err := buildAuthenticator(conf.Server.Auth)
	if err != nil {
		logger.Fatal("failed to build authenticator",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	results := buildCache(conf.Server.Cache)

	handler := server.NewHandler(logger, authenticator, results, conf.Server.MaxUploadSize, version)

	listenAddress := conf.Server.Address
	if *address != "" {
		listenAddress = *address
	}

	httpServer := &http.Server{
		Addr:         listenAddress,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	logger.Info("starting loan calculator server",
		zap.String("op", "main"),
		zap.String("address", listenAddress),
		zap.String("cacheBackend", conf.Server.Cache.Backend),
	)

	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server failed",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}
}
