package logger_test

import (
	"context"
	"testing"

	"github.com/Arjun0606/cabbageseo-sub003/pkg/logger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	for _, environment := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment} {
		t.Run(environment, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(environment)
			})
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestGet_FallsBackToDefault(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	l := logger.Get(context.Background())
	require.NotNil(t, l, "empty context should yield the default logger")

	custom, _ := zap.NewDevelopment()
	ctx := logger.WithLogger(context.Background(), custom)
	require.Equal(t, custom, logger.Get(ctx), "context logger should win over the default")
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("domain", "example.com"))
	logger.Info(ctx, "scan started")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "scan started", entries[0].Message)
	require.Equal(t, "example.com", entries[0].ContextMap()["domain"])
}

func TestIsDebug(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	require.True(t, logger.IsDebug(context.Background()), "development logger should be at debug level")

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	infoLogger, _ := cfg.Build()
	ctx := logger.WithLogger(context.Background(), infoLogger)
	require.False(t, logger.IsDebug(ctx))
}

func TestLevelHelpers(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "debug message")
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	require.Len(t, logs.All(), 4)
}
