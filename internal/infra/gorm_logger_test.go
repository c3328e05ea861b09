package infra

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func observedGormLogger(level logger.LogLevel) (logger.Interface, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return newGormLogger(zap.New(core), level), logs
}

func statement() (string, int64) { return "SELECT 1", 1 }

func TestGormLogger_FailedQueryIsLoggedAsError(t *testing.T) {
	l, logs := observedGormLogger(logger.Warn)

	l.Trace(context.Background(), time.Now(), statement, errors.New("connection reset"))

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "gorm", entry.LoggerName)
	assert.Equal(t, "SELECT 1", entry.ContextMap()["sql"])
}

func TestGormLogger_RecordNotFoundIsQuiet(t *testing.T) {
	l, logs := observedGormLogger(logger.Warn)

	l.Trace(context.Background(), time.Now(), statement, gorm.ErrRecordNotFound)

	assert.Zero(t, logs.Len())
}

func TestGormLogger_SlowQueryWarns(t *testing.T) {
	l, logs := observedGormLogger(logger.Warn)

	l.Trace(context.Background(), time.Now().Add(-time.Second), statement, nil)
	l.Trace(context.Background(), time.Now(), statement, nil)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.WarnLevel, logs.All()[0].Level)
	assert.Equal(t, "slow query", logs.All()[0].Message)
}

func TestGormLogger_LogModeFiltersMessages(t *testing.T) {
	l, logs := observedGormLogger(logger.Warn)

	l.Info(context.Background(), "opened %s", "pool")
	l.Warn(context.Background(), "retrying %d", 2)
	assert.Equal(t, 1, logs.Len())

	l.LogMode(logger.Silent).Error(context.Background(), "ignored")
	l.LogMode(logger.Info).Info(context.Background(), "opened %s", "pool")
	require.Equal(t, 2, logs.Len())
	assert.Equal(t, "opened pool", logs.All()[1].Message)
}
