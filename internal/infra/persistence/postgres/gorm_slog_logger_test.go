package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"foodlog/config"
)

func newBufferedGormLogger(buf *bytes.Buffer, level slog.Level, cfg *config.Config) logger.Interface {
	base := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level}))

	return newGormSlogLogger(base, cfg)
}

func fixedSQL() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_TraceLevels(t *testing.T) {
	cfg := &config.Config{Postgres: &config.PostgresConfig{SlowQueryThreshold: 10 * time.Millisecond}}

	tests := []struct {
		name    string
		begin   time.Time
		err     error
		want    string
		wantOut bool
	}{
		{name: "fast query is quiet", begin: time.Now()},
		{name: "slow query warns", begin: time.Now().Add(-time.Second), want: "GORM slow query", wantOut: true},
		{name: "failure is logged", begin: time.Now(), err: errors.New("boom"), want: "GORM query failed", wantOut: true},
		{name: "record not found is quiet", begin: time.Now(), err: gorm.ErrRecordNotFound},
		{name: "duplicate key is quiet", begin: time.Now(), err: gorm.ErrDuplicatedKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := newBufferedGormLogger(&buf, slog.LevelInfo, cfg)

			l.Trace(context.Background(), tt.begin, fixedSQL, tt.err)

			if !tt.wantOut {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "SELECT 1")
		})
	}
}

func TestGormSlogLogger_DebugShowsRejectedQueries(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferedGormLogger(&buf, slog.LevelDebug, &config.Config{})

	l.Trace(context.Background(), time.Now(), fixedSQL, gorm.ErrDuplicatedKey)

	assert.Contains(t, buf.String(), "GORM query rejected")
}

func TestGormSlogLogger_DebugConfigLogsEveryQuery(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Debug = true

	var buf bytes.Buffer
	l := newBufferedGormLogger(&buf, slog.LevelInfo, cfg)

	l.Trace(context.Background(), time.Now(), fixedSQL, nil)
	assert.Contains(t, buf.String(), "GORM query")

	buf.Reset()
	l.LogMode(logger.Silent).Trace(context.Background(), time.Now(), fixedSQL, nil)
	assert.Empty(t, buf.String())
}
