// Package logger provides a structured, levelled logger built on log/slog.
//
// WithCtx returns the per-request logger injected by the request-logging
// middleware, so every line from a handler carries its request_id:
//
//	log := logger.WithCtx(r.Context())
//	log.Info("order created", "order_id", id)
//	// → time=... level=INFO msg="order created" request_id=3f1c... order_id=65a...
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shashiranjanraj/foodshop/config"
)

// L is the process-wide base logger.
var L *slog.Logger

func init() {
	L = slog.New(newConsoleHandler(os.Stdout, config.AppEnv()))
	slog.SetDefault(L)
}

func newConsoleHandler(w io.Writer, env string) slog.Handler {
	switch env {
	case "production", "prod":
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	default:
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	}
}

// AttachMongo tees every subsequent log record into the "logs" collection of
// db. The returned handler must be closed on shutdown to flush its buffer.
func AttachMongo(db *mongo.Database) *MongoHandler {
	mh := NewMongoHandler(db.Collection(logCollection))
	L = slog.New(NewMultiHandler(L.Handler(), mh))
	slog.SetDefault(L)
	return mh
}

// ─────────────────────────────────────────────
// Context-aware logger
// ─────────────────────────────────────────────

type ctxKey struct{}

// WithCtx returns the logger stored in ctx, or the base logger.
func WithCtx(ctx context.Context) *slog.Logger {
	if log, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok && log != nil {
		return log
	}
	return L
}

// InjectLogger stores a request-scoped logger in ctx.
func InjectLogger(ctx context.Context, log *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, log)
}

// ─────────────────────────────────────────────
// Short-hand helpers (use base logger)
// ─────────────────────────────────────────────

func Debug(msg string, args ...any) { L.Debug(msg, args...) }

func Info(msg string, args ...any) { L.Info(msg, args...) }

func Warn(msg string, args ...any) { L.Warn(msg, args...) }

func Error(msg string, args ...any) { L.Error(msg, args...) }
