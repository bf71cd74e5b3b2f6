// Package logger builds the process slog logger and carries request-scoped
// loggers through context.Context.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// RequestIDKey is the context key holding the request identifier.
type RequestIDKey struct{}

type loggerKey struct{}

// New returns a JSON logger in production and a text logger otherwise.
func New(env, level string) *slog.Logger {
	return newWithWriter(os.Stdout, env, level)
}

func newWithWriter(w io.Writer, env, level string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	var h slog.Handler
	if env == "production" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h).With("env", env)
}

// ParseLevel maps debug, info, warn and error to slog levels. Unknown values are info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// WithRequestID stores id on ctx together with a logger that carries it.
func WithRequestID(ctx context.Context, id string) context.Context {
	ctx = context.WithValue(ctx, RequestIDKey{}, id)
	return context.WithValue(ctx, loggerKey{}, slog.Default().With("request_id", id))
}

// RequestID returns the request identifier stored on ctx, if any.
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(RequestIDKey{}).(string)
	return id
}

// FromContext returns the request-scoped logger, or the default logger.
func FromContext(ctx context.Context) *slog.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
			return l
		}
	}
	return slog.Default()
}

// MaskEmail keeps the first three characters of the local part and the domain.
// Example: john.doe@example.com -> joh***@example.com
func MaskEmail(email string) string {
	if email == "" {
		return ""
	}

	local, domain, ok := strings.Cut(email, "@")
	if !ok || domain == "" {
		return "***"
	}
	if local == "" {
		return "***@" + domain
	}

	runes := []rune(local)
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return string(runes) + "***@" + domain
}
