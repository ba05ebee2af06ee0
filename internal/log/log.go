package log

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"strings"

	"github.com/samber/lo"
)

type contextKey struct{}

var discardLogger = New(io.Discard)

// tokenRegexp matches anything shaped like a Hugging Face access token.
var tokenRegexp = regexp.MustCompile(`(?i)hf_[A-Za-z0-9]+`)

func New(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return lo.Ternary(a.Value.Kind() == slog.KindString, redact(a), a)
		},
	}))
}

func redact(a slog.Attr) slog.Attr {
	s := a.Value.String()
	if !strings.Contains(strings.ToLower(s), "hf_") {
		return a
	}
	return slog.String(a.Key, tokenRegexp.ReplaceAllString(s, "[REDACTED]"))
}

func NewContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

func FromContextOrDiscard(ctx context.Context) *slog.Logger {
	if v, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return v
	}
	return discardLogger
}

// Truncate shortens a prompt for logging. Full prompts never hit the logs.
func Truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
