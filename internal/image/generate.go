package image

import (
	"context"
	"log/slog"

	"github.com/dmorgan81/fluxgate/internal/log"
)

type Params struct {
	Prompt string `json:"prompt"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	// Token optionally overrides the configured credential for this call.
	Token string `json:"-"`
}

// LogValue keeps tokens out of log lines and bounds prompt length in them.
func (p Params) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("prompt", log.Truncate(p.Prompt, 50)),
		slog.Int("width", p.Width),
		slog.Int("height", p.Height),
	)
}

// Generator produces one image from one prompt. Implementations make exactly
// one upstream call per invocation; there is no retry or queueing behind it.
type Generator interface {
	Generate(context.Context, Params) ([]byte, string, error)
}
