package request

import (
	"fmt"
	"strings"

	"github.com/dmorgan81/fluxgate/internal/config"
	"github.com/dmorgan81/fluxgate/internal/image"
)

const (
	FormatRaw    = "raw"
	FormatBase64 = "base64"
)

// Raw holds client-supplied fields before validation. Pointers distinguish
// omitted dimensions from zero values.
type Raw struct {
	Prompt       string `json:"prompt"`
	Width        *int   `json:"width"`
	Height       *int   `json:"height"`
	ReturnFormat string `json:"return_format"`
	Token        string `json:"hf_token"`
}

// Generation is a validated request, ready for the gateway.
type Generation struct {
	Prompt       string
	Width        int
	Height       int
	ReturnFormat string
	Token        string
}

func (g Generation) ToImageParams() image.Params {
	return image.Params{
		Prompt: g.Prompt,
		Width:  g.Width,
		Height: g.Height,
		Token:  g.Token,
	}
}

type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks and normalizes raw fields. Out-of-range values are rejected
// rather than clamped; the only silent adjustment is flooring dimensions to
// multiples of 8, which the hosted model requires.
func Validate(raw Raw, limits config.Limits) (Generation, error) {
	prompt := strings.TrimSpace(raw.Prompt)
	if prompt == "" {
		return Generation{}, &ValidationError{Field: "prompt", Message: "must not be empty"}
	}
	if len(prompt) > limits.MaxPromptLen {
		return Generation{}, &ValidationError{
			Field:   "prompt",
			Message: fmt.Sprintf("must be at most %d characters", limits.MaxPromptLen),
		}
	}

	width := limits.DefaultWidth
	if raw.Width != nil {
		width = *raw.Width
	}
	if err := checkDimension("width", width, limits); err != nil {
		return Generation{}, err
	}

	height := limits.DefaultHeight
	if raw.Height != nil {
		height = *raw.Height
	}
	if err := checkDimension("height", height, limits); err != nil {
		return Generation{}, err
	}

	format := raw.ReturnFormat
	switch format {
	case "":
		format = FormatRaw
	case FormatRaw, FormatBase64:
	default:
		return Generation{}, &ValidationError{
			Field:   "return_format",
			Message: fmt.Sprintf("must be %q or %q", FormatRaw, FormatBase64),
		}
	}

	return Generation{
		Prompt:       prompt,
		Width:        width / 8 * 8,
		Height:       height / 8 * 8,
		ReturnFormat: format,
		Token:        raw.Token,
	}, nil
}

func checkDimension(field string, v int, limits config.Limits) error {
	if v < limits.MinDimension || v > limits.MaxDimension {
		return &ValidationError{
			Field:   field,
			Message: fmt.Sprintf("must be between %d and %d", limits.MinDimension, limits.MaxDimension),
		}
	}
	return nil
}
