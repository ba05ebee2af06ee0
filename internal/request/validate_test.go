package request

import (
	"strings"
	"testing"

	"github.com/dmorgan81/fluxgate/internal/config"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var limits = config.Default().Limits

func TestValidateDefaults(t *testing.T) {
	gen, err := Validate(Raw{Prompt: "a cat"}, limits)
	require.NoError(t, err)

	assert.Equal(t, "a cat", gen.Prompt)
	assert.Equal(t, 1024, gen.Width)
	assert.Equal(t, 768, gen.Height)
	assert.Equal(t, FormatRaw, gen.ReturnFormat)
	assert.Empty(t, gen.Token)
}

func TestValidatePrompt(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
	}{
		{"empty", ""},
		{"whitespace only", "   \t\n"},
		{"too long", strings.Repeat("x", limits.MaxPromptLen+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(Raw{Prompt: tt.prompt}, limits)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, "prompt", verr.Field)
		})
	}
}

func TestValidateDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		field         string
	}{
		{"width zero", 0, 512, "width"},
		{"width negative", -8, 512, "width"},
		{"width below minimum", 128, 512, "width"},
		{"width above maximum", 4096, 512, "width"},
		{"height zero", 512, 0, "height"},
		{"height above maximum", 512, 2049, "height"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(Raw{Prompt: "a cat", Width: lo.ToPtr(tt.width), Height: lo.ToPtr(tt.height)}, limits)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidateFloorsToMultipleOfEight(t *testing.T) {
	gen, err := Validate(Raw{Prompt: "a cat", Width: lo.ToPtr(1023), Height: lo.ToPtr(769)}, limits)
	require.NoError(t, err)
	assert.Equal(t, 1016, gen.Width)
	assert.Equal(t, 768, gen.Height)
}

func TestValidateBoundsAreInclusive(t *testing.T) {
	gen, err := Validate(Raw{Prompt: "a cat", Width: lo.ToPtr(256), Height: lo.ToPtr(2048)}, limits)
	require.NoError(t, err)
	assert.Equal(t, 256, gen.Width)
	assert.Equal(t, 2048, gen.Height)
}

func TestValidateReturnFormat(t *testing.T) {
	gen, err := Validate(Raw{Prompt: "a cat", ReturnFormat: FormatBase64}, limits)
	require.NoError(t, err)
	assert.Equal(t, FormatBase64, gen.ReturnFormat)

	_, err = Validate(Raw{Prompt: "a cat", ReturnFormat: "jpeg"}, limits)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "return_format", verr.Field)
}

func TestValidatePassesTokenThrough(t *testing.T) {
	gen, err := Validate(Raw{Prompt: "a cat", Token: "hf_abc"}, limits)
	require.NoError(t, err)
	assert.Equal(t, "hf_abc", gen.Token)
	assert.Equal(t, "hf_abc", gen.ToImageParams().Token)
}
