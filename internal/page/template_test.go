package page

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplate(t *testing.T) {
	g := &Templator{Params: Params{
		Model:         "test-org/test-model",
		MinDimension:  256,
		MaxDimension:  2048,
		DefaultWidth:  1024,
		DefaultHeight: 768,
	}}

	html, err := g.Template(context.Background())
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "test-org/test-model")
	assert.Contains(t, out, `max="2048"`)
	assert.Contains(t, out, `value="1024"`)
	assert.Contains(t, out, "/generate-image")
}
