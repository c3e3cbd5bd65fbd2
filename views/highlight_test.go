package views_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/uikit/views"
)

func TestHighlightMarkup(t *testing.T) {
	html, err := views.RenderString(context.Background(), views.HighlightMarkup(`<button class="ui-btn">Go</button>`))
	require.NoError(t, err)

	assert.Contains(t, html, `class="chroma"`)
	// Markup is shown as source, not interpreted
	assert.NotContains(t, html, `<button`)
	assert.Contains(t, html, "button")
}

func TestChromaStyles(t *testing.T) {
	html, err := views.RenderString(context.Background(), views.ChromaStyles())
	require.NoError(t, err)

	assert.Contains(t, html, "<style>")
	assert.Contains(t, html, ".chroma")
	assert.Contains(t, html, "</style>")
}
