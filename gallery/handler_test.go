package gallery_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/uikit/gallery"
	"github.com/networkteam/uikit/views"
)

func get(t *testing.T, handler http.Handler, target string) (*http.Response, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	resp := rec.Result()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func TestHandler_Gallery(t *testing.T) {
	handler := gallery.NewHandler(gallery.WithTitle("Buttons"))

	resp, body := get(t, handler, "/")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "<title>Buttons</title>")
	for _, variant := range views.ButtonVariants {
		for _, size := range views.ButtonSizes {
			assert.Contains(t, body, `class="ui-btn ui-btn--`+string(variant)+` ui-btn--`+string(size)+`"`)
		}
	}
	// States section
	assert.Contains(t, body, "Disabled anchor")
	assert.Contains(t, body, `aria-disabled="true" tabindex="-1"`)
	assert.Contains(t, body, `class="chroma"`)
	assert.Contains(t, body, `class="ui-badge ui-badge--warning">disabled</span>`)
}

func TestHandler_GalleryWithExamplesAndPrefix(t *testing.T) {
	handler := gallery.NewHandler(
		gallery.WithPathPrefix("/_uikit"),
		gallery.WithExamples([]gallery.Example{
			{Title: "Only example", Label: "Only", Options: views.ButtonOptions{Variant: views.ButtonVariantLink}},
		}),
	)

	_, body := get(t, handler, "/")

	assert.Contains(t, body, "Only example")
	assert.NotContains(t, body, "Disabled anchor")
	assert.Contains(t, body, `href="/_uikit/static/uikit.css"`)
	assert.Contains(t, body, `href="/_uikit/preview?label=Only&amp;variant=link"`)
}

func TestHandler_Preview(t *testing.T) {
	handler := gallery.NewHandler()

	resp, body := get(t, handler, "/preview?label=Load&variant=bogus&loading=on&extra_classes=++custom-class++")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, `<div class="gallery-preview" id="preview"><button class="ui-btn ui-btn--primary ui-btn--md is-loading custom-class" type="button" aria-busy="true">`)
	assert.Contains(t, body, `<input type="checkbox" name="loading" value="true" checked>`)
	assert.Contains(t, body, `id="context-json"`)
}

func TestHandler_PreviewDefaultLabel(t *testing.T) {
	handler := gallery.NewHandler()

	_, body := get(t, handler, "/preview")

	assert.Contains(t, body, `<span class="ui-btn__label">Button</span>`)
}

func TestHandler_PreviewEscapesInput(t *testing.T) {
	handler := gallery.NewHandler()

	_, body := get(t, handler, "/preview?label=%3Cscript%3Ealert(1)%3C%2Fscript%3E&href=javascript%3Aalert(1)")

	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.NotContains(t, body, `href="javascript:`)
}

func TestHandler_Context(t *testing.T) {
	handler := gallery.NewHandler()

	resp, body := get(t, handler, "/context?label=Go&href=%2Fgo&variant=ghost&size=huge&disabled=true")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var c views.ButtonContext
	require.NoError(t, json.Unmarshal([]byte(body), &c))
	assert.Equal(t, "Go", c.Label)
	assert.Equal(t, "/go", c.Href)
	assert.Equal(t, views.ButtonVariantGhost, c.Variant)
	assert.Equal(t, views.ButtonSizeMd, c.Size)
	assert.True(t, c.Disabled)
	assert.Equal(t, "true", c.Attrs[views.AttrAriaDisabled])
	assert.Equal(t, "", c.Attrs[views.AttrID])
}

func TestHandler_Static(t *testing.T) {
	handler := gallery.NewHandler()

	resp, body := get(t, handler, "/static/uikit.css")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/css"))
	assert.Contains(t, body, ".ui-btn--primary")
}

func TestHandler_NotFound(t *testing.T) {
	handler := gallery.NewHandler()

	resp, _ := get(t, handler, "/unknown")

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandler_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	handler := gallery.NewHandler(gallery.WithLogger(logger))

	get(t, handler, "/preview?label=Hi")

	assert.Contains(t, buf.String(), "component=gallery")
	assert.Contains(t, buf.String(), `msg="Rendering preview"`)
	assert.Contains(t, buf.String(), "label=Hi")
}
