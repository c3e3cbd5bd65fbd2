package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/uikit/views"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRender_HTML(t *testing.T) {
	out, err := execute(t, "render", "Save", "--variant", "success", "--type", "submit", "--disabled")
	require.NoError(t, err)

	assert.Equal(t, `<button class="ui-btn ui-btn--success ui-btn--md is-disabled" type="submit" disabled><span class="ui-btn__label">Save</span></button>`+"\n", out)
}

func TestRender_Anchor(t *testing.T) {
	out, err := execute(t, "render", "Docs", "--href", "/docs", "--size", "lg", "--icon-right", "icon icon-arrow")
	require.NoError(t, err)

	assert.Equal(t, `<a class="ui-btn ui-btn--primary ui-btn--lg" href="/docs" aria-disabled="false"><span class="ui-btn__label">Docs</span><span class="icon icon-arrow" aria-hidden="true"></span></a>`+"\n", out)
}

func TestRender_JSON(t *testing.T) {
	out, err := execute(t, "render", "Load", "--loading", "--variant", "bogus", "--format", "json")
	require.NoError(t, err)

	var c views.ButtonContext
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	assert.Equal(t, "Load", c.Label)
	assert.Equal(t, views.ButtonVariantPrimary, c.Variant)
	assert.Equal(t, "true", c.Attrs[views.AttrAriaBusy])
	assert.Equal(t, "ui-btn ui-btn--primary ui-btn--md is-loading", c.Attrs[views.AttrClass])
}

func TestRender_Errors(t *testing.T) {
	_, err := execute(t, "render")
	assert.Error(t, err)

	_, err = execute(t, "render", "Save", "--format", "xml")
	assert.ErrorContains(t, err, `unknown format "xml"`)

	_, err = execute(t, "--log-level", "loud", "render", "Save")
	assert.ErrorContains(t, err, "invalid log level")
}

func TestServeHandler_PathPrefix(t *testing.T) {
	server := httptest.NewServer(newServeHandler("/_uikit/", "Test", nil))
	defer server.Close()

	resp, err := server.Client().Get(server.URL + "/_uikit/")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "<title>Test</title>")
	assert.Contains(t, string(body), `href="/_uikit/static/uikit.css"`)

	// Root redirects to the gallery
	resp, err = server.Client().Get(server.URL + "/")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, server.URL+"/_uikit/", resp.Request.URL.String())
}
