package views_test

import (
	"html/template"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/uikit/views"
)

func executeTemplate(t *testing.T, text string) (string, error) {
	t.Helper()

	tmpl, err := template.New("page").Funcs(views.FuncMap()).Parse(text)
	require.NoError(t, err)

	var sb strings.Builder
	err = tmpl.Execute(&sb, nil)
	return sb.String(), err
}

func TestFuncMap_Button(t *testing.T) {
	html, err := executeTemplate(t, `<div>{{ button "Save" "variant" "success" "disabled" true "type" "submit" }}</div>`)
	require.NoError(t, err)

	assert.Equal(t, `<div><button class="ui-btn ui-btn--success ui-btn--md is-disabled" type="submit" disabled><span class="ui-btn__label">Save</span></button></div>`, html)
}

func TestFuncMap_ButtonCoercesInvalidEnums(t *testing.T) {
	html, err := executeTemplate(t, `{{ button "Load" "variant" "bogus" "size" "xxl" "loading" "true" }}`)
	require.NoError(t, err)

	assert.Contains(t, html, `class="ui-btn ui-btn--primary ui-btn--md is-loading"`)
	assert.Contains(t, html, `aria-busy="true"`)
}

func TestFuncMap_ButtonContext(t *testing.T) {
	html, err := executeTemplate(t, `{{ with buttonContext "Go" "href" "/go" "variant" "link" }}{{ .Variant }}|{{ .Attrs.aria_disabled }}|{{ .Attrs.type }}{{ end }}`)
	require.NoError(t, err)

	assert.Equal(t, "link|false|button", html)
}

func TestFuncMap_InvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "odd number of arguments", text: `{{ button "Save" "variant" }}`},
		{name: "unknown key", text: `{{ button "Save" "colour" "red" }}`},
		{name: "non-string key", text: `{{ button "Save" 1 "red" }}`},
		{name: "invalid boolean", text: `{{ button "Save" "disabled" "maybe" }}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := executeTemplate(t, tt.text)
			require.Error(t, err)
			assert.Contains(t, err.Error(), views.ErrInvalidArgs.Error())
		})
	}
}

func TestParseButtonArgs(t *testing.T) {
	opts, err := views.ParseButtonArgs(
		"href", "/docs",
		"variant", "outline",
		"size", "sm",
		"icon_left", "icon-book",
		"icon_right", "icon-arrow",
		"disabled", 1,
		"loading", "false",
		"id", "docs",
		"title", "Docs",
		"aria_label", "Open docs",
		"name", "n",
		"value", 42,
		"type", "reset",
		"extra_classes", " a b ",
	)
	require.NoError(t, err)

	assert.Equal(t, views.ButtonOptions{
		Href:         "/docs",
		Variant:      views.ButtonVariantOutline,
		Size:         views.ButtonSizeSm,
		IconLeft:     "icon-book",
		IconRight:    "icon-arrow",
		Disabled:     true,
		Loading:      false,
		ID:           "docs",
		Title:        "Docs",
		AriaLabel:    "Open docs",
		Name:         "n",
		Value:        "42",
		Type:         "reset",
		ExtraClasses: " a b ",
	}, opts)
}

func TestParseButtonArgs_Errors(t *testing.T) {
	_, err := views.ParseButtonArgs("href")
	assert.ErrorIs(t, err, views.ErrInvalidArgs)

	_, err = views.ParseButtonArgs(true, "x")
	assert.ErrorIs(t, err, views.ErrInvalidArgs)

	_, err = views.ParseButtonArgs("label", "x")
	assert.ErrorIs(t, err, views.ErrInvalidArgs)
}

func TestButtonArgNames(t *testing.T) {
	assert.Equal(t, []string{
		"aria_label", "disabled", "extra_classes", "href", "icon_left", "icon_right",
		"id", "loading", "name", "size", "title", "type", "value", "variant",
	}, views.ButtonArgNames())
}

func TestAddButtonTemplate(t *testing.T) {
	tmpl, err := views.AddButtonTemplate(template.New("page"))
	require.NoError(t, err)
	tmpl, err = tmpl.Parse(`<nav>{{ template "components/button.html" (buttonContext "Home" "href" "/" "variant" "link") }}</nav>`)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, tmpl.Execute(&sb, nil))

	assert.Equal(t, `<nav><a class="ui-btn ui-btn--link ui-btn--md" href="/" aria-disabled="false"><span class="ui-btn__label">Home</span></a></nav>`, sb.String())
}

func TestRenderButtonHTML_Concurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			html, err := views.RenderButtonHTML(views.NewButtonContext("Hi", views.ButtonOptions{Loading: i%2 == 0}))
			assert.NoError(t, err)
			assert.Contains(t, string(html), "Hi")
		}()
	}
	wg.Wait()
}
