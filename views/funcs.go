package views

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"sort"

	"github.com/samber/lo"
	"github.com/spf13/cast"
)

// ButtonTemplateName is the name of the html/template definition rendering a ButtonContext.
const ButtonTemplateName = "components/button.html"

//go:embed templates/button.html
var templateFS embed.FS

var buttonTemplates = template.Must(template.New("").ParseFS(templateFS, "templates/button.html"))

// ErrInvalidArgs is returned by the template functions for malformed keyword arguments.
var ErrInvalidArgs = errors.New("invalid button arguments")

var buttonArgSetters = map[string]func(opts *ButtonOptions, value any) error{
	"href":          stringArg(func(o *ButtonOptions, s string) { o.Href = s }),
	"variant":       stringArg(func(o *ButtonOptions, s string) { o.Variant = ButtonVariant(s) }),
	"size":          stringArg(func(o *ButtonOptions, s string) { o.Size = ButtonSize(s) }),
	"icon_left":     stringArg(func(o *ButtonOptions, s string) { o.IconLeft = s }),
	"icon_right":    stringArg(func(o *ButtonOptions, s string) { o.IconRight = s }),
	"disabled":      boolArg(func(o *ButtonOptions, b bool) { o.Disabled = b }),
	"loading":       boolArg(func(o *ButtonOptions, b bool) { o.Loading = b }),
	"id":            stringArg(func(o *ButtonOptions, s string) { o.ID = s }),
	"title":         stringArg(func(o *ButtonOptions, s string) { o.Title = s }),
	"aria_label":    stringArg(func(o *ButtonOptions, s string) { o.AriaLabel = s }),
	"name":          stringArg(func(o *ButtonOptions, s string) { o.Name = s }),
	"value":         stringArg(func(o *ButtonOptions, s string) { o.Value = s }),
	"type":          stringArg(func(o *ButtonOptions, s string) { o.Type = s }),
	"extra_classes": stringArg(func(o *ButtonOptions, s string) { o.ExtraClasses = s }),
}

// ButtonArgNames returns the supported keyword argument names in sorted order.
func ButtonArgNames() []string {
	names := lo.Keys(buttonArgSetters)
	sort.Strings(names)
	return names
}

// FuncMap returns the template functions "button" and "buttonContext".
//
// Both take a label followed by keyword arguments as key/value pairs:
//
//	{{ button "Save" "variant" "success" "disabled" true }}
//	{{ template "components/button.html" (buttonContext "Go" "href" "/go") }}
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"button":        renderButtonFunc,
		"buttonContext": buttonContextFunc,
	}
}

// AddButtonTemplate registers FuncMap and the "components/button.html" definition on t.
// Call it before parsing templates that use them.
func AddButtonTemplate(t *template.Template) (*template.Template, error) {
	t = t.Funcs(FuncMap())
	t, err := t.ParseFS(templateFS, "templates/button.html")
	if err != nil {
		return nil, fmt.Errorf("parsing button template: %w", err)
	}
	return t, nil
}

// RenderButtonHTML renders the context with the html/template definition.
// The markup matches ButtonFromContext except where html/template escapes more
// eagerly than templ, e.g. "+" in text becomes "&#43;".
func RenderButtonHTML(c ButtonContext) (template.HTML, error) {
	var buf bytes.Buffer
	if err := buttonTemplates.ExecuteTemplate(&buf, ButtonTemplateName, c); err != nil {
		return "", fmt.Errorf("executing button template: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// ParseButtonArgs builds options from alternating keys and values.
// Strings and booleans are coerced from any scalar value.
func ParseButtonArgs(kv ...any) (ButtonOptions, error) {
	var opts ButtonOptions
	if len(kv)%2 != 0 {
		return opts, fmt.Errorf("%w: odd number of arguments (%d)", ErrInvalidArgs, len(kv))
	}
	for i := 0; i < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			return opts, fmt.Errorf("%w: key at position %d is %T, not a string", ErrInvalidArgs, i, kv[i])
		}
		setter, ok := buttonArgSetters[key]
		if !ok {
			return opts, fmt.Errorf("%w: unknown argument %q", ErrInvalidArgs, key)
		}
		if err := setter(&opts, kv[i+1]); err != nil {
			return opts, fmt.Errorf("%w: argument %q: %v", ErrInvalidArgs, key, err)
		}
	}
	return opts, nil
}

func buttonContextFunc(label string, kv ...any) (ButtonContext, error) {
	opts, err := ParseButtonArgs(kv...)
	if err != nil {
		return ButtonContext{}, err
	}
	return NewButtonContext(label, opts), nil
}

func renderButtonFunc(label string, kv ...any) (template.HTML, error) {
	c, err := buttonContextFunc(label, kv...)
	if err != nil {
		return "", err
	}
	return RenderButtonHTML(c)
}

func stringArg(set func(*ButtonOptions, string)) func(*ButtonOptions, any) error {
	return func(opts *ButtonOptions, value any) error {
		s, err := cast.ToStringE(value)
		if err != nil {
			return err
		}
		set(opts, s)
		return nil
	}
}

func boolArg(set func(*ButtonOptions, bool)) func(*ButtonOptions, any) error {
	return func(opts *ButtonOptions, value any) error {
		b, err := cast.ToBoolE(value)
		if err != nil {
			return err
		}
		set(opts, b)
		return nil
	}
}
