package gallery

import (
	"context"
	"encoding/json"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/samber/lo"

	"github.com/networkteam/uikit/views"
)

type pageProps struct {
	Title      string
	PathPrefix string
}

type galleryProps struct {
	pageProps
	Examples []Example
}

type previewProps struct {
	pageProps
	Label   string
	Options views.ButtonOptions
}

func (p pageProps) url(path string) string {
	return strings.TrimSuffix(p.PathPrefix, "/") + path
}

// queryURL links to path with the button parameters encoded as query.
func (p pageProps) queryURL(path string, label string, opts views.ButtonOptions) string {
	return p.url(path) + "?" + EncodeQuery(label, opts).Encode()
}

func (p previewProps) buttonContext() views.ButtonContext {
	return views.NewButtonContext(p.Label, p.Options)
}

// markupSource renders the component to a string and shows it highlighted.
func markupSource(c templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		markup, err := views.RenderString(ctx, c)
		if err != nil {
			return err
		}
		return views.HighlightMarkup(markup).Render(ctx, w)
	})
}

func contextJSON(c views.ButtonContext) (string, error) {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func variantNames() []string {
	return lo.Map(views.ButtonVariants, func(v views.ButtonVariant, _ int) string { return string(v) })
}

func sizeNames() []string {
	return lo.Map(views.ButtonSizes, func(s views.ButtonSize, _ int) string { return string(s) })
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
