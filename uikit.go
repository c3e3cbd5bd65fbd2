package uikit

//go:generate go run github.com/a-h/templ/cmd/templ generate

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/networkteam/uikit/gallery"
	"github.com/networkteam/uikit/views"
)

type Kit struct {
	logger *slog.Logger
	title  string
}

type Options struct {
	// Logger is used by the gallery handler.
	// Default: nil, will use slog.Default()
	Logger *slog.Logger
	// Title is shown in the gallery header.
	// Default: "", will use "UI Kit"
	Title string
}

// New creates a new kit with default options.
func New() *Kit {
	return NewWithOptions(Options{})
}

// NewWithOptions creates a new kit with the specified options.
// Default options are the zero value of Options.
func NewWithOptions(options Options) *Kit {
	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}
	title := options.Title
	if title == "" {
		title = "UI Kit"
	}

	return &Kit{
		logger: logger,
		title:  title,
	}
}

// Button returns a templ component rendering a button, or an anchor if opts.Href is set.
func (k *Kit) Button(label string, opts views.ButtonOptions) templ.Component {
	return views.Button(label, opts)
}

// ButtonContext resolves the rendering context for a button without rendering it.
func (k *Kit) ButtonContext(label string, opts views.ButtonOptions) views.ButtonContext {
	return views.NewButtonContext(label, opts)
}

// FuncMap returns the html/template functions "button" and "buttonContext".
//
// Use it with template.New(...).Funcs(kit.FuncMap()) before parsing templates.
func (k *Kit) FuncMap() template.FuncMap {
	return views.FuncMap()
}

// GalleryHandler returns an http.Handler serving the button gallery and playground.
// The pathPrefix is where the handler is mounted (e.g. "/_uikit"), it can be left empty if it is at the root.
func (k *Kit) GalleryHandler(pathPrefix string) http.Handler {
	return gallery.NewHandler(
		gallery.WithPathPrefix(pathPrefix),
		gallery.WithTitle(k.title),
		gallery.WithLogger(k.logger),
	)
}
