package gallery

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/networkteam/uikit/gallery/static"
	"github.com/networkteam/uikit/views"
)

type Handler struct {
	pathPrefix string
	title      string
	examples   []Example
	logger     *slog.Logger

	mux *http.ServeMux
}

// NewHandler creates a gallery handler serving a preview of all button variants, a playground and the static assets.
func NewHandler(opts ...HandlerOption) *Handler {
	options := handlerOptions{
		Title:    "UI Kit",
		Examples: DefaultExamples(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	mux := http.NewServeMux()
	handler := &Handler{
		pathPrefix: options.PathPrefix,
		title:      options.Title,
		examples:   options.Examples,
		logger:     options.Logger.With("component", "gallery"),

		mux: mux,
	}

	mux.HandleFunc("GET /{$}", handler.root)
	mux.HandleFunc("GET /preview", handler.getPreview)
	mux.HandleFunc("GET /context", handler.getContext)

	mux.Handle("GET /static/", http.StripPrefix("/static", http.FileServerFS(static.Assets)))

	return handler
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) pageProps() pageProps {
	return pageProps{
		Title:      h.title,
		PathPrefix: h.pathPrefix,
	}
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	h.logger.Debug("Rendering gallery", slog.Int("examples", len(h.examples)))

	h.render(w, r, galleryPage(galleryProps{
		pageProps: h.pageProps(),
		Examples:  h.examples,
	}))
}

func (h *Handler) getPreview(w http.ResponseWriter, r *http.Request) {
	label, opts := ParseQuery(r.URL.Query())
	if !r.URL.Query().Has("label") {
		label = "Button"
	}

	h.logger.Debug("Rendering preview", slog.String("label", label), slog.String("variant", string(opts.Variant)), slog.String("size", string(opts.Size)))

	h.render(w, r, previewPage(previewProps{
		pageProps: h.pageProps(),
		Label:     label,
		Options:   opts,
	}))
}

// getContext responds with the resolved button context as JSON
func (h *Handler) getContext(w http.ResponseWriter, r *http.Request) {
	label, opts := ParseQuery(r.URL.Query())
	c := views.NewButtonContext(label, opts)

	data, err := json.Marshal(c)
	if err != nil {
		h.logger.Error("Failed to encode button context", slog.Any("err", err))
		http.Error(w, "Failed to encode button context", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(data)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, c templ.Component) {
	templ.Handler(c, templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
		h.logger.Error("Failed to render page", slog.String("path", r.URL.Path), slog.Any("err", err))
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "Failed to render page", http.StatusInternalServerError)
		})
	})).ServeHTTP(w, r)
}
