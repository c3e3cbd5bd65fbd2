package gallery

import "log/slog"

// handlerOptions holds configuration for a gallery Handler.
// This is unexported; use HandlerOption functions to configure.
type handlerOptions struct {
	// PathPrefix is where the handler is mounted (e.g. "/_uikit").
	PathPrefix string
	// Title is shown in the page header.
	Title string
	// Logger receives request and render logs.
	Logger *slog.Logger
	// Examples are shown in the states section of the gallery.
	Examples []Example
}

// HandlerOption configures a gallery Handler.
type HandlerOption func(*handlerOptions)

// WithPathPrefix sets the path prefix where the handler is mounted.
// For example, "/_uikit" if mounted at that path.
// This is used for generating correct URLs in the gallery.
func WithPathPrefix(prefix string) HandlerOption {
	return func(o *handlerOptions) {
		o.PathPrefix = prefix
	}
}

// WithTitle sets the page title.
// Default is "UI Kit" if not specified.
func WithTitle(title string) HandlerOption {
	return func(o *handlerOptions) {
		o.Title = title
	}
}

// WithLogger sets the logger.
// Default is slog.Default() if not specified.
func WithLogger(logger *slog.Logger) HandlerOption {
	return func(o *handlerOptions) {
		o.Logger = logger
	}
}

// WithExamples replaces the examples of the states section.
// Default is DefaultExamples() if not specified.
func WithExamples(examples []Example) HandlerOption {
	return func(o *handlerOptions) {
		o.Examples = examples
	}
}
