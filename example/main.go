package main

import (
	"html/template"
	"log/slog"
	"net/http"
	"os"

	"github.com/a-h/templ"
	slogmulti "github.com/samber/slog-multi"

	"github.com/networkteam/uikit"
	"github.com/networkteam/uikit/views"
)

var pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>uikit example</title>
  <link rel="stylesheet" href="/_uikit/static/uikit.css">
</head>
<body>
  <h1>Sign up</h1>
  <form method="post" action="/signup">
    <input type="email" name="email" placeholder="you@example.com">
    {{ button "Sign up" "type" "submit" "variant" "success" "icon_left" "icon icon-mail" "loading" .Submitting }}
    {{ template "components/button.html" (buttonContext "Cancel" "href" "/" "variant" "ghost") }}
  </form>
  <p>{{ button "Browse the gallery" "href" "/_uikit/" "variant" "link" }}</p>
</body>
</html>`

func main() {
	// 1. Set up slog, debug logs as JSON to stdout and info logs as text to stderr

	logger := slog.New(
		slogmulti.Fanout(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		),
	)
	slog.SetDefault(logger)

	kit := uikit.NewWithOptions(uikit.Options{
		Logger: logger,
		Title:  "Example UI Kit",
	})

	// 2. Use the button in html/template

	tmpl, err := views.AddButtonTemplate(template.New("page").Funcs(kit.FuncMap()))
	if err != nil {
		logger.Error("Failed to add button template", slog.Any("err", err))
		os.Exit(1)
	}
	tmpl = template.Must(tmpl.Parse(pageTemplate))

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		logger := slog.With("component", "http", "handler", "/")

		if err := tmpl.Execute(w, map[string]any{"Submitting": r.URL.Query().Has("submitting")}); err != nil {
			logger.Error("Failed to render page", slog.Any("err", err))
		}
	})

	http.HandleFunc("POST /signup", func(w http.ResponseWriter, r *http.Request) {
		logger := slog.With("component", "http", "handler", "/signup")

		logger.Debug("Sign up", slog.String("email", r.FormValue("email")))
		http.Redirect(w, r, "/?submitting", http.StatusSeeOther)
	})

	// 3. Use the button as a templ component

	http.Handle("/templ", templ.Handler(kit.Button("Rendered with templ", views.ButtonOptions{
		Href:      "/",
		Variant:   views.ButtonVariantOutline,
		IconRight: "icon icon-arrow-right",
	})))

	// 4. Mount the gallery

	http.Handle("/_uikit/", http.StripPrefix("/_uikit", kit.GalleryHandler("/_uikit")))

	// Run the server

	logger.Info("Starting server on :1095")
	if err := http.ListenAndServe(":1095", nil); err != nil {
		logger.Error("Failed to start server", slog.Group("error", slog.String("message", err.Error())))
		os.Exit(1)
	}
}
