//go:build acceptance
// +build acceptance

package acceptance

import (
	"html/template"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/networkteam/uikit"
	"github.com/networkteam/uikit/views"
)

const formPage = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Form</title><link rel="stylesheet" href="/_uikit/static/uikit.css"></head>
<body>
<form method="get" action="/submitted">
  {{ button "Save" "id" "save" "type" "submit" "disabled" true }}
  {{ button "Send" "id" "send" "type" "submit" "name" "action" "value" "send" }}
  {{ template "components/button.html" (buttonContext "Docs" "id" "docs" "href" "/submitted" "disabled" true) }}
</form>
</body>
</html>`

// TestApp represents a test application with the gallery mounted and a form using the template helper.
type TestApp struct {
	Server     *httptest.Server
	GalleryURL string
	AppURL     string
	Kit        *uikit.Kit
}

// NewTestApp creates a new test application.
func NewTestApp(t *testing.T) *TestApp {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	kit := uikit.NewWithOptions(uikit.Options{
		Logger: logger,
		Title:  "Acceptance Kit",
	})

	tmpl, err := views.AddButtonTemplate(template.New("form").Funcs(kit.FuncMap()))
	if err != nil {
		t.Fatalf("adding button template: %v", err)
	}
	tmpl = template.Must(tmpl.Parse(formPage))

	mux := http.NewServeMux()

	mux.HandleFunc("GET /form", func(w http.ResponseWriter, r *http.Request) {
		if err := tmpl.Execute(w, nil); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
	mux.HandleFunc("GET /submitted", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("submitted " + r.URL.Query().Get("action")))
	})
	mux.Handle("/_uikit/", http.StripPrefix("/_uikit", kit.GalleryHandler("/_uikit")))

	server := httptest.NewServer(mux)

	return &TestApp{
		Server:     server,
		GalleryURL: server.URL + "/_uikit/",
		AppURL:     server.URL,
		Kit:        kit,
	}
}

// Close shuts down the test application.
func (ta *TestApp) Close() {
	ta.Server.Close()
}
