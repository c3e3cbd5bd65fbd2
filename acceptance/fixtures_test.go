//go:build acceptance
// +build acceptance

package acceptance

import (
	"testing"

	"github.com/playwright-community/playwright-go"
)

// TestFixtures bundles all commonly needed test fixtures.
type TestFixtures struct {
	App     *TestApp
	PW      *PlaywrightFixture
	Ctx     playwright.BrowserContext
	Gallery *GalleryPage
}

// WithTestFixtures creates all fixtures, registers cleanup with t.Cleanup(), and calls the test function.
// This reduces boilerplate in tests by handling the common setup pattern.
func WithTestFixtures(t *testing.T, fn func(t *testing.T, f *TestFixtures)) {
	t.Helper()

	app := NewTestApp(t)
	t.Cleanup(func() { app.Close() })

	pw := NewPlaywrightFixture(t)
	t.Cleanup(func() { pw.Close() })

	ctx := pw.NewContext(t)
	t.Cleanup(func() { ctx.Close() })

	gallery := NewGalleryPage(t, ctx, app.GalleryURL)

	fn(t, &TestFixtures{
		App:     app,
		PW:      pw,
		Ctx:     ctx,
		Gallery: gallery,
	})
}
