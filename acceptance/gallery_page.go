//go:build acceptance
// +build acceptance

package acceptance

import (
	"regexp"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/require"
)

// GalleryPage provides helper methods for interacting with the gallery.
// It implements the Page Object pattern for cleaner test code.
type GalleryPage struct {
	Page       playwright.Page
	GalleryURL string
	t          *testing.T
}

// NewGalleryPage navigates to the gallery.
func NewGalleryPage(t *testing.T, ctx playwright.BrowserContext, galleryURL string) *GalleryPage {
	t.Helper()

	page, err := ctx.NewPage()
	require.NoError(t, err)

	_, err = page.Goto(galleryURL)
	require.NoError(t, err)

	return &GalleryPage{
		Page:       page,
		GalleryURL: galleryURL,
		t:          t,
	}
}

// OpenPlayground follows the playground link in the header.
func (gp *GalleryPage) OpenPlayground() {
	gp.t.Helper()

	err := gp.Page.Locator("header a:has-text('Playground')").Click()
	require.NoError(gp.t, err, "failed to click playground link")

	err = gp.Page.WaitForURL("**/_uikit/preview", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(5000),
	})
	require.NoError(gp.t, err, "playground did not open")
}

// Fill sets a text input of the playground form.
func (gp *GalleryPage) Fill(name, value string) {
	gp.t.Helper()

	err := gp.Page.Locator("form input[name='" + name + "']").Fill(value)
	require.NoError(gp.t, err, "failed to fill %s", name)
}

// Select chooses an option of a select of the playground form.
func (gp *GalleryPage) Select(name, value string) {
	gp.t.Helper()

	_, err := gp.Page.Locator("form select[name='" + name + "']").SelectOption(playwright.SelectOptionValues{
		Values: playwright.StringSlice(value),
	})
	require.NoError(gp.t, err, "failed to select %s", name)
}

// Check ticks a checkbox of the playground form.
func (gp *GalleryPage) Check(name string) {
	gp.t.Helper()

	err := gp.Page.Locator("form input[name='" + name + "']").Check()
	require.NoError(gp.t, err, "failed to check %s", name)
}

// Submit renders the playground form and waits for the result.
func (gp *GalleryPage) Submit() {
	gp.t.Helper()

	err := gp.Page.Locator("#render").Click()
	require.NoError(gp.t, err, "failed to click render")

	err = gp.Page.WaitForURL(regexp.MustCompile(`/_uikit/preview\?`), playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(5000),
	})
	require.NoError(gp.t, err, "preview did not render")
}

// Preview returns the locator of the rendered button or anchor.
func (gp *GalleryPage) Preview() playwright.Locator {
	return gp.Page.Locator("#preview > :first-child")
}
