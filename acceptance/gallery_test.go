//go:build acceptance
// +build acceptance

package acceptance

import (
	"regexp"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGalleryShowsAllVariants verifies the variant grid renders every variant and size.
func TestGalleryShowsAllVariants(t *testing.T) {
	t.Parallel()

	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		count, err := f.Gallery.Page.Locator("#variant-grid .ui-btn").Count()
		require.NoError(t, err)
		assert.Equal(t, 18, count)

		title, err := f.Gallery.Page.Title()
		require.NoError(t, err)
		assert.Equal(t, "Acceptance Kit", title)
	})
}

// TestDisabledAnchorIgnoresPointer verifies a disabled anchor is marked for assistive technology and not clickable.
func TestDisabledAnchorIgnoresPointer(t *testing.T) {
	t.Parallel()

	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		anchor := f.Gallery.Page.Locator("a.ui-btn.is-disabled[href='/docs']").First()

		ariaDisabled, err := anchor.GetAttribute("aria-disabled")
		require.NoError(t, err)
		assert.Equal(t, "true", ariaDisabled)

		tabindex, err := anchor.GetAttribute("tabindex")
		require.NoError(t, err)
		assert.Equal(t, "-1", tabindex)

		pointerEvents, err := anchor.Evaluate("el => getComputedStyle(el).pointerEvents", nil)
		require.NoError(t, err)
		assert.Equal(t, "none", pointerEvents)
	})
}

// TestPlaygroundRendersButton verifies the playground form renders the configured button.
func TestPlaygroundRendersButton(t *testing.T) {
	t.Parallel()

	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		f.Gallery.OpenPlayground()

		f.Gallery.Fill("label", "Launch")
		f.Gallery.Select("variant", "success")
		f.Gallery.Select("size", "lg")
		f.Gallery.Fill("extra_classes", "  rocket  ")
		f.Gallery.Check("loading")
		f.Gallery.Submit()

		preview := f.Gallery.Preview()

		class, err := preview.GetAttribute("class")
		require.NoError(t, err)
		assert.Equal(t, "ui-btn ui-btn--success ui-btn--lg is-loading rocket", class)

		ariaBusy, err := preview.GetAttribute("aria-busy")
		require.NoError(t, err)
		assert.Equal(t, "true", ariaBusy)

		label, err := preview.Locator(".ui-btn__label").TextContent()
		require.NoError(t, err)
		assert.Equal(t, "Launch", label)

		spinners, err := preview.Locator(".ui-btn__spinner").Count()
		require.NoError(t, err)
		assert.Equal(t, 1, spinners)
	})
}

// TestPlaygroundFallsBackToDefaults verifies unknown variants and sizes from the URL render as primary and md.
func TestPlaygroundFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		_, err := f.Gallery.Page.Goto(f.App.GalleryURL + "preview?label=Odd&variant=bogus&size=huge")
		require.NoError(t, err)

		class, err := f.Gallery.Preview().GetAttribute("class")
		require.NoError(t, err)
		assert.Equal(t, "ui-btn ui-btn--primary ui-btn--md", class)

		json, err := f.Gallery.Page.Locator("#context-json").TextContent()
		require.NoError(t, err)
		assert.Contains(t, json, `"variant": "primary"`)
	})
}

// TestTemplateHelperForm verifies buttons rendered with html/template behave natively.
func TestTemplateHelperForm(t *testing.T) {
	t.Parallel()

	WithTestFixtures(t, func(t *testing.T, f *TestFixtures) {
		page := f.Gallery.Page
		_, err := page.Goto(f.App.AppURL + "/form")
		require.NoError(t, err)

		disabled, err := page.Locator("#save").IsDisabled()
		require.NoError(t, err)
		assert.True(t, disabled, "disabled button should be natively disabled")

		docsAriaDisabled, err := page.Locator("#docs").GetAttribute("aria-disabled")
		require.NoError(t, err)
		assert.Equal(t, "true", docsAriaDisabled)

		err = page.Locator("#send").Click()
		require.NoError(t, err)

		err = page.WaitForURL(regexp.MustCompile(`/submitted\?action=send$`), playwright.PageWaitForURLOptions{
			Timeout: playwright.Float(5000),
		})
		require.NoError(t, err)

		body, err := page.Locator("body").TextContent()
		require.NoError(t, err)
		assert.Equal(t, "submitted send", body)
	})
}
