package views_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/uikit/views"
)

func TestNewButtonContext_Defaults(t *testing.T) {
	c := views.NewButtonContext("Submit", views.ButtonOptions{})

	assert.Equal(t, "Submit", c.Label)
	assert.Equal(t, "", c.Href)
	assert.False(t, c.IsAnchor())
	assert.Equal(t, views.ButtonVariantPrimary, c.Variant)
	assert.Equal(t, views.ButtonSizeMd, c.Size)
	assert.Equal(t, views.ButtonAttrs{
		"id":            "",
		"class":         "ui-btn ui-btn--primary ui-btn--md",
		"title":         "",
		"aria_label":    "",
		"name":          "",
		"value":         "",
		"aria_disabled": "false",
		"aria_busy":     "false",
		"type":          "button",
	}, c.Attrs)
}

func TestNewButtonContext_EmptyTypeResolvesToButton(t *testing.T) {
	c := views.NewButtonContext("Submit", views.ButtonOptions{Type: ""})
	assert.Equal(t, "button", c.Attrs[views.AttrType])

	// Only the empty string is replaced, blank values pass through.
	c = views.NewButtonContext("Submit", views.ButtonOptions{Type: " "})
	assert.Equal(t, " ", c.Attrs[views.AttrType])
}

func TestNewButtonContext_Scenarios(t *testing.T) {
	tests := []struct {
		name   string
		label  string
		opts   views.ButtonOptions
		assert func(t *testing.T, c views.ButtonContext)
	}{
		{
			name:  "anchor with ghost variant",
			label: "Go",
			opts:  views.ButtonOptions{Href: "/go", Variant: views.ButtonVariantGhost},
			assert: func(t *testing.T, c views.ButtonContext) {
				assert.True(t, c.IsAnchor())
				assert.Equal(t, "/go", c.Href)
				assert.Contains(t, c.Attrs[views.AttrClass], "ui-btn--ghost")
			},
		},
		{
			name:  "disabled",
			label: "Save",
			opts:  views.ButtonOptions{Disabled: true},
			assert: func(t *testing.T, c views.ButtonContext) {
				assert.Equal(t, "true", c.Attrs[views.AttrAriaDisabled])
				assert.Equal(t, "false", c.Attrs[views.AttrAriaBusy])
				assert.Contains(t, strings.Fields(c.Attrs[views.AttrClass]), "is-disabled")
			},
		},
		{
			name:  "loading with unknown variant",
			label: "Load",
			opts:  views.ButtonOptions{Loading: true, Variant: "bogus"},
			assert: func(t *testing.T, c views.ButtonContext) {
				assert.Equal(t, views.ButtonVariantPrimary, c.Variant)
				assert.Equal(t, "true", c.Attrs[views.AttrAriaBusy])
				classes := strings.Fields(c.Attrs[views.AttrClass])
				assert.Contains(t, classes, "is-loading")
				assert.Contains(t, classes, "ui-btn--primary")
			},
		},
		{
			name:  "padded extra classes",
			label: "X",
			opts:  views.ButtonOptions{ExtraClasses: "  custom-class  "},
			assert: func(t *testing.T, c views.ButtonContext) {
				class := c.Attrs[views.AttrClass]
				assert.True(t, strings.HasSuffix(class, "custom-class"), class)
				assert.NotContains(t, class, "  ")
			},
		},
		{
			name:  "disabled and loading together",
			label: "Both",
			opts:  views.ButtonOptions{Disabled: true, Loading: true},
			assert: func(t *testing.T, c views.ButtonContext) {
				assert.True(t, c.Disabled)
				assert.True(t, c.Loading)
				assert.Equal(t, "ui-btn ui-btn--primary ui-btn--md is-disabled is-loading", c.Attrs[views.AttrClass])
			},
		},
		{
			name:  "pass through attributes",
			label: "Send",
			opts: views.ButtonOptions{
				ID:        "send",
				Title:     "Send it",
				AriaLabel: "Send message",
				Name:      "action",
				Value:     "send",
				Type:      "submit",
				IconLeft:  "icon icon-mail",
				IconRight: "icon icon-arrow",
			},
			assert: func(t *testing.T, c views.ButtonContext) {
				assert.Equal(t, "send", c.Attrs[views.AttrID])
				assert.Equal(t, "Send it", c.Attrs[views.AttrTitle])
				assert.Equal(t, "Send message", c.Attrs[views.AttrAriaLabel])
				assert.Equal(t, "action", c.Attrs[views.AttrName])
				assert.Equal(t, "send", c.Attrs[views.AttrValue])
				assert.Equal(t, "submit", c.Attrs[views.AttrType])
				assert.Equal(t, "icon icon-mail", c.IconLeft)
				assert.Equal(t, "icon icon-arrow", c.IconRight)
			},
		},
		{
			name:  "type is not validated",
			label: "Odd",
			opts:  views.ButtonOptions{Type: "whatever"},
			assert: func(t *testing.T, c views.ButtonContext) {
				assert.Equal(t, "whatever", c.Attrs[views.AttrType])
			},
		},
		{
			name:  "empty label is accepted",
			label: "",
			opts:  views.ButtonOptions{Size: views.ButtonSizeLg},
			assert: func(t *testing.T, c views.ButtonContext) {
				assert.Equal(t, "", c.Label)
				assert.Equal(t, views.ButtonSizeLg, c.Size)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.assert(t, views.NewButtonContext(tt.label, tt.opts))
		})
	}
}

func TestNewButtonContext_VariantFallback(t *testing.T) {
	for _, v := range views.ButtonVariants {
		c := views.NewButtonContext("A", views.ButtonOptions{Variant: v})
		assert.Equal(t, v, c.Variant)
		assert.Contains(t, c.Attrs[views.AttrClass], "ui-btn--"+string(v))
	}

	for _, v := range []views.ButtonVariant{"", "danger", "PRIMARY", " primary", "ui-btn"} {
		c := views.NewButtonContext("A", views.ButtonOptions{Variant: v})
		assert.Equal(t, views.ButtonVariantPrimary, c.Variant, "variant %q", v)
		assert.Equal(t, "ui-btn ui-btn--primary ui-btn--md", c.Attrs[views.AttrClass])
	}
}

func TestNewButtonContext_SizeFallback(t *testing.T) {
	for _, s := range views.ButtonSizes {
		c := views.NewButtonContext("A", views.ButtonOptions{Size: s})
		assert.Equal(t, s, c.Size)
	}

	for _, s := range []views.ButtonSize{"", "xl", "icon", "MD", "md "} {
		c := views.NewButtonContext("A", views.ButtonOptions{Size: s})
		assert.Equal(t, views.ButtonSizeMd, c.Size, "size %q", s)
	}
}

func TestNewButtonContext_BlankExtraClasses(t *testing.T) {
	for _, extra := range []string{"", " ", "\t\n  "} {
		c := views.NewButtonContext("A", views.ButtonOptions{ExtraClasses: extra, Disabled: true})
		assert.Equal(t, "ui-btn ui-btn--primary ui-btn--md is-disabled", c.Attrs[views.AttrClass])
	}
}

func TestNewButtonContext_InternalWhitespacePreserved(t *testing.T) {
	c := views.NewButtonContext("A", views.ButtonOptions{ExtraClasses: "  foo bar  "})
	assert.Equal(t, "ui-btn ui-btn--primary ui-btn--md foo bar", c.Attrs[views.AttrClass])
}

func TestButtonContext_AnchorAttrs(t *testing.T) {
	c := views.NewButtonContext("Go", views.ButtonOptions{Href: "/go", Name: "n", Value: "v", Type: "submit"})

	attrs := c.AnchorAttrs()

	assert.NotContains(t, attrs, views.AttrType)
	assert.NotContains(t, attrs, views.AttrName)
	assert.NotContains(t, attrs, views.AttrValue)
	assert.Equal(t, "false", attrs[views.AttrAriaDisabled])
	// Original attributes stay untouched
	assert.Equal(t, "submit", c.Attrs[views.AttrType])
}

func TestParseButtonVariantAndSize(t *testing.T) {
	assert.Equal(t, views.ButtonVariantLink, views.ParseButtonVariant("link"))
	assert.Equal(t, views.ButtonVariantPrimary, views.ParseButtonVariant("nope"))
	assert.Equal(t, views.ButtonSizeSm, views.ParseButtonSize("sm"))
	assert.Equal(t, views.ButtonSizeMd, views.ParseButtonSize("huge"))
	assert.True(t, views.ButtonVariantOutline.Valid())
	assert.False(t, views.ButtonSize("xs").Valid())
}

func TestButtonContext_JSON(t *testing.T) {
	c := views.NewButtonContext("Go", views.ButtonOptions{Href: "/go", IconLeft: "icon"})

	data, err := json.Marshal(c)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "Go", decoded["label"])
	assert.Equal(t, "/go", decoded["href"])
	assert.Equal(t, "icon", decoded["icon_left"])
	assert.Equal(t, "", decoded["icon_right"])
	attrs, ok := decoded["attrs"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, attrs, 9)
}
