package gallery_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/networkteam/uikit/gallery"
	"github.com/networkteam/uikit/views"
)

func TestParseQuery(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantLabel string
		wantOpts  views.ButtonOptions
	}{
		{
			name:      "empty",
			query:     "",
			wantLabel: "",
			wantOpts:  views.ButtonOptions{},
		},
		{
			name:      "checkbox values",
			query:     "label=Save&disabled=on&loading=true",
			wantLabel: "Save",
			wantOpts:  views.ButtonOptions{Disabled: true, Loading: true},
		},
		{
			name:      "unparseable booleans are false",
			query:     "label=Save&disabled=maybe&loading=",
			wantLabel: "Save",
			wantOpts:  views.ButtonOptions{},
		},
		{
			name:      "unknown parameters are ignored",
			query:     "label=X&colour=red&variant=ghost",
			wantLabel: "X",
			wantOpts:  views.ButtonOptions{Variant: views.ButtonVariantGhost},
		},
		{
			name:      "string parameters",
			query:     "label=Go&href=%2Fgo&icon_left=a&icon_right=b&id=i&title=t&aria_label=al&name=n&value=v&type=submit&extra_classes=x+y&size=lg",
			wantLabel: "Go",
			wantOpts: views.ButtonOptions{
				Href:         "/go",
				IconLeft:     "a",
				IconRight:    "b",
				ID:           "i",
				Title:        "t",
				AriaLabel:    "al",
				Name:         "n",
				Value:        "v",
				Type:         "submit",
				ExtraClasses: "x y",
				Size:         views.ButtonSizeLg,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := url.ParseQuery(tt.query)
			assert.NoError(t, err)

			label, opts := gallery.ParseQuery(q)

			assert.Equal(t, tt.wantLabel, label)
			assert.Equal(t, tt.wantOpts, opts)
		})
	}
}

func TestEncodeQuery_RoundTrip(t *testing.T) {
	opts := views.ButtonOptions{
		Href:         "/docs?page=1",
		Variant:      views.ButtonVariantOutline,
		Disabled:     true,
		IconRight:    "icon icon-arrow",
		ExtraClasses: " wide ",
	}

	label, parsed := gallery.ParseQuery(gallery.EncodeQuery("Docs", opts))

	assert.Equal(t, "Docs", label)
	assert.Equal(t, opts, parsed)
}
