package gallery

import "github.com/networkteam/uikit/views"

// Example is a labelled button configuration shown in the gallery.
type Example struct {
	Title   string
	Label   string
	Options views.ButtonOptions
}

// DefaultExamples covers the states and both rendering modes.
func DefaultExamples() []Example {
	return []Example{
		{Title: "Disabled", Label: "Save", Options: views.ButtonOptions{Disabled: true}},
		{Title: "Loading", Label: "Loading", Options: views.ButtonOptions{Loading: true}},
		{Title: "Disabled and loading", Label: "Wait", Options: views.ButtonOptions{Disabled: true, Loading: true}},
		{
			Title: "Icons",
			Label: "Send",
			Options: views.ButtonOptions{
				Variant:   views.ButtonVariantSuccess,
				IconLeft:  "icon icon-mail",
				IconRight: "icon icon-arrow-right",
			},
		},
		{
			Title: "Submit button",
			Label: "Submit",
			Options: views.ButtonOptions{
				Type:  "submit",
				Name:  "action",
				Value: "submit",
			},
		},
		{Title: "Anchor", Label: "Go", Options: views.ButtonOptions{Href: "/go", Variant: views.ButtonVariantGhost}},
		{
			Title: "Disabled anchor",
			Label: "Docs",
			Options: views.ButtonOptions{
				Href:     "/docs",
				Variant:  views.ButtonVariantOutline,
				Disabled: true,
			},
		},
		{Title: "Extra classes", Label: "Wide", Options: views.ButtonOptions{ExtraClasses: "  w-full custom-class  "}},
	}
}
