package views

import (
	"strings"

	"github.com/samber/lo"
)

type ButtonVariant string
type ButtonSize string

const (
	ButtonVariantPrimary   ButtonVariant = "primary"
	ButtonVariantSecondary ButtonVariant = "secondary"
	ButtonVariantSuccess   ButtonVariant = "success"
	ButtonVariantOutline   ButtonVariant = "outline"
	ButtonVariantGhost     ButtonVariant = "ghost"
	ButtonVariantLink      ButtonVariant = "link"

	ButtonSizeSm ButtonSize = "sm"
	ButtonSizeMd ButtonSize = "md"
	ButtonSizeLg ButtonSize = "lg"
)

// ButtonVariants lists all supported variants in display order.
var ButtonVariants = []ButtonVariant{
	ButtonVariantPrimary,
	ButtonVariantSecondary,
	ButtonVariantSuccess,
	ButtonVariantOutline,
	ButtonVariantGhost,
	ButtonVariantLink,
}

// ButtonSizes lists all supported sizes from small to large.
var ButtonSizes = []ButtonSize{
	ButtonSizeSm,
	ButtonSizeMd,
	ButtonSizeLg,
}

const (
	buttonBaseClass   = "ui-btn"
	buttonDefaultType = "button"
)

func (v ButtonVariant) Valid() bool {
	return lo.Contains(ButtonVariants, v)
}

func (s ButtonSize) Valid() bool {
	return lo.Contains(ButtonSizes, s)
}

// ParseButtonVariant returns the variant named by s or ButtonVariantPrimary if s is not a known variant.
func ParseButtonVariant(s string) ButtonVariant {
	v := ButtonVariant(s)
	if !v.Valid() {
		return ButtonVariantPrimary
	}
	return v
}

// ParseButtonSize returns the size named by s or ButtonSizeMd if s is not a known size.
func ParseButtonSize(s string) ButtonSize {
	size := ButtonSize(s)
	if !size.Valid() {
		return ButtonSizeMd
	}
	return size
}

// Keys of ButtonAttrs. Every key is always present in attributes built by NewButtonContext.
const (
	AttrID           = "id"
	AttrClass        = "class"
	AttrTitle        = "title"
	AttrAriaLabel    = "aria_label"
	AttrName         = "name"
	AttrValue        = "value"
	AttrAriaDisabled = "aria_disabled"
	AttrAriaBusy     = "aria_busy"
	AttrType         = "type"
)

// ButtonAttrs maps attribute keys to their (possibly empty) values.
type ButtonAttrs map[string]string

// ButtonOptions configures a button. The zero value of every field is its default.
type ButtonOptions struct {
	// Href renders an anchor instead of a button if not empty.
	// Default: ""
	Href string
	// Variant is the visual style. Unknown values fall back to ButtonVariantPrimary.
	// Default: "" (primary)
	Variant ButtonVariant
	// Size is the size scale. Unknown values fall back to ButtonSizeMd.
	// Default: "" (md)
	Size ButtonSize
	// IconLeft is a class name for a leading decorative icon (e.g. "icon icon-mail").
	// Default: ""
	IconLeft string
	// IconRight is a class name for a trailing decorative icon.
	// Default: ""
	IconRight string
	// Disabled disables the control. Anchors get aria-disabled="true".
	// Default: false
	Disabled bool
	// Loading shows a spinner and sets aria-busy="true".
	// Default: false
	Loading bool

	// ID is the id attribute, omitted from markup when empty.
	// Default: ""
	ID string
	// Title is the title attribute, omitted from markup when empty.
	// Default: ""
	Title string
	// AriaLabel is the accessible name if the visible label is not sufficient.
	// Default: ""
	AriaLabel string
	// Name is a form attribute and only rendered for buttons.
	// Default: ""
	Name string
	// Value is a form attribute and only rendered for buttons.
	// Default: ""
	Value string

	// Type is the type attribute of a button, passed through verbatim.
	// An empty type cannot be expressed, it always resolves to "button".
	// Default: "" (button)
	Type string
	// ExtraClasses are appended to the class list after trimming.
	// Default: ""
	ExtraClasses string
}

// ButtonContext is the fully resolved input for rendering a button or anchor.
type ButtonContext struct {
	Label     string        `json:"label"`
	Href      string        `json:"href"`
	Variant   ButtonVariant `json:"variant"`
	Size      ButtonSize    `json:"size"`
	IconLeft  string        `json:"icon_left"`
	IconRight string        `json:"icon_right"`
	Disabled  bool          `json:"disabled"`
	Loading   bool          `json:"loading"`
	Attrs     ButtonAttrs   `json:"attrs"`
}

// NewButtonContext normalizes the options and builds the context for rendering a button with the given label.
// Invalid variants and sizes silently fall back to their defaults.
func NewButtonContext(label string, opts ButtonOptions) ButtonContext {
	variant := ParseButtonVariant(string(opts.Variant))
	size := ParseButtonSize(string(opts.Size))

	buttonType := opts.Type
	if buttonType == "" {
		buttonType = buttonDefaultType
	}

	return ButtonContext{
		Label:     label,
		Href:      opts.Href,
		Variant:   variant,
		Size:      size,
		IconLeft:  opts.IconLeft,
		IconRight: opts.IconRight,
		Disabled:  opts.Disabled,
		Loading:   opts.Loading,
		Attrs: ButtonAttrs{
			AttrID:           opts.ID,
			AttrClass:        buttonClasses(variant, size, opts),
			AttrTitle:        opts.Title,
			AttrAriaLabel:    opts.AriaLabel,
			AttrName:         opts.Name,
			AttrValue:        opts.Value,
			AttrAriaDisabled: boolString(opts.Disabled),
			AttrAriaBusy:     boolString(opts.Loading),
			AttrType:         buttonType,
		},
	}
}

// IsAnchor reports whether the context renders as a link.
func (c ButtonContext) IsAnchor() bool {
	return c.Href != ""
}

// AnchorAttrs returns a copy of the attributes without the button-only keys type, name and value.
func (c ButtonContext) AnchorAttrs() ButtonAttrs {
	return lo.OmitByKeys(c.Attrs, []string{AttrType, AttrName, AttrValue})
}

func buttonClasses(variant ButtonVariant, size ButtonSize, opts ButtonOptions) string {
	classes := []string{
		buttonBaseClass,
		buttonBaseClass + "--" + string(variant),
		buttonBaseClass + "--" + string(size),
	}

	// State classes
	if opts.Disabled {
		classes = append(classes, "is-disabled")
	}
	if opts.Loading {
		classes = append(classes, "is-loading")
	}

	// Additional custom classes
	if extra := strings.TrimSpace(opts.ExtraClasses); extra != "" {
		classes = append(classes, extra)
	}

	return strings.TrimSpace(strings.Join(classes, " "))
}

func boolString(b bool) string {
	return lo.Ternary(b, "true", "false")
}
