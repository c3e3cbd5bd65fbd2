package gallery

import (
	"strings"
)

type BadgeVariant string

const (
	BadgeVariantSecondary BadgeVariant = "secondary"
	BadgeVariantSuccess   BadgeVariant = "success"
	BadgeVariantWarning   BadgeVariant = "warning"
	BadgeVariantOutline   BadgeVariant = "outline"
)

type BadgeProps struct {
	Variant BadgeVariant
	Class   string
}

func badgeClasses(props BadgeProps) string {
	var classes []string

	classes = append(classes, "ui-badge")

	// Variant classes
	switch props.Variant {
	case BadgeVariantSecondary, BadgeVariantSuccess, BadgeVariantWarning, BadgeVariantOutline:
		classes = append(classes, "ui-badge--"+string(props.Variant))
	default: // DefaultBadgeVariant
		classes = append(classes, "ui-badge--default")
	}

	// Additional custom classes
	if props.Class != "" {
		classes = append(classes, props.Class)
	}

	return strings.Join(classes, " ")
}
