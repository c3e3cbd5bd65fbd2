package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/networkteam/uikit/views"
)

func newRenderCmd() *cobra.Command {
	var (
		opts    views.ButtonOptions
		variant string
		size    string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "render <label>",
		Short: "Render a button to stdout",
		Long: `Render a button or anchor to stdout.

Invalid variants and sizes fall back to primary and md.

Examples:
  uikit render Save --variant success --type submit
  uikit render Docs --href /docs --icon-right "icon icon-arrow"
  uikit render Load --loading --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Variant = views.ButtonVariant(variant)
			opts.Size = views.ButtonSize(size)
			c := views.NewButtonContext(args[0], opts)

			switch format {
			case "html":
				html, err := views.RenderString(cmd.Context(), views.ButtonFromContext(c))
				if err != nil {
					return fmt.Errorf("rendering button: %w", err)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
				return err
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(c)
			default:
				return fmt.Errorf("unknown format %q, expected html or json", format)
			}
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.Href, "href", "", "render an anchor linking to this URL")
	flags.StringVar(&variant, "variant", string(views.ButtonVariantPrimary), "visual style (primary, secondary, success, outline, ghost, link)")
	flags.StringVar(&size, "size", string(views.ButtonSizeMd), "size (sm, md, lg)")
	flags.StringVar(&opts.IconLeft, "icon-left", "", "class name of a leading icon")
	flags.StringVar(&opts.IconRight, "icon-right", "", "class name of a trailing icon")
	flags.BoolVar(&opts.Disabled, "disabled", false, "disable the control")
	flags.BoolVar(&opts.Loading, "loading", false, "show the loading state")
	flags.StringVar(&opts.ID, "id", "", "id attribute")
	flags.StringVar(&opts.Title, "title", "", "title attribute")
	flags.StringVar(&opts.AriaLabel, "aria-label", "", "aria-label attribute")
	flags.StringVar(&opts.Name, "name", "", "name attribute of a button")
	flags.StringVar(&opts.Value, "value", "", "value attribute of a button")
	flags.StringVar(&opts.Type, "type", "button", "type attribute of a button")
	flags.StringVar(&opts.ExtraClasses, "extra-classes", "", "additional class names")
	flags.StringVarP(&format, "format", "f", "html", "output format (html, json)")

	return cmd
}
