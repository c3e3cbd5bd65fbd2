package gallery

import (
	"net/url"
	"strconv"

	"github.com/spf13/cast"

	"github.com/networkteam/uikit/views"
)

var boolParams = map[string]bool{
	"disabled": true,
	"loading":  true,
}

// ParseQuery reads a label and button options from query parameters.
// It never fails: unknown parameters are ignored and unparseable booleans are false.
func ParseQuery(q url.Values) (string, views.ButtonOptions) {
	var kv []any
	for _, name := range views.ButtonArgNames() {
		if !q.Has(name) {
			continue
		}
		value := q.Get(name)
		if boolParams[name] {
			kv = append(kv, name, queryBool(value))
			continue
		}
		kv = append(kv, name, value)
	}

	// Keys are known and values are plain strings or bools, so parsing cannot fail
	opts, _ := views.ParseButtonArgs(kv...)

	return q.Get("label"), opts
}

// EncodeQuery is the inverse of ParseQuery. Empty and false values are left out.
func EncodeQuery(label string, opts views.ButtonOptions) url.Values {
	q := url.Values{}
	q.Set("label", label)
	set := func(name, value string) {
		if value != "" {
			q.Set(name, value)
		}
	}
	set("href", opts.Href)
	set("variant", string(opts.Variant))
	set("size", string(opts.Size))
	set("icon_left", opts.IconLeft)
	set("icon_right", opts.IconRight)
	if opts.Disabled {
		q.Set("disabled", strconv.FormatBool(true))
	}
	if opts.Loading {
		q.Set("loading", strconv.FormatBool(true))
	}
	set("id", opts.ID)
	set("title", opts.Title)
	set("aria_label", opts.AriaLabel)
	set("name", opts.Name)
	set("value", opts.Value)
	set("type", opts.Type)
	set("extra_classes", opts.ExtraClasses)
	return q
}

// queryBool accepts checkbox values ("on") in addition to the usual boolean strings.
func queryBool(value string) bool {
	if value == "on" {
		return true
	}
	return cast.ToBool(value)
}
