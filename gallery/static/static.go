package static

import "embed"

//go:embed *.css
var Assets embed.FS
