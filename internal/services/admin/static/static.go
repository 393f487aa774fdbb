// Package static embeds the dashboard's stylesheet.
package static

import "embed"

// FS holds the files served under /static/.
//
//go:embed admin.css
var FS embed.FS
