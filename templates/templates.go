// Package templates embarque les gabarits HTML du site.
package templates

import "embed"

//go:embed *.html
var FS embed.FS
