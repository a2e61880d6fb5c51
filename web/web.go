// Package web embeds the storefront page assets.
package web

import "embed"

//go:embed index.html.tmpl styles.css
var Files embed.FS
