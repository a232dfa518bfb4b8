package web

import "embed"

// Static holds the client bundle referenced by the storefront pages.
//
//go:embed static
var Static embed.FS
