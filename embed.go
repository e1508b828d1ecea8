package portfolio

import "embed"

// EmbeddedAssets holds the stylesheet and the script that drives the
// lightbox and the contact form. It is served under /static/.
//
//go:embed embedded/*
var EmbeddedAssets embed.FS
