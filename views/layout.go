package views

import (
	"bytes"

	"github.com/tkremer/portfolio"
)

// page writes the document shell around body. jsonLD is emitted verbatim
// and must already be JSON-encoded.
func page(buf *bytes.Buffer, site portfolio.SiteConfig, meta portfolio.PageMeta, jsonLD string, body func(*bytes.Buffer) error) error {
	title := meta.Title
	if title == "" {
		title = site.Name
	}
	buf.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
	buf.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
	buf.WriteString(`<title>`)
	text(buf, title)
	buf.WriteString(`</title>`)
	if meta.Description != "" {
		buf.WriteString(`<meta name="description"`)
		attr(buf, "content", meta.Description)
		buf.WriteString(`>`)
		buf.WriteString(`<meta property="og:description"`)
		attr(buf, "content", meta.Description)
		buf.WriteString(`>`)
	}
	buf.WriteString(`<meta property="og:title"`)
	attr(buf, "content", title)
	buf.WriteString(`>`)
	if meta.OGType != "" {
		buf.WriteString(`<meta property="og:type"`)
		attr(buf, "content", meta.OGType)
		buf.WriteString(`>`)
	}
	if meta.URL != "" {
		buf.WriteString(`<link rel="canonical"`)
		href(buf, meta.URL)
		buf.WriteString(`><meta property="og:url"`)
		attr(buf, "content", meta.URL)
		buf.WriteString(`>`)
	}
	if meta.Image != "" {
		buf.WriteString(`<meta property="og:image"`)
		attr(buf, "content", meta.Image)
		buf.WriteString(`>`)
	}
	buf.WriteString(`<link rel="icon" href="/favicon.svg" type="image/svg+xml">`)
	buf.WriteString(`<link rel="alternate" type="application/rss+xml" href="/feed.xml"`)
	attr(buf, "title", site.Name)
	buf.WriteString(`>`)
	buf.WriteString(`<link rel="stylesheet" href="/static/site.css">`)
	if jsonLD != "" {
		buf.WriteString(`<script type="application/ld+json">`)
		buf.WriteString(jsonLD)
		buf.WriteString(`</script>`)
	}
	buf.WriteString(`<script src="/static/site.js" defer></script>`)
	buf.WriteString(`</head><body><main>`)
	if err := body(buf); err != nil {
		return err
	}
	buf.WriteString(`</main></body></html>`)
	return nil
}
