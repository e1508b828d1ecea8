package portfolio

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	aboutMarkdown = goldmark.New(goldmark.WithExtensions(extension.Linkify, extension.Strikethrough))
	aboutPolicy   = newAboutPolicy()
)

func newAboutPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(false)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// RenderAbout converts the about.md source to sanitized HTML. Empty input
// yields an empty string.
func RenderAbout(src []byte) (string, error) {
	if len(bytes.TrimSpace(src)) == 0 {
		return "", nil
	}
	var buf bytes.Buffer
	if err := aboutMarkdown.Convert(src, &buf); err != nil {
		return "", fmt.Errorf("render about: %w", err)
	}
	return aboutPolicy.Sanitize(buf.String()), nil
}
