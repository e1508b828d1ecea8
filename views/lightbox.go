package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/tkremer/portfolio"
)

// Lightbox renders the overlay alone, for in-page requests.
func Lightbox(v portfolio.LightboxView) templ.Component {
	return component(func(buf *bytes.Buffer) error {
		lightbox(buf, v)
		return nil
	})
}

func lightbox(buf *bytes.Buffer, v portfolio.LightboxView) {
	p := v.Project
	closeHref := "/#" + p.ID
	buf.WriteString(`<div class="lightbox" role="dialog" aria-modal="true"`)
	attr(buf, "aria-label", p.Title+" screenshots")
	attr(buf, "data-project", p.ID)
	attr(buf, "data-index", itoa(v.Index))
	buf.WriteString(`><a class="lightbox-backdrop" data-close aria-hidden="true" tabindex="-1"`)
	href(buf, closeHref)
	buf.WriteString(`></a><a class="lightbox-close" data-close aria-label="Close"`)
	href(buf, closeHref)
	buf.WriteString(`>&times;</a>`)
	if v.Navigable {
		buf.WriteString(`<a class="lightbox-nav prev" data-nav="prev" aria-label="Previous screenshot"`)
		href(buf, p.LightboxPath(v.Prev))
		buf.WriteString(`>&lsaquo;</a><a class="lightbox-nav next" data-nav="next" aria-label="Next screenshot"`)
		href(buf, p.LightboxPath(v.Next))
		buf.WriteString(`>&rsaquo;</a>`)
	}
	buf.WriteString(`<figure class="lightbox-frame"><img`)
	attr(buf, "src", v.Src())
	attr(buf, "alt", p.Title+" screenshot "+itoa(v.Index+1))
	buf.WriteString(`><figcaption>`)
	text(buf, p.Title)
	if v.Navigable {
		text(buf, " · "+itoa(v.Index+1)+" / "+itoa(len(p.Screenshots)))
	}
	buf.WriteString(`</figcaption></figure></div>`)
}
