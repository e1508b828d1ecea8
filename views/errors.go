package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/tkremer/portfolio"
)

func NotFound(site portfolio.SiteConfig) templ.Component {
	return errorPage(site, "Page not found", "There is nothing at this address.")
}

func ServerError(site portfolio.SiteConfig) templ.Component {
	return errorPage(site, "Something went wrong", "Please try again in a moment.")
}

func errorPage(site portfolio.SiteConfig, title, detail string) templ.Component {
	return component(func(buf *bytes.Buffer) error {
		meta := portfolio.PageMeta{Title: title + " · " + site.Name}
		return page(buf, site, meta, "", func(buf *bytes.Buffer) error {
			buf.WriteString(`<div class="error-page"><h1>`)
			text(buf, title)
			buf.WriteString(`</h1><p>`)
			text(buf, detail)
			buf.WriteString(`</p><p><a href="/">Back to the portfolio</a></p></div>`)
			return nil
		})
	})
}
