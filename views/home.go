package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/tkremer/portfolio"
)

// Home renders the landing page: header, about, projects and the contact
// form. When d.Open is set the lightbox overlay is rendered already open.
func Home(d portfolio.HomeData) templ.Component {
	return component(func(buf *bytes.Buffer) error {
		jsonLD := portfolio.PersonJsonLD(d.Site, d.Projects)
		return page(buf, d.Site, d.Meta, jsonLD, func(buf *bytes.Buffer) error {
			header(buf, d.Site)
			if d.About != "" {
				buf.WriteString(`<section id="about"><h2>About</h2><div class="about">`)
				buf.WriteString(d.About)
				buf.WriteString(`</div></section>`)
			}
			buf.WriteString(`<section id="projects"><h2>Projects</h2><div class="projects">`)
			for _, p := range d.Projects {
				projectCard(buf, p)
			}
			buf.WriteString(`</div></section>`)
			contactForm(buf)
			buf.WriteString(`<div id="lightbox-root">`)
			if d.Open != nil {
				lightbox(buf, *d.Open)
			}
			buf.WriteString(`</div>`)
			return nil
		})
	})
}

func header(buf *bytes.Buffer, site portfolio.SiteConfig) {
	buf.WriteString(`<header class="site-header"><h1>`)
	text(buf, site.Name)
	buf.WriteString(`</h1>`)
	if site.Tagline != "" {
		buf.WriteString(`<p class="tagline">`)
		text(buf, site.Tagline)
		buf.WriteString(`</p>`)
	}
	if len(site.Links) > 0 {
		buf.WriteString(`<ul class="links">`)
		for _, l := range site.Links {
			buf.WriteString(`<li><a`)
			href(buf, l.URL)
			if l.Icon != "" {
				attr(buf, "class", "icon-"+l.Icon)
			}
			if l.Icon != "mail" {
				buf.WriteString(` target="_blank" rel="noopener noreferrer"`)
			}
			buf.WriteString(`>`)
			text(buf, l.Label)
			buf.WriteString(`</a></li>`)
		}
		buf.WriteString(`</ul>`)
	}
	buf.WriteString(`</header>`)
}

// ProjectCard renders one project tile on its own.
func ProjectCard(p portfolio.Project) templ.Component {
	return component(func(buf *bytes.Buffer) error {
		projectCard(buf, p)
		return nil
	})
}

// projectCard writes one project tile. A linked project gets a stretched
// title link covering the card; thumbnails sit beside that link rather than
// inside it, so opening a screenshot never follows the external href. An
// unlinked project renders no anchor other than its thumbnails.
func projectCard(buf *bytes.Buffer, p portfolio.Project) {
	class := "card"
	if p.Linked() {
		class += " linked"
	}
	buf.WriteString(`<article`)
	attr(buf, "id", p.ID)
	attr(buf, "class", class)
	buf.WriteString(`><div class="card-head"><img`)
	attr(buf, "src", p.LogoPath())
	attr(buf, "alt", p.Title+" logo")
	buf.WriteString(` width="40" height="40"><h3>`)
	if p.Linked() {
		buf.WriteString(`<a`)
		href(buf, p.Href)
		buf.WriteString(` target="_blank" rel="noopener noreferrer">`)
		text(buf, p.Title)
		buf.WriteString(`</a>`)
	} else {
		text(buf, p.Title)
	}
	buf.WriteString(`</h3></div>`)
	if p.Date != "" {
		buf.WriteString(`<time`)
		attr(buf, "datetime", p.Date)
		buf.WriteString(`>`)
		text(buf, p.Date)
		buf.WriteString(`</time>`)
	}
	if p.Description != "" {
		buf.WriteString(`<p>`)
		text(buf, p.Description)
		buf.WriteString(`</p>`)
	}
	if len(p.Tags) > 0 {
		buf.WriteString(`<ul class="tags">`)
		for _, t := range p.Tags {
			buf.WriteString(`<li>`)
			text(buf, t)
			buf.WriteString(`</li>`)
		}
		buf.WriteString(`</ul>`)
	}
	if len(p.Screenshots) > 0 {
		buf.WriteString(`<div class="thumbs">`)
		for i := range p.Screenshots {
			buf.WriteString(`<a data-lightbox`)
			href(buf, p.LightboxPath(i))
			attr(buf, "aria-label", "View screenshot "+itoa(i+1)+" of "+p.Title)
			buf.WriteString(`><img`)
			attr(buf, "src", p.ThumbnailPath(i))
			attr(buf, "alt", p.Title+" screenshot "+itoa(i+1))
			buf.WriteString(` loading="lazy"></a>`)
		}
		buf.WriteString(`</div>`)
	}
	buf.WriteString(`</article>`)
}

func contactForm(buf *bytes.Buffer) {
	buf.WriteString(`<section id="contact"><h2>Contact</h2>`)
	buf.WriteString(`<form id="contact-form" class="contact-form" action="/api/contact" method="post" novalidate>`)
	buf.WriteString(`<label>Name<input name="name" type="text" autocomplete="name" required></label>`)
	buf.WriteString(`<label>Email<input name="email" type="email" autocomplete="email" required></label>`)
	buf.WriteString(`<label>Message<textarea name="message" rows="5" required></textarea></label>`)
	buf.WriteString(`<button type="submit">Send</button>`)
	buf.WriteString(`<p class="form-status" data-status role="status"></p>`)
	buf.WriteString(`</form></section>`)
}
