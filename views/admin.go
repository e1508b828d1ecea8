package views

import (
	"bytes"

	"github.com/a-h/templ"

	"github.com/tkremer/portfolio"
)

// AdminLogin renders the inbox password form.
func AdminLogin(site portfolio.SiteConfig, showError bool, csrfToken string) templ.Component {
	return component(func(buf *bytes.Buffer) error {
		meta := portfolio.PageMeta{Title: "Inbox · " + site.Name}
		return page(buf, site, meta, "", func(buf *bytes.Buffer) error {
			buf.WriteString(`<h1>Inbox</h1>`)
			if showError {
				buf.WriteString(`<p class="form-status error">Wrong password.</p>`)
			}
			buf.WriteString(`<form class="contact-form" method="post" action="/admin/login/">`)
			csrfField(buf, csrfToken)
			buf.WriteString(`<label>Password<input name="password" type="password" autocomplete="current-password" required autofocus></label>`)
			buf.WriteString(`<button type="submit">Sign in</button></form>`)
			return nil
		})
	})
}

// AdminInbox lists contact messages, newest first.
func AdminInbox(site portfolio.SiteConfig, msgs []portfolio.InboxMessage, flash string, csrfToken string) templ.Component {
	return component(func(buf *bytes.Buffer) error {
		meta := portfolio.PageMeta{Title: "Inbox · " + site.Name}
		return page(buf, site, meta, "", func(buf *bytes.Buffer) error {
			unread := 0
			for _, m := range msgs {
				if !m.Read {
					unread++
				}
			}
			buf.WriteString(`<h1>Inbox <small>`)
			text(buf, itoa(unread)+" unread")
			buf.WriteString(`</small></h1>`)
			buf.WriteString(`<form method="post" action="/admin/logout/">`)
			csrfField(buf, csrfToken)
			buf.WriteString(`<button type="submit">Sign out</button></form>`)
			if flash != "" {
				buf.WriteString(`<p class="flash">`)
				text(buf, flash)
				buf.WriteString(`</p>`)
			}
			if len(msgs) == 0 {
				buf.WriteString(`<p>No messages yet.</p>`)
				return nil
			}
			buf.WriteString(`<table class="inbox"><thead><tr><th>Received</th><th>From</th><th>Message</th><th></th></tr></thead><tbody>`)
			for _, m := range msgs {
				buf.WriteString(`<tr`)
				attr(buf, "id", "msg-"+m.ID)
				if !m.Read {
					buf.WriteString(` class="unread"`)
				}
				buf.WriteString(`><td><time`)
				attr(buf, "datetime", m.ReceivedAt.Format("2006-01-02T15:04:05Z07:00"))
				buf.WriteString(`>`)
				text(buf, m.ReceivedAt.Format("2006-01-02 15:04"))
				buf.WriteString(`</time></td><td>`)
				text(buf, m.Name)
				buf.WriteString(`<br><a`)
				href(buf, "mailto:"+m.Email)
				buf.WriteString(`>`)
				text(buf, m.Email)
				buf.WriteString(`</a></td><td>`)
				text(buf, m.Body)
				buf.WriteString(`</td><td>`)
				if !m.Read {
					actionForm(buf, "/admin/messages/"+m.ID+"/read/", "Mark read", csrfToken)
				}
				actionForm(buf, "/admin/messages/"+m.ID+"/delete/", "Delete", csrfToken)
				buf.WriteString(`</td></tr>`)
			}
			buf.WriteString(`</tbody></table>`)
			return nil
		})
	})
}

func actionForm(buf *bytes.Buffer, action, label, csrfToken string) {
	buf.WriteString(`<form method="post"`)
	attr(buf, "action", action)
	buf.WriteString(`>`)
	csrfField(buf, csrfToken)
	buf.WriteString(`<button type="submit">`)
	text(buf, label)
	buf.WriteString(`</button></form>`)
}

func csrfField(buf *bytes.Buffer, token string) {
	buf.WriteString(`<input type="hidden" name="_csrf"`)
	attr(buf, "value", token)
	buf.WriteString(`>`)
}
