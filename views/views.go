// Package views renders the portfolio pages. Components are plain
// templ.ComponentFunc values that write escaped HTML, so the package needs
// no code generation step.
package views

import (
	"bytes"
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/tkremer/portfolio"
)

// Funcs returns the view set the portfolio App renders with.
func Funcs() portfolio.ViewFuncs {
	return portfolio.ViewFuncs{
		Home:        Home,
		Lightbox:    Lightbox,
		AdminLogin:  AdminLogin,
		AdminInbox:  AdminInbox,
		NotFound:    NotFound,
		ServerError: ServerError,
	}
}

// component adapts a buffer-filling function into a templ.Component. The
// response is written in one piece so a failing render never leaves half a
// page on the wire.
func component(fill func(buf *bytes.Buffer) error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		if err := fill(&buf); err != nil {
			return err
		}
		_, err := w.Write(buf.Bytes())
		return err
	})
}

func text(buf *bytes.Buffer, s string) {
	buf.WriteString(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func attr(buf *bytes.Buffer, name, value string) {
	buf.WriteByte(' ')
	buf.WriteString(name)
	buf.WriteString(`="`)
	buf.WriteString(templ.EscapeString(value))
	buf.WriteByte('"')
}

// href writes an href attribute, replacing unsafe URL schemes.
func href(buf *bytes.Buffer, u string) {
	attr(buf, "href", string(templ.URL(u)))
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
