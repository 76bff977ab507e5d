package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter accumulates the first write error so components can emit
// markup without checking every call.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTMLWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

// raw writes trusted markup.
func (h *htmlWriter) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// text writes s with HTML escaping.
func (h *htmlWriter) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (h *htmlWriter) attr(name, value string) {
	h.raw(" " + name + `="`)
	h.text(value)
	h.raw(`"`)
}

// component renders cmp in place. A nil component writes nothing.
func (h *htmlWriter) component(cmp templ.Component) {
	if h.err != nil || cmp == nil {
		return
	}
	h.err = cmp.Render(h.ctx, h.w)
}

// Fragment renders components one after another.
func Fragment(cmps ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		for _, c := range cmps {
			h.component(c)
		}
		return h.err
	})
}

// Div wraps children in a div with the given class.
func Div(class string, children templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.raw("<div")
		if class != "" {
			h.attr("class", class)
		}
		h.raw(">")
		h.component(children)
		h.raw("</div>")
		return h.err
	})
}
