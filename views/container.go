package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Container centers children in the site's max-width column. class is
// appended to the outer element.
func Container(class string, children templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.raw("<div")
		h.attr("class", strings.TrimSpace("sm:px-8 "+class))
		h.raw(`><div class="mx-auto max-w-7xl lg:px-8"><div class="relative px-4 sm:px-8 lg:px-12"><div class="mx-auto max-w-2xl lg:max-w-5xl">`)
		h.component(children)
		h.raw("</div></div></div></div>")
		return h.err
	})
}
