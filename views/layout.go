package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// SimpleLayout renders a page header with title and, when intro is not
// empty, an intro paragraph, followed by children.
func SimpleLayout(title, intro string, children templ.Component) templ.Component {
	return Container("mt-16 sm:mt-10", templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.raw(`<header class="max-w-1xl"><h1 class="text-4xl font-bold tracking-tight text-zinc-800 dark:text-zinc-100 sm:text-2xl">`)
		h.text(title)
		h.raw("</h1>")
		if intro != "" {
			h.raw(`<p class="mt-2 text-base text-zinc-600 dark:text-zinc-400">`)
			h.text(intro)
			h.raw("</p>")
		}
		h.raw(`</header><div class="mt-8 sm:mt-6">`)
		h.component(children)
		h.raw("</div>")
		return h.err
	}))
}
