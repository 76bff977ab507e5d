package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Document renders a full HTML page: head from meta plus site-wide tags,
// then body inside the page shell.
func Document(cfg SiteConfig, meta Metadata, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.raw(`<!DOCTYPE html><html lang="en" class="h-full antialiased"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.component(Head(meta))
		h.raw(`<link rel="icon" href="/favicon.svg" type="image/svg+xml"><link rel="stylesheet" href="/public/styles.css">`)
		h.raw(`<script type="application/ld+json">`)
		h.raw(WebsiteJSONLD(cfg))
		h.raw(`</script></head><body class="flex h-full flex-col bg-zinc-50 dark:bg-black"><main class="flex-auto">`)
		h.component(body)
		h.raw(`</main><footer class="mt-32"><div class="mx-auto max-w-7xl px-4 py-10 text-sm text-zinc-400 dark:text-zinc-500">`)
		h.text(footerText(cfg))
		h.raw("</div></footer></body></html>")
		return h.err
	})
}

func footerText(cfg SiteConfig) string {
	if cfg.Author != "" {
		return "© " + cfg.Author + ". All rights reserved."
	}
	return "© " + cfg.Name
}
