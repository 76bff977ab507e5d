package views

import (
	"context"
	"io"
	"sort"
	"strconv"

	"github.com/a-h/templ"
)

// Head renders the tags described by m: title, description, Open Graph,
// Twitter card, canonical and alternate links. Empty fields are skipped.
func Head(m Metadata) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		if m.Title != "" {
			h.raw("<title>")
			h.text(m.Title)
			h.raw("</title>")
		}
		metaName(h, "description", m.Description)

		og := m.OpenGraph
		metaProperty(h, "og:title", og.Title)
		metaProperty(h, "og:description", og.Description)
		metaProperty(h, "og:url", og.URL)
		metaProperty(h, "og:site_name", og.SiteName)
		metaProperty(h, "og:locale", og.Locale)
		for _, img := range og.Images {
			metaProperty(h, "og:image", img.URL)
			metaProperty(h, "og:image:alt", img.Alt)
			metaProperty(h, "og:image:width", dimension(img.Width))
			metaProperty(h, "og:image:height", dimension(img.Height))
		}
		metaProperty(h, "og:type", og.Type)

		tw := m.Twitter
		metaName(h, "twitter:card", tw.Card)
		metaName(h, "twitter:site", tw.Site)
		metaName(h, "twitter:creator", tw.Creator)
		metaName(h, "twitter:title", tw.Title)
		metaName(h, "twitter:description", tw.Description)
		for _, img := range tw.Images {
			metaName(h, "twitter:image", img.URL)
			metaName(h, "twitter:image:alt", img.Alt)
			metaName(h, "twitter:image:width", dimension(img.Width))
			metaName(h, "twitter:image:height", dimension(img.Height))
		}

		if c := m.Alternates.Canonical; c != "" {
			h.raw(`<link rel="canonical"`)
			h.attr("href", c)
			h.raw(">")
		}
		types := make([]string, 0, len(m.Alternates.Types))
		for t := range m.Alternates.Types {
			types = append(types, t)
		}
		sort.Strings(types)
		for _, t := range types {
			h.raw(`<link rel="alternate"`)
			h.attr("type", t)
			h.attr("href", m.Alternates.Types[t])
			h.raw(">")
		}
		return h.err
	})
}

func metaName(h *htmlWriter, name, content string) {
	if content == "" {
		return
	}
	h.raw("<meta")
	h.attr("name", name)
	h.attr("content", content)
	h.raw(">")
}

func metaProperty(h *htmlWriter, property, content string) {
	if content == "" {
		return
	}
	h.raw("<meta")
	h.attr("property", property)
	h.attr("content", content)
	h.raw(">")
}

func dimension(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}
