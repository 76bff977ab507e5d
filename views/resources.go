package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/testingfly/website/markdown"
	"github.com/testingfly/website/suspense"
)

const (
	// ResourcesHeading is the h1 of the resources page.
	ResourcesHeading = "Some excellent resources worth sharing"
	// ResourcesDescription doubles as the page intro and meta description.
	ResourcesDescription = "These materials have been tremendously beneficial to me in my learning path. I hope you find these helpful as well!"

	resourcesBoundaryID = "resources-list"
)

// ResourcesMetadata returns the head metadata of the resources page for
// the site at base. A trailing slash on base is ignored.
func ResourcesMetadata(base string) Metadata {
	base = strings.TrimRight(base, "/")
	pageURL := base + "/resources"
	ogImage := base + "/images/og-image.png"
	return Metadata{
		Title:       "Resources",
		Description: ResourcesDescription,
		OpenGraph: OpenGraph{
			Title:       "Resources - Testingfly",
			Description: ResourcesDescription,
			URL:         pageURL,
			Type:        "website",
			SiteName:    "Testingfly",
			Images: []Image{
				{URL: ogImage, Alt: "Testingfly", Width: 1200, Height: 630},
			},
			Locale: "en_US",
		},
		Twitter: Twitter{
			Card:        "summary_large_image",
			Site:        "@testingfly",
			Creator:     "@testinfly",
			Title:       "Resources - Testingfly",
			Description: ResourcesDescription,
			Images: []Image{
				{URL: ogImage, Alt: "Testinfly", Width: 1200, Height: 630},
			},
		},
		Alternates: Alternates{
			Canonical: pageURL,
			Types: map[string]string{
				"application/rss+xml": base + "/feed.xml",
			},
		},
	}
}

// ResourcesPage renders the page body: the layout shell with the resource
// list behind a suspension boundary.
func ResourcesPage(list *suspense.Deferred) templ.Component {
	return SimpleLayout(ResourcesHeading, ResourcesDescription,
		Div("mt-16 sm:mt-20",
			suspense.BoundaryWithError(resourcesBoundaryID, ResourcesPlaceholder(), ResourcesLoadError(), list),
		),
	)
}

// Resources renders the full resources document.
func Resources(cfg SiteConfig, list *suspense.Deferred) templ.Component {
	return Document(cfg, ResourcesMetadata(cfg.URL), ResourcesPage(list))
}

// ResourcesPlaceholder is the skeleton shown while the list loads.
func ResourcesPlaceholder() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.raw(`<div role="status" aria-busy="true" aria-live="polite" data-placeholder="resources" class="animate-pulse space-y-10">`)
		for i := 0; i < 3; i++ {
			h.raw(`<div class="space-y-3"><div class="h-4 w-1/3 rounded bg-zinc-200 dark:bg-zinc-700"></div>`)
			h.raw(`<div class="h-3 w-2/3 rounded bg-zinc-100 dark:bg-zinc-800"></div>`)
			h.raw(`<div class="h-3 w-1/2 rounded bg-zinc-100 dark:bg-zinc-800"></div></div>`)
		}
		h.raw(`<span class="sr-only">Loading resources…</span></div>`)
		return h.err
	})
}

// ResourcesLoadError replaces the placeholder when the list failed to
// load after the page started streaming.
func ResourcesLoadError() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.raw(`<p role="alert" data-resources="error" class="text-sm text-red-600 dark:text-red-400">The resources could not be loaded right now. Please try again in a moment.</p>`)
		return h.err
	})
}

// ResourceList renders resources grouped by category.
func ResourceList(resources []Resource) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		if len(resources) == 0 {
			h.raw(`<p class="text-sm text-zinc-500 dark:text-zinc-400" data-resources="empty">No resources yet.</p>`)
			return h.err
		}
		h.raw(`<div class="space-y-16" data-resources="list">`)
		for _, g := range GroupByCategory(resources) {
			id := "category-" + anchorID(g.Category)
			h.raw("<section")
			h.attr("aria-labelledby", id)
			h.raw("><h2")
			h.attr("id", id)
			h.raw(` class="text-sm font-semibold uppercase tracking-wide text-zinc-800 dark:text-zinc-100">`)
			h.text(g.Category)
			h.raw(`</h2><ul role="list" class="mt-6 space-y-6">`)
			for _, r := range g.Resources {
				resourceItem(h, r)
			}
			h.raw("</ul></section>")
		}
		h.raw("</div>")
		return h.err
	})
}

func resourceItem(h *htmlWriter, r Resource) {
	h.raw(`<li class="group relative flex flex-col items-start">`)
	if href := markdown.SafeURL(r.URL); href != "" {
		// SafeURL output is already escaped.
		h.raw(`<a href="` + href + `" target="_blank" rel="noopener noreferrer" class="text-base font-semibold text-zinc-800 hover:text-teal-500 dark:text-zinc-100">`)
		h.text(r.Title)
		h.raw("</a>")
	} else {
		h.raw(`<span class="text-base font-semibold text-zinc-800 dark:text-zinc-100">`)
		h.text(r.Title)
		h.raw("</span>")
	}
	if r.Description != "" {
		h.raw(`<p class="mt-1 text-sm text-zinc-600 dark:text-zinc-400">`)
		h.component(markdown.Inline(r.Description))
		h.raw("</p>")
	}
	h.raw("</li>")
}
