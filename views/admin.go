package views

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

const (
	inputClass  = "mt-1 w-full rounded-md border border-zinc-300 px-3 py-2 text-sm dark:border-zinc-700 dark:bg-zinc-900"
	buttonClass = "rounded-md bg-zinc-800 px-3 py-2 text-sm font-semibold text-zinc-100 hover:bg-zinc-700"
)

// AdminLogin renders the admin password form.
func AdminLogin(cfg SiteConfig, showError bool, csrfToken string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		if showError {
			h.raw(`<p class="mb-4 text-sm text-red-600" role="alert">Invalid password.</p>`)
		}
		h.raw(`<form method="post" action="/admin/login" class="max-w-sm space-y-4">`)
		csrfField(h, csrfToken)
		h.raw(`<label class="block text-sm">Password<input type="password" name="password" required autofocus class="` + inputClass + `"></label>`)
		h.raw(`<button type="submit" class="` + buttonClass + `">Sign in</button></form>`)
		return h.err
	})
	return Document(cfg, Metadata{Title: "Admin"}, SimpleLayout("Admin", "", body))
}

// AdminDashboard lists every resource with edit and delete actions and
// a form for editing (or, for a zero ID, creating) current.
func AdminDashboard(cfg SiteConfig, resources []Resource, current Resource, message, csrfToken string) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		if message != "" {
			h.raw(`<p class="mb-6 text-sm text-teal-600" role="status">`)
			h.text(message)
			h.raw("</p>")
		}
		h.raw(`<form method="post" action="/admin/logout" class="mb-8">`)
		csrfField(h, csrfToken)
		h.raw(`<button type="submit" class="text-sm underline">Sign out</button></form>`)

		h.component(AdminResourceForm(current, csrfToken))

		h.raw(`<table class="mt-12 w-full text-left text-sm"><thead><tr><th>Title</th><th>Category</th><th>Position</th><th>Status</th><th></th></tr></thead><tbody>`)
		for _, r := range resources {
			id := strconv.FormatInt(r.ID, 10)
			h.raw("<tr><td>")
			h.text(r.Title)
			h.raw("</td><td>")
			h.text(r.Category)
			h.raw("</td><td>")
			h.text(strconv.Itoa(r.Position))
			h.raw("</td><td>")
			if r.Published {
				h.raw("published")
			} else {
				h.raw("draft")
			}
			h.raw(`</td><td class="space-x-2"><a class="underline" href="/admin?edit=` + id + `">Edit</a>`)
			h.raw(`<form method="post" action="/admin/resource/` + id + `/delete" class="inline">`)
			csrfField(h, csrfToken)
			h.raw(`<button type="submit" class="text-red-600 underline">Delete</button></form></td></tr>`)
		}
		h.raw("</tbody></table>")
		return h.err
	})
	return Document(cfg, Metadata{Title: "Admin"}, SimpleLayout("Resources admin", "", body))
}

// AdminResourceForm renders the create/edit form for r.
func AdminResourceForm(r Resource, csrfToken string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		h.raw(`<form method="post" action="/admin/save" class="space-y-4" data-form="resource">`)
		csrfField(h, csrfToken)
		if r.ID != 0 {
			h.raw(`<input type="hidden" name="id"`)
			h.attr("value", strconv.FormatInt(r.ID, 10))
			h.raw(">")
		}
		textInput(h, "Title", "title", r.Title, true)
		textInput(h, "URL", "url", r.URL, true)
		textInput(h, "Category", "category", r.Category, false)
		textInput(h, "Position", "position", strconv.Itoa(r.Position), false)
		h.raw(`<label class="block text-sm">Description<textarea name="description" rows="3" class="` + inputClass + `">`)
		h.text(r.Description)
		h.raw("</textarea></label>")
		h.raw(`<label class="flex items-center gap-2 text-sm"><input type="checkbox" name="published" value="1"`)
		if r.Published || r.ID == 0 {
			h.raw(" checked")
		}
		h.raw(`>Published</label><button type="submit" class="` + buttonClass + `">Save</button></form>`)
		return h.err
	})
}

func textInput(h *htmlWriter, label, name, value string, required bool) {
	h.raw(`<label class="block text-sm">`)
	h.text(label)
	h.raw(`<input type="text"`)
	h.attr("name", name)
	h.attr("value", value)
	if required {
		h.raw(" required")
	}
	h.raw(` class="` + inputClass + `"></label>`)
}

func csrfField(h *htmlWriter, token string) {
	h.raw(`<input type="hidden" name="_csrf"`)
	h.attr("value", token)
	h.raw(">")
}
