package views

import "github.com/a-h/templ"

// NotFound renders the 404 page.
func NotFound(cfg SiteConfig) templ.Component {
	return Document(cfg, Metadata{Title: "Page not found"},
		SimpleLayout("Page not found", "Sorry, we couldn’t find the page you’re looking for.", nil))
}

// ServerError renders the 5xx page.
func ServerError(cfg SiteConfig) templ.Component {
	return Document(cfg, Metadata{Title: "Something went wrong"},
		SimpleLayout("Something went wrong", "Please try again in a moment.", nil))
}
