package views

import "time"

// SiteConfig holds the site-wide values templates need. It is built once
// from the application config.
type SiteConfig struct {
	Name        string // SITE_NAME
	URL         string // SITE_URL without trailing slash
	Description string // SITE_DESCRIPTION
	Author      string // SITE_AUTHOR
}

// Metadata is the document-head description of a page: title,
// description, social cards and alternate links.
type Metadata struct {
	Title       string
	Description string
	OpenGraph   OpenGraph
	Twitter     Twitter
	Alternates  Alternates
}

// OpenGraph fields, rendered as og:* meta properties.
type OpenGraph struct {
	Title       string
	Description string
	URL         string
	Type        string // "website" or "article"
	SiteName    string
	Images      []Image
	Locale      string
}

// Twitter card fields, rendered as twitter:* meta names.
type Twitter struct {
	Card        string
	Site        string
	Creator     string
	Title       string
	Description string
	Images      []Image
}

// Image is a social-card image.
type Image struct {
	URL    string
	Alt    string
	Width  int
	Height int
}

// Alternates holds the canonical URL and alternate representations keyed
// by MIME type.
type Alternates struct {
	Canonical string
	Types     map[string]string
}

// Resource is a curated link shown on the resources page.
type Resource struct {
	ID          int64
	Title       string
	URL         string
	Description string // inline markdown
	Category    string
	Position    int
	Published   bool
	CreatedAt   time.Time
}
