package views

import (
	"encoding/json"
	"strings"
)

// WebsiteJSONLD produces a Schema.org WebSite JSON-LD block using cfg
// values. json.Marshal escapes <, > and &, so the result is safe inside a
// script element.
func WebsiteJSONLD(cfg SiteConfig) string {
	data := map[string]interface{}{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     cfg.Name,
		"url":      cfg.URL + "/",
	}
	if cfg.Description != "" {
		data["description"] = cfg.Description
	}
	if cfg.Author != "" {
		data["author"] = map[string]string{
			"@type": "Person",
			"name":  cfg.Author,
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// ResourceGroup is one category of resources in display order.
type ResourceGroup struct {
	Category  string
	Resources []Resource
}

const defaultCategory = "General"

// GroupByCategory groups resources by category, keeping categories in
// first-seen order and resources in input order.
func GroupByCategory(resources []Resource) []ResourceGroup {
	var groups []ResourceGroup
	index := make(map[string]int)
	for _, r := range resources {
		cat := strings.TrimSpace(r.Category)
		if cat == "" {
			cat = defaultCategory
		}
		i, ok := index[strings.ToLower(cat)]
		if !ok {
			i = len(groups)
			index[strings.ToLower(cat)] = i
			groups = append(groups, ResourceGroup{Category: cat})
		}
		groups[i].Resources = append(groups[i].Resources, r)
	}
	return groups
}

// anchorID converts s to a lowercase id made of letters, digits and
// dashes.
func anchorID(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	var b strings.Builder
	prev := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prev = false
		default:
			if !prev && b.Len() > 0 {
				b.WriteByte('-')
				prev = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
