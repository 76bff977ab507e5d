package website

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/testingfly/website/views"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Language    string    `xml:"language"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	Description string  `xml:"description,omitempty"`
	Category    string  `xml:"category,omitempty"`
	PubDate     string  `xml:"pubDate,omitempty"`
	GUID        rssGUID `xml:"guid"`
}

type rssGUID struct {
	Value       string `xml:",chardata"`
	IsPermaLink bool   `xml:"isPermaLink,attr"`
}

// buildFeed turns published resources into an RSS 2.0 document whose
// channel points at the resources page.
func buildFeed(cfg SiteConfig, resources []Resource) rssXML {
	items := make([]rssItem, 0, len(resources))
	for _, r := range resources {
		pubDate := ""
		if !r.CreatedAt.IsZero() {
			pubDate = r.CreatedAt.UTC().Format(time.RFC1123Z)
		}
		items = append(items, rssItem{
			Title:       r.Title,
			Link:        r.URL,
			Description: r.Description,
			Category:    r.Category,
			PubDate:     pubDate,
			GUID:        rssGUID{Value: r.URL, IsPermaLink: true},
		})
	}
	description := cfg.Description
	if description == "" {
		description = views.ResourcesDescription
	}
	return rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       cfg.Name,
			Link:        JoinURL(cfg.URL, "resources"),
			Description: description,
			Language:    "en-us",
			Items:       items,
		},
	}
}

func (a *App) renderRSS(c echo.Context, resources []Resource) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(c.Response()).Encode(buildFeed(a.Config, resources))
}
