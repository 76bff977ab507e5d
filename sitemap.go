package website

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// buildSitemap lists the resources page, stamped with the newest
// resource's creation date.
func buildSitemap(base string, resources []Resource) sitemapURLSet {
	var newest time.Time
	for _, r := range resources {
		if r.CreatedAt.After(newest) {
			newest = r.CreatedAt
		}
	}
	page := sitemapURL{Loc: JoinURL(base, "resources")}
	if !newest.IsZero() {
		page.LastMod = newest.UTC().Format("2006-01-02")
	}
	return sitemapURLSet{
		XMLNS: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  []sitemapURL{page},
	}
}

func (a *App) renderSitemap(c echo.Context, resources []Resource) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(c.Response()).Encode(buildSitemap(a.Config.URL, resources))
}
