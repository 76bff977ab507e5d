package website

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/testingfly/website/logger"
	"github.com/testingfly/website/suspense"
	"github.com/testingfly/website/views"
)

func handleHomeRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/resources")
}

// handleResources starts loading the list before anything is rendered and
// hands the pending result to the page, which streams it in behind the
// placeholder.
func (a *App) handleResources(c echo.Context) error {
	req := c.Request()
	list := suspense.Defer(req.Context(), a.loadResourceList)

	streaming := !a.Config.DisableStreaming && !isBot(req.UserAgent())
	c.SetRequest(req.WithContext(suspense.WithStreaming(req.Context(), streaming)))
	return Render(c, views.Resources(a.Config.View(), list))
}

func (a *App) loadResourceList(ctx context.Context) (templ.Component, error) {
	resources, err := a.Cache.ListResources(ctx)
	if err != nil {
		return nil, fmt.Errorf("load resources: %w", err)
	}
	return views.ResourceList(resources), nil
}

func (a *App) handleSitemap(c echo.Context) error {
	resources, err := a.Cache.ListResources(c.Request().Context())
	if err != nil {
		return err
	}
	return a.renderSitemap(c, resources)
}

func (a *App) handleFeed(c echo.Context) error {
	resources, err := a.Cache.ListResources(c.Request().Context())
	if err != nil {
		return err
	}
	return a.renderRSS(c, resources)
}

func (a *App) handleRobots(c echo.Context) error {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /admin\n\n")
	b.WriteString("Sitemap: " + JoinURL(a.Config.URL, "sitemap.xml") + "\n")
	return c.String(http.StatusOK, b.String())
}

func (a *App) handleOGImage(c echo.Context) error {
	data, err := a.ogImage.PNG()
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, "image/png", data)
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(filepath.Join(a.Config.StaticDir, "favicon.svg"))
}

// httpErrorHandler renders the error pages. Errors are logged by the
// request logger, which runs this handler first.
func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, views.NotFound(a.Config.View()))
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		_ = RenderStatus(c, code, views.ServerError(a.Config.View()))
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}

// requestLog returns the request-scoped logger set by requestLogger, or the
// app logger when the request never reached that middleware.
func (a *App) requestLog(c echo.Context) *logger.Logger {
	l := logger.FromContext(c.Request().Context())
	if l.GetLevel() == zerolog.Disabled {
		return a.Log
	}
	return l
}
