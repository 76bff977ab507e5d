package website

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/testingfly/website/markdown"
	"github.com/testingfly/website/views"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, views.AdminLogin(a.Config.View(), false, CsrfToken(c)))
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	ip := c.RealIP()
	if !a.loginLimiter.Check(ip) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if checkPassword(a.Config.AdminPassword, pass) {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	a.loginLimiter.Record(ip)
	a.requestLog(c).Warn().Str("ip", ip).Msg("failed admin login")
	return RenderStatus(c, http.StatusUnauthorized, views.AdminLogin(a.Config.View(), true, CsrfToken(c)))
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin")
}

func (a *App) handleAdminSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	r := Resource{
		Title:       strings.TrimSpace(c.FormValue("title")),
		URL:         strings.TrimSpace(c.FormValue("url")),
		Description: strings.TrimSpace(c.FormValue("description")),
		Category:    strings.TrimSpace(c.FormValue("category")),
		Published:   c.FormValue("published") != "",
	}
	if id := c.FormValue("id"); id != "" {
		n, err := strconv.ParseInt(id, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
		}
		r.ID = n
	}
	if r.Title == "" {
		return redirectWithMessage(c, "Title is required.")
	}
	if markdown.SafeURL(r.URL) == "" {
		return redirectWithMessage(c, "URL must be http(s), mailto or a site path.")
	}
	ctx := c.Request().Context()
	if pos := strings.TrimSpace(c.FormValue("position")); pos != "" {
		n, err := strconv.Atoi(pos)
		if err != nil {
			return redirectWithMessage(c, "Position must be a number.")
		}
		r.Position = n
	} else if r.ID != 0 {
		// a blank position keeps the stored one
		current, err := a.Store.GetResource(ctx, r.ID)
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		if err != nil {
			return err
		}
		r.Position = current.Position
	}

	if _, err := a.Store.SaveResource(ctx, r); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}
	a.Cache.Invalidate()
	return redirectWithMessage(c, "Saved.")
}

func (a *App) handleAdminDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin")
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound)
	}
	if err := a.Store.DeleteResource(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}
	a.Cache.Invalidate()
	return redirectWithMessage(c, "Deleted.")
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	ctx := c.Request().Context()
	resources, err := a.Store.ListAllResources(ctx)
	if err != nil {
		return err
	}
	var current Resource
	if edit := c.QueryParam("edit"); edit != "" {
		id, err := strconv.ParseInt(edit, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		current, err = a.Store.GetResource(ctx, id)
		if errors.Is(err, ErrNotFound) {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		if err != nil {
			return err
		}
	}
	return Render(c, views.AdminDashboard(a.Config.View(), resources, current, msg, CsrfToken(c)))
}

// checkPassword compares given with the configured admin password, which
// is either plain text or a bcrypt hash.
func checkPassword(configured, given string) bool {
	if strings.HasPrefix(configured, "$2a$") || strings.HasPrefix(configured, "$2b$") || strings.HasPrefix(configured, "$2y$") {
		return bcrypt.CompareHashAndPassword([]byte(configured), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(given), []byte(configured)) == 1
}

func redirectWithMessage(c echo.Context, msg string) error {
	return c.Redirect(http.StatusSeeOther, "/admin?msg="+url.QueryEscape(msg))
}
