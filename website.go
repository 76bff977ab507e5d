// Package website serves the Testingfly personal site: the resources
// page with its social-card metadata, the RSS feed and sitemap behind it,
// and a small admin area for curating resources.
//
// Pages are templ components from the views package served by Echo; the
// resource list is loaded concurrently and streamed in behind a
// placeholder through the suspense package.
package website

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/testingfly/website/logger"
)

// App wires together the store, cache, handlers and middleware.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Cache  *ResourceCache
	Log    *logger.Logger

	loginLimiter *LoginLimiter
	ogImage      *OGImage
	customRoutes []func(*App)
}

// New creates an App with the given configuration. Call Init (or Start)
// before serving.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	a := &App{
		Config: cfg,
		Echo:   e,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.Log == nil {
		a.Log = logger.NewLogger("server")
	}
	return a
}

// Init validates the config, opens the store and registers middleware and
// routes. It is separate from Start so tests can drive a.Echo directly.
func (a *App) Init() error {
	if err := a.Config.validate(); err != nil {
		return err
	}

	store, err := NewStore(a.Config.DatabasePath, a.Log)
	if err != nil {
		return fmt.Errorf("website: init store: %w", err)
	}
	a.Store = store
	a.Cache = NewResourceCache(store, a.Config.CacheTTL)
	a.loginLimiter = NewLoginLimiter(5, time.Minute)
	a.ogImage = NewOGImage(a.Config.OGImageSource)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return nil
}

// Start initializes the app and serves HTTP until ctx is cancelled, then
// shuts down gracefully.
func (a *App) Start(ctx context.Context) error {
	if err := a.Init(); err != nil {
		return err
	}
	defer a.Close()

	errc := make(chan error, 1)
	go func() {
		a.Log.Info().Str("addr", a.Config.Addr).Str("url", a.Config.URL).Msg("listening")
		errc <- a.Echo.Start(a.Config.Addr)
	}()

	select {
	case err := <-errc:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	a.Log.Info().Msg("shutting down")
	return a.Echo.Shutdown(shutdownCtx)
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.Config.StaticDir)
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/images/og-image.png", a.handleOGImage)

	e.GET("/", handleHomeRedirect)
	e.GET("/resources", a.handleResources)

	e.GET("/admin", a.handleAdmin)
	e.POST("/admin/login", a.handleAdminLogin)
	e.POST("/admin/logout", handleAdminLogout)
	e.POST("/admin/save", a.handleAdminSave)
	e.POST("/admin/resource/:id/delete", a.handleAdminDelete)
}

// Close releases the store and background workers.
func (a *App) Close() error {
	if a.loginLimiter != nil {
		a.loginLimiter.Stop()
	}
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
