package website

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/testingfly/website/logger"
	"github.com/testingfly/website/views"
)

// Configuration errors returned by SiteConfig.validate.
var (
	ErrMissingAdminPassword = errors.New("website: ADMIN_PASSWORD is required")
	ErrMissingSessionSecret = errors.New("website: ADMIN_SESSION_SECRET is required")
)

// SiteConfig holds all configuration for the site. Fields map to
// environment variables through their env tags.
type SiteConfig struct {
	Name        string `env:"SITE_NAME"`        // default "Testingfly"
	URL         string `env:"SITE_URL"`         // base URL, default "http://localhost:3000"
	Description string `env:"SITE_DESCRIPTION"` // RSS channel and JSON-LD description
	Author      string `env:"SITE_AUTHOR"`

	Addr         string `env:"ADDR"`          // default ":3000"
	DatabasePath string `env:"DATABASE_PATH"` // default "data/site.db"
	StaticDir    string `env:"STATIC_DIR"`    // default "public"

	AdminPassword string `env:"ADMIN_PASSWORD"` // plain text or bcrypt hash
	SessionSecret string `env:"ADMIN_SESSION_SECRET"`
	CookieSecure  bool   `env:"COOKIE_SECURE"`

	CacheTTL         time.Duration `env:"CACHE_TTL"`         // default 5m
	OGImageSource    string        `env:"OG_IMAGE_SOURCE"`   // optional PNG/JPEG scaled into the social card
	DisableStreaming bool          `env:"DISABLE_STREAMING"` // render deferred sections before sending
}

// LoadConfig reads the optional env files (".env" when none are given)
// into the process environment and parses SiteConfig from it. Missing
// env files are not an error.
func LoadConfig(envFiles ...string) (SiteConfig, error) {
	var cfg SiteConfig
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load env file: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

func defaultConfig() SiteConfig {
	return SiteConfig{
		Name:         "Testingfly",
		URL:          "http://localhost:3000",
		Addr:         ":3000",
		DatabasePath: "data/site.db",
		StaticDir:    "public",
		CacheTTL:     5 * time.Minute,
	}
}

// setDefaults fills every zero field from defaultConfig.
func (c *SiteConfig) setDefaults() {
	c.URL = strings.TrimRight(c.URL, "/")
	// Merge only fails when the two sides have different types.
	_ = mergo.Merge(c, defaultConfig())
}

func (c SiteConfig) validate() error {
	var errs []error
	if c.AdminPassword == "" {
		errs = append(errs, ErrMissingAdminPassword)
	}
	if c.SessionSecret == "" {
		errs = append(errs, ErrMissingSessionSecret)
	}
	return errors.Join(errs...)
}

// View returns the subset of the config templates read.
func (c SiteConfig) View() views.SiteConfig {
	return views.SiteConfig{
		Name:        c.Name,
		URL:         c.URL,
		Description: c.Description,
		Author:      c.Author,
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir overrides the directory served under /public.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}

// WithLogger replaces the default stdout logger.
func WithLogger(l *logger.Logger) Option {
	return func(a *App) {
		a.Log = l
	}
}
