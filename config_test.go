package website

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SITE_URL", "https://testingfly.com/")
	t.Setenv("ADMIN_PASSWORD", "pw")
	t.Setenv("ADMIN_SESSION_SECRET", "secret")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "https://testingfly.com", cfg.URL)
	assert.Equal(t, "Testingfly", cfg.Name)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
	assert.True(t, cfg.CookieSecure)
	assert.NoError(t, cfg.validate())
}

func TestLoadConfigFromEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SITE_NAME=Fly Site\nSTATIC_DIR=assets\n"), 0o644))
	t.Setenv("SITE_NAME", "")
	t.Setenv("STATIC_DIR", "")
	// godotenv never overrides variables that are already set, so clear them.
	os.Unsetenv("SITE_NAME")
	os.Unsetenv("STATIC_DIR")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Fly Site", cfg.Name)
	assert.Equal(t, "assets", cfg.StaticDir)
}

func TestConfigValidate(t *testing.T) {
	err := SiteConfig{}.validate()
	assert.ErrorIs(t, err, ErrMissingAdminPassword)
	assert.ErrorIs(t, err, ErrMissingSessionSecret)

	err = SiteConfig{AdminPassword: "pw"}.validate()
	assert.NotErrorIs(t, err, ErrMissingAdminPassword)
	assert.ErrorIs(t, err, ErrMissingSessionSecret)
}

func TestSetDefaults(t *testing.T) {
	cfg := SiteConfig{URL: "http://example.com///"}
	cfg.setDefaults()
	assert.Equal(t, "http://example.com", cfg.URL)
	assert.Equal(t, "data/site.db", cfg.DatabasePath)
	assert.Equal(t, "public", cfg.StaticDir)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
}
