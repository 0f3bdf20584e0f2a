package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	require.Equal(t, ":8080", cfg.Server.Addr)
	require.Equal(t, "development", cfg.Server.Env)
	require.Equal(t, "https://api.bitechx.com", cfg.API.BaseURL)
	require.Equal(t, "catalog_session", cfg.Session.CookieName)
	require.False(t, cfg.Session.CookieSecure)
	require.Equal(t, 10, cfg.Pages.ProductPageSize)
	require.Equal(t, 10, cfg.Pages.CategoryPageSize)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("API_BASE_URL", "http://127.0.0.1:9999")
	t.Setenv("PRODUCT_PAGE_SIZE", "25")

	cfg := Load()
	require.Equal(t, "http://127.0.0.1:9999", cfg.API.BaseURL)
	require.Equal(t, 25, cfg.Pages.ProductPageSize)
}
