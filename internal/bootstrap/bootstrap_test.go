package bootstrap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/transferdesk/internal/config"
	"github.com/yigit/transferdesk/internal/seed"
)

func testConfig(t *testing.T, driver string) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Server.Port = "8080"
	cfg.Server.Mode = "test"
	cfg.Server.StoragePath = t.TempDir()
	cfg.Server.MaxUploadSize = 1 << 20
	cfg.Database.Driver = driver
	cfg.Database.SQLitePath = filepath.Join(t.TempDir(), "docs.db")
	cfg.Transfer.UploadPrefix = "edited-pdfs"
	cfg.Seed.Samples = true
	return cfg
}

func TestRouterServesSeededLookups(t *testing.T) {
	for _, driver := range []string{config.DriverMemory, config.DriverSQLite} {
		t.Run(driver, func(t *testing.T) {
			cfg := testConfig(t, driver)
			store, err := SetupStore(context.Background(), cfg, zerolog.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { store.Close() })

			deps, err := BuildDependencies(cfg, store, zerolog.Nop())
			require.NoError(t, err)
			router := SetupRouter(cfg, deps, zerolog.Nop())

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			assert.Equal(t, http.StatusOK, w.Code)

			w = httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/colleges", nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), seed.DefaultColleges[0].CollegeName)

			w = httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/students", nil))
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), "Sita Gurung")
		})
	}
}
