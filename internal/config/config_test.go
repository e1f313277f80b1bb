package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViperDefaults(t *testing.T) {
	base := t.TempDir()

	cfg, err := fromViper(viper.New(), base)
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	assert.Equal(t, 7089, cfg.HTTP.Port)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, filepath.Join(base, "blackteam.db"), cfg.DB.Path)
	assert.Equal(t, 1, cfg.DB.MaxOpenConns)
	assert.Equal(t, filepath.Join(base, "Notas"), cfg.Notas.OutputDir)
	assert.False(t, cfg.Notas.OpenAfterExport)
	assert.Equal(t, "Black Team", cfg.Shop.Name)
	assert.Equal(t, "Contagem", cfg.Shop.City)
}

func TestFromViperOverrides(t *testing.T) {
	t.Setenv("STORE_PATH", "/srv/notas/store.db")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("NOTAS_OPEN_AFTER_EXPORT", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.local, ,http://b.local")
	t.Setenv("DB_CONN_MAX_LIFETIME", "5m")
	t.Setenv("SHOP_CITY", "Betim")

	v := viper.New()
	v.AutomaticEnv()

	cfg, err := fromViper(v, t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/srv/notas/store.db", cfg.DB.Path)
	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.True(t, cfg.Notas.OpenAfterExport)
	assert.Equal(t, []string{"http://a.local", "http://b.local"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 5*time.Minute, cfg.DB.ConnMaxLifetime)
	assert.Equal(t, "Betim", cfg.Shop.City)
}

func TestFromViperValidation(t *testing.T) {
	t.Run("postgres without dsn", func(t *testing.T) {
		v := viper.New()
		v.Set("STORE_DRIVER", "postgres")

		_, err := fromViper(v, t.TempDir())
		assert.ErrorContains(t, err, "DB_DSN")
	})

	t.Run("unknown driver", func(t *testing.T) {
		v := viper.New()
		v.Set("STORE_DRIVER", "mongo")

		_, err := fromViper(v, t.TempDir())
		assert.ErrorContains(t, err, "unsupported STORE_DRIVER")
	})
}
