package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	defaultStoreFile = "blackteam.db"
	defaultNotasDir  = "Notas"
)

type HTTPConfig struct {
	Host           string
	Port           int
	AllowedOrigins []string
}

type DBConfig struct {
	Driver          string
	Path            string
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type NotasConfig struct {
	OutputDir       string
	OpenAfterExport bool
}

// ShopConfig holds the fixed texts printed on every nota.
type ShopConfig struct {
	Name      string
	Tagline   string
	Phones    string
	Instagram string
	Address   string
	City      string
}

type Config struct {
	Environment string
	LogLevel    string
	HTTP        HTTPConfig
	DB          DBConfig
	Notas       NotasConfig
	Shop        ShopConfig
}

func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./deploy")
	v.AutomaticEnv()

	_ = v.ReadInConfig()

	return fromViper(v, executableDir())
}

func fromViper(v *viper.Viper, baseDir string) (*Config, error) {
	cfg := &Config{
		Environment: v.GetString("APP_ENV"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		HTTP: HTTPConfig{
			Host:           v.GetString("HTTP_HOST"),
			Port:           v.GetInt("HTTP_PORT"),
			AllowedOrigins: parseList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			Driver:          strings.ToLower(strings.TrimSpace(v.GetString("STORE_DRIVER"))),
			Path:            v.GetString("STORE_PATH"),
			DSN:             v.GetString("DB_DSN"),
			MaxOpenConns:    v.GetInt("DB_MAX_OPEN_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: v.GetDuration("DB_CONN_MAX_LIFETIME"),
		},
		Notas: NotasConfig{
			OutputDir:       v.GetString("NOTAS_OUTPUT_DIR"),
			OpenAfterExport: v.GetBool("NOTAS_OPEN_AFTER_EXPORT"),
		},
		Shop: ShopConfig{
			Name:      v.GetString("SHOP_NAME"),
			Tagline:   v.GetString("SHOP_TAGLINE"),
			Phones:    v.GetString("SHOP_PHONES"),
			Instagram: v.GetString("SHOP_INSTAGRAM"),
			Address:   v.GetString("SHOP_ADDRESS"),
			City:      v.GetString("SHOP_CITY"),
		},
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.HTTP.Host == "" {
		cfg.HTTP.Host = "127.0.0.1"
	}
	if cfg.HTTP.Port == 0 {
		cfg.HTTP.Port = 7089
	}
	if len(cfg.HTTP.AllowedOrigins) == 0 {
		cfg.HTTP.AllowedOrigins = []string{"http://localhost", "http://127.0.0.1"}
	}
	if cfg.DB.Driver == "" {
		cfg.DB.Driver = DriverSQLite
	}
	if cfg.DB.Path == "" {
		cfg.DB.Path = filepath.Join(baseDir, defaultStoreFile)
	}
	if cfg.DB.MaxOpenConns == 0 {
		cfg.DB.MaxOpenConns = 1
	}
	if cfg.DB.MaxIdleConns == 0 {
		cfg.DB.MaxIdleConns = 1
	}
	if cfg.Notas.OutputDir == "" {
		cfg.Notas.OutputDir = filepath.Join(baseDir, defaultNotasDir)
	}
	applyShopDefaults(&cfg.Shop)

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyShopDefaults(shop *ShopConfig) {
	if shop.Name == "" {
		shop.Name = "Black Team"
	}
	if shop.Tagline == "" {
		shop.Tagline = "Ternos e Vestidos para festas"
	}
	if shop.Phones == "" {
		shop.Phones = "(31) 2524-3199 / 9 9341-3966"
	}
	if shop.Instagram == "" {
		shop.Instagram = "@blackteam.vestidos"
	}
	if shop.Address == "" {
		shop.Address = "Av. Londres - nº 49. Loja 05 - Bairro Eldorado - Contagem/MG"
	}
	if shop.City == "" {
		shop.City = "Contagem"
	}
}

func validate(cfg *Config) error {
	switch cfg.DB.Driver {
	case DriverSQLite:
	case DriverPostgres:
		if cfg.DB.DSN == "" {
			return fmt.Errorf("DB_DSN is required for the postgres store")
		}
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", cfg.DB.Driver)
	}
	if cfg.HTTP.Port < 0 || cfg.HTTP.Port > 65535 {
		return fmt.Errorf("HTTP_PORT out of range: %d", cfg.HTTP.Port)
	}
	return nil
}

// executableDir is where the store file and the Notas folder live by default.
func executableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

func parseList(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	items := strings.Split(raw, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}
