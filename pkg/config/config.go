package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	Log       LogConfig
	HTTP      HTTPConfig
	Inventory InventoryConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	SeedDemo bool // carga el catálogo de demostración al arrancar
}

// LogConfig nivel de log (trace, debug, info, warn, error).
type LogConfig struct {
	Level string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// InventoryConfig parámetros de las reglas derivadas.
type InventoryConfig struct {
	ActivityLimit  int             // tamaño del historial de actividad reciente
	LowStockFactor decimal.Decimal // objetivo de reposición = ceil(stock mínimo × factor)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde .env o config.env).
// Las env vars tienen prioridad.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	setDefaults(v)

	factor, err := decimal.NewFromString(v.GetString("LOW_STOCK_FACTOR"))
	if err != nil {
		return nil, fmt.Errorf("config: LOW_STOCK_FACTOR: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("APP_ENV"),
			Name:     v.GetString("APP_NAME"),
			SeedDemo: v.GetBool("SEED_DEMO"),
		},
		Log: LogConfig{Level: strings.ToLower(v.GetString("LOG_LEVEL"))},
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		Inventory: InventoryConfig{
			ActivityLimit:  v.GetInt("ACTIVITY_LIMIT"),
			LowStockFactor: factor,
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "stockboard")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 8080)
	v.SetDefault("SEED_DEMO", false)
	v.SetDefault("ACTIVITY_LIMIT", 50)
	v.SetDefault("LOW_STOCK_FACTOR", "1.5")
}

// Validate rechaza valores fuera de rango.
func (c *Config) Validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("config: HTTP_PORT fuera de rango: %d", c.HTTP.Port)
	}
	if c.Inventory.ActivityLimit <= 0 {
		return fmt.Errorf("config: ACTIVITY_LIMIT debe ser positivo: %d", c.Inventory.ActivityLimit)
	}
	if !c.Inventory.LowStockFactor.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("config: LOW_STOCK_FACTOR debe ser >= 1: %s", c.Inventory.LowStockFactor)
	}
	return nil
}
