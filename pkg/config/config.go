package config

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Log     LogConfig
	Storage StorageConfig
	Console ConsoleConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, production
	Name string
}

// LogConfig nivel y destino de los logs estructurados.
// File vacío = stderr; el stdout queda reservado para el menú.
type LogConfig struct {
	Level string
	File  string
}

// StorageConfig ubicación de los dos documentos JSON.
type StorageConfig struct {
	DataDir       string
	ProductsFile  string
	MovementsFile string
}

// ProductsPath devuelve la ruta completa del documento de productos.
func (c StorageConfig) ProductsPath() string {
	return filepath.Join(c.DataDir, c.ProductsFile)
}

// MovementsPath devuelve la ruta completa del documento de movimientos.
func (c StorageConfig) MovementsPath() string {
	return filepath.Join(c.DataDir, c.MovementsFile)
}

// ConsoleConfig opciones de la consola interactiva.
type ConsoleConfig struct {
	Color bool
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, LOG_LEVEL, DATA_DIR, PRODUCTS_FILE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.MergeInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v), nil
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "estoque-cli"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "warn"),
			File:  getString(v, "LOG_FILE", ""),
		},
		Storage: StorageConfig{
			DataDir:       getString(v, "DATA_DIR", "."),
			ProductsFile:  getString(v, "PRODUCTS_FILE", "estoque.json"),
			MovementsFile: getString(v, "MOVEMENTS_FILE", "movimentacoes.json"),
		},
		Console: ConsoleConfig{
			Color: getBool(v, "COLOR", true),
		},
	}
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) && v.GetString(key) != "" {
		return v.GetString(key)
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	switch val := v.Get(key).(type) {
	case bool:
		return val
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(val))
		if err != nil {
			return def
		}
		return b
	default:
		return v.GetBool(key)
	}
}
