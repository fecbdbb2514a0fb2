package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del cliente (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App      AppConfig
	Upstream UpstreamConfig
	HTTP     HTTPConfig
	Snapshot SnapshotConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// UpstreamConfig configuración del backend REST de inventario.
type UpstreamConfig struct {
	BaseURL        string        // ej. http://localhost:3000
	Timeout        time.Duration // timeout de red por petición
	ProductLimit   int           // tamaño de página del grid de productos
	AdjustLimit    int           // tamaño de página de la tabla de ajustes
	LoadAllMaxPage int           // tope de seguridad al cargar todo el catálogo
}

// HTTPConfig configuración del servidor HTTP local (capa de vistas).
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SnapshotConfig persistencia local del estado.
type SnapshotConfig struct {
	Path string // archivo JSON del snapshot; vacío = sin persistencia
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, UPSTREAM_BASE_URL, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "inventario-cliente"),
		},
		Upstream: UpstreamConfig{
			BaseURL:        getString(v, "UPSTREAM_BASE_URL", "http://localhost:3000"),
			Timeout:        time.Duration(getInt(v, "UPSTREAM_TIMEOUT_SECONDS", 15)) * time.Second,
			ProductLimit:   getInt(v, "UPSTREAM_PRODUCT_LIMIT", 8),
			AdjustLimit:    getInt(v, "UPSTREAM_ADJUSTMENT_LIMIT", 10),
			LoadAllMaxPage: getInt(v, "UPSTREAM_LOAD_ALL_MAX_PAGES", 10),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8090),
		},
		Snapshot: SnapshotConfig{
			Path: getString(v, "SNAPSHOT_PATH", "inventory-snapshot.json"),
		},
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
