package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del terminal POS (lectura vía Viper desde env
// y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Backend BackendConfig
	HTTP    HTTPConfig
	Ticket  TicketConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// BackendConfig ubicación del backend de la tienda (catálogo, ventas, reportes).
type BackendConfig struct {
	BaseURL string // ej. http://localhost:4000
	Timeout time.Duration
}

// HTTPConfig configuración del servidor HTTP local (fachada para la UI).
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// TicketConfig opciones del ticket de venta en PDF.
type TicketConfig struct {
	Dir       string // directorio donde se guardan los tickets generados
	StoreName string // razón social impresa en el encabezado
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BACKEND_URL, HTTP_PORT, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "carniceria-pos"),
		},
		Backend: BackendConfig{
			BaseURL: getString(v, "BACKEND_URL", "http://localhost:4000"),
			Timeout: time.Duration(getInt(v, "BACKEND_TIMEOUT_SECONDS", 15)) * time.Second,
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "127.0.0.1"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Ticket: TicketConfig{
			Dir:       getString(v, "TICKET_DIR", "./tickets"),
			StoreName: getString(v, "TICKET_STORE_NAME", "Carnicería"),
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
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
