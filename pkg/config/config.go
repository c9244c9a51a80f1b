package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Drivers soportados para el almacenamiento clave-valor de los perfiles.
const (
	StorageMemory   = "memory"
	StorageRedis    = "redis"
	StorageBolt     = "bolt"
	StoragePostgres = "postgres"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App        AppConfig
	Log        LogConfig
	HTTP       HTTPConfig
	Storage    StorageConfig
	DB         DBConfig
	Redis      RedisConfig
	Bolt       BoltConfig
	Profile    ProfileConfig
	Auth       AuthConfig
	Dashboard  DashboardConfig
	AddProduct AddProductConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel y destino opcional en archivo (rotado).
type LogConfig struct {
	Level      string
	File       string
	MaxSizeMB  int
	MaxBackups int
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

// StorageConfig elige el driver del almacenamiento local de cada perfil.
type StorageConfig struct {
	Driver string // memory, redis, bolt, postgres
}

// DBConfig configuración de PostgreSQL (solo con STORAGE_DRIVER=postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// RedisConfig conexión a Redis (solo con STORAGE_DRIVER=redis).
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// BoltConfig archivo bbolt (solo con STORAGE_DRIVER=bolt).
type BoltConfig struct {
	Path string
}

// ProfileConfig cookie firmada que identifica el perfil del navegador.
type ProfileConfig struct {
	Secret      string
	Issuer      string
	CookieName  string
	TTLMinutes  int
	IdleMinutes int    // perfiles sin actividad se descargan de memoria
	SweepSpec   string // expresión cron del barrido
}

// AuthConfig contraseña compartida de las cuentas demo.
type AuthConfig struct {
	SharedPassword string
}

// DashboardConfig animación de contadores.
type DashboardConfig struct {
	AnimationDuration time.Duration
	AnimationSteps    int
}

// AddProductConfig demora simulada del alta de producto.
type AddProductConfig struct {
	SubmitDelay time.Duration
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, STORAGE_DRIVER, PROFILE_SECRET, etc.
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
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "commodity-flow"),
		},
		Log: LogConfig{
			Level:      getString(v, "LOG_LEVEL", "info"),
			File:       getString(v, "LOG_FILE", ""),
			MaxSizeMB:  getInt(v, "LOG_MAX_SIZE_MB", 50),
			MaxBackups: getInt(v, "LOG_MAX_BACKUPS", 5),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Storage: StorageConfig{
			Driver: strings.ToLower(getString(v, "STORAGE_DRIVER", StorageMemory)),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "commodity_flow"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Addr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			Password: getString(v, "REDIS_PASSWORD", ""),
			DB:       getInt(v, "REDIS_DB", 0),
		},
		Bolt: BoltConfig{
			Path: getString(v, "BOLT_PATH", "commodity-flow.db"),
		},
		Profile: ProfileConfig{
			Secret:      getString(v, "PROFILE_SECRET", ""),
			Issuer:      getString(v, "PROFILE_ISSUER", "commodity-flow"),
			CookieName:  getString(v, "PROFILE_COOKIE", "cf_profile"),
			TTLMinutes:  getInt(v, "PROFILE_TTL_MINUTES", 60*24*365),
			IdleMinutes: getInt(v, "PROFILE_IDLE_MINUTES", 30),
			SweepSpec:   getString(v, "PROFILE_SWEEP_SPEC", "@every 5m"),
		},
		Auth: AuthConfig{
			SharedPassword: getString(v, "AUTH_SHARED_PASSWORD", "password123"),
		},
		Dashboard: DashboardConfig{
			AnimationDuration: time.Duration(getInt(v, "DASHBOARD_ANIMATION_MS", 2000)) * time.Millisecond,
			AnimationSteps:    getInt(v, "DASHBOARD_ANIMATION_STEPS", 60),
		},
		AddProduct: AddProductConfig{
			SubmitDelay: time.Duration(getInt(v, "ADD_PRODUCT_DELAY_MS", 1000)) * time.Millisecond,
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Storage.Driver {
	case StorageMemory, StorageRedis, StorageBolt, StoragePostgres:
	default:
		return fmt.Errorf("config: STORAGE_DRIVER desconocido %q", c.Storage.Driver)
	}
	if c.Profile.Secret == "" {
		if c.App.Env == "production" {
			return fmt.Errorf("config: PROFILE_SECRET es requerido en producción")
		}
		c.Profile.Secret = "dev-profile-secret"
	}
	if c.Dashboard.AnimationSteps <= 0 {
		c.Dashboard.AnimationSteps = 60
	}
	return nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		n, err := cast.ToIntE(v.Get(key))
		if err != nil {
			return def
		}
		return n
	}
	return def
}
