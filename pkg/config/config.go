package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix namespaces every environment variable read by the service.
const EnvPrefix = "TINDAHAN"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	Catalog      CatalogConfig
	Composition  CompositionConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"TINDAHAN_APP_ENV" required:"true"`
	Port         string `envconfig:"TINDAHAN_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"TINDAHAN_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"TINDAHAN_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"TINDAHAN_DB_DSN"`
	Driver string `envconfig:"TINDAHAN_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"TINDAHAN_DB_HOST"`
	Port     int    `envconfig:"TINDAHAN_DB_PORT" default:"5432"`
	User     string `envconfig:"TINDAHAN_DB_USER"`
	Password string `envconfig:"TINDAHAN_DB_PASSWORD"`
	Name     string `envconfig:"TINDAHAN_DB_NAME"`
	SSLMode  string `envconfig:"TINDAHAN_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"TINDAHAN_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"TINDAHAN_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"TINDAHAN_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"TINDAHAN_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"TINDAHAN_REDIS_URL"`
	Address      string        `envconfig:"TINDAHAN_REDIS_ADDR"`
	Password     string        `envconfig:"TINDAHAN_REDIS_PASSWORD"`
	DB           int           `envconfig:"TINDAHAN_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"TINDAHAN_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"TINDAHAN_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"TINDAHAN_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"TINDAHAN_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"TINDAHAN_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type CatalogConfig struct {
	CacheTTL time.Duration `envconfig:"TINDAHAN_CATALOG_CACHE_TTL" default:"5m"`
}

type CompositionConfig struct {
	SessionTTL time.Duration `envconfig:"TINDAHAN_COMPOSITION_SESSION_TTL" default:"2h"`
	MaxLines   int           `envconfig:"TINDAHAN_COMPOSITION_MAX_LINES" default:"200"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"TINDAHAN_AUTO_MIGRATE" default:"false"`
	UseCache    bool `envconfig:"TINDAHAN_USE_CATALOG_CACHE" default:"true"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	required := map[string]string{
		"TINDAHAN_DB_HOST": db.Host,
		"TINDAHAN_DB_USER": db.User,
		"TINDAHAN_DB_NAME": db.Name,
	}
	for _, key := range []string{"TINDAHAN_DB_HOST", "TINDAHAN_DB_USER", "TINDAHAN_DB_NAME"} {
		if required[key] == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either TINDAHAN_DB_DSN or %s are required", strings.Join(missing, ", "))
	}

	userInfo := url.User(db.User)
	if db.Password != "" {
		userInfo = url.UserPassword(db.User, db.Password)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   db.Name,
	}

	if db.SSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.SSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
