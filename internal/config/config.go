package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	PersistenceMemory = "memory"
	PersistenceRedis  = "redis"
	PersistenceSQL    = "sql"

	SeedEmbedded = "embedded"
	SeedLocal    = "local"
	SeedMinio    = "minio"
)

type Config struct {
	Server      ServerConfig
	Log         LogConfig
	Persistence PersistenceConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Seed        SeedConfig
	Storage     StorageConfig
	Session     SessionConfig
	Catalog     CatalogConfig
	Pricing     PricingConfig
	Tracing     TracingConfig   `mapstructure:"tracing"`
	CORS        CORSConfig      `mapstructure:"cors"`
	RateLimit   RateLimitConfig `mapstructure:"rate_limit"`
}

type ServerConfig struct {
	Port string
	Mode string
}

type LogConfig struct {
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

// PersistenceConfig 用户身份与主题偏好的键值存储
type PersistenceConfig struct {
	Type      string `mapstructure:"type"`
	Namespace string `mapstructure:"namespace"`
}

type DatabaseConfig struct {
	Host      string
	Port      int
	User      string
	Password  string
	DBName    string
	Charset   string
	ParseTime bool `mapstructure:"parsetime"`
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// SeedConfig 课程目录与选课种子数据来源
type SeedConfig struct {
	Source string `mapstructure:"source"`
	Path   string `mapstructure:"path"`
	Watch  bool   `mapstructure:"watch"`
}

type StorageConfig struct {
	MinioEndpoint string `mapstructure:"minio_endpoint"`
	MinioAccessID string `mapstructure:"minio_access_key"`
	MinioSecret   string `mapstructure:"minio_secret_key"`
	MinioBucket   string `mapstructure:"minio_bucket"`
	MinioSecure   bool   `mapstructure:"minio_secure"`
}

type SessionConfig struct {
	SimulatedDelayMS int    `mapstructure:"simulated_delay_ms"`
	DemoPassword     string `mapstructure:"demo_password"`
}

func (s SessionConfig) SimulatedDelay() time.Duration {
	return time.Duration(s.SimulatedDelayMS) * time.Millisecond
}

type CatalogConfig struct {
	FeaturedLimit int `mapstructure:"featured_limit"`
}

type PricingConfig struct {
	TaxRate float64 `mapstructure:"tax_rate"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type RateLimitConfig struct {
	MaxRequests   int `mapstructure:"max_requests"`
	WindowMinutes int `mapstructure:"window_minutes"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.mode", "release")

	v.SetDefault("log.file", "logs/app.log")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 30)

	v.SetDefault("persistence.type", PersistenceMemory)
	v.SetDefault("persistence.namespace", "luminax")

	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "luminax")
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.parsetime", true)

	v.SetDefault("redis.host", "127.0.0.1")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("seed.source", SeedEmbedded)
	v.SetDefault("seed.path", "")
	v.SetDefault("seed.watch", false)

	v.SetDefault("storage.minio_endpoint", "")
	v.SetDefault("storage.minio_access_key", "")
	v.SetDefault("storage.minio_secret_key", "")
	v.SetDefault("storage.minio_bucket", "")
	v.SetDefault("storage.minio_secure", false)

	v.SetDefault("session.simulated_delay_ms", 1000)
	v.SetDefault("session.demo_password", "password")

	v.SetDefault("catalog.featured_limit", 6)
	v.SetDefault("pricing.tax_rate", 0.10)

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.collector_endpoint", "")

	v.SetDefault("cors.allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("rate_limit.max_requests", 600)
	v.SetDefault("rate_limit.window_minutes", 1)
}

// LoadConfig 读取 path 目录下的 config.yaml，文件不存在时只使用默认值和环境变量
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.SetEnvPrefix("LUMINAX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// 与部署环境约定的无前缀变量
	v.BindEnv("database.host", "DATABASE_HOST")
	v.BindEnv("database.password", "DATABASE_PASSWORD")
	v.BindEnv("redis.host", "REDIS_HOST")
	v.BindEnv("redis.password", "REDIS_PASSWORD")
	v.BindEnv("storage.minio_endpoint", "LUMINAX_STORAGE_MINIO_ENDPOINT", "MINIO_ENDPOINT")
	v.BindEnv("storage.minio_access_key", "LUMINAX_STORAGE_MINIO_ACCESS_KEY", "MINIO_ACCESS_KEY")
	v.BindEnv("storage.minio_secret_key", "LUMINAX_STORAGE_MINIO_SECRET_KEY", "MINIO_SECRET_KEY")
	v.BindEnv("storage.minio_bucket", "LUMINAX_STORAGE_MINIO_BUCKET", "MINIO_BUCKET")
	v.BindEnv("tracing.collector_endpoint", "LUMINAX_TRACING_COLLECTOR_ENDPOINT", "TRACING_COLLECTOR_ENDPOINT")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch c.Persistence.Type {
	case PersistenceMemory, PersistenceRedis, PersistenceSQL:
	default:
		return fmt.Errorf("unknown persistence type %q", c.Persistence.Type)
	}

	switch c.Seed.Source {
	case SeedEmbedded:
	case SeedLocal:
		if c.Seed.Path == "" {
			return errors.New("seed.path is required for local seed source")
		}
	case SeedMinio:
		if c.Storage.MinioBucket == "" || c.Seed.Path == "" {
			return errors.New("storage.minio_bucket and seed.path are required for minio seed source")
		}
	default:
		return fmt.Errorf("unknown seed source %q", c.Seed.Source)
	}

	if c.Pricing.TaxRate < 0 {
		return fmt.Errorf("pricing.tax_rate must not be negative, got %v", c.Pricing.TaxRate)
	}
	if c.Catalog.FeaturedLimit < 0 {
		return fmt.Errorf("catalog.featured_limit must not be negative, got %d", c.Catalog.FeaturedLimit)
	}
	if c.Session.SimulatedDelayMS < 0 {
		return fmt.Errorf("session.simulated_delay_ms must not be negative, got %d", c.Session.SimulatedDelayMS)
	}
	return nil
}
