package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Cache    CacheConfig
	Store    StoreConfig
	Archive  ArchiveConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    int
	WriteTimeout   int
	AllowedOrigins []string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type CacheConfig struct {
	Enabled             bool
	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	DashboardTTLSeconds int
}

// StoreConfig points CLI tooling at the backing inventory service.
type StoreConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

// ArchiveConfig is the S3-compatible bucket exported reports are copied to.
type ArchiveConfig struct {
	Enabled   bool
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

var (
	once     sync.Once
	instance *Config
)

func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()

		viper.SetDefault("SERVER_PORT", "8000")
		viper.SetDefault("SERVER_MODE", "debug")
		viper.SetDefault("SERVER_READ_TIMEOUT", 15)
		viper.SetDefault("SERVER_WRITE_TIMEOUT", 15)
		viper.SetDefault("SERVER_ALLOWED_ORIGINS", []string{"http://localhost:5173"})
		viper.SetDefault("DB_HOST", "localhost")
		viper.SetDefault("DB_PORT", "5432")
		viper.SetDefault("DB_USER", "postgres")
		viper.SetDefault("DB_PASSWORD", "postgres")
		viper.SetDefault("DB_NAME", "supplychain")
		viper.SetDefault("DB_SSLMODE", "disable")
		viper.SetDefault("CACHE_ENABLED", false)
		viper.SetDefault("REDIS_ADDR", "127.0.0.1:6379")
		viper.SetDefault("REDIS_PASSWORD", "")
		viper.SetDefault("REDIS_DB", 0)
		viper.SetDefault("CACHE_DASHBOARD_TTL_SECONDS", 60)
		viper.SetDefault("STORE_BASE_URL", "http://127.0.0.1:8000")
		viper.SetDefault("STORE_TIMEOUT_SECONDS", 30)
		viper.SetDefault("ARCHIVE_ENABLED", false)
		viper.SetDefault("ARCHIVE_ENDPOINT", "")
		viper.SetDefault("ARCHIVE_ACCESS_KEY", "")
		viper.SetDefault("ARCHIVE_SECRET_KEY", "")
		viper.SetDefault("ARCHIVE_BUCKET", "inventory-reports")
		viper.SetDefault("ARCHIVE_USE_SSL", true)

		viper.AutomaticEnv()

		instance = &Config{
			Server: ServerConfig{
				Port:           viper.GetString("SERVER_PORT"),
				Mode:           viper.GetString("SERVER_MODE"),
				ReadTimeout:    viper.GetInt("SERVER_READ_TIMEOUT"),
				WriteTimeout:   viper.GetInt("SERVER_WRITE_TIMEOUT"),
				AllowedOrigins: viper.GetStringSlice("SERVER_ALLOWED_ORIGINS"),
			},
			Database: DatabaseConfig{
				Host:     viper.GetString("DB_HOST"),
				Port:     viper.GetString("DB_PORT"),
				User:     viper.GetString("DB_USER"),
				Password: viper.GetString("DB_PASSWORD"),
				DBName:   viper.GetString("DB_NAME"),
				SSLMode:  viper.GetString("DB_SSLMODE"),
			},
			Cache: CacheConfig{
				Enabled:             viper.GetBool("CACHE_ENABLED"),
				RedisAddr:           viper.GetString("REDIS_ADDR"),
				RedisPassword:       viper.GetString("REDIS_PASSWORD"),
				RedisDB:             viper.GetInt("REDIS_DB"),
				DashboardTTLSeconds: viper.GetInt("CACHE_DASHBOARD_TTL_SECONDS"),
			},
			Store: StoreConfig{
				BaseURL:        viper.GetString("STORE_BASE_URL"),
				TimeoutSeconds: viper.GetInt("STORE_TIMEOUT_SECONDS"),
			},
			Archive: ArchiveConfig{
				Enabled:   viper.GetBool("ARCHIVE_ENABLED"),
				AccessKey: viper.GetString("ARCHIVE_ACCESS_KEY"),
				SecretKey: viper.GetString("ARCHIVE_SECRET_KEY"),
				Endpoint:  viper.GetString("ARCHIVE_ENDPOINT"),
				Bucket:    viper.GetString("ARCHIVE_BUCKET"),
				UseSSL:    viper.GetBool("ARCHIVE_USE_SSL"),
			},
		}
	})

	return instance
}
