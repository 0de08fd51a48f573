package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Platform PlatformConfig
}

type ServerConfig struct {
	Host    string
	Port    int
	BaseURL string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret       string
	ExpiryHours  int
	RefreshHours int
}

// PlatformConfig holds marketplace-level settings. The admin account that
// receives ticket commissions is injected here instead of being hardcoded.
type PlatformConfig struct {
	AdminUserID    string
	CommissionRate float64
}

var (
	cfg  *Config
	once sync.Once
)

func Load() (*Config, error) {
	var loadErr error
	once.Do(func() {
		// .env is optional; real deployments use environment variables
		_ = godotenv.Load()

		v := viper.New()
		v.AutomaticEnv()
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

		v.SetDefault("SERVER_HOST", "0.0.0.0")
		v.SetDefault("SERVER_PORT", 7070)
		v.SetDefault("SERVER_BASE_URL", "")

		v.SetDefault("DB_HOST", "localhost")
		v.SetDefault("DB_PORT", 5432)
		v.SetDefault("DB_USER", "postgres")
		v.SetDefault("DB_PASSWORD", "postgres")
		v.SetDefault("DB_NAME", "utsav")
		v.SetDefault("DB_SSLMODE", "disable")

		v.SetDefault("REDIS_ADDR", "localhost:6379")
		v.SetDefault("REDIS_PASSWORD", "")
		v.SetDefault("REDIS_DB", 0)

		v.SetDefault("JWT_EXPIRY_HOURS", 24)
		v.SetDefault("JWT_REFRESH_HOURS", 168)

		v.SetDefault("PLATFORM_COMMISSION_RATE", 0.13)

		c := &Config{
			Server: ServerConfig{
				Host:    v.GetString("SERVER_HOST"),
				Port:    v.GetInt("SERVER_PORT"),
				BaseURL: v.GetString("SERVER_BASE_URL"),
			},
			Database: DatabaseConfig{
				Host:     v.GetString("DB_HOST"),
				Port:     v.GetInt("DB_PORT"),
				User:     v.GetString("DB_USER"),
				Password: v.GetString("DB_PASSWORD"),
				DBName:   v.GetString("DB_NAME"),
				SSLMode:  v.GetString("DB_SSLMODE"),
			},
			Redis: RedisConfig{
				Addr:     v.GetString("REDIS_ADDR"),
				Password: v.GetString("REDIS_PASSWORD"),
				DB:       v.GetInt("REDIS_DB"),
			},
			JWT: JWTConfig{
				Secret:       v.GetString("JWT_SECRET"),
				ExpiryHours:  v.GetInt("JWT_EXPIRY_HOURS"),
				RefreshHours: v.GetInt("JWT_REFRESH_HOURS"),
			},
			Platform: PlatformConfig{
				AdminUserID:    v.GetString("PLATFORM_ADMIN_USER_ID"),
				CommissionRate: v.GetFloat64("PLATFORM_COMMISSION_RATE"),
			},
		}

		if c.JWT.Secret == "" {
			loadErr = fmt.Errorf("JWT_SECRET is required")
			return
		}
		if c.Platform.AdminUserID == "" {
			loadErr = fmt.Errorf("PLATFORM_ADMIN_USER_ID is required")
			return
		}
		cfg = c
	})
	return cfg, loadErr
}

func Get() *Config {
	return cfg
}
