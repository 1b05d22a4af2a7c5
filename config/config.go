package config

import (
	"os"

	"loadgo/internal/mylogger"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	App      *Appconfig
	DB       *DBconfig
	RabbitMq *RabbitMqconfig
}

type Appconfig struct {
	Port      int
	JwtSecret string
	LogLevel  string
}

type DBconfig struct {
	Driver         string // postgres or sqlite
	Host           string
	Port           int
	User           string
	Password       string
	Database       string
	SQLitePath     string
	MigrationsPath string
}

type RabbitMqconfig struct {
	Host     string
	Port     int
	User     string
	Password string
	VHost    string
}

// New reads the configuration from the environment, loading .env first if
// one is present. Missing keys fall back to defaults with a logged warning.
func New(mylog mylogger.Logger) *Config {
	_ = godotenv.Load(".env")

	getEnv := func(key, def string) string {
		val := os.Getenv(key)
		if val == "" {
			mylog.Warn("using default value for config key", "key", key, "default", def)
			return def
		}
		return val
	}

	getEnvInt := func(key string, def int) int {
		val := os.Getenv(key)
		if val == "" {
			mylog.Warn("using default value for config key", "key", key, "default", def)
			return def
		}
		return cast.ToInt(val)
	}

	cnf := &Config{
		App: &Appconfig{
			Port:      getEnvInt("APP_PORT", 5000),
			JwtSecret: getEnv("JWT_SECRET", "change-this-in-production"),
			LogLevel:  getEnv("LOG_LEVEL", mylogger.LevelInfo),
		},
		DB: &DBconfig{
			Driver:         getEnv("STORAGE_DRIVER", "postgres"),
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnvInt("DB_PORT", 5432),
			User:           getEnv("DB_USER", "loadgo_user"),
			Password:       getEnv("DB_PASSWORD", "loadgo_pass"),
			Database:       getEnv("DB_NAME", "loadgo_db"),
			SQLitePath:     getEnv("SQLITE_PATH", "loadgo.db"),
			MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations"),
		},
		RabbitMq: &RabbitMqconfig{
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getEnvInt("RABBITMQ_PORT", 5672),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
			VHost:    getEnv("RABBITMQ_VHOST", ""),
		},
	}

	return cnf
}
