package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds everything fixed at process startup. Request handling keeps
// no other shared mutable state.
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Email    EmailConfig
	Security SecurityConfig
}

type AppConfig struct {
	HTTPAddr string
	LogLevel string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type EmailConfig struct {
	SMTPHost  string
	SMTPPort  int
	SMTPUser  string
	SMTPPass  string
	FromEmail string
}

type SecurityConfig struct {
	JWTSecret         string
	TokenTTL          time.Duration
	MaxUsernameLength int
	CodeLength        int
}

// Load reads the optional .env file and then the environment. Every field
// has a development default so the service starts with no configuration.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	viper.AutomaticEnv()

	viper.SetDefault("HTTP_ADDR", ":8080")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "reviewdb")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_FROM", "verify@reviewdb.local")
	viper.SetDefault("JWT_SECRET", "dev_secret_change_me")
	viper.SetDefault("TOKEN_TTL", "24h")
	viper.SetDefault("MAX_USERNAME_LENGTH", 150)
	viper.SetDefault("CODE_LENGTH", 32)

	return &Config{
		App: AppConfig{
			HTTPAddr: viper.GetString("HTTP_ADDR"),
			LogLevel: viper.GetString("LOG_LEVEL"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
		},
		Email: EmailConfig{
			SMTPHost:  viper.GetString("SMTP_HOST"),
			SMTPPort:  viper.GetInt("SMTP_PORT"),
			SMTPUser:  viper.GetString("SMTP_USER"),
			SMTPPass:  viper.GetString("SMTP_PASS"),
			FromEmail: viper.GetString("SMTP_FROM"),
		},
		Security: SecurityConfig{
			JWTSecret:         viper.GetString("JWT_SECRET"),
			TokenTTL:          viper.GetDuration("TOKEN_TTL"),
			MaxUsernameLength: viper.GetInt("MAX_USERNAME_LENGTH"),
			CodeLength:        viper.GetInt("CODE_LENGTH"),
		},
	}
}

// DSN builds the Postgres connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}
