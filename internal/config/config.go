package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	Port           string `mapstructure:"PORT"`
	JWTSecret      string `mapstructure:"JWT_SECRET"`
	StorageDriver  string `mapstructure:"STORAGE_DRIVER"` // sqlite | postgres | redis
	StoragePath    string `mapstructure:"STORAGE_PATH"`   // sqlite database file
	StorageDSN     string `mapstructure:"STORAGE_DSN"`    // postgres DSN
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`
}

var AppConfig *Config

// LoadConfig loads the configuration from a .env file and environment variables.
func LoadConfig() {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("JWT_SECRET", "dev-only-secret")
	viper.SetDefault("STORAGE_DRIVER", "sqlite")
	viper.SetDefault("STORAGE_PATH", "novacore.db")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:5173")

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	err := viper.Unmarshal(&AppConfig)
	if err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
