package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application. It is loaded once at
// startup and passed explicitly into constructors; nothing reads ambient
// environment state after Load returns.
type Config struct {
	Environment string
	Port        string
	AWS         AWSConfig
	Tables      TableConfig
	Auth        AuthConfig
}

// AWSConfig holds AWS client configuration.
type AWSConfig struct {
	Region   string
	Endpoint string // non-empty for local DynamoDB
}

// TableConfig holds the DynamoDB table names.
type TableConfig struct {
	Leads     string
	Interests string
}

// AuthConfig holds authorizer configuration. Strategy selects between the
// bearer-token and the fixed basic-auth authorizer.
type AuthConfig struct {
	Strategy       string // "jwt" or "basic"
	JWTSecret      string
	JWTExpiryHours int
	BasicUsername  string
	BasicPassword  string
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Set up Viper
	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8081")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("REGION", "eu-west-1")
	viper.SetDefault("LEADS_TABLE", "leads")
	viper.SetDefault("INTERESTS_TABLE", "interests")
	viper.SetDefault("AUTH_STRATEGY", "jwt")
	viper.SetDefault("JWT_EXPIRY_HOURS", 24)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		AWS: AWSConfig{
			Region:   viper.GetString("REGION"),
			Endpoint: viper.GetString("DYNAMODB_ENDPOINT"),
		},
		Tables: TableConfig{
			Leads:     viper.GetString("LEADS_TABLE"),
			Interests: viper.GetString("INTERESTS_TABLE"),
		},
		Auth: AuthConfig{
			Strategy:       viper.GetString("AUTH_STRATEGY"),
			JWTSecret:      viper.GetString("JWT_SECRET"),
			JWTExpiryHours: viper.GetInt("JWT_EXPIRY_HOURS"),
			BasicUsername:  viper.GetString("BASIC_AUTH_USERNAME"),
			BasicPassword:  viper.GetString("BASIC_AUTH_PASSWORD"),
		},
	}

	return config, nil
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
