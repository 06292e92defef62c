package config

import (
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	JWT      JWTConfig
	Upstream UpstreamConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration.
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// MongoDBConfig holds MongoDB-specific configuration.
type MongoDBConfig struct {
	URI      string
	Database string
}

// JWTConfig holds JWT-specific configuration.
type JWTConfig struct {
	Secret    string
	ExpiresIn int // seconds
}

// UpstreamConfig holds configuration for the loteriasyapuestas.es results
// API client.
type UpstreamConfig struct {
	BaseURL        string
	SiteOrigin     string
	Mock           bool
	RequestDelayMS int // minimum delay between upstream requests
}

// Load loads configuration from environment variables and config files.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// Missing config file is fine, environment variables take over.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

// setDefaults sets default values for configuration.
func setDefaults() {
	viper.SetDefault("Server.Port", "8000")
	viper.SetDefault("Server.AllowedOrigins", []string{
		"http://localhost:5173",
		"http://127.0.0.1:5173",
	})
	viper.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	viper.SetDefault("MongoDB.Database", "lottery")
	viper.SetDefault("JWT.Secret", "")
	viper.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	viper.SetDefault("Upstream.BaseURL", "https://www.loteriasyapuestas.es/servicios/buscadorSorteos")
	viper.SetDefault("Upstream.SiteOrigin", "https://www.loteriasyapuestas.es")
	viper.SetDefault("Upstream.Mock", false)
	viper.SetDefault("Upstream.RequestDelayMS", 2500)
	viper.SetDefault("LogLevel", "info")
}
