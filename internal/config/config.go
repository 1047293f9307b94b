package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Auth   AuthConfig
	CORS   CORSConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type StoreConfig struct {
	// DataDir holds one JSON document per collection.
	DataDir string
}

type AuthConfig struct {
	Secret string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("STORE_DATA_DIR", "data")
	viper.SetDefault("AUTH_SECRET", "dev-secret")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
		Store: StoreConfig{
			DataDir: viper.GetString("STORE_DATA_DIR"),
		},
		Auth: AuthConfig{
			Secret: viper.GetString("AUTH_SECRET"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
		},
	}
}
