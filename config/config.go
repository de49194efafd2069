// config.go
package config

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/yaml.v2"

	"github.com/MauItu/inventario-alimentos/entity"
	"github.com/MauItu/inventario-alimentos/logger"
)

// ReadConfig reads the configuration from the YAML file and applies
// environment overrides. A .env file is honored when present.
func ReadConfig(filePath string) (*entity.Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, using system env vars")
	}

	var config entity.Config

	// Read the YAML file content
	data, err := os.ReadFile(filePath)
	if err != nil {
		logger.Error("unable to read config file", zap.Error(err))
		return nil, err
	}

	// Unmarshal the YAML data into the Config struct
	if err := yaml.Unmarshal(data, &config); err != nil {
		logger.Error("unable to unmarshal YAML", zap.Error(err))
		return nil, err
	}

	// Secrets and per-deployment settings come from the environment
	config.OpenAI.APIKey = GetEnv("OPENAI_API_KEY", "")
	config.Server.Port = GetEnv("PORT", config.Server.Port)
	if config.Server.Port == "" {
		config.Server.Port = "8080"
	}
	if config.OpenAI.BaseURL == "" {
		config.OpenAI.BaseURL = "https://api.openai.com/v1"
	}
	if config.OpenAI.Model == "" {
		config.OpenAI.Model = "gpt-4o"
	}

	return &config, nil
}

// GetEnv returns the value of key or fallback when it is unset.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
