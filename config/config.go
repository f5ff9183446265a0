package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Model     ModelConfig
	Dashboard DashboardConfig
	App       AppConfig
}

type ServerConfig struct {
	Port           string   `validate:"required,numeric"`
	StaticDir      string
	CORSOrigins    []string `validate:"min=1,dive,eq=*|startswith=http://|startswith=https://"`
	RateLimitRPS   float64  `validate:"gte=0"`
	RateLimitBurst int      `validate:"gte=0"`
}

type ModelConfig struct {
	WeightsPath string
}

type DashboardConfig struct {
	AnomalyCount    int `validate:"gte=1,lte=10000"`
	GlobalRiskCount int `validate:"gte=1,lte=10000"`
}

type AppConfig struct {
	Environment string `validate:"oneof=development staging production test"`
	LogLevel    string `validate:"oneof=debug info warn error"`
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "5000"),
			StaticDir:      getEnv("STATIC_DIR", ""),
			CORSOrigins:    getEnvAsList("CORS_ORIGINS", []string{"*"}),
			RateLimitRPS:   getEnvAsFloat("RATE_LIMIT_RPS", 0),
			RateLimitBurst: getEnvAsInt("RATE_LIMIT_BURST", 20),
		},
		Model: ModelConfig{
			WeightsPath: getEnv("MODEL_WEIGHTS_PATH", "models/weights/model_weights.yaml"),
		},
		Dashboard: DashboardConfig{
			AnomalyCount:    getEnvAsInt("ANOMALY_COUNT", 100),
			GlobalRiskCount: getEnvAsInt("GLOBAL_RISK_COUNT", 200),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid number for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
