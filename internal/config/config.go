package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Google  GoogleConfig
	OpenAI  OpenAIConfig
	Scraper ScraperConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type GoogleConfig struct {
	APIKey string
}

type OpenAIConfig struct {
	APIKey string
}

type ScraperConfig struct {
	NavigationTimeout time.Duration
	SelectorTimeout   time.Duration
	HTTPTimeout       time.Duration
	ResultLimit       int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Google: GoogleConfig{
			APIKey: getEnv("GOOGLE_API_KEY", ""),
		},
		OpenAI: OpenAIConfig{
			APIKey: getEnv("OPENAI_API_KEY", ""),
		},
		Scraper: ScraperConfig{
			NavigationTimeout: getEnvAsDuration("SCRAPER_NAV_TIMEOUT", "30s"),
			SelectorTimeout:   getEnvAsDuration("SCRAPER_SELECTOR_TIMEOUT", "15s"),
			HTTPTimeout:       getEnvAsDuration("HTTP_TIMEOUT", "10s"),
			ResultLimit:       getEnvAsInt("SEARCH_RESULT_LIMIT", 3),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
