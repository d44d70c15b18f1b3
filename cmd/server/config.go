package main

import (
	"errors"
	"log"
	"os"
	"strconv"
)

var errNoDatabaseURL = errors.New("DATABASE_URL is not set")

type Config struct {
	DatabaseURL         string
	GeminiAPIKey        string
	GeminiModel         string
	LiveInflationURL    string
	LiveGoldURL         string
	ReferenceDataFile   string
	StressInflationRate float64
	Port                string
	Env                 string
}

func loadConfig() *Config {
	return &Config{
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		GeminiAPIKey:        getEnv("GEMINI_API_KEY", ""),
		GeminiModel:         getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		LiveInflationURL:    getEnv("LIVE_INFLATION_URL", ""),
		LiveGoldURL:         getEnv("LIVE_GOLD_URL", ""),
		ReferenceDataFile:   getEnv("REFERENCE_DATA_FILE", ""),
		StressInflationRate: getEnvFloat("STRESS_INFLATION_RATE", 12),
		Port:                getEnv("PORT", "8080"),
		Env:                 getEnv("GO_ENV", "development"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("Invalid %s=%q, using %v", key, raw, defaultValue)
		return defaultValue
	}
	return value
}
