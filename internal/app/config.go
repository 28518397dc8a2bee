package app

import "os"

type Config struct {
	Env           string
	Port          string
	DatabaseURL   string
	SessionSecret string
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func LoadConfig() Config {
	return Config{
		Env:           getEnv("APP_ENV", "dev"),
		Port:          getEnv("APP_PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		SessionSecret: getEnv("SESSION_SECRET", "dev-only-secret"),
	}
}
