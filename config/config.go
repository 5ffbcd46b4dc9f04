package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT    string
	DB_URL  string
	APP_URL string

	STRIPE_SECRET_KEY      string
	STRIPE_PUBLISHABLE_KEY string
	STRIPE_WEBHOOK_SECRET  string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	APP_URL = getEnv("APP_URL", "http://localhost:3000")

	// Missing Stripe secrets must fail at boot, not at first charge.
	STRIPE_SECRET_KEY = mustEnv("STRIPE_SECRET_KEY")
	STRIPE_PUBLISHABLE_KEY = mustEnv("STRIPE_PUBLISHABLE_KEY")
	STRIPE_WEBHOOK_SECRET = mustEnv("STRIPE_WEBHOOK_SECRET")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
