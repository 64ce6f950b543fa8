package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every tunable the service reads from the environment.
type Config struct {
	Port      string
	StorePath string

	// JWTSecret signs session tokens.
	JWTSecret []byte

	// Pricing applied at checkout.
	TaxRate     float64
	DeliveryFee float64

	// Simulated gateway pacing: offsets of the verify and authorize stage
	// messages, and the total processing time before completion.
	GatewayVerifyAfter    time.Duration
	GatewayAuthorizeAfter time.Duration
	GatewayCompleteAfter  time.Duration
}

// Load reads .env when present, then the environment, with fallbacks.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	return &Config{
		Port:                  getEnv("PORT", "8080"),
		StorePath:             getEnv("STORE_PATH", "curries_burger.db"),
		JWTSecret:             []byte(getEnv("JWT_SECRET", "curries_burger_super_secret_2024")),
		TaxRate:               getEnvFloat("TAX_RATE", 0.10),
		DeliveryFee:           getEnvFloat("DELIVERY_FEE", 5.00),
		GatewayVerifyAfter:    getEnvDuration("GATEWAY_VERIFY_AFTER", 1500*time.Millisecond),
		GatewayAuthorizeAfter: getEnvDuration("GATEWAY_AUTHORIZE_AFTER", 3*time.Second),
		GatewayCompleteAfter:  getEnvDuration("GATEWAY_COMPLETE_AFTER", 5*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("config: invalid %s=%q, using %v", key, v, fallback)
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		log.Printf("config: invalid %s=%q, using %v", key, v, fallback)
	}
	return fallback
}
