package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config is everything the process needs from the environment, resolved
// once at startup.
type Config struct {
	Port              string
	DatabaseURL       string
	JWTSecret         string
	TokenTTLHours     int
	LowStockThreshold int
	StockScanSchedule string
	GinMode           string
	CORSOrigins       []string
	AdminEmail        string
	AdminPassword     string
}

// Load reads .env (if present) and the environment into a Config.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	return Config{
		Port:              envOr("PORT", "8080"),
		DatabaseURL:       os.Getenv("DB_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		TokenTTLHours:     envIntOr("JWT_EXPIRY_HOURS", 24),
		LowStockThreshold: envIntOr("LOW_STOCK_THRESHOLD", 5),
		StockScanSchedule: envOr("STOCK_SCAN_CRON", "0 9 * * *"),
		GinMode:           envOr("GIN_MODE", "debug"),
		CORSOrigins:       splitList(envOr("CORS_ORIGINS", "http://localhost:3000")),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
