package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	AdminToken string
	SiteEnv    string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ no .env file, using system ENV")
		} else {
			log.Println("✅ .env loaded")
		}
	} else {
		log.Println("🚀 running on Railway, using system ENV")
	}

	AdminToken = GetEnv("ADMIN_API_TOKEN")
	SiteEnv = GetEnv("SITE_ENV", "development")

	if AdminToken == "" {
		log.Println("❌ ADMIN_API_TOKEN not set — admin routes will reject everything")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
