package configs

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var (
	AppPort      = getEnv("APP_PORT", "8080")
	AppEnv       = getEnv("APP_ENV", "development")
	DatabasePath = getEnv("DATABASE_PATH", "storage/waitlist.db")
	AdminKey     = getEnv("ADMIN_KEY", "")

	SmtpHost     = getEnv("SMTP_HOST", "localhost")
	SmtpPort     = getEnv("SMTP_PORT", "587")
	SmtpUser     = getEnv("SMTP_USERNAME", "")
	SmtpPassword = getEnv("SMTP_PASSWORD", "")
	MailFrom     = getEnv("MAIL_FROM", "hello@localhost")

	// Checkout runs on an external provider; an empty key disables the feature.
	PaymentSecretKey = getEnv("PAYMENT_SECRET_KEY", "")

	RateLimitMax = getEnv("RATE_LIMIT_MAX", "")
)

var loadOnce sync.Once

func getEnv(key, fallback string) string {
	loadOnce.Do(func() {
		_ = godotenv.Load()
	})
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func IsProduction() bool {
	return AppEnv == "production"
}
