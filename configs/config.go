package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env       string
	DBDriver  string
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// SMTP + links embedded in notification mails
	MailHost      string
	MailPort      int
	MailUsername  string
	MailPassword  string
	MailFrom      string
	VerifyBaseURL string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment only")
	}

	return &Config{
		Env:       getEnv("APP_ENV", "development"),
		DBDriver:  getEnv("DB_DRIVER", "sqlite"),
		DBSource:  getEnv("DB_SOURCE", "servibook.db"),
		Port:      getEnv("PORT", "8000"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    time.Duration(getEnvInt("JWT_TTL_HOURS", 24)) * time.Hour,

		MailHost:      os.Getenv("MAIL_HOST"),
		MailPort:      getEnvInt("MAIL_PORT", 587),
		MailUsername:  os.Getenv("MAIL_USERNAME"),
		MailPassword:  os.Getenv("MAIL_PASSWORD"),
		MailFrom:      getEnv("MAIL_FROM", "no-reply@servibook.local"),
		VerifyBaseURL: getEnv("VERIFY_BASE_URL", "http://localhost:5173/verify-appointment"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
