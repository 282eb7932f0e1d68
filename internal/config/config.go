package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL  string
	DatabaseName string
	Port         string
	AMQPURL      string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	return Config{
		DatabaseURL:  getEnvOrDefault("DATABASE_URL", "mongodb://localhost:27017"),
		DatabaseName: getEnvOrDefault("DATABASE_NAME", "outlet"),
		Port:         getEnvOrDefault("PORT", "8000"),
		AMQPURL:      strings.TrimSpace(os.Getenv("AMQP_URL")),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
