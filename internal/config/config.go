package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBDriver      string
	DBPath        string
	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBPort        string
	DBSSLMode     string
	UploadDir     string
	TemplatesDir  string
	BaseURL       string
	MaxUploadSize int64
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: Error loading .env file")
	}

	port := getEnv("PORT", "8080")

	return &Config{
		Port:          port,
		DBDriver:      getEnv("DB_DRIVER", "sqlite"),
		DBPath:        getEnv("DB_PATH", "./labels.db"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", ""),
		DBName:        getEnv("DB_NAME", "labels"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		TemplatesDir:  getEnv("TEMPLATES_DIR", "./web/templates"),
		BaseURL:       getEnv("BASE_URL", "http://localhost:"+port),
		MaxUploadSize: getEnvInt64("MAX_UPLOAD_SIZE", 10<<20),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.ParseInt(value, 10, 64); err == nil {
			return n
		}
		log.Printf("Warning: invalid value for %s, using fallback", key)
	}
	return fallback
}
