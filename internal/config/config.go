package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port           int
	StorageBackend string // "memory" or "postgres"

	DBHost     string
	DBPort     string
	DBUsername string
	DBPassword string
	DBDatabase string

	UploadDir  string
	StaticDir  string // empty disables the frontend fallback
	AdminToken string // empty disables the admin gate
	SeedData   bool
}

func Load() Config {
	port, err := strconv.Atoi(os.Getenv("PORT"))
	if err != nil || port <= 0 {
		port = 5000
	}

	return Config{
		Port:           port,
		StorageBackend: getenv("STORAGE_BACKEND", "memory"),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUsername:     os.Getenv("DB_USERNAME"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBDatabase:     os.Getenv("DB_DATABASE"),
		UploadDir:      getenv("UPLOAD_DIR", "uploads"),
		StaticDir:      os.Getenv("STATIC_DIR"),
		AdminToken:     os.Getenv("ADMIN_TOKEN"),
		SeedData:       os.Getenv("SEED_DATA") == "true",
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
