package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

type Config struct {
	AppPort string

	StoreBackend string
	StorePath    string

	RedisAddr     string
	RedisPassword string
	RedisStoreKey string
}

func Load() Config {

	// A missing .env is fine; real deployments set env vars directly.
	_ = godotenv.Load()

	cfg := Config{

		AppPort: getenv("APP_PORT", "8080"),

		StoreBackend: getenv("STORE_BACKEND", BackendFile),
		StorePath:    getenv("STORE_PATH", "./data/sessions.json"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisStoreKey: getenv("REDIS_STORE_KEY", "session-store"),
	}

	return cfg

}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
