package config

import (
	"os"
	"time"
)

type Config struct {
	StripeSecretKey string
	HTTPPort        string
	Production      bool
	MongoURI        string
	MongoDBName     string
	RedisAddr       string
	StaticDir       string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// Load reads configuration from the process environment. Nothing is
// validated here; a missing SECRET_KEY simply makes processor calls fail
// with an authentication error downstream.
func Load() *Config {
	return &Config{
		StripeSecretKey: os.Getenv("SECRET_KEY"),
		HTTPPort:        getEnv("PORT", "5000"),
		Production:      os.Getenv("NODE_ENV") == "production",
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:     getEnv("MONGO_DB_NAME", "shopdb"),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		StaticDir:       getEnv("STATIC_DIR", "frontend/build"),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
