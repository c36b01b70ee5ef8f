package main

import (
	"os"
	"strconv"
	"time"
)

// Config carries run plumbing only: where to write, how to log, and the
// optional load/upload targets. Record counts are fixed constants owned by
// the coordinator, not configuration.
type Config struct {
	Env       string
	OutputDir string
	Seed      int64
	MongoURI  string
	MongoDB   string
	S3Bucket  string
}

func LoadConfig() *Config {
	cfg := &Config{
		Env:       getEnv("APP_ENV", "development"),
		OutputDir: getEnv("DATA_OUTPUT_DIR", "./data"),
		Seed:      time.Now().UnixNano(),
		MongoURI:  os.Getenv("MONGO_DB_URL"),
		MongoDB:   getEnv("MONGO_DB_NAME", "ecommerce"),
		S3Bucket:  os.Getenv("DATA_S3_BUCKET"),
	}
	if raw := os.Getenv("DATA_SEED"); raw != "" {
		if seed, err := strconv.ParseInt(raw, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
