package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config carries everything the server needs from the environment. It is
// built once in main and handed to the pieces that need it, so nothing
// reads os.Getenv at request time.
type Config struct {
	Port      string
	MongoURI  string
	DBName    string
	JWTSecret []byte
	BaseURL   string
	UploadDir string
	RedisAddr string
	AppEnv    string
}

// Load reads a .env file when present and then the process environment.
// MONGO_URI and JWT_SECRET have no sane defaults and are required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "4000"),
		MongoURI:  os.Getenv("MONGO_URI"),
		DBName:    getEnv("DB_NAME", "e-commerce"),
		JWTSecret: []byte(os.Getenv("JWT_SECRET")),
		UploadDir: getEnv("UPLOAD_DIR", "upload/images"),
		RedisAddr: os.Getenv("REDIS_ADDR"),
		AppEnv:    getEnv("APP_ENV", "development"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_URI not set")
	}
	if len(cfg.JWTSecret) == 0 {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}

	cfg.BaseURL = getEnv("BASE_URL", "http://localhost:"+cfg.Port)

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
