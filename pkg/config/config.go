package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment values recognized in Config.Env.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config is built once at startup and treated as immutable afterwards.
// Components that need a setting receive it explicitly at construction time.
type Config struct {
	Env         string
	Port        string
	DatabaseURL string
	JWTSecret   string
	JWTIssuer   string
}

// Load reads environment variables, optionally from a .env file if present.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Env:         getEnv("APP_ENV", EnvDevelopment),
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:   getEnv("JWT_ISSUER", "blog-service"),
	}
	return cfg
}

// IsProduction reports whether the service runs in production mode.
// In production, error messages are stripped from client responses and
// the session cookie is marked Secure.
func (c Config) IsProduction() bool { return c.Env == EnvProduction }

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
