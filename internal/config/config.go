package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config is the process-wide configuration, read from the environment once
// at startup and injected everywhere else. Nothing reads the environment ad
// hoc after Load returns (CHROME_PATH is the one exception: chromedp's exec
// allocator resolves it itself).
type Config struct {
	Port        string
	DatabaseURL string
	GeminiKey   string
	GeminiModel string
	CORSOrigins []string
}

// Load reads .env (if present) and the environment. Missing values get the
// same defaults the original deployment used.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:        getenv("PORT", "3000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		GeminiKey:   os.Getenv("GOOGLE_API_KEY"),
		GeminiModel: getenv("GEMINI_MODEL", "gemini-2.5-flash"),
	}

	origins := getenv("CORS_ORIGINS", "http://localhost:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}
	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
