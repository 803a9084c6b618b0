package config

import (
	"log"
	"os"
)

type Config struct {
	Port           string
	DBDSN          string
	LogFile        string
	SheetsURL      string
	GeminiAPIKey   string
	GeminiModel    string
	AdminSignupKey string
}

func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "aura.db" // sqlite file in project root
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./aura.log"
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-3-flash-preview"
	}
	adminKey := os.Getenv("ADMIN_SIGNUP_KEY")
	if adminKey == "" {
		adminKey = "AURA2024" // staff access key fallback
	}

	cfg := Config{
		Port:           port,
		DBDSN:          dsn,
		LogFile:        logFile,
		SheetsURL:      os.Getenv("SHEETS_URL"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		GeminiModel:    model,
		AdminSignupKey: adminKey,
	}
	log.Printf("[config] PORT=%s DB_DSN=%s LOG_FILE=%s SHEETS_URL=%s GEMINI_API_KEY=%s",
		cfg.Port, cfg.DBDSN, cfg.LogFile, redact(cfg.SheetsURL), presence(cfg.GeminiAPIKey))
	return cfg
}

func presence(s string) string {
	if s == "" {
		return "unset"
	}
	return "set"
}

func redact(url string) string {
	if url == "" {
		return "unset (local simulation)"
	}
	if len(url) > 40 {
		return url[:40] + "..."
	}
	return url
}
