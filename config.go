package main

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config is read once at startup from the environment (and .env in development).
type Config struct {
	Port            string
	IsProduction    bool
	LogLevel        string
	WordsFile       string
	AlphabetName    string
	SessionsDir     string
	SessionTimeout  time.Duration
	CookieMaxAge    time.Duration
	StaticCacheAge  time.Duration
	CleanupInterval time.Duration
	RateLimitRPS    int
	RateLimitBurst  int
}

func loadConfig() Config {
	if err := godotenv.Load(); err != nil {
		logInfo("No .env file found, reading from environment variables")
	}
	return Config{
		Port:            getEnvString("PORT", "8080"),
		IsProduction:    os.Getenv("GIN_MODE") == "release" || os.Getenv("ENV") == "production",
		LogLevel:        getEnvString("LOG_LEVEL", "info"),
		WordsFile:       getEnvString("WORDS_FILE", "data/words.json"),
		AlphabetName:    getEnvString("HANGMAN_ALPHABET", "cyrillic"),
		SessionsDir:     getEnvString("SESSIONS_DIR", "data/sessions"),
		SessionTimeout:  getEnvDuration("SESSION_TIMEOUT", 2*time.Hour),
		CookieMaxAge:    getEnvDuration("COOKIE_MAX_AGE", 2*time.Hour),
		StaticCacheAge:  getEnvDuration("STATIC_CACHE_AGE", 5*time.Minute),
		CleanupInterval: getEnvDuration("CLEANUP_INTERVAL", 10*time.Minute),
		RateLimitRPS:    getEnvInt("RATE_LIMIT_RPS", 10),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 20),
	}
}
