package config

import (
	"os"
	"strconv"
	"time"
)

// Config captures everything the process reads from its environment. Built once
// in main and passed by reference; nothing else touches os.Getenv.
type Config struct {
	Addr string

	// DatabaseURL selects the Postgres stores when set; otherwise the service
	// runs on seeded in-memory stores.
	DatabaseURL string

	// RedisURL enables the auth-route rate limiter when set.
	RedisURL string

	// AMQPURL enables the audit event publisher when set.
	AMQPURL string

	// TranslatorURL points at the translation backend. SourceLang is the fixed
	// source language for every call; TargetLang is used when the caller omits
	// a language parameter.
	TranslatorURL     string
	SourceLang        string
	TargetLang        string
	TranslatorTimeout time.Duration

	// Table names are overridable to keep parity with the per-environment
	// namespaces the service was deployed with.
	MoviesTable  string
	ReviewsTable string
	UsersTable   string

	BcryptCost int

	// AuthRateLimit requests per AuthRateWindow, per client IP, on the auth
	// routes. Only enforced when RedisURL is set.
	AuthRateLimit  int
	AuthRateWindow time.Duration
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	return Config{
		Addr:              getenv("CINELOG_ADDR", ":8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisURL:          os.Getenv("REDIS_URL"),
		AMQPURL:           os.Getenv("AMQP_URL"),
		TranslatorURL:     os.Getenv("TRANSLATOR_URL"),
		SourceLang:        getenv("TRANSLATE_SOURCE_LANG", "en"),
		TargetLang:        getenv("TRANSLATE_TARGET_LANG", "fr"),
		TranslatorTimeout: getduration("TRANSLATOR_TIMEOUT", 10*time.Second),
		MoviesTable:       getenv("MOVIES_TABLE", "movies"),
		ReviewsTable:      getenv("REVIEWS_TABLE", "reviews"),
		UsersTable:        getenv("USERS_TABLE", "users"),
		BcryptCost:        getint("BCRYPT_COST", 10),
		AuthRateLimit:     getint("AUTH_RATE_LIMIT", 20),
		AuthRateWindow:    getduration("AUTH_RATE_WINDOW", time.Minute),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getduration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
