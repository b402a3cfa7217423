package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	// API
	Port    string
	Storage string
	// Postgres
	DatabaseURL string
	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	// Market data
	CoinGeckoBaseURL string
	CoinGeckoAPIKey  string
	PinnedIDs        []string
	TopCoins         int
	QuoteCurrency    string
	// Fiat feed
	FiatFeedBase string
	FiatFeedKey  string
	// Poller
	PollInterval     time.Duration
	SchedulerEnabled bool
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func splitCSV(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		Env:              getEnv("ENV", "local"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		Port:             getEnv("PORT", "8080"),
		Storage:          getEnv("STORAGE", "mem"),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    getEnv("REDIS_PASSWORD", ""),
		RedisDB:          atoiDef(getEnv("REDIS_DB", "0"), 0),
		CoinGeckoBaseURL: getEnv("COINGECKO_BASE_URL", "https://api.coingecko.com/api/v3"),
		CoinGeckoAPIKey:  getEnv("COINGECKO_DEMO_API_KEY", ""),
		PinnedIDs:        splitCSV(getEnv("PINNED_IDS", "bitcoin,ethereum,tether")),
		TopCoins:         atoiDef(getEnv("TOP_COINS", "10"), 10),
		QuoteCurrency:    getEnv("QUOTE_CURRENCY", "usd"),
		FiatFeedBase:     getEnv("FIAT_FEED_BASE", "https://api.exchangeratesapi.io"),
		FiatFeedKey:      getEnv("FIAT_FEED_KEY", ""),
		PollInterval:     time.Duration(atoiDef(getEnv("POLL_INTERVAL_SEC", "300"), 300)) * time.Second,
		SchedulerEnabled: getEnv("SCHEDULER_ENABLED", "true") == "true",
	}
}
