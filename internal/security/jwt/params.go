package jwtutil

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Secret    []byte
	ClockSkew time.Duration
}

func LoadConfig() Config {
	skew := 60 * time.Second
	if v := os.Getenv("SESSION_CLOCK_SKEW_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			skew = time.Duration(n) * time.Second
		}
	}
	return Config{
		Secret:    []byte(os.Getenv("SESSION_JWT_SECRET")),
		ClockSkew: skew,
	}
}

// DefaultSessionTTL is a day unless SESSION_TTL overrides it; storefront
// sessions are long-lived since there is nothing sensitive behind them.
func DefaultSessionTTL() time.Duration {
	if v := os.Getenv("SESSION_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return 24 * time.Hour
}
