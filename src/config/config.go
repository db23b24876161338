package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	MySQLDSN      string
	RedisURL      string
	Port          string
	AllowOrigins  []string
	ToastTTL      time.Duration
	RedirectDelay time.Duration
	FocusDelay    time.Duration
	RateLimit     int
	RateWindow    time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getseconds(key string, def int) time.Duration {
	n, err := strconv.Atoi(getenv(key, strconv.Itoa(def)))
	if err != nil {
		n = def
	}
	return time.Duration(n) * time.Second
}

func Load() Config {
	rate, _ := strconv.Atoi(getenv("RATE_LIMIT", "60"))
	return Config{
		MySQLDSN:      getenv("MYSQL_DSN", "stockdesk:stockdesk@tcp(127.0.0.1:3306)/stockdesk?parseTime=true"),
		RedisURL:      getenv("REDIS_URL", "redis://127.0.0.1:6379/0"),
		Port:          getenv("PORT", "8080"),
		AllowOrigins:  strings.Split(getenv("ALLOW_ORIGINS", "http://localhost:3000"), ","),
		ToastTTL:      getseconds("TOAST_TTL", 5),
		RedirectDelay: getseconds("LOGIN_REDIRECT_DELAY", 2),
		FocusDelay:    100 * time.Millisecond,
		RateLimit:     rate,
		RateWindow:    time.Minute,
	}
}
