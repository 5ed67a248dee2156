package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backend selection.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

type Config struct {
	ListenPort      string        // ex: ":4000"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	StoreBackend string // "file" (default) or "redis"
	DataDir      string // directory holding the collection JSON files
	SeedFile     string // path to seed.yaml (empty = seeding disabled)

	AllowedOrigins []string // CORS origins; defaults to "*"

	// Redis (only read when StoreBackend == "redis")
	RedisAddr           string
	RedisUser           string
	RedisPassword       string
	RedisDB             int
	RedisDialTimeout    time.Duration
	RedisReadTimeout    time.Duration
	RedisWriteTimeout   time.Duration
	RedisPoolSize       int
	RedisConnectTimeout time.Duration // total time to retry connecting
	RedisRetryInterval  time.Duration // initial wait between retries, grows exponentially
	RedisMaxWait        time.Duration // cap on the wait between retries
	RedisPingTimeout    time.Duration // timeout for each ping attempt
	RedisWarnThreshold  int           // warn after this many attempts
}

func Load() *Config {
	// A local .env is a convenience for development; absence is fine.
	_ = godotenv.Load()

	cfg := &Config{
		ListenPort:      getenv("PARIWISATA_LISTEN_PORT", ":4000"),
		ShutdownTimeout: mustDuration("PARIWISATA_SHUTDOWN_TIMEOUT", 5*time.Second),

		LogLevel:  getenv("PARIWISATA_LOG_LEVEL", "info"),
		PrettyLog: mustBool("PARIWISATA_PRETTY_LOG", true),

		StoreBackend: getenv("PARIWISATA_STORE_BACKEND", BackendFile),
		DataDir:      getenv("PARIWISATA_DATA_DIR", "data"),
		SeedFile:     getenv("PARIWISATA_SEED_FILE", "seed.yaml"),

		AllowedOrigins: splitAndTrim(getenv("PARIWISATA_ALLOWED_ORIGINS", "*")),
	}

	switch cfg.StoreBackend {
	case BackendFile:
	case BackendRedis:
		cfg.RedisAddr = requireEnv("PARIWISATA_REDIS_ADDR")
		cfg.RedisUser = getenv("PARIWISATA_REDIS_USERNAME", "default")
		cfg.RedisPassword = getenv("PARIWISATA_REDIS_PASSWORD", "")
		cfg.RedisDB = getenvInt("PARIWISATA_REDIS_DB", 0)
		cfg.RedisDialTimeout = mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second)
		cfg.RedisReadTimeout = mustDuration("REDIS_READ_TIMEOUT", 3*time.Second)
		cfg.RedisWriteTimeout = mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second)
		cfg.RedisPoolSize = getenvInt("REDIS_POOL_SIZE", 10)
		cfg.RedisConnectTimeout = mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second)
		cfg.RedisRetryInterval = mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second)
		cfg.RedisMaxWait = mustDuration("REDIS_MAX_WAIT", 10*time.Second)
		cfg.RedisPingTimeout = mustDuration("REDIS_PING_TIMEOUT", 5*time.Second)
		cfg.RedisWarnThreshold = getenvInt("REDIS_WARN_THRESHOLD", 3)
	default:
		panic(fmt.Sprintf("❌ FATAL: Unknown PARIWISATA_STORE_BACKEND %q (want %q or %q)",
			cfg.StoreBackend, BackendFile, BackendRedis))
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid boolean value for %s: %s", key, v))
	}
	return b
}

func mustDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(fmt.Sprintf("❌ FATAL: Invalid duration value for %s: %s", key, v))
	}
	return d
}

func splitAndTrim(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
