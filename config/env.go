package config

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultDatabaseURL  = "mongodb://localhost:27017"
	defaultDatabaseName = "foodshop"
	defaultPort         = "8000"
	defaultAppEnv       = "local"
	defaultMaxBodyBytes = 4 << 20
	defaultCacheTTL     = 5 * time.Minute
)

var (
	loadOnce sync.Once
	loadErr  error

	mu     sync.RWMutex
	values = defaultValues()

	// envFile is the dotenv file merged on Load. Tests point it elsewhere.
	envFile = ".env"
)

// Load merges defaults, the .env file and the process environment, in that
// order. A missing .env file is not an error.
func Load() error {
	loadOnce.Do(func() {
		loadErr = loadFrom(envFile)
	})
	return loadErr
}

func defaultValues() map[string]string {
	return map[string]string{
		"DATABASE_URL":   "",
		"DATABASE_NAME":  defaultDatabaseName,
		"PORT":           defaultPort,
		"APP_ENV":        defaultAppEnv,
		"REDIS_ADDR":     "",
		"REDIS_PASSWORD": "",
		"LOG_TO_MONGO":   "false",
		"MAX_BODY_BYTES": strconv.Itoa(defaultMaxBodyBytes),
		"CACHE_TTL":      defaultCacheTTL.String(),
	}
}

func loadFrom(path string) error {
	loaded := defaultValues()

	fromFile, err := godotenv.Read(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	for k, v := range fromFile {
		loaded[strings.ToUpper(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}

	for key := range loaded {
		if v, ok := os.LookupEnv(key); ok {
			loaded[key] = strings.TrimSpace(v)
		}
	}

	mu.Lock()
	values = loaded
	mu.Unlock()
	return nil
}

// ── Store ────────────────────────────────────────────────────────────────────

// DatabaseURLSet reports whether DATABASE_URL was configured explicitly.
func DatabaseURLSet() bool {
	_ = Load()
	return get("DATABASE_URL", "") != ""
}

func DatabaseURL() string {
	_ = Load()
	return get("DATABASE_URL", defaultDatabaseURL)
}

func DatabaseName() string {
	_ = Load()
	return get("DATABASE_NAME", defaultDatabaseName)
}

// ── HTTP ─────────────────────────────────────────────────────────────────────

func Port() string {
	_ = Load()
	return get("PORT", defaultPort)
}

func AppEnv() string {
	_ = Load()
	return get("APP_ENV", defaultAppEnv)
}

// MaxBodyBytes is the request body cap applied by pkg/bind.
func MaxBodyBytes() int64 {
	_ = Load()
	n, err := strconv.ParseInt(get("MAX_BODY_BYTES", ""), 10, 64)
	if err != nil || n <= 0 {
		return defaultMaxBodyBytes
	}
	return n
}

// ── Redis / cache ────────────────────────────────────────────────────────────

// RedisAddr is empty when the product cache is disabled.
func RedisAddr() string {
	_ = Load()
	return get("REDIS_ADDR", "")
}

func RedisPassword() string {
	_ = Load()
	return get("REDIS_PASSWORD", "")
}

func CacheTTL() time.Duration {
	_ = Load()
	d, err := time.ParseDuration(get("CACHE_TTL", ""))
	if err != nil || d <= 0 {
		return defaultCacheTTL
	}
	return d
}

// ── Logging ──────────────────────────────────────────────────────────────────

// LogToMongo enables the Mongo log sink next to stdout.
func LogToMongo() bool {
	_ = Load()
	ok, _ := strconv.ParseBool(get("LOG_TO_MONGO", "false"))
	return ok
}

func get(key, fallback string) string {
	mu.RLock()
	defer mu.RUnlock()

	if value := strings.TrimSpace(values[key]); value != "" {
		return value
	}
	return fallback
}

// Get reads any config key by name with an optional fallback.
func Get(key, fallback string) string {
	_ = Load()
	return get(key, fallback)
}
