package configs

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	AppName  string
	Port     string
	Timezone string

	DBDriver      string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	DBAutoMigrate bool
	DBSeed        bool

	CacheDriver    string
	CacheTTL       time.Duration
	CacheFlushCron string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int

	JWTSecret         string
	AdminUsername     string
	AdminPasswordHash string

	LogLevel  string
	LogFormat string

	RequestTimeout     time.Duration
	RateLimitPerMinute int
	CorsAllowOrigins   string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system environment")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 Running in Railway, using system environment")
	}

	AppName = GetEnv("APP_NAME", "Coaching ERP Dashboard")
	Port = GetEnv("PORT", "3000")
	Timezone = GetEnv("APP_TIMEZONE", "Asia/Kolkata")

	DBDriver = strings.ToLower(GetEnv("DB_DRIVER", "mysql"))
	DBHost = GetEnv("DB_HOST", "localhost")
	DBPort = GetEnv("DB_PORT", defaultDBPort(DBDriver))
	DBUser = GetEnv("DB_USER", "root")
	DBPassword = GetEnv("DB_PASSWORD")
	DBName = GetEnv("DB_NAME", "students")
	DBSSLMode = GetEnv("DB_SSLMODE", "disable")
	DBAutoMigrate = GetBool("DB_AUTO_MIGRATE", false)
	DBSeed = GetBool("DB_SEED", false)

	CacheDriver = strings.ToLower(GetEnv("CACHE_DRIVER", "memory"))
	CacheTTL = GetDuration("CACHE_TTL", 10*time.Minute)
	CacheFlushCron = GetEnv("CACHE_FLUSH_CRON")
	RedisAddr = GetEnv("REDIS_ADDR")
	RedisPassword = GetEnv("REDIS_PASSWORD")
	RedisDB = GetInt("REDIS_DB", 0)

	JWTSecret = GetEnv("JWT_SECRET")
	AdminUsername = GetEnv("ADMIN_USERNAME", "admin")
	AdminPasswordHash = GetEnv("ADMIN_PASSWORD_HASH")

	LogLevel = GetEnv("LOG_LEVEL", "info")
	LogFormat = GetEnv("LOG_FORMAT", "console")

	RequestTimeout = GetDuration("REQUEST_TIMEOUT", 5*time.Second)
	RateLimitPerMinute = GetInt("RATE_LIMIT_PER_MINUTE", 120)
	CorsAllowOrigins = GetEnv("CORS_ALLOW_ORIGINS", "*")

	if DBPassword == "" && DBDriver != "sqlite" {
		log.Println("❌ DB_PASSWORD is not set!")
	}
	if AdminPasswordHash != "" && JWTSecret == "" {
		log.Println("❌ ADMIN_PASSWORD_HASH is set but JWT_SECRET is empty, staff login will fail")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetBool(key string, def bool) bool {
	v := strings.TrimSpace(GetEnv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func GetInt(key string, def int) int {
	v := strings.TrimSpace(GetEnv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func GetDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(GetEnv(key))
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

// AuthEnabled reports whether mutation routes require a staff session.
func AuthEnabled() bool {
	return AdminPasswordHash != ""
}

func defaultDBPort(driver string) string {
	switch driver {
	case "postgres":
		return "5432"
	case "sqlite":
		return ""
	default:
		return "3306"
	}
}
