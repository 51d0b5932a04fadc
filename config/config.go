package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	LogLevel string
	// MongoDB
	MongoURL           string
	DBName             string
	DBOperationTimeout time.Duration
	// SMTP Configuration
	SMTPServer     string
	SMTPPort       string
	SMTPUsername   string
	SMTPPassword   string
	FromEmail      string
	ContactEmailTo string
	SMTPTimeout    time.Duration
	// HTTP
	CORSOrigins    []string
	TrustedProxies []string // empty: client IP is the socket peer, forwarding headers ignored
	SwaggerEnabled bool
	// Blog
	DefaultAuthor string
	ListMaxLimit  int // 0 means no cap
	// Contact rate limiting (Redis optional, in-memory fallback)
	ContactRateLimit         int
	ContactRateWindowSeconds int
	RedisURL                 string
	RedisPassword            string
}

func LoadConfig() (*Config, error) {
	// Load .env file when present; real environment wins in deployments
	_ = godotenv.Load()

	cfg := &Config{
		Port:     getEnv("PORT", "8001"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		MongoURL:           getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:             getEnv("DB_NAME", "portfolio"),
		DBOperationTimeout: getEnvDuration("DB_OPERATION_TIMEOUT", 10*time.Second),

		SMTPServer:     getEnv("SMTP_SERVER", "localhost"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		FromEmail:      getEnv("FROM_EMAIL", "noreply@aagamshah.com"),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", "snaagam@gmail.com"),
		SMTPTimeout:    getEnvDuration("SMTP_TIMEOUT", 15*time.Second),

		CORSOrigins:    splitList(getEnv("CORS_ORIGINS", "*")),
		TrustedProxies: splitList(getEnv("TRUSTED_PROXIES", "")),
		SwaggerEnabled: getEnvBool("SWAGGER_ENABLED", true),

		DefaultAuthor: getEnv("BLOG_DEFAULT_AUTHOR", "Aagam Shah"),
		ListMaxLimit:  getEnvInt("LIST_MAX_LIMIT", 0),

		ContactRateLimit:         getEnvInt("CONTACT_RATE_LIMIT", 5),
		ContactRateWindowSeconds: getEnvInt("CONTACT_RATE_WINDOW_SECONDS", 60),
		RedisURL:                 getEnv("REDIS_URL", ""),
		RedisPassword:            getEnv("REDIS_PASSWORD", ""),
	}

	if cfg.MongoURL == "" {
		log.Println("WARNING: MONGO_URL is empty. Application may fail to connect.")
	}

	return cfg, nil
}

// CORSWideOpen reports whether every origin is allowed.
func (c *Config) CORSWideOpen() bool {
	for _, o := range c.CORSOrigins {
		if o == "*" {
			return true
		}
	}
	return len(c.CORSOrigins) == 0
}

// SMTPConfigured reports whether credentials for the relay are present.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPUsername != "" && c.SMTPPassword != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvDuration accepts Go duration strings ("15s") or plain seconds ("15").
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(value); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, strings.TrimRight(p, "/"))
		}
	}
	return out
}
