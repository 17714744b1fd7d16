// Package config reads the service settings from the environment, loading
// a .env file first when one exists.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type StoreDriver string

const (
	StoreMemory StoreDriver = "memory"
	StoreRedis  StoreDriver = "redis"
	StoreMongo  StoreDriver = "mongo"
)

const defaultDisclaimer = "This plan is general guidance, not professional advice. Review every AI output before you use it with customers."

type Config struct {
	AppURI         string
	SiteURL        string
	AllowedOrigins []string

	StoreDriver StoreDriver
	StoreTTL    time.Duration
	RedisURI    string
	MongoURI    string
	MongoDB     string

	VisitorSecret string

	LeadWebhookURL string
	IntakeURL      string
	FormRelayURL   string
	FormName       string
	AnalyticsURL   string

	// Lead notification mail; the sink is enabled when LeadNotifyEmail is set.
	LeadNotifyEmail string
	SMTPHost        string
	SMTPPort        int
	SMTPUser        string
	SMTPPass        string
	SMTPFrom        string

	RateLimitMax    int
	RateLimitWindow time.Duration

	PDFTimeout    time.Duration
	ChromePath    string
	PDFDisclaimer string
}

// Load reads .env (if present) and the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}
	return FromEnv()
}

// FromEnv reads the environment only.
func FromEnv() Config {
	siteURL := strings.TrimRight(getEnv("SITE_URL", "http://localhost:8888"), "/")
	origins := splitList(os.Getenv("ALLOWED_ORIGINS"))
	if len(origins) == 0 {
		origins = []string{siteURL}
	}

	c := Config{
		AppURI:          getEnv("APP_URI", "8888"),
		SiteURL:         siteURL,
		AllowedOrigins:  origins,
		StoreDriver:     StoreDriver(strings.ToLower(getEnv("STORE_DRIVER", string(StoreMemory)))),
		StoreTTL:        getDuration("STORE_TTL", 30*24*time.Hour),
		RedisURI:        os.Getenv("REDIS_URI"),
		MongoURI:        os.Getenv("MONGO_URI"),
		MongoDB:         getEnv("MONGO_DB", "LeadkitDB"),
		VisitorSecret:   os.Getenv("VISITOR_SECRET"),
		LeadWebhookURL:  os.Getenv("LEAD_WEBHOOK_URL"),
		IntakeURL:       os.Getenv("INTAKE_URL"),
		FormRelayURL:    os.Getenv("FORM_RELAY_URL"),
		FormName:        getEnv("FORM_NAME", "ai-plan-lead"),
		AnalyticsURL:    os.Getenv("ANALYTICS_URL"),
		LeadNotifyEmail: os.Getenv("LEAD_NOTIFY_EMAIL"),
		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPPort:        getInt("SMTP_PORT", 587),
		SMTPUser:        os.Getenv("SMTP_USER"),
		SMTPPass:        os.Getenv("SMTP_PASS"),
		SMTPFrom:        os.Getenv("SMTP_FROM"),
		RateLimitMax:    getInt("RATE_LIMIT_MAX", 5),
		RateLimitWindow: getDuration("RATE_LIMIT_WINDOW", 15*time.Minute),
		PDFTimeout:      getDuration("PDF_TIMEOUT", 60*time.Second),
		ChromePath:      os.Getenv("CHROME_PATH"),
		PDFDisclaimer:   getEnv("PDF_DISCLAIMER", defaultDisclaimer),
	}

	switch c.StoreDriver {
	case StoreMemory, StoreRedis, StoreMongo:
	default:
		log.Printf("⚠️ Unknown STORE_DRIVER %q, using memory", c.StoreDriver)
		c.StoreDriver = StoreMemory
	}
	if c.VisitorSecret == "" {
		c.VisitorSecret = "dev-visitor-secret" // fallback for development
		log.Println("⚠️ VISITOR_SECRET not set, using the development secret")
	}
	return c
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("⚠️ Invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("⚠️ Invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
