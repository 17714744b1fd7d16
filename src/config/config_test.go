package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaults(t *testing.T) {
	for _, k := range []string{"APP_URI", "SITE_URL", "ALLOWED_ORIGINS", "STORE_DRIVER", "RATE_LIMIT_MAX", "RATE_LIMIT_WINDOW", "VISITOR_SECRET"} {
		t.Setenv(k, "")
	}
	c := FromEnv()

	assert.Equal(t, "8888", c.AppURI)
	assert.Equal(t, StoreMemory, c.StoreDriver)
	assert.Equal(t, 5, c.RateLimitMax)
	assert.Equal(t, 15*time.Minute, c.RateLimitWindow)
	assert.Equal(t, []string{"http://localhost:8888"}, c.AllowedOrigins)
	assert.NotEmpty(t, c.VisitorSecret)
	assert.NotEmpty(t, c.PDFDisclaimer)
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("SITE_URL", "https://brightlane.example/")
	t.Setenv("ALLOWED_ORIGINS", "https://brightlane.example, https://www.brightlane.example ,")
	t.Setenv("STORE_DRIVER", "Redis")
	t.Setenv("RATE_LIMIT_MAX", "10")
	t.Setenv("RATE_LIMIT_WINDOW", "1h")
	t.Setenv("PDF_TIMEOUT", "not-a-duration")

	c := FromEnv()
	assert.Equal(t, "https://brightlane.example", c.SiteURL)
	assert.Equal(t, []string{"https://brightlane.example", "https://www.brightlane.example"}, c.AllowedOrigins)
	assert.Equal(t, StoreRedis, c.StoreDriver)
	assert.Equal(t, 10, c.RateLimitMax)
	assert.Equal(t, time.Hour, c.RateLimitWindow)
	assert.Equal(t, 60*time.Second, c.PDFTimeout)
}

func TestFromEnvUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "cassandra")
	assert.Equal(t, StoreMemory, FromEnv().StoreDriver)
}
