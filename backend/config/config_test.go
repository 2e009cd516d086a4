package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_TTL", "")
	t.Setenv("MAX_UPLOAD_MB", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "db.internal", cfg.DBHost)
	assert.Equal(t, 72*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 512, cfg.MaxUploadMB)
	assert.Equal(t, "gemini-1.5-pro", cfg.GeminiModel)
}

func TestLoadConfig_TypedOverrides(t *testing.T) {
	t.Setenv("JWT_TTL", "2h")
	t.Setenv("MAX_UPLOAD_MB", "64")
	t.Setenv("GEMINI_TIMEOUT", "not-a-duration")
	t.Setenv("ANALYTICS_GROUP_BY", "id")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 2*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 64, cfg.MaxUploadMB)
	assert.Equal(t, 60*time.Second, cfg.GeminiTimeout)
	assert.Equal(t, "id", cfg.AnalyticsGroupBy)
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBHost: "h", DBPort: "5433", DBUser: "u", DBPassword: "p", DBName: "n", DBSSLMode: "disable"}
	assert.Equal(t, "host=h user=u password=p dbname=n port=5433 sslmode=disable TimeZone=UTC", cfg.DSN())
}
