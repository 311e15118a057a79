package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reload(t *testing.T, path string) {
	t.Helper()
	_ = Load() // consume the once so getters do not reload over us
	require.NoError(t, loadFrom(path))
	none := filepath.Join(t.TempDir(), "none.env")
	t.Cleanup(func() { _ = loadFrom(none) })
}

func TestDefaultsWithoutEnvFile(t *testing.T) {
	reload(t, filepath.Join(t.TempDir(), "missing.env"))

	assert.Equal(t, "8000", Port())
	assert.Equal(t, "foodshop", DatabaseName())
	assert.Equal(t, "mongodb://localhost:27017", DatabaseURL())
	assert.False(t, DatabaseURLSet())
	assert.Equal(t, "", RedisAddr())
	assert.Equal(t, 5*time.Minute, CacheTTL())
	assert.EqualValues(t, 4<<20, MaxBodyBytes())
	assert.False(t, LogToMongo())
}

func TestEnvFileThenProcessEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "DATABASE_URL=mongodb://db:27017\nPORT=9000\n# comment\nCACHE_TTL=30s\nLOG_TO_MONGO=true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	t.Setenv("PORT", "9100")
	reload(t, path)

	assert.Equal(t, "mongodb://db:27017", DatabaseURL())
	assert.True(t, DatabaseURLSet())
	assert.Equal(t, "9100", Port(), "process env wins over .env")
	assert.Equal(t, 30*time.Second, CacheTTL())
	assert.True(t, LogToMongo())
}

func TestInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("MAX_BODY_BYTES", "lots")
	t.Setenv("CACHE_TTL", "-1s")
	reload(t, filepath.Join(t.TempDir(), "missing.env"))

	assert.EqualValues(t, 4<<20, MaxBodyBytes())
	assert.Equal(t, 5*time.Minute, CacheTTL())
}
