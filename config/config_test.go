package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	os.Setenv("DB_HOST", "dbhost")
	os.Setenv("DB_PORT", "5433")
	os.Setenv("DB_USER", "testuser")
	os.Setenv("DB_PASSWORD", "testpass")
	os.Setenv("DB_NAME", "testdb")
	os.Setenv("REDIS_ADDR", "localhost:6379")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("PORT", "9090")
	defer func() {
		for _, key := range []string{"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "REDIS_ADDR", "REDIS_DB", "JWT_SECRET", "PORT"} {
			os.Unsetenv(key)
		}
	}()

	cfg := Load()

	assert.Equal(t, "dbhost", cfg.DBHost)
	assert.Equal(t, "5433", cfg.DBPort)
	assert.Equal(t, "testuser", cfg.DBUser)
	assert.Equal(t, "testpass", cfg.DBPassword)
	assert.Equal(t, "testdb", cfg.DBName)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "9090", cfg.Port)
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("DB_HOST")
	os.Unsetenv("JWT_SECRET")
	os.Unsetenv("PORT")

	cfg := Load()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "default-secret", cfg.JWTSecret)
	assert.Equal(t, "8080", cfg.Port)
}

func TestDatabaseURL(t *testing.T) {
	cfg := &Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBUser:     "postgres",
		DBPassword: "secret",
		DBName:     "quill",
		DBSSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost port=5432 user=postgres password=secret dbname=quill sslmode=disable",
		cfg.DatabaseURL())
}
