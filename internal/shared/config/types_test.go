package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDatabaseConfigGetDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db.example.com",
		Port:     3307,
		Username: "helpdesk",
		Password: "secret",
		Database: "helpdesk_test",
	}

	dsn := cfg.GetDSN()

	assert.Contains(t, dsn, "helpdesk:secret@tcp(db.example.com:3307)/helpdesk_test")
	assert.Contains(t, dsn, "parseTime=True")
	// Matched-rows reporting: a no-op update must still count the row it
	// matched, or repository not-found checks misfire.
	assert.Contains(t, dsn, "clientFoundRows=true")
}

func TestRedisConfigGetAddr(t *testing.T) {
	cfg := RedisConfig{Host: "cache.example.com", Port: 6380}
	assert.Equal(t, "cache.example.com:6380", cfg.GetAddr())
}

func TestServerConfigGetAddr(t *testing.T) {
	cfg := ServerConfig{Host: "0.0.0.0", Port: 3000}
	assert.Equal(t, "0.0.0.0:3000", cfg.GetAddr())
}
