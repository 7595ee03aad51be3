package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		Env:            "local",
		ServerAddress:  "localhost:8080",
		SessionDBPath:  "/tmp/session.db",
		RequestTimeout: 30 * time.Second,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{name: "unknown env", mutate: func(c *Config) { c.Env = "qa" }},
		{name: "no server", mutate: func(c *Config) { c.ServerAddress = "" }},
		{name: "no session db", mutate: func(c *Config) { c.SessionDBPath = "" }},
		{name: "tiny timeout", mutate: func(c *Config) { c.RequestTimeout = time.Millisecond }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfig_BaseURL(t *testing.T) {
	cfg := Config{ServerAddress: "api.example.com"}
	assert.Equal(t, "http://api.example.com", cfg.BaseURL())

	cfg.EnableTLS = true
	assert.Equal(t, "https://api.example.com", cfg.BaseURL())
}
