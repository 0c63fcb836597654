package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Run("valid development config", func(t *testing.T) {
		cfg := &Config{Port: "8480", JWTSecret: "secret", Env: "development"}
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := &Config{JWTSecret: "secret"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := &Config{Port: "8480"}
		assert.Error(t, cfg.Validate())
	})

	t.Run("default secret rejected in production", func(t *testing.T) {
		cfg := &Config{
			Port:      "8480",
			JWTSecret: "your-secret-key-change-in-production",
			Env:       "production",
		}
		assert.Error(t, cfg.Validate())
	})

	t.Run("default secret allowed in development", func(t *testing.T) {
		cfg := &Config{
			Port:      "8480",
			JWTSecret: "your-secret-key-change-in-production",
			Env:       "development",
		}
		assert.NoError(t, cfg.Validate())
	})
}
