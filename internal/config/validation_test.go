package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_AllDefaults_Pass(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestValidate_List(t *testing.T) {
	t.Run("Unknown Format Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.List.Format = "csv"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "list.format")
	})

	t.Run("Unknown Color Fails", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.List.Color = "sometimes"
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "list.color")
	})

	t.Run("Both Invalid Reports Both", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.List.Format = ""
		cfg.List.Color = ""
		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "list.format")
		assert.Contains(t, err.Error(), "list.color")
	})

	t.Run("JSON Format Passes", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.List.Format = FormatJSON
		cfg.List.Color = ColorNever
		assert.NoError(t, cfg.Validate())
	})
}
