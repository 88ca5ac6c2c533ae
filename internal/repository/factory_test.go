package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypersort/pkg/config"
)

func TestNewGormDBUnsupportedType(t *testing.T) {
	_, err := NewGormDB(&config.DatabaseConfig{Type: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database type")
}
