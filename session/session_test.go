package session

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapStorage map[string]string

func (m mapStorage) Get(key string) string { return m[key] }
func (m mapStorage) Set(key, value string) { m[key] = value }

func TestNewIDShape(t *testing.T) {
	id := NewID()
	assert.True(t, strings.HasPrefix(id, "session_"))

	parts := strings.Split(id, "_")
	require.Len(t, parts, 3)
	assert.Len(t, parts[2], 9)
}

func TestGetOrCreateIsStable(t *testing.T) {
	storage := mapStorage{}

	first := GetOrCreate(storage)
	second := GetOrCreate(storage)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestGetOrCreateAfterStorageCleared(t *testing.T) {
	storage := mapStorage{}
	first := GetOrCreate(storage)

	delete(storage, StorageKey)
	second := GetOrCreate(storage)

	assert.NotEqual(t, first, second)
}
