package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerReturnsSameCartPerSession(t *testing.T) {
	m := NewManager(newFakeStore())

	c1, err := m.Get(context.Background(), "s1")
	require.NoError(t, err)
	c2, err := m.Get(context.Background(), "s1")
	require.NoError(t, err)

	assert.Same(t, c1, c2)
}

func TestManagerIsolatesSessions(t *testing.T) {
	m := NewManager(newFakeStore())

	c1, err := m.Get(context.Background(), "s1")
	require.NoError(t, err)
	c2, err := m.Get(context.Background(), "s2")
	require.NoError(t, err)

	require.NoError(t, c1.Add(context.Background(), product(10), 2))
	assert.Equal(t, 2, c1.ItemCount())
	assert.Zero(t, c2.ItemCount())
}

func TestManagerDoesNotCacheFailedLoad(t *testing.T) {
	store := newFakeStore()
	store.err = errors.New("store down")
	m := NewManager(store)

	_, err := m.Get(context.Background(), "s1")
	require.Error(t, err)

	// Once the store recovers the next Get succeeds.
	store.err = nil
	c, err := m.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.NotNil(t, c)
}
