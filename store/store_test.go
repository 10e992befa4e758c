package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "cart:u1", []byte(`[]`)))

	value, err := s.Get(ctx, "cart:u1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), value)

	require.NoError(t, s.Delete(ctx, "cart:u1"))
	_, err = s.Get(ctx, "cart:u1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreMissingKey(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get(context.Background(), "no-such-key")
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an absent key is not an error
	assert.NoError(t, s.Delete(context.Background(), "no-such-key"))
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	original := []byte(`{"n":1}`)
	require.NoError(t, s.Put(ctx, "k", original))

	// Mutating the caller's slice must not change the stored value
	original[5] = '9'
	value, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"n":1}`), value)

	// Mutating a returned slice must not change the stored value either
	value[5] = '7'
	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"n":1}`), again)
}

func TestReadJSONDistinguishesAbsent(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	var items []string
	found, err := ReadJSON(ctx, s, "order-log:u1", &items)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, items)

	require.NoError(t, WriteJSON(ctx, s, "order-log:u1", []string{"ORD123456"}))

	found, err = ReadJSON(ctx, s, "order-log:u1", &items)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"ORD123456"}, items)
}

func TestReadJSONMalformedValue(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "k", []byte("not json")))

	var v map[string]string
	_, err := ReadJSON(ctx, s, "k", &v)
	assert.Error(t, err)
}
