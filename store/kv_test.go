package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingKeyLeavesFallback(t *testing.T) {
	kv := New(NewMemoryBackend())

	out := map[string]int{"fallback": 1}
	ok := kv.Load("nope", &out)

	assert.False(t, ok)
	assert.Equal(t, map[string]int{"fallback": 1}, out)
}

func TestLoadMalformedValueLeavesFallback(t *testing.T) {
	backend := NewMemoryBackend()
	require.NoError(t, backend.Put("bad", []byte("{not json")))
	kv := New(backend)

	out := []string{"fallback"}
	ok := kv.Load("bad", &out)

	assert.False(t, ok)
	assert.Equal(t, []string{"fallback"}, out)
}

func TestSaveLoadRoundtrip(t *testing.T) {
	kv := New(NewMemoryBackend())

	in := map[string]int{"a": 1, "b": 2}
	kv.Save("counts", in)

	out := map[string]int{}
	require.True(t, kv.Load("counts", &out))
	assert.Equal(t, in, out)
}

func TestDeleteIsSilentAndIdempotent(t *testing.T) {
	kv := New(NewMemoryBackend())

	kv.Save("k", "v")
	kv.Delete("k")
	kv.Delete("k") // absent key is fine

	var out string
	assert.False(t, kv.Load("k", &out))
}

func TestNamespacedKeysDoNotCollide(t *testing.T) {
	kv := New(NewMemoryBackend())
	alice := Namespaced(kv, "user:alice")
	bob := Namespaced(kv, "user:bob")

	alice.Save("cart_v1", map[string]int{"p1": 2})
	bob.Save("cart_v1", map[string]int{"p9": 1})

	var aliceCart, bobCart map[string]int
	require.True(t, alice.Load("cart_v1", &aliceCart))
	require.True(t, bob.Load("cart_v1", &bobCart))
	assert.Equal(t, map[string]int{"p1": 2}, aliceCart)
	assert.Equal(t, map[string]int{"p9": 1}, bobCart)

	bob.Delete("cart_v1")
	require.True(t, alice.Load("cart_v1", &aliceCart))
	assert.False(t, bob.Load("cart_v1", &bobCart))
}
