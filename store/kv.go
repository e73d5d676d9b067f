package store

import (
	"encoding/json"
	"log"
)

// KV is the persistence adapter for application state. Values are JSON
// blobs keyed by name; every owning component writes its whole value
// immediately after mutating, one key at a time, with no cross-key
// transaction.
//
// Failures never propagate: Load leaves the caller's fallback value in
// place and returns false, Save and Delete log and move on. Losing a write
// costs at worst the state of one session.
type KV interface {
	// Load decodes the value stored under key into out. On any failure
	// (missing key, malformed JSON, backend unavailable) out is left
	// untouched and Load returns false.
	Load(key string, out interface{}) bool

	// Save encodes v as JSON and writes it under key. Failures are
	// swallowed.
	Save(key string, v interface{})

	// Delete removes key if present. Failures are swallowed.
	Delete(key string)
}

// Backend is the raw byte store a KV sits on.
type Backend interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Del(key string) error
}

type kv struct {
	backend Backend
}

// New wraps a backend in the JSON adapter.
func New(b Backend) KV {
	return &kv{backend: b}
}

func (s *kv) Load(key string, out interface{}) bool {
	data, err := s.backend.Get(key)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		log.Printf("❌ store: malformed value under %q: %v", key, err)
		return false
	}
	return true
}

func (s *kv) Save(key string, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("❌ store: failed to encode %q: %v", key, err)
		return
	}
	if err := s.backend.Put(key, data); err != nil {
		log.Printf("❌ store: failed to write %q: %v", key, err)
	}
}

func (s *kv) Delete(key string) {
	if err := s.backend.Del(key); err != nil {
		log.Printf("❌ store: failed to delete %q: %v", key, err)
	}
}

type namespaced struct {
	inner  KV
	prefix string
}

// Namespaced returns a view of kv with every key prefixed. It scopes the
// fixed application keys (cart_v1, wishlist_v1, ...) to one user.
func Namespaced(inner KV, prefix string) KV {
	return &namespaced{inner: inner, prefix: prefix}
}

func (n *namespaced) Load(key string, out interface{}) bool {
	return n.inner.Load(n.prefix+":"+key, out)
}

func (n *namespaced) Save(key string, v interface{}) {
	n.inner.Save(n.prefix+":"+key, v)
}

func (n *namespaced) Delete(key string) {
	n.inner.Delete(n.prefix + ":" + key)
}
