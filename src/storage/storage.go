package storage

import (
	"context"
	"encoding/json"
	"log"
)

// Backend is the persistent key-value surface the store writes through.
// Get reports ok=false for a missing key without an error.
type Backend interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Del(ctx context.Context, key string) error
}

// Store JSON-encodes values under string keys. Backend and codec failures
// are logged and absorbed: reads hand back the caller's default, writes and
// removes report success as a boolean rather than an error.
type Store struct {
	backend Backend
	prefix  string
}

func New(backend Backend, prefix string) *Store {
	return &Store{backend: backend, prefix: prefix}
}

func (s *Store) key(key string) string {
	if s.prefix == "" {
		return key
	}
	return s.prefix + ":" + key
}

// Get decodes the value under key into out and reports whether it did.
// On a missing key, backend error, or decode error, out is left for the
// caller's default and false is returned.
func (s *Store) Get(ctx context.Context, key string, out any) bool {
	raw, ok, err := s.backend.Get(ctx, s.key(key))
	if err != nil {
		log.Printf("storage: get %s: %v", key, err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		log.Printf("storage: decode %s: %v", key, err)
		return false
	}
	return true
}

// GetString is Get specialized to strings, returning def on any failure.
func (s *Store) GetString(ctx context.Context, key, def string) string {
	var v string
	if !s.Get(ctx, key, &v) {
		return def
	}
	return v
}

// Set stores value under key, JSON-encoded.
func (s *Store) Set(ctx context.Context, key string, value any) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("storage: encode %s: %v", key, err)
		return false
	}
	if err := s.backend.Set(ctx, s.key(key), string(raw)); err != nil {
		log.Printf("storage: set %s: %v", key, err)
		return false
	}
	return true
}

// Remove deletes key. Removing an absent key succeeds.
func (s *Store) Remove(ctx context.Context, key string) bool {
	if err := s.backend.Del(ctx, s.key(key)); err != nil {
		log.Printf("storage: del %s: %v", key, err)
		return false
	}
	return true
}
