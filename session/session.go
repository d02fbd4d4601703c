// Package session provides the anonymous identity that scopes a cart to
// one client in the absence of user accounts. An id is minted once per
// client storage lifetime and never rotated or expired.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// StorageKey is the fixed name the session id is persisted under.
const StorageKey = "session_id"

// Storage is whatever client-persistent slot holds the id: a browser
// cookie in the HTTP middleware, a plain map in tests.
type Storage interface {
	Get(key string) string
	Set(key, value string)
}

// NewID mints an opaque session identifier. Uniqueness is probabilistic;
// there is no collision detection.
func NewID() string {
	return fmt.Sprintf("session_%d_%s", time.Now().UnixMilli(), randomString(9))
}

// GetOrCreate returns the id already persisted in storage, or mints a
// new one and persists it. Repeated calls against the same storage
// always return the same value.
func GetOrCreate(storage Storage) string {
	if id := storage.Get(StorageKey); id != "" {
		return id
	}
	id := NewID()
	storage.Set(StorageKey, id)
	return id
}

func randomString(n int) string {
	bytes := make([]byte, (n+1)/2)
	if _, err := rand.Read(bytes); err != nil {
		return "randsession"[:n]
	}
	return hex.EncodeToString(bytes)[:n]
}
