// ABOUTME: Store interface for persisting gym tracker state blobs.
// ABOUTME: Backends hold opaque JSON documents under fixed keys.
package storage

import (
	"os"
	"path/filepath"
)

// Keys under which the tracker persists its documents.
const (
	ProgressKey   = "gymProgress_v3"
	BodyWeightKey = "bodyWeight_v1"
)

// AllKeys lists every key the tracker writes, in migration order.
var AllKeys = []string{ProgressKey, BodyWeightKey}

// Store defines the blob storage contract shared by all backends.
// Get returns (nil, nil) when the key has never been written.
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Close() error
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "gym")
}

// DBPath returns the SQLite database path inside dataDir.
func DBPath(dataDir string) string {
	return filepath.Join(dataDir, "gym.db")
}
