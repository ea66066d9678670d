// ABOUTME: Data migration between gym storage backends.
// ABOUTME: Copies each tracker document from source to destination unchanged.
package storage

import "fmt"

// MigrateSummary holds what was copied.
type MigrateSummary struct {
	Keys  int
	Bytes int
}

// MigrateData copies every key in keys from src to dst. Keys absent in
// src are skipped; existing values in dst are overwritten.
func MigrateData(src, dst Store, keys []string) (*MigrateSummary, error) {
	summary := &MigrateSummary{}

	for _, key := range keys {
		value, err := src.Get(key)
		if err != nil {
			return nil, fmt.Errorf("read source %s: %w", key, err)
		}
		if value == nil {
			continue
		}
		if err := dst.Put(key, value); err != nil {
			return nil, fmt.Errorf("write destination %s: %w", key, err)
		}
		summary.Keys++
		summary.Bytes += len(value)
	}

	return summary, nil
}

// HasData reports whether any of keys holds a value in s.
func HasData(s Store, keys []string) (bool, error) {
	for _, key := range keys {
		value, err := s.Get(key)
		if err != nil {
			return false, fmt.Errorf("read %s: %w", key, err)
		}
		if value != nil {
			return true, nil
		}
	}
	return false, nil
}
