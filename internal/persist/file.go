package persist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileKV stores every key in a single JSON object on disk, the way a browser
// keeps local storage for one origin.
type FileKV struct {
	mu    sync.Mutex
	path  string
	quota int64
}

// OpenFile prepares a file-backed store. A quota of zero disables the limit.
func OpenFile(path string, quotaBytes int64) (*FileKV, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("store path is required")
	}
	if quotaBytes < 0 {
		return nil, fmt.Errorf("store quota must not be negative")
	}
	cleanPath := filepath.Clean(path)
	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o755); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	return &FileKV{path: cleanPath, quota: quotaBytes}, nil
}

// Path returns the location of the backing file.
func (f *FileKV) Path() string {
	return f.path
}

func (f *FileKV) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.readEntries()
	if err != nil {
		return "", false, err
	}
	value, ok := entries[key]
	return value, ok, nil
}

func (f *FileKV) Set(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.readEntries()
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			return err
		}
		// An unreadable container only loses the other keys; start over.
		entries = map[string]string{}
	}
	entries[key] = value

	serialized, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}
	if f.quota > 0 && int64(len(serialized)) > f.quota {
		return fmt.Errorf("%w: %d bytes over a %d byte quota", ErrQuotaExceeded, len(serialized), f.quota)
	}
	return f.writeAtomic(serialized)
}

func (f *FileKV) Close() error {
	return nil
}

func (f *FileKV) readEntries() (map[string]string, error) {
	rawData, err := os.ReadFile(f.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("%w: read store file: %w", ErrUnavailable, err)
	}
	if len(bytes.TrimSpace(rawData)) == 0 {
		return map[string]string{}, nil
	}

	var entries map[string]string
	if err := json.Unmarshal(rawData, &entries); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}
	if entries == nil {
		entries = map[string]string{}
	}
	return entries, nil
}

func (f *FileKV) writeAtomic(data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(f.path), filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrUnavailable, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: write temp file: %w", ErrUnavailable, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: close temp file: %w", ErrUnavailable, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: replace store file: %w", ErrUnavailable, err)
	}
	return nil
}
