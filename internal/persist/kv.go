package persist

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnavailable indicates the backing store could not be reached.
	ErrUnavailable = errors.New("store unavailable")
	// ErrQuotaExceeded indicates a write would grow the store past its quota.
	ErrQuotaExceeded = errors.New("store quota exceeded")
)

// KV is a textual key-value store. Get reports whether the key exists.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Close() error
}

// Backend names accepted by OpenKV.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// OpenKV opens the named backend at path.
func OpenKV(backend string, path string, quotaBytes int64) (KV, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case BackendFile, "":
		return OpenFile(path, quotaBytes)
	case BackendSQLite:
		return OpenSQLite(path)
	case BackendMemory:
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", backend)
	}
}

// Unavailable returns a KV whose operations always fail with ErrUnavailable.
// It stands in for a store that could not be opened so the caller can keep
// running on in-memory state.
func Unavailable(cause error) KV {
	return unavailableKV{cause: cause}
}

type unavailableKV struct {
	cause error
}

func (u unavailableKV) Get(context.Context, string) (string, bool, error) {
	return "", false, fmt.Errorf("%w: %w", ErrUnavailable, u.cause)
}

func (u unavailableKV) Set(context.Context, string, string) error {
	return fmt.Errorf("%w: %w", ErrUnavailable, u.cause)
}

func (unavailableKV) Close() error {
	return nil
}
