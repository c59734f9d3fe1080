package persist

import "errors"

// ErrNotFound reports that the store holds nothing under the key.
var ErrNotFound = errors.New("key not found")

// Status summarises the outcome of an advisory persistence call.
type Status int

const (
	// StatusOK means the document was read or written.
	StatusOK Status = iota
	// StatusSkipped means nothing changed so nothing was written.
	StatusSkipped
	// StatusDefaulted means a load fell back to the default document.
	StatusDefaulted
	// StatusFailed means a write was attempted and lost.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusSkipped:
		return "skipped"
	case StatusDefaulted:
		return "defaulted"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is returned by every load and save. Callers may inspect it but need
// not; in-memory state stays authoritative either way.
type Result struct {
	Status Status
	Err    error
}

// OK reports whether durability was preserved.
func (r Result) OK() bool {
	return r.Status == StatusOK || r.Status == StatusSkipped
}

func ok() Result {
	return Result{Status: StatusOK}
}

// Skipped is the result of an operation that did not need to write.
func Skipped() Result {
	return Result{Status: StatusSkipped}
}

func defaulted(err error) Result {
	return Result{Status: StatusDefaulted, Err: err}
}

func failed(err error) Result {
	return Result{Status: StatusFailed, Err: err}
}
