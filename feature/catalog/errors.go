package catalog

import (
	"errors"
	"fmt"
)

// ErrorKind classifies repository failures so that callers can branch on
// the failure class (retry, fall back, surface) without inspecting the
// underlying cause.
type ErrorKind int

const (
	// KindUnknown is an uncategorized failure.
	KindUnknown ErrorKind = iota
	// KindNetwork is a transport failure or a non-2xx feed response.
	KindNetwork
	// KindDecoding is a malformed wire payload.
	KindDecoding
	// KindStorage is a commit or fetch failure in the durable store.
	KindStorage
	// KindNotFound means the requested key is absent.
	KindNotFound
)

// String returns the kind's name.
func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindDecoding:
		return "decoding"
	case KindStorage:
		return "storage"
	case KindNotFound:
		return "not_found"
	default:
		return "unknown"
	}
}

// Error is the taxonomy-carrying error type for all catalog operations.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NetworkError wraps a transport failure.
func NetworkError(err error) error {
	return &Error{Kind: KindNetwork, Err: err}
}

// DecodingError wraps a payload decoding failure.
func DecodingError(err error) error {
	return &Error{Kind: KindDecoding, Err: err}
}

// StorageError wraps a durable-store failure.
func StorageError(err error) error {
	return &Error{Kind: KindStorage, Err: err}
}

// NotFoundError reports an absent business key.
func NotFoundError(key string) error {
	return &Error{Kind: KindNotFound, Err: fmt.Errorf("no entry for key %q", key)}
}

// UnknownError wraps an uncategorized failure.
func UnknownError(err error) error {
	return &Error{Kind: KindUnknown, Err: err}
}

// KindOf extracts the ErrorKind from an error chain.
// Errors outside the taxonomy report KindUnknown.
func KindOf(err error) ErrorKind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return KindUnknown
}

// IsNotFound reports whether the error chain carries KindNotFound.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

// Message returns a short human-readable description for an error,
// suitable for direct display by a consuming UI.
func Message(err error) string {
	switch KindOf(err) {
	case KindNetwork:
		return "The catalog feed could not be reached."
	case KindDecoding:
		return "The catalog feed returned data that could not be read."
	case KindStorage:
		return "The local catalog store failed."
	case KindNotFound:
		return "The requested entry was not found."
	default:
		return "Something went wrong."
	}
}
