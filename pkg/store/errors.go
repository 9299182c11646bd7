package store

import (
	"errors"
	"fmt"
)

// Sentinel errors shared by every persistence implementation.
var (
	// ErrNotFound is returned when the requested entry does not exist.
	// Update surfaces it; Delete treats it as success.
	ErrNotFound = errors.New("entry not found")

	// ErrStorage is returned when the durable medium rejected or could not
	// complete a read or write. The store never retries; the call is
	// terminal and the previous state remains untouched.
	ErrStorage = errors.New("storage failure")

	// ErrBlobNotFound indicates the referenced blob has no backing bytes.
	// Callers must tolerate this: refs are opaque and the bytes may have
	// been removed out from under the record.
	ErrBlobNotFound = fmt.Errorf("%w: blob", ErrNotFound)
)

// IsNotFound reports whether err is any kind of not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsStorage reports whether err is a storage failure.
func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}

func storagef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrStorage, fmt.Sprintf(format, args...))
}
