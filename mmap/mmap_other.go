//go:build !linux

package mmap

import (
	"errors"
	"fmt"
	"runtime"
)

// Exec is not supported on this platform and always fails.
func Exec(code []byte) (*Map, error) {
	return nil, fmt.Errorf("%w: GOOS=%s: %w", ErrAllocationFailed, runtime.GOOS, errors.ErrUnsupported)
}

// Close is a no-op; no Map can be created on this platform.
func (m *Map) Close() error {
	m.buf = nil
	m.entry = 0
	return nil
}
