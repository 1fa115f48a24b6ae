//go:build linux

package mmap

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Exec maps len(code) bytes of anonymous private memory with read, write and
// execute permission and copies code into it.
func Exec(code []byte) (*Map, error) {
	if len(code) == 0 {
		return nil, fmt.Errorf("%w: empty code", ErrAllocationFailed)
	}
	buf, err := unix.Mmap(
		-1, 0,
		len(code),
		unix.PROT_READ|unix.PROT_WRITE|unix.PROT_EXEC,
		unix.MAP_PRIVATE|unix.MAP_ANONYMOUS,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllocationFailed, err)
	}
	copy(buf, code)
	return &Map{
		entry: uintptr(unsafe.Pointer(&buf[0])),
		buf:   buf,
	}, nil
}

// Close unmaps the memory. Only the first call unmaps; later calls return
// nil.
func (m *Map) Close() error {
	if m.buf == nil {
		return nil
	}
	err := unix.Munmap(m.buf)
	m.buf = nil
	m.entry = 0
	if err != nil {
		return fmt.Errorf("mmap: munmap: %w", err)
	}
	return nil
}
