// Package mmap places machine code in anonymous executable memory and hands
// it back as a callable Go func value.
//
// The package trusts its input completely. Nothing checks that the bytes are
// valid code for the host CPU, that they follow the calling convention of
// the func type they are cast to, or that they are not modified while
// another goroutine is running them.
package mmap

import (
	"errors"
	"reflect"
	"unsafe"
)

// ErrAllocationFailed is returned when the OS declines the executable
// mapping. Exec never retries.
var ErrAllocationFailed = errors.New("mmap: allocation failed")

// Map owns one private read/write/execute mapping holding a copy of the code
// passed to Exec.
type Map struct {
	// entry is the code address. Func values made by Func point here, so it
	// doubles as the funcval the Go runtime calls through.
	entry uintptr
	buf   []byte
}

// Addr is the base address of the mapping, or 0 once the map is closed.
func (m *Map) Addr() uintptr {
	return m.entry
}

// Len is the size of the mapping in bytes.
func (m *Map) Len() int {
	return len(m.buf)
}

// Bytes is the mapped memory itself. Writes are visible to code running from
// the map.
func (m *Map) Bytes() []byte {
	return m.buf
}

// Func returns the mapped code as a value of func type F. Calling it jumps to
// Addr with the Go internal calling convention of the host architecture:
// on amd64 integer arguments arrive in RAX, RBX, RCX, RDI, RSI, R8-R11 and the
// result is returned in RAX; on riscv64 arguments and results use A0-A7 and
// the code returns through RA.
//
// The signature is not checked against the code, and calling the func after
// Close is undefined behaviour. Func panics if F is not a func type.
func Func[F any](m *Map) F {
	if reflect.TypeOf((*F)(nil)).Elem().Kind() != reflect.Func {
		panic("mmap: Func type argument must be a func type")
	}
	var f F
	*(*unsafe.Pointer)(unsafe.Pointer(&f)) = unsafe.Pointer(&m.entry)
	return f
}
