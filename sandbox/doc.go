// Package sandbox runs encoder output on emulated CPUs with unicorn, for
// targets the host cannot execute natively: RV32 and RV64 code, and 32-bit
// protected mode x86.
//
// The emulator needs the unicorn C library, so everything but this comment
// is built only with the unicorn build tag:
//
//	go test -tags unicorn ./sandbox
package sandbox
