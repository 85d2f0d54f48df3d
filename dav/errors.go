package dav

import "errors"

var (
	// ErrInvalidArgument reports a caller contract violation detected before any I/O.
	ErrInvalidArgument = errors.New("webdav: invalid argument")
	// ErrOutOfRange reports an enum value outside the set a request accepts.
	ErrOutOfRange = errors.New("webdav: argument out of range")
	// ErrNoBaseAddress is returned when a relative target cannot be resolved.
	ErrNoBaseAddress = errors.New("webdav: relative URI without a base address")
)
