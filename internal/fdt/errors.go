package fdt

import (
	"errors"
	"fmt"
)

// Sentinel parse errors. Every failure returned by Parse wraps exactly one of
// these; use errors.Is to classify.
var (
	// ErrInvalidMagic means the blob does not start with 0xd00dfeed.
	ErrInvalidMagic = errors.New("invalid magic")

	// ErrReadPastEnd is any cursor failure: a read, seek, or alignment that
	// would leave the buffer, or a string with no NUL terminator. The format
	// has no redundancy, so finer distinctions would not help a caller.
	ErrReadPastEnd = errors.New("read past end of buffer")

	// ErrInvalidTag means a 4-byte value outside the recognized tag set
	// appeared where a tag was expected.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrUnexpectedTag means a recognized tag appeared where the grammar
	// required a different one (typically a missing END_NODE).
	ErrUnexpectedTag = errors.New("unexpected tag")

	// ErrNoRootFound means the header parsed but the structure block did not
	// open with a node.
	ErrNoRootFound = errors.New("no root node found")

	// ErrMaxDepth means node nesting exceeded MaxDepth.
	ErrMaxDepth = errors.New("node nesting too deep")
)

// OffsetError pairs a parse failure with the byte offset at which the decoder
// stopped. It is attached once, by Parse, not by intermediate layers.
type OffsetError struct {
	Offset int
	Err    error
}

func (e *OffsetError) Error() string {
	return fmt.Sprintf("%v @ %#x", e.Err, e.Offset)
}

func (e *OffsetError) Unwrap() error {
	return e.Err
}
