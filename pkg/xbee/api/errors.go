package api

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated indicates a payload ended before all fixed-length fields
	// (or a sample record) could be read.
	ErrTruncated = errors.New("payload shorter than expected")
	// ErrOverlong indicates trailing bytes after a layout whose last field is
	// fixed-length.
	ErrOverlong = errors.New("payload longer than expected")
)

// UnknownCommandError reports an encode request for a command name the table
// does not know.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command %q", e.Name)
}

// UnknownResponseError reports a payload whose identifier byte matches no
// known response layout.
type UnknownResponseError struct {
	ID byte
}

func (e *UnknownResponseError) Error() string {
	return fmt.Sprintf("unrecognized response packet with id byte 0x%02x", e.ID)
}

// MissingFieldError reports a required fixed-length field absent from the
// values supplied to Encode.
type MissingFieldError struct {
	Field  string
	Length int
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("expected field %q of length %d was not provided", e.Field, e.Length)
}

// LengthMismatchError reports a fixed-length field value whose size does not
// match the layout. A present-but-empty value reports Got of zero.
type LengthMismatchError struct {
	Field string
	Want  int
	Got   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("field %q must be %d bytes, got %d", e.Field, e.Want, e.Got)
}

// LayoutError reports a malformed layout rejected by NewTable.
type LayoutError struct {
	Layout string
	Field  string
	Reason string
}

func (e *LayoutError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("layout %s: %s", e.Layout, e.Reason)
	}
	return fmt.Sprintf("layout %s: field %q: %s", e.Layout, e.Field, e.Reason)
}

func byteName(id byte) string {
	return fmt.Sprintf("0x%02x", id)
}
