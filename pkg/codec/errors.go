package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrShortIO reports that fewer units were transferred than one value requires.
	ErrShortIO = errors.New("short i/o")
	// ErrInvalidByte reports a character or byte the format cannot represent.
	ErrInvalidByte = errors.New("invalid byte")
	// ErrOutOfRange reports a complete digit group whose value does not fit in a byte.
	ErrOutOfRange = errors.New("value out of byte range")
	// ErrInvalidRadix reports a numeric base outside [MinRadix, MaxRadix].
	ErrInvalidRadix = errors.New("base must be in [2,36]")
)

// InError is returned by readers. Err is one of the sentinels above or the
// error of the underlying source.
type InError struct {
	// Char is the offending input character, set for ErrInvalidByte and ErrOutOfRange.
	Char byte
	// Count and Expected are the digits read and required, set for ErrShortIO.
	Count    int
	Expected int
	Err      error
}

func (e *InError) Error() string {
	switch {
	case errors.Is(e.Err, ErrShortIO):
		return fmt.Sprintf("input: %v: read %d of %d digits", e.Err, e.Count, e.Expected)
	case errors.Is(e.Err, ErrInvalidByte), errors.Is(e.Err, ErrOutOfRange):
		return fmt.Sprintf("input: %v %q", e.Err, e.Char)
	default:
		return fmt.Sprintf("input: %v", e.Err)
	}
}

func (e *InError) Unwrap() error { return e.Err }

// OutError is returned by writers. Byte is the value being written when the
// error occurred.
type OutError struct {
	Byte     byte
	Count    int
	Expected int
	Err      error
}

func (e *OutError) Error() string {
	switch {
	case errors.Is(e.Err, ErrShortIO):
		return fmt.Sprintf("output: %v: wrote %d of %d bytes", e.Err, e.Count, e.Expected)
	case errors.Is(e.Err, ErrInvalidByte):
		return fmt.Sprintf("output: %v 0x%02x", e.Err, e.Byte)
	default:
		return fmt.Sprintf("output: %v", e.Err)
	}
}

func (e *OutError) Unwrap() error { return e.Err }

func invalidChar(c byte) error {
	return &InError{Char: c, Err: ErrInvalidByte}
}

func shortRead(n, expected int) error {
	return &InError{Count: n, Expected: expected, Err: ErrShortIO}
}

func readFailure(err error) error {
	return &InError{Err: err}
}

func invalidOutput(b byte) error {
	return &OutError{Byte: b, Err: ErrInvalidByte}
}

func asInError(err error) error {
	var inErr *InError
	if errors.As(err, &inErr) {
		return err
	}
	return &InError{Err: err}
}

func asOutError(b byte, err error) error {
	var outErr *OutError
	if errors.As(err, &outErr) {
		return err
	}
	return &OutError{Byte: b, Err: err}
}
