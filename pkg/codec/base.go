package codec

import (
	"fmt"
	"io"
)

const (
	MinRadix = 2
	MaxRadix = 36
)

const digitChars = "0123456789abcdefghijklmnopqrstuvwxyz"

// Base is a numeric radix together with the number of digits it needs to
// represent any byte value.
type Base struct {
	radix  int
	digits int
}

// NewBase returns the Base for radix, which must be in [MinRadix, MaxRadix].
func NewBase(radix int) (Base, error) {
	if radix < MinRadix || radix > MaxRadix {
		return Base{}, fmt.Errorf("%w: %d", ErrInvalidRadix, radix)
	}
	return Base{radix: radix, digits: digitsPerByte(radix)}, nil
}

// MustBase is like NewBase but panics on an invalid radix.
func MustBase(radix int) Base {
	b, err := NewBase(radix)
	if err != nil {
		panic(err)
	}
	return b
}

// digitsPerByte is the smallest k with radix^k >= 256.
func digitsPerByte(radix int) int {
	k := 0
	for p := 1; p < 256; p *= radix {
		k++
	}
	return k
}

func (b Base) Radix() int { return b.radix }

func (b Base) DigitsPerByte() int { return b.digits }

// DigitValue returns the value of the digit character c. Letters are
// accepted in either case.
func (b Base) DigitValue(c byte) (int, bool) {
	var d int
	switch {
	case '0' <= c && c <= '9':
		d = int(c - '0')
	case 'a' <= c && c <= 'z':
		d = int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		d = int(c-'A') + 10
	default:
		return 0, false
	}
	if d >= b.radix {
		return 0, false
	}
	return d, true
}

// DigitChar returns the lowercase digit character for v.
func (b Base) DigitChar(v int) (byte, bool) {
	if v < 0 || v >= b.radix {
		return 0, false
	}
	return digitChars[v], true
}

// BaseReader decodes groups of DigitsPerByte digits, most significant
// first. Whitespace anywhere in the input is skipped.
type BaseReader struct {
	src  io.ByteReader
	base Base
	done bool
}

func NewBaseReader(r io.Reader, base Base) *BaseReader {
	return &BaseReader{src: newByteSource(r), base: base}
}

func (r *BaseReader) ReadByte() (byte, error) {
	if r.done {
		return 0, io.EOF
	}
	var (
		value int
		last  byte
	)
	for i := 0; i < r.base.digits; i++ {
		c, err := nextNonSpace(r.src)
		if err != nil {
			r.done = true
			return 0, groupEnd(i, r.base.digits, err)
		}
		d, ok := r.base.DigitValue(c)
		if !ok {
			r.done = true
			return 0, invalidChar(c)
		}
		value = value*r.base.radix + d
		last = c
	}
	if value > 0xff {
		r.done = true
		return 0, &InError{Char: last, Err: ErrOutOfRange}
	}
	return byte(value), nil
}

// BaseWriter encodes each byte as DigitsPerByte zero padded lowercase digits.
type BaseWriter struct {
	dst  io.Writer
	base Base
	buf  []byte
}

func NewBaseWriter(w io.Writer, base Base) *BaseWriter {
	return &BaseWriter{dst: w, base: base, buf: make([]byte, base.digits)}
}

func (w *BaseWriter) WriteByte(b byte) error {
	v := int(b)
	for i := len(w.buf) - 1; i >= 0; i-- {
		w.buf[i] = digitChars[v%w.base.radix]
		v /= w.base.radix
	}
	return writeFull(w.dst, w.buf, b)
}
