package codec

import "io"

const hexChars = "0123456789abcdef"

// HexReader decodes pairs of hexadecimal digits in either case, skipping
// whitespace.
type HexReader struct {
	src  io.ByteReader
	done bool
}

func NewHexReader(r io.Reader) *HexReader {
	return &HexReader{src: newByteSource(r)}
}

func hexValue(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func (r *HexReader) ReadByte() (byte, error) {
	if r.done {
		return 0, io.EOF
	}
	c, err := nextNonSpace(r.src)
	if err != nil {
		r.done = true
		return 0, groupEnd(0, 2, err)
	}
	hi, ok := hexValue(c)
	if !ok {
		r.done = true
		return 0, invalidChar(c)
	}
	c, err = nextNonSpace(r.src)
	if err != nil {
		r.done = true
		return 0, groupEnd(1, 2, err)
	}
	lo, ok := hexValue(c)
	if !ok {
		r.done = true
		return 0, invalidChar(c)
	}
	return hi<<4 | lo, nil
}

// HexWriter encodes each byte as two lowercase hexadecimal digits.
type HexWriter struct {
	dst io.Writer
	buf [2]byte
}

func NewHexWriter(w io.Writer) *HexWriter {
	return &HexWriter{dst: w}
}

func (w *HexWriter) WriteByte(b byte) error {
	w.buf[0] = hexChars[b>>4]
	w.buf[1] = hexChars[b&0x0f]
	return writeFull(w.dst, w.buf[:], b)
}
