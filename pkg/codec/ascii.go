package codec

import "io"

const maxASCII = 0x7f

// ASCIIReader passes bytes through and fails on the first byte outside the
// ASCII range.
type ASCIIReader struct {
	src  io.ByteReader
	done bool
}

func NewASCIIReader(r io.Reader) *ASCIIReader {
	return &ASCIIReader{src: newByteSource(r)}
}

func (r *ASCIIReader) ReadByte() (byte, error) {
	if r.done {
		return 0, io.EOF
	}
	c, err := r.src.ReadByte()
	if err != nil {
		r.done = true
		return 0, groupEnd(0, 1, err)
	}
	if c > maxASCII {
		r.done = true
		return 0, invalidChar(c)
	}
	return c, nil
}

type ASCIIWriter struct {
	dst io.Writer
	buf [1]byte
}

func NewASCIIWriter(w io.Writer) *ASCIIWriter {
	return &ASCIIWriter{dst: w}
}

func (w *ASCIIWriter) WriteByte(b byte) error {
	if b > maxASCII {
		return invalidOutput(b)
	}
	w.buf[0] = b
	return writeFull(w.dst, w.buf[:], b)
}
