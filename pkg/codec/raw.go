package codec

import "io"

// RawReader passes every byte through unchanged.
type RawReader struct {
	src  io.ByteReader
	done bool
}

func NewRawReader(r io.Reader) *RawReader {
	return &RawReader{src: newByteSource(r)}
}

func (r *RawReader) ReadByte() (byte, error) {
	if r.done {
		return 0, io.EOF
	}
	c, err := r.src.ReadByte()
	if err != nil {
		r.done = true
		return 0, groupEnd(0, 1, err)
	}
	return c, nil
}

type RawWriter struct {
	dst io.Writer
	buf [1]byte
}

func NewRawWriter(w io.Writer) *RawWriter {
	return &RawWriter{dst: w}
}

func (w *RawWriter) WriteByte(b byte) error {
	w.buf[0] = b
	return writeFull(w.dst, w.buf[:], b)
}
