package codec

import "io"

// BinaryReader decodes bit strings such as "01001010", eight digits per
// byte, skipping whitespace.
type BinaryReader struct {
	src  io.ByteReader
	done bool
}

func NewBinaryReader(r io.Reader) *BinaryReader {
	return &BinaryReader{src: newByteSource(r)}
}

func (r *BinaryReader) ReadByte() (byte, error) {
	if r.done {
		return 0, io.EOF
	}
	var value byte
	for i := 7; i >= 0; {
		c, err := r.src.ReadByte()
		if err != nil {
			r.done = true
			return 0, groupEnd(7-i, 8, err)
		}
		switch c {
		case '0':
		case '1':
			value |= 1 << i
		default:
			if isSpace(c) {
				continue
			}
			r.done = true
			return 0, invalidChar(c)
		}
		i--
	}
	return value, nil
}

type BinaryWriter struct {
	dst io.Writer
	buf [8]byte
}

func NewBinaryWriter(w io.Writer) *BinaryWriter {
	return &BinaryWriter{dst: w}
}

func (w *BinaryWriter) WriteByte(b byte) error {
	for i := range w.buf {
		if b&(0x80>>i) != 0 {
			w.buf[i] = '1'
		} else {
			w.buf[i] = '0'
		}
	}
	return writeFull(w.dst, w.buf[:], b)
}
