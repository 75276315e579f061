package codec

import "io"

// Convert copies every byte from r to w and returns the first error. Reader
// failures are returned as *InError, writer failures as *OutError.
func Convert(r Reader, w Writer) error {
	_, err := ConvertCount(r, w)
	return err
}

// ConvertCount is like Convert and also reports how many bytes were written.
func ConvertCount(r Reader, w Writer) (int, error) {
	n := 0
	for b, err := range All(r) {
		if err != nil {
			return n, asInError(err)
		}
		if err := w.WriteByte(b); err != nil {
			return n, asOutError(b, err)
		}
		n++
	}
	return n, nil
}

// Separated writes sep to dst before every group of every bytes after the
// first. It returns w unchanged when sep is empty.
func Separated(w Writer, dst io.Writer, sep []byte, every int) Writer {
	if len(sep) == 0 {
		return w
	}
	if every < 1 {
		every = 1
	}
	return &separated{w: w, dst: dst, sep: sep, every: every}
}

type separated struct {
	w     Writer
	dst   io.Writer
	sep   []byte
	every int
	n     int
}

func (s *separated) WriteByte(b byte) error {
	if s.n > 0 && s.n%s.every == 0 {
		if err := writeFull(s.dst, s.sep, b); err != nil {
			return err
		}
	}
	if err := s.w.WriteByte(b); err != nil {
		return err
	}
	s.n++
	return nil
}
