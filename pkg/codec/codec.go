// Package codec converts byte streams between textual and binary
// encodings. Every format is a Reader/Writer pair; Convert moves bytes from
// any Reader to any Writer.
package codec

import (
	"context"
	"errors"
	"io"
	"iter"
)

// Reader yields decoded bytes one at a time. io.EOF marks the clean end of
// the sequence. After any other error the next call returns io.EOF.
type Reader interface {
	ReadByte() (byte, error)
}

// Writer encodes one byte per call to its underlying sink.
type Writer interface {
	WriteByte(b byte) error
}

// All returns an iterator over the bytes of r. An error is yielded once and
// ends the iteration.
func All(r Reader) iter.Seq2[byte, error] {
	return func(yield func(byte, error) bool) {
		for {
			b, err := r.ReadByte()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(0, err)
				return
			}
			if !yield(b, nil) {
				return
			}
		}
	}
}

// WithContext stops r once ctx is done. The context is checked before each
// byte, so a blocked source read is not interrupted.
func WithContext(ctx context.Context, r Reader) Reader {
	return &ctxReader{ctx: ctx, r: r}
}

type ctxReader struct {
	ctx  context.Context
	r    Reader
	done bool
}

func (c *ctxReader) ReadByte() (byte, error) {
	if c.done {
		return 0, io.EOF
	}
	if err := c.ctx.Err(); err != nil {
		c.done = true
		return 0, readFailure(err)
	}
	return c.r.ReadByte()
}

// maxEmptyReads matches the limit bufio uses before giving up on a reader
// that returns no data and no error.
const maxEmptyReads = 100

// byteSource reads one byte per Read call, so nothing past the current
// digit group is consumed from the underlying reader.
type byteSource struct {
	r       io.Reader
	buf     [1]byte
	pending error
}

func newByteSource(r io.Reader) io.ByteReader {
	if br, ok := r.(io.ByteReader); ok {
		return br
	}
	return &byteSource{r: r}
}

func (s *byteSource) ReadByte() (byte, error) {
	if s.pending != nil {
		err := s.pending
		s.pending = nil
		return 0, err
	}
	for i := 0; i < maxEmptyReads; i++ {
		n, err := s.r.Read(s.buf[:])
		if n == 1 {
			s.pending = err
			return s.buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
	return 0, io.ErrNoProgress
}

// isSpace reports ASCII whitespace. Vertical tab is not included.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	}
	return false
}

func nextNonSpace(src io.ByteReader) (byte, error) {
	for {
		c, err := src.ReadByte()
		if err != nil {
			return 0, err
		}
		if !isSpace(c) {
			return c, nil
		}
	}
}

// groupEnd turns a source error hit after n of expected digits into the
// reader result: a clean end, a short read or a wrapped failure.
func groupEnd(n, expected int, err error) error {
	if errors.Is(err, io.EOF) {
		if n == 0 {
			return io.EOF
		}
		return shortRead(n, expected)
	}
	return readFailure(err)
}

// writeFull writes p in a single call. b is the byte p encodes. Partial
// writes are reported, not retried.
func writeFull(w io.Writer, p []byte, b byte) error {
	n, err := w.Write(p)
	if err != nil {
		return &OutError{Byte: b, Count: n, Expected: len(p), Err: err}
	}
	if n != len(p) {
		return &OutError{Byte: b, Count: n, Expected: len(p), Err: ErrShortIO}
	}
	return nil
}
