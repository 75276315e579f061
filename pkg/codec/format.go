package codec

import (
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Kind identifies the encoding family of a Format.
type Kind int

const (
	KindASCII Kind = iota
	KindRaw
	KindBinary
	KindHex
	KindBase
)

// ErrUnknownFormat is returned by ParseFormat for an unrecognised mode.
var ErrUnknownFormat = errors.New("allowed modes: raw, bin, hex, ascii or N where N is a numeric base in [2,36]")

// Format selects a Reader/Writer pair. The zero value is ASCII.
type Format struct {
	Kind  Kind
	Radix int
}

var (
	ASCII  = Format{Kind: KindASCII}
	Raw    = Format{Kind: KindRaw}
	Binary = Format{Kind: KindBinary, Radix: 2}
	Hex    = Format{Kind: KindHex, Radix: 16}
)

// BaseFormat returns the numeric base format for radix.
func BaseFormat(radix int) (Format, error) {
	if _, err := NewBase(radix); err != nil {
		return Format{}, err
	}
	return Format{Kind: KindBase, Radix: radix}, nil
}

// ParseFormat accepts raw|r, bin|b, hex|h, ascii|a or a decimal radix.
func ParseFormat(s string) (Format, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return BaseFormat(n)
	}
	switch s {
	case "raw", "r":
		return Raw, nil
	case "bin", "b":
		return Binary, nil
	case "hex", "h":
		return Hex, nil
	case "ascii", "a":
		return ASCII, nil
	}
	return Format{}, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Name is the canonical token ParseFormat accepts for f.
func (f Format) Name() string {
	switch f.Kind {
	case KindRaw:
		return "raw"
	case KindBinary:
		return "bin"
	case KindHex:
		return "hex"
	case KindBase:
		return strconv.Itoa(f.Radix)
	default:
		return "ascii"
	}
}

func (f Format) String() string {
	if f.Kind == KindBase {
		return fmt.Sprintf("base %d", f.Radix)
	}
	return f.Name()
}

// DigitsPerByte is the number of input characters one byte takes.
func (f Format) DigitsPerByte() int {
	switch f.Kind {
	case KindBinary:
		return 8
	case KindHex:
		return 2
	case KindBase:
		return digitsPerByte(f.Radix)
	default:
		return 1
	}
}

// NewReader returns the reader for f. Bases 2 and 16 use the binary and
// hexadecimal readers.
func (f Format) NewReader(r io.Reader) Reader {
	switch f.Kind {
	case KindRaw:
		return NewRawReader(r)
	case KindBinary:
		return NewBinaryReader(r)
	case KindHex:
		return NewHexReader(r)
	case KindBase:
		switch f.Radix {
		case 2:
			return NewBinaryReader(r)
		case 16:
			return NewHexReader(r)
		}
		return NewBaseReader(r, MustBase(f.Radix))
	default:
		return NewASCIIReader(r)
	}
}

// NewWriter returns the writer for f. Bases 2 and 16 use the binary and
// hexadecimal writers.
func (f Format) NewWriter(w io.Writer) Writer {
	switch f.Kind {
	case KindRaw:
		return NewRawWriter(w)
	case KindBinary:
		return NewBinaryWriter(w)
	case KindHex:
		return NewHexWriter(w)
	case KindBase:
		switch f.Radix {
		case 2:
			return NewBinaryWriter(w)
		case 16:
			return NewHexWriter(w)
		}
		return NewBaseWriter(w, MustBase(f.Radix))
	default:
		return NewASCIIWriter(w)
	}
}

// NewReader is shorthand for the reader of a numeric base.
func NewReader(r io.Reader, radix int) (Reader, error) {
	f, err := BaseFormat(radix)
	if err != nil {
		return nil, err
	}
	return f.NewReader(r), nil
}

// NewWriter is shorthand for the writer of a numeric base.
func NewWriter(w io.Writer, radix int) (Writer, error) {
	f, err := BaseFormat(radix)
	if err != nil {
		return nil, err
	}
	return f.NewWriter(w), nil
}

// Descriptor documents one supported format.
type Descriptor struct {
	Name          string   `json:"name"`
	Aliases       []string `json:"aliases"`
	Alphabet      string   `json:"alphabet"`
	DigitsPerByte string   `json:"digits_per_byte"`
	Whitespace    bool     `json:"skips_whitespace"`
	Description   string   `json:"description"`
}

// Formats lists the supported formats.
func Formats() []Descriptor {
	return []Descriptor{
		{Name: "raw", Aliases: []string{"r"}, Alphabet: "any byte 0-255", DigitsPerByte: "1", Description: "raw byte"},
		{Name: "ascii", Aliases: []string{"a"}, Alphabet: "0-127", DigitsPerByte: "1", Description: "ASCII characters (e.g. '!')"},
		{Name: "bin", Aliases: []string{"b", "2"}, Alphabet: "0-1", DigitsPerByte: "8", Whitespace: true, Description: "binary representation (e.g. '00001101')"},
		{Name: "hex", Aliases: []string{"h", "16"}, Alphabet: "0-9a-fA-F", DigitsPerByte: "2", Whitespace: true, Description: "hexadecimal representation (e.g. 'a4')"},
		{Name: "N", Alphabet: "0-9a-zA-Z below N", DigitsPerByte: "ceil(log_N 256)", Whitespace: true, Description: "base N representation, 2 <= N <= 36, pad each byte with leading 0s"},
	}
}
