package codec

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in       string
		expected Format
	}{
		{in: "raw", expected: Raw},
		{in: "r", expected: Raw},
		{in: "bin", expected: Binary},
		{in: "b", expected: Binary},
		{in: "hex", expected: Hex},
		{in: "h", expected: Hex},
		{in: "ascii", expected: ASCII},
		{in: "a", expected: ASCII},
		{in: "2", expected: Format{Kind: KindBase, Radix: 2}},
		{in: "10", expected: Format{Kind: KindBase, Radix: 10}},
		{in: "36", expected: Format{Kind: KindBase, Radix: 36}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			f, err := ParseFormat(tt.in)
			require.NoError(t, err)
			require.Equal(t, tt.expected, f)

			again, err := ParseFormat(f.Name())
			require.NoError(t, err)
			require.Equal(t, f, again)
		})
	}
}

func TestParseFormat_Invalid(t *testing.T) {
	for _, in := range []string{"0", "1", "37", "-4", "300"} {
		_, err := ParseFormat(in)
		require.ErrorIs(t, err, ErrInvalidRadix, in)
	}
	for _, in := range []string{"", "base64", "HEX", "x"} {
		_, err := ParseFormat(in)
		require.ErrorIs(t, err, ErrUnknownFormat, in)
	}
}

func TestFormat_String(t *testing.T) {
	require.Equal(t, "ascii", Format{}.String())
	require.Equal(t, "bin", Binary.String())
	require.Equal(t, "base 7", Format{Kind: KindBase, Radix: 7}.String())
	require.Equal(t, "7", Format{Kind: KindBase, Radix: 7}.Name())
}

func TestFormat_Specializations(t *testing.T) {
	r, err := NewReader(strings.NewReader(""), 2)
	require.NoError(t, err)
	require.IsType(t, &BinaryReader{}, r)

	r, err = NewReader(strings.NewReader(""), 16)
	require.NoError(t, err)
	require.IsType(t, &HexReader{}, r)

	r, err = NewReader(strings.NewReader(""), 10)
	require.NoError(t, err)
	require.IsType(t, &BaseReader{}, r)

	w, err := NewWriter(&bytes.Buffer{}, 2)
	require.NoError(t, err)
	require.IsType(t, &BinaryWriter{}, w)

	w, err = NewWriter(&bytes.Buffer{}, 16)
	require.NoError(t, err)
	require.IsType(t, &HexWriter{}, w)

	_, err = NewWriter(&bytes.Buffer{}, 40)
	require.ErrorIs(t, err, ErrInvalidRadix)
}

func TestFormats(t *testing.T) {
	names := map[string]bool{}
	for _, d := range Formats() {
		names[d.Name] = true
		for _, alias := range d.Aliases {
			_, err := ParseFormat(alias)
			require.NoError(t, err, alias)
		}
	}
	require.Equal(t, map[string]bool{"raw": true, "ascii": true, "bin": true, "hex": true, "N": true}, names)
}

func TestErrorMessages(t *testing.T) {
	require.Equal(t, `input: invalid byte '*'`, invalidChar('*').Error())
	require.Equal(t, "input: short i/o: read 1 of 3 digits", shortRead(1, 3).Error())
	require.Equal(t, "output: invalid byte 0xc8", invalidOutput(200).Error())
	require.Equal(t, "output: short i/o: wrote 1 of 2 bytes", (&OutError{Count: 1, Expected: 2, Err: ErrShortIO}).Error())
}
