package app

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/birdayz/bread/pkg/codec"
	"github.com/birdayz/bread/pkg/config"
)

func newTestApp() (*App, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	a := New()
	a.OutWriter = &out
	a.ErrWriter = &errOut
	a.ColorableErr = &errOut
	return a, &out, &errOut
}

func TestConvert(t *testing.T) {
	a, _, _ := newTestApp()
	var out bytes.Buffer
	err := a.Convert(context.Background(), strings.NewReader("0100101001011111"), &out, Conversion{
		Input:  codec.Binary,
		Output: codec.Hex,
	})
	require.NoError(t, err)
	require.Equal(t, "4a5f", out.String())
}

func TestConvert_Separator(t *testing.T) {
	a, _, _ := newTestApp()
	var out bytes.Buffer
	err := a.Convert(context.Background(), strings.NewReader("hello"), &out, Conversion{
		Input:     codec.ASCII,
		Output:    codec.Hex,
		Separator: []byte(" "),
		Group:     2,
	})
	require.NoError(t, err)
	require.Equal(t, "6865 6c6c 6f", out.String())
}

func TestConvert_FlushesPartialOutputOnError(t *testing.T) {
	a, _, _ := newTestApp()
	var out bytes.Buffer
	err := a.Convert(context.Background(), strings.NewReader("4a5"), &out, Conversion{
		Input:  codec.Hex,
		Output: codec.Hex,
	})
	require.ErrorIs(t, err, codec.ErrShortIO)
	require.Equal(t, "4a", out.String())
}

func TestConvert_Cancelled(t *testing.T) {
	a, _, _ := newTestApp()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := a.Convert(ctx, strings.NewReader("abc"), &bytes.Buffer{}, Conversion{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestConvert_VerboseLogging(t *testing.T) {
	a, _, errOut := newTestApp()
	a.Verbose = true
	a.InitLogger()
	err := a.Convert(context.Background(), strings.NewReader("AB"), &bytes.Buffer{}, Conversion{Output: codec.Hex})
	require.NoError(t, err)
	require.Contains(t, errOut.String(), "conversion finished")
	require.Contains(t, errOut.String(), "bytes=2")
}

func TestConversionFromProfile(t *testing.T) {
	c, err := ConversionFromProfile(&config.Profile{Name: "p", Input: "10", Output: "b", Separator: `{{ " " | repeat 2 }}`, Group: 3})
	require.NoError(t, err)
	require.Equal(t, codec.Format{Kind: codec.KindBase, Radix: 10}, c.Input)
	require.Equal(t, codec.Binary, c.Output)
	require.Equal(t, []byte("  "), c.Separator)
	require.Equal(t, 3, c.Group)

	_, err = ConversionFromProfile(&config.Profile{Name: "p", Input: "99"})
	require.ErrorIs(t, err, codec.ErrInvalidRadix)

	_, err = ConversionFromProfile(&config.Profile{Name: "p", Output: "nope"})
	require.ErrorIs(t, err, codec.ErrUnknownFormat)

	_, err = ConversionFromProfile(&config.Profile{Name: "p", Separator: "{{"})
	require.Error(t, err)
}

func TestRenderSeparator(t *testing.T) {
	sep, err := RenderSeparator(`{{ "\n" }}`)
	require.NoError(t, err)
	require.Equal(t, []byte("\n"), sep)

	sep, err = RenderSeparator(":")
	require.NoError(t, err)
	require.Equal(t, []byte(":"), sep)

	sep, err = RenderSeparator("")
	require.NoError(t, err)
	require.Nil(t, sep)
}

func TestFormatFlag(t *testing.T) {
	var f FormatFlag
	require.Equal(t, "ascii", f.String())
	require.Equal(t, "Format", f.Type())
	require.NoError(t, f.Set("h"))
	require.Equal(t, codec.Hex, f.Format)
	require.Equal(t, "hex", f.String())
	require.Error(t, f.Set("37"))
	require.Equal(t, codec.Hex, f.Format)
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config")
	require.NoError(t, os.WriteFile(path, []byte(`current-profile: a
profiles:
  - name: a
    input: bin
  - name: b
    input: hex
`), 0644))

	a, _, _ := newTestApp()
	a.CfgFile = path
	require.NoError(t, a.InitConfig())
	require.Equal(t, "a", a.CurrentProfile.Name)

	a.ProfileOverride = "b"
	require.NoError(t, a.InitConfig())
	require.Equal(t, "b", a.CurrentProfile.Name)

	a.ProfileOverride = "missing"
	require.Error(t, a.InitConfig())
}

func TestPrintError(t *testing.T) {
	a, _, errOut := newTestApp()
	a.PrintError(errors.New("boom"))
	require.Contains(t, errOut.String(), "error: ")
	require.Contains(t, errOut.String(), "boom")
}

func TestPrintJSON(t *testing.T) {
	a, out, _ := newTestApp()
	require.NoError(t, a.PrintJSON(map[string]int{"digits": 3}))
	require.Contains(t, out.String(), "digits")
	require.Contains(t, out.String(), "3")
}
