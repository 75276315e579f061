package app

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/birdayz/bread/pkg/codec"
	"github.com/birdayz/bread/pkg/config"
)

// Conversion describes a single run from one format to another.
type Conversion struct {
	Input     codec.Format
	Output    codec.Format
	Separator []byte
	Group     int
}

// ConversionFromProfile parses the formats and separator stored in p.
func ConversionFromProfile(p *config.Profile) (Conversion, error) {
	var c Conversion
	var err error
	if p.Input != "" {
		if c.Input, err = codec.ParseFormat(p.Input); err != nil {
			return Conversion{}, fmt.Errorf("profile %s: input: %w", p.Name, err)
		}
	}
	if p.Output != "" {
		if c.Output, err = codec.ParseFormat(p.Output); err != nil {
			return Conversion{}, fmt.Errorf("profile %s: output: %w", p.Name, err)
		}
	}
	if c.Separator, err = RenderSeparator(p.Separator); err != nil {
		return Conversion{}, fmt.Errorf("profile %s: %w", p.Name, err)
	}
	c.Group = p.Group
	return c, nil
}

// Convert streams in to out. The source is read through a buffer and the
// sink is flushed once at the end; codec errors are returned unchanged.
func (a *App) Convert(ctx context.Context, in io.Reader, out io.Writer, c Conversion) error {
	bw := bufio.NewWriter(out)
	r := codec.WithContext(ctx, c.Input.NewReader(bufio.NewReader(in)))
	w := codec.Separated(c.Output.NewWriter(bw), bw, c.Separator, c.Group)

	a.Log.Debug("converting", "input", c.Input.String(), "output", c.Output.String(), "group", c.Group)
	n, err := codec.ConvertCount(r, w)
	if flushErr := bw.Flush(); err == nil && flushErr != nil {
		err = &codec.OutError{Err: flushErr}
	}
	a.Log.Debug("conversion finished", "bytes", n, "error", err)
	return err
}
