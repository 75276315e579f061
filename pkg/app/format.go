package app

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/spf13/cobra"

	"github.com/birdayz/bread/pkg/codec"
)

// FormatFlag is a pflag.Value over codec.Format for --input and --output.
type FormatFlag struct {
	codec.Format
}

func (e *FormatFlag) String() string {
	return e.Format.Name()
}

func (e *FormatFlag) Set(v string) error {
	f, err := codec.ParseFormat(v)
	if err != nil {
		return err
	}
	e.Format = f
	return nil
}

func (e *FormatFlag) Type() string {
	return "Format"
}

// CompleteFormat provides shell completion for --input and --output.
func CompleteFormat(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return []string{"raw", "bin", "hex", "ascii", "8", "10", "36"}, cobra.ShellCompDirectiveNoFileComp
}

// RenderSeparator evaluates the --separator go template once. Templates have
// the hermetic sprig functions, so `{{ "\n" }}` or `{{ " " | repeat 2 }}`
// work as expected.
func RenderSeparator(tpl string) ([]byte, error) {
	if tpl == "" {
		return nil, nil
	}
	t, err := template.New("separator").Funcs(sprig.HermeticTxtFuncMap()).Parse(tpl)
	if err != nil {
		return nil, fmt.Errorf("failed to parse separator template: %w", err)
	}
	var buf bytes.Buffer
	if err := t.Execute(&buf, nil); err != nil {
		return nil, fmt.Errorf("failed to execute separator template: %w", err)
	}
	return buf.Bytes(), nil
}
