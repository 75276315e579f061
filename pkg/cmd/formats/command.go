package formats

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/birdayz/bread/pkg/app"
	"github.com/birdayz/bread/pkg/codec"
)

// NewCommand returns the "bread formats" command.
func NewCommand(a *app.App) *cobra.Command {
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:   "formats",
		Short: "List supported formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			descriptors := codec.Formats()
			if jsonFlag {
				return a.PrintJSON(descriptors)
			}

			w := app.NewTabWriter(a.OutWriter)
			if !a.NoHeaderFlag {
				fmt.Fprintf(w, "NAME\tALIASES\tALPHABET\tDIGITS/BYTE\tWHITESPACE\tDESCRIPTION\t\n")
			}
			for _, d := range descriptors {
				whitespace := "kept"
				if d.Whitespace {
					whitespace = "skipped"
				}
				fmt.Fprintf(w, "%v\t%v\t%v\t%v\t%v\t%v\t\n", d.Name, strings.Join(d.Aliases, ","), d.Alphabet, d.DigitsPerByte, whitespace, d.Description)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Print formats as JSON")
	a.AddNoHeadersFlag(cmd)
	return cmd
}
