package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/birdayz/bread/pkg/app"
	"github.com/birdayz/bread/pkg/cmd/completion"
	breadconfig "github.com/birdayz/bread/pkg/cmd/config"
	"github.com/birdayz/bread/pkg/cmd/formats"
)

// Execute is the single entry point for the CLI.
func Execute(version, commit string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New()
	root := NewRootCommand(a, fmt.Sprintf("%s (%s)", version, commit))
	err := root.ExecuteContext(ctx)
	if err != nil {
		a.PrintError(err)
	}
	return err
}

// NewRootCommand builds the command tree around a.
func NewRootCommand(a *app.App, version string) *cobra.Command {
	var (
		inputFlag     app.FormatFlag
		outputFlag    app.FormatFlag
		separatorFlag string
		groupFlag     int
	)

	root := &cobra.Command{
		Use:   "bread [FILE]",
		Short: "Convert bytes between raw, ascii, binary, hexadecimal and base N representations",
		Long: `Reads FILE (or stdin when FILE is omitted or "-"), decodes it with the input
format and writes it to stdout in the output format.

Formats:
  raw, r     raw bytes
  ascii, a   ASCII characters (e.g. '!')
  bin, b     binary representation (e.g. '00001101')
  hex, h     hexadecimal representation (e.g. 'a4')
  N          base N representation, 2 <= N <= 36 (pad each byte with leading 0s)

Whitespace is ignored by the bin, hex and base N readers.`,
		Example: `  echo -n 'hi' | bread -o hex
  echo 0100101001011111 | bread -i bin -o hex
  echo 016254 | bread -i 10 -o 16
  bread -i raw -o bin --separator '{{ " " }}' image.png`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.OutWriter = cmd.OutOrStdout()
			a.ErrWriter = cmd.ErrOrStderr()
			a.InReader = cmd.InOrStdin()

			if a.ErrWriter != os.Stderr {
				a.ColorableErr = a.ErrWriter
			}

			a.InitLogger()
			return a.InitConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var conv app.Conversion
			if a.CurrentProfile != nil {
				var err error
				conv, err = app.ConversionFromProfile(a.CurrentProfile)
				if err != nil {
					return err
				}
			}

			flags := cmd.Flags()
			if flags.Changed("input") {
				conv.Input = inputFlag.Format
			}
			if flags.Changed("output") {
				conv.Output = outputFlag.Format
			}
			if flags.Changed("separator") {
				sep, err := app.RenderSeparator(separatorFlag)
				if err != nil {
					return err
				}
				conv.Separator = sep
			}
			if flags.Changed("group") {
				if groupFlag < 1 {
					return fmt.Errorf("--group must be at least 1")
				}
				conv.Group = groupFlag
			}

			var in io.Reader = a.InReader
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("unable to open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			return a.Convert(cmd.Context(), in, a.OutWriter, conv)
		},
	}

	root.PersistentFlags().StringVar(&a.CfgFile, "config", "", "config file (default is $HOME/.bread/config)")
	root.PersistentFlags().StringVarP(&a.ProfileOverride, "profile", "p", "", "set a temporary current profile")
	root.PersistentFlags().BoolVarP(&a.Verbose, "verbose", "v", false, "Log diagnostics to stderr")

	root.Flags().VarP(&inputFlag, "input", "i", "input format: raw, bin, hex, ascii or N")
	root.Flags().VarP(&outputFlag, "output", "o", "output format: raw, bin, hex, ascii or N")
	root.Flags().StringVar(&separatorFlag, "separator", "", "go template rendered once and written between output groups")
	root.Flags().IntVar(&groupFlag, "group", 1, "number of bytes per output group when --separator is set")
	_ = root.RegisterFlagCompletionFunc("input", app.CompleteFormat)
	_ = root.RegisterFlagCompletionFunc("output", app.CompleteFormat)

	root.AddCommand(
		formats.NewCommand(a),
		breadconfig.NewCommand(a),
		completion.NewCommand(root, a),
	)

	a.Root = root
	return root
}
