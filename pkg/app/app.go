package app

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-colorable"
	"github.com/spf13/cobra"

	"github.com/birdayz/bread/pkg/config"
)

// App holds all shared mutable state for the CLI. It is created once per
// invocation and threaded into every command package.
type App struct {
	// I/O
	OutWriter    io.Writer
	ErrWriter    io.Writer
	InReader     io.Reader
	ColorableErr io.Writer

	Log hclog.Logger

	// Config state
	Cfg             config.Config
	CurrentProfile  *config.Profile
	CfgFile         string
	ProfileOverride string
	Verbose         bool

	// Display
	NoHeaderFlag bool

	// Root command reference (for completion generation)
	Root *cobra.Command
}

// New creates an App with sane defaults.
func New() *App {
	return &App{
		OutWriter:    os.Stdout,
		ErrWriter:    os.Stderr,
		InReader:     os.Stdin,
		ColorableErr: colorable.NewColorableStderr(),
		Log:          hclog.NewNullLogger(),
	}
}

// InitLogger sets up the diagnostic logger on ErrWriter. Debug records are
// only emitted with --verbose.
func (a *App) InitLogger() {
	level := hclog.Warn
	if a.Verbose {
		level = hclog.Debug
	}
	a.Log = hclog.New(&hclog.LoggerOptions{
		Name:   "bread",
		Level:  level,
		Output: a.ErrWriter,
	})
}

// InitConfig reads the config file and resolves the active profile.
// Called by PersistentPreRunE on the root command.
func (a *App) InitConfig() error {
	var err error
	a.Cfg, err = config.ReadConfig(a.CfgFile)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	a.Cfg.ProfileOverride = a.ProfileOverride

	a.CurrentProfile = a.Cfg.ActiveProfile()
	if a.CurrentProfile == nil && a.ProfileOverride != "" {
		return fmt.Errorf("profile with name %v not found", a.ProfileOverride)
	}
	if a.CurrentProfile != nil {
		a.Log.Debug("using profile", "name", a.CurrentProfile.Name, "config", a.Cfg.Path())
	}
	return nil
}

// PrintError reports err on the colourable error writer.
func (a *App) PrintError(err error) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprint(a.ColorableErr, "error: ")
	fmt.Fprintln(a.ColorableErr, err)
}

// PrintJSON pretty prints v as coloured JSON on OutWriter.
func (a *App) PrintJSON(v any) error {
	b, err := prettyjson.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	_, err = fmt.Fprintln(a.OutWriter, string(b))
	return err
}

// AddNoHeadersFlag installs --no-headers on cmd.
func (a *App) AddNoHeadersFlag(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&a.NoHeaderFlag, "no-headers", false, "Hide table headers")
}

// ValidProfileArgs provides shell completion for profile names.
func (a *App) ValidProfileArgs(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return a.Cfg.ProfileNames(), cobra.ShellCompDirectiveNoFileComp
}

const (
	TabwriterMinWidth = 6
	TabwriterWidth    = 4
	TabwriterPadding  = 3
	TabwriterPadChar  = ' '
	TabwriterFlags    = 0
)

// NewTabWriter creates a standard tabwriter for CLI output.
func NewTabWriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, TabwriterMinWidth, TabwriterWidth, TabwriterPadding, TabwriterPadChar, TabwriterFlags)
}
