package config

import (
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/birdayz/bread/pkg/app"
	"github.com/birdayz/bread/pkg/config"
)

// NewCommand returns the "bread config" command with subcommands.
func NewCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Handle bread configuration",
	}

	cmd.AddCommand(
		newCurrentProfileCommand(a),
		newUseProfileCommand(a),
		newGetProfilesCommand(a),
		newAddProfileCommand(a),
		newRemoveProfileCommand(a),
		newSelectProfileCommand(a),
		newViewCommand(a),
		newImportCommand(a),
	)

	return cmd
}

func newCurrentProfileCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "current-profile",
		Short: "Displays the current profile",
		Args:  cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(a.OutWriter, a.Cfg.CurrentProfile)
		},
	}
}

func newUseProfileCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:               "use-profile [NAME]",
		Short:             "Sets the current profile in the configuration",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.ValidProfileArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if !a.Cfg.HasProfile(name) {
				return fmt.Errorf("profile with name %v not found", name)
			}
			if err := a.Cfg.SetCurrentProfile(name); err != nil {
				return fmt.Errorf("unable to write config: %w", err)
			}
			fmt.Fprintf(a.OutWriter, "Switched to profile \"%v\".\n", name)
			return nil
		},
	}
}

func newGetProfilesCommand(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get-profiles",
		Short: "Display profiles in the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := app.NewTabWriter(a.OutWriter)
			if !a.NoHeaderFlag {
				fmt.Fprintf(w, "  NAME\tINPUT\tOUTPUT\tSEPARATOR\tGROUP\t\n")
			}
			for _, profile := range a.Cfg.Profiles {
				marker := "  "
				if profile.Name == a.Cfg.CurrentProfile {
					marker = "* "
				}
				fmt.Fprintf(w, "%s%v\t%v\t%v\t%q\t%v\t\n", marker, profile.Name, orDefault(profile.Input), orDefault(profile.Output), profile.Separator, profile.Group)
			}
			return w.Flush()
		},
	}
	a.AddNoHeadersFlag(cmd)
	return cmd
}

func orDefault(format string) string {
	if format == "" {
		return "ascii"
	}
	return format
}

func newAddProfileCommand(a *app.App) *cobra.Command {
	var (
		inputFlag     app.FormatFlag
		outputFlag    app.FormatFlag
		separatorFlag string
		groupFlag     int
		forceFlag     bool
		useFlag       bool
	)

	cmd := &cobra.Command{
		Use:     "add-profile [NAME]",
		Short:   "Add a conversion profile",
		Example: `  bread config add-profile bits -i hex -o bin --separator '{{ " " }}'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			if a.Cfg.HasProfile(name) && !forceFlag {
				return fmt.Errorf("could not add profile: profile with name '%v' exists already", name)
			}
			if groupFlag < 0 {
				return fmt.Errorf("--group must not be negative")
			}

			profile := &config.Profile{
				Name:      name,
				Input:     inputFlag.Name(),
				Output:    outputFlag.Name(),
				Separator: separatorFlag,
				Group:     groupFlag,
			}
			// Fail early on templates that would only break at conversion time.
			if _, err := app.ConversionFromProfile(profile); err != nil {
				return err
			}

			a.Cfg.Upsert(profile)
			if useFlag || a.Cfg.CurrentProfile == "" {
				a.Cfg.CurrentProfile = name
			}
			if err := a.Cfg.Write(); err != nil {
				return fmt.Errorf("unable to write config: %w", err)
			}
			fmt.Fprintln(a.OutWriter, "Added profile.")
			return nil
		},
	}

	cmd.Flags().VarP(&inputFlag, "input", "i", "input format: raw, bin, hex, ascii or N")
	cmd.Flags().VarP(&outputFlag, "output", "o", "output format: raw, bin, hex, ascii or N")
	cmd.Flags().StringVar(&separatorFlag, "separator", "", "go template written between output groups")
	cmd.Flags().IntVar(&groupFlag, "group", 0, "number of bytes per output group")
	cmd.Flags().BoolVar(&forceFlag, "force", false, "Replace an existing profile with the same name")
	cmd.Flags().BoolVar(&useFlag, "use", false, "Make the new profile the current profile")
	_ = cmd.RegisterFlagCompletionFunc("input", app.CompleteFormat)
	_ = cmd.RegisterFlagCompletionFunc("output", app.CompleteFormat)
	return cmd
}

func newRemoveProfileCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:               "remove-profile [NAME]",
		Short:             "remove profile",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: a.ValidProfileArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.Cfg.Remove(args[0]); err != nil {
				return fmt.Errorf("could not delete profile: %w", err)
			}
			if err := a.Cfg.Write(); err != nil {
				return fmt.Errorf("unable to write config: %w", err)
			}
			fmt.Fprintln(a.OutWriter, "Removed profile.")
			return nil
		},
	}
}

func newSelectProfileCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "select-profile",
		Short: "Interactively select a profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(a.Cfg.Profiles) == 0 {
				return fmt.Errorf("no profiles configured, add one with \"bread config add-profile\"")
			}

			var profileNames []string
			pos := 0
			for k, profile := range a.Cfg.Profiles {
				profileNames = append(profileNames, profile.Name)
				if profile.Name == a.Cfg.CurrentProfile {
					pos = k
				}
			}

			searcher := func(input string, index int) bool {
				name := strings.ReplaceAll(strings.ToLower(profileNames[index]), " ", "")
				input = strings.ReplaceAll(strings.ToLower(input), " ", "")
				return strings.Contains(name, input)
			}

			p := promptui.Select{
				Label:     "Select profile",
				Items:     profileNames,
				Searcher:  searcher,
				Size:      10,
				CursorPos: pos,
			}

			_, selected, err := p.Run()
			if err != nil {
				// User cancelled (e.g. Ctrl-C). Not an error.
				return nil
			}

			if err := a.Cfg.SetCurrentProfile(selected); err != nil {
				return fmt.Errorf("unable to write config: %w", err)
			}
			fmt.Fprintf(a.OutWriter, "Switched to profile \"%v\".\n", selected)
			return nil
		},
	}
}

func newViewCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Print the configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.PrintJSON(map[string]any{
				"path":            a.Cfg.Path(),
				"current-profile": a.Cfg.CurrentProfile,
				"profiles":        a.Cfg.Profiles,
			})
		},
	}
}

func newImportCommand(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:     "import [FILE]",
		Short:   "Import profiles from a .properties file into the $HOME/.bread/config file",
		Example: "  bread config import profiles.properties",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := a.Cfg.ImportProperties(args[0])
			if err != nil {
				return fmt.Errorf("failed to import %s: %w", args[0], err)
			}
			for _, name := range names {
				p := a.Cfg.Profile(name)
				if _, err := app.ConversionFromProfile(p); err != nil {
					return err
				}
			}
			if a.Cfg.CurrentProfile == "" && len(names) > 0 {
				a.Cfg.CurrentProfile = names[0]
			}
			if err := a.Cfg.Write(); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Fprintf(a.OutWriter, "Imported %d profile(s): %s\n", len(names), strings.Join(names, ", "))
			return nil
		},
	}
}
