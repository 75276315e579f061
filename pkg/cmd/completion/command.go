package completion

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/birdayz/bread/pkg/app"
)

func generators(root *cobra.Command) map[string]func(io.Writer) error {
	return map[string]func(io.Writer) error{
		"bash": root.GenBashCompletion,
		"zsh":  root.GenZshCompletion,
		"fish": func(w io.Writer) error {
			return root.GenFishCompletion(w, true)
		},
		"powershell": root.GenPowerShellCompletion,
	}
}

// NewCommand returns the "bread completion" command. root is the command
// whose tree the scripts complete.
func NewCommand(root *cobra.Command, a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "completion [SHELL]",
		Short: "Generate completion script for bash, zsh, fish or powershell",
		Long: `Print a shell completion script for bread.

  $ source <(bread completion bash)
  $ bread completion zsh > "${fpath[1]}/_bread"
  $ bread completion fish > ~/.config/fish/completions/bread.fish
  PS> bread completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			gen := generators(root)[args[0]]
			if err := gen(a.OutWriter); err != nil {
				return fmt.Errorf("failed to generate %s completion: %w", args[0], err)
			}
			return nil
		},
	}
}
