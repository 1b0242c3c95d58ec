package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbterm/internal/application/port"
	"github.com/bnema/dumbterm/internal/application/usecase"
	"github.com/bnema/dumbterm/internal/infrastructure/config"
)

var (
	keysJSON     bool
	keysResetAll bool
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List and change keybindings",
	Long: `List the [keybindings] config section. Accelerators are stored as written
and interpreted by the front end.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		gw, err := keybindingsGateway()
		if err != nil {
			return err
		}
		a := GetApp()
		entries, err := usecase.NewGetKeybindingsUseCase(gw).Execute(a.Ctx())
		if err != nil {
			return err
		}
		if keysJSON {
			return writeJSON(cmd, entries)
		}
		out := cmd.OutOrStdout()
		for _, e := range entries {
			value := e.Accelerator
			if e.IsCustom {
				value += " " + a.Theme.AccentBadge("custom")
			}
			fmt.Fprintln(out, a.Theme.RenderKeyValue(e.Action, value))
		}
		return nil
	},
}

var keysSetCmd = &cobra.Command{
	Use:   "set <action> <accelerator>",
	Short: "Bind an accelerator to an action",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		gw, err := keybindingsGateway()
		if err != nil {
			return err
		}
		a := GetApp()
		conflicts, err := usecase.NewSetKeybindingUseCase(gw, gw).Execute(a.Ctx(), port.SetKeybindingRequest{
			Action:      args[0],
			Accelerator: args[1],
		})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(conflicts) > 0 {
			lines := make([]string, 0, len(conflicts))
			for _, c := range conflicts {
				lines = append(lines, fmt.Sprintf("%s also uses %s", c.ConflictingAction, c.Accelerator))
			}
			fmt.Fprintln(out, a.Theme.RenderWarnings("conflicts", lines))
		}
		fmt.Fprintln(out, a.Theme.RenderSuccess("%s = %s", args[0], args[1]))
		return nil
	},
}

var keysResetCmd = &cobra.Command{
	Use:   "reset [action]",
	Short: "Restore default keybindings",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		gw, err := keybindingsGateway()
		if err != nil {
			return err
		}
		a := GetApp()
		switch {
		case keysResetAll:
			err = usecase.NewResetAllKeybindingsUseCase(gw).Execute(a.Ctx())
		case len(args) == 1:
			err = usecase.NewResetKeybindingUseCase(gw).Execute(a.Ctx(), args[0])
		default:
			return fmt.Errorf("name an action or pass --all")
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.Theme.RenderSuccess("keybindings reset"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
	keysCmd.AddCommand(keysSetCmd, keysResetCmd)
	keysCmd.Flags().BoolVar(&keysJSON, "json", false, "output as JSON")
	keysResetCmd.Flags().BoolVar(&keysResetAll, "all", false, "reset every keybinding")
}

// keybindingsGateway needs a loaded config file; defaults are not editable.
func keybindingsGateway() (*config.KeybindingsGateway, error) {
	a, err := requireApp()
	if err != nil {
		return nil, err
	}
	if a.ConfigErr != nil {
		return nil, fmt.Errorf("config file unavailable: %w", a.ConfigErr)
	}
	if a.Manager == nil {
		return nil, fmt.Errorf("config file unavailable")
	}
	return config.NewKeybindingsGateway(a.Manager), nil
}
