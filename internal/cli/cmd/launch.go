package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dumbterm/internal/cli"
	"github.com/bnema/dumbterm/internal/cli/model"
	"github.com/bnema/dumbterm/internal/logging"
)

var launchCmd = &cobra.Command{
	Use:     "launch [name]",
	Aliases: []string{"launcher"},
	Short:   "Pick a stored layout and build it",
	Long: `Open the layout picker and build the chosen layout. With a name the
picker is skipped.

Keys:
  ↑/k ↓/j   move
  /         filter
  enter     launch
  q, esc    quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLaunch,
}

func init() {
	rootCmd.AddCommand(launchCmd)
}

func runLaunch(cmd *cobra.Command, args []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	ctx := a.Ctx()

	name := ""
	if len(args) == 1 {
		name = args[0]
	} else {
		names, err := a.LayoutsUC.List(ctx)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), a.Theme.Subtle.Render("no stored layouts, create one with 'dumbterm layouts new'"))
			return nil
		}

		// Previews rebuild from the live config while the picker is open.
		if err := a.WatchConfig(); err != nil {
			logging.FromContext(ctx).Debug().Err(err).Msg("config reload disabled")
		}
		m := model.NewLauncherModel(a.Theme, names, a.Config().Layout.DefaultLayout, previewText(a))
		final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
		if err != nil {
			return fmt.Errorf("run launcher: %w", err)
		}
		launcher, ok := final.(model.LauncherModel)
		if !ok {
			return fmt.Errorf("unexpected model type")
		}
		if name = launcher.Chosen(); name == "" {
			return nil
		}
	}

	return printPreview(cmd, a, func() (*cli.Preview, error) {
		return a.PreviewLayout(ctx, name)
	})
}

func previewText(a *cli.App) model.PreviewFunc {
	return func(name string) (string, error) {
		p, err := a.PreviewLayout(a.Ctx(), name)
		if err != nil {
			return "", err
		}
		defer func() { _ = p.Window.Shutdown(a.Ctx()) }()
		return p.Render(a.Theme), nil
	}
}
