package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var profilesJSON bool

var profilesCmd = &cobra.Command{
	Use:   "profiles",
	Short: "List configured profiles",
	Long: `List the profiles of the [profiles] config section, default profile first.
Layouts that name an unknown profile fall back to the default one.`,
	Args: cobra.NoArgs,
	RunE: runProfiles,
}

var profilesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfiles,
}

func runProfiles(cmd *cobra.Command, _ []string) error {
	a, err := requireApp()
	if err != nil {
		return err
	}
	names, err := a.LayoutsUC.Profiles(a.Ctx())
	if err != nil {
		return err
	}
	if profilesJSON {
		return writeJSON(cmd, names)
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, a.Theme.RenderNameList("Profiles", names, a.Config().DefaultProfile))
	for _, name := range names {
		p := a.Config().Profiles[name]
		if p.Command == "" && p.Directory == "" {
			continue
		}
		fmt.Fprintln(out, a.Theme.RenderKeyValue(name, describeProfile(p.Command, p.Directory)))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(profilesCmd)
	profilesCmd.AddCommand(profilesListCmd)
	profilesCmd.PersistentFlags().BoolVar(&profilesJSON, "json", false, "output as JSON")
}

func describeProfile(command, directory string) string {
	switch {
	case command == "":
		return "in " + directory
	case directory == "":
		return "$ " + command
	default:
		return fmt.Sprintf("$ %s in %s", command, directory)
	}
}
