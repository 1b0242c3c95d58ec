package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbterm/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		info := buildInfo
		if info.Version == "" {
			info.Version = "dev"
		}
		if info.GoVersion == "" {
			info.GoVersion = runtime.Version()
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "dumbterm %s\n", info.Version)
		fmt.Fprintf(out, "  commit:  %s\n", info.Commit)
		fmt.Fprintf(out, "  built:   %s\n", info.BuildDate)
		fmt.Fprintf(out, "  go:      %s\n", info.GoVersion)
		fmt.Fprintf(out, "  source:  %s\n", build.RepoURL())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
