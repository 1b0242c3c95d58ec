package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/bnema/dumbterm/internal/application/port"
	"github.com/bnema/dumbterm/internal/cli"
	"github.com/bnema/dumbterm/internal/domain/entity"
	"github.com/bnema/dumbterm/internal/infrastructure/layoutfile"
)

var (
	layoutsJSON  bool
	importName   string
	exportFormat string
	scaffoldOpts cli.ScaffoldOptions
)

var layoutsCmd = &cobra.Command{
	Use:     "layouts",
	Aliases: []string{"layout"},
	Short:   "Manage stored layouts",
	Long:    `List, inspect, create, import and export the named layouts kept in the layout database.`,
}

var layoutsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored layouts",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		names, err := a.LayoutsUC.List(a.Ctx())
		if err != nil {
			return err
		}
		if layoutsJSON {
			return writeJSON(cmd, names)
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.Theme.RenderNameList("Layouts", names, a.Config().Layout.DefaultLayout))
		return nil
	},
}

var layoutsShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Build a layout and print its tree",
	Long: `Build a stored layout in a headless window and print the resulting tree.
Without a name the configured default layout is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		name := ""
		if len(args) == 1 {
			name = args[0]
		}
		return printPreview(cmd, a, func() (*cli.Preview, error) {
			return a.PreviewLayout(a.Ctx(), name)
		})
	},
}

var layoutsNewCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a grid layout",
	Long: `Create a layout of one or more tabs, each split into a grid of terminals.

Examples:
  dumbterm layouts new dev --columns 2 --rows 2
  dumbterm layouts new ops --tabs 3 --profile ops`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		if err := a.Scaffold(a.Ctx(), args[0], scaffoldOpts); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.Theme.RenderSuccess("saved layout %q", args[0]))
		return nil
	},
}

var layoutsDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a stored layout",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		if err := a.LayoutsUC.Delete(a.Ctx(), args[0]); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.Theme.RenderSuccess("deleted layout %q", args[0]))
		return nil
	},
}

var layoutsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a layout from a JSON, TOML or YAML file",
	Long: `Import a layout file. The file is built once before it is stored, so a
layout that cannot be restored is rejected. The stored name is, in order,
--name, the name inside the file, or the file name without its extension.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		ctx := a.Ctx()
		desc, err := layoutfile.ReadFile(args[0])
		if err != nil {
			return err
		}
		name := importedName(importName, desc, args[0])

		p, err := a.PreviewDescription(ctx, desc)
		if err != nil {
			return fmt.Errorf("invalid layout: %w", err)
		}
		_ = p.Window.Shutdown(ctx)

		if err := a.Store.SaveLayout(ctx, name, desc); err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if warn := a.Theme.RenderWarnings("substitutions", p.Report.Strings()); warn != "" {
			fmt.Fprintln(out, warn)
		}
		fmt.Fprintln(out, a.Theme.RenderSuccess("imported layout %q", name))
		return nil
	},
}

var layoutsExportCmd = &cobra.Command{
	Use:   "export <name> <file>",
	Short: "Export a stored layout to a file",
	Long: `Write a stored layout to a file. The format follows the file extension
unless --format is given. Use - as file to write to stdout.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		desc, err := a.Store.GetLayout(a.Ctx(), args[0])
		if err != nil {
			return err
		}
		path := args[1]
		format, err := exportFormatFor(path)
		if err != nil {
			return err
		}
		data, err := layoutfile.Encode(desc, format)
		if err != nil {
			return err
		}
		if path == "-" {
			_, err = cmd.OutOrStdout().Write(data)
			return err
		}
		if err := os.WriteFile(path, data, filePerm); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.Theme.RenderSuccess("exported %q to %s", args[0], path))
		return nil
	},
}

var layoutsValidateCmd = &cobra.Command{
	Use:   "validate <file|name>",
	Short: "Check that a layout file or stored layout can be restored",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := requireApp()
		if err != nil {
			return err
		}
		ctx := a.Ctx()
		target := args[0]
		p, err := func() (*cli.Preview, error) {
			if _, statErr := os.Stat(target); statErr == nil {
				desc, err := layoutfile.ReadFile(target)
				if err != nil {
					return nil, err
				}
				return a.PreviewDescription(ctx, desc)
			}
			return a.PreviewLayout(ctx, target)
		}()
		if err != nil {
			return err
		}
		_ = p.Window.Shutdown(ctx)

		out := cmd.OutOrStdout()
		if warn := a.Theme.RenderWarnings("substitutions", p.Report.Strings()); warn != "" {
			fmt.Fprintln(out, warn)
		}
		fmt.Fprintln(out, a.Theme.RenderSuccess("%s: %d terminals", target, len(entity.LeafIDs(p.Window.Root()))))
		return nil
	},
}

var layoutsSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of layout files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data, err := layoutfile.Schema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	},
}

func init() {
	rootCmd.AddCommand(layoutsCmd)
	layoutsCmd.AddCommand(layoutsListCmd, layoutsShowCmd, layoutsNewCmd, layoutsDeleteCmd,
		layoutsImportCmd, layoutsExportCmd, layoutsValidateCmd, layoutsSchemaCmd)

	layoutsListCmd.Flags().BoolVar(&layoutsJSON, "json", false, "output as JSON")

	layoutsNewCmd.Flags().IntVar(&scaffoldOpts.Columns, "columns", 1, "terminals side by side")
	layoutsNewCmd.Flags().IntVar(&scaffoldOpts.Rows, "rows", 1, "terminals stacked in each column")
	layoutsNewCmd.Flags().IntVar(&scaffoldOpts.Tabs, "tabs", 1, "number of tabs")
	layoutsNewCmd.Flags().StringVar(&scaffoldOpts.Profile, "profile", "", "profile of every terminal")
	layoutsNewCmd.Flags().StringVar(&scaffoldOpts.Title, "title", "", "window title")

	layoutsImportCmd.Flags().StringVar(&importName, "name", "", "store under this name")
	layoutsExportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "json, toml or yaml")
}

func printPreview(cmd *cobra.Command, a *cli.App, build func() (*cli.Preview, error)) error {
	p, err := build()
	if err != nil {
		if errors.Is(err, port.ErrLayoutNotFound) {
			return fmt.Errorf("%w (see 'dumbterm layouts list')", err)
		}
		return err
	}
	defer func() { _ = p.Window.Shutdown(a.Ctx()) }()
	fmt.Fprintln(cmd.OutOrStdout(), p.Render(a.Theme))
	return nil
}

func exportFormatFor(path string) (layoutfile.Format, error) {
	switch {
	case exportFormat != "":
		return layoutfile.ParseFormat(exportFormat)
	case path == "-":
		return layoutfile.FormatJSON, nil
	default:
		return layoutfile.FormatFromPath(path)
	}
}

// importedName picks the name an imported layout is stored under.
func importedName(flag string, desc *entity.LayoutDescription, path string) string {
	if name := strings.TrimSpace(flag); name != "" {
		return name
	}
	if name := strings.TrimSpace(desc.Name); name != "" {
		return name
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
