package cmd

import (
	"github.com/spf13/cobra"

	"github.com/docweld/docweld/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()
var listExcludeFlags []string
var listExtFlag string

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List source files and marker pair counts",
		Long: `List every discovered source file with the number of include marker
pairs it contains and whether its doc blocks are in sync. Nothing is
written.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := workflow.Sync(cmd.Context(), domain.SyncArgs{
				Paths:   parsePaths(args),
				Exclude: listExcludeFlags,
				Ext:     listExtFlag,
				DryRun:  true,
			})
			if err != nil {
				return err
			}

			return ui.DisplayList(results)
		},
	}
	cmd.Flags().StringArrayVarP(&listExcludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().StringVar(&listExtFlag, "ext", ".rs", "source file extension to scan")

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
