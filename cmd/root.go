// Package cmd provides the root command and CLI setup for docweld.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docweld/docweld/internal/adapter"
	"github.com/docweld/docweld/internal/controller"
	"github.com/docweld/docweld/internal/domain"
	m "github.com/docweld/docweld/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var ui controller.UI
var workflow domain.Workflow

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	workflow = domain.NewWorkflow(fsAdapter, func(res m.FileResult) {
		ui.DisplayFileResult(res)
	})
}

var dryRunFlag bool
var checkFlag bool
var parallelFlag int
var rootFlag string
var excludeFlags []string
var extFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docweld [paths...]",
		Short: "Keep doc comments in sync with markdown files",
		Long: `Docweld rewrites marked doc-comment blocks in source files from the
markdown files they reference, so code examples can live in lint-checkable
markdown while staying visible as inline documentation.

A block is delimited by a start and an end marker on their own comment lines:

  // #[include_doc("../README.md", start)]
  /// ...this region is rewritten from ../README.md...
  // #[include_doc("../README.md", end)]

Start and end accept a line number (start(2)), an offset from the end of the
file (end(-1)), or an exact line text (start("# Title")). The enclosing-item
form #![include_doc(...)] renders with the //! prefix instead of ///.

Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./a ./b        scan multiple directories`,
		RunE: func(cmd *cobra.Command, args []string) error {
			syncArgs := domain.SyncArgs{
				Paths:   parsePaths(args),
				Root:    m.Path(rootFlag),
				Exclude: excludeFlags,
				Ext:     extFlag,
				DryRun:  dryRunFlag || checkFlag,
				Threads: parallelFlag,
			}

			files, err := workflow.Discover(syncArgs)
			if err != nil {
				return err
			}

			syncArgs.Files = files

			if err := ui.Start(len(files)); err != nil {
				return err
			}
			defer ui.Close()

			results, err := workflow.Sync(cmd.Context(), syncArgs)
			if err != nil {
				return err
			}

			if err := ui.DisplaySummary(results); err != nil {
				return err
			}

			sum := m.Summarize(results)
			if sum.Failed > 0 {
				return fmt.Errorf("%d file(s) failed to sync", sum.Failed)
			}

			if checkFlag && sum.Changed > 0 {
				return fmt.Errorf("%d file(s) out of date", sum.Changed)
			}

			return nil
		},
	}
	cmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "report what would change without writing")
	cmd.Flags().BoolVar(&checkFlag, "check", false, "like --dry-run, but fail when a file is out of date")
	cmd.Flags().IntVarP(&parallelFlag, "parallel", "p", 1, "number of parallel workers across files")
	cmd.Flags().StringVar(&rootFlag, "root", "", "directory targets must stay under (default: working directory)")
	cmd.Flags().StringArrayVarP(&excludeFlags, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().StringVar(&extFlag, "ext", ".rs", "source file extension to scan")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	if len(args) == 0 {
		return []m.Path{"./..."}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
