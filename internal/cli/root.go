// Package cli implements the dxfhatch command tree.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	dxf "github.com/bert/libdxf-sub001"
)

// version is stamped by the release build.
var version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "dxfhatch",
	Short: "Inspect and rewrite HATCH entities in DXF files",
	Long: `dxfhatch reads the tagged-record stream of a DXF file and works on
its HATCH entities: summarizing boundary paths and fill patterns, or
re-emitting the entities at a different format revision.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			dxf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log recoverable diagnostics to stderr")
}

// Execute runs the command tree.
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("dxfhatch version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
