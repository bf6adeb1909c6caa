// Fdtool is an inspector for Flattened Device Tree (FDT/DTB) blobs.
//
// It decodes the binary hardware description used by boot loaders and
// kernels into a tree of nodes and properties, and renders it for
// inspection as text or JSON, with an interactive browser for larger
// trees.
//
// Usage:
//
//	fdtool [command] FILE [flags]
//
// Running with just a file argument dumps the whole tree.
// See 'fdtool --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/muurk/fdtool/internal/logging"
	"github.com/muurk/fdtool/internal/version"
)

func main() {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fdtool",
	Short: "Flattened Device Tree inspector",
	Long: `An inspector for Flattened Device Tree (DTB) blobs.

Decodes the binary hardware description used by boot loaders and kernels
and renders it for inspection: full tree dumps, header details, single-node
listings, structural verification, and an interactive browser.

Running with just a file argument dumps the whole tree.`,
	Version: version.Version,
	Args:    cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default behavior: dump the tree when given a bare file argument
		if len(args) == 1 {
			return runDump(cmd, args)
		}
		return cmd.Help()
	},
}

func init() {
	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fdtool %s (commit: %s)\n", version.Version, version.Commit)
	},
}
