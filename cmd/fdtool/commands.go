package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/muurk/fdtool/internal/browse"
	"github.com/muurk/fdtool/internal/config"
	"github.com/muurk/fdtool/internal/fdt"
	"github.com/muurk/fdtool/internal/logging"
	"github.com/muurk/fdtool/internal/render"
)

// Output flags; empty values fall back to the user's config file.
var (
	outputFormat string
	colorMode    string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&outputFormat, "format", "", "Output format (text, json)")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", "Color output (auto, always, never)")

	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(headerCmd)
	rootCmd.AddCommand(lsCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(browseCmd)
}

// prefs resolves output settings: flags win, then the config file, then
// built-in defaults.
func prefs() *config.OutputPrefs {
	out := config.NewRegistry().Output
	if reg, err := config.LoadDefault(); err == nil {
		out = reg.Output
	} else {
		logging.Warn("config unreadable, using defaults", zap.Error(err))
	}
	if outputFormat != "" {
		out.Format = outputFormat
	}
	if colorMode != "" {
		out.Color = colorMode
	}
	return out
}

func renderOptions(p *config.OutputPrefs) render.Options {
	return render.Options{
		Color:         render.ColorEnabled(p.Color),
		MaxValueBytes: p.MaxValueBytes,
	}
}

// loadTree reads and parses a blob, records it in the recent-file history,
// and logs parse statistics.
func loadTree(path string) (*fdt.Tree, []byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	logging.LogBlob(path, buf)

	start := time.Now()
	tree, err := fdt.Parse(buf)
	if err != nil {
		var oe *fdt.OffsetError
		if errors.As(err, &oe) && oe.Offset < len(buf) {
			logging.LogRawBytes("bytes at failure offset", buf[oe.Offset:])
		}
		return nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	nodes, props := 0, 0
	countTree(tree.Root, &nodes, &props)
	logging.Debug("parsed device tree",
		zap.String("path", path),
		zap.Uint32("version", tree.Header.Version),
		zap.Int("nodes", nodes),
		zap.Int("properties", props),
		zap.Duration("elapsed", time.Since(start)),
	)

	// Recent-file history is best effort; never fail a command over it.
	if reg, err := config.LoadDefault(); err == nil {
		reg.Touch(path, time.Now())
		if err := reg.SaveDefault(); err != nil {
			logging.Warn("could not update recent files", zap.Error(err))
		}
	}

	return tree, buf, nil
}

func countTree(n *fdt.Node, nodes, props *int) {
	*nodes++
	*props += len(n.Properties)
	for _, c := range n.Children {
		countTree(c, nodes, props)
	}
}

var dumpCmd = &cobra.Command{
	Use:   "dump FILE",
	Short: "Decode a blob and print the whole tree",
	Long: `Decode a device tree blob and print every node and property.

Text output resembles decompiled .dts source; property values are shown as
strings, 32-bit cell groups, or hex bytes, whichever reads best. JSON output
carries all views of each value for scripting.`,
	Example: `  # Print the tree
  fdtool dump board.dtb

  # JSON for scripting
  fdtool dump board.dtb --format json | jq .root.name`,
	Args: cobra.ExactArgs(1),
	RunE: runDump,
}

func runDump(cmd *cobra.Command, args []string) error {
	tree, _, err := loadTree(args[0])
	if err != nil {
		return err
	}

	p := prefs()
	if p.Format == "json" {
		data, err := render.TreeJSON(tree)
		if err != nil {
			return fmt.Errorf("failed to encode tree: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	render.Tree(os.Stdout, tree, renderOptions(p))
	return nil
}

var headerCmd = &cobra.Command{
	Use:   "header FILE",
	Short: "Show the blob header",
	Long: `Show every header field of a device tree blob, including the
version-gated tail fields (boot_cpuid_phys, size_dt_strings,
size_dt_struct). Fields the blob's version does not carry read as zero.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, _, err := loadTree(args[0])
		if err != nil {
			return err
		}
		render.Header(os.Stdout, tree.Header, renderOptions(prefs()))
		return nil
	},
}

var lsCmd = &cobra.Command{
	Use:   "ls FILE [PATH]",
	Short: "List one node",
	Long: `List the properties and children of a single node, addressed by
slash-separated path. Unit addresses may be elided: "/cpus/cpu" finds
"/cpus/cpu@0". Without a path, lists the root node.`,
	Example: `  fdtool ls board.dtb
  fdtool ls board.dtb /cpus/cpu@0`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, _, err := loadTree(args[0])
		if err != nil {
			return err
		}

		path := "/"
		if len(args) == 2 {
			path = args[1]
		}
		node := tree.NodeAt(path)
		if node == nil {
			return fmt.Errorf("no node at %s", path)
		}

		opts := renderOptions(prefs())
		render.Node(os.Stdout, node, opts)
		return nil
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify FILE",
	Short: "Check a blob for structural problems",
	Long: `Run structural checks beyond what parsing requires: totalsize
against the real file size, block offsets within bounds, version ordering,
the trailing END tag, and property name offsets against the declared
strings-block size on version-3+ blobs.

Exits non-zero when problems are found.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, buf, err := loadTree(args[0])
		if err != nil {
			return err
		}

		probs := fdt.Verify(buf, tree)
		if len(probs) == 0 {
			fmt.Println("ok")
			return nil
		}

		render.Problems(os.Stdout, probs, renderOptions(prefs()))
		return fmt.Errorf("%d problem(s) found", len(probs))
	},
}

var browseCmd = &cobra.Command{
	Use:   "browse FILE",
	Short: "Explore a tree interactively",
	Long: `Open an interactive browser over the decoded tree: scroll and
expand nodes, inspect properties, and search node and property names.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, _, err := loadTree(args[0])
		if err != nil {
			return err
		}

		program := tea.NewProgram(browse.New(tree, args[0]), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("browser failed: %w", err)
		}
		return nil
	},
}
