package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arunpublic/BLPP-LLVM/analytics"
	"github.com/arunpublic/BLPP-LLVM/frontend/gocfg"
	"github.com/arunpublic/BLPP-LLVM/graph/profgraph"
)

var regenCmd = &cobra.Command{
	Use:   "regen <file.go> <path-id>",
	Short: "Regenerate the basic block sequence for a numbered path",
	Long: `regen parses a Go source file (its first function or method
declaration), runs the numbering pipeline, and reconstructs the block
sequence a given path id corresponds to. Useful for turning a hot path id
out of a captured profile back into readable source blocks.`,
	Args: cobra.ExactArgs(2),
	RunE: runRegen,
}

func init() {
	rootCmd.AddCommand(regenCmd)
}

func runRegen(cmd *cobra.Command, args []string) error {
	path := args[0]
	pathID, err := strconv.ParseUint(args[1], 10, 64)
	if err != nil {
		return fmt.Errorf("regen: invalid path id %q: %w", args[1], err)
	}

	analytics.ReportEvent(analytics.RegenRequested)

	src, err := os.ReadFile(path)
	if err != nil {
		analytics.ReportEvent(analytics.RegenFailed)
		return fmt.Errorf("regen: read %s: %w", path, err)
	}

	cfg, err := gocfg.ParseFunction(cmd.Context(), src)
	if err != nil {
		analytics.ReportEvent(analytics.RegenFailed)
		return fmt.Errorf("regen: %w", err)
	}

	g, err := profgraph.Pipeline(cfg)
	if err != nil {
		analytics.ReportEvent(analytics.RegenFailed)
		return fmt.Errorf("regen: %w", err)
	}

	blocks, err := g.RegeneratePath(pathID)
	if err != nil {
		analytics.ReportEvent(analytics.RegenFailed)
		return fmt.Errorf("regen: %w", err)
	}

	labels := make([]string, len(blocks))
	for i, b := range blocks {
		labels[i] = fmt.Sprint(b)
	}
	fmt.Println(strings.Join(labels, " -> "))
	return nil
}
