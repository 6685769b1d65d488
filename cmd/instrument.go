package cmd

import (
	"context"
	"fmt"
	"hash/fnv"
	"os"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/spf13/cobra"

	"github.com/arunpublic/BLPP-LLVM/analytics"
	"github.com/arunpublic/BLPP-LLVM/emit"
	"github.com/arunpublic/BLPP-LLVM/frontend/gocfg"
	"github.com/arunpublic/BLPP-LLVM/graph/profgraph"
	"github.com/arunpublic/BLPP-LLVM/internal/graphcache"
	"github.com/arunpublic/BLPP-LLVM/output"
)

var instrumentCmd = &cobra.Command{
	Use:   "instrument <file.go>",
	Short: "Instrument every function in a Go source file for path profiling",
	Long: `instrument parses a Go source file, builds a control flow graph per
function, assigns Ball-Larus path ids, and emits the instrumentation plan
as pseudo-IR. Procedures the numbering pipeline rejects (unreachable
blocks, malformed control flow) are reported separately instead of
aborting the whole file.`,
	Args: cobra.ExactArgs(1),
	RunE: runInstrument,
}

// numberingCache holds numbered graphs across repeated instrument
// invocations within the same process (relevant to the --watch-style
// callers a long-running build daemon would use; a one-shot CLI run
// still benefits when a file declares the same procedure body more
// than once, e.g. build-tag variants).
var numberingCache, _ = graphcache.New(256)

func init() {
	instrumentCmd.Flags().String("out", "", "Write instrumentation IR to this file instead of stdout")
	instrumentCmd.Flags().String("format", "text", "Instrumentation output format: text or json")
	instrumentCmd.Flags().String("report", "", "Write rejected-procedure report to this file")
	instrumentCmd.Flags().String("report-format", "json", "Rejected-procedure report format: json or sarif")
	rootCmd.AddCommand(instrumentCmd)
}

func runInstrument(cmd *cobra.Command, args []string) error {
	path := args[0]
	outPath, _ := cmd.Flags().GetString("out")
	format, _ := cmd.Flags().GetString("format")
	reportPath, _ := cmd.Flags().GetString("report")
	reportFormat, _ := cmd.Flags().GetString("report-format")

	analytics.ReportEvent(analytics.InstrumentStarted)

	src, err := os.ReadFile(path)
	if err != nil {
		analytics.ReportEvent(analytics.InstrumentFailed)
		return fmt.Errorf("instrument: read %s: %w", path, err)
	}

	decls, err := parseAllFunctions(cmd.Context(), src)
	if err != nil {
		analytics.ReportEvent(analytics.InstrumentFailed)
		return fmt.Errorf("instrument: %w", err)
	}

	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("instrument: create %s: %w", outPath, err)
		}
		defer f.Close()
		out = f
	}

	var rejected []output.RejectedProcedure
	builder := emit.NewTextIRBuilder(out)
	var jsonGraphs []*profgraph.Graph
	for procID, decl := range decls {
		cfg, err := gocfg.Build(decl, src)
		if err != nil {
			return fmt.Errorf("instrument: %w", err)
		}

		key := graphcache.Key{File: path, Function: cfg.Name, BodyDigest: bodyDigest(decl, src)}
		g, cached := numberingCache.Get(key)
		if !cached {
			g, err = profgraph.Pipeline(cfg)
			if err != nil {
				rejected = append(rejected, output.RejectedProcedure{
					File:       path,
					Function:   cfg.Name,
					Reason:     err.Error(),
					LineNumber: int(decl.StartPoint().Row) + 1,
				})
				continue
			}
			numberingCache.Put(key, g)
		}
		g.ProcID = uint32(procID)

		if format == "json" {
			jsonGraphs = append(jsonGraphs, g)
			continue
		}
		if err := emit.Instrument(g, builder); err != nil {
			return fmt.Errorf("instrument: %w", err)
		}
	}

	if format == "json" {
		for _, g := range jsonGraphs {
			data, err := emit.GraphToJSON(g)
			if err != nil {
				return fmt.Errorf("instrument: render json: %w", err)
			}
			if _, err := out.Write(append(data, '\n')); err != nil {
				return fmt.Errorf("instrument: write json: %w", err)
			}
		}
	}

	if len(rejected) > 0 {
		analytics.ReportEvent(analytics.InstrumentRejected)
	}
	if reportPath != "" && len(rejected) > 0 {
		rf, err := os.Create(reportPath)
		if err != nil {
			return fmt.Errorf("instrument: create report %s: %w", reportPath, err)
		}
		defer rf.Close()
		switch reportFormat {
		case "sarif":
			err = output.SARIFReport(rf, rejected)
		default:
			err = output.JSONReport(rf, rejected)
		}
		if err != nil {
			return fmt.Errorf("instrument: write report: %w", err)
		}
	}

	analytics.ReportEvent(analytics.InstrumentCompleted)
	return nil
}

func bodyDigest(decl *sitter.Node, src []byte) uint64 {
	h := fnv.New64a()
	h.Write(src[decl.StartByte():decl.EndByte()])
	return h.Sum64()
}

// parseAllFunctions returns every function_declaration/method_declaration
// in src's top-level declaration list, in source order.
func parseAllFunctions(ctx context.Context, src []byte) ([]*sitter.Node, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(golang.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse source: %w", err)
	}
	defer tree.Close()

	root := tree.RootNode()
	var decls []*sitter.Node
	for i := 0; i < int(root.NamedChildCount()); i++ {
		child := root.NamedChild(i)
		switch child.Type() {
		case "function_declaration", "method_declaration":
			decls = append(decls, child)
		}
	}
	return decls, nil
}
