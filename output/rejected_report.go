package output

import (
	"encoding/json"
	"io"

	sarif "github.com/owenrumney/go-sarif/v2/sarif"
)

// RejectedProcedure is one procedure the numbering pipeline refused to
// instrument, along with the reason from its profgraph.RejectedError.
type RejectedProcedure struct {
	File       string
	Function   string
	Reason     string
	LineNumber int
}

// SARIFReport writes the rejected procedures collected during an
// instrument run as a SARIF 2.1.0 log, so CI can surface them the same
// way it already surfaces static analysis findings.
func SARIFReport(w io.Writer, rejected []RejectedProcedure) error {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return err
	}

	run := sarif.NewRunWithInformationURI("blpp-llvm", "https://github.com/arunpublic/BLPP-LLVM")
	run.AddRule("BLPP001").
		WithDescription("Procedure rejected by path numbering").
		WithName("rejected-procedure").
		WithHelpURI("https://github.com/arunpublic/BLPP-LLVM").
		WithDefaultConfiguration(sarif.NewReportingConfiguration().WithLevel("warning"))

	for _, r := range rejected {
		result := run.CreateResultForRule("BLPP001").
			WithMessage(sarif.NewTextMessage(r.Function + ": " + r.Reason))

		line := r.LineNumber
		if line <= 0 {
			line = 1
		}
		region := sarif.NewRegion().WithStartLine(line)
		location := sarif.NewLocation().
			WithPhysicalLocation(
				sarif.NewPhysicalLocation().
					WithArtifactLocation(sarif.NewArtifactLocation().WithUri(r.File)).
					WithRegion(region),
			)
		result.AddLocation(location)
	}

	report.AddRun(run)

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// JSONReport writes the rejected procedures as a plain JSON array, for
// callers that want machine-readable output without the SARIF envelope.
func JSONReport(w io.Writer, rejected []RejectedProcedure) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(rejected)
}
