package emit

import (
	json "github.com/goccy/go-json"

	"github.com/arunpublic/BLPP-LLVM/graph/profgraph"
)

// AnnotatedEdge is the JSON-facing view of one edge's instrumentation
// plan, used by the instrument CLI subcommand's --format json output.
type AnnotatedEdge struct {
	Tail       string `json:"tail"`
	Head       string `json:"head"`
	Annotation string `json:"annotation"`
	Increment  int64  `json:"increment,omitempty"`
	Reset      int64  `json:"reset,omitempty"`
	IsChord    bool   `json:"is_chord"`
}

// GraphToJSON renders g's annotated edges as JSON. It uses
// github.com/goccy/go-json rather than encoding/json: every edge in a
// procedure's graph goes through this path once per instrument
// invocation, and the pure-Go faster encoder matters more here than it
// would for the handful of rows output.JSONReport serializes.
func GraphToJSON(g *profgraph.Graph) ([]byte, error) {
	edges := make([]AnnotatedEdge, 0, len(g.Edges))
	for _, e := range g.Edges {
		if e.IsClosure {
			continue
		}
		edges = append(edges, AnnotatedEdge{
			Tail:       blockLabel(e.Tail.Block),
			Head:       blockLabel(e.Head.Block),
			Annotation: e.Annotation.String(),
			Increment:  e.Increment,
			Reset:      e.Reset,
			IsChord:    e.IsChord,
		})
	}
	return json.MarshalIndent(edges, "", "  ")
}
