package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSARIFReport_EncodesEachRejection(t *testing.T) {
	var buf bytes.Buffer
	err := SARIFReport(&buf, []RejectedProcedure{
		{File: "pkg/foo.go", Function: "Foo", Reason: "unreachable predecessor", LineNumber: 12},
	})
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Foo: unreachable predecessor")
	assert.Contains(t, out, "pkg/foo.go")
}

func TestSARIFReport_EmptyListStillProducesValidRun(t *testing.T) {
	var buf bytes.Buffer
	err := SARIFReport(&buf, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\"version\"")
}

func TestJSONReport_EncodesAsArray(t *testing.T) {
	var buf bytes.Buffer
	err := JSONReport(&buf, []RejectedProcedure{
		{File: "a.go", Function: "A", Reason: "cycle with no dominance info"},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\"Function\": \"A\"")
}
