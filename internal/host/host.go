// Package host defines the collaborator contracts the plugin is driven by:
// the pipeline engine it reports to and the output anchor it emits rows
// through. In-memory implementations are provided for embedding and tests.
package host

import "github.com/ayx-builders/vader-sentiment/internal/recordio"

// Severity classifies messages sent back to the engine.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Host is the engine-side surface the plugin reports to.
type Host interface {
	// OutputMessage delivers a user-visible message for the given tool.
	OutputMessage(toolID int, sev Severity, message string)
	// UpdateProgress reports the tool's own progress as a fraction in [0, 1].
	UpdateProgress(toolID int, fraction float64)
}

// OutputAnchor is the downstream connection a plugin emits rows through.
// The lifecycle is Open once, any number of PushRecord/UpdateProgress calls,
// Done, then Close. PushRecord returning false means the downstream consumer
// cannot accept more rows; the caller must treat that as terminal.
type OutputAnchor interface {
	Open(schema *recordio.Schema) error
	PushRecord(row recordio.Row) bool
	UpdateProgress(fraction float64)
	Done()
	Close()
	Closed() bool
}
