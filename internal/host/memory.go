package host

import "github.com/ayx-builders/vader-sentiment/internal/recordio"

// Message is one captured host message.
type Message struct {
	ToolID   int
	Severity Severity
	Text     string
}

// MemoryHost captures messages and progress reports in memory.
// All methods are called from the single engine-driven goroutine, so no
// locking is needed.
type MemoryHost struct {
	Messages []Message
	Progress []float64
}

func NewMemoryHost() *MemoryHost {
	return &MemoryHost{}
}

func (h *MemoryHost) OutputMessage(toolID int, sev Severity, message string) {
	h.Messages = append(h.Messages, Message{ToolID: toolID, Severity: sev, Text: message})
}

func (h *MemoryHost) UpdateProgress(_ int, fraction float64) {
	h.Progress = append(h.Progress, fraction)
}

// Errors returns the text of every error-severity message, in order.
func (h *MemoryHost) Errors() []string {
	var out []string
	for _, m := range h.Messages {
		if m.Severity == SeverityError {
			out = append(out, m.Text)
		}
	}
	return out
}

// MemoryAnchor collects pushed rows in memory. RejectAfter can be set to make
// PushRecord refuse rows once that many have been accepted, to exercise the
// downstream-rejection path.
type MemoryAnchor struct {
	Schema      *recordio.Schema
	Rows        []recordio.Row
	Progress    []float64
	DoneCalled  bool
	RejectAfter int

	closed bool
}

func NewMemoryAnchor() *MemoryAnchor {
	return &MemoryAnchor{RejectAfter: -1}
}

func (a *MemoryAnchor) Open(schema *recordio.Schema) error {
	a.Schema = schema
	return nil
}

func (a *MemoryAnchor) PushRecord(row recordio.Row) bool {
	if a.RejectAfter >= 0 && len(a.Rows) >= a.RejectAfter {
		return false
	}
	a.Rows = append(a.Rows, row)
	return true
}

func (a *MemoryAnchor) UpdateProgress(fraction float64) {
	a.Progress = append(a.Progress, fraction)
}

func (a *MemoryAnchor) Done() {
	a.DoneCalled = true
}

func (a *MemoryAnchor) Close() {
	a.closed = true
}

func (a *MemoryAnchor) Closed() bool {
	return a.closed
}
