// Package runner drives the plugin outside a host engine: it feeds CSV rows
// through the full callback lifecycle and writes the augmented rows back out
// as CSV.
package runner

import (
	"bytes"
	"encoding/csv"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/ayx-builders/vader-sentiment/internal/host"
	"github.com/ayx-builders/vader-sentiment/internal/logging"
	"github.com/ayx-builders/vader-sentiment/internal/plugin"
	"github.com/ayx-builders/vader-sentiment/internal/recordio"
	"github.com/ayx-builders/vader-sentiment/internal/sentiment"
)

var ErrEmptyInput = errors.New("input has no header row")

const runnerToolID = 1

// FieldConfigXML builds a host-style configuration document selecting the
// given field.
func FieldConfigXML(field string) string {
	var escaped bytes.Buffer
	_ = xml.EscapeText(&escaped, []byte(field))
	return fmt.Sprintf("<Configuration><FieldSelect>%s</FieldSelect></Configuration>", escaped.String())
}

// Option configures a CSVRunner.
type Option func(*CSVRunner)

// WithAnalyzer replaces the default VADER analyzer.
func WithAnalyzer(a sentiment.Analyzer) Option {
	return func(r *CSVRunner) { r.analyzer = a }
}

// WithClock replaces the wall clock used for throughput reporting.
func WithClock(c clockwork.Clock) Option {
	return func(r *CSVRunner) { r.clock = c }
}

// CSVRunner runs one stream: CSV in, augmented CSV out. The header row
// becomes the input schema (all string fields); an empty cell is a null
// value, and unset output fields render empty.
type CSVRunner struct {
	analyzer sentiment.Analyzer
	clock    clockwork.Clock
	log      *slog.Logger
}

func NewCSVRunner(opts ...Option) *CSVRunner {
	r := &CSVRunner{
		analyzer: sentiment.NewVADERAnalyzer(),
		clock:    clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = logging.WithRun(uuid.NewString())
	return r
}

// Run drives the plugin with the given raw XML configuration over the CSV
// stream. Configuration and connectivity errors surface both through the
// returned error and as host messages (logged).
func (r *CSVRunner) Run(in io.Reader, out io.Writer, configXML string) error {
	records, err := csv.NewReader(in).ReadAll()
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	if len(records) == 0 {
		return ErrEmptyInput
	}

	fields := make([]recordio.Field, len(records[0]))
	for i, name := range records[0] {
		fields[i] = recordio.Field{Name: name, Type: recordio.String}
	}
	schema, err := recordio.NewSchema(fields...)
	if err != nil {
		return fmt.Errorf("build input schema: %w", err)
	}

	anchor := &csvAnchor{w: csv.NewWriter(out)}
	p := plugin.New(runnerToolID, &logHost{log: r.log}, anchor, r.analyzer)

	if err := p.Init(configXML); err != nil {
		return fmt.Errorf("configure plugin: %w", err)
	}
	ii, err := p.AddIncomingConnection("Input", "#1")
	if err != nil {
		return err
	}
	if err := ii.Init(schema); err != nil {
		return fmt.Errorf("negotiate schema: %w", err)
	}

	start := r.clock.Now()
	rows := records[1:]
	for i, cells := range rows {
		row := make(recordio.Row, len(cells))
		for j, cell := range cells {
			if cell != "" {
				row[j] = cell
			}
		}
		if !ii.PushRecord(row) {
			ii.Close()
			p.Close(true)
			return fmt.Errorf("row %d: %w", i+1, plugin.ErrDownstreamClosed)
		}
		ii.UpdateProgress(float64(i+1) / float64(len(rows)))
	}
	ii.Close()
	p.Close(false)

	if anchor.writeErr != nil {
		return fmt.Errorf("write output: %w", anchor.writeErr)
	}

	elapsed := r.clock.Since(start)
	r.log.Info("run complete",
		"rows", len(rows),
		"elapsed", elapsed,
	)
	return nil
}

// logHost adapts host messages and progress onto the structured logger.
type logHost struct {
	log *slog.Logger
}

func (h *logHost) OutputMessage(toolID int, sev host.Severity, message string) {
	if sev == host.SeverityError {
		h.log.Error(message, "tool_id", toolID)
		return
	}
	h.log.Info(message, "tool_id", toolID)
}

func (h *logHost) UpdateProgress(toolID int, fraction float64) {
	h.log.Debug("progress", "tool_id", toolID, "fraction", fraction)
}

// csvAnchor writes pushed rows as CSV, header first.
type csvAnchor struct {
	w        *csv.Writer
	schema   *recordio.Schema
	closed   bool
	writeErr error
}

func (a *csvAnchor) Open(schema *recordio.Schema) error {
	a.schema = schema
	return a.w.Write(schema.FieldNames())
}

func (a *csvAnchor) PushRecord(row recordio.Row) bool {
	cells := make([]string, len(row))
	for i, v := range row {
		switch t := v.(type) {
		case nil:
			cells[i] = ""
		case string:
			cells[i] = t
		case float64:
			cells[i] = strconv.FormatFloat(t, 'f', -1, 64)
		default:
			cells[i] = fmt.Sprint(t)
		}
	}
	if err := a.w.Write(cells); err != nil {
		a.writeErr = err
		return false
	}
	return true
}

func (a *csvAnchor) UpdateProgress(float64) {}

func (a *csvAnchor) Done() {
	a.w.Flush()
	if err := a.w.Error(); err != nil && a.writeErr == nil {
		a.writeErr = err
	}
}

func (a *csvAnchor) Close() {
	a.closed = true
}

func (a *csvAnchor) Closed() bool {
	return a.closed
}
