package plugin

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/ayx-builders/vader-sentiment/internal/host"
	"github.com/ayx-builders/vader-sentiment/internal/logging"
	"github.com/ayx-builders/vader-sentiment/internal/metrics"
	"github.com/ayx-builders/vader-sentiment/internal/recordio"
	"github.com/ayx-builders/vader-sentiment/internal/sentiment"
)

// Output field names, appended to the incoming schema in this order.
const (
	SentimentOutputField = "Sentiment_Output"
	NegativeScoreField   = "Negative_Score"
	NeutralScoreField    = "Neutral_Score"
	PositiveScoreField   = "Positive_Score"
	CompoundScoreField   = "Compound_Score"

	sentimentOutputSize = 100
)

const (
	msgSelectField     = "Please select field to analyze"
	msgMissingIncoming = "Missing Incoming Connection"
)

// State is the per-stream lifecycle position. Transitions only move forward;
// any failure is terminal for the stream run.
type State int

const (
	StateUnconfigured State = iota
	StateConfigured
	StateSchemaNegotiated
	StateStreaming
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUnconfigured:
		return "unconfigured"
	case StateConfigured:
		return "configured"
	case StateSchemaNegotiated:
		return "schema_negotiated"
	case StateStreaming:
		return "streaming"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Plugin augments each incoming row with five sentiment fields computed from
// one configured text field, passing all original columns through unchanged.
// The host drives it strictly sequentially, so it holds no locks.
type Plugin struct {
	toolID   int
	host     host.Host
	anchor   host.OutputAnchor
	analyzer sentiment.Analyzer

	fieldSelect string
	state       State
	log         *slog.Logger
}

// New builds a plugin bound to its host, its single output anchor, and the
// analyzer capability.
func New(toolID int, h host.Host, anchor host.OutputAnchor, analyzer sentiment.Analyzer) *Plugin {
	return &Plugin{
		toolID:   toolID,
		host:     h,
		anchor:   anchor,
		analyzer: analyzer,
		state:    StateUnconfigured,
		log:      logging.WithTool(toolID),
	}
}

// State returns the current lifecycle position.
func (p *Plugin) State() State {
	return p.state
}

// Init consumes the host-authored XML configuration. A missing or empty
// FieldSelect element is reported to the host and leaves the plugin
// unconfigured; no rows will be processed.
func (p *Plugin) Init(configXML string) error {
	field, err := parseFieldSelect(configXML)
	if err != nil {
		p.host.OutputMessage(p.toolID, host.SeverityError, msgSelectField)
		return err
	}
	p.fieldSelect = field
	p.state = StateConfigured
	p.log.Debug("configured", "field", field)
	return nil
}

// AddIncomingConnection returns the interface the host feeds records through.
// Refused while unconfigured.
func (p *Plugin) AddIncomingConnection(connType, name string) (*IncomingInterface, error) {
	if p.state != StateConfigured {
		return nil, fmt.Errorf("%w: add incoming connection in state %s", ErrInvalidState, p.state)
	}
	return &IncomingInterface{parent: p}, nil
}

// AddOutgoingConnection accepts the named outgoing connection.
func (p *Plugin) AddOutgoingConnection(name string) bool {
	return true
}

// PushAllRecords is called by the host when the tool has no incoming
// connection. This tool requires one, so it reports the connectivity error
// and fails.
func (p *Plugin) PushAllRecords(recordLimit int) bool {
	p.host.OutputMessage(p.toolID, host.SeverityError, msgMissingIncoming)
	return false
}

// Close runs after all records are processed. It asserts the outgoing anchor
// was closed beforehand; this is a consistency check, not recovery.
func (p *Plugin) Close(hasErrors bool) {
	if p.state >= StateSchemaNegotiated && p.state != StateClosed && !p.anchor.Closed() {
		p.host.OutputMessage(p.toolID, host.SeverityError, "outgoing connection was not closed")
	}
}

// IncomingInterface receives the incoming connection's metadata and records.
// One is created per incoming connection; this tool accepts a single one.
type IncomingInterface struct {
	parent *Plugin

	builder *recordio.Builder
	copier  *recordio.Copier

	textIdx     int
	labelIdx    int
	negativeIdx int
	neutralIdx  int
	positiveIdx int
	compoundIdx int
}

// Init receives the incoming schema, derives the outgoing schema by appending
// the five sentiment fields, caches every field position used per row, and
// publishes the outgoing schema downstream before any record flows.
func (ii *IncomingInterface) Init(in *recordio.Schema) error {
	p := ii.parent
	if p.state != StateConfigured {
		return fmt.Errorf("%w: schema negotiation in state %s", ErrInvalidState, p.state)
	}

	textIdx, ok := in.FieldIndex(p.fieldSelect)
	if !ok {
		msg := fmt.Sprintf("Field %q not found in the incoming records", p.fieldSelect)
		p.host.OutputMessage(p.toolID, host.SeverityError, msg)
		return fmt.Errorf("%w: %q", ErrUnknownField, p.fieldSelect)
	}
	ii.textIdx = textIdx

	out := in.Clone()
	appended := []recordio.Field{
		{Name: SentimentOutputField, Type: recordio.String, Size: sentimentOutputSize},
		{Name: NegativeScoreField, Type: recordio.Double},
		{Name: NeutralScoreField, Type: recordio.Double},
		{Name: PositiveScoreField, Type: recordio.Double},
		{Name: CompoundScoreField, Type: recordio.Double},
	}
	for _, f := range appended {
		if err := out.AddField(f); err != nil {
			p.host.OutputMessage(p.toolID, host.SeverityError,
				fmt.Sprintf("Incoming records already contain a field named %q", f.Name))
			return err
		}
	}

	if err := p.anchor.Open(out); err != nil {
		return fmt.Errorf("open output anchor: %w", err)
	}

	ii.builder = recordio.NewBuilder(out)
	ii.copier = recordio.NewCopier()
	for i := 0; i < in.NumFields(); i++ {
		ii.copier.Add(i, i)
	}

	// Positions are fixed from here on; no name lookups happen per record.
	ii.labelIdx, _ = out.FieldIndex(SentimentOutputField)
	ii.negativeIdx, _ = out.FieldIndex(NegativeScoreField)
	ii.neutralIdx, _ = out.FieldIndex(NeutralScoreField)
	ii.positiveIdx, _ = out.FieldIndex(PositiveScoreField)
	ii.compoundIdx, _ = out.FieldIndex(CompoundScoreField)

	p.state = StateSchemaNegotiated
	p.log.Debug("schema negotiated", "fields_in", in.NumFields(), "fields_out", out.NumFields())
	return nil
}

// PushRecord processes one incoming record: original values are copied
// verbatim, then the five sentiment fields are filled from the configured
// text field. A null text field leaves the five fields unset; the record is
// still emitted. Returns false when the downstream consumer rejects the push,
// which ends the stream.
func (ii *IncomingInterface) PushRecord(in recordio.Row) bool {
	p := ii.parent
	if p.state != StateSchemaNegotiated && p.state != StateStreaming {
		return false
	}
	p.state = StateStreaming

	ii.builder.Reset()
	ii.copier.Copy(ii.builder, in)

	if text, ok := asString(in[ii.textIdx]); ok {
		scores := p.analyzer.PolarityScores(text)
		ii.builder.SetString(ii.labelIdx, scores.Label())
		ii.builder.SetFloat(ii.negativeIdx, scores.Negative)
		ii.builder.SetFloat(ii.neutralIdx, scores.Neutral)
		ii.builder.SetFloat(ii.positiveIdx, scores.Positive)
		ii.builder.SetFloat(ii.compoundIdx, scores.Compound)
		metrics.RowsProcessed.WithLabelValues("scored").Inc()
	} else {
		metrics.RowsProcessed.WithLabelValues("skipped").Inc()
	}

	if !p.anchor.PushRecord(ii.builder.Finalize()) {
		metrics.DownstreamRejections.Inc()
		p.log.Warn("downstream rejected record, stopping stream")
		return false
	}
	return true
}

// UpdateProgress relays the upstream fraction unmodified to the host and the
// downstream consumer.
func (ii *IncomingInterface) UpdateProgress(fraction float64) {
	p := ii.parent
	p.host.UpdateProgress(p.toolID, fraction)
	p.anchor.UpdateProgress(fraction)
}

// Close handles end-of-stream: record emission is declared complete and the
// outgoing connection is closed.
func (ii *IncomingInterface) Close() {
	p := ii.parent
	p.anchor.Done()
	p.anchor.Close()
	p.state = StateClosed
	metrics.StreamsCompleted.Inc()
	p.log.Debug("stream closed")
}

// asString renders a non-null field value as text for analysis.
func asString(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	default:
		return fmt.Sprint(t), true
	}
}
