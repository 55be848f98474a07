package runner

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayx-builders/vader-sentiment/internal/plugin"
	"github.com/ayx-builders/vader-sentiment/internal/sentiment"
)

type fixedAnalyzer struct {
	scores sentiment.Scores
}

func (f fixedAnalyzer) PolarityScores(string) sentiment.Scores {
	return f.scores
}

func newTestRunner() *CSVRunner {
	return NewCSVRunner(
		WithAnalyzer(fixedAnalyzer{scores: sentiment.Scores{Negative: 0.1, Neutral: 0.2, Positive: 0.7, Compound: 0.6}}),
		WithClock(clockwork.NewFakeClock()),
	)
}

func runCSV(t *testing.T, r *CSVRunner, input, field string) [][]string {
	t.Helper()
	var out bytes.Buffer
	require.NoError(t, r.Run(strings.NewReader(input), &out, FieldConfigXML(field)))

	rows, err := csv.NewReader(&out).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestFieldConfigXML_EscapesField(t *testing.T) {
	assert.Equal(t,
		"<Configuration><FieldSelect>a&amp;b</FieldSelect></Configuration>",
		FieldConfigXML("a&b"))
}

func TestCSVRunner_AugmentsRows(t *testing.T) {
	rows := runCSV(t, newTestRunner(), "id,comment\n1,I love this product\n", "comment")

	require.Len(t, rows, 2)
	assert.Equal(t, []string{
		"id", "comment",
		"Sentiment_Output", "Negative_Score", "Neutral_Score", "Positive_Score", "Compound_Score",
	}, rows[0])
	assert.Equal(t, []string{
		"1", "I love this product",
		"{'neg': 0.100, 'neu': 0.200, 'pos': 0.700, 'compound': 0.6000}",
		"0.1", "0.2", "0.7", "0.6",
	}, rows[1])
}

func TestCSVRunner_EmptyCellIsNull(t *testing.T) {
	rows := runCSV(t, newTestRunner(), "id,comment\n1,\n", "comment")

	require.Len(t, rows, 2)
	assert.Equal(t, []string{"1", "", "", "", "", "", ""}, rows[1])
}

func TestCSVRunner_UnknownField(t *testing.T) {
	var out bytes.Buffer
	err := newTestRunner().Run(strings.NewReader("id,comment\n1,hello\n"), &out, FieldConfigXML("missing"))
	assert.ErrorIs(t, err, plugin.ErrUnknownField)
}

func TestCSVRunner_MissingFieldSelect(t *testing.T) {
	var out bytes.Buffer
	err := newTestRunner().Run(strings.NewReader("id,comment\n"), &out, "<Configuration></Configuration>")
	assert.ErrorIs(t, err, plugin.ErrNoFieldSelected)
}

func TestCSVRunner_EmptyInput(t *testing.T) {
	var out bytes.Buffer
	err := newTestRunner().Run(strings.NewReader(""), &out, FieldConfigXML("comment"))
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestCSVRunner_HeaderOnlyProducesHeaderOnly(t *testing.T) {
	rows := runCSV(t, newTestRunner(), "id,comment\n", "comment")
	require.Len(t, rows, 1)
}

func TestCSVRunner_EndToEndWithVADER(t *testing.T) {
	r := NewCSVRunner(WithClock(clockwork.NewFakeClock()))
	rows := runCSV(t, r, "id,comment\n1,I love this product\n", "comment")

	require.Len(t, rows, 2)
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "I love this product", rows[1][1])
	assert.Contains(t, rows[1][2], "compound")
	assert.NotEmpty(t, rows[1][6])
}
