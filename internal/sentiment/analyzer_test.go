package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const scoreSumTolerance = 0.01

func TestScores_Label(t *testing.T) {
	s := Scores{Negative: 0, Neutral: 0.308, Positive: 0.692, Compound: 0.6369}
	assert.Equal(t, "{'neg': 0.000, 'neu': 0.308, 'pos': 0.692, 'compound': 0.6369}", s.Label())
}

func TestVADERAnalyzer_PositiveText(t *testing.T) {
	a := NewVADERAnalyzer()
	s := a.PolarityScores("I love this product")

	assert.Greater(t, s.Positive, s.Negative)
	assert.Greater(t, s.Compound, 0.5)
}

func TestVADERAnalyzer_NegativeText(t *testing.T) {
	a := NewVADERAnalyzer()
	s := a.PolarityScores("This is terrible, I hate it")

	assert.Greater(t, s.Negative, s.Positive)
	assert.Less(t, s.Compound, -0.5)
}

func TestVADERAnalyzer_ComponentsSumToOne(t *testing.T) {
	a := NewVADERAnalyzer()
	for _, text := range []string{
		"I love this product",
		"This is terrible, I hate it",
		"The package arrived on Tuesday",
	} {
		s := a.PolarityScores(text)
		assert.InDelta(t, 1.0, s.Negative+s.Neutral+s.Positive, scoreSumTolerance, "text: %q", text)
	}
}

func TestVADERAnalyzer_CompoundInRange(t *testing.T) {
	a := NewVADERAnalyzer()
	for _, text := range []string{
		"I love love love this so much!!!",
		"worst thing ever, absolutely horrible",
		"",
	} {
		s := a.PolarityScores(text)
		assert.GreaterOrEqual(t, s.Compound, -1.0, "text: %q", text)
		assert.LessOrEqual(t, s.Compound, 1.0, "text: %q", text)
	}
}

func TestVADERAnalyzer_Deterministic(t *testing.T) {
	first := NewVADERAnalyzer().PolarityScores("I love this product")
	second := NewVADERAnalyzer().PolarityScores("I love this product")
	require.Equal(t, first, second)
}
