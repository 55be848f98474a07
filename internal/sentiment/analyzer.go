package sentiment

import (
	"fmt"

	"github.com/jonreiter/govader"
)

// Scores is one analysis result. Negative, Neutral and Positive are component
// magnitudes that sum to 1.0 by the analyzer's contract; Compound is a
// normalized aggregate in [-1.0, 1.0].
type Scores struct {
	Negative float64
	Neutral  float64
	Positive float64
	Compound float64
}

// Label renders the composite representation of all four scores, component
// magnitudes to 3 decimal places and compound to 4, matching the analyzer's
// published rounding.
func (s Scores) Label() string {
	return fmt.Sprintf("{'neg': %.3f, 'neu': %.3f, 'pos': %.3f, 'compound': %.4f}",
		s.Negative, s.Neutral, s.Positive, s.Compound)
}

// Analyzer scores a piece of text. Implementations must be stateless across
// calls and deterministic for the same input.
type Analyzer interface {
	PolarityScores(text string) Scores
}

// VADERAnalyzer scores text with the VADER lexicon-and-rule analyzer.
type VADERAnalyzer struct {
	inner *govader.SentimentIntensityAnalyzer
}

// NewVADERAnalyzer builds an analyzer with the default VADER lexicon.
func NewVADERAnalyzer() *VADERAnalyzer {
	return &VADERAnalyzer{inner: govader.NewSentimentIntensityAnalyzer()}
}

func (a *VADERAnalyzer) PolarityScores(text string) Scores {
	s := a.inner.PolarityScores(text)
	return Scores{
		Negative: s.Negative,
		Neutral:  s.Neutral,
		Positive: s.Positive,
		Compound: s.Compound,
	}
}
