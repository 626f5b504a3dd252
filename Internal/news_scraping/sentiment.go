package newsscraping

import "strings"

type SentimentScore string

const (
	Positive SentimentScore = "POSITIVE"
	Neutral  SentimentScore = "NEUTRAL"
	Negative SentimentScore = "NEGATIVE"
)

// ScoreFunc maps a headline to a polarity in [-1, 1]. The pipeline only
// depends on this signature, so the built-in analyzer can be swapped for an
// external model without touching anything else.
type ScoreFunc func(text string) float64

type SentimentAnalyzer struct {
	positiveWords map[string]float64
	negativeWords map[string]float64
}

func NewSentimentAnalyzer() *SentimentAnalyzer {
	return &SentimentAnalyzer{
		positiveWords: map[string]float64{
			// Strong positive (0.9-1.0)
			"breakthrough": 1.0, "triumph": 1.0, "liberation": 0.95, "victory": 0.95,
			"peace": 0.9, "ceasefire": 0.9, "truce": 0.9, "reconciliation": 0.9,

			// Moderate positive (0.7-0.89)
			"agreement": 0.85, "accord": 0.85, "release": 0.85, "released": 0.85,
			"rescue": 0.8, "rescued": 0.8, "aid": 0.8, "relief": 0.8,
			"recovery": 0.75, "rebuild": 0.75, "reunite": 0.75, "reunited": 0.75,
			"support": 0.7, "solidarity": 0.7, "donation": 0.7, "volunteers": 0.7,

			// Mild positive (0.5-0.69)
			"hope": 0.65, "hopeful": 0.65, "progress": 0.65, "talks": 0.6,
			"negotiation": 0.6, "negotiations": 0.6, "diplomacy": 0.6, "dialogue": 0.6,
			"calm": 0.55, "stability": 0.55, "safe": 0.55, "safely": 0.55,
			"improve": 0.5, "improving": 0.5, "resume": 0.5, "reopen": 0.5,
		},
		negativeWords: map[string]float64{
			// Strong negative (0.9-1.0)
			"massacre": 1.0, "genocide": 1.0, "atrocity": 1.0, "slaughter": 1.0,
			"catastrophic": 1.0, "devastation": 1.0, "carnage": 0.95, "annihilation": 0.95,
			"bombing": 0.9, "airstrike": 0.9, "airstrikes": 0.9, "killed": 0.9,

			// Moderate negative (0.7-0.89)
			"war": 0.85, "attack": 0.85, "attacks": 0.85, "invasion": 0.85,
			"dead": 0.85, "deaths": 0.85, "casualties": 0.85, "wounded": 0.85,
			"crisis": 0.8, "siege": 0.8, "hostage": 0.8, "hostages": 0.8,
			"strike": 0.75, "strikes": 0.75, "shelling": 0.75, "missile": 0.75,
			"famine": 0.75, "starvation": 0.75, "displaced": 0.75, "refugees": 0.7,
			"destruction": 0.7, "destroyed": 0.7, "collapse": 0.7, "escalation": 0.7,

			// Mild negative (0.5-0.69)
			"conflict": 0.65, "violence": 0.65, "threat": 0.65, "threats": 0.65,
			"fear": 0.65, "fears": 0.65, "tension": 0.6, "tensions": 0.6,
			"condemn": 0.6, "condemns": 0.6, "protest": 0.6, "protests": 0.6,
			"blockade": 0.6, "shortage": 0.6, "shortages": 0.6, "outage": 0.55,
			"warning": 0.55, "accuse": 0.55, "accuses": 0.55, "dispute": 0.55,
			"failure": 0.5, "stall": 0.5, "stalled": 0.5, "delay": 0.5,
		},
	}
}

// Analyze scores text by averaging the weights of matched words, giving a
// polarity in [-1, 1], plus a coarse label with a ±0.1 neutral band.
func (sa *SentimentAnalyzer) Analyze(text string) (SentimentScore, float64) {
	text = strings.ToLower(text)
	words := strings.Fields(text)

	var score float64
	var matches int

	for _, word := range words {
		word = strings.Trim(word, ".,!?\"'()[]{}:;")

		if val, exists := sa.positiveWords[word]; exists {
			score += val
			matches++
		} else if val, exists := sa.negativeWords[word]; exists {
			score -= val
			matches++
		}
	}

	if matches > 0 {
		score /= float64(matches)
	}
	sentiment := Neutral
	if score > 0.1 {
		sentiment = Positive
	} else if score < -0.1 {
		sentiment = Negative
	}
	return sentiment, score
}

// Score adapts the analyzer to the ScoreFunc contract.
func (sa *SentimentAnalyzer) Score(text string) float64 {
	_, score := sa.Analyze(text)
	return score
}
