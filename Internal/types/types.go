package types

import "fmt"

// RawArticle is one headline pulled from the archive search API before any
// parsing. PublishedAt is the API timestamp reformatted to
// "2006-01-02 15:04:05" (the 'T' replaced by a space, timezone stripped).
type RawArticle struct {
	Headline    string `json:"headline"`
	PublishedAt string `json:"published_at"`
}

// Line renders the article in the delimited form the normalizer consumes.
func (a RawArticle) Line() string {
	return fmt.Sprintf("%s | Published on: %s", a.Headline, a.PublishedAt)
}

// ArticleRecord is a normalized row: headline plus split date and time
// strings. Rows that failed to parse keep empty PubDate/PubTime instead of
// being dropped, so downstream stages can count data-quality losses.
type ArticleRecord struct {
	Headline string `json:"headline"`
	PubDate  string `json:"pub_date"` // "2006-01-02", empty if malformed
	PubTime  string `json:"pub_time"` // "15:04:05", empty if malformed
}

// Malformed reports whether the record failed normalization.
func (r ArticleRecord) Malformed() bool {
	return r.PubDate == "" || r.PubTime == ""
}

type Stance int

const (
	StanceOpposition Stance = -1
	StanceNeutral    Stance = 0
	StanceSupport    Stance = 1
)

func (s Stance) String() string {
	switch s {
	case StanceSupport:
		return "SUPPORT"
	case StanceOpposition:
		return "OPPOSITION"
	default:
		return "NEUTRAL"
	}
}

// AnnotatedArticle is an ArticleRecord with sentiment polarity in [-1, 1]
// and a discrete stance label attached.
type AnnotatedArticle struct {
	ArticleRecord
	Sentiment float64 `json:"sentiment"`
	Stance    Stance  `json:"stance"`
}

// WeeklySentimentPoint is one bucket of the output series. WeekEnding is the
// Sunday that closes the bucket's 7-day window.
type WeeklySentimentPoint struct {
	WeekEnding    string  `json:"week_ending"` // "2006-01-02"
	MeanSentiment float64 `json:"mean_sentiment"`
	ArticleCount  int     `json:"article_count"`
}
