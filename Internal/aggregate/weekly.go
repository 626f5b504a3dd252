// Package aggregate buckets annotated articles into Sunday-ending weeks and
// averages their sentiment.
package aggregate

import (
	"sort"
	"time"

	"github.com/fazecat/newspulse/Internal/types"
)

const dateLayout = "2006-01-02"

// WeekEnding returns the nearest Sunday on or after d. A Sunday maps to
// itself, so each bucket covers Monday through Sunday and is labeled by the
// Sunday that closes it.
func WeekEnding(d time.Time) time.Time {
	offset := (7 - int(d.Weekday())) % 7
	return d.AddDate(0, 0, offset)
}

// Weekly computes the mean sentiment per week bucket, ordered by ascending
// week. Weeks with no articles produce no point at all — a gap, not a zero.
// Records whose date never parsed (malformed rows carried through the
// pipeline) cannot be bucketed and are skipped here.
func Weekly(articles []types.AnnotatedArticle) []types.WeeklySentimentPoint {
	sums := make(map[string]float64)
	counts := make(map[string]int)

	for _, a := range articles {
		pubDate, err := time.Parse(dateLayout, a.PubDate)
		if err != nil {
			continue
		}
		week := WeekEnding(pubDate).Format(dateLayout)
		sums[week] += a.Sentiment
		counts[week]++
	}

	points := make([]types.WeeklySentimentPoint, 0, len(sums))
	for week, sum := range sums {
		points = append(points, types.WeeklySentimentPoint{
			WeekEnding:    week,
			MeanSentiment: sum / float64(counts[week]),
			ArticleCount:  counts[week],
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].WeekEnding < points[j].WeekEnding
	})

	return points
}
