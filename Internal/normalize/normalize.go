// Package normalize turns the fetcher's delimited headline lines into
// sorted ArticleRecords.
package normalize

import (
	"sort"
	"strings"
	"time"

	"github.com/fazecat/newspulse/Internal/types"
)

// Separator joins headline and timestamp in a raw line.
const Separator = " | Published on: "

// ParseLine splits a raw line into an ArticleRecord. The line must contain
// the separator exactly once and the timestamp must be "<date> <time>" with
// a date that parses as a real calendar day. Anything else produces a
// malformed record: the headline text is kept, date and time stay empty, and
// the row flows on downstream instead of killing the batch.
func ParseLine(line string) types.ArticleRecord {
	parts := strings.Split(line, Separator)
	if len(parts) != 2 {
		return types.ArticleRecord{Headline: line}
	}

	headline, stamp := parts[0], parts[1]

	dateTime := strings.SplitN(stamp, " ", 2)
	if len(dateTime) != 2 {
		return types.ArticleRecord{Headline: headline}
	}

	pubDate, pubTime := dateTime[0], dateTime[1]
	if _, err := time.Parse("2006-01-02", pubDate); err != nil {
		return types.ArticleRecord{Headline: headline}
	}

	return types.ArticleRecord{
		Headline: headline,
		PubDate:  pubDate,
		PubTime:  pubTime,
	}
}

// Normalize parses every line and stable-sorts the records ascending by
// publication date, then time. Malformed rows keep their position group at
// the front (empty strings sort before any date).
func Normalize(lines []string) []types.ArticleRecord {
	records := make([]types.ArticleRecord, 0, len(lines))
	for _, line := range lines {
		records = append(records, ParseLine(line))
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].PubDate != records[j].PubDate {
			return records[i].PubDate < records[j].PubDate
		}
		return records[i].PubTime < records[j].PubTime
	})

	return records
}

// Lines renders raw articles in the delimited form Normalize consumes.
func Lines(articles []types.RawArticle) []string {
	lines := make([]string, 0, len(articles))
	for _, a := range articles {
		lines = append(lines, a.Line())
	}
	return lines
}
