package archive

import (
	"context"
	"log"
	"time"

	"github.com/fazecat/newspulse/Internal/types"
	"github.com/fazecat/newspulse/Internal/utils"
)

// FetchRange walks from the first day of the start month to the last day of
// the end month, invoking src once per sampled day and concatenating the
// results. The cursor advances stepDays calendar days per iteration, so the
// default stride of 7 samples a single day out of every week — a deliberate
// coarse sampling policy inherited from the original harvest, not full
// coverage. Pass stepDays=1 to fetch every day in the window.
//
// Per-day failures are logged and skipped; the walk keeps going so one bad
// day cannot sink the whole period. Only context cancellation stops it.
func FetchRange(ctx context.Context, src HeadlineSource, startYear, startMonth, endYear, endMonth, stepDays int) ([]types.RawArticle, error) {
	if stepDays <= 0 {
		stepDays = 7
	}

	var articles []types.RawArticle

	cursor := time.Date(startYear, time.Month(startMonth), 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(endYear, time.Month(endMonth), utils.LastDayOfMonth(endYear, endMonth), 0, 0, 0, 0, time.UTC)

	for !cursor.After(endDate) {
		if err := ctx.Err(); err != nil {
			return articles, err
		}

		dayArticles, err := src.FetchDay(ctx, cursor.Year(), int(cursor.Month()), cursor.Day())
		articles = append(articles, dayArticles...)
		if err != nil {
			log.Printf("⚠️  Skipping %s: %v", cursor.Format("2006-01-02"), err)
		}

		cursor = cursor.AddDate(0, 0, stepDays)
	}

	return articles, nil
}
