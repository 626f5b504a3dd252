package datafeed

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/fazecat/newspulse/Internal/types"
)

// SaveAnnotated persists a batch of annotated articles. Malformed rows go
// in with NULL date/time so data-quality losses stay visible in the store.
func SaveAnnotated(ctx context.Context, articles []types.AnnotatedArticle) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}

	tx, err := DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO articles (headline, pub_date, pub_time, sentiment, stance) VALUES ($1, $2, $3, $4, $5)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, a := range articles {
		pubDate := sql.NullString{String: a.PubDate, Valid: a.PubDate != ""}
		pubTime := sql.NullString{String: a.PubTime, Valid: a.PubTime != ""}
		if _, err := stmt.ExecContext(ctx, a.Headline, pubDate, pubTime, a.Sentiment, int(a.Stance)); err != nil {
			return fmt.Errorf("failed to insert article: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit articles: %w", err)
	}

	log.Printf("✅ Saved %d articles to database", len(articles))
	return nil
}

// GetArticles returns stored articles ordered by publication date and time,
// NULL dates first (matching the in-memory sort of malformed rows).
func GetArticles(ctx context.Context, limit int32) ([]types.AnnotatedArticle, error) {
	if DB == nil {
		return nil, fmt.Errorf("database not initialized")
	}

	rows, err := DB.QueryContext(ctx,
		`SELECT headline,
		        COALESCE(to_char(pub_date, 'YYYY-MM-DD'), ''),
		        COALESCE(to_char(pub_time, 'HH24:MI:SS'), ''),
		        sentiment, stance
		 FROM articles
		 ORDER BY pub_date ASC NULLS FIRST, pub_time ASC NULLS FIRST
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch articles: %w", err)
	}
	defer rows.Close()

	var articles []types.AnnotatedArticle
	for rows.Next() {
		var a types.AnnotatedArticle
		var stance int
		if err := rows.Scan(&a.Headline, &a.PubDate, &a.PubTime, &a.Sentiment, &stance); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		a.Stance = types.Stance(stance)
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// GetWeeklySentiment computes the Sunday-ending weekly mean series in SQL,
// mirroring the in-memory aggregator for data already in the store.
func GetWeeklySentiment(ctx context.Context) ([]types.WeeklySentimentPoint, error) {
	if DB == nil {
		return nil, fmt.Errorf("database not initialized")
	}

	// date_trunc('week', d) is the Monday of d's ISO week; adding 6 days
	// gives the Sunday that closes it.
	rows, err := DB.QueryContext(ctx,
		`SELECT to_char(date_trunc('week', pub_date)::date + 6, 'YYYY-MM-DD') AS week_ending,
		        AVG(sentiment), COUNT(*)
		 FROM articles
		 WHERE pub_date IS NOT NULL
		 GROUP BY week_ending
		 ORDER BY week_ending ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weekly sentiment: %w", err)
	}
	defer rows.Close()

	var points []types.WeeklySentimentPoint
	for rows.Next() {
		var p types.WeeklySentimentPoint
		if err := rows.Scan(&p.WeekEnding, &p.MeanSentiment, &p.ArticleCount); err != nil {
			return nil, fmt.Errorf("failed to scan point: %w", err)
		}
		points = append(points, p)
	}
	return points, rows.Err()
}

// ClearArticles empties the store before a fresh harvest run.
func ClearArticles(ctx context.Context) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}
	_, err := DB.ExecContext(ctx, `DELETE FROM articles`)
	if err != nil {
		return fmt.Errorf("failed to clear articles: %w", err)
	}
	return nil
}
