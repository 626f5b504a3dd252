// Package pipeline wires harvest, normalization, annotation and aggregation
// into a single pass.
package pipeline

import (
	"context"
	"fmt"
	"log"

	"github.com/fazecat/newspulse/Internal/aggregate"
	"github.com/fazecat/newspulse/Internal/archive"
	"github.com/fazecat/newspulse/Internal/export"
	newsscraping "github.com/fazecat/newspulse/Internal/news_scraping"
	"github.com/fazecat/newspulse/Internal/normalize"
	"github.com/fazecat/newspulse/Internal/types"
	"github.com/fazecat/newspulse/Internal/utils/config"
)

type Pipeline struct {
	Source archive.HeadlineSource
	Score  newsscraping.ScoreFunc
	Rules  newsscraping.StanceRules

	cfg *config.Config
}

// Result holds every stage's output. Each slice is owned by the stage that
// produced it; stages never share mutable state.
type Result struct {
	Records   []types.ArticleRecord
	Annotated []types.AnnotatedArticle
	Series    []types.WeeklySentimentPoint
}

// New builds a pipeline with the built-in keyword scorer and the stance
// rules from config (falling back to the reference defaults when the config
// lists are empty).
func New(cfg *config.Config, src archive.HeadlineSource) *Pipeline {
	rules := newsscraping.StanceRules{
		Support:    cfg.Stance.SupportPhrases,
		Opposition: cfg.Stance.OppositionPhrases,
	}
	if len(rules.Support) == 0 && len(rules.Opposition) == 0 {
		rules = newsscraping.DefaultStanceRules()
	}

	return &Pipeline{
		Source: src,
		Score:  newsscraping.NewSentimentAnalyzer().Score,
		Rules:  rules,
		cfg:    cfg,
	}
}

// Run fetches the configured window, normalizes and sorts the records,
// round-trips them through the CSV sink, then annotates and aggregates.
func (p *Pipeline) Run(ctx context.Context) (*Result, error) {
	w := p.cfg.Window
	raw, err := archive.FetchRange(ctx, p.Source,
		w.StartYear, w.StartMonth, w.EndYear, w.EndMonth,
		p.cfg.Archive.StepDays)
	if err != nil {
		return nil, fmt.Errorf("fetch period: %w", err)
	}
	log.Printf("📰 Fetched %d raw headlines", len(raw))

	records := normalize.Normalize(normalize.Lines(raw))

	// The harvesting and analysis phases hand off through the CSV table, so
	// write it out and read it back to keep the analyzed data identical to
	// what landed on disk.
	if path := p.cfg.Output.CSVPath; path != "" {
		if err := export.WriteRecords(path, records); err != nil {
			return nil, err
		}
		records, err = export.ReadRecords(path)
		if err != nil {
			return nil, err
		}
		log.Printf("💾 Wrote %d records to %s", len(records), path)
	}

	annotated := newsscraping.Annotate(records, p.Score, p.Rules)
	series := aggregate.Weekly(annotated)

	return &Result{
		Records:   records,
		Annotated: annotated,
		Series:    series,
	}, nil
}
