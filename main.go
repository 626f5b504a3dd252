package main

import (
	"context"
	"fmt"
	"log"

	"github.com/fazecat/newspulse/Internal/archive"
	datafeed "github.com/fazecat/newspulse/Internal/database"
	"github.com/fazecat/newspulse/Internal/pipeline"
	"github.com/fazecat/newspulse/Internal/utils/config"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	src, err := archive.NewSourceFromEnv(cfg)
	if err != nil {
		log.Fatalf("Failed to configure headline source: %v", err)
	}

	err = datafeed.InitDatabase()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer datafeed.CloseDatabase()

	ctx := context.Background()

	result, err := pipeline.New(cfg, src).Run(ctx)
	if err != nil {
		log.Fatalf("Harvest failed: %v", err)
	}

	if err := datafeed.ClearArticles(ctx); err != nil {
		log.Printf("Warning: could not clear previous harvest: %v", err)
	}
	if err := datafeed.SaveAnnotated(ctx, result.Annotated); err != nil {
		log.Printf("Warning: could not save harvest to database: %v", err)
	}

	malformed := 0
	for _, r := range result.Records {
		if r.Malformed() {
			malformed++
		}
	}

	fmt.Printf("Harvest complete: %d records (%d malformed), %d weekly points\n",
		len(result.Records), malformed, len(result.Series))
	for _, p := range result.Series {
		fmt.Printf("  %s  %+.4f  (%d articles)\n", p.WeekEnding, p.MeanSentiment, p.ArticleCount)
	}
}
