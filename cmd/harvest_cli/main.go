package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fazecat/newspulse/Internal/aggregate"
	"github.com/fazecat/newspulse/Internal/archive"
	newsscraping "github.com/fazecat/newspulse/Internal/news_scraping"
	"github.com/fazecat/newspulse/Internal/normalize"
	"github.com/fazecat/newspulse/Internal/types"
	"github.com/fazecat/newspulse/Internal/utils/config"
	"github.com/fazecat/newspulse/Internal/utils/formatting"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Config load failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Fetching headlines from archive...")

	var raw []types.RawArticle
	src, err := archive.NewSourceFromEnv(cfg)
	if err != nil {
		fmt.Printf("Headline source unavailable: %v\n", err)
	} else {
		w := cfg.Window
		raw, err = archive.FetchRange(context.Background(), src,
			w.StartYear, w.StartMonth, w.EndYear, w.EndMonth, cfg.Archive.StepDays)
		if err != nil {
			fmt.Printf("Archive fetch failed: %v\n", err)
		}
	}

	if len(raw) == 0 {
		fmt.Println("Creating test headlines instead...")
		raw = []types.RawArticle{
			{
				Headline:    "World Leaders Call for Ceasefire as Crisis Deepens",
				PublishedAt: "2023-10-09 08:15:00",
			},
			{
				Headline:    "Aid Convoy Reaches Besieged City After Weeks of Delay",
				PublishedAt: "2023-10-11 14:30:00",
			},
			{
				Headline:    "Nation stands with Israel After Deadly Attack",
				PublishedAt: "2023-10-16 09:00:00",
			},
			{
				Headline:    "Protesters March against Israel in Capital",
				PublishedAt: "2023-10-18 17:45:00",
			},
		}
	}

	records := normalize.Normalize(normalize.Lines(raw))

	analyzer := newsscraping.NewSentimentAnalyzer()
	rules := newsscraping.StanceRules{
		Support:    cfg.Stance.SupportPhrases,
		Opposition: cfg.Stance.OppositionPhrases,
	}
	if len(rules.Support) == 0 && len(rules.Opposition) == 0 {
		rules = newsscraping.DefaultStanceRules()
	}

	annotated := newsscraping.Annotate(records, analyzer.Score, rules)

	fmt.Println("\n" + formatting.Separator(80))
	fmt.Println("SENTIMENT & STANCE ANALYSIS")
	fmt.Println(formatting.Separator(80))

	for _, a := range annotated {
		sent, score := analyzer.Analyze(a.Headline)

		fmt.Printf("\n %s\n", a.Headline)
		fmt.Printf(" Published: %s %s\n", a.PubDate, a.PubTime)
		fmt.Printf(" Sentiment: %s (Score: %.2f)\n", sent, score)
		fmt.Printf(" Stance: %s\n", a.Stance)
	}

	series := aggregate.Weekly(annotated)

	fmt.Println("\n" + formatting.Separator(80))
	fmt.Println("WEEKLY MEAN SENTIMENT")
	fmt.Println(formatting.Separator(80))
	for _, p := range series {
		fmt.Printf(" Week ending %s: %+.4f (%d articles)\n", p.WeekEnding, p.MeanSentiment, p.ArticleCount)
	}

	fmt.Println("\n" + formatting.Separator(80))
	fmt.Println("Harvest Analysis Complete!")
	fmt.Println(formatting.Separator(80))
}
