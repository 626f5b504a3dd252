package archive

import (
	"context"
	"time"

	"github.com/alpacahq/alpaca-trade-api-go/v3/marketdata"

	"github.com/fazecat/newspulse/Internal/types"
)

// AlpacaNewsSource is an alternate HeadlineSource backed by Alpaca's market
// news endpoint, for symbol-driven harvests instead of archive keyword
// search. It emits the same RawArticle shape, so the rest of the pipeline
// does not care which vendor produced the headlines.
type AlpacaNewsSource struct {
	client  *marketdata.Client
	symbols []string
}

func NewAlpacaNewsSource(apiKey, apiSecret string, symbols []string) *AlpacaNewsSource {
	return &AlpacaNewsSource{
		client: marketdata.NewClient(marketdata.ClientOpts{
			APIKey:    apiKey,
			APISecret: apiSecret,
		}),
		symbols: symbols,
	}
}

func (s *AlpacaNewsSource) FetchDay(ctx context.Context, year, month, day int) ([]types.RawArticle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

	news, err := s.client.GetNews(marketdata.GetNewsRequest{
		Symbols: s.symbols,
		Start:   start,
		End:     start.AddDate(0, 0, 1),
	})
	if err != nil {
		return nil, err
	}

	articles := make([]types.RawArticle, 0, len(news))
	for _, n := range news {
		articles = append(articles, types.RawArticle{
			Headline:    n.Headline,
			PublishedAt: n.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		})
	}
	return articles, nil
}
