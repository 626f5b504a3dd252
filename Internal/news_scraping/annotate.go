package newsscraping

import "github.com/fazecat/newspulse/Internal/types"

// Annotate attaches a sentiment polarity and a stance label to every record.
// It is pure: same records, same scorer and same rules always produce the
// same output, and the input slice is never modified.
func Annotate(records []types.ArticleRecord, score ScoreFunc, rules StanceRules) []types.AnnotatedArticle {
	annotated := make([]types.AnnotatedArticle, 0, len(records))
	for _, r := range records {
		annotated = append(annotated, types.AnnotatedArticle{
			ArticleRecord: r,
			Sentiment:     score(r.Headline),
			Stance:        rules.Detect(r.Headline),
		})
	}
	return annotated
}
