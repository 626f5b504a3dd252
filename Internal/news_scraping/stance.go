package newsscraping

import (
	"strings"

	"github.com/fazecat/newspulse/Internal/types"
)

// StanceRules holds the ordered phrase lists used to label a headline as
// support or opposition. Matching is case-sensitive substring containment:
// the support list is scanned first and the first hit wins, so list order is
// the tie-break. That is a policy choice carried over from the reference
// rules, not something inherent to the domain — swap the lists (or the whole
// detector) for a real classifier when one is available.
type StanceRules struct {
	Support    []string
	Opposition []string
}

// DefaultStanceRules returns the reference phrase lists for the default
// Israel/Gaza harvest topic.
func DefaultStanceRules() StanceRules {
	return StanceRules{
		Support: []string{
			"stands with Israel",
			"supports Israel",
			"in favor of Israel",
			"with Israel",
			"attack on Israel",
		},
		Opposition: []string{
			"against Israel",
			"opposes Israel",
			"condemns Israel",
			"Hamas Attack",
			"Genocide",
			"accuses Israel",
		},
	}
}

// Detect labels a headline +1/-1/0.
func (r StanceRules) Detect(text string) types.Stance {
	for _, phrase := range r.Support {
		if strings.Contains(text, phrase) {
			return types.StanceSupport
		}
	}
	for _, phrase := range r.Opposition {
		if strings.Contains(text, phrase) {
			return types.StanceOpposition
		}
	}
	return types.StanceNeutral
}
