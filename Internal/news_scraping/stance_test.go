package newsscraping

import (
	"testing"

	"github.com/fazecat/newspulse/Internal/types"
)

func TestStanceDetect(t *testing.T) {
	rules := DefaultStanceRules()

	tests := []struct {
		name     string
		headline string
		want     types.Stance
	}{
		{
			name:     "support phrase",
			headline: "European Parliament stands with Israel after crisis talks",
			want:     types.StanceSupport,
		},
		{
			name:     "opposition phrase",
			headline: "UN official condemns Israel over strikes",
			want:     types.StanceOpposition,
		},
		{
			name:     "no phrase matches",
			headline: "Oil prices steady amid regional uncertainty",
			want:     types.StanceNeutral,
		},
		{
			name:     "support list scanned before opposition",
			headline: "Senators voice support with Israel, others protest against Israel",
			want:     types.StanceSupport,
		},
		{
			name:     "matching is case-sensitive",
			headline: "ANALYSTS SAY MARKETS MOVED AGAINST ISRAEL EXPECTATIONS",
			want:     types.StanceNeutral,
		},
		{
			name:     "capitalized opposition keyword",
			headline: "Report warns of Genocide risk in the region",
			want:     types.StanceOpposition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rules.Detect(tt.headline); got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.headline, got, tt.want)
			}
		})
	}
}

func TestStanceDeterminism(t *testing.T) {
	rules := DefaultStanceRules()
	headlines := []string{
		"Nation stands with Israel after attack",
		"Rights group accuses Israel of strikes",
		"Weather improves across the coast",
		"Leaders condemn Hamas Attack in joint statement",
	}

	first := make([]types.Stance, len(headlines))
	for i, h := range headlines {
		first[i] = rules.Detect(h)
	}

	for run := 0; run < 5; run++ {
		for i, h := range headlines {
			if got := rules.Detect(h); got != first[i] {
				t.Fatalf("run %d: Detect(%q) = %v, previously %v", run, h, got, first[i])
			}
		}
	}
}

func TestStanceCustomRuleOrder(t *testing.T) {
	// First match wins within a list, so a broad phrase earlier in the list
	// shadows a narrower one later.
	rules := StanceRules{
		Support:    []string{"deal", "peace deal"},
		Opposition: []string{"collapse"},
	}

	if got := rules.Detect("peace deal talks collapse"); got != types.StanceSupport {
		t.Errorf("support list must be scanned before opposition, got %v", got)
	}
}
