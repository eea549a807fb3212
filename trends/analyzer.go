package trends

import (
	"context"
	"log/slog"
	"slices"

	"github.com/poiesic/diarit/core"
	"github.com/poiesic/diarit/storage"
)

// Emotional pattern labels reported by Analyze.
const (
	PatternPositive     = "positive"
	PatternStable       = "stable"
	PatternNeedsSupport = "needs-support"
)

const (
	// maxThemes bounds the common-themes list.
	maxThemes = 5

	positiveThreshold = 4
	supportThreshold  = 2.5
)

// Analyzer derives long-term tendencies from a user's stored diary context:
// recurring themes, an overall emotional pattern, and canned suggestions.
type Analyzer struct {
	repository storage.ContextRepository
	logger     *slog.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(a *Analyzer) error {
		if logger == nil {
			logger = slog.Default()
		}
		a.logger = logger
		return nil
	}
}

// NewAnalyzer creates a new trend analyzer.
func NewAnalyzer(repository storage.ContextRepository, opts ...Option) (*Analyzer, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	a := &Analyzer{
		repository: repository,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	return a, nil
}

// Analyze builds a trend report over all of the user's context records.
// Unknown users are seeded first, so the report is never computed over an
// empty history.
func (a *Analyzer) Analyze(ctx context.Context, userID string) (*core.TrendReport, error) {
	records, err := a.repository.GetOrSeed(ctx, userID)
	if err != nil {
		a.logger.Error("error loading user context", "user", userID, "err", err)
		return nil, err
	}

	themes := commonThemes(records)
	mean := meanScore(records)

	pattern := PatternStable
	if mean > positiveThreshold {
		pattern = PatternPositive
	} else if mean < supportThreshold {
		pattern = PatternNeedsSupport
	}

	return &core.TrendReport{
		CommonThemes:     themes,
		EmotionalPattern: pattern,
		Suggestions:      buildSuggestions(themes, mean),
	}, nil
}

// commonThemes counts keyword frequency across records and returns the top
// themes by count. The sort is stable over first-appearance order, so equally
// frequent themes rank in the order the diary first mentioned them.
func commonThemes(records []*core.ContextRecord) []string {
	counts := make(map[string]int)
	var order []string
	for _, record := range records {
		for _, keyword := range record.Keywords {
			if keyword == "" {
				continue
			}
			if _, seen := counts[keyword]; !seen {
				order = append(order, keyword)
			}
			counts[keyword]++
		}
	}

	slices.SortStableFunc(order, func(x, y string) int {
		return counts[y] - counts[x]
	})

	if len(order) > maxThemes {
		order = order[:maxThemes]
	}
	return order
}

// meanScore averages the overall emotion score across records.
func meanScore(records []*core.ContextRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	var sum float64
	for _, record := range records {
		sum += record.Emotions.OverallScore
	}
	return sum / float64(len(records))
}

// buildSuggestions applies the rule set in order, so suggestion output is
// deterministic for a given report.
func buildSuggestions(themes []string, mean float64) []string {
	suggestions := make([]string, 0, 3)

	if slices.Contains(themes, "仕事") && mean < 3 {
		suggestions = append(suggestions, "仕事のストレス管理について考えてみましょう")
	}
	if slices.Contains(themes, "家族") && mean > 4 {
		suggestions = append(suggestions, "家族との時間が幸せの源になっているようです")
	}
	if !slices.Contains(themes, "運動") && !slices.Contains(themes, "健康") {
		suggestions = append(suggestions, "健康的な習慣を取り入れることを検討してみては？")
	}

	return suggestions
}
