package app

import (
	"math"
	"sort"

	"area-match-service/internal/domain"
)

const (
	// maxResults caps the recommendation list at the top three areas.
	maxResults = 3
	// defaultPropertyType is surfaced when an area has no type mapping entry.
	defaultPropertyType = "Apartment"
)

// CalculateResults folds a visitor's answers into a ranked list of area
// recommendations. The input may be partial; entries referencing unknown
// question IDs or out-of-range option indexes contribute nothing and never
// produce an error. An empty input yields an empty (non-nil error-free) slice.
func CalculateResults(catalog domain.Catalog, answers domain.QuizAnswers) []domain.QuizResult {
	questions := make(map[int]domain.QuizQuestion, len(catalog.Questions))
	for _, q := range catalog.Questions {
		questions[q.ID] = q
	}

	totals := make(map[string]int)
	for questionID, optionIndex := range validEntries(questions, answers) {
		option := questions[questionID].Options[optionIndex]
		for area, score := range option.Scores {
			totals[area] += score
		}
	}

	ranked := make([]domain.QuizResult, 0, len(totals))
	for area, score := range totals {
		ranked = append(ranked, domain.QuizResult{Area: area, Score: score})
	}
	// Score descending; equal scores break ties by area slug so the order
	// never depends on map iteration.
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Area < ranked[j].Area
	})
	if len(ranked) > maxResults {
		ranked = ranked[:maxResults]
	}

	for i := range ranked {
		ranked[i].PropertyType = defaultPropertyType
		if types := catalog.PropertyTypes(ranked[i].Area); len(types) > 0 {
			ranked[i].PropertyType = types[0]
		}
	}
	return ranked
}

// validEntries filters the raw answer set down to entries that reference an
// existing question and an in-range option index. Filtering is separate from
// accumulation so the lenient-ignore contract is testable on its own.
func validEntries(questions map[int]domain.QuizQuestion, answers domain.QuizAnswers) domain.QuizAnswers {
	valid := make(domain.QuizAnswers, len(answers))
	for questionID, optionIndex := range answers {
		question, ok := questions[questionID]
		if !ok {
			continue
		}
		if optionIndex < 0 || optionIndex >= len(question.Options) {
			continue
		}
		valid[questionID] = optionIndex
	}
	return valid
}

// MaxScore derives the maximum achievable total from the question set itself:
// the sum over questions of each question's highest single-option award for
// any one area. Deriving it keeps the percentage denominator in sync with the
// content when questions or score weights change.
func MaxScore(questions []domain.QuizQuestion) int {
	total := 0
	for _, q := range questions {
		best := 0
		for _, opt := range q.Options {
			for _, score := range opt.Scores {
				if score > best {
					best = score
				}
			}
		}
		total += best
	}
	return total
}

// MatchPercentage converts a score into a whole percentage of maxScore,
// rounding half away from zero. The result is not clamped: content that
// awards more than maxScore to one area yields values above 100. A
// non-positive maxScore is a configuration fault and returns
// ErrInvalidMaxScore rather than dividing by zero.
func MatchPercentage(score, maxScore int) (int, error) {
	if maxScore <= 0 {
		return 0, domain.ErrInvalidMaxScore
	}
	return int(math.Round(float64(score) / float64(maxScore) * 100)), nil
}

// ResultDescription renders the display blurb for a result as
// "{name} - {tagline}". Unknown areas yield an empty string.
func ResultDescription(catalog domain.Catalog, result domain.QuizResult) string {
	area, ok := catalog.AreaBySlug(result.Area)
	if !ok {
		return ""
	}
	return area.Name + " - " + area.Tagline
}
