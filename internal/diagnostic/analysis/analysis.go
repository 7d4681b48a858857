// Package analysis turns raw questionnaire responses into a learning
// profile: primary and secondary learning styles, top character traits,
// top interests and dimension scores.
package analysis

import (
	"sort"

	"github.com/shiningstar/learninglens/internal/diagnostic/questionnaire"
)

// StyleSummary is the learning style portion of an analysis result.
type StyleSummary struct {
	Primary          string   `json:"primary"`
	Secondary        []string `json:"secondary"`
	Description      string   `json:"description"`
	Strategies       []string `json:"strategies"`
	IdealEnvironment string   `json:"idealEnvironment"`
}

// TraitSummary is the character trait portion of an analysis result.
type TraitSummary struct {
	TopTraits    []string   `json:"topTraits"`
	Descriptions []string   `json:"descriptions"`
	Strengths    [][]string `json:"strengths"`
}

// InterestSummary is the interest area portion of an analysis result.
type InterestSummary struct {
	TopInterests   []string   `json:"topInterests"`
	Descriptions   []string   `json:"descriptions"`
	RelatedCareers [][]string `json:"relatedCareers"`
	ProgramTracks  [][]string `json:"programTracks"`
}

// Result is the full learning profile derived from a response set.
type Result struct {
	LearningStyles  StyleSummary    `json:"learningStyles"`
	Traits          TraitSummary    `json:"traits"`
	Interests       InterestSummary `json:"interests"`
	DimensionScores map[string]int  `json:"dimensionScores"`
}

// Question IDs feeding each dimension score.
var dimensionQuestions = map[string][]string{
	"logical_thinking": {"ps_1", "mid_2", "high_2"},
	"creativity":       {"cr_1", "elem_3", "mid_3", "high_3"},
	"social_skills":    {"ls_3", "mid_6", "high_6"},
	"self_direction":   {"bh_1", "tm_1", "high_4"},
}

// tally counts votes per key while remembering first-seen order so that
// ranking stays deterministic when counts tie.
type tally struct {
	counts map[string]int
	order  []string
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func isCataloguedStyle(style string) bool {
	_, ok := LearningStyles[style]
	return ok
}

func (t *tally) add(key string) {
	if _, ok := t.counts[key]; !ok {
		t.order = append(t.order, key)
	}
	t.counts[key]++
}

func (t *tally) len() int { return len(t.counts) }

// top returns up to n keys ordered by count descending, ties broken by
// first appearance.
func (t *tally) top(n int) []string {
	firstSeen := make(map[string]int, len(t.order))
	for i, key := range t.order {
		firstSeen[key] = i
	}

	ranked := make([]string, len(t.order))
	copy(ranked, t.order)
	sort.SliceStable(ranked, func(i, j int) bool {
		if t.counts[ranked[i]] != t.counts[ranked[j]] {
			return t.counts[ranked[i]] > t.counts[ranked[j]]
		}
		return firstSeen[ranked[i]] < firstSeen[ranked[j]]
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Analyze derives the learning profile for a student of the given age from
// their questionnaire responses (question ID to selected option index).
func Analyze(responses map[string]int, age int) Result {
	styleCounts := newTally()
	traitCounts := newTally()
	interestCounts := newTally()

	// Walk questions in bank order rather than map order so that tie
	// breaking does not depend on map iteration.
	for _, q := range questionnaire.QuestionsForAge(age) {
		answer, ok := responses[q.ID]
		if !ok || answer < 0 {
			continue
		}

		switch {
		case q.Category == "learning_style" && answer < len(q.LearningStyleMapping):
			// ls_3 maps some answers to collaboration preferences
			// (guided, flexible) that have no catalog profile; only
			// catalogued styles are electable.
			if style := q.LearningStyleMapping[answer]; isCataloguedStyle(style) {
				styleCounts.add(style)
			}
		case len(q.TraitMapping) > 0:
			if answer < len(q.TraitMapping) {
				traitCounts.add(q.TraitMapping[answer])
			}
		case answer < len(q.InterestMapping):
			interestCounts.add(q.InterestMapping[answer])
		}
	}

	primary := "visual"
	var secondary []string
	if styleCounts.len() > 0 {
		ranked := styleCounts.top(3)
		primary = ranked[0]
		if len(ranked) > 1 {
			secondary = ranked[1:]
		}
	}

	topTraits := traitCounts.top(3)
	topInterests := interestCounts.top(3)

	primaryProfile := LearningStyles[primary]

	result := Result{
		LearningStyles: StyleSummary{
			Primary:          primary,
			Secondary:        secondary,
			Description:      primaryProfile.Description,
			Strategies:       primaryProfile.Strategies,
			IdealEnvironment: primaryProfile.IdealEnvironment,
		},
		DimensionScores: make(map[string]int, len(dimensionQuestions)),
	}

	result.Traits.TopTraits = topTraits
	for _, trait := range topTraits {
		profile, ok := Traits[trait]
		if !ok {
			result.Traits.Descriptions = append(result.Traits.Descriptions, "")
			result.Traits.Strengths = append(result.Traits.Strengths, []string{})
			continue
		}
		result.Traits.Descriptions = append(result.Traits.Descriptions, profile.Description)
		result.Traits.Strengths = append(result.Traits.Strengths, profile.Strengths)
	}

	result.Interests.TopInterests = topInterests
	for _, interest := range topInterests {
		profile, ok := Interests[interest]
		if !ok {
			result.Interests.Descriptions = append(result.Interests.Descriptions, "")
			result.Interests.RelatedCareers = append(result.Interests.RelatedCareers, []string{})
			result.Interests.ProgramTracks = append(result.Interests.ProgramTracks, []string{})
			continue
		}
		result.Interests.Descriptions = append(result.Interests.Descriptions, profile.Description)
		result.Interests.RelatedCareers = append(result.Interests.RelatedCareers, profile.RelatedCareers)
		result.Interests.ProgramTracks = append(result.Interests.ProgramTracks, profile.ProgramTracks)
	}

	for dimension, ids := range dimensionQuestions {
		result.DimensionScores[dimension] = dimensionScore(responses, ids)
	}

	return result
}

// dimensionScore normalizes a dimension to 0-100. The first two options of
// a question count low, the last two count high. Unanswered dimensions
// fall back to the midpoint.
func dimensionScore(responses map[string]int, relevantIDs []string) int {
	positive := 0
	maxPossible := 0

	for _, id := range relevantIDs {
		answer, ok := responses[id]
		if !ok {
			continue
		}
		if answer >= 2 {
			positive++
		}
		maxPossible++
	}

	if maxPossible == 0 {
		return 50
	}
	return positive * 100 / maxPossible
}
