package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// visualTechResponses is a 16-year-old profile leaning visual / tech.
func visualTechResponses() map[string]int {
	return map[string]int{
		"ls_1":   0, // visual
		"ls_2":   0, // visual
		"ls_3":   1, // independent
		"ps_1":   2, // persistent
		"bh_1":   1, // independent
		"cr_1":   2, // innovative
		"tm_1":   1, // methodical
		"cm_1":   0, // visual (trait)
		"in_1":   2, // tech
		"in_2":   0, // tech
		"high_1": 0, // visual
		"high_5": 0, // tech
	}
}

func TestAnalyze_PrimaryAndSecondaryStyles(t *testing.T) {
	result := Analyze(visualTechResponses(), 16)

	assert.Equal(t, "visual", result.LearningStyles.Primary)
	require.Len(t, result.LearningStyles.Secondary, 1)
	assert.Equal(t, "independent", result.LearningStyles.Secondary[0])
	assert.Equal(t, LearningStyles["visual"].Description, result.LearningStyles.Description)
	assert.Len(t, result.LearningStyles.Strategies, 4)
}

func TestAnalyze_TopInterests(t *testing.T) {
	result := Analyze(visualTechResponses(), 16)

	require.NotEmpty(t, result.Interests.TopInterests)
	assert.Equal(t, "tech", result.Interests.TopInterests[0])
	assert.Equal(t, Interests["tech"].Description, result.Interests.Descriptions[0])
	assert.Contains(t, result.Interests.RelatedCareers[0], "Software Developer")
}

func TestAnalyze_EmptyResponsesDefaults(t *testing.T) {
	result := Analyze(map[string]int{}, 12)

	assert.Equal(t, "visual", result.LearningStyles.Primary)
	assert.Empty(t, result.LearningStyles.Secondary)
	assert.Empty(t, result.Traits.TopTraits)
	for _, score := range result.DimensionScores {
		assert.Equal(t, 50, score)
	}
}

func TestAnalyze_UncataloguedStyleVotesNotElectable(t *testing.T) {
	// ls_3's last two options map to preferences without a catalog
	// profile; answering them must not elect an empty primary style.
	result := Analyze(map[string]int{"ls_3": 2}, 9)

	assert.Equal(t, "visual", result.LearningStyles.Primary)
	assert.Empty(t, result.LearningStyles.Secondary)
	assert.NotEmpty(t, result.LearningStyles.Description)

	set := GenerateBadges(result)
	assert.Equal(t, "Visual Virtuoso", set.Primary.Title)
}

func TestAnalyze_UncataloguedStyleDoesNotShadowRealVote(t *testing.T) {
	result := Analyze(map[string]int{"ls_1": 1, "ls_3": 3}, 9)

	assert.Equal(t, "auditory", result.LearningStyles.Primary)
	assert.Empty(t, result.LearningStyles.Secondary)
}

func TestAnalyze_UnknownQuestionsIgnored(t *testing.T) {
	result := Analyze(map[string]int{"bogus_1": 0, "ls_1": 1}, 9)

	assert.Equal(t, "auditory", result.LearningStyles.Primary)
}

func TestAnalyze_DimensionScores(t *testing.T) {
	// Two of three logical_thinking questions answered, one positively.
	responses := map[string]int{
		"ps_1":  3,
		"mid_2": 0,
	}
	result := Analyze(responses, 12)

	assert.Equal(t, 50, result.DimensionScores["logical_thinking"])
	assert.Equal(t, 50, result.DimensionScores["creativity"])
}

func TestAnalyze_DimensionScoreAllPositive(t *testing.T) {
	responses := map[string]int{
		"bh_1":   2,
		"tm_1":   3,
		"high_4": 2,
	}
	result := Analyze(responses, 16)

	assert.Equal(t, 100, result.DimensionScores["self_direction"])
}

func TestAnalyze_SingleTraitMappingCountsFirstOptionOnly(t *testing.T) {
	// elem_2 maps only its correct option to a trait.
	correct := Analyze(map[string]int{"elem_2": 0}, 8)
	assert.Contains(t, correct.Traits.TopTraits, "pattern_recognition")

	wrong := Analyze(map[string]int{"elem_2": 2}, 8)
	assert.NotContains(t, wrong.Traits.TopTraits, "pattern_recognition")
}

func TestGenerateBadges_PrimaryAndSecondary(t *testing.T) {
	result := Analyze(visualTechResponses(), 16)
	set := GenerateBadges(result)

	assert.Equal(t, "Visual Virtuoso", set.Primary.Title)

	titles := make([]string, 0, len(set.Secondary))
	for _, b := range set.Secondary {
		titles = append(titles, b.Title)
	}
	assert.Contains(t, titles, "Tech Wizard")
}

func TestGenerateBadges_Combinations(t *testing.T) {
	result := Result{
		LearningStyles: StyleSummary{Primary: "logical"},
		Traits:         TraitSummary{TopTraits: []string{"creative", "leadership"}},
		Interests:      InterestSummary{TopInterests: []string{"tech", "entrepreneurship"}},
	}

	set := GenerateBadges(result)

	titles := make([]string, 0, len(set.Combination))
	for _, b := range set.Combination {
		titles = append(titles, b.Title)
	}
	assert.Contains(t, titles, "Code Commander")
	assert.Contains(t, titles, "Future CEO")
	assert.Contains(t, titles, "Innovation Architect")
	assert.NotContains(t, titles, "Design Dynamo")
}

func TestCompareParentResponses_Alignment(t *testing.T) {
	studentResult := Result{
		LearningStyles: StyleSummary{Primary: "visual"},
		Traits:         TraitSummary{TopTraits: []string{"persistent", "independent"}},
		Interests:      InterestSummary{TopInterests: []string{"tech", "arts"}},
	}
	parentResponses := map[string]int{
		"parent_1": 0, // visual
		"parent_3": 2, // persistent
		"parent_5": 0, // tech
	}

	comparison := CompareParentResponses(parentResponses, studentResult)

	assert.Len(t, comparison.Alignments, 3)
	assert.Empty(t, comparison.Differences)
	assert.Empty(t, comparison.Insights)
}

func TestCompareParentResponses_Differences(t *testing.T) {
	studentResult := Result{
		LearningStyles: StyleSummary{Primary: "kinesthetic"},
		Traits:         TraitSummary{TopTraits: []string{"creative"}},
		Interests:      InterestSummary{TopInterests: []string{"science", "language"}},
	}
	parentResponses := map[string]int{
		"parent_1": 0, // visual, student is kinesthetic
		"parent_5": 1, // arts, not a student interest
	}

	comparison := CompareParentResponses(parentResponses, studentResult)

	require.Len(t, comparison.Differences, 2)
	assert.Contains(t, comparison.Differences[0], "Kinesthetic Learner")
	require.Len(t, comparison.Insights, 2)
	assert.Contains(t, comparison.Insights[0], "kinesthetic learner")
	assert.Contains(t, comparison.Insights[1], "scientific research")
}

func TestCompareParentResponses_EmptyParentResponses(t *testing.T) {
	studentResult := Result{LearningStyles: StyleSummary{Primary: "visual"}}

	comparison := CompareParentResponses(map[string]int{}, studentResult)

	// No parent style extracted counts as a difference, not an alignment.
	assert.Empty(t, comparison.Alignments)
	require.Len(t, comparison.Differences, 1)
	assert.Contains(t, comparison.Differences[0], "different type of learner")
}
