package careers

import (
	"testing"

	"github.com/shiningstar/learninglens/internal/diagnostic/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest_TechProfile(t *testing.T) {
	result := analysis.Result{
		LearningStyles: analysis.StyleSummary{Primary: "logical"},
		Traits:         analysis.TraitSummary{TopTraits: []string{"analytical", "persistent"}},
		Interests:      analysis.InterestSummary{TopInterests: []string{"tech", "science", "arts"}},
	}

	affinities := Suggest(result)

	assert.Equal(t, "Technology & Computing", affinities.PrimaryField)
	require.Len(t, affinities.PrimaryCareers, 3)
	assert.Equal(t, "Software Developer", affinities.PrimaryCareers[0].Title)
	assert.Equal(t, "Robotics Engineer", affinities.PrimaryCareers[2].Title)

	// One career each from the top two secondary fields (science, arts).
	require.Len(t, affinities.SecondaryCareers, 2)
	assert.Equal(t, "Data Scientist", affinities.SecondaryCareers[0].Title)
	assert.Equal(t, "UX/UI Designer", affinities.SecondaryCareers[1].Title)

	assert.NotEmpty(t, affinities.Disclaimer)
}

func TestSuggest_EducationPathsBlendPrimaryAndSecondary(t *testing.T) {
	result := analysis.Result{
		LearningStyles: analysis.StyleSummary{Primary: "visual"},
		Interests:      analysis.InterestSummary{TopInterests: []string{"arts", "tech"}},
	}

	affinities := Suggest(result)

	// 3 majors from arts + 2 from tech.
	require.Len(t, affinities.EducationPaths.CollegeMajors, 5)
	assert.Equal(t, "Graphic Design", affinities.EducationPaths.CollegeMajors[0])
	assert.Equal(t, "Computer Science", affinities.EducationPaths.CollegeMajors[3])

	// 2 alternative paths from arts + 1 from tech.
	require.Len(t, affinities.EducationPaths.AlternativePaths, 3)
	assert.Equal(t, "Coding bootcamps", affinities.EducationPaths.AlternativePaths[2])
	assert.NotEmpty(t, affinities.EducationPaths.Note)
}

func TestSuggest_NoInterestsFallsBackToStyle(t *testing.T) {
	result := analysis.Result{
		LearningStyles: analysis.StyleSummary{Primary: "social"},
	}

	affinities := Suggest(result)

	assert.Equal(t, "Business & Entrepreneurship", affinities.PrimaryField)
	// Secondary comes from the style mapping.
	require.NotEmpty(t, affinities.SecondaryCareers)
	assert.Equal(t, "Content Creator", affinities.SecondaryCareers[0].Title)
}

func TestSecondaryCategories_DedupAndOrder(t *testing.T) {
	got := secondaryCategories("tech", []string{"tech", "science"}, "logical", []string{"analytical", "creative"})

	// science from interests, then arts and language from the creative trait.
	assert.Equal(t, []string{"science", "arts", "language"}, got)
}

func TestSecondaryCategories_EmptyProfileFallback(t *testing.T) {
	got := secondaryCategories("tech", nil, "unknown", nil)

	assert.Equal(t, []string{"arts"}, got)
}

func TestSelectCareers_UnknownCategory(t *testing.T) {
	assert.Empty(t, selectCareers("music", 3))
}
