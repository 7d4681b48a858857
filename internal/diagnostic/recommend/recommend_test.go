package recommend

import (
	"testing"

	"github.com/shiningstar/learninglens/internal/diagnostic/analysis"
	"github.com/shiningstar/learninglens/internal/diagnostic/pathway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logicalTechResult() analysis.Result {
	return analysis.Result{
		LearningStyles: analysis.StyleSummary{
			Primary:   "logical",
			Secondary: []string{"visual", "independent"},
		},
		Traits:    analysis.TraitSummary{TopTraits: []string{"analytical", "persistent", "organized"}},
		Interests: analysis.InterestSummary{TopInterests: []string{"tech", "science"}},
	}
}

func TestCourses_TopPicksForTechProfile(t *testing.T) {
	result := logicalTechResult()
	p := pathway.Generate(result, 14)

	recs := Courses(result, p, 14, 3)

	require.Len(t, recs, 3)
	// TECH301 hits every scoring bucket for this profile at age 14.
	assert.Equal(t, "TECH301", recs[0].ID)
	assert.NotEmpty(t, recs[0].PersonalizedBenefit)
	for _, rec := range recs {
		assert.True(t, pathway.AgeInRange(14, rec.AgeRange), "course %s out of age range", rec.ID)
	}
}

func TestCourses_ScoresDescending(t *testing.T) {
	result := logicalTechResult()
	p := pathway.Generate(result, 13)

	recs := Courses(result, p, 13, 3)

	require.Len(t, recs, 3)
	assert.GreaterOrEqual(t, recs[0].FitScore, recs[1].FitScore)
	assert.GreaterOrEqual(t, recs[1].FitScore, recs[2].FitScore)
}

func TestFitScore_FullMatch(t *testing.T) {
	result := logicalTechResult()
	course := Course{
		ID: "TECH301", Category: "tech",
		LearningStyles: []string{"logical", "visual", "independent"},
		Traits:         []string{"analytical", "persistent", "organized"},
		Popularity:     92,
	}

	// 30 primary + 10 secondary + 21 traits + 20 interest + 9.2 popularity.
	assert.InDelta(t, 90.2, FitScore(course, result), 0.001)
}

func TestFitScore_SecondInterestCategory(t *testing.T) {
	result := logicalTechResult()
	course := Course{ID: "SCI301", Category: "science", Popularity: 75}

	// No style or trait overlap recorded on the course itself.
	assert.InDelta(t, 15+7.5, FitScore(course, result), 0.001)
}

func TestCourses_PersonalizedBenefitText(t *testing.T) {
	result := logicalTechResult()
	p := pathway.Generate(result, 14)

	recs := Courses(result, p, 14, 1)

	require.Len(t, recs, 1)
	benefit := recs[0].PersonalizedBenefit
	assert.Contains(t, benefit, recs[0].Benefits)
	assert.Contains(t, benefit, "logical learning style")
	assert.Contains(t, benefit, "analytical abilities")
}

func TestCourses_BackfillsByPopularity(t *testing.T) {
	// Profile whose categories offer only two age-appropriate courses at 17:
	// science has SCI301, language has LANG201 and LANG301.
	result := analysis.Result{
		LearningStyles: analysis.StyleSummary{Primary: "auditory"},
		Interests:      analysis.InterestSummary{TopInterests: []string{"science"}},
	}
	p := pathway.Pathway{PrimaryCategory: "science", SecondaryCategory: "language"}

	recs := Courses(result, p, 17, 5)

	require.Len(t, recs, 5)
	ids := make(map[string]bool)
	for _, rec := range recs {
		assert.False(t, ids[rec.ID], "duplicate course %s", rec.ID)
		ids[rec.ID] = true
	}
	// Backfill pulls the most popular age-appropriate course elsewhere.
	assert.True(t, ids["TECH301"])
}
