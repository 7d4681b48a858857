package exams

import (
	"testing"

	"github.com/shiningstar/learninglens/internal/diagnostic/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommend_AgeGroups(t *testing.T) {
	result := analysis.Result{}

	assert.Equal(t, "elementary", Recommend(result, 10).AgeGroup)
	assert.Equal(t, "middle", Recommend(result, 13).AgeGroup)
	assert.Equal(t, "high", Recommend(result, 14).AgeGroup)
}

func TestRecommend_LogicalAnalyticalMiddleSchooler(t *testing.T) {
	result := analysis.Result{
		LearningStyles: analysis.StyleSummary{Primary: "logical"},
		Traits:         analysis.TraitSummary{TopTraits: []string{"analytical"}},
		Interests:      analysis.InterestSummary{TopInterests: []string{"science"}},
	}

	rec := Recommend(result, 12)

	require.Equal(t, "middle", rec.AgeGroup)

	// Weights land at 1.0 for aptitude and competition, so both
	// categories come back in full.
	assert.Len(t, rec.RecommendedExams["aptitude"], 3)
	assert.Len(t, rec.RecommendedExams["competition"], 4)
	assert.Len(t, rec.RecommendedExams["academic"], 2)
	assert.Len(t, rec.RecommendedExams["talent_search"], 1)
	assert.Len(t, rec.RecommendedExams["certification"], 1)

	// The science interest bumps IJSO ahead of the math contests.
	assert.Equal(t, "International Junior Science Olympiad (IJSO)", rec.RecommendedExams["competition"][0].Name)
	assert.Equal(t, "Johns Hopkins Center for Talented Youth (CTY)", rec.RecommendedExams["talent_search"][0].Name)
}

func TestRecommend_LanguageInterestPrioritizesLanguageCertifications(t *testing.T) {
	result := analysis.Result{
		LearningStyles: analysis.StyleSummary{Primary: "auditory"},
		Interests:      analysis.InterestSummary{TopInterests: []string{"language"}},
	}

	rec := Recommend(result, 16)

	certs := rec.RecommendedExams["certification"]
	require.Len(t, certs, 3)
	names := []string{certs[0].Name, certs[1].Name, certs[2].Name}
	assert.Contains(t, names, "Cambridge English: Advanced (CAE)")
	assert.Contains(t, names, "IELTS (International English Language Testing System)")
	assert.Contains(t, names, "TOEFL (Test of English as a Foreign Language)")
	assert.NotContains(t, names, "AP (Advanced Placement) Exams")

	// Auditory learners get fewer competition picks.
	assert.Len(t, rec.RecommendedExams["competition"], 2)
}

func TestRecommend_UnknownStyleUsesDefaultWeights(t *testing.T) {
	rec := Recommend(analysis.Result{}, 8)

	// Every category falls back to the 0.7 weight.
	assert.Len(t, rec.RecommendedExams["academic"], 2)
	assert.Len(t, rec.RecommendedExams["aptitude"], 2)
	assert.Len(t, rec.RecommendedExams["competition"], 2)
	assert.Len(t, rec.RecommendedExams["talent_search"], 1)
	assert.Len(t, rec.RecommendedExams["certification"], 1)
}

func TestPersonalizedRecommendations(t *testing.T) {
	result := analysis.Result{
		LearningStyles: analysis.StyleSummary{Primary: "logical"},
		Traits:         analysis.TraitSummary{TopTraits: []string{"analytical"}},
	}

	rec := Recommend(result, 12)

	require.Len(t, rec.Personalized, 7)
	assert.Contains(t, rec.Personalized[0], "logical learning style")
	assert.Contains(t, rec.Personalized[1], "analytical nature")
	assert.Contains(t, rec.Personalized[2], "Academic assessments like")
	assert.Contains(t, rec.Personalized[3], "Aptitude tests like")
	assert.Contains(t, rec.Personalized[4], "Competitions like")
	assert.Contains(t, rec.Personalized[5], "Certifications like")
	assert.Contains(t, rec.Personalized[6], "balanced approach")
}

func TestPersonalizedRecommendations_EmptyProfile(t *testing.T) {
	rec := Recommend(analysis.Result{}, 8)

	// No style or trait sentence, just the category and balanced
	// approach guidance.
	require.Len(t, rec.Personalized, 5)
	assert.Contains(t, rec.Personalized[0], "Academic assessments like")
	assert.Contains(t, rec.Personalized[4], "balanced approach")
}

func TestPreparationStrategies(t *testing.T) {
	result := analysis.Result{
		LearningStyles: analysis.StyleSummary{Primary: "visual"},
		Traits:         analysis.TraitSummary{TopTraits: []string{"organized"}},
	}

	rec := Recommend(result, 9)

	// 5 general + 3 style + 2 trait + 4 exam-type strategies.
	require.Len(t, rec.PreparationStrategies, 14)
	assert.Equal(t, "Start preparation well in advance of examination dates", rec.PreparationStrategies[0])
	assert.Equal(t, "Use visual study aids like mind maps, diagrams, and charts", rec.PreparationStrategies[5])
	assert.Equal(t, "Create detailed study plans and schedules", rec.PreparationStrategies[8])
	assert.Equal(t, "For certifications: Focus on meeting specific requirements and standards", rec.PreparationStrategies[13])
}

func TestPreparationStrategies_EmptyProfile(t *testing.T) {
	rec := Recommend(analysis.Result{}, 9)

	require.Len(t, rec.PreparationStrategies, 9)
	assert.Equal(t, "For academic assessments: Focus on thorough understanding of curriculum content", rec.PreparationStrategies[5])
}

func TestCategories_AllAgeGroupsCovered(t *testing.T) {
	for _, group := range []string{"elementary", "middle", "high"} {
		for _, category := range categoryOrder {
			assert.NotEmpty(t, examCatalog[group][category], "%s/%s", group, category)
			assert.NotEmpty(t, Categories[category])
		}
	}
}
