package mathpath

import (
	"testing"

	"github.com/shiningstar/learninglens/internal/diagnostic/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineTrackType(t *testing.T) {
	tests := []struct {
		name      string
		primary   string
		secondary []string
		traits    []string
		want      string
	}{
		{"visual persistent leans abacus", "visual", nil, []string{"persistent"}, "abacus"},
		{"logical analytical leans vedic", "logical", nil, []string{"analytical"}, "vedic"},
		{"social collaborative leans integrated", "social", nil, []string{"collaborative", "leadership"}, "integrated"},
		{"empty profile defaults integrated", "", nil, nil, "integrated"},
		{"secondary styles at half weight", "independent", []string{"visual", "kinesthetic"}, nil, "abacus"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetermineTrackType(tt.primary, tt.secondary, tt.traits)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerate_AbacusPlanForYoungVisualLearner(t *testing.T) {
	result := analysis.Result{
		LearningStyles: analysis.StyleSummary{Primary: "visual"},
		Traits:         analysis.TraitSummary{TopTraits: []string{"persistent", "organized"}},
	}

	plan := Generate(result, 7)

	assert.Equal(t, "abacus", plan.Type)
	assert.Equal(t, "Abacus Mathematics", plan.Title)
	assert.Len(t, plan.Benefits, 5)
	assert.Len(t, plan.Competitions, 2)
	assert.Len(t, plan.CareerConnections, 5)

	// Age 7 starts at the Beginner level and walks three levels.
	require.Len(t, plan.JourneySteps, 3)
	assert.Equal(t, "Beginner", plan.JourneySteps[0].Level.Level)
	assert.Equal(t, "Advanced", plan.JourneySteps[2].Level.Level)

	// Elementary abacus beginner courses.
	require.NotEmpty(t, plan.RecommendedCourses)
	assert.Equal(t, "MATH101", plan.RecommendedCourses[0].ID)
}

func TestGenerate_ExpertLevelPadsFromIntegrated(t *testing.T) {
	result := analysis.Result{
		LearningStyles: analysis.StyleSummary{Primary: "logical"},
		Traits:         analysis.TraitSummary{TopTraits: []string{"analytical"}},
	}

	plan := Generate(result, 16)

	assert.Equal(t, "vedic", plan.Type)
	require.Len(t, plan.JourneySteps, 3)
	// Only Expert remains on the vedic track; the rest comes from the
	// integrated track, skipping duplicate level names.
	assert.Equal(t, "Expert", plan.JourneySteps[0].Level.Level)
	assert.Equal(t, "Mathematical Thinking Foundations", plan.JourneySteps[1].Title)
	assert.Equal(t, "Multi-Method Calculation", plan.JourneySteps[2].Title)
}

func TestGenerate_PersonalizedDescription(t *testing.T) {
	result := analysis.Result{
		LearningStyles: analysis.StyleSummary{Primary: "kinesthetic"},
		Traits:         analysis.TraitSummary{TopTraits: []string{"persistent"}},
		Interests:      analysis.InterestSummary{TopInterests: []string{"mathematics"}},
	}

	plan := Generate(result, 9)

	assert.Contains(t, plan.PersonalizedDescription, "hands-on learning style")
	assert.Contains(t, plan.PersonalizedDescription, "Your persistence will be valuable")
	assert.Contains(t, plan.PersonalizedDescription, "intrinsic motivation")
}

func TestRecommendedCourses_FallsBackToIntegrated(t *testing.T) {
	// No expert-level vedic course exists for middle schoolers, so the
	// integrated courses fill in.
	got := recommendedCourses(13, "vedic", 3)

	require.NotEmpty(t, got)
	assert.Equal(t, "integrated", got[0].Pathway)
}

func TestExamRecommendations_MiddleSchool(t *testing.T) {
	recs := ExamRecommendations("vedic", 12)

	require.Len(t, recs, 5)
	// Track competitions come first when age-eligible.
	assert.Equal(t, "Speed Calculation Championship", recs[0].Name)
	assert.Equal(t, "American Mathematics Competition 8 (AMC 8)", recs[1].Name)
	assert.Equal(t, "Math Counts", recs[2].Name)
}

func TestExamRecommendations_HighSchool(t *testing.T) {
	recs := ExamRecommendations("integrated", 17)

	require.NotEmpty(t, recs)
	names := make([]string, 0, len(recs))
	for _, rec := range recs {
		names = append(names, rec.Name)
	}
	assert.Contains(t, names, "American Mathematics Competition 10/12 (AMC 10/12)")
	assert.LessOrEqual(t, len(recs), 5)
}
