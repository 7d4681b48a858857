package report

import (
	"regexp"
	"testing"
	"time"

	"github.com/shiningstar/learninglens/internal/diagnostic/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func visualAnalyticalProfile() Profile {
	return Profile{
		Result: analysis.Result{
			LearningStyles: analysis.StyleSummary{
				Primary:   "visual",
				Secondary: []string{"logical"},
			},
			Traits:    analysis.TraitSummary{TopTraits: []string{"analytical", "persistent"}},
			Interests: analysis.InterestSummary{TopInterests: []string{"arts"}},
		},
	}
}

func TestCode_Format(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	pattern := regexp.MustCompile(`^SPR-20260829-[0-9a-f]{8}$`)
	assert.Regexp(t, pattern, Code(AudienceParent, now))

	assert.Regexp(t, `^SSR-`, Code(AudienceStudent, now))
	assert.Regexp(t, `^STR-`, Code(AudienceTeacher, now))
	// Unknown audiences fall back to the student prefix.
	assert.Regexp(t, `^SSR-`, Code(Audience("other"), now))
}

func TestCode_Unique(t *testing.T) {
	now := time.Now()
	assert.NotEqual(t, Code(AudienceStudent, now), Code(AudienceStudent, now))
}

func TestBuildStudent(t *testing.T) {
	content := BuildStudent(visualAnalyticalProfile())

	require.Len(t, content.StudyStrategies, 4)
	assert.Equal(t, "Use visual aids like charts, maps, and diagrams", content.StudyStrategies[0])
	assert.Contains(t, content.IdealEnvironment, "visually stimulating")
}

func TestBuildStudent_UnknownStyle(t *testing.T) {
	content := BuildStudent(Profile{})

	assert.Empty(t, content.StudyStrategies)
	assert.Empty(t, content.IdealEnvironment)
}

func TestBuildParent_SupportSuggestions(t *testing.T) {
	comparison := analysis.ParentComparison{
		Differences: []string{"Learning style perception"},
	}

	content := BuildParent(visualAnalyticalProfile(), comparison)

	// 3 style strategies + 2 fixed + 1 difference-driven suggestion.
	require.Len(t, content.SupportSuggestions, 6)
	assert.Equal(t, "Use visual aids like charts, maps, and diagrams", content.SupportSuggestions[0])
	assert.Contains(t, content.SupportSuggestions, "Discuss learning preferences with your child without judgment")
	assert.Contains(t, content.SupportSuggestions, "Use schoolwork samples to see your child's learning style in action")
	assert.Equal(t, comparison, content.Comparison)
}

func TestBuildParent_NoDifferences(t *testing.T) {
	content := BuildParent(visualAnalyticalProfile(), analysis.ParentComparison{})

	require.Len(t, content.SupportSuggestions, 5)
	assert.NotContains(t, content.SupportSuggestions, "Use schoolwork samples to see your child's learning style in action")
}

func TestBuildTeacher_AcademicApproach(t *testing.T) {
	content := BuildTeacher(visualAnalyticalProfile(), nil)

	approach := content.AcademicInsights.AcademicApproach
	assert.Contains(t, approach, "visual representations")
	assert.Contains(t, approach, "analytical thinking")
	assert.Contains(t, approach, "persistence")
	assert.NotContains(t, approach, "organization of materials")
}

func TestBuildTeacher_SubjectAffinities(t *testing.T) {
	content := BuildTeacher(visualAnalyticalProfile(), nil)

	affinities := content.AcademicInsights.SubjectAffinities
	// Primary visual strengths, first two logical strengths, first two
	// arts interest subjects, all deduplicated.
	assert.Equal(t, []string{
		"Art", "Geography", "Geometry", "Biology (diagrams)",
		"Mathematics", "Physics",
		"Visual Arts", "Music",
	}, affinities.Strengths)
	assert.Equal(t, []string{
		"Abstract concepts without visual aids",
		"Purely auditory lectures",
	}, affinities.Challenges)
}

func TestBuildTeacher_GroupDynamics(t *testing.T) {
	profile := Profile{
		Result: analysis.Result{
			LearningStyles: analysis.StyleSummary{Primary: "social"},
			Traits:         analysis.TraitSummary{TopTraits: []string{"leadership"}},
		},
	}

	dynamics := BuildTeacher(profile, nil).AcademicInsights.GroupDynamics

	assert.Equal(t, "Thrives in medium to large groups (4-6 students)", dynamics.OptimalGroupSize)
	assert.Equal(t, "Benefits from groups where leadership opportunities exist", dynamics.OptimalComposition)
	assert.Equal(t, "Naturally assumes leadership or coordination roles", dynamics.CollaborationStyle)
}

func TestBuildTeacher_ChallengesIncludeTopTrait(t *testing.T) {
	content := BuildTeacher(visualAnalyticalProfile(), nil)

	require.Len(t, content.ChallengesSolutions, 3)
	assert.Equal(t, "May struggle with purely auditory instruction", content.ChallengesSolutions[0].Challenge)
	assert.Equal(t, "May get caught in details and miss big picture", content.ChallengesSolutions[2].Challenge)
}

func TestBuildTeacher_ParentAlignment(t *testing.T) {
	noData := BuildTeacher(visualAnalyticalProfile(), nil).ParentAlignment
	assert.Equal(t, []string{"No parent comparison data available"}, noData.AlignmentAreas)
	assert.Len(t, noData.CommunicationStrategies, 3)

	comparison := &analysis.ParentComparison{
		Alignments:  []string{"Learning style"},
		Differences: []string{"Interest areas"},
	}
	withData := BuildTeacher(visualAnalyticalProfile(), comparison).ParentAlignment
	assert.Equal(t, []string{"Learning style"}, withData.AlignmentAreas)
	assert.Equal(t, []string{"Interest areas"}, withData.DifferenceAreas)
	// Differences add three extra communication strategies.
	assert.Len(t, withData.CommunicationStrategies, 6)
}

func TestBuildTeacher_MathAptitudePotentials(t *testing.T) {
	// Visual with analytical and persistent traits saturates abacus at
	// High and lifts vedic from Medium-High to High.
	aptitude := BuildTeacher(visualAnalyticalProfile(), nil).MathAptitude
	assert.Equal(t, "High", aptitude.Abacus.Potential)
	assert.Equal(t, "High", aptitude.Vedic.Potential)
	assert.Contains(t, aptitude.Abacus.Recommendations[0], "Abacus training")

	// A collaborative trait lowers both potentials.
	profile := Profile{
		Result: analysis.Result{
			LearningStyles: analysis.StyleSummary{Primary: "logical"},
			Traits:         analysis.TraitSummary{TopTraits: []string{"collaborative"}},
		},
	}
	aptitude = BuildTeacher(profile, nil).MathAptitude
	assert.Equal(t, "Medium", aptitude.Abacus.Potential)
	assert.Equal(t, "Medium-High", aptitude.Vedic.Potential)
}

func TestBuildTeacher_MathematicsInterestLiftsPotential(t *testing.T) {
	profile := Profile{
		Result: analysis.Result{
			LearningStyles: analysis.StyleSummary{Primary: "auditory"},
			Interests:      analysis.InterestSummary{TopInterests: []string{"mathematics"}},
		},
	}

	aptitude := BuildTeacher(profile, nil).MathAptitude

	// Auditory bases: abacus Medium-Low, vedic Medium; the mathematics
	// interest lifts each one level.
	assert.Equal(t, "Medium", aptitude.Abacus.Potential)
	assert.Equal(t, "Medium-High", aptitude.Vedic.Potential)
}

func TestBuildTeacher_ExamReadiness(t *testing.T) {
	readiness := BuildTeacher(visualAnalyticalProfile(), nil).ExamReadiness

	// 4 style strengths + 2 trait lines.
	require.Len(t, readiness.Strengths, 6)
	assert.Equal(t, "Processing visual information in exams", readiness.Strengths[0])
	assert.Contains(t, readiness.Strengths, "Detailed analysis of complex questions")

	// 4 style + 2 per trait + 4 general preparation strategies.
	require.Len(t, readiness.PreparationStrategies, 12)
	assert.Equal(t, "Ensure physical readiness (sleep, nutrition, etc.)", readiness.PreparationStrategies[11])
}

func TestAdjustPotential_Clamps(t *testing.T) {
	assert.Equal(t, "High", adjustPotential("High", 1))
	assert.Equal(t, "Medium-Low", adjustPotential("Medium-Low", -1))
	assert.Equal(t, "Medium-High", adjustPotential("Medium", 1))
	assert.Equal(t, "unknown", adjustPotential("unknown", 1))
}
