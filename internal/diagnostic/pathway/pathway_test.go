package pathway

import (
	"testing"

	"github.com/shiningstar/learninglens/internal/diagnostic/analysis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func techProfile() analysis.Result {
	return analysis.Result{
		LearningStyles: analysis.StyleSummary{Primary: "logical"},
		Traits:         analysis.TraitSummary{TopTraits: []string{"analytical", "persistent"}},
		Interests:      analysis.InterestSummary{TopInterests: []string{"tech", "science"}},
	}
}

func TestGenerate_TechPathway(t *testing.T) {
	p := Generate(techProfile(), 13)

	assert.Equal(t, "tech", p.PrimaryCategory)
	assert.Equal(t, "science", p.SecondaryCategory)

	assert.Equal(t, "Building Your Foundation", p.Step1.Title)
	assert.Equal(t, "TECH101", p.Step1.PrimaryCourse.ID)
	assert.Equal(t, "SCI102", p.Step1.ComplementaryCourse.ID)

	assert.Equal(t, "TECH201", p.Step2.Course.ID)
	assert.Equal(t, "TECH301", p.Step3.Course.ID)
}

func TestGenerate_AdvancedCourseAgeFallback(t *testing.T) {
	// A 10-year-old has no age-appropriate advanced tech course, so the
	// first catalog entry is used.
	p := Generate(techProfile(), 10)

	assert.Equal(t, "TECH301", p.Step3.Course.ID)
	assert.Equal(t, "TECH101", p.Step1.PrimaryCourse.ID)
}

func TestPrimaryCategory_InterestFirst(t *testing.T) {
	got := PrimaryCategory([]string{"arts", "tech"}, "logical", []string{"analytical"})
	assert.Equal(t, "arts", got)
}

func TestPrimaryCategory_StylePrefersSecondaryInterestOverlap(t *testing.T) {
	// Top interest is not catalogued; style maps to science/tech and the
	// second interest overlaps.
	got := PrimaryCategory([]string{"media", "tech"}, "logical", nil)
	assert.Equal(t, "tech", got)

	// No overlap: first style category wins.
	got = PrimaryCategory([]string{"media"}, "logical", nil)
	assert.Equal(t, "science", got)
}

func TestPrimaryCategory_TraitFallback(t *testing.T) {
	got := PrimaryCategory(nil, "unknown", []string{"leadership"})
	assert.Equal(t, "entrepreneurship", got)
}

func TestPrimaryCategory_Default(t *testing.T) {
	got := PrimaryCategory(nil, "unknown", nil)
	assert.Equal(t, "tech", got)
}

func TestSecondaryCategory(t *testing.T) {
	assert.Equal(t, "science", SecondaryCategory("tech", []string{"tech", "science"}, "logical", nil))
	assert.Equal(t, "science", SecondaryCategory("tech", nil, "logical", nil))
	assert.Equal(t, "language", SecondaryCategory("entrepreneurship", nil, "unknown", []string{"leadership"}))
	assert.Equal(t, "arts", SecondaryCategory("tech", nil, "unknown", nil))
}

func TestSelectCourse_UnknownCategoryPlaceholder(t *testing.T) {
	course := selectCourse("music", "entry", 12)

	assert.Equal(t, "N/A", course.ID)
	assert.Equal(t, "Course Not Available", course.Title)
}

func TestAgeInRange(t *testing.T) {
	assert.True(t, AgeInRange(8, "8-14"))
	assert.True(t, AgeInRange(14, "8-14"))
	assert.False(t, AgeInRange(15, "8-14"))
	assert.False(t, AgeInRange(7, "8-14"))
	assert.False(t, AgeInRange(10, "N/A"))
}

func TestCoursesFor(t *testing.T) {
	courses := CoursesFor("language", "advanced")

	require.Len(t, courses, 2)
	assert.Equal(t, "LANG301", courses[0].ID)
}
