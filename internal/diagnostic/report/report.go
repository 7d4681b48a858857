// Package report assembles audience-specific report content from the
// output of the diagnostic engine. Student and parent reports share the
// full diagnostic profile; the teacher report adds classroom-oriented
// insights.
package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/shiningstar/learninglens/internal/diagnostic/analysis"
	"github.com/shiningstar/learninglens/internal/diagnostic/careers"
	"github.com/shiningstar/learninglens/internal/diagnostic/exams"
	"github.com/shiningstar/learninglens/internal/diagnostic/mathpath"
	"github.com/shiningstar/learninglens/internal/diagnostic/pathway"
	"github.com/shiningstar/learninglens/internal/diagnostic/recommend"
)

// Audience identifies who a report is written for.
type Audience string

const (
	AudienceStudent Audience = "student"
	AudienceParent  Audience = "parent"
	AudienceTeacher Audience = "teacher"
)

var codePrefixes = map[Audience]string{
	AudienceStudent: "SSR",
	AudienceParent:  "SPR",
	AudienceTeacher: "STR",
}

// Code builds a reference code like SSR-20260829-1a2b3c4d.
func Code(audience Audience, now time.Time) string {
	prefix, ok := codePrefixes[audience]
	if !ok {
		prefix = "SSR"
	}
	return fmt.Sprintf("%s-%s-%s", prefix, now.Format("20060102"), uuid.NewString()[:8])
}

// Profile bundles everything the diagnostic engine produced for one
// analyzed assessment.
type Profile struct {
	Result      analysis.Result            `json:"result"`
	Badges      analysis.BadgeSet          `json:"badges"`
	Pathway     pathway.Pathway            `json:"pathway"`
	Careers     careers.Affinities         `json:"careers"`
	Courses     []recommend.Recommendation `json:"recommendedCourses"`
	MathPathway mathpath.Plan              `json:"mathPathway"`
	Exams       exams.Recommendation       `json:"examRecommendations"`
}

// StudentContent is the student-facing report body.
type StudentContent struct {
	Profile          Profile  `json:"profile"`
	StudyStrategies  []string `json:"studyStrategies"`
	IdealEnvironment string   `json:"idealEnvironment"`
}

// ParentContent extends the student report with the parent-perception
// comparison and suggestions for supporting the student at home.
type ParentContent struct {
	Profile            Profile                  `json:"profile"`
	Comparison         analysis.ParentComparison `json:"comparison"`
	SupportSuggestions []string                 `json:"supportSuggestions"`
}

// BuildStudent assembles the student report content.
func BuildStudent(p Profile) StudentContent {
	content := StudentContent{Profile: p}
	if style, ok := analysis.LearningStyles[p.Result.LearningStyles.Primary]; ok {
		content.StudyStrategies = style.Strategies
		content.IdealEnvironment = style.IdealEnvironment
	}
	return content
}

// BuildParent assembles the parent report content.
func BuildParent(p Profile, comparison analysis.ParentComparison) ParentContent {
	return ParentContent{
		Profile:            p,
		Comparison:         comparison,
		SupportSuggestions: supportSuggestions(p.Result, comparison),
	}
}

func supportSuggestions(result analysis.Result, comparison analysis.ParentComparison) []string {
	suggestions := make([]string, 0, 6)

	if style, ok := analysis.LearningStyles[result.LearningStyles.Primary]; ok {
		suggestions = append(suggestions, style.Strategies[:3]...)
	}

	suggestions = append(suggestions,
		"Discuss learning preferences with your child without judgment",
		"Suggest home activities aligned with your child's learning preferences",
	)

	if len(comparison.Differences) > 0 {
		suggestions = append(suggestions, "Use schoolwork samples to see your child's learning style in action")
	}

	return suggestions
}
