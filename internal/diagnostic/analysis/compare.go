package analysis

import (
	"fmt"
	"strings"

	"github.com/shiningstar/learninglens/internal/diagnostic/questionnaire"
)

// ParentComparison contrasts the parent's perception of the child with the
// profile derived from the student's own responses.
type ParentComparison struct {
	Alignments  []string `json:"alignments"`
	Differences []string `json:"differences"`
	Insights    []string `json:"insights"`
}

// CompareParentResponses derives the parent-perceived style, traits and
// interests from the mirror questionnaire and reports where they align
// with or diverge from the student's results.
func CompareParentResponses(parentResponses map[string]int, studentResult Result) ParentComparison {
	comparison := ParentComparison{
		Alignments:  []string{},
		Differences: []string{},
		Insights:    []string{},
	}

	var parentStyle string
	var parentTraits []string
	var parentInterests []string

	for _, q := range questionnaire.ParentQuestions() {
		answer, ok := parentResponses[q.ID]
		if !ok || answer < 0 {
			continue
		}

		switch {
		case q.Category == "learning_style" && answer < len(q.LearningStyleMapping):
			parentStyle = q.LearningStyleMapping[answer]
		case len(q.TraitMapping) > 0:
			if answer < len(q.TraitMapping) {
				parentTraits = append(parentTraits, q.TraitMapping[answer])
			}
		case answer < len(q.InterestMapping):
			parentInterests = append(parentInterests, q.InterestMapping[answer])
		}
	}

	studentStyle := studentResult.LearningStyles.Primary
	if parentStyle == studentStyle {
		comparison.Alignments = append(comparison.Alignments,
			fmt.Sprintf("You both identified a preference for %s learning.", LearningStyles[studentStyle].Name))
	} else {
		comparison.Differences = append(comparison.Differences,
			fmt.Sprintf("You identified your child as a %s, but their responses indicate they are a %s.",
				styleName(parentStyle), LearningStyles[studentStyle].Name))
		comparison.Insights = append(comparison.Insights,
			fmt.Sprintf("Consider providing more opportunities for %s learning experiences.",
				strings.ToLower(LearningStyles[studentStyle].Name)))
	}

	studentTraits := studentResult.Traits.TopTraits
	for _, trait := range parentTraits {
		if contains(studentTraits, trait) {
			comparison.Alignments = append(comparison.Alignments,
				fmt.Sprintf("You both recognized the %s trait.", traitName(trait)))
		} else {
			comparison.Differences = append(comparison.Differences,
				fmt.Sprintf("You identified your child as a %s, but this wasn't among their top traits in the assessment.",
					traitName(trait)))
		}
	}

	studentInterests := studentResult.Interests.TopInterests
	for _, interest := range parentInterests {
		if contains(studentInterests, interest) {
			comparison.Alignments = append(comparison.Alignments,
				fmt.Sprintf("You both identified an interest in %s.", interestName(interest)))
		} else {
			comparison.Differences = append(comparison.Differences,
				fmt.Sprintf("You identified an interest in %s, but this wasn't among their top interests in the assessment.",
					interestName(interest)))

			names := make([]string, 0, 2)
			for i, studentInterest := range studentInterests {
				if i >= 2 {
					break
				}
				names = append(names, interestName(studentInterest))
			}
			comparison.Insights = append(comparison.Insights,
				fmt.Sprintf("Your child may benefit from exploring their expressed interests in %s.",
					strings.Join(names, ", ")))
		}
	}

	return comparison
}

func styleName(style string) string {
	if profile, ok := LearningStyles[style]; ok {
		return profile.Name
	}
	return "different type of learner"
}

func traitName(trait string) string {
	if profile, ok := Traits[trait]; ok {
		return strings.ToLower(profile.Name)
	}
	return trait
}

func interestName(interest string) string {
	if profile, ok := Interests[interest]; ok {
		return strings.ToLower(profile.Name)
	}
	return interest
}
