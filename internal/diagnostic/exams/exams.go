// Package exams recommends globally available examinations, aptitude
// tests, and credentialing programs matched to a student's diagnostic
// profile and age group.
package exams

import (
	"sort"
	"strings"

	"github.com/shiningstar/learninglens/internal/diagnostic/analysis"
)

// Recommendation bundles the selected examinations with personalized
// guidance and preparation strategies.
type Recommendation struct {
	AgeGroup              string            `json:"ageGroup"`
	RecommendedExams      map[string][]Exam `json:"recommendedExams"`
	Personalized          []string          `json:"personalizedRecommendations"`
	PreparationStrategies []string          `json:"preparationStrategies"`
}

// Per-category selection weights by primary learning style. Trait and
// interest adjustments are applied on top of these.
var styleCategoryWeights = map[string]map[string]float64{
	"visual": {
		"academic":      0.7,
		"aptitude":      0.8,
		"competition":   0.6,
		"talent_search": 0.7,
		"certification": 0.6,
	},
	"auditory": {
		"academic":      0.8,
		"aptitude":      0.7,
		"competition":   0.5,
		"talent_search": 0.6,
		"certification": 0.7,
	},
	"kinesthetic": {
		"academic":      0.6,
		"aptitude":      0.7,
		"competition":   0.8,
		"talent_search": 0.7,
		"certification": 0.6,
	},
	"logical": {
		"academic":      0.7,
		"aptitude":      0.9,
		"competition":   0.8,
		"talent_search": 0.8,
		"certification": 0.6,
	},
	"social": {
		"academic":      0.7,
		"aptitude":      0.6,
		"competition":   0.7,
		"talent_search": 0.6,
		"certification": 0.7,
	},
	"independent": {
		"academic":      0.8,
		"aptitude":      0.8,
		"competition":   0.7,
		"talent_search": 0.8,
		"certification": 0.7,
	},
}

var interestCategoryMap = map[string][]string{
	"technology":       {"certification", "competition"},
	"arts":             {"talent_search", "certification"},
	"entrepreneurship": {"certification", "academic"},
	"science":          {"competition", "talent_search"},
	"language":         {"certification", "academic"},
	"mathematics":      {"competition", "aptitude"},
}

var styleRecommendations = map[string]string{
	"visual":      "Focus on examinations that include visual elements, diagrams, or spatial reasoning. You may excel in aptitude tests with visual components and competitions that involve pattern recognition.",
	"auditory":    "Consider examinations that allow for verbal processing or discussion. Language certifications and verbal reasoning sections of aptitude tests may align well with your learning style.",
	"kinesthetic": "Look for examinations with practical components or that allow for active engagement. Competitions with hands-on elements may be particularly engaging for your learning style.",
	"logical":     "Your logical learning style is well-suited for aptitude tests and mathematical competitions. Focus on examinations that involve systematic problem-solving and analytical thinking.",
	"social":      "Consider participating in team-based competitions or collaborative examination preparation. Your social learning style can be an advantage in group settings.",
	"independent": "Your independent learning style is well-suited for self-directed examination preparation. Focus on developing personalized study strategies for your chosen examinations.",
}

var traitRecommendations = map[string]string{
	"analytical":    "Your analytical nature will be an asset in examinations requiring detailed analysis and critical thinking. Consider aptitude tests and academic competitions that reward careful reasoning.",
	"creative":      "Your creative thinking can be valuable in examinations with open-ended components. Look for opportunities that allow you to demonstrate innovative approaches to problems.",
	"persistent":    "Your persistence will serve you well in preparing for challenging examinations. Consider competitions or certifications that require sustained effort and practice.",
	"leadership":    "Your leadership qualities can be showcased through participation in team competitions or talent search programs that value initiative and direction.",
	"collaborative": "Your collaborative nature can enhance group preparation for examinations. Consider forming study groups for academic tests or participating in team competitions.",
	"organized":     "Your organizational skills will be valuable in managing examination preparation. Create structured study plans for your chosen examinations to maximize effectiveness.",
}

var generalStrategies = []string{
	"Start preparation well in advance of examination dates",
	"Familiarize yourself with examination format and requirements",
	"Practice with sample questions or past papers",
	"Develop a consistent study schedule",
	"Balance preparation with regular breaks and self-care",
}

var styleStrategies = map[string][]string{
	"visual": {
		"Use visual study aids like mind maps, diagrams, and charts",
		"Color-code notes and study materials",
		"Convert text information into visual formats",
		"Use flashcards with visual cues",
		"Practice with visual practice questions and problems",
	},
	"auditory": {
		"Record and listen to study materials",
		"Discuss concepts verbally with others",
		"Use mnemonic devices and verbal repetition",
		"Participate in study groups with discussion",
		"Read important information aloud",
	},
	"kinesthetic": {
		"Incorporate movement into study sessions",
		"Use hands-on practice whenever possible",
		"Take breaks for physical activity",
		"Create physical models or manipulatives",
		"Practice writing out solutions and answers",
	},
	"logical": {
		"Organize study materials in logical sequences",
		"Create systematic study plans",
		"Look for patterns and connections between concepts",
		"Break down complex problems into logical steps",
		"Practice with problem-solving questions",
	},
	"social": {
		"Form study groups",
		"Teach concepts to others",
		"Discuss practice questions with peers",
		"Use collaborative study techniques",
		"Seek feedback from teachers or mentors",
	},
	"independent": {
		"Create personalized study schedules",
		"Find quiet, focused study environments",
		"Set individual study goals",
		"Self-test regularly",
		"Reflect on and adjust study strategies as needed",
	},
}

var traitStrategies = map[string][]string{
	"analytical": {
		"Practice analyzing complex questions",
		"Develop systematic approaches to different question types",
		"Focus on understanding underlying principles",
		"Review mistakes analytically to identify patterns",
	},
	"creative": {
		"Look for creative connections between concepts",
		"Develop multiple approaches to problem-solving",
		"Create memorable associations for key information",
		"Use creative study methods like storytelling or visualization",
	},
	"persistent": {
		"Set incremental goals for sustained progress",
		"Track progress to maintain motivation",
		"Develop strategies for overcoming challenging content",
		"Build regular review into study plans",
	},
	"leadership": {
		"Take initiative in organizing study groups",
		"Help peers understand difficult concepts",
		"Set example with disciplined study habits",
		"Coordinate collaborative preparation efforts",
	},
	"collaborative": {
		"Share resources and study materials with peers",
		"Participate actively in study groups",
		"Give and receive constructive feedback",
		"Develop collaborative problem-solving skills",
	},
	"organized": {
		"Create detailed study plans and schedules",
		"Maintain organized notes and resources",
		"Use checklists to track preparation progress",
		"Systematically review all required content",
	},
}

var examTypeStrategies = []string{
	"For academic assessments: Focus on thorough understanding of curriculum content",
	"For aptitude tests: Practice with diverse problem types to develop flexible thinking",
	"For competitions: Study beyond standard curriculum and practice with challenging problems",
	"For certifications: Focus on meeting specific requirements and standards",
}

// Recommend selects examinations for the student's age group, weighted
// by learning style, traits, and interests.
func Recommend(result analysis.Result, age int) Recommendation {
	group := ageGroup(age)
	primaryStyle := result.LearningStyles.Primary
	topTraits := result.Traits.TopTraits
	topInterests := result.Interests.TopInterests

	recommended := selectRecommended(group, primaryStyle, topTraits, topInterests)

	return Recommendation{
		AgeGroup:              group,
		RecommendedExams:      recommended,
		Personalized:          personalizedRecommendations(recommended, primaryStyle, topTraits),
		PreparationStrategies: preparationStrategies(primaryStyle, topTraits),
	}
}

func ageGroup(age int) string {
	switch {
	case age <= 10:
		return "elementary"
	case age <= 13:
		return "middle"
	default:
		return "high"
	}
}

func selectRecommended(group, primaryStyle string, topTraits, topInterests []string) map[string][]Exam {
	weights := make(map[string]float64, len(categoryOrder))
	base, ok := styleCategoryWeights[primaryStyle]
	if !ok {
		for _, category := range categoryOrder {
			weights[category] = 0.7
		}
	} else {
		for category, weight := range base {
			weights[category] = weight
		}
	}

	if contains(topTraits, "analytical") {
		weights["aptitude"] += 0.1
		weights["competition"] += 0.1
	}
	if contains(topTraits, "creative") {
		weights["talent_search"] += 0.1
	}
	if contains(topTraits, "persistent") {
		weights["competition"] += 0.1
		weights["certification"] += 0.1
	}
	if contains(topTraits, "leadership") {
		weights["talent_search"] += 0.1
	}

	for _, interest := range topInterests {
		for _, category := range interestCategoryMap[interest] {
			weights[category] += 0.1
		}
	}

	recommended := make(map[string][]Exam, len(categoryOrder))
	for _, category := range categoryOrder {
		pool := examCatalog[group][category]
		if len(pool) == 0 {
			continue
		}
		numToSelect := int(float64(len(pool)) * weights[category])
		if numToSelect < 1 {
			numToSelect = 1
		}
		if numToSelect > len(pool) {
			numToSelect = len(pool)
		}

		scored := make([]scoredExam, 0, len(pool))
		for _, exam := range pool {
			scored = append(scored, scoredExam{score: interestScore(exam, topInterests), exam: exam})
		}
		// Stable sort keeps catalog order among equally scored exams.
		sort.SliceStable(scored, func(i, j int) bool { return scored[i].score > scored[j].score })

		selected := make([]Exam, 0, numToSelect)
		for _, se := range scored[:numToSelect] {
			selected = append(selected, se.exam)
		}
		recommended[category] = selected
	}

	return recommended
}

type scoredExam struct {
	score float64
	exam  Exam
}

func interestScore(exam Exam, topInterests []string) float64 {
	score := 1.0
	name := strings.ToLower(exam.Name)
	desc := strings.ToLower(exam.Description)
	for _, interest := range topInterests {
		needle := strings.ToLower(interest)
		if strings.Contains(name, needle) || strings.Contains(desc, needle) {
			score += 0.5
		}
	}
	return score
}

func personalizedRecommendations(recommended map[string][]Exam, primaryStyle string, topTraits []string) []string {
	recommendations := make([]string, 0, 7)

	if text, ok := styleRecommendations[primaryStyle]; ok {
		recommendations = append(recommendations, text)
	}
	if len(topTraits) > 0 {
		if text, ok := traitRecommendations[topTraits[0]]; ok {
			recommendations = append(recommendations, text)
		}
	}

	if exams := recommended["academic"]; len(exams) > 0 {
		recommendations = append(recommendations, "Academic assessments like "+exams[0].Name+" will provide valuable benchmarking of your academic progress and help identify areas for growth.")
	}
	if exams := recommended["aptitude"]; len(exams) > 0 {
		recommendations = append(recommendations, "Aptitude tests like "+exams[0].Name+" can help identify your inherent strengths and potential, providing insights for educational and career planning.")
	}
	if exams := recommended["competition"]; len(exams) > 0 {
		recommendations = append(recommendations, "Competitions like "+exams[0].Name+" offer opportunities to challenge yourself, develop advanced skills, and gain recognition for your abilities.")
	}
	if exams := recommended["certification"]; len(exams) > 0 {
		recommendations = append(recommendations, "Certifications like "+exams[0].Name+" provide recognized credentials that can enhance your academic profile and future opportunities.")
	}

	recommendations = append(recommendations, "Consider a balanced approach to examinations, including a mix of academic assessments, aptitude tests, competitions, and certifications to develop a well-rounded profile and diverse set of experiences.")

	return recommendations
}

func preparationStrategies(primaryStyle string, topTraits []string) []string {
	strategies := make([]string, 0, len(generalStrategies)+9)
	strategies = append(strategies, generalStrategies...)

	if styleSpecific, ok := styleStrategies[primaryStyle]; ok {
		strategies = append(strategies, styleSpecific[:3]...)
	}
	if len(topTraits) > 0 {
		if traitSpecific, ok := traitStrategies[topTraits[0]]; ok {
			strategies = append(strategies, traitSpecific[:2]...)
		}
	}

	strategies = append(strategies, examTypeStrategies...)

	return strategies
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}
