// Package mathpath generates mathematics specialization pathways built
// around Abacus, Vedic and integrated mathematical training.
package mathpath

import (
	"strconv"
	"strings"

	"github.com/shiningstar/learninglens/internal/diagnostic/analysis"
)

// Level is one stage within a mathematics track.
type Level struct {
	Level         string   `json:"level"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Skills        []string `json:"skills"`
	Duration      string   `json:"duration"`
	AgeRange      string   `json:"ageRange"`
	Prerequisites string   `json:"prerequisites"`
}

// Certification describes the credential attached to a track.
type Certification struct {
	Name     string   `json:"name"`
	Levels   []string `json:"levels"`
	Benefits string   `json:"benefits"`
}

// Competition is a contest associated with a track.
type Competition struct {
	Name        string `json:"name"`
	Frequency   string `json:"frequency"`
	Eligibility string `json:"eligibility"`
	Description string `json:"description"`
}

// Track is a full mathematics pathway definition.
type Track struct {
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Benefits          []string      `json:"benefits"`
	Levels            []Level       `json:"levels"`
	Certification     Certification `json:"certification"`
	Competitions      []Competition `json:"competitions"`
	CareerConnections []string      `json:"careerConnections"`
}

// Course is a mathematics course offering tied to a track and level.
type Course struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Pathway     string   `json:"pathway"`
	Level       string   `json:"level"`
	AgeRange    string   `json:"ageRange"`
	Duration    string   `json:"duration"`
	KeySkills   []string `json:"keySkills"`
	NextCourse  string   `json:"nextCourse,omitempty"`
}

// JourneyStep pairs a track level with a matching course when one exists.
type JourneyStep struct {
	Level
	Course *Course `json:"course,omitempty"`
}

// ExamRecommendation is a suggested mathematics examination or contest.
type ExamRecommendation struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	AgeRange    string `json:"ageRange"`
	Website     string `json:"website"`
	Preparation string `json:"preparation"`
}

// Plan is the complete mathematics pathway output for one student.
type Plan struct {
	Type                    string               `json:"type"`
	Title                   string               `json:"title"`
	Description             string               `json:"description"`
	PersonalizedDescription string               `json:"personalizedDescription"`
	Benefits                []string             `json:"benefits"`
	JourneySteps            []JourneyStep        `json:"journeySteps"`
	RecommendedCourses      []Course             `json:"recommendedCourses"`
	Certification           Certification        `json:"certification"`
	Competitions            []Competition        `json:"competitions"`
	ExamRecommendations     []ExamRecommendation `json:"examRecommendations"`
	CareerConnections       []string             `json:"careerConnections"`
}

// Track scoring order; ties resolve toward integrated via the default.
var trackOrder = []string{"abacus", "vedic", "integrated"}

type trackWeights struct {
	abacus     float64
	vedic      float64
	integrated float64
}

var styleWeights = map[string]trackWeights{
	"visual":      {abacus: 3, vedic: 1, integrated: 2},
	"kinesthetic": {abacus: 3, vedic: 1, integrated: 2},
	"logical":     {abacus: 1, vedic: 3, integrated: 2},
	"independent": {abacus: 2, vedic: 2, integrated: 2},
	"auditory":    {abacus: 0, vedic: 2, integrated: 2},
	"social":      {abacus: 1, vedic: 1, integrated: 3},
}

var traitWeights = map[string]trackWeights{
	"analytical":    {abacus: 2, vedic: 3, integrated: 2},
	"creative":      {abacus: 1, vedic: 2, integrated: 3},
	"persistent":    {abacus: 3, vedic: 2, integrated: 2},
	"leadership":    {abacus: 1, vedic: 1, integrated: 3},
	"collaborative": {abacus: 1, vedic: 1, integrated: 3},
	"organized":     {abacus: 3, vedic: 2, integrated: 2},
}

func (w trackWeights) get(track string) float64 {
	switch track {
	case "abacus":
		return w.abacus
	case "vedic":
		return w.vedic
	default:
		return w.integrated
	}
}

// Generate builds the mathematics pathway plan for a student of the given
// age from their analysis result.
func Generate(result analysis.Result, age int) Plan {
	trackType := DetermineTrackType(
		result.LearningStyles.Primary,
		result.LearningStyles.Secondary,
		result.Traits.TopTraits,
	)
	track := tracks[trackType]

	levelIndex := levelIndexForAge(age)
	recommended := recommendedCourses(age, trackType, levelIndex)

	competitions := track.Competitions
	if len(competitions) > 2 {
		competitions = competitions[:2]
	}
	careers := track.CareerConnections
	if len(careers) > 5 {
		careers = careers[:5]
	}

	return Plan{
		Type:                    trackType,
		Title:                   track.Title,
		Description:             track.Description,
		PersonalizedDescription: personalizedDescription(trackType, result),
		Benefits:                track.Benefits,
		JourneySteps:            journeySteps(trackType, levelIndex, recommended),
		RecommendedCourses:      recommended,
		Certification:           track.Certification,
		Competitions:            competitions,
		ExamRecommendations:     ExamRecommendations(trackType, age),
		CareerConnections:       careers,
	}
}

// DetermineTrackType scores the three tracks against the learning styles
// (secondary styles at half weight) and the top-3 traits (weights 1.0,
// 0.7, 0.4). The highest score wins; integrated is the default.
func DetermineTrackType(primaryStyle string, secondaryStyles, topTraits []string) string {
	scores := map[string]float64{"abacus": 0, "vedic": 0, "integrated": 0}

	if weights, ok := styleWeights[primaryStyle]; ok {
		for _, track := range trackOrder {
			scores[track] += weights.get(track)
		}
	}
	for _, style := range secondaryStyles {
		if weights, ok := styleWeights[style]; ok {
			for _, track := range trackOrder {
				scores[track] += weights.get(track) / 2
			}
		}
	}

	for i, trait := range topTraits {
		if i >= 3 {
			break
		}
		weights, ok := traitWeights[trait]
		if !ok {
			continue
		}
		factor := 1.0
		switch i {
		case 1:
			factor = 0.7
		case 2:
			factor = 0.4
		}
		for _, track := range trackOrder {
			scores[track] += weights.get(track) * factor
		}
	}

	best := "integrated"
	maxScore := 0.0
	for _, track := range trackOrder {
		if scores[track] > maxScore {
			maxScore = scores[track]
			best = track
		}
	}
	return best
}

func levelIndexForAge(age int) int {
	switch {
	case age <= 8:
		return 0
	case age <= 11:
		return 1
	case age <= 14:
		return 2
	default:
		return 3
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

var levelKeywords = []string{"beginner", "intermediate", "advanced", "expert"}

// recommendedCourses filters the age group's courses by track and level,
// falling back to integrated courses and then to any age-appropriate
// course.
func recommendedCourses(age int, trackType string, levelIndex int) []Course {
	pool := courses[ageGroup(age)]
	keyword := levelKeywords[levelIndex]

	var recommended []Course
	for _, course := range pool {
		if course.Pathway == trackType && strings.Contains(strings.ToLower(course.Level), keyword) {
			recommended = append(recommended, course)
		}
	}

	if len(recommended) == 0 && trackType != "integrated" {
		for _, course := range pool {
			if course.Pathway == "integrated" {
				recommended = append(recommended, course)
			}
		}
	}

	if len(recommended) == 0 {
		for _, course := range pool {
			if ageInRange(age, course.AgeRange) {
				recommended = append(recommended, course)
			}
		}
	}

	if len(recommended) > 3 {
		recommended = recommended[:3]
	}
	return recommended
}

// journeySteps takes three track levels starting at the student's level,
// padding from the integrated track when the track runs out, and attaches
// a matching course to each step.
func journeySteps(trackType string, levelIndex int, recommended []Course) []JourneyStep {
	levels := tracks[trackType].Levels

	var relevant []Level
	if levelIndex < len(levels) {
		relevant = append(relevant, levels[levelIndex:]...)
	}
	if len(relevant) > 3 {
		relevant = relevant[:3]
	}

	for len(relevant) < 3 {
		if trackType != "integrated" {
			added := false
			for _, level := range tracks["integrated"].Levels {
				if hasLevel(relevant, level.Level) {
					continue
				}
				relevant = append(relevant, level)
				added = true
				if len(relevant) >= 3 {
					break
				}
			}
			if !added {
				break
			}
		} else {
			if len(relevant) == 0 {
				break
			}
			last := relevant[len(relevant)-1]
			last.Title += " (Advanced)"
			last.Description = "Further advancement in mathematical excellence and problem-solving."
			relevant = append(relevant, last)
		}
	}
	if len(relevant) > 3 {
		relevant = relevant[:3]
	}

	steps := make([]JourneyStep, len(relevant))
	for i, level := range relevant {
		steps[i] = JourneyStep{Level: level}

		matched := false
		for j := range recommended {
			if strings.Contains(strings.ToLower(level.Level), strings.ToLower(recommended[j].Level)) {
				steps[i].Course = &recommended[j]
				matched = true
				break
			}
		}
		if !matched && i < len(recommended) {
			steps[i].Course = &recommended[i]
		}
	}
	return steps
}

func personalizedDescription(trackType string, result analysis.Result) string {
	baseDescriptions := map[string]string{
		"abacus":     "The Abacus Mathematics pathway offers a visual and hands-on approach to developing calculation skills and number sense.",
		"vedic":      "The Vedic Mathematics pathway provides efficient calculation techniques and mathematical shortcuts based on ancient Indian mathematical principles.",
		"integrated": "The Integrated Mathematical Thinking pathway combines traditional, Abacus, and Vedic approaches for comprehensive mathematical development.",
	}
	styleComponents := map[string]string{
		"visual":      "This pathway aligns well with your visual learning style, using spatial arrangements and visual patterns to enhance mathematical understanding.",
		"kinesthetic": "This pathway complements your hands-on learning style, providing tactile experiences that make mathematical concepts concrete and accessible.",
		"logical":     "This pathway resonates with your logical learning style, offering systematic approaches to mathematical problem-solving.",
		"independent": "This pathway supports your independent learning style, providing techniques you can practice and master at your own pace.",
		"auditory":    "While working through this pathway, you'll benefit from verbalizing the steps and discussing concepts to engage your auditory learning style.",
		"social":      "This pathway can be enhanced through collaborative learning, allowing you to leverage your social learning preferences.",
	}
	traitComponents := map[string]string{
		"analytical":    "Your analytical nature will help you excel in breaking down mathematical processes into logical steps.",
		"creative":      "Your creative thinking will allow you to find unique applications and connections within mathematical concepts.",
		"persistent":    "Your persistence will be valuable as you develop increasingly advanced calculation skills.",
		"leadership":    "Your leadership qualities can be channeled into helping peers understand these mathematical techniques.",
		"collaborative": "Your collaborative nature will enhance group learning experiences in mathematics.",
		"organized":     "Your organizational skills will help you systematically master each level of mathematical development.",
	}

	description, ok := baseDescriptions[trackType]
	if !ok {
		description = baseDescriptions["integrated"]
	}

	if component, ok := styleComponents[result.LearningStyles.Primary]; ok {
		description += " " + component
	}
	if traits := result.Traits.TopTraits; len(traits) > 0 {
		if component, ok := traitComponents[traits[0]]; ok {
			description += " " + component
		}
	}
	for _, interest := range result.Interests.TopInterests {
		if interest == "mathematics" {
			description += " Your interest in mathematics will provide intrinsic motivation as you explore these powerful calculation techniques."
			break
		}
	}

	return description
}

// ExamRecommendations combines age-appropriate track competitions with the
// standard contest list for the student's age group, limited to five.
func ExamRecommendations(trackType string, age int) []ExamRecommendation {
	var standard []ExamRecommendation
	switch ageGroup(age) {
	case "elementary":
		standard = elementaryCompetitions
	case "middle":
		standard = middleCompetitions
	default:
		standard = highCompetitions
	}

	var recommendations []ExamRecommendation
	for _, comp := range tracks[trackType].Competitions {
		eligibility := strings.ToLower(comp.Eligibility)
		if strings.Contains(eligibility, "all ages") || strings.Contains(comp.Eligibility, strconv.Itoa(age)) {
			recommendations = append(recommendations, ExamRecommendation{
				Name:        comp.Name,
				Description: comp.Description,
				AgeRange:    comp.Eligibility,
				Website:     "Contact Shining Star Education for details",
				Preparation: "Specialized training through our pathway programs",
			})
		}
	}

	recommendations = append(recommendations, standard...)
	if len(recommendations) > 5 {
		recommendations = recommendations[:5]
	}
	return recommendations
}

func hasLevel(levels []Level, name string) bool {
	for _, level := range levels {
		if level.Level == name {
			return true
		}
	}
	return false
}

func ageInRange(age int, ageRange string) bool {
	parts := strings.SplitN(ageRange, "-", 2)
	if len(parts) != 2 {
		return false
	}
	minAge, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return false
	}
	maxAge, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return false
	}
	return age >= minAge && age <= maxAge
}
