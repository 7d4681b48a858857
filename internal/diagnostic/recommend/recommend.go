// Package recommend scores the course catalog against a student's
// learning profile and picks the best-fitting courses.
package recommend

import (
	"sort"
	"strings"

	"github.com/shiningstar/learninglens/internal/diagnostic/analysis"
	"github.com/shiningstar/learninglens/internal/diagnostic/pathway"
)

// Course is a catalog entry enriched with profile-matching metadata.
type Course struct {
	ID               string   `json:"id"`
	Category         string   `json:"category"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	Benefits         string   `json:"benefits"`
	Duration         string   `json:"duration"`
	AgeRange         string   `json:"ageRange"`
	LearningStyles   []string `json:"learningStyles"`
	Traits           []string `json:"traits"`
	DiscountEligible bool     `json:"discountEligible"`
	NextStartDate    string   `json:"nextStartDate"`
	Popularity       int      `json:"popularity"`
}

// Recommendation is a scored course with its personalized benefit text.
type Recommendation struct {
	Course
	FitScore            float64 `json:"fitScore"`
	PersonalizedBenefit string  `json:"personalizedBenefit"`
}

var catalog = []Course{
	{
		ID: "TECH101", Category: "tech", Title: "Introduction to Coding",
		Description:    "A beginner-friendly introduction to programming concepts using block-based coding.",
		Benefits:       "Builds logical thinking and introduces fundamental programming concepts.",
		Duration:       "8 weeks", AgeRange: "8-14",
		LearningStyles: []string{"visual", "logical", "kinesthetic"},
		Traits:         []string{"analytical", "persistent", "creative"},
		DiscountEligible: true, NextStartDate: "June 5, 2025", Popularity: 95,
	},
	{
		ID: "TECH102", Category: "tech", Title: "Robotics Fundamentals",
		Description:    "Hands-on introduction to robotics using LEGO Mindstorms or similar platforms.",
		Benefits:       "Develops problem-solving skills and introduces engineering concepts.",
		Duration:       "10 weeks", AgeRange: "9-16",
		LearningStyles: []string{"kinesthetic", "logical", "visual"},
		Traits:         []string{"analytical", "persistent", "creative"},
		DiscountEligible: true, NextStartDate: "May 15, 2025", Popularity: 90,
	},
	{
		ID: "TECH201", Category: "tech", Title: "Python Programming",
		Description:    "Learn Python programming language fundamentals through practical projects.",
		Benefits:       "Builds real-world coding skills applicable to many technology fields.",
		Duration:       "12 weeks", AgeRange: "12-18",
		LearningStyles: []string{"logical", "visual", "independent"},
		Traits:         []string{"analytical", "persistent", "organized"},
		DiscountEligible: true, NextStartDate: "June 10, 2025", Popularity: 88,
	},
	{
		ID: "TECH202", Category: "tech", Title: "Web Development Basics",
		Description:    "Introduction to HTML, CSS, and JavaScript for creating interactive websites.",
		Benefits:       "Develops creative and technical skills for the digital world.",
		Duration:       "10 weeks", AgeRange: "13-18",
		LearningStyles: []string{"visual", "logical", "independent"},
		Traits:         []string{"creative", "analytical", "organized"},
		DiscountEligible: true, NextStartDate: "May 20, 2025", Popularity: 85,
	},
	{
		ID: "TECH301", Category: "tech", Title: "AI & Machine Learning",
		Description:    "Introduction to artificial intelligence concepts and machine learning applications.",
		Benefits:       "Prepares students for cutting-edge technology careers.",
		Duration:       "14 weeks", AgeRange: "14-18",
		LearningStyles: []string{"logical", "visual", "independent"},
		Traits:         []string{"analytical", "persistent", "organized"},
		DiscountEligible: false, NextStartDate: "July 1, 2025", Popularity: 92,
	},
	{
		ID: "ARTS101", Category: "arts", Title: "Digital Art Fundamentals",
		Description:    "Introduction to digital art creation using tablets and beginner-friendly software.",
		Benefits:       "Develops creative expression and introduces digital tools.",
		Duration:       "8 weeks", AgeRange: "8-16",
		LearningStyles: []string{"visual", "kinesthetic", "independent"},
		Traits:         []string{"creative", "persistent", "organized"},
		DiscountEligible: true, NextStartDate: "May 12, 2025", Popularity: 88,
	},
	{
		ID: "ARTS102", Category: "arts", Title: "Animation Basics",
		Description:    "Learn the principles of animation through simple projects and exercises.",
		Benefits:       "Builds storytelling skills and introduces motion design concepts.",
		Duration:       "10 weeks", AgeRange: "9-16",
		LearningStyles: []string{"visual", "kinesthetic", "creative"},
		Traits:         []string{"creative", "persistent", "organized"},
		DiscountEligible: true, NextStartDate: "June 8, 2025", Popularity: 85,
	},
	{
		ID: "ARTS201", Category: "arts", Title: "Graphic Design Principles",
		Description:    "Learn fundamental design principles and industry-standard software.",
		Benefits:       "Develops visual communication skills applicable to many creative fields.",
		Duration:       "12 weeks", AgeRange: "12-18",
		LearningStyles: []string{"visual", "logical", "independent"},
		Traits:         []string{"creative", "analytical", "organized"},
		DiscountEligible: true, NextStartDate: "May 25, 2025", Popularity: 82,
	},
	{
		ID: "ARTS301", Category: "arts", Title: "3D Modeling & Animation",
		Description:    "Create 3D models and animations using professional software.",
		Benefits:       "Prepares for careers in animation, game design, and visual effects.",
		Duration:       "14 weeks", AgeRange: "14-18",
		LearningStyles: []string{"visual", "logical", "kinesthetic"},
		Traits:         []string{"creative", "analytical", "persistent"},
		DiscountEligible: false, NextStartDate: "July 5, 2025", Popularity: 80,
	},
	{
		ID: "BIZ101", Category: "entrepreneurship", Title: "Young Entrepreneurs",
		Description:    "Introduction to business concepts through fun, hands-on projects.",
		Benefits:       "Develops creative thinking and introduces basic business principles.",
		Duration:       "8 weeks", AgeRange: "10-14",
		LearningStyles: []string{"social", "kinesthetic", "auditory"},
		Traits:         []string{"leadership", "creative", "collaborative"},
		DiscountEligible: true, NextStartDate: "June 1, 2025", Popularity: 85,
	},
	{
		ID: "BIZ102", Category: "entrepreneurship", Title: "Design Thinking Workshop",
		Description:    "Learn the design thinking process to solve real-world problems.",
		Benefits:       "Builds problem-solving skills and introduces innovation methods.",
		Duration:       "6 weeks", AgeRange: "11-16",
		LearningStyles: []string{"visual", "kinesthetic", "social"},
		Traits:         []string{"creative", "analytical", "collaborative"},
		DiscountEligible: true, NextStartDate: "May 18, 2025", Popularity: 80,
	},
	{
		ID: "BIZ201", Category: "entrepreneurship", Title: "Business Plan Development",
		Description:    "Create a comprehensive business plan for an original business idea.",
		Benefits:       "Develops strategic thinking and planning skills.",
		Duration:       "12 weeks", AgeRange: "13-18",
		LearningStyles: []string{"logical", "social", "independent"},
		Traits:         []string{"leadership", "analytical", "organized"},
		DiscountEligible: true, NextStartDate: "June 15, 2025", Popularity: 78,
	},
	{
		ID: "BIZ301", Category: "entrepreneurship", Title: "Startup Incubator",
		Description:    "Launch a real micro-business with mentorship and support.",
		Benefits:       "Provides real-world entrepreneurial experience and portfolio development.",
		Duration:       "16 weeks", AgeRange: "15-18",
		LearningStyles: []string{"social", "logical", "independent"},
		Traits:         []string{"leadership", "persistent", "creative"},
		DiscountEligible: false, NextStartDate: "July 10, 2025", Popularity: 88,
	},
	{
		ID: "SCI101", Category: "science", Title: "Junior Scientists",
		Description:    "Hands-on science experiments and projects across various disciplines.",
		Benefits:       "Develops scientific thinking and curiosity about the natural world.",
		Duration:       "8 weeks", AgeRange: "8-12",
		LearningStyles: []string{"kinesthetic", "logical", "visual"},
		Traits:         []string{"analytical", "persistent", "creative"},
		DiscountEligible: true, NextStartDate: "May 22, 2025", Popularity: 86,
	},
	{
		ID: "SCI102", Category: "science", Title: "Environmental Science Explorers",
		Description:    "Investigate environmental systems through field work and experiments.",
		Benefits:       "Builds awareness of environmental issues and scientific methods.",
		Duration:       "10 weeks", AgeRange: "9-14",
		LearningStyles: []string{"kinesthetic", "visual", "social"},
		Traits:         []string{"analytical", "persistent", "collaborative"},
		DiscountEligible: true, NextStartDate: "June 5, 2025", Popularity: 82,
	},
	{
		ID: "SCI201", Category: "science", Title: "Applied Physics",
		Description:    "Learn physics principles through hands-on engineering challenges.",
		Benefits:       "Develops problem-solving skills and understanding of physical systems.",
		Duration:       "12 weeks", AgeRange: "12-16",
		LearningStyles: []string{"kinesthetic", "logical", "visual"},
		Traits:         []string{"analytical", "persistent", "creative"},
		DiscountEligible: true, NextStartDate: "May 28, 2025", Popularity: 78,
	},
	{
		ID: "SCI301", Category: "science", Title: "Research Methods & Design",
		Description:    "Design and conduct original scientific research projects.",
		Benefits:       "Prepares for college-level research and science competitions.",
		Duration:       "16 weeks", AgeRange: "14-18",
		LearningStyles: []string{"logical", "independent", "visual"},
		Traits:         []string{"analytical", "persistent", "organized"},
		DiscountEligible: false, NextStartDate: "July 8, 2025", Popularity: 75,
	},
	{
		ID: "LANG101", Category: "language", Title: "Creative Writing Workshop",
		Description:    "Develop creative writing skills through fun exercises and projects.",
		Benefits:       "Builds self-expression and communication skills.",
		Duration:       "8 weeks", AgeRange: "8-14",
		LearningStyles: []string{"auditory", "visual", "independent"},
		Traits:         []string{"creative", "organized", "persistent"},
		DiscountEligible: true, NextStartDate: "May 15, 2025", Popularity: 84,
	},
	{
		ID: "LANG102", Category: "language", Title: "Public Speaking Fundamentals",
		Description:    "Learn the basics of effective public speaking in a supportive environment.",
		Benefits:       "Develops confidence and verbal communication skills.",
		Duration:       "8 weeks", AgeRange: "10-16",
		LearningStyles: []string{"auditory", "social", "kinesthetic"},
		Traits:         []string{"leadership", "collaborative", "persistent"},
		DiscountEligible: true, NextStartDate: "June 10, 2025", Popularity: 80,
	},
	{
		ID: "LANG201", Category: "language", Title: "Digital Storytelling",
		Description:    "Create compelling stories using digital media and technology.",
		Benefits:       "Combines creative writing with digital media skills.",
		Duration:       "10 weeks", AgeRange: "12-18",
		LearningStyles: []string{"visual", "auditory", "independent"},
		Traits:         []string{"creative", "analytical", "organized"},
		DiscountEligible: true, NextStartDate: "May 25, 2025", Popularity: 82,
	},
	{
		ID: "LANG301", Category: "language", Title: "Content Creation & Publishing",
		Description:    "Create, edit, and publish original content across various platforms.",
		Benefits:       "Prepares for careers in writing, publishing, and digital media.",
		Duration:       "14 weeks", AgeRange: "14-18",
		LearningStyles: []string{"visual", "independent", "auditory"},
		Traits:         []string{"creative", "organized", "persistent"},
		DiscountEligible: false, NextStartDate: "July 1, 2025", Popularity: 78,
	},
}

var styleBenefits = map[string]string{
	"visual":      "The visual elements and demonstrations in this course align perfectly with your visual learning style.",
	"auditory":    "This course includes discussions and verbal explanations that match your auditory learning preference.",
	"kinesthetic": "You'll enjoy the hands-on activities in this course that suit your kinesthetic learning style.",
	"logical":     "The structured approach of this course complements your logical learning style.",
	"social":      "The collaborative aspects of this course are ideal for your social learning preference.",
	"independent": "This course offers opportunities for self-directed learning that match your independent style.",
}

var traitBenefits = map[string]string{
	"creative":      "Your creative thinking will be an asset in the innovative projects included in this course.",
	"analytical":    "Your analytical abilities will help you excel in the problem-solving aspects of this course.",
	"persistent":    "Your persistence will be valuable when tackling the challenging components of this course.",
	"leadership":    "Your leadership qualities will shine in the group activities included in this course.",
	"collaborative": "Your collaborative nature will be beneficial in the team projects within this course.",
	"organized":     "Your organizational skills will help you manage the various components of this course effectively.",
}

// Courses picks the best-fitting courses for a student. The candidate pool
// is the primary and secondary pathway categories plus any other interest
// categories, age-filtered with a full-pool fallback, scored, and backfilled
// by popularity when the pool runs short.
func Courses(result analysis.Result, p pathway.Pathway, age, count int) []Recommendation {
	pool := candidatePool(result.Interests.TopInterests, p.PrimaryCategory, p.SecondaryCategory)

	ageAppropriate := make([]Course, 0, len(pool))
	for _, course := range pool {
		if pathway.AgeInRange(age, course.AgeRange) {
			ageAppropriate = append(ageAppropriate, course)
		}
	}
	if len(ageAppropriate) == 0 {
		ageAppropriate = pool
	}

	recs := make([]Recommendation, 0, len(ageAppropriate))
	for _, course := range ageAppropriate {
		recs = append(recs, Recommendation{
			Course:   course,
			FitScore: FitScore(course, result),
		})
	}
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].FitScore > recs[j].FitScore })

	if len(recs) > count {
		recs = recs[:count]
	}

	if len(recs) < count {
		recs = backfill(recs, age, count)
	}

	for i := range recs {
		recs[i].PersonalizedBenefit = personalizedBenefit(recs[i].Course, result)
	}

	return recs
}

func candidatePool(interests []string, primary, secondary string) []Course {
	categories := []string{primary}
	if secondary != primary {
		categories = append(categories, secondary)
	}
	for _, interest := range interests {
		if interest != primary && interest != secondary {
			categories = append(categories, interest)
		}
	}

	var pool []Course
	for _, category := range categories {
		for _, course := range catalog {
			if course.Category == category {
				pool = append(pool, course)
			}
		}
	}
	return pool
}

// FitScore rates a course 0-100 against a profile: learning style matches
// up to 40 points, trait matches up to 21, interest category up to 20, and
// popularity up to 10.
func FitScore(course Course, result analysis.Result) float64 {
	score := 0.0

	if contains(course.LearningStyles, result.LearningStyles.Primary) {
		score += 30
	}
	for _, style := range result.LearningStyles.Secondary {
		if contains(course.LearningStyles, style) {
			score += 5
		}
	}

	for i, trait := range result.Traits.TopTraits {
		if i >= 3 {
			break
		}
		if contains(course.Traits, trait) {
			score += float64(10 - i*3)
		}
	}

	interests := result.Interests.TopInterests
	switch {
	case len(interests) > 0 && course.Category == interests[0]:
		score += 20
	case len(interests) > 1 && course.Category == interests[1]:
		score += 15
	case containsAfter(interests, 2, course.Category):
		score += 10
	}

	score += float64(course.Popularity) / 10

	return score
}

func backfill(recs []Recommendation, age, count int) []Recommendation {
	have := make(map[string]bool, len(recs))
	for _, rec := range recs {
		have[rec.ID] = true
	}

	var extra []Course
	for _, course := range catalog {
		if !have[course.ID] && pathway.AgeInRange(age, course.AgeRange) {
			extra = append(extra, course)
		}
	}
	sort.SliceStable(extra, func(i, j int) bool { return extra[i].Popularity > extra[j].Popularity })

	for _, course := range extra {
		if len(recs) >= count {
			break
		}
		recs = append(recs, Recommendation{Course: course})
	}
	return recs
}

func personalizedBenefit(course Course, result analysis.Result) string {
	parts := []string{course.Benefits}

	if text, ok := styleBenefits[result.LearningStyles.Primary]; ok {
		parts = append(parts, text)
	}
	if traits := result.Traits.TopTraits; len(traits) > 0 {
		if text, ok := traitBenefits[traits[0]]; ok {
			parts = append(parts, text)
		}
	}

	return strings.Join(parts, " ")
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

func containsAfter(list []string, from int, value string) bool {
	for i := from; i < len(list); i++ {
		if list[i] == value {
			return true
		}
	}
	return false
}
