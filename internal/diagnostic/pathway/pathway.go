// Package pathway builds personalized 3-step learning pathways from the
// course catalog and a student's learning profile.
package pathway

import (
	"strconv"
	"strings"

	"github.com/shiningstar/learninglens/internal/diagnostic/analysis"
)

// Course is a catalog entry offered at a specific level within a category.
type Course struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Benefits    string `json:"benefits"`
	Duration    string `json:"duration"`
	AgeRange    string `json:"ageRange"`
}

// FoundationStep is the first pathway step, pairing the primary entry
// course with a complementary one from the secondary category.
type FoundationStep struct {
	Title               string `json:"title"`
	Description         string `json:"description"`
	PrimaryCourse       Course `json:"primaryCourse"`
	ComplementaryCourse Course `json:"complementaryCourse"`
}

// Step is a single-course pathway step.
type Step struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Course      Course `json:"course"`
}

// Pathway is the full 3-step learning pathway recommendation.
type Pathway struct {
	PrimaryCategory   string         `json:"primaryCategory"`
	SecondaryCategory string         `json:"secondaryCategory"`
	Step1             FoundationStep `json:"step1"`
	Step2             Step           `json:"step2"`
	Step3             Step           `json:"step3"`
}

// Category iteration order for deterministic fallbacks.
var categoryOrder = []string{"tech", "arts", "entrepreneurship", "science", "language"}

var catalog = map[string]map[string][]Course{
	"tech": {
		"entry": {
			{
				ID:          "TECH101",
				Title:       "Introduction to Coding",
				Description: "A beginner-friendly introduction to programming concepts using block-based coding.",
				Benefits:    "Builds logical thinking and introduces fundamental programming concepts.",
				Duration:    "8 weeks",
				AgeRange:    "8-14",
			},
			{
				ID:          "TECH102",
				Title:       "Robotics Fundamentals",
				Description: "Hands-on introduction to robotics using LEGO Mindstorms or similar platforms.",
				Benefits:    "Develops problem-solving skills and introduces engineering concepts.",
				Duration:    "10 weeks",
				AgeRange:    "9-16",
			},
		},
		"intermediate": {
			{
				ID:          "TECH201",
				Title:       "Python Programming",
				Description: "Learn Python programming language fundamentals through practical projects.",
				Benefits:    "Builds real-world coding skills applicable to many technology fields.",
				Duration:    "12 weeks",
				AgeRange:    "12-18",
			},
			{
				ID:          "TECH202",
				Title:       "Web Development Basics",
				Description: "Introduction to HTML, CSS, and JavaScript for creating interactive websites.",
				Benefits:    "Develops creative and technical skills for the digital world.",
				Duration:    "10 weeks",
				AgeRange:    "13-18",
			},
		},
		"advanced": {
			{
				ID:          "TECH301",
				Title:       "AI & Machine Learning",
				Description: "Introduction to artificial intelligence concepts and machine learning applications.",
				Benefits:    "Prepares students for cutting-edge technology careers.",
				Duration:    "14 weeks",
				AgeRange:    "14-18",
			},
			{
				ID:          "TECH302",
				Title:       "Mobile App Development",
				Description: "Design and build mobile applications for iOS and Android platforms.",
				Benefits:    "Creates portfolio-ready projects and introduces software development lifecycle.",
				Duration:    "16 weeks",
				AgeRange:    "14-18",
			},
		},
	},
	"arts": {
		"entry": {
			{
				ID:          "ARTS101",
				Title:       "Digital Art Fundamentals",
				Description: "Introduction to digital art creation using tablets and beginner-friendly software.",
				Benefits:    "Develops creative expression and introduces digital tools.",
				Duration:    "8 weeks",
				AgeRange:    "8-16",
			},
			{
				ID:          "ARTS102",
				Title:       "Animation Basics",
				Description: "Learn the principles of animation through simple projects and exercises.",
				Benefits:    "Builds storytelling skills and introduces motion design concepts.",
				Duration:    "10 weeks",
				AgeRange:    "9-16",
			},
		},
		"intermediate": {
			{
				ID:          "ARTS201",
				Title:       "Graphic Design Principles",
				Description: "Learn fundamental design principles and industry-standard software.",
				Benefits:    "Develops visual communication skills applicable to many creative fields.",
				Duration:    "12 weeks",
				AgeRange:    "12-18",
			},
			{
				ID:          "ARTS202",
				Title:       "Digital Photography & Editing",
				Description: "Master digital photography techniques and photo editing software.",
				Benefits:    "Creates portfolio-quality work and develops visual storytelling abilities.",
				Duration:    "10 weeks",
				AgeRange:    "12-18",
			},
		},
		"advanced": {
			{
				ID:          "ARTS301",
				Title:       "3D Modeling & Animation",
				Description: "Create 3D models and animations using professional software.",
				Benefits:    "Prepares for careers in animation, game design, and visual effects.",
				Duration:    "14 weeks",
				AgeRange:    "14-18",
			},
			{
				ID:          "ARTS302",
				Title:       "Digital Media Portfolio",
				Description: "Create a professional portfolio of digital art and design projects.",
				Benefits:    "Prepares students for college applications or freelance opportunities.",
				Duration:    "16 weeks",
				AgeRange:    "15-18",
			},
		},
	},
	"entrepreneurship": {
		"entry": {
			{
				ID:          "BIZ101",
				Title:       "Young Entrepreneurs",
				Description: "Introduction to business concepts through fun, hands-on projects.",
				Benefits:    "Develops creative thinking and introduces basic business principles.",
				Duration:    "8 weeks",
				AgeRange:    "10-14",
			},
			{
				ID:          "BIZ102",
				Title:       "Design Thinking Workshop",
				Description: "Learn the design thinking process to solve real-world problems.",
				Benefits:    "Builds problem-solving skills and introduces innovation methods.",
				Duration:    "6 weeks",
				AgeRange:    "11-16",
			},
		},
		"intermediate": {
			{
				ID:          "BIZ201",
				Title:       "Business Plan Development",
				Description: "Create a comprehensive business plan for an original business idea.",
				Benefits:    "Develops strategic thinking and planning skills.",
				Duration:    "12 weeks",
				AgeRange:    "13-18",
			},
			{
				ID:          "BIZ202",
				Title:       "Digital Marketing Essentials",
				Description: "Learn effective digital marketing strategies for business growth.",
				Benefits:    "Builds practical skills for promoting products and services online.",
				Duration:    "10 weeks",
				AgeRange:    "14-18",
			},
		},
		"advanced": {
			{
				ID:          "BIZ301",
				Title:       "Startup Incubator",
				Description: "Launch a real micro-business with mentorship and support.",
				Benefits:    "Provides real-world entrepreneurial experience and portfolio development.",
				Duration:    "16 weeks",
				AgeRange:    "15-18",
			},
			{
				ID:          "BIZ302",
				Title:       "Leadership & Management",
				Description: "Develop leadership skills and learn effective team management.",
				Benefits:    "Prepares for leadership roles in business and organizations.",
				Duration:    "12 weeks",
				AgeRange:    "15-18",
			},
		},
	},
	"science": {
		"entry": {
			{
				ID:          "SCI101",
				Title:       "Junior Scientists",
				Description: "Hands-on science experiments and projects across various disciplines.",
				Benefits:    "Develops scientific thinking and curiosity about the natural world.",
				Duration:    "8 weeks",
				AgeRange:    "8-12",
			},
			{
				ID:          "SCI102",
				Title:       "Environmental Science Explorers",
				Description: "Investigate environmental systems through field work and experiments.",
				Benefits:    "Builds awareness of environmental issues and scientific methods.",
				Duration:    "10 weeks",
				AgeRange:    "9-14",
			},
		},
		"intermediate": {
			{
				ID:          "SCI201",
				Title:       "Applied Physics",
				Description: "Learn physics principles through hands-on engineering challenges.",
				Benefits:    "Develops problem-solving skills and understanding of physical systems.",
				Duration:    "12 weeks",
				AgeRange:    "12-16",
			},
			{
				ID:          "SCI202",
				Title:       "Biotechnology Basics",
				Description: "Introduction to biotechnology concepts and laboratory techniques.",
				Benefits:    "Builds understanding of cutting-edge biological sciences.",
				Duration:    "12 weeks",
				AgeRange:    "13-18",
			},
		},
		"advanced": {
			{
				ID:          "SCI301",
				Title:       "Research Methods & Design",
				Description: "Design and conduct original scientific research projects.",
				Benefits:    "Prepares for college-level research and science competitions.",
				Duration:    "16 weeks",
				AgeRange:    "14-18",
			},
			{
				ID:          "SCI302",
				Title:       "Data Science & Analytics",
				Description: "Learn to collect, analyze, and visualize data for scientific insights.",
				Benefits:    "Develops valuable skills for research and data-driven fields.",
				Duration:    "14 weeks",
				AgeRange:    "15-18",
			},
		},
	},
	"language": {
		"entry": {
			{
				ID:          "LANG101",
				Title:       "Creative Writing Workshop",
				Description: "Develop creative writing skills through fun exercises and projects.",
				Benefits:    "Builds self-expression and communication skills.",
				Duration:    "8 weeks",
				AgeRange:    "8-14",
			},
			{
				ID:          "LANG102",
				Title:       "Public Speaking Fundamentals",
				Description: "Learn the basics of effective public speaking in a supportive environment.",
				Benefits:    "Develops confidence and verbal communication skills.",
				Duration:    "8 weeks",
				AgeRange:    "10-16",
			},
		},
		"intermediate": {
			{
				ID:          "LANG201",
				Title:       "Digital Storytelling",
				Description: "Create compelling stories using digital media and technology.",
				Benefits:    "Combines creative writing with digital media skills.",
				Duration:    "10 weeks",
				AgeRange:    "12-18",
			},
			{
				ID:          "LANG202",
				Title:       "Debate & Argumentation",
				Description: "Master the art of constructing and delivering persuasive arguments.",
				Benefits:    "Develops critical thinking and advanced communication skills.",
				Duration:    "12 weeks",
				AgeRange:    "13-18",
			},
		},
		"advanced": {
			{
				ID:          "LANG301",
				Title:       "Content Creation & Publishing",
				Description: "Create, edit, and publish original content across various platforms.",
				Benefits:    "Prepares for careers in writing, publishing, and digital media.",
				Duration:    "14 weeks",
				AgeRange:    "14-18",
			},
			{
				ID:          "LANG302",
				Title:       "Professional Communication",
				Description: "Master business writing, presentations, and professional communication.",
				Benefits:    "Develops essential skills for college and career success.",
				Duration:    "12 weeks",
				AgeRange:    "15-18",
			},
		},
	},
}

var styleCategories = map[string][]string{
	"visual":      {"arts", "tech"},
	"auditory":    {"language", "science"},
	"kinesthetic": {"tech", "science"},
	"logical":     {"science", "tech"},
	"social":      {"entrepreneurship", "language"},
	"independent": {"science", "arts"},
}

var traitCategories = map[string][]string{
	"creative":      {"arts", "language"},
	"analytical":    {"science", "tech"},
	"persistent":    {"tech", "science"},
	"leadership":    {"entrepreneurship", "language"},
	"collaborative": {"entrepreneurship", "language"},
	"organized":     {"science", "entrepreneurship"},
}

// Generate builds the 3-step pathway for a student of the given age from
// their analysis result.
func Generate(result analysis.Result, age int) Pathway {
	style := result.LearningStyles.Primary
	traits := result.Traits.TopTraits
	interests := result.Interests.TopInterests

	primary := PrimaryCategory(interests, style, traits)
	secondary := SecondaryCategory(primary, interests, style, traits)

	return Pathway{
		PrimaryCategory:   primary,
		SecondaryCategory: secondary,
		Step1: FoundationStep{
			Title:               "Building Your Foundation",
			Description:         "Start with these courses to build core skills in your areas of interest and strength.",
			PrimaryCourse:       selectCourse(primary, "entry", age),
			ComplementaryCourse: selectCourse(secondary, "entry", age),
		},
		Step2: Step{
			Title:       "Expanding Your Skills",
			Description: "Once you've mastered the basics, these courses will help you develop more advanced abilities.",
			Course:      selectCourse(primary, "intermediate", age),
		},
		Step3: Step{
			Title:       "Specializing Your Expertise",
			Description: "These advanced courses will prepare you for real-world applications and future opportunities.",
			Course:      selectCourse(primary, "advanced", age),
		},
	}
}

// PrimaryCategory resolves the course category that best fits a profile:
// top catalogued interest first, then the learning style mapping with a
// preference for overlap with secondary interests, then the top trait
// mapping, and finally tech.
func PrimaryCategory(interests []string, style string, traits []string) string {
	if len(interests) > 0 {
		if _, ok := catalog[interests[0]]; ok {
			return interests[0]
		}
	}

	if categories, ok := styleCategories[style]; ok {
		for i, interest := range interests {
			if i == 0 {
				continue
			}
			for _, category := range categories {
				if interest == category {
					return interest
				}
			}
		}
		return categories[0]
	}

	if len(traits) > 0 {
		if categories, ok := traitCategories[traits[0]]; ok {
			return categories[0]
		}
	}

	return "tech"
}

// SecondaryCategory picks a complementary category different from the
// primary one.
func SecondaryCategory(primary string, interests []string, style string, traits []string) string {
	for _, interest := range interests {
		if _, ok := catalog[interest]; ok && interest != primary {
			return interest
		}
	}

	if categories, ok := styleCategories[style]; ok {
		for _, category := range categories {
			if category != primary {
				return category
			}
		}
	}

	if len(traits) > 0 {
		if categories, ok := traitCategories[traits[0]]; ok {
			for _, category := range categories {
				if category != primary {
					return category
				}
			}
		}
	}

	for _, category := range categoryOrder {
		if category != primary {
			return category
		}
	}

	return primary
}

// CoursesFor exposes the catalog entries for a category and level.
func CoursesFor(category, level string) []Course {
	return catalog[category][level]
}

func selectCourse(category, level string, age int) Course {
	available := catalog[category][level]
	if len(available) == 0 {
		return Course{
			ID:          "N/A",
			Title:       "Course Not Available",
			Description: "No suitable course found for this category and level.",
			Benefits:    "Please contact an advisor for alternatives.",
			Duration:    "N/A",
			AgeRange:    "N/A",
		}
	}

	for _, course := range available {
		if AgeInRange(age, course.AgeRange) {
			return course
		}
	}

	// No age-appropriate course, fall back to the first one.
	return available[0]
}

// AgeInRange reports whether age falls within a "min-max" range string.
func AgeInRange(age int, ageRange string) bool {
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
