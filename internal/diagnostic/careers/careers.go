// Package careers suggests potential future careers and education paths
// based on a student's learning profile.
package careers

import "github.com/shiningstar/learninglens/internal/diagnostic/analysis"

// Career is a single career suggestion within a field.
type Career struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	EducationPath string   `json:"educationPath"`
	SkillsNeeded  []string `json:"skillsNeeded"`
	GrowthOutlook string   `json:"growthOutlook"`
}

// Field groups careers under a named professional area.
type Field struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Careers     []Career `json:"careers"`
}

// EducationPaths collects college majors and alternative routes into a field.
type EducationPaths struct {
	CollegeMajors    []string `json:"collegeMajors"`
	AlternativePaths []string `json:"alternativePaths"`
	Note             string   `json:"note"`
}

// Affinities is the full career guidance output for one profile.
type Affinities struct {
	PrimaryField            string         `json:"primaryField"`
	PrimaryFieldDescription string         `json:"primaryFieldDescription"`
	PrimaryCareers          []Career       `json:"primaryCareers"`
	SecondaryCareers        []Career       `json:"secondaryCareers"`
	EducationPaths          EducationPaths `json:"educationPaths"`
	Disclaimer              string         `json:"disclaimer"`
}

const disclaimer = "These suggestions are based on your current interests and strengths. " +
	"Your path may change as you grow and explore new areas. This is meant to inspire, not limit your options."

const educationNote = "Education paths are just one way to prepare for these careers. " +
	"Many successful professionals combine formal education with practical experience and self-directed learning."

var categoryOrder = []string{"tech", "arts", "entrepreneurship", "science", "language"}

var careerFields = map[string]Field{
	"tech": {
		Title:       "Technology & Computing",
		Description: "Careers focused on developing, implementing, and maintaining technology systems and software.",
		Careers: []Career{
			{
				Title:         "Software Developer",
				Description:   "Creates applications and systems that run on computers and other devices.",
				EducationPath: "Computer Science or Software Engineering degree, coding bootcamps, or self-taught with strong portfolio.",
				SkillsNeeded:  []string{"Programming", "Problem-solving", "Logical thinking", "Attention to detail"},
				GrowthOutlook: "Excellent growth prospects with increasing demand across industries.",
			},
			{
				Title:         "AI & Machine Learning Specialist",
				Description:   "Develops systems that can learn from and make decisions based on data.",
				EducationPath: "Computer Science degree with specialization in AI/ML, often requires advanced degrees.",
				SkillsNeeded:  []string{"Programming", "Mathematics", "Data analysis", "Research skills"},
				GrowthOutlook: "One of the fastest-growing tech fields with applications expanding rapidly.",
			},
			{
				Title:         "Robotics Engineer",
				Description:   "Designs, builds, and programs robots for various applications.",
				EducationPath: "Robotics, Mechanical Engineering, or Computer Science degree.",
				SkillsNeeded:  []string{"Programming", "Mechanical design", "Electronics", "Problem-solving"},
				GrowthOutlook: "Growing field with applications in manufacturing, healthcare, and consumer products.",
			},
			{
				Title:         "Game Developer",
				Description:   "Creates video games for computers, consoles, and mobile devices.",
				EducationPath: "Game Development, Computer Science degree, or specialized training programs.",
				SkillsNeeded:  []string{"Programming", "Creativity", "Visual design", "Storytelling"},
				GrowthOutlook: "Steady growth in a competitive industry with opportunities in various game types.",
			},
			{
				Title:         "Cybersecurity Specialist",
				Description:   "Protects computer systems and networks from threats and attacks.",
				EducationPath: "Cybersecurity or Computer Science degree, often with specialized certifications.",
				SkillsNeeded:  []string{"Security protocols", "Problem-solving", "Attention to detail", "Ethical hacking"},
				GrowthOutlook: "Critical and rapidly growing field with high demand across all sectors.",
			},
		},
	},
	"arts": {
		Title:       "Creative Arts & Design",
		Description: "Careers focused on visual communication, digital media, and artistic expression.",
		Careers: []Career{
			{
				Title:         "UX/UI Designer",
				Description:   "Designs user interfaces and experiences for websites, apps, and digital products.",
				EducationPath: "Design degree, UX certification programs, or self-taught with strong portfolio.",
				SkillsNeeded:  []string{"Visual design", "User empathy", "Prototyping", "Research skills"},
				GrowthOutlook: "Strong demand as digital products continue to prioritize user experience.",
			},
			{
				Title:         "Digital Artist",
				Description:   "Creates visual art using digital tools and technologies.",
				EducationPath: "Fine Arts or Digital Arts degree, or self-taught with strong portfolio.",
				SkillsNeeded:  []string{"Creativity", "Visual composition", "Technical software skills", "Artistic vision"},
				GrowthOutlook: "Growing opportunities in entertainment, advertising, and digital media.",
			},
			{
				Title:         "3D Animator",
				Description:   "Creates animated characters, environments, and effects for films, games, and media.",
				EducationPath: "Animation, Digital Arts degree, or specialized training programs.",
				SkillsNeeded:  []string{"3D modeling", "Animation principles", "Storytelling", "Technical software skills"},
				GrowthOutlook: "Continued growth in film, gaming, and emerging AR/VR applications.",
			},
			{
				Title:         "Graphic Designer",
				Description:   "Creates visual concepts to communicate ideas through print and digital media.",
				EducationPath: "Graphic Design degree or certificate programs with portfolio development.",
				SkillsNeeded:  []string{"Visual design", "Typography", "Color theory", "Communication"},
				GrowthOutlook: "Steady demand across industries for both in-house and freelance designers.",
			},
			{
				Title:         "Art Director",
				Description:   "Oversees visual style and creative elements of projects in various media.",
				EducationPath: "Design or Fine Arts degree, typically with several years of industry experience.",
				SkillsNeeded:  []string{"Leadership", "Visual design", "Project management", "Creative vision"},
				GrowthOutlook: "Senior-level position with opportunities in advertising, publishing, and entertainment.",
			},
		},
	},
	"entrepreneurship": {
		Title:       "Business & Entrepreneurship",
		Description: "Careers focused on creating, managing, and growing business ventures and organizations.",
		Careers: []Career{
			{
				Title:         "Entrepreneur/Startup Founder",
				Description:   "Creates and builds new businesses, products, or services.",
				EducationPath: "Business degree helpful but not required; many successful entrepreneurs come from diverse backgrounds.",
				SkillsNeeded:  []string{"Innovation", "Risk management", "Leadership", "Adaptability"},
				GrowthOutlook: "Always opportunities for innovative new ventures, though success rates vary widely.",
			},
			{
				Title:         "Product Manager",
				Description:   "Oversees product development from conception to launch and beyond.",
				EducationPath: "Business, Engineering, or related degree, often with MBA for senior positions.",
				SkillsNeeded:  []string{"Strategic thinking", "User empathy", "Communication", "Data analysis"},
				GrowthOutlook: "High demand role, especially in technology and consumer product companies.",
			},
			{
				Title:         "Marketing Specialist",
				Description:   "Develops and implements strategies to promote products and services.",
				EducationPath: "Marketing, Business, or Communications degree, often with specialized certifications.",
				SkillsNeeded:  []string{"Communication", "Creativity", "Data analysis", "Strategic thinking"},
				GrowthOutlook: "Evolving field with growing emphasis on digital marketing skills.",
			},
			{
				Title:         "Business Consultant",
				Description:   "Advises businesses on improving performance, operations, and strategy.",
				EducationPath: "Business degree, often with MBA or specialized expertise in particular industries.",
				SkillsNeeded:  []string{"Problem-solving", "Analysis", "Communication", "Industry knowledge"},
				GrowthOutlook: "Consistent demand, especially for consultants with specialized expertise.",
			},
			{
				Title:         "Innovation Strategist",
				Description:   "Develops strategies for organizations to innovate and stay competitive.",
				EducationPath: "Business, Design, or Engineering background, often with interdisciplinary experience.",
				SkillsNeeded:  []string{"Creative thinking", "Strategic planning", "Research", "Change management"},
				GrowthOutlook: "Growing field as companies increasingly prioritize innovation.",
			},
		},
	},
	"science": {
		Title:       "Scientific Research & Development",
		Description: "Careers focused on scientific inquiry, discovery, and application of knowledge.",
		Careers: []Career{
			{
				Title:         "Data Scientist",
				Description:   "Analyzes complex data to help organizations make better decisions.",
				EducationPath: "Statistics, Computer Science, or related field, often with advanced degrees.",
				SkillsNeeded:  []string{"Programming", "Statistics", "Machine learning", "Data visualization"},
				GrowthOutlook: "Rapidly growing field with applications across virtually all industries.",
			},
			{
				Title:         "Research Scientist",
				Description:   "Conducts experiments and investigations to expand scientific knowledge.",
				EducationPath: "PhD in specific scientific field (Biology, Chemistry, Physics, etc.).",
				SkillsNeeded:  []string{"Research methods", "Critical thinking", "Technical writing", "Specialized knowledge"},
				GrowthOutlook: "Varies by field, with strongest growth in interdisciplinary and emerging areas.",
			},
			{
				Title:         "Biomedical Engineer",
				Description:   "Develops devices and procedures that solve medical and health-related problems.",
				EducationPath: "Biomedical Engineering or related engineering degree.",
				SkillsNeeded:  []string{"Engineering principles", "Biology", "Problem-solving", "Design thinking"},
				GrowthOutlook: "Strong growth with aging population and advances in medical technology.",
			},
			{
				Title:         "Environmental Scientist",
				Description:   "Studies environmental conditions and develops solutions to environmental problems.",
				EducationPath: "Environmental Science, Ecology, or related degree.",
				SkillsNeeded:  []string{"Research methods", "Data analysis", "Field work", "Communication"},
				GrowthOutlook: "Growing field as environmental concerns become increasingly important.",
			},
			{
				Title:         "Biotechnologist",
				Description:   "Applies biological processes to develop new products and technologies.",
				EducationPath: "Biotechnology, Biology, or related degree, often with advanced degrees.",
				SkillsNeeded:  []string{"Laboratory techniques", "Research", "Problem-solving", "Innovation"},
				GrowthOutlook: "Expanding field with applications in medicine, agriculture, and industry.",
			},
		},
	},
	"language": {
		Title:       "Communication & Media",
		Description: "Careers focused on creating, managing, and sharing information and stories.",
		Careers: []Career{
			{
				Title:         "Content Creator",
				Description:   "Develops written, visual, or multimedia content for various platforms.",
				EducationPath: "Communications, Journalism, or related field, or self-taught with strong portfolio.",
				SkillsNeeded:  []string{"Writing", "Creativity", "Digital media", "Audience engagement"},
				GrowthOutlook: "Expanding opportunities with growth of digital platforms and content marketing.",
			},
			{
				Title:         "Technical Writer",
				Description:   "Creates documentation that explains complex information in accessible ways.",
				EducationPath: "English, Communications, or technical field with strong writing skills.",
				SkillsNeeded:  []string{"Clear writing", "Research", "Information organization", "Subject knowledge"},
				GrowthOutlook: "Steady demand, especially in technology, healthcare, and engineering.",
			},
			{
				Title:         "Digital Marketing Manager",
				Description:   "Oversees online marketing strategies and campaigns.",
				EducationPath: "Marketing, Communications, or Business degree, often with specialized certifications.",
				SkillsNeeded:  []string{"Digital platforms", "Analytics", "Content strategy", "Campaign management"},
				GrowthOutlook: "Strong growth as marketing continues to shift toward digital channels.",
			},
			{
				Title:         "Public Relations Specialist",
				Description:   "Manages communication between organizations and the public.",
				EducationPath: "Public Relations, Communications, or Journalism degree.",
				SkillsNeeded:  []string{"Communication", "Media relations", "Writing", "Strategic thinking"},
				GrowthOutlook: "Steady demand with evolving focus on digital and social media skills.",
			},
			{
				Title:         "UX Writer",
				Description:   "Creates the text that appears throughout digital interfaces.",
				EducationPath: "English, Communications, or Design background with specialized training.",
				SkillsNeeded:  []string{"Concise writing", "User empathy", "Information architecture", "Collaboration"},
				GrowthOutlook: "Growing specialty within UX design as companies focus on user experience.",
			},
		},
	},
}

type educationCatalogEntry struct {
	collegeMajors    []string
	alternativePaths []string
}

var educationCatalog = map[string]educationCatalogEntry{
	"tech": {
		collegeMajors: []string{
			"Computer Science",
			"Software Engineering",
			"Information Technology",
			"Computer Engineering",
			"Data Science",
		},
		alternativePaths: []string{
			"Coding bootcamps",
			"Technical certification programs",
			"Self-directed learning with portfolio development",
			"Apprenticeships in tech companies",
		},
	},
	"arts": {
		collegeMajors: []string{
			"Graphic Design",
			"Digital Media",
			"Animation",
			"Game Design",
			"Interactive Media",
		},
		alternativePaths: []string{
			"Design bootcamps",
			"Portfolio development programs",
			"Apprenticeships with established artists",
			"Self-directed learning with online courses",
		},
	},
	"entrepreneurship": {
		collegeMajors: []string{
			"Business Administration",
			"Entrepreneurship",
			"Marketing",
			"Finance",
			"International Business",
		},
		alternativePaths: []string{
			"Startup incubators and accelerators",
			"Business certificate programs",
			"Mentorship with established entrepreneurs",
			"Direct experience launching small ventures",
		},
	},
	"science": {
		collegeMajors: []string{
			"Biology",
			"Chemistry",
			"Physics",
			"Environmental Science",
			"Biomedical Engineering",
		},
		alternativePaths: []string{
			"Laboratory technician certification",
			"Research assistant positions",
			"Field research programs",
			"Science communication programs",
		},
	},
	"language": {
		collegeMajors: []string{
			"Communications",
			"Journalism",
			"English",
			"Media Studies",
			"Public Relations",
		},
		alternativePaths: []string{
			"Content creation portfolios",
			"Digital marketing certifications",
			"Publishing internships",
			"Self-publishing and platform building",
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

// Suggest produces career affinity guidance from an analysis result: the
// primary field with its top 3 careers, one career from each of the top-2
// secondary fields, and blended education paths.
func Suggest(result analysis.Result) Affinities {
	style := result.LearningStyles.Primary
	traits := result.Traits.TopTraits
	interests := result.Interests.TopInterests

	primary := primaryCategory(interests, style, traits)
	secondary := secondaryCategories(primary, interests, style, traits)

	var secondaryCareers []Career
	for i, category := range secondary {
		if i >= 2 {
			break
		}
		secondaryCareers = append(secondaryCareers, selectCareers(category, 1)...)
	}

	firstSecondary := ""
	if len(secondary) > 0 {
		firstSecondary = secondary[0]
	}

	field := careerFields[primary]
	return Affinities{
		PrimaryField:            field.Title,
		PrimaryFieldDescription: field.Description,
		PrimaryCareers:          selectCareers(primary, 3),
		SecondaryCareers:        secondaryCareers,
		EducationPaths:          educationPaths(primary, firstSecondary),
		Disclaimer:              disclaimer,
	}
}

func primaryCategory(interests []string, style string, traits []string) string {
	if len(interests) > 0 {
		if _, ok := careerFields[interests[0]]; ok {
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

// secondaryCategories builds an ordered, deduplicated list of complementary
// fields: other interests first, then style-mapped and trait-mapped fields.
func secondaryCategories(primary string, interests []string, style string, traits []string) []string {
	var result []string
	seen := map[string]bool{primary: true}

	add := func(category string) {
		if _, ok := careerFields[category]; ok && !seen[category] {
			seen[category] = true
			result = append(result, category)
		}
	}

	for _, interest := range interests {
		add(interest)
	}
	for _, category := range styleCategories[style] {
		add(category)
	}
	for _, trait := range traits {
		for _, category := range traitCategories[trait] {
			add(category)
		}
	}

	if len(result) == 0 {
		for _, category := range categoryOrder {
			if category != primary {
				result = append(result, category)
				break
			}
		}
	}

	return result
}

func selectCareers(category string, count int) []Career {
	field, ok := careerFields[category]
	if !ok {
		return nil
	}
	if count > len(field.Careers) {
		count = len(field.Careers)
	}
	return field.Careers[:count]
}

func educationPaths(primary, secondary string) EducationPaths {
	paths := EducationPaths{
		CollegeMajors:    []string{},
		AlternativePaths: []string{},
		Note:             educationNote,
	}

	if entry, ok := educationCatalog[primary]; ok {
		paths.CollegeMajors = append(paths.CollegeMajors, entry.collegeMajors[:3]...)
		paths.AlternativePaths = append(paths.AlternativePaths, entry.alternativePaths[:2]...)
	}
	if entry, ok := educationCatalog[secondary]; ok {
		paths.CollegeMajors = append(paths.CollegeMajors, entry.collegeMajors[:2]...)
		paths.AlternativePaths = append(paths.AlternativePaths, entry.alternativePaths[:1]...)
	}

	return paths
}
