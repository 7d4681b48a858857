package analysis

// StyleProfile describes a learning style and how to support it.
type StyleProfile struct {
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Strategies       []string `json:"strategies"`
	IdealEnvironment string   `json:"idealEnvironment"`
}

// TraitProfile describes a character trait and its strengths.
type TraitProfile struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Strengths   []string `json:"strengths"`
}

// InterestProfile describes an interest area with career connections and
// the in-house program tracks that serve it.
type InterestProfile struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	RelatedCareers []string `json:"relatedCareers"`
	ProgramTracks  []string `json:"programTracks"`
}

// LearningStyles is the catalog of recognized learning styles.
var LearningStyles = map[string]StyleProfile{
	"visual": {
		Name:        "Visual Learner",
		Description: "Learns best through seeing information, including pictures, diagrams, and written instructions.",
		Strategies: []string{
			"Use visual aids like charts, maps, and diagrams",
			"Highlight important information in notes",
			"Watch educational videos and demonstrations",
			"Create mind maps to organize information",
		},
		IdealEnvironment: "Well-organized, visually stimulating spaces with minimal visual distractions.",
	},
	"auditory": {
		Name:        "Auditory Learner",
		Description: "Learns best through listening to information, including lectures, discussions, and verbal instructions.",
		Strategies: []string{
			"Record and listen to lectures or explanations",
			"Participate in group discussions",
			"Read information aloud",
			"Use mnemonic devices and rhymes",
		},
		IdealEnvironment: "Quiet spaces for concentration with opportunities for discussion and verbal processing.",
	},
	"kinesthetic": {
		Name:        "Kinesthetic Learner",
		Description: "Learns best through hands-on activities, physical movement, and practical experiences.",
		Strategies: []string{
			"Engage in hands-on experiments and activities",
			"Take frequent breaks to move around",
			"Use physical objects to represent concepts",
			"Apply learning to real-world situations",
		},
		IdealEnvironment: "Spaces that allow movement and hands-on activities with opportunities for experiential learning.",
	},
	"logical": {
		Name:        "Logical Learner",
		Description: "Learns best through reasoning, systems, and patterns, with a preference for structured information.",
		Strategies: []string{
			"Organize information into logical categories",
			"Look for patterns and relationships",
			"Break complex problems into steps",
			"Create systems and frameworks for understanding",
		},
		IdealEnvironment: "Structured environments with clear expectations and opportunities for analytical thinking.",
	},
	"social": {
		Name:        "Social Learner",
		Description: "Learns best through interaction with others, group work, and collaborative activities.",
		Strategies: []string{
			"Study with peers or in groups",
			"Discuss ideas and concepts with others",
			"Teach concepts to someone else",
			"Participate in collaborative projects",
		},
		IdealEnvironment: "Collaborative spaces that encourage interaction and group work.",
	},
	"independent": {
		Name:        "Independent Learner",
		Description: "Learns best through self-directed study, with a preference for working alone.",
		Strategies: []string{
			"Set personal learning goals",
			"Create individual study plans",
			"Seek resources for self-directed learning",
			"Reflect on personal progress",
		},
		IdealEnvironment: "Quiet, personal spaces with minimal distractions and opportunities for self-directed work.",
	},
}

// Traits is the catalog of recognized character traits.
var Traits = map[string]TraitProfile{
	"creative": {
		Name:        "Creative Thinker",
		Description: "Shows originality and imagination in approaching problems and tasks.",
		Strengths: []string{
			"Generating unique ideas and solutions",
			"Thinking outside conventional boundaries",
			"Making unexpected connections between concepts",
			"Expressing ideas in innovative ways",
		},
	},
	"analytical": {
		Name:        "Analytical Thinker",
		Description: "Excels at breaking down complex information and identifying patterns and relationships.",
		Strengths: []string{
			"Solving complex problems systematically",
			"Identifying logical patterns and inconsistencies",
			"Evaluating information critically",
			"Making decisions based on careful analysis",
		},
	},
	"persistent": {
		Name:        "Persistent Worker",
		Description: "Shows determination and resilience when facing challenges or setbacks.",
		Strengths: []string{
			"Maintaining focus on long-term goals",
			"Overcoming obstacles through sustained effort",
			"Continuing to try different approaches when initial attempts fail",
			"Showing patience with difficult tasks",
		},
	},
	"leadership": {
		Name:        "Natural Leader",
		Description: "Takes initiative in group settings and helps guide others toward goals.",
		Strengths: []string{
			"Organizing and directing group activities",
			"Motivating others to participate",
			"Taking responsibility for outcomes",
			"Communicating vision and goals effectively",
		},
	},
	"collaborative": {
		Name:        "Team Collaborator",
		Description: "Works effectively with others and contributes positively to group efforts.",
		Strengths: []string{
			"Sharing ideas and resources with others",
			"Listening to and incorporating different perspectives",
			"Supporting team members and building consensus",
			"Adapting to group dynamics",
		},
	},
	"organized": {
		Name:        "Organized Planner",
		Description: "Excels at planning, organizing, and managing time and resources effectively.",
		Strengths: []string{
			"Creating and following structured plans",
			"Managing time efficiently",
			"Keeping track of details and requirements",
			"Prioritizing tasks appropriately",
		},
	},
}

// Interests is the catalog of recognized interest areas.
var Interests = map[string]InterestProfile{
	"tech": {
		Name:        "Technology & Computing",
		Description: "Shows interest in computers, programming, robotics, and digital technologies.",
		RelatedCareers: []string{
			"Software Developer",
			"Robotics Engineer",
			"Data Scientist",
			"AI Specialist",
			"Game Designer",
		},
		ProgramTracks: []string{"Coding Path", "Robotics Program", "AI & Machine Learning"},
	},
	"arts": {
		Name:        "Creative Arts",
		Description: "Shows interest in visual arts, music, design, and creative expression.",
		RelatedCareers: []string{
			"Graphic Designer",
			"Digital Artist",
			"Multimedia Producer",
			"UX/UI Designer",
			"Creative Director",
		},
		ProgramTracks: []string{"Digital Arts Program", "Creative Design Track", "Multimedia Production"},
	},
	"entrepreneurship": {
		Name:        "Entrepreneurship & Business",
		Description: "Shows interest in business concepts, innovation, and entrepreneurial ventures.",
		RelatedCareers: []string{
			"Entrepreneur",
			"Business Consultant",
			"Marketing Specialist",
			"Product Manager",
			"Innovation Strategist",
		},
		ProgramTracks: []string{"Young Entrepreneurs Program", "Business Innovation Track", "Leadership Academy"},
	},
	"science": {
		Name:        "Scientific Research",
		Description: "Shows interest in scientific inquiry, experimentation, and discovery.",
		RelatedCareers: []string{
			"Research Scientist",
			"Environmental Specialist",
			"Biomedical Researcher",
			"Laboratory Technician",
			"Science Educator",
		},
		ProgramTracks: []string{"Science Exploration Program", "Research Methods Track", "STEM Academy"},
	},
	"language": {
		Name:        "Communication & Language",
		Description: "Shows interest in reading, writing, languages, and communication.",
		RelatedCareers: []string{
			"Content Creator",
			"Journalist",
			"Technical Writer",
			"Communications Specialist",
			"Digital Marketing Manager",
		},
		ProgramTracks: []string{"Creative Writing Program", "Digital Communication Track", "Public Speaking Academy"},
	},
}
