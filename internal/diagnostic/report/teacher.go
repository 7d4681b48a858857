package report

import (
	"github.com/shiningstar/learninglens/internal/diagnostic/analysis"
)

// TeacherContent is the teacher-facing report body with classroom
// oriented insights derived from the diagnostic profile.
type TeacherContent struct {
	AcademicInsights    AcademicInsights    `json:"academicInsights"`
	ClassroomStrategies ClassroomStrategies `json:"classroomStrategies"`
	ChallengesSolutions []Challenge         `json:"challengesSolutions"`
	StrengthsGrowth     StrengthsGrowth     `json:"strengthsGrowth"`
	ParentAlignment     ParentAlignment     `json:"parentAlignment"`
	MathAptitude        MathAptitude        `json:"mathAptitude"`
	ExamReadiness       ExamReadiness       `json:"examReadiness"`
}

// AcademicInsights summarizes how the student approaches schoolwork.
type AcademicInsights struct {
	AcademicApproach      string                `json:"academicApproach"`
	SubjectAffinities     SubjectAffinities     `json:"subjectAffinities"`
	LearningPace          LearningPace          `json:"learningPace"`
	AttentionFocus        AttentionFocus        `json:"attentionFocus"`
	GroupDynamics         GroupDynamics         `json:"groupDynamics"`
	AssessmentPreferences AssessmentPreferences `json:"assessmentPreferences"`
}

type SubjectAffinities struct {
	Strengths  []string `json:"strengths"`
	Challenges []string `json:"challenges"`
}

type LearningPace struct {
	Pace  string `json:"pace"`
	Depth string `json:"depth"`
}

type AttentionFocus struct {
	Characteristics string   `json:"characteristics"`
	Duration        string   `json:"duration"`
	Strategies      []string `json:"strategies"`
}

type GroupDynamics struct {
	RolePreference     string `json:"rolePreference"`
	CollaborationStyle string `json:"collaborationStyle"`
	OptimalGroupSize   string `json:"optimalGroupSize"`
	OptimalComposition string `json:"optimalComposition"`
}

type AssessmentPreferences struct {
	PreferredTypes   []string `json:"preferredTypes"`
	ChallengingTypes []string `json:"challengingTypes"`
	Approach         string   `json:"approach"`
	Recommendations  []string `json:"recommendations"`
}

type ClassroomStrategies struct {
	Engagement      []string `json:"engagement"`
	Motivation      []string `json:"motivation"`
	Differentiation []string `json:"differentiation"`
}

// Challenge pairs a potential classroom challenge with solutions.
type Challenge struct {
	Challenge string   `json:"challenge"`
	Solutions []string `json:"solutions"`
}

type StrengthsGrowth struct {
	Strengths       []string `json:"strengths"`
	GrowthAreas     []string `json:"growthAreas"`
	Recommendations []string `json:"recommendations"`
}

type ParentAlignment struct {
	AlignmentAreas          []string `json:"alignmentAreas"`
	DifferenceAreas         []string `json:"differenceAreas"`
	CommunicationStrategies []string `json:"communicationStrategies"`
}

// MathAptitude assesses the student's mathematical learning profile and
// their potential for the abacus and vedic specialization tracks.
type MathAptitude struct {
	LearningStyle      string         `json:"mathLearningStyle"`
	Abacus             TrackPotential `json:"abacus"`
	Vedic              TrackPotential `json:"vedic"`
	Strengths          []string       `json:"strengths"`
	Challenges         []string       `json:"challenges"`
	TeachingStrategies []string       `json:"teachingStrategies"`
}

type TrackPotential struct {
	Potential       string   `json:"potential"`
	Recommendations []string `json:"recommendations"`
}

type ExamReadiness struct {
	Strengths             []string `json:"examStrengths"`
	Challenges            []string `json:"examChallenges"`
	PreparationStrategies []string `json:"preparationStrategies"`
}

// BuildTeacher assembles the teacher report content. A nil comparison
// means no parent responses were collected.
func BuildTeacher(p Profile, comparison *analysis.ParentComparison) TeacherContent {
	primaryStyle := p.Result.LearningStyles.Primary
	secondaryStyles := p.Result.LearningStyles.Secondary
	topTraits := p.Result.Traits.TopTraits
	topInterests := p.Result.Interests.TopInterests

	return TeacherContent{
		AcademicInsights: AcademicInsights{
			AcademicApproach:      academicApproach(primaryStyle, topTraits),
			SubjectAffinities:     subjectAffinities(primaryStyle, secondaryStyles, topInterests),
			LearningPace:          learningPace(primaryStyle, topTraits),
			AttentionFocus:        attentionFocus(primaryStyle, topTraits),
			GroupDynamics:         groupDynamics(primaryStyle, topTraits),
			AssessmentPreferences: assessmentPreferences(primaryStyle, topTraits),
		},
		ClassroomStrategies: classroomStrategies(primaryStyle, topTraits),
		ChallengesSolutions: challengesSolutions(primaryStyle, topTraits),
		StrengthsGrowth:     strengthsGrowthAreas(primaryStyle, topTraits, topInterests),
		ParentAlignment:     parentAlignment(comparison),
		MathAptitude:        mathAptitude(primaryStyle, topTraits, topInterests),
		ExamReadiness: ExamReadiness{
			Strengths:             examStrengths(primaryStyle, topTraits),
			Challenges:            examChallenges(primaryStyle, topTraits),
			PreparationStrategies: examPreparationStrategies(primaryStyle, topTraits),
		},
	}
}

var academicApproaches = map[string]string{
	"visual":      "Tends to understand and remember concepts through visual representations. Responds well to diagrams, charts, and written instructions.",
	"auditory":    "Processes information effectively through listening and discussion. Benefits from verbal explanations and group discussions.",
	"kinesthetic": "Learns best through hands-on activities and physical engagement. May struggle with long periods of sitting still.",
	"logical":     "Excels in systematic and logical problem-solving. Appreciates clear structures and sequential learning.",
	"social":      "Thrives in collaborative learning environments. Benefits from group projects and peer teaching opportunities.",
	"independent": "Works well independently and is self-directed. May need less direct supervision but benefits from clear expectations.",
}

func academicApproach(primaryStyle string, topTraits []string) string {
	approach, ok := academicApproaches[primaryStyle]
	if !ok {
		approach = "Shows a balanced approach to learning."
	}

	if containsTrait(topTraits, "analytical") {
		approach += " Shows strong analytical thinking and attention to detail."
	}
	if containsTrait(topTraits, "creative") {
		approach += " Demonstrates creative thinking and novel approaches to problems."
	}
	if containsTrait(topTraits, "persistent") {
		approach += " Exhibits persistence when facing challenging material."
	}
	if containsTrait(topTraits, "organized") {
		approach += " Maintains good organization of materials and assignments."
	}

	return approach
}

var styleAffinities = map[string]SubjectAffinities{
	"visual": {
		Strengths:  []string{"Art", "Geography", "Geometry", "Biology (diagrams)"},
		Challenges: []string{"Abstract concepts without visual aids", "Purely auditory lectures"},
	},
	"auditory": {
		Strengths:  []string{"Languages", "Music", "History", "Literature"},
		Challenges: []string{"Complex visual diagrams", "Silent reading comprehension"},
	},
	"kinesthetic": {
		Strengths:  []string{"Physical Education", "Chemistry (labs)", "Engineering", "Drama"},
		Challenges: []string{"Long lectures", "Extended writing assignments"},
	},
	"logical": {
		Strengths:  []string{"Mathematics", "Physics", "Computer Science", "Chess"},
		Challenges: []string{"Creative writing", "Abstract art interpretation"},
	},
	"social": {
		Strengths:  []string{"Group projects", "Debate", "Team sports", "Social studies"},
		Challenges: []string{"Independent research", "Individual assessments"},
	},
	"independent": {
		Strengths:  []string{"Research projects", "Creative writing", "Self-paced subjects"},
		Challenges: []string{"Group presentations", "Team-based assessments"},
	},
}

var interestSubjects = map[string][]string{
	"technology":       {"Computer Science", "Digital Media", "Robotics"},
	"arts":             {"Visual Arts", "Music", "Drama", "Creative Writing"},
	"entrepreneurship": {"Business Studies", "Economics", "Public Speaking"},
	"science":          {"Biology", "Chemistry", "Physics", "Environmental Science"},
	"language":         {"Literature", "Foreign Languages", "Journalism"},
	"mathematics":      {"Algebra", "Geometry", "Calculus", "Statistics"},
}

func subjectAffinities(primaryStyle string, secondaryStyles, interests []string) SubjectAffinities {
	base := styleAffinities[primaryStyle]
	strengths := append([]string{}, base.Strengths...)
	challenges := append([]string{}, base.Challenges...)

	// Secondary styles contribute strengths only.
	for _, style := range secondaryStyles {
		if secondary, ok := styleAffinities[style]; ok {
			strengths = append(strengths, secondary.Strengths[:2]...)
		}
	}

	for _, interest := range interests {
		if subjects, ok := interestSubjects[interest]; ok {
			strengths = append(strengths, subjects[:2]...)
		}
	}

	return SubjectAffinities{
		Strengths:  dedup(strengths),
		Challenges: dedup(challenges),
	}
}

var paceByStyle = map[string]string{
	"visual":      "Moderate; needs time to process visual information thoroughly",
	"auditory":    "Variable; can process verbal information quickly but may need time for reflection",
	"kinesthetic": "Hands-on pace; learns quickly through direct experience",
	"logical":     "Methodical; prefers to understand concepts deeply before moving on",
	"social":      "Adaptive; pace often influenced by group dynamics",
	"independent": "Self-regulated; may move quickly through familiar material and slower through challenging concepts",
}

var depthByTrait = map[string]string{
	"analytical":    "Prefers deep exploration of topics with attention to details and connections",
	"creative":      "Enjoys exploring novel aspects and unconventional applications of concepts",
	"persistent":    "Will work through difficult material thoroughly; doesn't give up easily",
	"leadership":    "May focus more on broad understanding than details; sees big picture",
	"collaborative": "Benefits from discussing concepts in depth with peers",
	"organized":     "Systematic in approaching new material; builds comprehensive understanding",
}

func learningPace(primaryStyle string, topTraits []string) LearningPace {
	pace, ok := paceByStyle[primaryStyle]
	if !ok {
		pace = "Moderate and balanced learning pace"
	}

	depth := "Shows balanced interest in both breadth and depth of material"
	if len(topTraits) > 0 {
		if d, ok := depthByTrait[topTraits[0]]; ok {
			depth = d
		}
	}

	return LearningPace{Pace: pace, Depth: depth}
}

var attentionByStyle = map[string]string{
	"visual":      "Strong visual focus; may lose attention during long verbal explanations",
	"auditory":    "Good auditory attention; may struggle with focus in noisy environments",
	"kinesthetic": "May fidget during passive learning; excellent focus during hands-on activities",
	"logical":     "Strong focus for logical problems; may disengage from unstructured activities",
	"social":      "Attention enhanced in social learning contexts; may be distracted in isolated work",
	"independent": "Generally good self-directed focus; may tune out during group activities",
}

var focusByTrait = map[string]string{
	"analytical":    "Can maintain extended focus on complex problems",
	"creative":      "May have variable focus; intense concentration on interesting topics",
	"persistent":    "Strong sustained focus, especially when challenged",
	"leadership":    "Good focus when leading or engaged; may disengage when passive",
	"collaborative": "Focus enhanced in collaborative settings",
	"organized":     "Methodical focus; good at managing attention across multiple tasks",
}

func attentionFocus(primaryStyle string, topTraits []string) AttentionFocus {
	characteristics, ok := attentionByStyle[primaryStyle]
	if !ok {
		characteristics = "Shows typical attention patterns for age"
	}

	duration := "Shows age-appropriate focus duration"
	if len(topTraits) > 0 {
		if f, ok := focusByTrait[topTraits[0]]; ok {
			duration = f
		}
	}

	return AttentionFocus{
		Characteristics: characteristics,
		Duration:        duration,
		Strategies: []string{
			"Break complex tasks into smaller segments",
			"Provide clear transitions between activities",
			"Use learning style-aligned engagement techniques",
			"Offer periodic movement breaks",
		},
	}
}

var roleByStyle = map[string]string{
	"visual":      "May excel at creating visual representations for the group",
	"auditory":    "Often effective at verbal presentations and discussions",
	"kinesthetic": "Prefers active roles in group activities",
	"logical":     "Naturally takes on problem-solving and planning roles",
	"social":      "Thrives in collaborative settings; often helps maintain group cohesion",
	"independent": "May prefer defined individual contributions within group projects",
}

var collabByTrait = map[string]string{
	"analytical":    "Contributes through careful analysis and attention to detail",
	"creative":      "Offers innovative ideas and unconventional approaches",
	"persistent":    "Helps keep the group on task and working through challenges",
	"leadership":    "Naturally assumes leadership or coordination roles",
	"collaborative": "Excels at fostering cooperation and inclusive participation",
	"organized":     "Often manages project organization and timeline adherence",
}

func groupDynamics(primaryStyle string, topTraits []string) GroupDynamics {
	role, ok := roleByStyle[primaryStyle]
	if !ok {
		role = "Adapts to various roles in group settings"
	}

	collab := "Shows balanced collaboration style"
	if len(topTraits) > 0 {
		if c, ok := collabByTrait[topTraits[0]]; ok {
			collab = c
		}
	}

	var groupSize string
	switch primaryStyle {
	case "social", "auditory":
		groupSize = "Thrives in medium to large groups (4-6 students)"
	case "independent", "logical":
		groupSize = "Works best in smaller groups (2-3 students)"
	default:
		groupSize = "Adapts well to various group sizes"
	}

	var composition string
	switch {
	case containsTrait(topTraits, "leadership"):
		composition = "Benefits from groups where leadership opportunities exist"
	case containsTrait(topTraits, "collaborative"):
		composition = "Thrives in groups with cooperative dynamics"
	case containsTrait(topTraits, "analytical") || containsTrait(topTraits, "organized"):
		composition = "Works well in groups with clear role definitions"
	default:
		composition = "Adapts to various group compositions"
	}

	return GroupDynamics{
		RolePreference:     role,
		CollaborationStyle: collab,
		OptimalGroupSize:   groupSize,
		OptimalComposition: composition,
	}
}

var assessmentByStyle = map[string][]string{
	"visual":      {"Visual projects", "Diagram creation", "Written exams with visual components"},
	"auditory":    {"Oral presentations", "Debates", "Audio/video projects"},
	"kinesthetic": {"Hands-on demonstrations", "Role-playing", "Model building"},
	"logical":     {"Problem-solving tasks", "Logical reasoning tests", "Structured projects"},
	"social":      {"Group presentations", "Collaborative projects", "Peer teaching"},
	"independent": {"Research papers", "Individual projects", "Self-assessments"},
}

var challengingAssessments = map[string][]string{
	"visual":      {"Pure auditory assessments", "Extended essays without visual aids"},
	"auditory":    {"Silent reading comprehension", "Complex visual analysis"},
	"kinesthetic": {"Extended written exams", "Passive listening assessments"},
	"logical":     {"Unstructured creative tasks", "Subjective assessments"},
	"social":      {"Individual timed tests", "Isolated research projects"},
	"independent": {"Group performance assessments", "Team-based evaluations"},
}

var approachByTrait = map[string]string{
	"analytical":    "Methodical and detail-oriented approach to assessments",
	"creative":      "Brings creative elements to assessments; may excel with open-ended formats",
	"persistent":    "Thorough in preparation; perseveres through challenging assessments",
	"leadership":    "Confident in presentation-based assessments; may rush through details",
	"collaborative": "Performs well in group assessments; may need encouragement for individual work",
	"organized":     "Well-prepared and structured approach to assessments",
}

func assessmentPreferences(primaryStyle string, topTraits []string) AssessmentPreferences {
	preferred, ok := assessmentByStyle[primaryStyle]
	if !ok {
		preferred = []string{"Mixed assessment types"}
	}

	challenging, ok := challengingAssessments[primaryStyle]
	if !ok {
		challenging = []string{"Varies based on content"}
	}

	approach := "Balanced approach to assessments"
	if len(topTraits) > 0 {
		if a, ok := approachByTrait[topTraits[0]]; ok {
			approach = a
		}
	}

	return AssessmentPreferences{
		PreferredTypes:   preferred,
		ChallengingTypes: challenging,
		Approach:         approach,
		Recommendations: []string{
			"Offer assessment options aligned with learning style when possible",
			"Provide clear rubrics and expectations",
			"Allow adequate preparation time",
			"Balance assessment types throughout the term",
		},
	}
}

var engagementByStyle = map[string][]string{
	"visual": {
		"Use visual aids, diagrams, and charts",
		"Provide written instructions alongside verbal ones",
		"Incorporate color-coding for organization",
		"Use graphic organizers for note-taking",
	},
	"auditory": {
		"Incorporate discussions and verbal explanations",
		"Use audio recordings or read-alouds",
		"Encourage verbal summarization of concepts",
		"Implement think-pair-share activities",
	},
	"kinesthetic": {
		"Incorporate hands-on activities and manipulatives",
		"Allow movement during learning when possible",
		"Use role-play and physical demonstrations",
		"Implement lab-style activities across subjects",
	},
	"logical": {
		"Provide clear, sequential instructions",
		"Use problem-solving activities and puzzles",
		"Explain the reasoning behind concepts",
		"Incorporate pattern recognition activities",
	},
	"social": {
		"Implement collaborative learning activities",
		"Use group discussions and projects",
		"Incorporate peer teaching opportunities",
		"Create interactive classroom experiences",
	},
	"independent": {
		"Provide self-directed learning opportunities",
		"Allow for independent research projects",
		"Offer choice in assignments when possible",
		"Provide clear expectations for independent work",
	},
}

var motivationByTrait = map[string][]string{
	"analytical": {
		"Provide complex problems to analyze",
		"Offer opportunities to dive deep into topics",
		"Recognize attention to detail and thoroughness",
	},
	"creative": {
		"Allow creative expression in assignments",
		"Provide open-ended project options",
		"Recognize and value unique approaches",
	},
	"persistent": {
		"Acknowledge effort and perseverance",
		"Provide appropriately challenging material",
		"Celebrate progress and improvement",
	},
	"leadership": {
		"Offer opportunities to lead small groups",
		"Provide classroom responsibilities",
		"Recognize positive influence on peers",
	},
	"collaborative": {
		"Create meaningful collaborative experiences",
		"Recognize contributions to group success",
		"Provide opportunities to help peers",
	},
	"organized": {
		"Recognize effective organization and planning",
		"Provide tools for organization (templates, planners)",
		"Acknowledge thorough and structured work",
	},
}

func classroomStrategies(primaryStyle string, topTraits []string) ClassroomStrategies {
	engagement, ok := engagementByStyle[primaryStyle]
	if !ok {
		engagement = []string{
			"Use varied instructional approaches",
			"Combine visual, auditory, and kinesthetic elements",
			"Provide both structured and open-ended activities",
			"Balance individual and group work",
		}
	}

	motivation := make([]string, 0, 6)
	for _, trait := range topN(topTraits, 2) {
		motivation = append(motivation, motivationByTrait[trait]...)
	}
	if len(motivation) == 0 {
		motivation = []string{
			"Provide specific, meaningful feedback",
			"Connect learning to real-world applications",
			"Celebrate achievements and progress",
		}
	}

	return ClassroomStrategies{
		Engagement: engagement,
		Motivation: motivation,
		Differentiation: []string{
			"Adjust complexity of assignments based on readiness",
			"Provide extension activities for deeper exploration",
			"Offer multiple ways to demonstrate understanding",
			"Vary grouping strategies based on learning objectives",
		},
	}
}

var challengesByStyle = map[string][]Challenge{
	"visual": {
		{
			Challenge: "May struggle with purely auditory instruction",
			Solutions: []string{
				"Provide visual supplements to verbal instruction",
				"Allow time to create visual notes or diagrams",
				"Use visual cues for important information",
			},
		},
		{
			Challenge: "May miss details in verbal directions",
			Solutions: []string{
				"Provide written instructions for complex tasks",
				"Check for understanding through visual confirmation",
				"Use visual checklists for multi-step processes",
			},
		},
	},
	"auditory": {
		{
			Challenge: "May be distracted in noisy environments",
			Solutions: []string{
				"Provide quiet work spaces when possible",
				"Use noise-cancelling headphones for independent work",
				"Position away from high-traffic classroom areas",
			},
		},
		{
			Challenge: "May struggle with complex visual information",
			Solutions: []string{
				"Provide verbal explanations of visual materials",
				"Allow verbal processing of visual information",
				"Break down visual information into smaller components",
			},
		},
	},
	"kinesthetic": {
		{
			Challenge: "May appear fidgety or restless during passive learning",
			Solutions: []string{
				"Incorporate movement breaks",
				"Provide fidget tools when appropriate",
				"Allow standing or alternative seating options",
			},
		},
		{
			Challenge: "May rush through written work",
			Solutions: []string{
				"Break writing tasks into smaller segments",
				"Incorporate physical elements into writing tasks",
				"Provide clear structures for written assignments",
			},
		},
	},
	"logical": {
		{
			Challenge: "May question instructions or methods frequently",
			Solutions: []string{
				"Explain reasoning behind instructional decisions",
				"Provide logical frameworks for activities",
				"Allow time for questions and clarification",
			},
		},
		{
			Challenge: "May struggle with creative or subjective tasks",
			Solutions: []string{
				"Provide clear criteria even for creative assignments",
				"Break down creative processes into logical steps",
				"Connect creative tasks to logical frameworks",
			},
		},
	},
	"social": {
		{
			Challenge: "May be chatty or distracted during independent work",
			Solutions: []string{
				"Provide clear expectations for quiet work time",
				"Use visual timers for independent work periods",
				"Balance independent work with collaborative opportunities",
			},
		},
		{
			Challenge: "May rely too heavily on peers in group work",
			Solutions: []string{
				"Assign specific roles in group activities",
				"Require individual accountability within group projects",
				"Balance group work with individual assessments",
			},
		},
	},
	"independent": {
		{
			Challenge: "May resist group work or collaboration",
			Solutions: []string{
				"Provide clear individual roles within group projects",
				"Start with pair work before larger groups",
				"Explain the value of collaborative skills",
			},
		},
		{
			Challenge: "May work too independently without seeking help",
			Solutions: []string{
				"Check in regularly during independent work",
				"Teach explicit help-seeking strategies",
				"Create safe opportunities to ask questions",
			},
		},
	},
}

var challengesByTrait = map[string]Challenge{
	"analytical": {
		Challenge: "May get caught in details and miss big picture",
		Solutions: []string{
			"Help connect details to overarching concepts",
			"Provide opportunities to synthesize information",
			"Use graphic organizers to show relationships between concepts",
		},
	},
	"creative": {
		Challenge: "May pursue tangential ideas during lessons",
		Solutions: []string{
			"Provide creative outlets within structured activities",
			"Allow time for creative exploration after core content",
			"Help connect creative ideas back to learning objectives",
		},
	},
	"persistent": {
		Challenge: "May become frustrated when not immediately successful",
		Solutions: []string{
			"Normalize struggle as part of learning",
			"Break challenging tasks into manageable steps",
			"Recognize effort and perseverance, not just results",
		},
	},
	"leadership": {
		Challenge: "May dominate group activities",
		Solutions: []string{
			"Assign specific roles in group work",
			"Teach collaborative leadership skills",
			"Provide leadership opportunities in appropriate contexts",
		},
	},
	"collaborative": {
		Challenge: "May prioritize social harmony over academic rigor",
		Solutions: []string{
			"Set clear academic expectations for group work",
			"Teach constructive academic discourse",
			"Model how to respectfully challenge ideas",
		},
	},
	"organized": {
		Challenge: "May become anxious when routines are disrupted",
		Solutions: []string{
			"Provide advance notice of schedule changes",
			"Teach flexibility strategies",
			"Help develop adaptable organizational systems",
		},
	},
}

func challengesSolutions(primaryStyle string, topTraits []string) []Challenge {
	base, ok := challengesByStyle[primaryStyle]
	if !ok {
		base = []Challenge{
			{
				Challenge: "May need varied instructional approaches",
				Solutions: []string{
					"Use multi-modal instruction",
					"Provide options for demonstrating understanding",
					"Check for understanding in different ways",
				},
			},
		}
	}

	challenges := append([]Challenge{}, base...)
	if len(topTraits) > 0 {
		if traitChallenge, ok := challengesByTrait[topTraits[0]]; ok {
			challenges = append(challenges, traitChallenge)
		}
	}

	return challenges
}

var strengthsByStyle = map[string][]string{
	"visual": {
		"Processing and remembering visual information",
		"Creating visual representations of concepts",
		"Understanding spatial relationships",
		"Noticing visual patterns and details",
	},
	"auditory": {
		"Processing verbal instructions",
		"Participating in discussions",
		"Remembering spoken information",
		"Verbal explanation of concepts",
	},
	"kinesthetic": {
		"Hands-on learning activities",
		"Physical demonstrations of concepts",
		"Learning through movement and touch",
		"Applied and practical learning",
	},
	"logical": {
		"Systematic problem-solving",
		"Recognizing patterns and relationships",
		"Sequential and organized thinking",
		"Abstract reasoning and analysis",
	},
	"social": {
		"Collaborative learning",
		"Group discussions and projects",
		"Peer teaching and learning",
		"Communication and interpersonal skills",
	},
	"independent": {
		"Self-directed learning",
		"Independent research and projects",
		"Setting and pursuing learning goals",
		"Focused individual work",
	},
}

var growthByStyle = map[string][]string{
	"visual": {
		"Processing information without visual aids",
		"Taking notes from verbal lectures",
		"Expressing ideas verbally",
		"Following multi-step verbal directions",
	},
	"auditory": {
		"Processing complex visual information",
		"Creating visual representations",
		"Working for extended periods in silence",
		"Organizing information spatially",
	},
	"kinesthetic": {
		"Sitting still for extended periods",
		"Abstract conceptual learning",
		"Traditional test-taking",
		"Detailed written work",
	},
	"logical": {
		"Creative and open-ended tasks",
		"Subjective or ambiguous content",
		"Emotional or social aspects of learning",
		"Flexibility when approaches need to change",
	},
	"social": {
		"Extended independent work",
		"Self-directed learning",
		"Focusing in social environments",
		"Individual assessment",
	},
	"independent": {
		"Collaborative projects",
		"Group discussions and activities",
		"Seeking help when needed",
		"Sharing ideas in group settings",
	},
}

var traitStrengthLines = map[string]string{
	"analytical":    "Detailed analysis and critical thinking",
	"creative":      "Creative problem-solving and innovative thinking",
	"persistent":    "Perseverance through challenging material",
	"leadership":    "Taking initiative and guiding peers",
	"collaborative": "Working effectively with others",
	"organized":     "Systematic approach to learning and tasks",
}

var interestRecommendations = map[string][]string{
	"technology": {
		"Incorporate technology tools for organization and learning",
		"Connect academic concepts to technological applications",
		"Explore coding or digital creation to reinforce concepts",
	},
	"arts": {
		"Use artistic expression to demonstrate understanding",
		"Connect academic concepts to creative applications",
		"Incorporate visual or performing arts into projects",
	},
	"entrepreneurship": {
		"Connect learning to real-world applications",
		"Develop project management and planning skills",
		"Practice presenting and communicating ideas",
	},
	"science": {
		"Emphasize scientific method across subject areas",
		"Connect concepts to scientific principles",
		"Incorporate inquiry-based approaches to learning",
	},
	"language": {
		"Strengthen vocabulary development across subjects",
		"Practice clear written and verbal communication",
		"Use storytelling to reinforce concepts",
	},
	"mathematics": {
		"Strengthen mathematical reasoning across subjects",
		"Practice logical thinking and problem-solving",
		"Connect abstract concepts to concrete applications",
	},
}

func strengthsGrowthAreas(primaryStyle string, topTraits, topInterests []string) StrengthsGrowth {
	strengths, ok := strengthsByStyle[primaryStyle]
	if !ok {
		strengths = []string{
			"Adaptable learning approach",
			"Processing information in multiple ways",
			"Balancing independent and collaborative work",
		}
	}
	strengths = append([]string{}, strengths...)
	for _, trait := range topN(topTraits, 2) {
		if line, ok := traitStrengthLines[trait]; ok {
			strengths = append(strengths, line)
		}
	}

	growthAreas, ok := growthByStyle[primaryStyle]
	if !ok {
		growthAreas = []string{
			"Adapting to various instructional approaches",
			"Balancing different learning modalities",
			"Developing versatility in learning strategies",
		}
	}

	recommendations := make([]string, 0, 4)
	for _, interest := range topN(topInterests, 2) {
		if recs, ok := interestRecommendations[interest]; ok {
			recommendations = append(recommendations, recs[:2]...)
		}
	}
	if len(recommendations) == 0 {
		recommendations = []string{
			"Provide balanced learning experiences across modalities",
			"Connect learning to personal interests when possible",
			"Develop metacognitive awareness of learning process",
		}
	}

	return StrengthsGrowth{
		Strengths:       strengths,
		GrowthAreas:     growthAreas,
		Recommendations: recommendations,
	}
}

func parentAlignment(comparison *analysis.ParentComparison) ParentAlignment {
	if comparison == nil {
		return ParentAlignment{
			AlignmentAreas:  []string{"No parent comparison data available"},
			DifferenceAreas: []string{"No parent comparison data available"},
			CommunicationStrategies: []string{
				"Discuss learning preferences with both student and parents",
				"Share specific observations about learning style",
				"Provide concrete examples of effective strategies",
			},
		}
	}

	strategies := []string{
		"Share specific observations about learning patterns",
		"Provide concrete examples of classroom successes",
		"Focus on strengths while addressing growth areas",
	}
	if len(comparison.Differences) > 0 {
		strategies = append(strategies,
			"Discuss different perspectives without judgment",
			"Use student work samples to illustrate learning style",
			"Suggest home activities aligned with learning preferences",
		)
	}

	alignments := comparison.Alignments
	if len(alignments) == 0 {
		alignments = []string{"Limited alignment data available"}
	}
	differences := comparison.Differences
	if len(differences) == 0 {
		differences = []string{"Limited difference data available"}
	}

	return ParentAlignment{
		AlignmentAreas:          alignments,
		DifferenceAreas:         differences,
		CommunicationStrategies: strategies,
	}
}

func containsTrait(traits []string, target string) bool {
	for _, trait := range traits {
		if trait == target {
			return true
		}
	}
	return false
}

func topN(values []string, n int) []string {
	if len(values) > n {
		return values[:n]
	}
	return values
}

func dedup(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
