package report

var mathStylesByPrimary = map[string]string{
	"visual":      "Visual-spatial mathematical learner who benefits from diagrams, graphs, and visual representations of mathematical concepts. Likely to understand geometric concepts readily and may visualize number relationships.",
	"auditory":    "Verbal-mathematical learner who benefits from talking through problems and hearing explanations. May prefer word problems and verbal reasoning over abstract symbolic manipulation.",
	"kinesthetic": "Tactile-mathematical learner who benefits from manipulatives and physical representations. Learns mathematical concepts best through hands-on activities and real-world applications.",
	"logical":     "Abstract-logical mathematical learner who naturally connects with mathematical patterns and relationships. Likely to enjoy the systematic nature of mathematics and abstract reasoning.",
	"social":      "Collaborative mathematical learner who benefits from discussing problems and working with others. May understand concepts better when explaining them to peers or working through problems in groups.",
	"independent": "Reflective mathematical learner who benefits from time to process concepts independently. Likely to prefer working through problems at their own pace with time for deep thinking.",
}

var abacusBaseByStyle = map[string]string{
	"visual":      "High",
	"kinesthetic": "High",
	"logical":     "Medium-High",
	"independent": "Medium",
	"auditory":    "Medium-Low",
	"social":      "Medium-Low",
}

var vedicBaseByStyle = map[string]string{
	"logical":     "High",
	"visual":      "Medium-High",
	"independent": "Medium-High",
	"auditory":    "Medium",
	"kinesthetic": "Medium-Low",
	"social":      "Medium-Low",
}

// Per-trait adjustment on the potential ladder: +1 raises, -1 lowers.
var potentialAdjustments = map[string]struct{ abacus, vedic int }{
	"analytical":    {1, 1},
	"persistent":    {1, 1},
	"organized":     {1, 1},
	"creative":      {0, 1},
	"leadership":    {0, 0},
	"collaborative": {-1, -1},
}

var potentialLadder = []string{"Medium-Low", "Medium", "Medium-High", "High"}

func adjustPotential(potential string, delta int) string {
	for i, level := range potentialLadder {
		if level == potential {
			next := i + delta
			if next < 0 {
				next = 0
			}
			if next >= len(potentialLadder) {
				next = len(potentialLadder) - 1
			}
			return potentialLadder[next]
		}
	}
	return potential
}

func mathAptitude(primaryStyle string, topTraits, topInterests []string) MathAptitude {
	return MathAptitude{
		LearningStyle:      mathLearningStyle(primaryStyle, topTraits),
		Abacus:             abacusPotential(primaryStyle, topTraits, topInterests),
		Vedic:              vedicPotential(primaryStyle, topTraits, topInterests),
		Strengths:          mathStrengths(primaryStyle, topTraits),
		Challenges:         mathChallenges(primaryStyle, topTraits),
		TeachingStrategies: mathTeachingStrategies(primaryStyle, topTraits),
	}
}

func mathLearningStyle(primaryStyle string, topTraits []string) string {
	style, ok := mathStylesByPrimary[primaryStyle]
	if !ok {
		style = "Balanced mathematical learner who can adapt to various approaches to mathematical concepts."
	}

	if containsTrait(topTraits, "analytical") {
		style += " Shows strong analytical thinking and attention to mathematical detail and precision."
	}
	if containsTrait(topTraits, "creative") {
		style += " Demonstrates creative approaches to problem-solving and may find multiple solution paths."
	}
	if containsTrait(topTraits, "persistent") {
		style += " Exhibits persistence when facing challenging mathematical problems."
	}

	return style
}

func abacusPotential(primaryStyle string, topTraits, topInterests []string) TrackPotential {
	potential, ok := abacusBaseByStyle[primaryStyle]
	if !ok {
		potential = "Medium"
	}

	for _, trait := range topN(topTraits, 2) {
		if adj, ok := potentialAdjustments[trait]; ok && adj.abacus != 0 {
			potential = adjustPotential(potential, adj.abacus)
		}
	}
	if containsTrait(topInterests, "mathematics") {
		potential = adjustPotential(potential, 1)
	}

	var recommendations []string
	if potential == "High" || potential == "Medium-High" {
		recommendations = []string{
			"Consider introducing Abacus training to develop visual-spatial calculation skills",
			"Start with basic Abacus concepts and progress based on interest and aptitude",
			"Use Abacus training to strengthen mental math abilities",
		}
	} else {
		recommendations = []string{
			"Introduce Abacus concepts gradually if interest develops",
			"Use physical manipulatives to build number sense before formal Abacus training",
			"Consider alternative approaches to mental math development",
		}
	}

	return TrackPotential{Potential: potential, Recommendations: recommendations}
}

func vedicPotential(primaryStyle string, topTraits, topInterests []string) TrackPotential {
	potential, ok := vedicBaseByStyle[primaryStyle]
	if !ok {
		potential = "Medium"
	}

	for _, trait := range topN(topTraits, 2) {
		if adj, ok := potentialAdjustments[trait]; ok && adj.vedic != 0 {
			potential = adjustPotential(potential, adj.vedic)
		}
	}
	if containsTrait(topInterests, "mathematics") {
		potential = adjustPotential(potential, 1)
	}

	var recommendations []string
	if potential == "High" || potential == "Medium-High" {
		recommendations = []string{
			"Consider introducing Vedic Math techniques to enhance calculation speed",
			"Start with basic Vedic Math sutras and applications",
			"Use Vedic Math to develop pattern recognition and mathematical intuition",
		}
	} else {
		recommendations = []string{
			"Focus on building strong foundational math skills before introducing Vedic techniques",
			"Introduce Vedic Math concepts gradually as supplements to traditional methods",
			"Consider alternative approaches to developing mathematical fluency",
		}
	}

	return TrackPotential{Potential: potential, Recommendations: recommendations}
}

var mathStrengthsByStyle = map[string][]string{
	"visual": {
		"Geometric reasoning and spatial relationships",
		"Understanding visual patterns in mathematics",
		"Interpreting graphs and visual data",
		"Visualizing mathematical concepts",
	},
	"auditory": {
		"Verbal reasoning in mathematics",
		"Following verbal explanations of mathematical concepts",
		"Discussing mathematical ideas",
		"Word problems and mathematical language",
	},
	"kinesthetic": {
		"Hands-on mathematical activities",
		"Applied and practical mathematics",
		"Using manipulatives effectively",
		"Real-world mathematical applications",
	},
	"logical": {
		"Abstract mathematical reasoning",
		"Recognizing patterns and relationships",
		"Systematic problem-solving",
		"Logical proofs and deductions",
	},
	"social": {
		"Collaborative problem-solving",
		"Explaining mathematical concepts to others",
		"Learning from mathematical discussions",
		"Group mathematical projects",
	},
	"independent": {
		"Self-directed mathematical exploration",
		"Focused individual problem-solving",
		"Developing personal mathematical strategies",
		"Independent mathematical research",
	},
}

var mathTraitStrengths = map[string]string{
	"analytical":    "Detailed mathematical analysis and precision",
	"creative":      "Creative approaches to mathematical problem-solving",
	"persistent":    "Perseverance through challenging mathematical problems",
	"leadership":    "Taking initiative in mathematical discussions and group work",
	"collaborative": "Working effectively with others on mathematical tasks",
	"organized":     "Systematic approach to mathematical procedures and problem-solving",
}

func mathStrengths(primaryStyle string, topTraits []string) []string {
	strengths, ok := mathStrengthsByStyle[primaryStyle]
	if !ok {
		strengths = []string{
			"Adaptable approach to mathematical concepts",
			"Balancing different mathematical thinking styles",
			"Applying various strategies to problem-solving",
		}
	}
	strengths = append([]string{}, strengths...)
	for _, trait := range topN(topTraits, 2) {
		if line, ok := mathTraitStrengths[trait]; ok {
			strengths = append(strengths, line)
		}
	}
	return strengths
}

var mathChallengesByStyle = map[string][]string{
	"visual": {
		"Abstract mathematical concepts without visual representation",
		"Showing work in a step-by-step manner",
		"Verbal mathematical explanations",
		"Mental math without visual aids",
	},
	"auditory": {
		"Complex visual or spatial mathematics",
		"Silent, independent mathematical work",
		"Geometric reasoning",
		"Visual pattern recognition",
	},
	"kinesthetic": {
		"Abstract mathematical theory",
		"Extended periods of seated mathematical work",
		"Multi-step problems without concrete application",
		"Showing detailed written work",
	},
	"logical": {
		"Creative or open-ended mathematical problems",
		"Mathematical concepts without clear patterns",
		"Showing work when solution paths seem obvious",
		"Collaborative mathematical tasks",
	},
	"social": {
		"Independent mathematical practice",
		"Silent, focused mathematical work",
		"Abstract mathematical reasoning",
		"Detailed individual problem-solving",
	},
	"independent": {
		"Collaborative mathematical projects",
		"Explaining mathematical thinking to others",
		"Group problem-solving activities",
		"Seeking help with mathematical challenges",
	},
}

var mathTraitChallenges = map[string]string{
	"analytical":    "May get caught in mathematical details and miss broader concepts",
	"creative":      "May use unconventional approaches that are difficult to assess",
	"persistent":    "May become frustrated when mathematical solutions aren't readily apparent",
	"leadership":    "May dominate group mathematical activities",
	"collaborative": "May rely too heavily on others during mathematical problem-solving",
	"organized":     "May struggle with open-ended or creative mathematical tasks",
}

func mathChallenges(primaryStyle string, topTraits []string) []string {
	challenges, ok := mathChallengesByStyle[primaryStyle]
	if !ok {
		challenges = []string{
			"Adapting to various mathematical teaching approaches",
			"Balancing conceptual and procedural understanding",
			"Connecting abstract and applied mathematics",
		}
	}
	challenges = append([]string{}, challenges...)
	for _, trait := range topN(topTraits, 2) {
		if line, ok := mathTraitChallenges[trait]; ok {
			challenges = append(challenges, line)
		}
	}
	return challenges
}

var mathTeachingByStyle = map[string][]string{
	"visual": {
		"Use visual models, diagrams, and graphs",
		"Incorporate color-coding for mathematical processes",
		"Provide visual step-by-step procedures",
		"Use graphic organizers for mathematical concepts",
	},
	"auditory": {
		"Explain mathematical concepts verbally",
		"Encourage mathematical discussions and think-alouds",
		"Use rhythmic patterns for mathematical memorization",
		"Incorporate mathematical vocabulary development",
	},
	"kinesthetic": {
		"Use manipulatives and hands-on activities",
		"Incorporate movement into mathematical learning",
		"Connect mathematics to real-world applications",
		"Use physical models for abstract concepts",
	},
	"logical": {
		"Emphasize patterns and relationships in mathematics",
		"Provide logical sequences and clear procedures",
		"Encourage analytical thinking and reasoning",
		"Connect new concepts to previously learned material",
	},
	"social": {
		"Incorporate collaborative problem-solving",
		"Use mathematical discussions and peer teaching",
		"Implement group projects with mathematical components",
		"Create opportunities for mathematical communication",
	},
	"independent": {
		"Provide self-directed mathematical exploration opportunities",
		"Allow time for independent problem-solving",
		"Offer choice in mathematical practice activities",
		"Provide clear expectations for independent work",
	},
}

var mathTeachingByTrait = map[string][]string{
	"analytical": {
		"Provide opportunities for detailed mathematical analysis",
		"Encourage precision and attention to mathematical detail",
	},
	"creative": {
		"Allow for multiple solution paths",
		"Incorporate open-ended mathematical problems",
	},
	"persistent": {
		"Provide appropriately challenging mathematical tasks",
		"Recognize effort and perseverance in mathematics",
	},
	"leadership": {
		"Provide opportunities to lead mathematical discussions",
		"Encourage positive mathematical leadership",
	},
	"collaborative": {
		"Create meaningful collaborative mathematical experiences",
		"Teach effective mathematical communication",
	},
	"organized": {
		"Provide organizational tools for mathematical work",
		"Recognize systematic approaches to problem-solving",
	},
}

func mathTeachingStrategies(primaryStyle string, topTraits []string) []string {
	strategies, ok := mathTeachingByStyle[primaryStyle]
	if !ok {
		strategies = []string{
			"Use multi-modal approaches to mathematical instruction",
			"Balance conceptual understanding with procedural fluency",
			"Provide both independent and collaborative mathematical experiences",
			"Connect abstract concepts to concrete applications",
		}
	}
	strategies = append([]string{}, strategies...)
	for _, trait := range topN(topTraits, 2) {
		strategies = append(strategies, mathTeachingByTrait[trait]...)
	}

	strategies = append(strategies,
		"Consider introducing Abacus for visual-spatial calculation development",
		"Explore Vedic Mathematics for mental math and calculation speed",
		"Balance traditional and alternative mathematical approaches",
	)

	return strategies
}

var examStrengthsByStyle = map[string][]string{
	"visual": {
		"Processing visual information in exams",
		"Interpreting graphs, charts, and diagrams",
		"Remembering information presented visually",
		"Spatial reasoning questions",
	},
	"auditory": {
		"Recalling information from discussions",
		"Processing verbal instructions in exams",
		"Language-based questions",
		"Verbal reasoning sections",
	},
	"kinesthetic": {
		"Practical or lab-based assessments",
		"Exams with manipulative components",
		"Applied problem-solving questions",
		"Performance-based assessments",
	},
	"logical": {
		"Logical reasoning questions",
		"Mathematical problem-solving",
		"Sequential thinking tasks",
		"Pattern recognition questions",
	},
	"social": {
		"Group assessment components",
		"Discussion-based evaluations",
		"Collaborative problem-solving tasks",
		"Interpersonal scenario questions",
	},
	"independent": {
		"Self-paced exam sections",
		"Independent problem-solving questions",
		"Extended response questions",
		"Research-based assessments",
	},
}

var examTraitStrengths = map[string]string{
	"analytical":    "Detailed analysis of complex questions",
	"creative":      "Novel approaches to problem-solving questions",
	"persistent":    "Maintaining focus throughout lengthy exams",
	"leadership":    "Confidence in assessment situations",
	"collaborative": "Effective performance in group assessment components",
	"organized":     "Systematic approach to exam questions and time management",
}

func examStrengths(primaryStyle string, topTraits []string) []string {
	strengths, ok := examStrengthsByStyle[primaryStyle]
	if !ok {
		strengths = []string{
			"Adapting to various question formats",
			"Balancing different cognitive approaches",
			"Processing information in multiple formats",
		}
	}
	strengths = append([]string{}, strengths...)
	for _, trait := range topN(topTraits, 2) {
		if line, ok := examTraitStrengths[trait]; ok {
			strengths = append(strengths, line)
		}
	}
	return strengths
}

var examChallengesByStyle = map[string][]string{
	"visual": {
		"Extended reading without visual supports",
		"Purely auditory instructions or content",
		"Remembering verbal information without visual cues",
		"Writing extensive text responses",
	},
	"auditory": {
		"Complex visual information without verbal explanation",
		"Silent reading comprehension under time pressure",
		"Interpreting detailed graphs or diagrams",
		"Spatial reasoning questions",
	},
	"kinesthetic": {
		"Sitting still for extended exam periods",
		"Abstract theoretical questions",
		"Limited physical interaction with materials",
		"Extended writing tasks",
	},
	"logical": {
		"Ambiguous or open-ended questions",
		"Subjective assessment criteria",
		"Creative writing or expression tasks",
		"Questions without clear logical structure",
	},
	"social": {
		"Extended individual work without interaction",
		"Competitive assessment environments",
		"Limited verbal processing opportunities",
		"Isolated problem-solving under pressure",
	},
	"independent": {
		"Group assessment components",
		"Time pressure that limits reflection",
		"Collaborative problem-solving requirements",
		"Verbal presentation components",
	},
}

var examTraitChallenges = map[string]string{
	"analytical":    "May spend too much time on detailed analysis of questions",
	"creative":      "May use unconventional approaches that don't match scoring criteria",
	"persistent":    "May perseverate on difficult questions instead of moving on",
	"leadership":    "May rush through individual assessment components",
	"collaborative": "May struggle with competitive assessment environments",
	"organized":     "May become anxious if exam structure differs from expectations",
}

func examChallenges(primaryStyle string, topTraits []string) []string {
	challenges, ok := examChallengesByStyle[primaryStyle]
	if !ok {
		challenges = []string{
			"Adapting to unfamiliar question formats",
			"Managing time across different question types",
			"Balancing speed and accuracy",
		}
	}
	challenges = append([]string{}, challenges...)
	for _, trait := range topN(topTraits, 2) {
		if line, ok := examTraitChallenges[trait]; ok {
			challenges = append(challenges, line)
		}
	}
	return challenges
}

var examPrepByStyle = map[string][]string{
	"visual": {
		"Use visual study aids like mind maps and diagrams",
		"Convert notes into visual formats",
		"Practice with visual practice questions",
		"Use color-coding for organizing information",
	},
	"auditory": {
		"Record and listen to study materials",
		"Discuss concepts verbally",
		"Use mnemonic devices and verbal repetition",
		"Participate in study groups with discussion",
	},
	"kinesthetic": {
		"Use movement while studying",
		"Create physical models or manipulatives",
		"Take breaks for physical activity",
		"Practice with hands-on simulations when possible",
	},
	"logical": {
		"Organize study materials in logical sequences",
		"Create systematic study plans",
		"Practice with problem-solving questions",
		"Look for patterns and connections between concepts",
	},
	"social": {
		"Form study groups",
		"Teach concepts to others",
		"Discuss practice questions with peers",
		"Use collaborative study techniques",
	},
	"independent": {
		"Create personalized study schedules",
		"Find quiet, focused study environments",
		"Set individual study goals",
		"Self-test regularly",
	},
}

var examPrepByTrait = map[string][]string{
	"analytical": {
		"Practice analyzing complex questions",
		"Develop systematic approaches to different question types",
	},
	"creative": {
		"Balance creative thinking with standard approaches",
		"Practice identifying what scoring criteria require",
	},
	"persistent": {
		"Set time limits for practice questions",
		"Develop strategies for knowing when to move on",
	},
	"leadership": {
		"Practice careful reading of all instructions",
		"Develop patience with detailed individual work",
	},
	"collaborative": {
		"Balance collaborative study with independent practice",
		"Simulate test conditions during some practice sessions",
	},
	"organized": {
		"Create detailed study plans",
		"Practice with unfamiliar formats to build flexibility",
	},
}

func examPreparationStrategies(primaryStyle string, topTraits []string) []string {
	strategies, ok := examPrepByStyle[primaryStyle]
	if !ok {
		strategies = []string{
			"Use multi-modal study techniques",
			"Balance individual and group study",
			"Practice with various question formats",
			"Develop personalized study routines",
		}
	}
	strategies = append([]string{}, strategies...)
	for _, trait := range topN(topTraits, 2) {
		strategies = append(strategies, examPrepByTrait[trait]...)
	}

	strategies = append(strategies,
		"Practice with timed conditions",
		"Develop effective test-taking strategies",
		"Learn relaxation techniques for test anxiety",
		"Ensure physical readiness (sleep, nutrition, etc.)",
	)

	return strategies
}
