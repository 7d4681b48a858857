// Package questionnaire holds the diagnostic question banks and the
// age-band selection logic used to assemble a student's questionnaire.
package questionnaire

// QuestionType identifies how a question is presented and scored.
type QuestionType string

const (
	TypeMultipleChoice  QuestionType = "multiple_choice"
	TypeSituational     QuestionType = "situational"
	TypeLogicPuzzle     QuestionType = "logic_puzzle"
	TypeOpenEnded       QuestionType = "open_ended"
	TypeVisualReasoning QuestionType = "visual_reasoning"
)

// Age band boundaries for questionnaire assembly.
const (
	ElementaryMinAge = 5
	ElementaryMaxAge = 10
	MiddleMinAge     = 11
	MiddleMaxAge     = 13
	HighMinAge       = 14
	HighMaxAge       = 18
)

// Question is a single diagnostic questionnaire item. Exactly one of the
// mapping slices is populated; it maps the selected option index to a
// learning style, trait, or interest key. Logic puzzles additionally carry
// the correct answer text.
type Question struct {
	ID                   string       `json:"id"`
	Category             string       `json:"category"`
	Type                 QuestionType `json:"type"`
	Text                 string       `json:"question"`
	Options              []string     `json:"options,omitempty"`
	CorrectAnswer        string       `json:"correctAnswer,omitempty"`
	LearningStyleMapping []string     `json:"-"`
	TraitMapping         []string     `json:"-"`
	InterestMapping      []string     `json:"-"`
}

var commonQuestions = []Question{
	{
		ID:       "ls_1",
		Category: "learning_style",
		Type:     TypeMultipleChoice,
		Text:     "When learning something new, I prefer to:",
		Options: []string{
			"Watch videos or demonstrations",
			"Listen to someone explain it",
			"Try it out myself",
			"Read about it first",
		},
		LearningStyleMapping: []string{"visual", "auditory", "kinesthetic", "logical"},
	},
	{
		ID:       "ls_2",
		Category: "learning_style",
		Type:     TypeMultipleChoice,
		Text:     "I remember things best when I:",
		Options: []string{
			"See pictures or diagrams",
			"Hear the information",
			"Do hands-on activities",
			"Organize information in my head",
		},
		LearningStyleMapping: []string{"visual", "auditory", "kinesthetic", "logical"},
	},
	{
		ID:       "ls_3",
		Category: "learning_style",
		Type:     TypeMultipleChoice,
		Text:     "When working on a project, I prefer to:",
		Options: []string{
			"Work with a group of friends",
			"Work by myself",
			"Have a teacher or parent help me",
			"Switch between working alone and with others",
		},
		LearningStyleMapping: []string{"social", "independent", "guided", "flexible"},
	},
	{
		ID:       "ps_1",
		Category: "problem_solving",
		Type:     TypeSituational,
		Text:     "If you get stuck on a difficult problem, what do you usually do first?",
		Options: []string{
			"Look for similar examples to follow",
			"Ask someone for help right away",
			"Try different approaches until something works",
			"Take a break and come back to it later",
		},
		TraitMapping: []string{"example-based", "help-seeking", "persistent", "reflective"},
	},
	{
		ID:       "bh_1",
		Category: "behavior",
		Type:     TypeSituational,
		Text:     "When left alone with a task, I usually:",
		Options: []string{
			"Follow the instructions exactly",
			"Find my own way to complete it",
			"Get distracted and do something else",
			"Feel unsure about what to do next",
		},
		TraitMapping: []string{"structured", "independent", "distractible", "guidance-seeking"},
	},
	{
		ID:       "cr_1",
		Category: "creativity",
		Type:     TypeSituational,
		Text:     "When asked to create something new, I prefer to:",
		Options: []string{
			"Follow a template or example",
			"Combine ideas from different sources",
			"Come up with something completely original",
			"Improve on existing ideas",
		},
		TraitMapping: []string{"structured", "combinatorial", "innovative", "iterative"},
	},
	{
		ID:       "tm_1",
		Category: "time_management",
		Type:     TypeSituational,
		Text:     "When working on a project with a deadline, I usually:",
		Options: []string{
			"Start right away and finish early",
			"Make a plan and follow it step by step",
			"Wait until closer to the deadline to start",
			"Work on it a little bit each day",
		},
		TraitMapping: []string{"proactive", "methodical", "pressure-driven", "consistent"},
	},
	{
		ID:       "cm_1",
		Category: "communication",
		Type:     TypeMultipleChoice,
		Text:     "When explaining my ideas to others, I prefer to:",
		Options: []string{
			"Draw pictures or diagrams",
			"Write them down in detail",
			"Act them out or demonstrate",
			"Explain them verbally",
		},
		TraitMapping: []string{"visual", "written", "demonstrative", "verbal"},
	},
	{
		ID:       "in_1",
		Category: "interests",
		Type:     TypeMultipleChoice,
		Text:     "Which of these activities do you enjoy the most?",
		Options: []string{
			"Solving puzzles or math problems",
			"Creating art or music",
			"Building or making things",
			"Reading or writing stories",
		},
		InterestMapping: []string{"math", "arts", "tech", "language"},
	},
	{
		ID:       "in_2",
		Category: "interests",
		Type:     TypeMultipleChoice,
		Text:     "If you could learn more about one of these topics, which would you choose?",
		Options: []string{
			"Robots and coding",
			"Starting your own business",
			"Art and design",
			"Science experiments",
		},
		InterestMapping: []string{"tech", "entrepreneurship", "arts", "science"},
	},
}

var elementaryQuestions = []Question{
	{
		ID:       "elem_1",
		Category: "learning_style",
		Type:     TypeMultipleChoice,
		Text:     "When learning about animals, I would rather:",
		Options: []string{
			"Look at pictures of animals",
			"Listen to animal sounds",
			"Visit a zoo to see real animals",
			"Read facts about animals",
		},
		LearningStyleMapping: []string{"visual", "auditory", "kinesthetic", "logical"},
	},
	{
		ID:       "elem_2",
		Category: "problem_solving",
		Type:     TypeLogicPuzzle,
		Text:     "Which shape comes next in this pattern? [Square, Circle, Triangle, Square, Circle, ?]",
		Options: []string{
			"Triangle",
			"Square",
			"Circle",
			"Rectangle",
		},
		CorrectAnswer: "Triangle",
		TraitMapping:  []string{"pattern_recognition"},
	},
	{
		ID:       "elem_3",
		Category: "creativity",
		Type:     TypeSituational,
		Text:     "If you could invent a new toy, what would it do?",
		Options: []string{
			"It would fly or move by itself",
			"It would change colors or shapes",
			"It would teach you new things",
			"It would tell stories or play music",
		},
		TraitMapping: []string{"mechanical", "visual", "educational", "entertainment"},
	},
	{
		ID:       "elem_4",
		Category: "behavior",
		Type:     TypeSituational,
		Text:     "When playing with friends, I usually:",
		Options: []string{
			"Like to be the leader",
			"Follow what others want to do",
			"Suggest new games to play",
			"Play by myself sometimes",
		},
		TraitMapping: []string{"leadership", "cooperative", "innovative", "independent"},
	},
	{
		ID:       "elem_5",
		Category: "interests",
		Type:     TypeVisualReasoning,
		Text:     "Which picture shows something you'd like to learn more about?",
		Options: []string{
			"Computer/tablet with code on screen",
			"Art supplies and paintings",
			"Sports equipment",
			"Books and writing materials",
		},
		InterestMapping: []string{"tech", "arts", "physical", "language"},
	},
}

var middleSchoolQuestions = []Question{
	{
		ID:       "mid_1",
		Category: "learning_style",
		Type:     TypeMultipleChoice,
		Text:     "When working on a science project, I prefer to:",
		Options: []string{
			"Design and conduct experiments",
			"Research facts and information online",
			"Create visual models or diagrams",
			"Discuss ideas with classmates",
		},
		LearningStyleMapping: []string{"kinesthetic", "logical", "visual", "social"},
	},
	{
		ID:       "mid_2",
		Category: "problem_solving",
		Type:     TypeLogicPuzzle,
		Text:     "If RED = 27, BLUE = 39, what does GREEN equal?",
		Options: []string{
			"57",
			"65",
			"52",
			"48",
		},
		CorrectAnswer: "57",
		TraitMapping:  []string{"analytical"},
	},
	{
		ID:       "mid_3",
		Category: "creativity",
		Type:     TypeSituational,
		Text:     "If you could design an app, what would it do?",
		Options: []string{
			"Help people learn something new",
			"Connect people with similar interests",
			"Solve an everyday problem",
			"Create or share art, music, or stories",
		},
		TraitMapping: []string{"educational", "social", "practical", "creative"},
	},
	{
		ID:       "mid_4",
		Category: "time_management",
		Type:     TypeSituational,
		Text:     "When you have multiple homework assignments due, how do you handle it?",
		Options: []string{
			"Start with the easiest ones first",
			"Start with the most difficult ones first",
			"Start with the ones due soonest",
			"Make a schedule and follow it",
		},
		TraitMapping: []string{"confidence-building", "challenge-seeking", "deadline-driven", "organized"},
	},
	{
		ID:       "mid_5",
		Category: "interests",
		Type:     TypeMultipleChoice,
		Text:     "Which of these activities sounds most interesting to you?",
		Options: []string{
			"Building a website or creating a game",
			"Starting a small business",
			"Creating videos or digital art",
			"Conducting science experiments",
		},
		InterestMapping: []string{"tech", "entrepreneurship", "media", "science"},
	},
	{
		ID:       "mid_6",
		Category: "communication",
		Type:     TypeSituational,
		Text:     "When working on a group project, I usually:",
		Options: []string{
			"Take charge and assign tasks",
			"Focus on my part and let others handle theirs",
			"Help organize everyone's ideas",
			"Come up with creative solutions",
		},
		TraitMapping: []string{"leadership", "independent", "collaborative", "innovative"},
	},
}

var highSchoolQuestions = []Question{
	{
		ID:       "high_1",
		Category: "learning_style",
		Type:     TypeMultipleChoice,
		Text:     "When preparing for an exam, I usually:",
		Options: []string{
			"Create visual study guides or mind maps",
			"Record and listen to key information",
			"Practice with sample problems or flashcards",
			"Explain concepts to someone else",
		},
		LearningStyleMapping: []string{"visual", "auditory", "kinesthetic", "social"},
	},
	{
		ID:       "high_2",
		Category: "problem_solving",
		Type:     TypeLogicPuzzle,
		Text:     "In a certain code, KNOWLEDGE is written as MPQYNGFIG. How would EDUCATION be written in that code?",
		Options: []string{
			"GFWECVKQP",
			"GFWEVKQPC",
			"GFWECVKQP",
			"GFWECKQPV",
		},
		CorrectAnswer: "GFWECVKQP",
		TraitMapping:  []string{"pattern_recognition"},
	},
	{
		ID:           "high_3",
		Category:     "creativity",
		Type:         TypeOpenEnded,
		Text:         "Describe a solution to a real-world problem you'd like to solve.",
		TraitMapping: []string{"innovative", "practical", "visionary"},
	},
	{
		ID:       "high_4",
		Category: "time_management",
		Type:     TypeSituational,
		Text:     "When facing a long-term project, I typically:",
		Options: []string{
			"Break it down into smaller tasks with deadlines",
			"Focus intensely on it for long periods",
			"Work on it when I feel inspired",
			"Collaborate with others to divide the work",
		},
		TraitMapping: []string{"structured", "focused", "intuitive", "collaborative"},
	},
	{
		ID:       "high_5",
		Category: "interests",
		Type:     TypeMultipleChoice,
		Text:     "Which career field interests you the most?",
		Options: []string{
			"Technology and computer science",
			"Business and entrepreneurship",
			"Arts, design, or communication",
			"Science, research, or medicine",
		},
		InterestMapping: []string{"tech", "entrepreneurship", "creative", "science"},
	},
	{
		ID:       "high_6",
		Category: "communication",
		Type:     TypeSituational,
		Text:     "When presenting information to others, I prefer to:",
		Options: []string{
			"Use visual aids like slides or videos",
			"Prepare a detailed written report",
			"Create an interactive demonstration",
			"Lead a discussion or debate",
		},
		TraitMapping: []string{"visual", "written", "interactive", "verbal"},
	},
	{
		ID:       "high_7",
		Category: "behavior",
		Type:     TypeSituational,
		Text:     "When faced with a challenging task, I usually:",
		Options: []string{
			"Research different approaches before starting",
			"Jump in and learn as I go",
			"Seek advice from someone with experience",
			"Look for creative alternatives to the standard approach",
		},
		TraitMapping: []string{"analytical", "experiential", "guidance-seeking", "innovative"},
	},
	{
		ID:           "high_8",
		Category:     "open_ended",
		Type:         TypeOpenEnded,
		Text:         "What do you see yourself doing 5 years from now?",
		TraitMapping: []string{"future_orientation", "goal_setting", "self_awareness"},
	},
}

var parentMirrorQuestions = []Question{
	{
		ID:       "parent_1",
		Category: "learning_style",
		Type:     TypeMultipleChoice,
		Text:     "How do you think your child prefers to learn new information?",
		Options: []string{
			"By seeing visual examples or demonstrations",
			"By listening to explanations",
			"By doing hands-on activities",
			"By reading and analyzing information",
		},
		LearningStyleMapping: []string{"visual", "auditory", "kinesthetic", "logical"},
	},
	{
		ID:       "parent_2",
		Category: "behavior",
		Type:     TypeMultipleChoice,
		Text:     "When your child is left alone with a task, how do they typically behave?",
		Options: []string{
			"Follow instructions exactly",
			"Find their own way to complete it",
			"Get distracted easily",
			"Ask for help frequently",
		},
		TraitMapping: []string{"structured", "independent", "distractible", "guidance-seeking"},
	},
	{
		ID:       "parent_3",
		Category: "problem_solving",
		Type:     TypeMultipleChoice,
		Text:     "How does your child usually approach difficult problems?",
		Options: []string{
			"Looks for examples to follow",
			"Asks for help right away",
			"Tries different approaches until something works",
			"Takes a break and returns to it later",
		},
		TraitMapping: []string{"example-based", "help-seeking", "persistent", "reflective"},
	},
	{
		ID:       "parent_4",
		Category: "creativity",
		Type:     TypeMultipleChoice,
		Text:     "How creative do you consider your child to be?",
		Options: []string{
			"Very creative, always coming up with original ideas",
			"Somewhat creative, builds on existing ideas",
			"Prefers following established patterns",
			"Creativity varies depending on the subject",
		},
		TraitMapping: []string{"highly_creative", "moderately_creative", "structured", "context_dependent"},
	},
	{
		ID:       "parent_5",
		Category: "interests",
		Type:     TypeMultipleChoice,
		Text:     "Which area do you think your child shows the most interest in?",
		Options: []string{
			"Technology and computers",
			"Arts and creative activities",
			"Social activities and leadership",
			"Academic subjects and learning",
		},
		InterestMapping: []string{"tech", "arts", "social", "academic"},
	},
}

// QuestionsForAge returns the common question set extended with the
// age-band questions. Ages outside every band get the common set only.
func QuestionsForAge(age int) []Question {
	questions := make([]Question, 0, len(commonQuestions)+8)
	questions = append(questions, commonQuestions...)

	switch {
	case age >= ElementaryMinAge && age <= ElementaryMaxAge:
		questions = append(questions, elementaryQuestions...)
	case age >= MiddleMinAge && age <= MiddleMaxAge:
		questions = append(questions, middleSchoolQuestions...)
	case age >= HighMinAge && age <= HighMaxAge:
		questions = append(questions, highSchoolQuestions...)
	}

	return questions
}

// ParentQuestions returns the mirror questions parents answer about their child.
func ParentQuestions() []Question {
	questions := make([]Question, len(parentMirrorQuestions))
	copy(questions, parentMirrorQuestions)
	return questions
}

// FindQuestion looks up a question by ID within the set for the given age.
func FindQuestion(id string, age int) (Question, bool) {
	for _, q := range QuestionsForAge(age) {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// FindParentQuestion looks up a parent mirror question by ID.
func FindParentQuestion(id string) (Question, bool) {
	for _, q := range parentMirrorQuestions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}
