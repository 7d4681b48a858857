package mathpath

var tracks = map[string]Track{
	"abacus": {
		Title:       "Abacus Mathematics",
		Description: "A visual and kinesthetic approach to mathematics using the abacus tool to develop mental calculation abilities and number sense.",
		Benefits: []string{
			"Enhances visual-spatial processing",
			"Develops strong mental calculation abilities",
			"Improves concentration and focus",
			"Builds number sense and place value understanding",
			"Strengthens working memory",
		},
		Levels: []Level{
			{
				Level:       "Beginner",
				Title:       "Abacus Foundations",
				Description: "Introduction to the abacus tool and basic operations",
				Skills: []string{
					"Understanding abacus structure and value placement",
					"Basic addition and subtraction on the abacus",
					"Number representation from 1-100",
					"Simple mental calculations",
				},
				Duration:      "8-12 weeks",
				AgeRange:      "6-9 years",
				Prerequisites: "Basic number recognition and counting",
			},
			{
				Level:       "Intermediate",
				Title:       "Abacus Calculation Mastery",
				Description: "Advanced operations and mental calculation techniques",
				Skills: []string{
					"Multi-digit addition and subtraction",
					"Beginning multiplication on the abacus",
					"Mental visualization techniques",
					"Speed and accuracy development",
				},
				Duration:      "12-16 weeks",
				AgeRange:      "7-11 years",
				Prerequisites: "Completion of Abacus Foundations or equivalent",
			},
			{
				Level:       "Advanced",
				Title:       "Mental Abacus Mastery",
				Description: "Advanced mental calculation without physical abacus",
				Skills: []string{
					"Complex calculations using mental abacus",
					"Multiplication and division operations",
					"Decimal operations",
					"Speed calculation techniques",
				},
				Duration:      "16-20 weeks",
				AgeRange:      "8-14 years",
				Prerequisites: "Completion of Abacus Calculation Mastery or equivalent",
			},
			{
				Level:       "Expert",
				Title:       "Competitive Abacus Mathematics",
				Description: "Preparation for abacus competitions and advanced applications",
				Skills: []string{
					"Lightning calculation techniques",
					"Complex problem-solving with mental abacus",
					"Competition strategies and techniques",
					"Application to advanced mathematics",
				},
				Duration:      "20-24 weeks",
				AgeRange:      "9-16 years",
				Prerequisites: "Completion of Mental Abacus Mastery or equivalent",
			},
		},
		Certification: Certification{
			Name:     "International Abacus Mathematics Certification",
			Levels:   []string{"Basic", "Intermediate", "Advanced", "Master"},
			Benefits: "Internationally recognized certification of abacus calculation proficiency",
		},
		Competitions: []Competition{
			{
				Name:        "International Abacus Mental Arithmetic Competition",
				Frequency:   "Annual",
				Eligibility: "Students of all ages with abacus training",
				Description: "International competition testing speed and accuracy in mental calculations",
			},
			{
				Name:        "National Abacus Championship",
				Frequency:   "Annual",
				Eligibility: "Students aged 6-18 with abacus training",
				Description: "National-level competition with various age categories and difficulty levels",
			},
		},
		CareerConnections: []string{
			"Accounting and finance",
			"Data analysis",
			"Engineering",
			"Computer science",
			"Mathematics education",
		},
	},
	"vedic": {
		Title:       "Vedic Mathematics",
		Description: "An ancient Indian system of mathematics based on 16 sutras (formulas) that provide efficient methods for calculation and problem-solving.",
		Benefits: []string{
			"Dramatically increases calculation speed",
			"Develops mathematical intuition and insight",
			"Reduces calculation errors",
			"Builds pattern recognition abilities",
			"Enhances mathematical confidence",
		},
		Levels: []Level{
			{
				Level:       "Beginner",
				Title:       "Vedic Mathematics Foundations",
				Description: "Introduction to basic Vedic mathematics principles and sutras",
				Skills: []string{
					"Understanding key Vedic sutras",
					"Basic Vedic addition and subtraction techniques",
					"Simple multiplication shortcuts",
					"Checking answers using Vedic methods",
				},
				Duration:      "8-12 weeks",
				AgeRange:      "8-11 years",
				Prerequisites: "Basic arithmetic operations understanding",
			},
			{
				Level:       "Intermediate",
				Title:       "Vedic Calculation Techniques",
				Description: "Advanced calculation methods and application of multiple sutras",
				Skills: []string{
					"Advanced multiplication techniques",
					"Division using Vedic methods",
					"Square and cube calculations",
					"Decimal operations using Vedic mathematics",
				},
				Duration:      "12-16 weeks",
				AgeRange:      "9-13 years",
				Prerequisites: "Completion of Vedic Mathematics Foundations or equivalent",
			},
			{
				Level:       "Advanced",
				Title:       "Advanced Vedic Problem Solving",
				Description: "Application of Vedic techniques to complex mathematical problems",
				Skills: []string{
					"Algebraic applications of Vedic sutras",
					"Solving equations using Vedic methods",
					"Advanced pattern recognition",
					"Mental calculation of complex operations",
				},
				Duration:      "16-20 weeks",
				AgeRange:      "10-16 years",
				Prerequisites: "Completion of Vedic Calculation Techniques or equivalent",
			},
			{
				Level:       "Expert",
				Title:       "Vedic Mathematics Mastery",
				Description: "Comprehensive mastery of all Vedic sutras and their applications",
				Skills: []string{
					"All 16 sutras and their applications",
					"Complex problem-solving using multiple sutras",
					"Application to competitive mathematics",
					"Teaching and explaining Vedic techniques",
				},
				Duration:      "20-24 weeks",
				AgeRange:      "12-18 years",
				Prerequisites: "Completion of Advanced Vedic Problem Solving or equivalent",
			},
		},
		Certification: Certification{
			Name:     "Vedic Mathematics Proficiency Certification",
			Levels:   []string{"Foundation", "Intermediate", "Advanced", "Master"},
			Benefits: "Recognition of Vedic mathematics knowledge and calculation abilities",
		},
		Competitions: []Competition{
			{
				Name:        "International Vedic Mathematics Olympiad",
				Frequency:   "Annual",
				Eligibility: "Students aged 8-18 with Vedic mathematics knowledge",
				Description: "International competition testing Vedic mathematics problem-solving",
			},
			{
				Name:        "Speed Calculation Championship",
				Frequency:   "Biannual",
				Eligibility: "Students of all ages with mental calculation training",
				Description: "Competition focusing on calculation speed using various methods including Vedic",
			},
		},
		CareerConnections: []string{
			"Mathematics research",
			"Computer science and programming",
			"Engineering",
			"Financial analysis",
			"Data science",
		},
	},
	"integrated": {
		Title:       "Integrated Mathematical Thinking",
		Description: "A comprehensive approach combining traditional mathematics with Abacus and Vedic techniques to develop well-rounded mathematical abilities.",
		Benefits: []string{
			"Develops multiple approaches to mathematical problems",
			"Combines visual, logical, and intuitive mathematical thinking",
			"Builds strong calculation abilities alongside conceptual understanding",
			"Prepares students for both academic and competitive mathematics",
			"Enhances overall mathematical confidence and flexibility",
		},
		Levels: []Level{
			{
				Level:       "Beginner",
				Title:       "Mathematical Thinking Foundations",
				Description: "Introduction to multiple mathematical approaches and tools",
				Skills: []string{
					"Traditional arithmetic operations",
					"Basic abacus techniques",
					"Introduction to Vedic calculation principles",
					"Number sense and pattern recognition",
				},
				Duration:      "12-16 weeks",
				AgeRange:      "7-10 years",
				Prerequisites: "Basic number understanding",
			},
			{
				Level:       "Intermediate",
				Title:       "Multi-Method Calculation",
				Description: "Development of calculation skills using multiple methods",
				Skills: []string{
					"Mental abacus visualization",
					"Vedic calculation shortcuts",
					"Traditional algorithm mastery",
					"Method selection for different problem types",
				},
				Duration:      "16-20 weeks",
				AgeRange:      "8-12 years",
				Prerequisites: "Completion of Mathematical Thinking Foundations or equivalent",
			},
			{
				Level:       "Advanced",
				Title:       "Comprehensive Problem Solving",
				Description: "Application of multiple methods to complex mathematical problems",
				Skills: []string{
					"Advanced mental calculation techniques",
					"Algebraic problem-solving using multiple approaches",
					"Pattern recognition and generalization",
					"Mathematical modeling and application",
				},
				Duration:      "20-24 weeks",
				AgeRange:      "10-14 years",
				Prerequisites: "Completion of Multi-Method Calculation or equivalent",
			},
			{
				Level:       "Expert",
				Title:       "Mathematical Excellence Program",
				Description: "Preparation for mathematical competitions and advanced studies",
				Skills: []string{
					"Competition-level problem-solving",
					"Advanced calculation mastery",
					"Mathematical proof and reasoning",
					"Creative mathematical thinking",
				},
				Duration:      "24-30 weeks",
				AgeRange:      "12-18 years",
				Prerequisites: "Completion of Comprehensive Problem Solving or equivalent",
			},
		},
		Certification: Certification{
			Name:     "Comprehensive Mathematical Excellence Certification",
			Levels:   []string{"Foundation", "Intermediate", "Advanced", "Excellence"},
			Benefits: "Recognition of well-rounded mathematical abilities across multiple approaches",
		},
		Competitions: []Competition{
			{
				Name:        "International Mathematical Olympiad (IMO)",
				Frequency:   "Annual",
				Eligibility: "Top mathematics students selected through national competitions",
				Description: "Prestigious international competition for high school students",
			},
			{
				Name:        "American Mathematics Competition (AMC)",
				Frequency:   "Annual",
				Eligibility: "Students in grades 8-12",
				Description: "Series of competitions leading to the International Mathematical Olympiad",
			},
			{
				Name:        "Mathematics Kangaroo",
				Frequency:   "Annual",
				Eligibility: "Students aged 5-18",
				Description: "International competition with multiple age categories",
			},
		},
		CareerConnections: []string{
			"Pure and applied mathematics",
			"Scientific research",
			"Engineering and technology",
			"Data science and analytics",
			"Quantitative finance",
			"Computer science and artificial intelligence",
		},
	},
}

var courses = map[string][]Course{
	"elementary": {
		{
			ID:          "MATH101",
			Title:       "Abacus Adventures: Level 1",
			Description: "A fun introduction to the abacus for young learners, building number sense and basic calculation skills.",
			Pathway:     "abacus",
			Level:       "Beginner",
			AgeRange:    "6-8",
			Duration:    "8 weeks",
			KeySkills: []string{
				"Abacus structure and operation",
				"Numbers 1-100 on the abacus",
				"Basic addition and subtraction",
				"Beginning mental visualization",
			},
			NextCourse: "MATH102",
		},
		{
			ID:          "MATH102",
			Title:       "Abacus Adventures: Level 2",
			Description: "Building on basic abacus skills to develop stronger calculation abilities and mental math.",
			Pathway:     "abacus",
			Level:       "Beginner-Intermediate",
			AgeRange:    "7-9",
			Duration:    "8 weeks",
			KeySkills: []string{
				"Two-digit addition and subtraction",
				"Beginning multiplication concepts",
				"Enhanced mental visualization",
				"Speed and accuracy development",
			},
			NextCourse: "MATH201",
		},
		{
			ID:          "MATH103",
			Title:       "Vedic Math for Kids",
			Description: "An engaging introduction to Vedic mathematics principles through games and activities.",
			Pathway:     "vedic",
			Level:       "Beginner",
			AgeRange:    "8-10",
			Duration:    "8 weeks",
			KeySkills: []string{
				"Basic Vedic sutras",
				"Simple calculation shortcuts",
				"Pattern recognition",
				"Mental math foundations",
			},
			NextCourse: "MATH203",
		},
		{
			ID:          "MATH104",
			Title:       "Math Explorers: Multiple Methods",
			Description: "Exploration of different mathematical approaches including traditional, abacus, and Vedic techniques.",
			Pathway:     "integrated",
			Level:       "Beginner",
			AgeRange:    "7-10",
			Duration:    "10 weeks",
			KeySkills: []string{
				"Multiple calculation methods",
				"Number sense development",
				"Basic abacus and Vedic techniques",
				"Mathematical flexibility",
			},
			NextCourse: "MATH204",
		},
	},
	"middle": {
		{
			ID:          "MATH201",
			Title:       "Mental Abacus Mastery",
			Description: "Advancing from physical abacus to mental calculation using abacus visualization.",
			Pathway:     "abacus",
			Level:       "Intermediate",
			AgeRange:    "8-12",
			Duration:    "12 weeks",
			KeySkills: []string{
				"Mental abacus visualization",
				"Multi-digit operations",
				"Speed calculation techniques",
				"Application to school mathematics",
			},
			NextCourse: "MATH301",
		},
		{
			ID:          "MATH202",
			Title:       "Abacus Competition Preparation",
			Description: "Specialized training for students interested in abacus competitions.",
			Pathway:     "abacus",
			Level:       "Intermediate-Advanced",
			AgeRange:    "9-13",
			Duration:    "12 weeks",
			KeySkills: []string{
				"Competition techniques",
				"Speed and accuracy drills",
				"Complex calculation patterns",
				"Competition strategies",
			},
			NextCourse: "MATH301",
		},
		{
			ID:          "MATH203",
			Title:       "Vedic Mathematics: Calculation Mastery",
			Description: "Comprehensive study of Vedic calculation techniques for enhanced mathematical performance.",
			Pathway:     "vedic",
			Level:       "Intermediate",
			AgeRange:    "10-14",
			Duration:    "12 weeks",
			KeySkills: []string{
				"Advanced Vedic sutras",
				"Multiplication and division shortcuts",
				"Square and cube calculations",
				"Decimal operations",
			},
			NextCourse: "MATH303",
		},
		{
			ID:          "MATH204",
			Title:       "Integrated Mathematical Problem Solving",
			Description: "Development of problem-solving skills using multiple mathematical approaches.",
			Pathway:     "integrated",
			Level:       "Intermediate",
			AgeRange:    "10-13",
			Duration:    "14 weeks",
			KeySkills: []string{
				"Problem-solving strategies",
				"Method selection for efficiency",
				"Pattern recognition",
				"Mathematical reasoning",
			},
			NextCourse: "MATH304",
		},
	},
	"high": {
		{
			ID:          "MATH301",
			Title:       "Advanced Abacus and Mental Arithmetic",
			Description: "Mastery-level abacus techniques and lightning-fast mental calculation abilities.",
			Pathway:     "abacus",
			Level:       "Advanced",
			AgeRange:    "11-16",
			Duration:    "16 weeks",
			KeySkills: []string{
				"Complex mental calculations",
				"Advanced abacus techniques",
				"Application to advanced mathematics",
				"Teaching and demonstration skills",
			},
		},
		{
			ID:          "MATH302",
			Title:       "Abacus Teacher Training",
			Description: "Preparation for students who wish to become abacus instructors.",
			Pathway:     "abacus",
			Level:       "Expert",
			AgeRange:    "14-18",
			Duration:    "20 weeks",
			KeySkills: []string{
				"Advanced abacus mastery",
				"Teaching methodology",
				"Student assessment techniques",
				"Curriculum development",
			},
		},
		{
			ID:          "MATH303",
			Title:       "Advanced Vedic Mathematics",
			Description: "Comprehensive study of all 16 Vedic sutras and their applications to complex mathematics.",
			Pathway:     "vedic",
			Level:       "Advanced",
			AgeRange:    "13-18",
			Duration:    "16 weeks",
			KeySkills: []string{
				"All 16 Vedic sutras",
				"Application to algebra and calculus",
				"Complex problem-solving",
				"Competitive mathematics preparation",
			},
		},
		{
			ID:          "MATH304",
			Title:       "Mathematical Excellence Program",
			Description: "Elite program for mathematically gifted students preparing for competitions and advanced studies.",
			Pathway:     "integrated",
			Level:       "Advanced-Expert",
			AgeRange:    "14-18",
			Duration:    "24 weeks",
			KeySkills: []string{
				"Olympiad-level problem-solving",
				"Advanced calculation mastery",
				"Mathematical proof techniques",
				"Research and exploration",
			},
		},
	},
}

var elementaryCompetitions = []ExamRecommendation{
	{
		Name:        "Math Kangaroo",
		Description: "International mathematical competition with age-appropriate problems",
		AgeRange:    "Grades 1-12",
		Website:     "https://www.mathkangaroo.org/",
		Preparation: "Regular practice with mathematical puzzles and problems",
	},
	{
		Name:        "International Mathematics Olympiad (IMO) - Elementary Level",
		Description: "Mathematics competition for elementary students",
		AgeRange:    "Grades 1-5",
		Website:     "https://www.imo-official.org/",
		Preparation: "Practice with challenging math problems beyond grade level",
	},
	{
		Name:        "Abacus & Mental Arithmetic Competition",
		Description: "Competition testing abacus and mental calculation skills",
		AgeRange:    "Ages 4-12",
		Website:     "Various regional organizations",
		Preparation: "Regular abacus practice and speed calculation drills",
	},
}

var middleCompetitions = []ExamRecommendation{
	{
		Name:        "American Mathematics Competition 8 (AMC 8)",
		Description: "25-question multiple choice contest for middle school students",
		AgeRange:    "Grades 6-8",
		Website:     "https://www.maa.org/math-competitions/amc-8",
		Preparation: "Practice with previous AMC 8 problems and middle school competition math",
	},
	{
		Name:        "Math Counts",
		Description: "National middle school coaching and competition program",
		AgeRange:    "Grades 6-8",
		Website:     "https://www.mathcounts.org/",
		Preparation: "Regular practice with competition-style problems and team strategies",
	},
	{
		Name:        "International Vedic Mathematics Olympiad",
		Description: "Competition testing Vedic mathematics knowledge and application",
		AgeRange:    "Ages 8-14",
		Website:     "Various organizations",
		Preparation: "Practice with Vedic mathematics techniques and speed calculations",
	},
	{
		Name:        "International Junior Math Olympiad (IJMO)",
		Description: "International competition for middle school students",
		AgeRange:    "Grades 6-8",
		Website:     "https://www.ijmo.org/",
		Preparation: "Practice with olympiad-style problems and proof techniques",
	},
}

var highCompetitions = []ExamRecommendation{
	{
		Name:        "American Mathematics Competition 10/12 (AMC 10/12)",
		Description: "First in a series of competitions leading to the International Mathematical Olympiad",
		AgeRange:    "Grades 9-12",
		Website:     "https://www.maa.org/math-competitions",
		Preparation: "Regular practice with AMC problems and advanced mathematical concepts",
	},
	{
		Name:        "American Invitational Mathematics Examination (AIME)",
		Description: "Qualification round after AMC 10/12 for top-scoring students",
		AgeRange:    "Grades 9-12",
		Website:     "https://www.maa.org/math-competitions",
		Preparation: "Intensive practice with previous AIME problems and proof techniques",
	},
	{
		Name:        "International Mathematical Olympiad (IMO)",
		Description: "Prestigious international competition for high school students",
		AgeRange:    "Under 20 years old",
		Website:     "https://www.imo-official.org/",
		Preparation: "Extensive training in advanced mathematical problem-solving and proof techniques",
	},
	{
		Name:        "Harvard-MIT Mathematics Tournament (HMMT)",
		Description: "Prestigious competition hosted by Harvard and MIT",
		AgeRange:    "High school students",
		Website:     "https://www.hmmt.org/",
		Preparation: "Team and individual practice with advanced competition mathematics",
	},
}
