package exams

// Exam describes a globally available examination, aptitude test, or
// credentialing program.
type Exam struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	AgeRange    string   `json:"ageRange"`
	Regions     string   `json:"regions"`
	Website     string   `json:"website"`
	Benefits    []string `json:"benefits"`
	Preparation string   `json:"preparation"`
}

// Categories maps each examination category to a short description of
// what it measures.
var Categories = map[string]string{
	"academic":      "Standard academic assessments measuring subject knowledge and skills",
	"aptitude":      "Tests measuring inherent abilities and potential rather than acquired knowledge",
	"competition":   "Competitive examinations that rank students against peers",
	"talent_search": "Programs identifying gifted students through specialized testing",
	"certification": "Assessments providing recognized credentials in specific areas",
}

var categoryOrder = []string{"academic", "aptitude", "competition", "talent_search", "certification"}

var examCatalog = map[string]map[string][]Exam{
	"elementary": {
		"academic": {
			{
				Name:        "International Schools Assessment (ISA)",
				Description: "Assessment for international schools measuring reading, math, and science",
				AgeRange:    "Grades 3-10",
				Regions:     "Global",
				Website:     "https://www.acer.org/isa",
				Benefits: []string{
					"International benchmarking",
					"Detailed skill analysis",
					"Comparison with similar schools globally",
				},
				Preparation: "Regular classroom learning with focus on reading comprehension and problem-solving",
			},
			{
				Name:        "ASSET (Assessment of Scholastic Skills through Educational Testing)",
				Description: "Diagnostic test assessing conceptual understanding across subjects",
				AgeRange:    "Grades 3-10",
				Regions:     "International",
				Website:     "https://www.ei-india.com/asset/",
				Benefits: []string{
					"Detailed feedback on conceptual understanding",
					"Identifies specific learning gaps",
					"Benchmarking against peers",
				},
				Preparation: "Focus on understanding concepts rather than memorization",
			},
			{
				Name:        "Cambridge Primary Checkpoint",
				Description: "Assessments for Cambridge Primary students in English, Math, and Science",
				AgeRange:    "Ages 5-11",
				Regions:     "Global (Cambridge schools)",
				Website:     "https://www.cambridgeinternational.org/",
				Benefits: []string{
					"International standards assessment",
					"Detailed feedback reports",
					"Preparation for Cambridge Secondary",
				},
				Preparation: "Following Cambridge Primary curriculum with regular practice",
			},
		},
		"aptitude": {
			{
				Name:        "Cognitive Abilities Test (CogAT)",
				Description: "Measures reasoning abilities in verbal, quantitative, and nonverbal areas",
				AgeRange:    "K-12",
				Regions:     "Global",
				Website:     "https://www.riversideinsights.com/solutions/cogat",
				Benefits: []string{
					"Identifies cognitive strengths and learning styles",
					"Helps predict academic success",
					"Useful for gifted program placement",
				},
				Preparation: "Exposure to diverse problem-solving activities and puzzles",
			},
			{
				Name:        "Naglieri Nonverbal Ability Test (NNAT)",
				Description: "Nonverbal test of general ability using geometric shapes and patterns",
				AgeRange:    "K-12",
				Regions:     "Global",
				Website:     "https://www.pearsonassessments.com/",
				Benefits: []string{
					"Culturally neutral assessment",
					"Identifies spatial reasoning abilities",
					"Useful for ELL students and diverse populations",
				},
				Preparation: "Practice with pattern recognition and spatial reasoning puzzles",
			},
			{
				Name:        "Otis-Lennon School Ability Test (OLSAT)",
				Description: "Measures abstract thinking and reasoning ability",
				AgeRange:    "K-12",
				Regions:     "Global",
				Website:     "https://www.pearsonassessments.com/",
				Benefits: []string{
					"Assesses verbal and nonverbal reasoning",
					"Used for gifted program admission",
					"Identifies learning potential",
				},
				Preparation: "Practice with verbal and nonverbal reasoning problems",
			},
		},
		"competition": {
			{
				Name:        "International Mathematics Olympiad (IMO) - Elementary Level",
				Description: "Mathematics competition for elementary students",
				AgeRange:    "Grades 1-5",
				Regions:     "Global",
				Website:     "Various national organizations",
				Benefits: []string{
					"Develops problem-solving skills",
					"Builds mathematical confidence",
					"Provides recognition for mathematical talent",
				},
				Preparation: "Regular practice with mathematical puzzles and problems beyond grade level",
			},
			{
				Name:        "International English Olympiad (IEO)",
				Description: "English language and comprehension competition",
				AgeRange:    "Grades 1-12",
				Regions:     "Global",
				Website:     "Various national organizations",
				Benefits: []string{
					"Enhances vocabulary and grammar",
					"Improves reading comprehension",
					"Develops communication skills",
				},
				Preparation: "Regular reading practice and language exercises",
			},
			{
				Name:        "International Science Olympiad (ISO)",
				Description: "Science competition covering age-appropriate scientific concepts",
				AgeRange:    "Grades 1-12",
				Regions:     "Global",
				Website:     "Various national organizations",
				Benefits: []string{
					"Develops scientific thinking",
					"Encourages curiosity and exploration",
					"Builds knowledge beyond curriculum",
				},
				Preparation: "Exploring scientific concepts through experiments and reading",
			},
			{
				Name:        "Math Kangaroo",
				Description: "International mathematical competition with age-appropriate problems",
				AgeRange:    "Grades 1-12",
				Regions:     "Global (80+ countries)",
				Website:     "https://www.mathkangaroo.org/",
				Benefits: []string{
					"Accessible mathematical challenge",
					"Focus on logical thinking rather than calculation",
					"International recognition",
				},
				Preparation: "Regular practice with mathematical puzzles and problems",
			},
		},
		"talent_search": {
			{
				Name:        "Johns Hopkins Center for Talented Youth (CTY)",
				Description: "Talent search program identifying academically gifted young students",
				AgeRange:    "Grades 2-8",
				Regions:     "Global",
				Website:     "https://cty.jhu.edu/",
				Benefits: []string{
					"Access to advanced courses",
					"Summer programs for gifted students",
					"Recognition of academic talent",
				},
				Preparation: "Strong performance on school assessments and qualifying exams",
			},
			{
				Name:        "Duke Talent Identification Program (TIP)",
				Description: "Talent search identifying academically talented students",
				AgeRange:    "Grades 4-6",
				Regions:     "Global",
				Website:     "https://tip.duke.edu/",
				Benefits: []string{
					"Access to enrichment resources",
					"Summer studies programs",
					"Above-level testing opportunities",
				},
				Preparation: "Strong academic performance and qualifying test scores",
			},
		},
		"certification": {
			{
				Name:        "Cambridge English: Young Learners (YLE)",
				Description: "English language certification for young learners",
				AgeRange:    "Ages 7-12",
				Regions:     "Global",
				Website:     "https://www.cambridgeenglish.org/",
				Benefits: []string{
					"Internationally recognized English certification",
					"Age-appropriate assessment",
					"Foundation for future language qualifications",
				},
				Preparation: "Regular English language practice and specific exam preparation",
			},
			{
				Name:        "DELF Prim",
				Description: "French language certification for young learners",
				AgeRange:    "Ages 7-12",
				Regions:     "Global",
				Website:     "http://www.ciep.fr/en/delf-prim",
				Benefits: []string{
					"Official French language certification",
					"Age-appropriate assessment",
					"Recognition by French Ministry of Education",
				},
				Preparation: "French language study and specific exam preparation",
			},
		},
	},
	"middle": {
		"academic": {
			{
				Name:        "International Schools Assessment (ISA)",
				Description: "Assessment for international schools measuring reading, math, and science",
				AgeRange:    "Grades 3-10",
				Regions:     "Global",
				Website:     "https://www.acer.org/isa",
				Benefits: []string{
					"International benchmarking",
					"Detailed skill analysis",
					"Comparison with similar schools globally",
				},
				Preparation: "Regular classroom learning with focus on reading comprehension and problem-solving",
			},
			{
				Name:        "Cambridge Secondary 1 Checkpoint",
				Description: "Assessments for Cambridge Secondary 1 students in English, Math, and Science",
				AgeRange:    "Ages 11-14",
				Regions:     "Global (Cambridge schools)",
				Website:     "https://www.cambridgeinternational.org/",
				Benefits: []string{
					"International standards assessment",
					"Detailed feedback reports",
					"Preparation for Cambridge IGCSE",
				},
				Preparation: "Following Cambridge Secondary 1 curriculum with regular practice",
			},
			{
				Name:        "TIMSS (Trends in International Mathematics and Science Study)",
				Description: "International assessment of mathematics and science knowledge",
				AgeRange:    "Grades 4 and 8",
				Regions:     "Global (60+ countries)",
				Website:     "https://timssandpirls.bc.edu/",
				Benefits: []string{
					"International comparison of educational systems",
					"Comprehensive assessment of math and science",
					"Identifies educational trends",
				},
				Preparation: "Strong foundation in grade-level mathematics and science",
			},
		},
		"aptitude": {
			{
				Name:        "Cognitive Abilities Test (CogAT)",
				Description: "Measures reasoning abilities in verbal, quantitative, and nonverbal areas",
				AgeRange:    "K-12",
				Regions:     "Global",
				Website:     "https://www.riversideinsights.com/solutions/cogat",
				Benefits: []string{
					"Identifies cognitive strengths and learning styles",
					"Helps predict academic success",
					"Useful for advanced program placement",
				},
				Preparation: "Exposure to diverse problem-solving activities and puzzles",
			},
			{
				Name:        "Secondary School Admission Test (SSAT)",
				Description: "Admission test for independent schools measuring verbal, quantitative, and reading skills",
				AgeRange:    "Grades 5-11",
				Regions:     "Global",
				Website:     "https://www.ssat.org/",
				Benefits: []string{
					"Required for many private school admissions",
					"Measures academic abilities",
					"Provides percentile rankings",
				},
				Preparation: "Practice tests and targeted study in verbal, math, and reading",
			},
			{
				Name:        "Independent School Entrance Examination (ISEE)",
				Description: "Admission test for independent schools measuring verbal and quantitative reasoning",
				AgeRange:    "Grades 4-12",
				Regions:     "Global",
				Website:     "https://www.erblearn.org/families/isee-by-erb/",
				Benefits: []string{
					"Required for many private school admissions",
					"Measures both achievement and potential",
					"Multiple test levels based on grade",
				},
				Preparation: "Practice tests and targeted study in verbal and quantitative reasoning",
			},
		},
		"competition": {
			{
				Name:        "American Mathematics Competition 8 (AMC 8)",
				Description: "25-question multiple choice contest for middle school students",
				AgeRange:    "Grades 6-8",
				Regions:     "Global (open to international students)",
				Website:     "https://www.maa.org/math-competitions/amc-8",
				Benefits: []string{
					"Develops problem-solving skills",
					"Preparation for higher-level competitions",
					"Recognition for mathematical talent",
				},
				Preparation: "Practice with previous AMC 8 problems and middle school competition math",
			},
			{
				Name:        "Math Counts",
				Description: "National middle school coaching and competition program",
				AgeRange:    "Grades 6-8",
				Regions:     "US (with international participation)",
				Website:     "https://www.mathcounts.org/",
				Benefits: []string{
					"Develops mathematical problem-solving",
					"Builds teamwork skills",
					"Provides recognition for mathematical talent",
				},
				Preparation: "Regular practice with competition-style problems and team strategies",
			},
			{
				Name:        "International Junior Science Olympiad (IJSO)",
				Description: "International science competition for middle school students",
				AgeRange:    "Under 16 years old",
				Regions:     "Global",
				Website:     "http://www.ijso-official.org/",
				Benefits: []string{
					"Develops scientific knowledge and skills",
					"International recognition",
					"Preparation for higher-level science competitions",
				},
				Preparation: "In-depth study of scientific concepts beyond curriculum",
			},
			{
				Name:        "International Junior Math Olympiad (IJMO)",
				Description: "International competition for middle school students",
				AgeRange:    "Grades 6-8",
				Regions:     "Global",
				Website:     "https://www.ijmo.org/",
				Benefits: []string{
					"Develops advanced mathematical thinking",
					"International recognition",
					"Preparation for higher-level competitions",
				},
				Preparation: "Practice with olympiad-style problems and proof techniques",
			},
		},
		"talent_search": {
			{
				Name:        "Johns Hopkins Center for Talented Youth (CTY)",
				Description: "Talent search program identifying academically gifted students",
				AgeRange:    "Grades 2-8",
				Regions:     "Global",
				Website:     "https://cty.jhu.edu/",
				Benefits: []string{
					"Access to advanced courses",
					"Summer programs for gifted students",
					"Recognition of academic talent",
				},
				Preparation: "Strong performance on school assessments and qualifying exams",
			},
			{
				Name:        "Northwestern University's Midwest Academic Talent Search (NUMATS)",
				Description: "Talent search program for academically talented students",
				AgeRange:    "Grades 3-9",
				Regions:     "Global (primarily US)",
				Website:     "https://www.ctd.northwestern.edu/program/numats",
				Benefits: []string{
					"Above-grade-level testing",
					"Access to advanced programs",
					"Recognition of academic talent",
				},
				Preparation: "Strong academic performance and qualifying test scores",
			},
		},
		"certification": {
			{
				Name:        "Cambridge English: Key (KET) for Schools",
				Description: "Basic level English language certification for school-age learners",
				AgeRange:    "Middle school and above",
				Regions:     "Global",
				Website:     "https://www.cambridgeenglish.org/",
				Benefits: []string{
					"Internationally recognized English certification",
					"School-focused content",
					"Foundation for higher-level certifications",
				},
				Preparation: "English language study and specific exam preparation",
			},
			{
				Name:        "DELF Junior",
				Description: "French language certification for school-age learners",
				AgeRange:    "Middle school and above",
				Regions:     "Global",
				Website:     "http://www.ciep.fr/en/delf-junior",
				Benefits: []string{
					"Official French language certification",
					"School-focused content",
					"Recognition by French Ministry of Education",
				},
				Preparation: "French language study and specific exam preparation",
			},
			{
				Name:        "Microsoft Office Specialist (MOS)",
				Description: "Certification validating skills in Microsoft Office applications",
				AgeRange:    "No age restriction (suitable for middle school+)",
				Regions:     "Global",
				Website:     "https://www.microsoft.com/en-us/learning/mos-certification.aspx",
				Benefits: []string{
					"Industry-recognized certification",
					"Validates practical digital skills",
					"Enhances academic and career prospects",
				},
				Preparation: "Practice with Microsoft Office applications and specific exam preparation",
			},
		},
	},
	"high": {
		"academic": {
			{
				Name:        "PSAT/NMSQT (Preliminary SAT/National Merit Scholarship Qualifying Test)",
				Description: "Preliminary version of the SAT, used for National Merit Scholarships",
				AgeRange:    "Grades 10-11",
				Regions:     "Global (primarily US)",
				Website:     "https://www.collegeboard.org/",
				Benefits: []string{
					"Preparation for SAT",
					"Qualification for scholarships",
					"College readiness assessment",
				},
				Preparation: "Practice tests and targeted study in critical reading, math, and writing",
			},
			{
				Name:        "SAT (Scholastic Assessment Test)",
				Description: "College admission test measuring reading, writing, and math skills",
				AgeRange:    "Grades 11-12",
				Regions:     "Global",
				Website:     "https://www.collegeboard.org/",
				Benefits: []string{
					"Required for many college applications",
					"Scholarship qualification",
					"Standardized measure of college readiness",
				},
				Preparation: "Regular practice tests and subject-specific study",
			},
			{
				Name:        "ACT (American College Testing)",
				Description: "College admission test covering English, math, reading, and science",
				AgeRange:    "Grades 11-12",
				Regions:     "Global",
				Website:     "https://www.act.org/",
				Benefits: []string{
					"Alternative to SAT for college applications",
					"Includes science section",
					"Scholarship qualification",
				},
				Preparation: "Practice tests and subject-specific study",
			},
			{
				Name:        "Cambridge IGCSE",
				Description: "International qualification for 14-16 year olds",
				AgeRange:    "Ages 14-16",
				Regions:     "Global",
				Website:     "https://www.cambridgeinternational.org/",
				Benefits: []string{
					"Internationally recognized qualification",
					"Subject-specific assessments",
					"Preparation for further education",
				},
				Preparation: "Following IGCSE curriculum with regular practice",
			},
			{
				Name:        "International Baccalaureate (IB) Diploma Programme",
				Description: "Rigorous pre-university course of studies",
				AgeRange:    "Ages 16-19",
				Regions:     "Global",
				Website:     "https://www.ibo.org/",
				Benefits: []string{
					"Internationally recognized qualification",
					"Comprehensive educational approach",
					"Highly regarded by universities worldwide",
				},
				Preparation: "Two-year IB Diploma Programme coursework",
			},
		},
		"aptitude": {
			{
				Name:        "Graduate Record Examinations (GRE)",
				Description: "Standardized test for graduate school admissions",
				AgeRange:    "High school seniors and above",
				Regions:     "Global",
				Website:     "https://www.ets.org/gre",
				Benefits: []string{
					"Required for many graduate programs",
					"Measures verbal, quantitative, and analytical writing skills",
					"Valid for five years",
				},
				Preparation: "Practice tests and targeted study in verbal, quantitative, and analytical writing",
			},
			{
				Name:        "Graduate Management Admission Test (GMAT)",
				Description: "Standardized test for business school admissions",
				AgeRange:    "High school seniors and above",
				Regions:     "Global",
				Website:     "https://www.mba.com/exams/gmat",
				Benefits: []string{
					"Required for many business school programs",
					"Measures analytical, writing, quantitative, and verbal skills",
					"Specifically designed for business program success",
				},
				Preparation: "Practice tests and targeted study in all test sections",
			},
			{
				Name:        "Law School Admission Test (LSAT)",
				Description: "Standardized test for law school admissions",
				AgeRange:    "High school seniors and above",
				Regions:     "Global",
				Website:     "https://www.lsac.org/",
				Benefits: []string{
					"Required for most law school programs",
					"Measures reading comprehension and logical reasoning",
					"Strong predictor of first-year law school success",
				},
				Preparation: "Practice tests and targeted study in logical reasoning and reading comprehension",
			},
		},
		"competition": {
			{
				Name:        "American Mathematics Competition (AMC 10/12)",
				Description: "Mathematics competition for high school students",
				AgeRange:    "Grades 9-12",
				Regions:     "Global (open to international students)",
				Website:     "https://www.maa.org/math-competitions",
				Benefits: []string{
					"Develops advanced mathematical problem-solving",
					"Pathway to higher competitions (AIME, USAMO)",
					"Recognition for mathematical talent",
				},
				Preparation: "Regular practice with challenging math problems and competition preparation",
			},
			{
				Name:        "International Mathematical Olympiad (IMO)",
				Description: "Prestigious international competition for high school students",
				AgeRange:    "Under 20 years old",
				Regions:     "Global",
				Website:     "https://www.imo-official.org/",
				Benefits: []string{
					"Highest level of mathematical competition for secondary students",
					"International recognition",
					"Highly regarded by top universities",
				},
				Preparation: "Extensive training in advanced mathematical problem-solving and proof techniques",
			},
			{
				Name:        "International Physics Olympiad (IPhO)",
				Description: "Physics competition for high school students",
				AgeRange:    "Under 20 years old",
				Regions:     "Global",
				Website:     "https://www.ipho-official.org/",
				Benefits: []string{
					"Develops advanced physics knowledge",
					"International recognition",
					"Highly regarded by science and engineering programs",
				},
				Preparation: "In-depth study of physics beyond high school curriculum",
			},
			{
				Name:        "International Chemistry Olympiad (IChO)",
				Description: "Chemistry competition for high school students",
				AgeRange:    "Under 20 years old",
				Regions:     "Global",
				Website:     "https://www.icho-official.org/",
				Benefits: []string{
					"Develops advanced chemistry knowledge",
					"International recognition",
					"Highly regarded by science programs",
				},
				Preparation: "In-depth study of chemistry beyond high school curriculum",
			},
			{
				Name:        "International Olympiad in Informatics (IOI)",
				Description: "Computer programming competition for secondary school students",
				AgeRange:    "Under 20 years old",
				Regions:     "Global",
				Website:     "https://ioinformatics.org/",
				Benefits: []string{
					"Develops advanced programming and algorithmic skills",
					"International recognition",
					"Highly regarded by computer science programs",
				},
				Preparation: "Advanced programming practice and algorithm study",
			},
		},
		"talent_search": {
			{
				Name:        "Research Science Institute (RSI)",
				Description: "Summer research program for high school students",
				AgeRange:    "High school juniors",
				Regions:     "Global",
				Website:     "https://www.cee.org/programs/research-science-institute",
				Benefits: []string{
					"Conduct original scientific research",
					"Work with professional scientists",
					"Highly regarded by top universities",
				},
				Preparation: "Strong academic record and demonstrated interest in scientific research",
			},
			{
				Name:        "Program in Mathematics for Young Scientists (PROMYS)",
				Description: "Summer program in mathematics for high school students",
				AgeRange:    "High school students",
				Regions:     "Global",
				Website:     "https://promys.org/",
				Benefits: []string{
					"Explore advanced mathematical concepts",
					"Develop mathematical thinking and research skills",
					"Highly regarded by mathematics programs",
				},
				Preparation: "Strong interest and ability in mathematics",
			},
		},
		"certification": {
			{
				Name:        "Cambridge English: Advanced (CAE)",
				Description: "High-level English language certification",
				AgeRange:    "High school and above",
				Regions:     "Global",
				Website:     "https://www.cambridgeenglish.org/",
				Benefits: []string{
					"Internationally recognized advanced English certification",
					"Accepted by universities worldwide",
					"Valuable for academic and professional purposes",
				},
				Preparation: "Advanced English language study and specific exam preparation",
			},
			{
				Name:        "IELTS (International English Language Testing System)",
				Description: "English language proficiency test for study, work, and migration",
				AgeRange:    "No minimum age (typically 16+)",
				Regions:     "Global",
				Website:     "https://www.ielts.org/",
				Benefits: []string{
					"Required for study and immigration in many countries",
					"Recognized by over 10,000 organizations worldwide",
					"Available in Academic and General Training formats",
				},
				Preparation: "English language study and specific exam preparation",
			},
			{
				Name:        "TOEFL (Test of English as a Foreign Language)",
				Description: "English language proficiency test for academic purposes",
				AgeRange:    "No minimum age (typically 16+)",
				Regions:     "Global",
				Website:     "https://www.ets.org/toefl",
				Benefits: []string{
					"Required for non-native English speakers at many universities",
					"Measures academic English proficiency",
					"Recognized by over 11,000 institutions worldwide",
				},
				Preparation: "Academic English study and specific exam preparation",
			},
			{
				Name:        "AP (Advanced Placement) Exams",
				Description: "College-level exams in specific subject areas",
				AgeRange:    "High school students",
				Regions:     "Global",
				Website:     "https://apstudents.collegeboard.org/",
				Benefits: []string{
					"Can earn college credit",
					"Demonstrates subject mastery",
					"Enhances college applications",
				},
				Preparation: "AP courses and intensive subject study",
			},
		},
	},
}
