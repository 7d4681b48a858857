package analysis

// Badge is a gamified achievement attached to a learning profile.
type Badge struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// BadgeSet groups the badges awarded for one profile.
type BadgeSet struct {
	Primary     Badge   `json:"primaryBadge"`
	Secondary   []Badge `json:"secondaryBadges"`
	Combination []Badge `json:"combinationBadges"`
}

var badgeCatalog = map[string]Badge{
	"visual": {
		Title:       "Visual Virtuoso",
		Description: "You excel at processing visual information and thinking in pictures.",
		Icon:        "👁️",
	},
	"auditory": {
		Title:       "Sound Sage",
		Description: "You have a gift for processing and remembering what you hear.",
		Icon:        "👂",
	},
	"kinesthetic": {
		Title:       "Hands-On Hero",
		Description: "You learn best through physical activity and practical experience.",
		Icon:        "✋",
	},
	"logical": {
		Title:       "Logic Legend",
		Description: "You excel at systematic thinking and solving complex problems.",
		Icon:        "🔢",
	},
	"social": {
		Title:       "Team Tactician",
		Description: "You thrive in collaborative environments and group learning.",
		Icon:        "👥",
	},
	"independent": {
		Title:       "Solo Scholar",
		Description: "You excel at self-directed learning and independent study.",
		Icon:        "🧠",
	},
	"creative": {
		Title:       "Creative Genius",
		Description: "Your imagination and innovative thinking set you apart.",
		Icon:        "💡",
	},
	"analytical": {
		Title:       "Analytical Ace",
		Description: "Your ability to break down complex problems is exceptional.",
		Icon:        "🔍",
	},
	"persistent": {
		Title:       "Persistence Pro",
		Description: "Your determination helps you overcome challenges.",
		Icon:        "🏆",
	},
	"leadership": {
		Title:       "Born Leader",
		Description: "You naturally take charge and inspire others.",
		Icon:        "👑",
	},
	"tech": {
		Title:       "Tech Wizard",
		Description: "Your affinity for technology and computing shines through.",
		Icon:        "💻",
	},
	"arts": {
		Title:       "Creative Visionary",
		Description: "Your artistic talents and creative expression are remarkable.",
		Icon:        "🎨",
	},
	"entrepreneurship": {
		Title:       "Future Founder",
		Description: "Your business sense and innovative ideas show entrepreneurial promise.",
		Icon:        "💼",
	},
	"science": {
		Title:       "Science Explorer",
		Description: "Your curiosity and analytical approach make you a natural scientist.",
		Icon:        "🔬",
	},
	"language": {
		Title:       "Word Weaver",
		Description: "Your communication skills and language abilities are outstanding.",
		Icon:        "📚",
	},
}

// GenerateBadges awards badges for a learning profile: one for the primary
// style, one each for the top trait and interest when catalogued, plus
// special combination badges for certain profiles.
func GenerateBadges(result Result) BadgeSet {
	primaryStyle := result.LearningStyles.Primary
	topTraits := result.Traits.TopTraits
	topInterests := result.Interests.TopInterests

	set := BadgeSet{
		Primary:     badgeCatalog[primaryStyle],
		Secondary:   []Badge{},
		Combination: []Badge{},
	}

	if len(topTraits) > 0 {
		if badge, ok := badgeCatalog[topTraits[0]]; ok {
			set.Secondary = append(set.Secondary, badge)
		}
	}
	if len(topInterests) > 0 {
		if badge, ok := badgeCatalog[topInterests[0]]; ok {
			set.Secondary = append(set.Secondary, badge)
		}
	}

	if primaryStyle == "logical" && contains(topInterests, "tech") {
		set.Combination = append(set.Combination, Badge{
			Title:       "Code Commander",
			Description: "Your logical thinking and tech interests make you a natural programmer.",
			Icon:        "⌨️",
		})
	}
	if primaryStyle == "visual" && contains(topInterests, "arts") {
		set.Combination = append(set.Combination, Badge{
			Title:       "Design Dynamo",
			Description: "Your visual learning style and artistic interests make you a natural designer.",
			Icon:        "🎭",
		})
	}
	if contains(topTraits, "leadership") && contains(topInterests, "entrepreneurship") {
		set.Combination = append(set.Combination, Badge{
			Title:       "Future CEO",
			Description: "Your leadership skills and business interests show executive potential.",
			Icon:        "🚀",
		})
	}
	if contains(topTraits, "creative") && contains(topInterests, "tech") {
		set.Combination = append(set.Combination, Badge{
			Title:       "Innovation Architect",
			Description: "Your creativity and tech interests make you a natural innovator.",
			Icon:        "🔮",
		})
	}

	return set
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
