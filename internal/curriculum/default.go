package curriculum

import (
	"github.com/abhisek/cookquest/internal/minigame"
	"github.com/abhisek/cookquest/internal/questgraph"
)

// Default returns the built-in CookQuest curriculum: seven quests from
// knife safety through to the GREATNESS capstone, with lesson content and
// the minigame question banks that gate the early quests.
func Default() *Curriculum {
	return &Curriculum{
		Name: "CookQuest",
		Quests: []QuestDef{
			{
				Title:         "Knife Safety",
				Type:          questgraph.TypeLesson,
				Category:      questgraph.CategoryFoundation,
				InitialStatus: questgraph.StatusCompleted,
				Stars:         3,
				MaxStars:      3,
				Lesson: &LessonDef{
					Emoji:       "🔪",
					Heading:     "Knife Safety First",
					Description: "Keep blades sharp, use a stable board, and practice claw grip.",
					Steps: []string{
						"Choose the right knife for the task (chef's, paring, serrated).",
						"Stabilize your board with a damp towel underneath.",
						"Use the claw grip: tuck fingertips, guide with knuckles.",
						"Always slice away from your body and keep the tip anchored for mincing.",
						"Store knives safely and wash immediately after use.",
					},
					Hints: []string{
						"A sharp knife is safer than a dull one.",
						"Dry your hands and handle before cutting.",
						"Stand square to the board for control.",
					},
				},
			},
			{
				Title:         "Basic Cuts",
				Type:          questgraph.TypeLesson,
				Category:      questgraph.CategoryFoundation,
				InitialStatus: questgraph.StatusAvailable,
				MaxStars:      3,
				Prerequisites: []string{"Knife Safety"},
				Lesson: &LessonDef{
					Emoji:       "🥕",
					Heading:     "Master Basic Cuts",
					Description: "Uniform cuts ensure even cooking and professional presentation.",
					Steps: []string{
						"Learn batonnet and julienne: long even matchsticks.",
						"Practice small/medium/large dice from planks and sticks.",
						"Chiffonade leafy herbs by rolling into a tight cigar.",
						"Mince garlic by rocking the knife with the tip anchored.",
						"Measure consistency by lining pieces side-by-side.",
					},
					Hints: []string{
						"Square off vegetables first to create flat, stable sides.",
						"Use your non-dominant hand as a guide fence.",
						"Let the knife do the work—avoid pressing down.",
					},
				},
				Minigame: &MinigameDef{
					Title:         "Name That Cut",
					Type:          minigame.TypeMatching,
					Description:   "Match each knife cut to its shape.",
					Difficulty:    minigame.DifficultyEasy,
					Enabled:       true,
					RequiredScore: 70,
					Questions: []QuestionDef{
						{
							Type:       minigame.TypeMatching,
							Text:       "Match the cut to its result.",
							LeftItems:  []string{"Julienne", "Dice", "Chiffonade", "Mince"},
							RightItems: []string{"thin matchsticks", "even cubes", "ribboned herbs", "very fine pieces"},
							CorrectMatches: []minigame.MatchPair{
								{Left: 0, Right: 0},
								{Left: 1, Right: 1},
								{Left: 2, Right: 2},
								{Left: 3, Right: 3},
							},
							Explanation: "Each classic cut has a distinct target shape.",
							Points:      10,
						},
						{
							Type:       minigame.TypeMatching,
							Text:       "Match the prep task to the right knife.",
							LeftItems:  []string{"Peeling a pear", "Slicing bread", "Chopping onions"},
							RightItems: []string{"paring knife", "serrated knife", "chef's knife"},
							CorrectMatches: []minigame.MatchPair{
								{Left: 0, Right: 0},
								{Left: 1, Right: 1},
								{Left: 2, Right: 2},
							},
							Points: 10,
						},
					},
				},
			},
			{
				Title:         "Measuring",
				Type:          questgraph.TypeLesson,
				Category:      questgraph.CategoryFoundation,
				InitialStatus: questgraph.StatusLocked,
				MaxStars:      3,
				Prerequisites: []string{"Knife Safety"},
				Lesson: &LessonDef{
					Emoji:       "⚖️",
					Heading:     "Measure for Success",
					Description: "Accurate measurement improves consistency, especially in baking.",
					Steps: []string{
						"Use a digital scale for dry ingredients when possible.",
						"Level off flour; don't pack unless specified.",
						"Use liquid cups at eye level for wet ingredients.",
						"Mind teaspoon vs tablespoon and metric vs imperial.",
					},
					Hints: []string{
						"Zero your scale with the bowl on it.",
						"Keep conversion chart handy.",
					},
				},
				Minigame: &MinigameDef{
					Title:         "Kitchen Math",
					Type:          minigame.TypeFillInBlank,
					Description:   "Fill in the missing measurement facts.",
					Difficulty:    minigame.DifficultyEasy,
					Enabled:       true,
					TimeLimitSecs: 120,
					RequiredScore: 70,
					Questions: []QuestionDef{
						{
							Type:           minigame.TypeFillInBlank,
							Text:           "Three teaspoons make one ___.",
							BlankText:      "Three teaspoons make one ___.",
							CorrectAnswers: []string{"tablespoon", "tbsp"},
							Points:         10,
						},
						{
							Type:           minigame.TypeFillInBlank,
							Text:           "For dry ingredients, the most accurate tool is a ___.",
							BlankText:      "For dry ingredients, the most accurate tool is a ___.",
							CorrectAnswers: []string{"scale", "digital scale", "kitchen scale"},
							Points:         10,
						},
						{
							Type:           minigame.TypeFillInBlank,
							Text:           "Read liquid measuring cups at ___ level.",
							BlankText:      "Read liquid measuring cups at ___ level.",
							CorrectAnswers: []string{"eye"},
							Points:         10,
						},
					},
				},
			},
			{
				Title:         "Salt & Seasoning",
				Type:          questgraph.TypeConcept,
				Category:      questgraph.CategoryFlavor,
				InitialStatus: questgraph.StatusLocked,
				MaxStars:      3,
				Prerequisites: []string{"Basic Cuts", "Measuring"},
				Lesson: &LessonDef{
					Emoji:       "🧂",
					Heading:     "Season with Confidence",
					Description: "Salt enhances flavor, balances bitterness, and draws out moisture.",
					Steps: []string{
						"Season in layers: during prep, cooking, and finishing.",
						"Taste as you go—adjust gradually.",
						"Use kosher salt for control; finish with flaky salt.",
						"Balance with acid, fat, and sweetness.",
					},
					Hints: []string{
						"If it's flat, add acid before more salt.",
						"Bloom spices in fat for depth.",
					},
				},
				Minigame: &MinigameDef{
					Title:         "Season Sense",
					Type:          minigame.TypeMultipleChoice,
					Description:   "Pick the right seasoning move.",
					Difficulty:    minigame.DifficultyMedium,
					Enabled:       true,
					RequiredScore: 70,
					Questions: []QuestionDef{
						{
							Type:               minigame.TypeMultipleChoice,
							Text:               "Your soup tastes flat. What do you reach for first?",
							Options:            []string{"More salt", "A splash of acid", "Sugar", "Water"},
							CorrectOptionIndex: 1,
							Explanation:        "Acid brightens before more salt is needed.",
							Points:             10,
						},
						{
							Type:               minigame.TypeMultipleChoice,
							Text:               "When should you season a dish?",
							Options:            []string{"Only at the end", "Only at the start", "In layers throughout", "Never"},
							CorrectOptionIndex: 2,
							Points:             10,
						},
						{
							Type:               minigame.TypeMultipleChoice,
							Text:               "Why do cooks prefer kosher salt while cooking?",
							Options:            []string{"It is saltier", "Easy to pinch and control", "It is sweeter", "It dissolves slower"},
							CorrectOptionIndex: 1,
							Points:             10,
						},
					},
				},
			},
			{
				Title:         "Heat Control",
				Type:          questgraph.TypeLesson,
				Category:      questgraph.CategoryTechnique,
				InitialStatus: questgraph.StatusLocked,
				MaxStars:      3,
				Prerequisites: []string{"Basic Cuts", "Measuring"},
				Lesson: &LessonDef{
					Emoji:       "🔥",
					Heading:     "Master Heat",
					Description: "Control heat to build texture and flavor without burning.",
					Steps: []string{
						"Preheat pans; add oil just before ingredients.",
						"Use medium-high for searing, medium for sautéing, low for simmering.",
						"Crowding lowers temperature—cook in batches.",
						"Rest proteins to redistribute juices.",
					},
					Hints: []string{
						"If smoking, reduce heat and deglaze.",
						"Listen: sizzling guides your heat level.",
					},
				},
				Minigame: &MinigameDef{
					Title:         "Spot the Technique",
					Type:          minigame.TypeImageAssociation,
					Description:   "Name the cut or technique shown in each picture.",
					Difficulty:    minigame.DifficultyMedium,
					Enabled:       true,
					RequiredScore: 70,
					Questions: []QuestionDef{
						{
							Type:            minigame.TypeImageAssociation,
							Text:            "What cut is shown here?",
							ImageURL:        "/images/julienne.png",
							AssociatedTerms: []string{"julienne", "matchstick"},
							Points:          10,
						},
						{
							Type:            minigame.TypeImageAssociation,
							Text:            "What cut is shown here?",
							ImageURL:        "/images/dice.png",
							AssociatedTerms: []string{"dice", "diced"},
							Points:          10,
						},
						{
							Type:            minigame.TypeImageAssociation,
							Text:            "What cut is shown here?",
							ImageURL:        "/images/chiffonade.png",
							AssociatedTerms: []string{"chiffonade"},
							Points:          10,
						},
					},
				},
			},
			{
				Title:         "Simple Soup",
				Type:          questgraph.TypeChallenge,
				Category:      questgraph.CategoryTechnique,
				InitialStatus: questgraph.StatusLocked,
				MaxStars:      3,
				Prerequisites: []string{"Basic Cuts", "Measuring"},
				Lesson: &LessonDef{
					Emoji:       "🥣",
					Heading:     "Build a Simple Soup",
					Description: "Use aromatics, stock, and seasonal vegetables for a satisfying bowl.",
					Steps: []string{
						"Sweat onions, carrots, celery with salt.",
						"Add garlic and spices; bloom briefly.",
						"Pour in stock; simmer until tender.",
						"Adjust seasoning; add acid and herbs to finish.",
					},
					Hints: []string{
						"For body, puree a portion and return.",
						"Finish with olive oil or yogurt.",
					},
				},
			},
			{
				Title:         "GREATNESS",
				Type:          questgraph.TypeLesson,
				Category:      questgraph.CategoryTechnique,
				InitialStatus: questgraph.StatusLocked,
				MaxStars:      3,
				Prerequisites: []string{"Simple Soup", "Measuring"},
				Lesson: &LessonDef{
					Emoji:       "✨",
					Heading:     "Path to Greatness",
					Description: "Combine fundamentals into composed dishes with precision.",
					Steps: []string{
						"Plan mise en place and timing across components.",
						"Execute techniques: sear, sauce, season, and garnish.",
						"Plate with color, height, and negative space.",
					},
					Hints: []string{
						"Keep notes; iterate on balance and texture.",
						"Seek feedback and refine.",
					},
				},
			},
		},
	}
}
