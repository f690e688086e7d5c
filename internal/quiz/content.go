package quiz

// Outcome codes for the built-in content.
const (
	OutcomeDirtyShirley Outcome = "ds"
	OutcomeOrangeJulius Outcome = "oj"
	OutcomeMezcalSoda   Outcome = "ms"
)

// DefaultContent returns the built-in quiz definition: five questions over
// the three launch bottles. Used when no content file or S3 object is
// configured.
func DefaultContent() *Content {
	return &Content{
		Outcomes: []OutcomeProfile{
			{
				Code:        OutcomeDirtyShirley,
				Slug:        "dirty-shirley",
				Name:        "Dirty Shirley",
				Tagline:     "Clarified, carbonated, and dangerously smooth.",
				Description: "You gravitate toward things that are vibrant, fun, and unapologetically bold. The Dirty Shirley's bright grenadine sweetness, fresh lime, and sparkling effervescence match your energy perfectly.",
				Color:       "#c94060",
				ImageURL:    "/images/dirty-shirley.png",
			},
			{
				Code:        OutcomeOrangeJulius,
				Slug:        "orange-julius",
				Name:        "Orange Julius",
				Tagline:     "Creamy citrus indulgence, clarified and sparkling.",
				Description: "You appreciate warmth, comfort, and a touch of nostalgia. The Orange Julius wraps creamy vanilla and fresh orange in sparkling elegance — familiar flavors in an entirely new, luxurious form.",
				Color:       "#e8a040",
				ImageURL:    "/images/orange-julius.png",
			},
			{
				Code:        OutcomeMezcalSoda,
				Slug:        "mezcal-soda",
				Name:        "Mezcal Soda",
				Tagline:     "Smoky, bright, and brilliantly clear.",
				Description: "You crave depth and complexity. The Mezcal Soda's smoky character, tempered by bright lemon and a whisper of vanilla, rewards your refined palate with a long, smoldering finish.",
				Color:       "#c4a050",
				ImageURL:    "/images/mezcal-soda.png",
			},
		},
		Questions: []Question{
			{
				Prompt: "What kind of evening are you in the mood for?",
				Options: []Option{
					{Label: "Something fun and vibrant", Scores: map[Outcome]int{OutcomeDirtyShirley: 3, OutcomeOrangeJulius: 1, OutcomeMezcalSoda: 0}},
					{Label: "Cozy and nostalgic", Scores: map[Outcome]int{OutcomeDirtyShirley: 0, OutcomeOrangeJulius: 3, OutcomeMezcalSoda: 1}},
					{Label: "Sophisticated and contemplative", Scores: map[Outcome]int{OutcomeDirtyShirley: 0, OutcomeOrangeJulius: 0, OutcomeMezcalSoda: 3}},
				},
			},
			{
				Prompt: "Pick a flavor that speaks to you.",
				Options: []Option{
					{Label: "Bright berry with a citrus edge", Scores: map[Outcome]int{OutcomeDirtyShirley: 3, OutcomeOrangeJulius: 1, OutcomeMezcalSoda: 0}},
					{Label: "Creamy orange and vanilla", Scores: map[Outcome]int{OutcomeDirtyShirley: 0, OutcomeOrangeJulius: 3, OutcomeMezcalSoda: 0}},
					{Label: "Smoky with a hint of sweetness", Scores: map[Outcome]int{OutcomeDirtyShirley: 0, OutcomeOrangeJulius: 0, OutcomeMezcalSoda: 3}},
				},
			},
			{
				Prompt: "How do you take your coffee?",
				Options: []Option{
					{Label: "Iced with something fruity or sweet", Scores: map[Outcome]int{OutcomeDirtyShirley: 3, OutcomeOrangeJulius: 1, OutcomeMezcalSoda: 0}},
					{Label: "A creamy latte or cappuccino", Scores: map[Outcome]int{OutcomeDirtyShirley: 1, OutcomeOrangeJulius: 3, OutcomeMezcalSoda: 0}},
					{Label: "Black or with a splash of something bold", Scores: map[Outcome]int{OutcomeDirtyShirley: 0, OutcomeOrangeJulius: 0, OutcomeMezcalSoda: 3}},
				},
			},
			{
				Prompt: "You're at a restaurant. What catches your eye?",
				Options: []Option{
					{Label: "A refreshing starter with bright, tangy flavors", Scores: map[Outcome]int{OutcomeDirtyShirley: 3, OutcomeOrangeJulius: 0, OutcomeMezcalSoda: 1}},
					{Label: "A rich, creamy dessert", Scores: map[Outcome]int{OutcomeDirtyShirley: 0, OutcomeOrangeJulius: 3, OutcomeMezcalSoda: 0}},
					{Label: "Something charcoal-grilled with depth", Scores: map[Outcome]int{OutcomeDirtyShirley: 0, OutcomeOrangeJulius: 0, OutcomeMezcalSoda: 3}},
				},
			},
			{
				Prompt: "What's your ideal vacation destination?",
				Options: []Option{
					{Label: "A lively beach town with nightlife", Scores: map[Outcome]int{OutcomeDirtyShirley: 3, OutcomeOrangeJulius: 1, OutcomeMezcalSoda: 0}},
					{Label: "A sunny coastal village with markets", Scores: map[Outcome]int{OutcomeDirtyShirley: 1, OutcomeOrangeJulius: 3, OutcomeMezcalSoda: 0}},
					{Label: "A remote mountain retreat", Scores: map[Outcome]int{OutcomeDirtyShirley: 0, OutcomeOrangeJulius: 0, OutcomeMezcalSoda: 3}},
				},
			},
		},
	}
}
