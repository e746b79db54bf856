package catalog

import "github.com/abhisek/disc/internal/disc"

// defaultCatalog is built once at package init and shared read-only.
var defaultCatalog *Catalog

func init() {
	c, err := New(seedQuestions())
	if err != nil {
		panic(err)
	}
	defaultCatalog = c
}

// Default returns the built-in 12-question catalog.
func Default() *Catalog {
	return defaultCatalog
}

func q(id int, prompt, d, i, s, c string) Question {
	return Question{
		ID:     id,
		Prompt: prompt,
		Options: [OptionsPerQuestion]Option{
			{Text: d, Category: disc.Dominance},
			{Text: i, Category: disc.Influence},
			{Text: s, Category: disc.Steadiness},
			{Text: c, Category: disc.Conscientiousness},
		},
	}
}

func seedQuestions() []Question {
	return []Question{
		q(1, "When faced with a challenge, I tend to:",
			"Take charge and find solutions quickly",
			"Talk through options with others",
			"Take my time to consider all angles",
			"Analyze the data and details first"),
		q(2, "In team discussions, I am usually:",
			"Direct and to the point",
			"Enthusiastic and expressive",
			"Supportive and patient",
			"Logical and analytical"),
		q(3, "My ideal work environment is:",
			"Fast-paced with opportunities to lead",
			"Collaborative with lots of interaction",
			"Stable with a supportive team",
			"Structured with attention to quality"),
		q(4, "When making decisions, I typically:",
			"Decide quickly and confidently",
			"Consider how people will feel about it",
			"Take time to ensure everyone is comfortable",
			"Research all options thoroughly"),
		q(5, "When dealing with conflict, I tend to:",
			"Address it directly and immediately",
			"Talk it out in an optimistic way",
			"Seek compromise and harmony",
			"Analyze the facts and stick to policies"),
		q(6, "My communication style can be described as:",
			"Brief, clear, and results-focused",
			"Animated, inspirational, and story-based",
			"Patient, thoughtful, and considerate",
			"Precise, systematic, and detail-oriented"),
		q(7, "Under stress, I might:",
			"Become demanding and impatient",
			"Talk more and listen less",
			"Withdraw and become indecisive",
			"Become overly critical and perfectionistic"),
		q(8, "I am motivated by:",
			"Results, challenges, and control",
			"Recognition, social approval, and fun",
			"Security, harmony, and maintaining stability",
			"Quality, accuracy, and logical processes"),
		q(9, "When planning a project, I focus on:",
			"Setting goals and driving for results",
			"Getting everyone excited and involved",
			"Establishing a reliable, steady process",
			"Creating detailed plans and systems"),
		q(10, "My greatest strengths include:",
			"Taking initiative and driving change",
			"Inspiring others and creating enthusiasm",
			"Supporting team members and maintaining calm",
			"Ensuring accuracy and solving complex problems"),
		q(11, "When receiving feedback, I prefer it to be:",
			"Direct, brief, and focused on results",
			"Positive, enthusiastic, and public",
			"Gentle, private, and constructive",
			"Specific, objective, and logical"),
		q(12, "My approach to rules is:",
			"Rules are guidelines that can be challenged",
			"Rules can be flexible depending on relationships",
			"Rules provide helpful structure and stability",
			"Rules are important and should be followed precisely"),
	}
}
