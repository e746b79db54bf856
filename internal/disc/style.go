package disc

// Style is the canned descriptive content for one category.
type Style struct {
	Category      Category
	Title         string
	Description   string
	Strengths     []string
	Challenges    []string
	Communication string
	// Tendency completes "you also tend to ..." when the category is secondary.
	Tendency string
}

var styles = map[Category]Style{
	Dominance: {
		Category:      Dominance,
		Title:         "Dominance",
		Description:   "People with high D are direct, decisive, problem solvers, risk takers, and self-starters. They tend to be direct and straightforward and like to take control of situations.",
		Strengths:     []string{"Results-oriented", "Bold", "Assertive", "Confident", "Decisive"},
		Challenges:    []string{"May appear bossy", "Can be impatient", "Might overlook details", "Can be argumentative"},
		Communication: "Be clear, specific, and to the point. Focus on results and avoid too many details.",
		Tendency:      "be direct and results-oriented",
	},
	Influence: {
		Category:      Influence,
		Title:         "Influence",
		Description:   "People with high I are interactive, influencing, engaging, optimistic, and enthusiastic. They tend to be outgoing, talkative, and enjoy being the center of attention.",
		Strengths:     []string{"Enthusiastic", "Persuasive", "Collaborative", "Inspiring", "Optimistic"},
		Challenges:    []string{"May talk too much", "Can be disorganized", "Might overpromise", "Can be impulsive"},
		Communication: "Allow time to socialize. Be engaging, personal, and leave time for opinions and stories.",
		Tendency:      "be social and enthusiastic",
	},
	Steadiness: {
		Category:      Steadiness,
		Title:         "Steadiness",
		Description:   "People with high S are supportive, steady, stable, security-oriented, and shy of change. They tend to be patient, reliable, and great team players.",
		Strengths:     []string{"Patient", "Reliable", "Supportive", "Team player", "Good listener"},
		Challenges:    []string{"May resist change", "Can be indecisive", "Might avoid conflict", "Can be too accommodating"},
		Communication: "Be sincere and personal. Outline how and why of change. Provide reassurance and avoid rushing.",
		Tendency:      "be steady and supportive",
	},
	Conscientiousness: {
		Category:      Conscientiousness,
		Title:         "Conscientiousness",
		Description:   "People with high C are concerned, careful, correct, competent, and contemplative. They tend to be analytical, detail-oriented, and concerned with accuracy.",
		Strengths:     []string{"Analytical", "Detail-oriented", "Systematic", "Precise", "Logical"},
		Challenges:    []string{"May be overly critical", "Can be too detail-focused", "Might be perfectionistic", "Can be overly cautious"},
		Communication: "Be logical, accurate, and structured. Provide data and facts. Respect their need for details.",
		Tendency:      "be detail-oriented and analytical",
	},
}

// StyleFor returns the style content for c. The second value is false for
// an unset or unknown category.
func StyleFor(c Category) (Style, bool) {
	s, ok := styles[c]
	if !ok {
		return Style{}, false
	}
	s.Strengths = append([]string(nil), s.Strengths...)
	s.Challenges = append([]string(nil), s.Challenges...)
	return s, true
}

// Title returns the display title for c, or the raw letter if unknown.
func Title(c Category) string {
	if s, ok := styles[c]; ok {
		return s.Title
	}
	return c.String()
}

type pair struct{ primary, secondary Category }

var combinations = map[pair]string{
	{Dominance, Influence}:          "You are results-driven but also persuasive and personable. You can be both direct and charismatic when pursuing goals.",
	{Dominance, Steadiness}:         "You balance drive for results with patience and reliability. You can be decisive while still considering stability.",
	{Dominance, Conscientiousness}:  "You combine assertiveness with analytical thinking. You push for results but are careful about quality and accuracy.",
	{Influence, Dominance}:          "You are primarily social and expressive, but also have a results-focused edge. You can inspire others while still driving toward goals.",
	{Influence, Steadiness}:         "You combine enthusiasm with patience. You're people-oriented but also value stability and reliability in relationships.",
	{Influence, Conscientiousness}:  "You balance sociability with attention to detail. You can be both engaging and precise in your interactions.",
	{Steadiness, Dominance}:         "You are primarily steady and supportive, but can be assertive when needed. You value stability but can take action when required.",
	{Steadiness, Influence}:         "You are supportive with an outgoing side. You value relationships and can be both patient and expressive.",
	{Steadiness, Conscientiousness}: "You combine patience with precision. You're reliable and also attentive to quality and details.",
	{Conscientiousness, Dominance}:  "You are detail-oriented with a decisive edge. You value accuracy but can also push for results when needed.",
	{Conscientiousness, Influence}:  "You combine analytical thinking with interpersonal skills. You're precise but can also connect with others.",
	{Conscientiousness, Steadiness}: "You value both accuracy and stability. You are methodical, detail-oriented, and patient in your approach.",
}

// Combination returns the paragraph describing a primary/secondary pairing,
// or "" when the pair has none (same category twice, or unset).
func Combination(primary, secondary Category) string {
	return combinations[pair{primary, secondary}]
}
