package catalog

// defaultQuestions is the built-in prompt set used when no catalog override
// file is present. Exactly Size entries, ids stable.
var defaultQuestions = []Question{
	{ID: 1, Text: "Has worked here more than 5 years"},
	{ID: 2, Text: "Speaks three or more languages"},
	{ID: 3, Text: "Has never been to the office"},
	{ID: 4, Text: "Owns a mechanical keyboard"},
	{ID: 5, Text: "Has a pet with a human name"},
	{ID: 6, Text: "Drinks tea instead of coffee"},
	{ID: 7, Text: "Has run a marathon"},
	{ID: 8, Text: "Plays a musical instrument"},
	{ID: 9, Text: "Has met a celebrity"},
	{ID: 10, Text: "Was born in another country"},
	{ID: 11, Text: "Has more than 20 houseplants"},
	{ID: 12, Text: "Commutes by bicycle"},
	{ID: 13, Text: "Has presented at a conference"},
	{ID: 14, Text: "Is left-handed"},
	{ID: 15, Text: "Has broken a bone"},
	{ID: 16, Text: "Can solve a Rubik's cube"},
	{ID: 17, Text: "Has been skydiving"},
	{ID: 18, Text: "Still uses a paper notebook"},
	{ID: 19, Text: "Has a twin"},
	{ID: 20, Text: "Knows how to juggle"},
	{ID: 21, Text: "Has appeared on TV or radio"},
	{ID: 22, Text: "Grew up on a farm"},
	{ID: 23, Text: "Has visited all seven continents minus two"},
	{ID: 24, Text: "Keeps a sourdough starter alive"},
	{ID: 25, Text: "Has the same lunch every day"},
}

// Default returns the built-in catalog.
func Default() Catalog {
	out := make([]Question, Size)
	copy(out, defaultQuestions)
	return Catalog{questions: out}
}
