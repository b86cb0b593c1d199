package matcher

// Group is a semantic keyword group: a label plus the keywords that signal
// it. Groups are static reference data; the matcher never mutates them.
type Group struct {
	Label    string
	Keywords []string
}

// Contains reports whether the group's keyword set contains the given token.
func (g Group) Contains(token string) bool {
	for _, kw := range g.Keywords {
		if kw == token {
			return true
		}
	}
	return false
}

// BuiltinGroups returns the built-in keyword groups for common budgeting
// categories. Order matters: when a category name matches more than one
// group, the first group in this list wins.
func BuiltinGroups() []Group {
	return []Group{
		{
			Label: "food",
			Keywords: []string{
				"food", "groceries", "grocery", "supermarket", "restaurant",
				"dining", "lunch", "dinner", "breakfast", "snack", "coffee",
				"cafe", "tea", "pizza", "burger", "drink",
			},
		},
		{
			Label: "transport",
			Keywords: []string{
				"transport", "transportation", "uber", "lyft", "taxi", "bus",
				"train", "metro", "subway", "fuel", "gas", "diesel", "parking",
				"toll", "carshare", "ride",
			},
		},
		{
			Label:    "housing",
			Keywords: []string{"rent", "mortgage", "lease"},
		},
		{
			Label: "utilities",
			Keywords: []string{
				"utilities", "electric", "electricity", "power", "water",
				"gas", "internet", "wifi", "phone", "mobile", "cell", "trash",
				"sewer",
			},
		},
		{
			Label: "health",
			Keywords: []string{
				"health", "medical", "pharmacy", "drugstore", "doctor",
				"dentist", "hospital", "copay", "fitness", "gym",
			},
		},
		{
			Label: "entertainment",
			Keywords: []string{
				"entertainment", "movie", "cinema", "game", "concert",
				"music", "theater", "sports", "ticket", "netflix", "spotify",
				"hulu",
			},
		},
		{
			Label: "shopping",
			Keywords: []string{
				"shopping", "amazon", "target", "walmart", "clothes",
				"apparel",
			},
		},
		{
			Label: "travel",
			Keywords: []string{
				"flight", "hotel", "airbnb", "travel", "trip", "uber", "lyft",
			},
		},
		{
			Label: "education",
			Keywords: []string{
				"school", "tuition", "books", "course", "class", "udemy",
				"coursera",
			},
		},
		{
			Label: "subscriptions",
			Keywords: []string{
				"subscription", "subscribe", "membership", "prime", "icloud",
			},
		},
	}
}
