package articles

import "strings"

type rule struct {
	id       ID
	title    []string
	category []string
}

// rules are checked in order and the first match wins, so a title mentioning
// both "hair" and "photo" resolves to the hairdresser article.
var rules = []rule{
	{id: Renovation, title: []string{"renovation"}, category: []string{"renovation"}},
	{id: Hairdresser, title: []string{"hair"}, category: []string{"hair"}},
	{id: Shoe, title: []string{"shoe"}, category: []string{"cobbler", "repair"}},
	{id: Manicure, title: []string{"manicur"}, category: []string{"nail"}},
	{id: Photographer, title: []string{"photo"}, category: []string{"photo"}},
}

// Lookup maps a post title and category to a catalog article.
// Matching is case-insensitive substring search.
func Lookup(title, category string) (ID, bool) {
	t := strings.ToLower(title)
	c := strings.ToLower(category)
	for _, r := range rules {
		if containsAny(t, r.title) || containsAny(c, r.category) {
			return r.id, true
		}
	}
	return "", false
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
