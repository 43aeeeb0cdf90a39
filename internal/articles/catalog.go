// Package articles holds the static, read-only article catalog and the
// heuristic that links free-text post titles and categories to an article.
package articles

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// ID identifies a catalog article.
type ID string

const (
	Renovation   ID = "renovation"
	Hairdresser  ID = "hairdresser"
	Shoe         ID = "shoe"
	Manicure     ID = "manicure"
	Photographer ID = "photographer"
)

// Article is a long-form reference text.
type Article struct {
	ID    ID       `yaml:"id" json:"id"`
	Title string   `yaml:"title" json:"title"`
	Hero  string   `yaml:"hero" json:"hero"`
	Body  []string `yaml:"body" json:"body"`
}

//go:embed articles.yaml
var catalogYAML []byte

var catalog = sync.OnceValue(func() []Article {
	all, err := decode(catalogYAML)
	if err != nil {
		panic(fmt.Sprintf("articles: embedded catalog: %v", err))
	}
	return all
})

func decode(data []byte) ([]Article, error) {
	var all []Article
	if err := yaml.Unmarshal(data, &all); err != nil {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	seen := make(map[ID]bool, len(all))
	for _, a := range all {
		if a.ID == "" || a.Title == "" || len(a.Body) == 0 {
			return nil, fmt.Errorf("incomplete article %q", a.ID)
		}
		if seen[a.ID] {
			return nil, fmt.Errorf("duplicate article %q", a.ID)
		}
		seen[a.ID] = true
	}
	return all, nil
}

// All returns every article in catalog order.
func All() []Article {
	src := catalog()
	out := make([]Article, len(src))
	for i, a := range src {
		out[i] = clone(a)
	}
	return out
}

// Get returns the article with the given id.
func Get(id ID) (Article, bool) {
	for _, a := range catalog() {
		if a.ID == id {
			return clone(a), true
		}
	}
	return Article{}, false
}

// Valid reports whether id names a catalog article.
func Valid(id ID) bool {
	_, ok := Get(id)
	return ok
}

func clone(a Article) Article {
	a.Body = append([]string(nil), a.Body...)
	return a
}
