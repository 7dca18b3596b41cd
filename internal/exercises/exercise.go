package exercises

import (
	"strings"
)

type Exercise struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Category      string   `json:"category"`
	VideoURL      string   `json:"videoUrl"`
	Description   string   `json:"description"`
	Steps         []string `json:"steps"`
	CommonErrors  []string `json:"commonErrors"`
	Breathing     string   `json:"breathing"`
	TargetMuscles []string `json:"targetMuscles"`
}

// Summary is the short form used by pickers (manual workout builder, category listing).
type Summary struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	PrimaryMuscles []string `json:"primaryMuscles"`
}

type CategoryGroup struct {
	Category  string    `json:"category"`
	Exercises []Summary `json:"exercises"`
}

var byID = func() map[string]*Exercise {
	m := make(map[string]*Exercise, len(catalog))
	for i := range catalog {
		m[catalog[i].ID] = &catalog[i]
	}
	return m
}()

// All returns a copy of the whole library.
func All() []Exercise {
	out := make([]Exercise, len(catalog))
	copy(out, catalog)
	return out
}

func Get(id string) (Exercise, bool) {
	e, ok := byID[id]
	if !ok {
		return Exercise{}, false
	}
	return *e, true
}

func Exists(id string) bool {
	_, ok := byID[id]
	return ok
}

// Title returns the exercise title, or the id itself for unknown ids.
func Title(id string) string {
	if e, ok := byID[id]; ok {
		return e.Title
	}
	return id
}

// ByCategory filters case-insensitively; an empty category returns everything.
func ByCategory(category string) []Exercise {
	if category == "" {
		return All()
	}
	var out []Exercise
	for _, e := range catalog {
		if strings.EqualFold(e.Category, category) {
			out = append(out, e)
		}
	}
	return out
}

// Categories lists categories in the order they first appear in the library.
func Categories() []string {
	seen := map[string]bool{}
	var out []string
	for _, e := range catalog {
		if !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	return out
}

func Grouped() []CategoryGroup {
	groups := make([]CategoryGroup, 0)
	index := map[string]int{}
	for _, e := range catalog {
		i, ok := index[e.Category]
		if !ok {
			i = len(groups)
			index[e.Category] = i
			groups = append(groups, CategoryGroup{Category: e.Category})
		}
		groups[i].Exercises = append(groups[i].Exercises, Summary{
			ID:             e.ID,
			Name:           e.Title,
			PrimaryMuscles: e.TargetMuscles,
		})
	}
	return groups
}

func Count() int {
	return len(catalog)
}
