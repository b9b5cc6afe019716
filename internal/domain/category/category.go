package category

import (
	"strings"
	"unicode"
)

// Category groups training modules under a course heading, e.g.
// "Upskilling" or "Level 3 Apprentice".
type Category struct {
	ID        string
	Name      string
	ModuleIDs []string
}

// New creates a Category whose ID is the URL slug of its name.
func New(name string) *Category {
	return &Category{
		ID:        Slug(name),
		Name:      name,
		ModuleIDs: []string{},
	}
}

// Slug lowercases name and joins its letter/digit runs with hyphens.
func Slug(name string) string {
	fields := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(fields, "-")
}
