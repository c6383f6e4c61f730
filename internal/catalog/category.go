package catalog

import (
	"fmt"
	"strings"
)

// Category groups topics by the part of the language they cover.
type Category string

const (
	Introduction   Category = "Introduction"
	Syntax         Category = "Syntax"
	DataTypes      Category = "Data Types"
	Operators      Category = "Operators"
	ControlFlow    Category = "Control Flow"
	Functions      Category = "Functions"
	DataStructures Category = "Data Structures"
	FileHandling   Category = "File Handling"
	Exceptions     Category = "Exceptions"
	OOP            Category = "OOP"
	Modules        Category = "Modules"
	Concurrency    Category = "Concurrency"
)

var categories = []Category{
	Introduction,
	Syntax,
	DataTypes,
	Operators,
	ControlFlow,
	Functions,
	DataStructures,
	FileHandling,
	Exceptions,
	OOP,
	Modules,
	Concurrency,
}

// Categories returns the fixed category set in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Slug returns the lowercase, hyphenated form used in URLs and CLI flags.
func (c Category) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(c)), " ", "-")
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, k := range categories {
		if k == c {
			return true
		}
	}
	return false
}

// ParseCategory resolves a display name (any case) or slug to a Category.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range categories {
		if strings.EqualFold(s, string(c)) || strings.EqualFold(s, c.Slug()) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}
