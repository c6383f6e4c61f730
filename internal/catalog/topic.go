package catalog

import "slices"

// Example is a code snippet with an optional expected output. Its fields
// are fixed at construction.
type Example struct {
	source    string
	output    string
	hasOutput bool
}

// NewExample returns an example with no expected output.
func NewExample(source string) Example {
	return Example{source: source}
}

// NewExampleWithOutput returns an example annotated with its expected output.
func NewExampleWithOutput(source, output string) Example {
	return Example{source: source, output: output, hasOutput: true}
}

func (e Example) Source() string { return e.source }

// Output returns the expected output and whether one was recorded.
func (e Example) Output() (string, bool) { return e.output, e.hasOutput }

// Topic is one documented concept in the catalog.
type Topic struct {
	ID       string
	Title    string
	Category Category
	Summary  string // one-line description for listings
	Body     string
	Keywords []string
	Examples []Example
}

func (t Topic) clone() Topic {
	t.Keywords = slices.Clone(t.Keywords)
	t.Examples = slices.Clone(t.Examples)
	return t
}
