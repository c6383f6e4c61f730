package ux

import (
	"fmt"
	"io"
	"iter"

	"github.com/jorge-barreto/refcat/internal/catalog"
)

// ANSI color helpers
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// TopicList prints one line per topic: id, title and summary. It returns
// the number of topics printed.
func TopicList(w io.Writer, topics iter.Seq[catalog.Topic]) int {
	var list []catalog.Topic
	width := 0
	for t := range topics {
		list = append(list, t)
		width = max(width, len(t.ID))
	}
	for _, t := range list {
		fmt.Fprintf(w, "  %s%-*s%s  %s", Cyan, width, t.ID, Reset, t.Title)
		if t.Summary != "" {
			fmt.Fprintf(w, " %s— %s%s", Dim, t.Summary, Reset)
		}
		fmt.Fprintln(w)
	}
	return len(list)
}

// CategoryCounts prints every fixed category with its topic count; empty
// categories are dimmed.
func CategoryCounts(w io.Writer, cat *catalog.Catalog) {
	for _, c := range catalog.Categories() {
		n := cat.Count(c)
		color := Green
		if n == 0 {
			color = Dim
		}
		fmt.Fprintf(w, "  %-16s %s%3d%s  %s%s%s\n", c, color, n, Reset, Dim, c.Slug(), Reset)
	}
}

// NoMatches prints a hint when a listing came back empty.
func NoMatches(w io.Writer, what string) {
	fmt.Fprintf(w, "  %sNo topics match %s.%s\n", Yellow, what, Reset)
}

// Hint prints a dimmed follow-up suggestion.
func Hint(w io.Writer, text string) {
	fmt.Fprintf(w, "\n%s%s%s\n", Dim, text, Reset)
}
