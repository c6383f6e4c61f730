// Package render formats catalog topics as plain text.
package render

import (
	"fmt"
	"iter"
	"strings"

	"github.com/jorge-barreto/refcat/internal/catalog"
)

const indent = "    "

// Topic renders t as plain text: title, category, body, then each example
// with its expected output when one is recorded. The result depends only
// on t.
func Topic(t catalog.Topic) string {
	var b strings.Builder

	b.WriteString(t.Title)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat("=", len([]rune(t.Title))))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Category: %s\n", t.Category)

	if body := strings.TrimSpace(t.Body); body != "" {
		b.WriteByte('\n')
		b.WriteString(body)
		b.WriteByte('\n')
	}

	for i, ex := range t.Examples {
		heading := fmt.Sprintf("Example %d", i+1)
		fmt.Fprintf(&b, "\n%s\n%s\n\n", heading, strings.Repeat("-", len(heading)))
		writeIndented(&b, ex.Source())
		if out, ok := ex.Output(); ok {
			b.WriteString("\nOutput:\n\n")
			writeIndented(&b, out)
		}
	}
	return b.String()
}

// Index lists topics as "id  title" lines under category headings. Categories
// appear in the order their first topic does.
func Index(topics iter.Seq[catalog.Topic]) string {
	var (
		order  []catalog.Category
		groups = make(map[catalog.Category][]catalog.Topic)
		width  int
	)
	for t := range topics {
		if _, ok := groups[t.Category]; !ok {
			order = append(order, t.Category)
		}
		groups[t.Category] = append(groups[t.Category], t)
		width = max(width, len(t.ID))
	}

	var b strings.Builder
	for i, c := range order {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s\n", c)
		for _, t := range groups[c] {
			fmt.Fprintf(&b, "  %-*s  %s\n", width, t.ID, t.Title)
		}
	}
	return b.String()
}

func writeIndented(b *strings.Builder, text string) {
	text = strings.TrimRight(text, "\n")
	for _, line := range strings.Split(text, "\n") {
		if line == "" {
			b.WriteByte('\n')
			continue
		}
		b.WriteString(indent)
		b.WriteString(line)
		b.WriteByte('\n')
	}
}
