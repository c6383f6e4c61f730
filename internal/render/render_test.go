package render

import (
	"slices"
	"strings"
	"testing"

	"github.com/jorge-barreto/refcat/internal/catalog"
)

func sampleTopic() catalog.Topic {
	return catalog.Topic{
		ID:       "maps",
		Title:    "Maps",
		Category: catalog.DataStructures,
		Body:     "Maps associate keys with values.\n",
		Examples: []catalog.Example{
			catalog.NewExampleWithOutput("m := map[string]int{\"a\": 1}\nfmt.Println(m[\"a\"])", "1\n"),
			catalog.NewExample("delete(m, \"a\")"),
		},
	}
}

func TestTopic_Format(t *testing.T) {
	want := `Maps
====

Category: Data Structures

Maps associate keys with values.

Example 1
---------

    m := map[string]int{"a": 1}
    fmt.Println(m["a"])

Output:

    1

Example 2
---------

    delete(m, "a")
`
	if got := Topic(sampleTopic()); got != want {
		t.Fatalf("Topic() mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestTopic_Deterministic(t *testing.T) {
	topic := sampleTopic()
	first := Topic(topic)
	second := Topic(topic)
	if first != second {
		t.Fatal("Topic() output differs between calls")
	}
}

func TestTopic_NoBodyNoExamples(t *testing.T) {
	got := Topic(catalog.Topic{ID: "x", Title: "Ünïcode", Category: catalog.Syntax})
	want := "Ünïcode\n=======\n\nCategory: Syntax\n"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTopic_EmptyOutputStillLabelled(t *testing.T) {
	topic := catalog.Topic{
		Title:    "Silence",
		Category: catalog.Functions,
		Examples: []catalog.Example{catalog.NewExampleWithOutput("f()", "")},
	}
	if got := Topic(topic); !strings.Contains(got, "Output:") {
		t.Fatalf("expected Output label for recorded empty output:\n%s", got)
	}
}

func TestIndex_GroupsByFirstAppearance(t *testing.T) {
	topics := []catalog.Topic{
		{ID: "classes", Title: "Classes", Category: catalog.OOP},
		{ID: "intro", Title: "Introduction", Category: catalog.Introduction},
		{ID: "interfaces", Title: "Interfaces", Category: catalog.OOP},
	}
	want := `OOP
  classes     Classes
  interfaces  Interfaces

Introduction
  intro       Introduction
`
	if got := Index(slices.Values(topics)); got != want {
		t.Fatalf("Index() mismatch\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

func TestIndex_Empty(t *testing.T) {
	if got := Index(slices.Values([]catalog.Topic(nil))); got != "" {
		t.Fatalf("Index(empty) = %q", got)
	}
}
