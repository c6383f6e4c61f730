package ux

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"github.com/jorge-barreto/refcat/internal/catalog"
)

func TestTopicList(t *testing.T) {
	topics := []catalog.Topic{
		{ID: "loops", Title: "Loops", Summary: "for and range"},
		{ID: "io", Title: "Files"},
	}
	var buf bytes.Buffer
	n := TopicList(&buf, slices.Values(topics))
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	if !strings.Contains(lines[0], "loops") || !strings.Contains(lines[0], "for and range") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if strings.Contains(lines[1], "—") {
		t.Errorf("line 1 should have no summary: %q", lines[1])
	}
	// ids are padded to the widest one
	if !strings.Contains(lines[1], "io   "+Reset) {
		t.Errorf("line 1 not padded: %q", lines[1])
	}
}

func TestCategoryCounts(t *testing.T) {
	cat := catalog.New()
	cat.Add(catalog.Topic{ID: "a", Category: catalog.OOP})
	cat.Add(catalog.Topic{ID: "b", Category: catalog.OOP})

	var buf bytes.Buffer
	CategoryCounts(&buf, cat)
	out := buf.String()
	if got := strings.Count(out, "\n"); got != len(catalog.Categories()) {
		t.Fatalf("got %d lines", got)
	}
	if !strings.Contains(out, Green+"  2"+Reset) {
		t.Errorf("OOP count missing:\n%s", out)
	}
}
