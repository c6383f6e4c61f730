// Package topicfile parses a single catalog topic written as Markdown with
// a YAML front-matter header.
//
//	---
//	id: maps
//	title: Maps
//	category: Data Structures
//	summary: Key/value lookup tables
//	keywords: [map, dictionary]
//	---
//	Prose becomes the topic body.
//
//	```go
//	fmt.Println(len(m))
//	```
//
//	```output
//	0
//	```
//
// A fence whose info string starts with "output" is the expected output of the
// example fence directly before it. Every other fence starts a new example.
package topicfile

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/jorge-barreto/refcat/internal/catalog"
	"gopkg.in/yaml.v3"
)

// Header is the front matter of a topic file.
type Header struct {
	ID       string   `yaml:"id" validate:"required,topicid,max=64"`
	Title    string   `yaml:"title" validate:"required,max=120"`
	Category string   `yaml:"category" validate:"required"`
	Summary  string   `yaml:"summary" validate:"max=200"`
	Keywords []string `yaml:"keywords" validate:"dive,required"`
}

// fenceOpenRe matches any opening fence. The info string's first word names
// the block; attributes after it are ignored.
var fenceOpenRe = regexp.MustCompile("^```\\s*(\\S*)")

const outputInfo = "output"

// Parse reads one topic file. name is used in error messages.
func Parse(name string, data []byte) (catalog.Topic, error) {
	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	lines := strings.Split(text, "\n")

	header, rest, err := splitFrontMatter(lines)
	if err != nil {
		return catalog.Topic{}, fmt.Errorf("%s: %w", name, err)
	}
	var h Header
	dec := yaml.NewDecoder(strings.NewReader(strings.Join(header, "\n")))
	dec.KnownFields(true)
	if err := dec.Decode(&h); err != nil && !errors.Is(err, io.EOF) {
		return catalog.Topic{}, fmt.Errorf("%s: front matter: %w", name, err)
	}
	if err := validateHeader(&h); err != nil {
		return catalog.Topic{}, fmt.Errorf("%s: %w", name, err)
	}
	category, err := catalog.ParseCategory(h.Category)
	if err != nil {
		return catalog.Topic{}, fmt.Errorf("%s: %w", name, err)
	}

	body, examples, err := parseBody(rest, len(header)+2)
	if err != nil {
		return catalog.Topic{}, fmt.Errorf("%s: %w", name, err)
	}

	return catalog.Topic{
		ID:       h.ID,
		Title:    h.Title,
		Category: category,
		Summary:  h.Summary,
		Body:     body,
		Keywords: h.Keywords,
		Examples: examples,
	}, nil
}

func splitFrontMatter(lines []string) (header, rest []string, err error) {
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return nil, nil, fmt.Errorf("missing front matter (file must start with ---)")
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return lines[1:i], lines[i+1:], nil
		}
	}
	return nil, nil, fmt.Errorf("unterminated front matter")
}

type block struct {
	source    string
	output    string
	hasOutput bool
}

// parseBody splits prose from fenced blocks. offset is the line number of
// lines[0] minus one, for error messages.
func parseBody(lines []string, offset int) (string, []catalog.Example, error) {
	var (
		prose  []string
		blocks []block
		buf    []string
		inside bool
		info   string
		opened int
		// the last non-blank thing seen outside a fence was an example fence
		afterExample bool
	)

	for i, line := range lines {
		lineNo := offset + i + 1
		trimmed := strings.TrimSpace(line)

		if inside {
			if trimmed == "```" {
				content := strings.Join(buf, "\n")
				if info == outputInfo {
					blocks[len(blocks)-1].output = content
					blocks[len(blocks)-1].hasOutput = true
					afterExample = false
				} else {
					blocks = append(blocks, block{source: content})
					afterExample = true
				}
				inside = false
				buf = buf[:0]
				continue
			}
			buf = append(buf, line)
			continue
		}

		if m := fenceOpenRe.FindStringSubmatch(trimmed); m != nil {
			info = strings.ToLower(m[1])
			if info == outputInfo && !afterExample {
				return "", nil, fmt.Errorf("line %d: output block has no preceding example", lineNo)
			}
			inside = true
			opened = lineNo
			continue
		}

		if trimmed != "" {
			afterExample = false
		}
		prose = append(prose, line)
	}
	if inside {
		return "", nil, fmt.Errorf("line %d: unterminated code fence", opened)
	}

	var examples []catalog.Example
	for _, b := range blocks {
		if b.hasOutput {
			examples = append(examples, catalog.NewExampleWithOutput(b.source, b.output))
		} else {
			examples = append(examples, catalog.NewExample(b.source))
		}
	}
	return collapseBlankLines(prose), examples, nil
}

// collapseBlankLines joins prose lines, trimming the ends and squeezing runs
// of blank lines left behind by removed fences into one.
func collapseBlankLines(lines []string) string {
	var out []string
	blank := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			if len(out) > 0 {
				blank = true
			}
			continue
		}
		if blank {
			out = append(out, "")
			blank = false
		}
		out = append(out, strings.TrimRight(line, " \t"))
	}
	return strings.Join(out, "\n")
}
