// Package catalog holds the ordered, read-only set of reference topics.
//
// A Catalog is populated once with Add and is only read afterwards; readers
// need no locking as long as no Add runs concurrently with them.
package catalog

import (
	"iter"
	"strings"
)

type Catalog struct {
	topics []Topic
	byID   map[string]int
}

func New() *Catalog {
	return &Catalog{byID: make(map[string]int)}
}

// Add appends a topic. The catalog keeps its own copy of the topic's slices.
// The only check is ID uniqueness. Callers validate the ID and Category
// before adding; topicfile.Parse does so for loaded topics.
func (c *Catalog) Add(t Topic) error {
	if _, ok := c.byID[t.ID]; ok {
		return &DuplicateIDError{ID: t.ID}
	}
	c.byID[t.ID] = len(c.topics)
	c.topics = append(c.topics, t.clone())
	return nil
}

// Get looks up a topic by ID.
func (c *Catalog) Get(id string) (Topic, error) {
	i, ok := c.byID[id]
	if !ok {
		return Topic{}, &NotFoundError{ID: id}
	}
	return c.topics[i].clone(), nil
}

// All yields every topic in insertion order.
func (c *Catalog) All() iter.Seq[Topic] {
	return c.List("")
}

// List yields the topics in category in insertion order. The empty
// category yields every topic. The sequence can be ranged over repeatedly.
func (c *Catalog) List(category Category) iter.Seq[Topic] {
	return c.filter(func(t *Topic) bool {
		return category == "" || t.Category == category
	})
}

// Search yields topics whose ID, title, summary or keywords contain term,
// ignoring case. An empty term matches everything.
func (c *Catalog) Search(term string) iter.Seq[Topic] {
	term = strings.ToLower(strings.TrimSpace(term))
	return c.filter(func(t *Topic) bool {
		return term == "" || matches(t, term)
	})
}

func (c *Catalog) Len() int {
	return len(c.topics)
}

// Count returns the number of topics in category.
func (c *Catalog) Count(category Category) int {
	n := 0
	for range c.List(category) {
		n++
	}
	return n
}

func (c *Catalog) filter(keep func(*Topic) bool) iter.Seq[Topic] {
	return func(yield func(Topic) bool) {
		for i := range c.topics {
			if !keep(&c.topics[i]) {
				continue
			}
			if !yield(c.topics[i].clone()) {
				return
			}
		}
	}
}

func matches(t *Topic, term string) bool {
	if strings.Contains(strings.ToLower(t.ID), term) ||
		strings.Contains(strings.ToLower(t.Title), term) ||
		strings.Contains(strings.ToLower(t.Summary), term) {
		return true
	}
	for _, k := range t.Keywords {
		if strings.Contains(strings.ToLower(k), term) {
			return true
		}
	}
	return false
}
