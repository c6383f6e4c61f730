package server

import (
	"errors"
	"fmt"
	"iter"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jorge-barreto/refcat/internal/catalog"
	"github.com/jorge-barreto/refcat/internal/render"
	"go.uber.org/zap"
)

type exampleResponse struct {
	Source string  `json:"source"`
	Output *string `json:"output,omitempty"`
}

type topicResponse struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Category string            `json:"category"`
	Summary  string            `json:"summary,omitempty"`
	Body     string            `json:"body"`
	Keywords []string          `json:"keywords,omitempty"`
	Examples []exampleResponse `json:"examples"`
}

type topicSummary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"`
	Summary  string `json:"summary,omitempty"`
}

type categoryResponse struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

func toTopicResponse(t catalog.Topic) topicResponse {
	examples := make([]exampleResponse, 0, len(t.Examples))
	for _, ex := range t.Examples {
		e := exampleResponse{Source: ex.Source()}
		if out, ok := ex.Output(); ok {
			e.Output = &out
		}
		examples = append(examples, e)
	}
	return topicResponse{
		ID:       t.ID,
		Title:    t.Title,
		Category: string(t.Category),
		Summary:  t.Summary,
		Body:     t.Body,
		Keywords: t.Keywords,
		Examples: examples,
	}
}

func summaries(seq iter.Seq[catalog.Topic]) []topicSummary {
	out := []topicSummary{}
	for t := range seq {
		out = append(out, topicSummary{
			ID:       t.ID,
			Title:    t.Title,
			Category: string(t.Category),
			Summary:  t.Summary,
		})
	}
	return out
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	respondText(w, render.Index(s.catalog.All()))
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]any{
		"status": "ok",
		"topics": s.catalog.Len(),
	}, nil)
}

func (s *Server) listTopics(w http.ResponseWriter, r *http.Request) {
	var category catalog.Category
	if raw := r.URL.Query().Get("category"); raw != "" {
		c, err := catalog.ParseCategory(raw)
		if err != nil {
			respondError(w, r, http.StatusBadRequest, codeBadRequest, err.Error())
			return
		}
		category = c
	}
	list := summaries(s.catalog.List(category))
	n := len(list)
	respondJSON(w, r, http.StatusOK, list, &n)
}

// lookup resolves the {topicID} URL parameter, writing a 404 when absent.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (catalog.Topic, bool) {
	id := chi.URLParam(r, "topicID")
	t, err := s.catalog.Get(id)
	var nf *catalog.NotFoundError
	if errors.As(err, &nf) {
		s.logger.Debug("topic not found", zap.String("id", id))
		respondError(w, r, http.StatusNotFound, codeNotFound, fmt.Sprintf("reference %q not found", id))
		return catalog.Topic{}, false
	}
	if err != nil {
		respondError(w, r, http.StatusInternalServerError, codeInternal, err.Error())
		return catalog.Topic{}, false
	}
	return t, true
}

func (s *Server) getTopic(w http.ResponseWriter, r *http.Request) {
	t, ok := s.lookup(w, r)
	if !ok {
		return
	}
	respondJSON(w, r, http.StatusOK, toTopicResponse(t), nil)
}

func (s *Server) topicText(w http.ResponseWriter, r *http.Request) {
	t, ok := s.lookup(w, r)
	if !ok {
		return
	}
	respondText(w, render.Topic(t))
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	list := summaries(s.catalog.Search(r.URL.Query().Get("q")))
	n := len(list)
	respondJSON(w, r, http.StatusOK, list, &n)
}

func (s *Server) categories(w http.ResponseWriter, r *http.Request) {
	var out []categoryResponse
	for _, c := range catalog.Categories() {
		out = append(out, categoryResponse{Name: string(c), Slug: c.Slug(), Count: s.catalog.Count(c)})
	}
	n := len(out)
	respondJSON(w, r, http.StatusOK, out, &n)
}
