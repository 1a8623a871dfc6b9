package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strconv"
)

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	sess := s.paperSession(w, r)
	if sess == nil {
		return
	}

	regenerate := r.URL.Query().Get("regenerate") == "true"
	markdown := sess.Summary(regenerate)

	var html bytes.Buffer
	if err := s.md.Convert([]byte(markdown), &html); err != nil {
		s.log.Warn("summary render failed", "paper_id", sess.ID, "error", err)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"paper_id": sess.ID,
		"summary":  markdown,
		"html":     html.String(),
	})
}

type questionRequest struct {
	Question string `json:"question" validate:"required,min=1,max=2000"`
}

func (s *Server) handleQuestion(w http.ResponseWriter, r *http.Request) {
	sess := s.paperSession(w, r)
	if sess == nil {
		return
	}

	var req questionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		jsonError(w, "question is required", http.StatusBadRequest)
		return
	}

	entry := sess.Ask(req.Question)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"paper_id": sess.ID,
		"question": entry.Question,
		"kind":     entry.Kind,
		"answer":   entry.Answer,
		"asked_at": entry.AskedAt,
	})
}

func (s *Server) handleChatHistory(w http.ResponseWriter, r *http.Request) {
	sess := s.paperSession(w, r)
	if sess == nil {
		return
	}

	// Mirrors the reading view: last five exchanges, newest first.
	limit := 5
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	entries := sess.History(limit)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"paper_id": sess.ID,
		"count":    len(entries),
		"entries":  entries,
	})
}

func (s *Server) handleClearChat(w http.ResponseWriter, r *http.Request) {
	sess := s.paperSession(w, r)
	if sess == nil {
		return
	}
	sess.ClearChat()
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "cleared"})
}
