// Package session owns the in-memory state of one uploaded paper:
// extracted text, derived structure, cached summary and analysis, and
// the chat transcript. Nothing survives process restart.
package session

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Joshi-574/paperIQ/internal/analyze"
	"github.com/Joshi-574/paperIQ/internal/extract"
	"github.com/Joshi-574/paperIQ/internal/paper"
)

// ErrInsufficientContent means extraction produced too little text to
// analyze. The caller should prompt for another file.
var ErrInsufficientContent = errors.New("insufficient document content")

// ChatEntry is one question/answer exchange.
type ChatEntry struct {
	Question string     `json:"question"`
	Kind     paper.Kind `json:"kind"`
	Answer   string     `json:"answer"`
	AskedAt  time.Time  `json:"asked_at"`
}

// Session holds one paper and everything derived from it.
type Session struct {
	ID        string
	Filename  string
	Text      string
	Meta      extract.Metadata
	Sections  paper.Sections
	CreatedAt time.Time

	mu         sync.Mutex
	summary    string
	analysis   *analyze.Analysis
	chat       []ChatEntry
	lastActive time.Time
}

// New validates the extracted text and builds a session with its
// structure already analyzed. Structure analysis never runs on
// under-threshold text.
func New(filename, text string, meta extract.Metadata, minContent int) (*Session, error) {
	if len(strings.TrimSpace(text)) < minContent {
		return nil, ErrInsufficientContent
	}
	now := time.Now()
	return &Session{
		ID:         uuid.NewString(),
		Filename:   filename,
		Text:       text,
		Meta:       meta,
		Sections:   paper.AnalyzeStructure(text),
		CreatedAt:  now,
		lastActive: now,
	}, nil
}

// Summary returns the cached comprehensive summary, generating it on
// first use. regenerate forces a rebuild.
func (s *Session) Summary(regenerate bool) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.summary == "" || regenerate {
		s.summary = paper.BuildSummary(s.Text)
	}
	s.lastActive = time.Now()
	return s.summary
}

// Analysis returns the cached document insights, computing them on
// first use.
func (s *Session) Analysis(summarySentences int) analyze.Analysis {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.analysis == nil {
		a := analyze.Document(s.Text, summarySentences)
		s.analysis = &a
	}
	s.lastActive = time.Now()
	return *s.analysis
}

// Ask answers a question offline and appends the exchange to the chat
// transcript.
func (s *Session) Ask(question string) ChatEntry {
	answer := paper.AnswerQuestion(question, s.Text)
	entry := ChatEntry{
		Question: question,
		Kind:     answer.Kind,
		Answer:   answer.Text,
		AskedAt:  time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = append(s.chat, entry)
	s.lastActive = entry.AskedAt
	return entry
}

// History returns chat entries newest-first. limit <= 0 returns all.
func (s *Session) History(limit int) []ChatEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.chat)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]ChatEntry, 0, n)
	for i := len(s.chat) - 1; i >= len(s.chat)-n; i-- {
		out = append(out, s.chat[i])
	}
	return out
}

// ClearChat drops the transcript.
func (s *Session) ClearChat() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.chat = nil
	s.lastActive = time.Now()
}

// LastActive reports when the session was last touched.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}
