package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Joshi-574/paperIQ/internal/analyze"
	"github.com/Joshi-574/paperIQ/internal/insight"
)

func (s *Server) handleInsights(w http.ResponseWriter, r *http.Request) {
	sess := s.paperSession(w, r)
	if sess == nil {
		return
	}

	analysis := sess.Analysis(s.cfg.SummarySentences)
	charts := buildCharts(sess.Text, analysis)
	questions := analyze.Questions(sess.Text, s.cfg.DefaultQuestionCount)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"paper_id":            sess.ID,
		"analysis":            analysis,
		"charts":              charts,
		"suggested_questions": questions,
	})
}

// buildCharts assembles the chart specs for one document: entity bar
// chart, topic donut from top word frequencies, key-phrase bars, and
// the sentiment gauge.
func buildCharts(text string, analysis analyze.Analysis) []insight.ChartSpec {
	lower := strings.ToLower(text)

	entityCounts := make([]int, len(analysis.Entities))
	for i, entity := range analysis.Entities {
		entityCounts[i] = strings.Count(lower, strings.ToLower(entity))
	}

	freqs := analyze.WordFrequencies(text, 5)
	topics := make([]insight.Topic, 0, len(freqs))
	for i, wc := range freqs {
		topics = append(topics, insight.Topic{ID: i + 1, Weight: float64(wc.Count)})
	}

	phrases := make([]string, 0, len(analysis.KeyPoints))
	scores := make([]float64, 0, len(analysis.KeyPoints))
	for i, phrase := range analysis.KeyPoints {
		phrases = append(phrases, phrase)
		scores = append(scores, float64(len(analysis.KeyPoints)-i))
	}

	return []insight.ChartSpec{
		insight.EntityChart(analysis.Entities, entityCounts),
		insight.TopicChart(topics),
		insight.KeyPhrasesChart(phrases, scores),
		insight.SentimentGauge(analysis.SentimentScore),
	}
}
