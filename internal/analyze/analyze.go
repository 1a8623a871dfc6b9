// Package analyze computes lightweight document insights without any
// model: capitalized-word entities, frequency-based key phrases, and a
// lexicon sentiment score.
package analyze

import (
	_ "embed"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var lexiconYAML []byte

type lexicon struct {
	PositiveWords    []string `yaml:"positive_words"`
	NegativeWords    []string `yaml:"negative_words"`
	DefaultQuestions []string `yaml:"default_questions"`
}

var lex = mustLoadLexicon()

func mustLoadLexicon() lexicon {
	var l lexicon
	if err := yaml.Unmarshal(lexiconYAML, &l); err != nil {
		panic(fmt.Sprintf("analyze: parse lexicon.yaml: %v", err))
	}
	return l
}

// Analysis holds the computed insights for one document.
type Analysis struct {
	Summary        string   `json:"summary"`
	KeyPoints      []string `json:"key_points"`
	Entities       []string `json:"entities"`
	Sentiment      string   `json:"sentiment"`
	SentimentScore float64  `json:"sentiment_score"`
	WordCount      int      `json:"word_count"`
	SentenceCount  int      `json:"sentence_count"`
}

// WordCount pairs a word with its frequency.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Document analyzes text. summarySentences controls how many leading
// sentences form the excerpt.
func Document(text string, summarySentences int) Analysis {
	if summarySentences <= 0 {
		summarySentences = 3
	}

	words := strings.Fields(text)
	sentences := SplitSentences(text)

	excerpt := sentences
	if len(excerpt) > summarySentences {
		excerpt = excerpt[:summarySentences]
	}

	var keyPoints []string
	for _, wc := range WordFrequencies(text, 10) {
		keyPoints = append(keyPoints, wc.Word)
	}

	label, score := Sentiment(text)

	return Analysis{
		Summary:        strings.Join(excerpt, " "),
		KeyPoints:      keyPoints,
		Entities:       Entities(text, 10),
		Sentiment:      label,
		SentimentScore: score,
		WordCount:      len(words),
		SentenceCount:  len(sentences),
	}
}

var sentenceSplit = regexp.MustCompile(`[.!?]+`)

// SplitSentences breaks text on sentence punctuation, dropping empty
// fragments.
func SplitSentences(text string) []string {
	var out []string
	for _, s := range sentenceSplit.Split(text, -1) {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Entities extracts up to limit unique title-cased words longer than
// two characters, in first-seen order.
func Entities(text string, limit int) []string {
	seen := make(map[string]bool)
	var out []string
	for _, word := range strings.Fields(text) {
		if len(word) <= 2 || !isTitleCase(word) || seen[word] {
			continue
		}
		seen[word] = true
		out = append(out, word)
		if len(out) == limit {
			break
		}
	}
	return out
}

// isTitleCase reports whether the word starts with an uppercase letter
// and contains no further uppercase letters.
func isTitleCase(word string) bool {
	for i, r := range word {
		if i == 0 {
			if !unicode.IsUpper(r) {
				return false
			}
			continue
		}
		if unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// WordFrequencies returns the limit most frequent lowercased words
// longer than three characters. Ties keep first-seen order, so the
// result is deterministic.
func WordFrequencies(text string, limit int) []WordCount {
	counts := make(map[string]int)
	var order []string
	for _, word := range strings.Fields(text) {
		word = strings.ToLower(word)
		if len(word) <= 3 {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	out := make([]WordCount, 0, len(order))
	for _, w := range order {
		out = append(out, WordCount{Word: w, Count: counts[w]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })

	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Sentiment scores text against the positive/negative lexicons. The
// score lands in [-1, 1]; the label is positive, negative, or neutral.
func Sentiment(text string) (string, float64) {
	lower := strings.ToLower(text)
	pos, neg := 0, 0
	for _, w := range lex.PositiveWords {
		if strings.Contains(lower, w) {
			pos++
		}
	}
	for _, w := range lex.NegativeWords {
		if strings.Contains(lower, w) {
			neg++
		}
	}

	score := 0.0
	if pos+neg > 0 {
		score = float64(pos-neg) / float64(pos+neg)
	}
	switch {
	case pos > neg:
		return "positive", score
	case neg > pos:
		return "negative", score
	default:
		return "neutral", score
	}
}

// Questions suggests up to count questions about the document:
// substantial sentences become "Can you explain" prompts, padded from
// the default pool.
func Questions(text string, count int) []string {
	if count <= 0 {
		count = 5
	}

	var questions []string
	taken := 0
	for _, s := range SplitSentences(text) {
		if len(s) <= 50 {
			continue
		}
		questions = append(questions, fmt.Sprintf("Can you explain: '%s'?", s))
		taken++
		if taken == 10 {
			break
		}
	}

	for len(questions) < count {
		questions = append(questions, lex.DefaultQuestions...)
	}
	return questions[:count]
}

var nonBasicChars = regexp.MustCompile(`[^\w\s.,!?;:()\-]`)
var whitespaceRun = regexp.MustCompile(`\s+`)

// CleanText collapses whitespace and strips characters outside the
// word/space/basic-punctuation set.
func CleanText(text string) string {
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = nonBasicChars.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// Stats reports word and character counts over the cleaned text.
type Stats struct {
	Words int `json:"words"`
	Chars int `json:"chars"`
}

// TextStats computes word and character counts for cleaned text.
func TextStats(text string) Stats {
	cleaned := CleanText(text)
	return Stats{
		Words: len(strings.Fields(cleaned)),
		Chars: len([]rune(cleaned)),
	}
}
