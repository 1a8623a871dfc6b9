package paper

import (
	"fmt"
	"strings"
)

// Kind categorizes an answer so the presentation layer can decide how
// to decorate it. The payload itself stays plain text.
type Kind string

const (
	KindCanned      Kind = "canned"
	KindTitle       Kind = "title"
	KindAuthors     Kind = "authors"
	KindAbstract    Kind = "abstract"
	KindMethodology Kind = "methodology"
	KindResults     Kind = "results"
	KindConclusion  Kind = "conclusion"
	KindPurpose     Kind = "purpose"
	KindDefinition  Kind = "definition"
	KindGuidance    Kind = "guidance"
	KindKeyword     Kind = "keyword"
	KindNotFound    Kind = "not_found"
)

// Answer is the result of an offline question lookup.
type Answer struct {
	Kind Kind   `json:"kind"`
	Text string `json:"text"`
}

// answerRule inspects the lowered question (plus the raw question and
// document) and either claims it or passes.
type answerRule func(q, raw, text string, s *Sections) (Answer, bool)

// answerRules is evaluated in order; the first rule that claims the
// question wins. The order encodes the resolution precedence: canned
// answers, section categories, definition lookup, short-question
// guidance, keyword scan.
var answerRules = []answerRule{
	cannedRule,
	categoryRule,
	definitionRule,
	shortQuestionRule,
	keywordRule,
}

// AnswerQuestion resolves a free-text question against the document
// using pattern and keyword matching only. It always returns an
// answer; the final fallback is a generic not-found message.
func AnswerQuestion(question, text string) Answer {
	q := strings.ToLower(strings.TrimSpace(question))
	s := AnalyzeStructure(text)

	for _, rule := range answerRules {
		if ans, ok := rule(q, question, text, &s); ok {
			return ans
		}
	}

	return Answer{
		Kind: KindNotFound,
		Text: "Specific answer not found in this paper. Try asking about the title, authors, methods, or results.",
	}
}

func cannedRule(q, _, _ string, s *Sections) (Answer, bool) {
	for _, entry := range cannedAnswers {
		if strings.Contains(q, entry.Question) {
			return Answer{Kind: KindCanned, Text: entry.respond(s)}, true
		}
	}
	return Answer{}, false
}

// categoryGroups route paper-specific questions to a section-derived
// message, with a not-found variant when the section is missing.
var categoryGroups = []struct {
	words   []string
	respond func(s *Sections) Answer
}{
	{
		words: []string{"title", "what is the paper about", "name of paper"},
		respond: func(s *Sections) Answer {
			if s.Title != "" {
				return Answer{KindTitle, s.Title}
			}
			return Answer{KindTitle, "Title not explicitly stated"}
		},
	},
	{
		words: []string{"author", "who wrote", "who is the author"},
		respond: func(s *Sections) Answer {
			if s.Authors != "" {
				return Answer{KindAuthors, s.Authors}
			}
			return Answer{KindAuthors, "Authors not specified"}
		},
	},
	{
		words: []string{"abstract", "summary", "overview"},
		respond: func(s *Sections) Answer {
			if len(s.Abstract) > 0 {
				preview := truncate(strings.Join(head(s.Abstract, 3), " "), 100) + "..."
				return Answer{KindAbstract, preview}
			}
			return Answer{KindAbstract, "Abstract section not found in this paper"}
		},
	},
	{
		words: []string{"method", "methodology", "approach", "how did they"},
		respond: func(s *Sections) Answer {
			if len(s.Methodology) > 0 {
				return Answer{KindMethodology, "Research methodology details are in the methods section"}
			}
			return Answer{KindMethodology, "Methodology section not explicitly identified"}
		},
	},
	{
		words: []string{"result", "finding", "outcome", "what did they find"},
		respond: func(s *Sections) Answer {
			if len(s.Results) > 0 {
				return Answer{KindResults, "Key findings and results are detailed in the results section"}
			}
			return Answer{KindResults, "Results section not explicitly identified"}
		},
	},
	{
		words: []string{"conclusion", "conclude", "what was concluded"},
		respond: func(s *Sections) Answer {
			if len(s.Conclusion) > 0 {
				return Answer{KindConclusion, "Conclusions summarize the research outcomes and implications"}
			}
			return Answer{KindConclusion, "Conclusion section not explicitly identified"}
		},
	},
	{
		words: []string{"purpose", "goal", "objective", "why", "aim"},
		respond: func(s *Sections) Answer {
			if len(s.Introduction) > 0 {
				return Answer{KindPurpose, "Research objectives are outlined in the introduction section"}
			}
			return Answer{KindPurpose, "Research purpose described in the introduction"}
		},
	},
}

func categoryRule(q, _, _ string, s *Sections) (Answer, bool) {
	for _, group := range categoryGroups {
		if containsAny(q, group.words) {
			return group.respond(s), true
		}
	}
	return Answer{}, false
}

// definitionRule handles "what is X" / "what are X" by scanning raw
// lines for the term. A bare "define" with neither phrase passes
// through to the later rules.
func definitionRule(q, _, text string, _ *Sections) (Answer, bool) {
	if !containsAny(q, []string{"what is", "what are", "define"}) {
		return Answer{}, false
	}

	var term string
	if idx := strings.Index(q, "what is"); idx >= 0 {
		term = after(q, idx+len("what is "))
	} else if idx := strings.Index(q, "what are"); idx >= 0 {
		term = after(q, idx+len("what are "))
	} else {
		return Answer{}, false
	}
	term = strings.Trim(term, "? ")
	if term == "" {
		return Answer{}, false
	}

	for _, line := range strings.Split(text, "\n") {
		if len(line) > 20 && len(line) < 300 && strings.Contains(strings.ToLower(line), term) {
			clean := strings.TrimSpace(line)
			if len(clean) > 150 {
				clean = truncate(clean, 150) + "..."
			}
			return Answer{KindDefinition, clean}, true
		}
	}

	return Answer{KindNotFound, fmt.Sprintf("Information about '%s' not found in this paper", term)}, true
}

func shortQuestionRule(_, raw, _ string, _ *Sections) (Answer, bool) {
	if len(strings.Fields(raw)) <= 4 {
		return Answer{
			Kind: KindGuidance,
			Text: "Please ask specific questions about this research paper's content, methods, or findings",
		}, true
	}
	return Answer{}, false
}

// keywordRule returns the first substantial raw line containing any
// question word longer than three characters.
func keywordRule(q, _, text string, _ *Sections) (Answer, bool) {
	var keywords []string
	for _, word := range strings.Fields(q) {
		if len(word) > 3 {
			keywords = append(keywords, word)
		}
	}
	if len(keywords) == 0 {
		return Answer{}, false
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) <= 30 || len(trimmed) >= 200 {
			continue
		}
		lower := strings.ToLower(line)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				if len(trimmed) > 120 {
					trimmed = truncate(trimmed, 120) + "..."
				}
				return Answer{KindKeyword, trimmed}, true
			}
		}
	}
	return Answer{}, false
}

func after(s string, idx int) string {
	if idx > len(s) {
		return ""
	}
	return s[idx:]
}
