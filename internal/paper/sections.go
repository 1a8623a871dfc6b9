package paper

import (
	"regexp"
	"strings"
)

// maxSectionLines caps how many lines a single section buffer may hold.
const maxSectionLines = 50

// Sections is the structural map of an academic paper. Title and
// Authors are single lines; the remaining sections are ordered line
// buffers in original document order.
type Sections struct {
	Title   string
	Authors string

	Abstract     []string
	Introduction []string
	Methodology  []string
	Results      []string
	Discussion   []string
	Conclusion   []string
	References   []string
}

// sectionName identifies one of the buffered sections.
type sectionName string

const (
	secAbstract     sectionName = "abstract"
	secIntroduction sectionName = "introduction"
	secMethodology  sectionName = "methodology"
	secResults      sectionName = "results"
	secDiscussion   sectionName = "discussion"
	secConclusion   sectionName = "conclusion"
	secReferences   sectionName = "references"
)

// sectionPatterns is the heading vocabulary, tested in this exact
// order. The first pattern matching a line wins; a line that could
// name several sections is claimed by the earliest entry.
var sectionPatterns = []struct {
	name sectionName
	re   *regexp.Regexp
}{
	{secAbstract, regexp.MustCompile(`abstract|summary`)},
	{secIntroduction, regexp.MustCompile(`introduction|background|motivation`)},
	{secMethodology, regexp.MustCompile(`method|methodology|approach|experiment|procedure|materials`)},
	{secResults, regexp.MustCompile(`result|finding|outcome|data|experiment`)},
	{secDiscussion, regexp.MustCompile(`discussion|analysis|interpretation`)},
	{secConclusion, regexp.MustCompile(`conclusion|concluding|summary`)},
	{secReferences, regexp.MustCompile(`reference|bibliography|citation`)},
}

// authorIndicators mark affiliation/contact lines near the top of a paper.
var authorIndicators = []string{"university", "institute", "department", "college", "@", "email"}

// AnalyzeStructure splits text into non-empty trimmed lines and
// assigns them to sections by heading vocabulary. It is a best-effort
// heuristic: it assumes papers use conventional heading words, and it
// is deterministic for a given input.
func AnalyzeStructure(text string) Sections {
	lines := SplitLines(text)

	var s Sections
	var current sectionName

	for i, line := range lines {
		lower := strings.ToLower(line)

		// The first substantial line is the title.
		if i == 0 && len(line) > 10 && len(line) < 200 {
			s.Title = line
		} else if i < 5 && s.Authors == "" && containsAny(lower, authorIndicators) {
			s.Authors = line
		}

		// Section headers switch the active buffer. Long lines are
		// body text, not headings.
		for _, p := range sectionPatterns {
			if len(line) < 150 && p.re.MatchString(lower) {
				current = p.name
				break
			}
		}

		if current != "" && len(line) > 20 {
			buf := s.buffer(current)
			if len(*buf) < maxSectionLines {
				*buf = append(*buf, line)
			}
		}
	}

	return s
}

func (s *Sections) buffer(name sectionName) *[]string {
	switch name {
	case secAbstract:
		return &s.Abstract
	case secIntroduction:
		return &s.Introduction
	case secMethodology:
		return &s.Methodology
	case secResults:
		return &s.Results
	case secDiscussion:
		return &s.Discussion
	case secConclusion:
		return &s.Conclusion
	case secReferences:
		return &s.References
	}
	return nil
}

// SectionCount reports how many lines a detected section holds.
type SectionCount struct {
	Name  string `json:"name"`
	Lines int    `json:"lines"`
}

// Counts lists the populated line-buffer sections in canonical order.
func (s *Sections) Counts() []SectionCount {
	var out []SectionCount
	for _, p := range sectionPatterns {
		if n := len(*s.buffer(p.name)); n > 0 {
			out = append(out, SectionCount{Name: string(p.name), Lines: n})
		}
	}
	return out
}

// Found counts populated structural elements, title and authors included.
func (s *Sections) Found() int {
	n := 0
	if s.Title != "" {
		n++
	}
	if s.Authors != "" {
		n++
	}
	for _, p := range sectionPatterns {
		if len(*s.buffer(p.name)) > 0 {
			n++
		}
	}
	return n
}

// SplitLines returns the non-empty trimmed lines of text, in order.
func SplitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func head(lines []string, n int) []string {
	if len(lines) <= n {
		return lines
	}
	return lines[:n]
}
