package paper

import "strings"

// summaryBullets maps line-buffer sections to their key-point labels,
// in output order.
var summaryBullets = []struct {
	section sectionName
	label   string
}{
	{secIntroduction, "Research Focus"},
	{secMethodology, "Method Used"},
	{secResults, "Key Findings"},
	{secConclusion, "Conclusions"},
}

// BuildSummary produces the comprehensive markdown summary of a paper:
// title, authors, key points per detected section, and a raw-text
// overview when too little structure was found.
func BuildSummary(text string) string {
	s := AnalyzeStructure(text)

	var parts []string

	if s.Title != "" {
		parts = append(parts, "**📄 Title:** "+s.Title)
	} else {
		// Fall back to the first meaningful line.
		lines := SplitLines(text)
		for _, line := range head(lines, 3) {
			if len(line) > 10 && len(line) < 200 {
				parts = append(parts, "**📄 Title:** "+line)
				break
			}
		}
	}

	if s.Authors != "" {
		parts = append(parts, "**👥 Authors:** "+s.Authors)
	}

	var keyPoints []string
	if len(s.Abstract) > 0 {
		excerpt := strings.Join(head(s.Abstract, 5), " ")
		keyPoints = append(keyPoints, "**Abstract:** "+truncate(excerpt, 200)+"...")
	}
	for _, b := range summaryBullets {
		buf := *s.buffer(b.section)
		if len(buf) == 0 {
			continue
		}
		content := strings.Join(head(buf, 3), " ")
		keyPoints = append(keyPoints, "**"+b.label+":** "+truncate(content, 150)+"...")
	}

	if len(keyPoints) > 0 {
		parts = append(parts, "## 🔍 Key Points")
		for _, point := range keyPoints {
			parts = append(parts, "• "+point)
		}
	}

	// Sparse structure: fall back to a raw-text overview.
	if len(parts) < 3 {
		parts = append(parts, "## 📖 Document Content")
		overview := text
		if len([]rune(text)) > 400 {
			overview = truncate(text, 400) + "..."
		}
		parts = append(parts, overview)
	}

	return strings.Join(parts, "\n\n")
}
