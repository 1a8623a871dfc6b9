package paper

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var rulesYAML []byte

// cannedEntry is one canned question. Static entries carry their
// answer directly; section-backed entries compose it from the analyzed
// paper at answer time.
type cannedEntry struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
	Section  string `yaml:"section"`
	Prefix   string `yaml:"prefix"`
	Fallback string `yaml:"fallback"`
}

var cannedAnswers = mustLoadCanned()

func mustLoadCanned() []cannedEntry {
	var doc struct {
		Canned []cannedEntry `yaml:"canned"`
	}
	if err := yaml.Unmarshal(rulesYAML, &doc); err != nil {
		panic(fmt.Sprintf("paper: parse rules.yaml: %v", err))
	}
	if len(doc.Canned) == 0 {
		panic("paper: rules.yaml has no canned entries")
	}
	return doc.Canned
}

// respond renders the entry's answer against the analyzed sections.
func (e cannedEntry) respond(s *Sections) string {
	switch e.Section {
	case "title":
		if s.Title != "" {
			return e.Prefix + s.Title
		}
		return e.Prefix + e.Fallback
	case "authors":
		if s.Authors != "" {
			return e.Prefix + s.Authors
		}
		return e.Prefix + e.Fallback
	default:
		return e.Answer
	}
}
