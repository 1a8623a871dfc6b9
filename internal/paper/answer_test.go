package paper

import (
	"strings"
	"testing"
)

func TestAnswerQuestion_CannedDefinitionIgnoresDocument(t *testing.T) {
	// Canned answers win regardless of document content.
	const want = "AI refers to machines that can perform tasks typically requiring human intelligence."
	for _, doc := range []string{"", surveyDoc, "AI is actually about something else entirely."} {
		got := AnswerQuestion("what is AI", doc)
		if got.Kind != KindCanned {
			t.Errorf("doc %q: expected canned answer, got kind %q", doc, got.Kind)
		}
		if got.Text != want {
			t.Errorf("doc %q: expected %q, got %q", doc, want, got.Text)
		}
	}
}

func TestAnswerQuestion_CannedTitleEmbedsDocumentTitle(t *testing.T) {
	got := AnswerQuestion("What is the title", surveyDoc)
	if got.Kind != KindCanned {
		t.Fatalf("expected canned answer, got kind %q", got.Kind)
	}
	if !strings.Contains(got.Text, "Deep Learning Survey") {
		t.Errorf("expected answer to embed the title, got %q", got.Text)
	}
}

func TestAnswerQuestion_CannedTitleFallback(t *testing.T) {
	got := AnswerQuestion("what is the title", "x\nNothing here resembles a paper either.")
	if got.Text != "Title: Not clearly specified" {
		t.Errorf("expected title fallback, got %q", got.Text)
	}
}

func TestAnswerQuestion_CannedAuthors(t *testing.T) {
	got := AnswerQuestion("who are the authors of this work", surveyDoc)
	if got.Kind != KindCanned {
		t.Fatalf("expected canned answer, got kind %q", got.Kind)
	}
	if got.Text != "Authors: John Smith, Example University" {
		t.Errorf("unexpected answer %q", got.Text)
	}
}

func TestAnswerQuestion_CategoryAbstractPreview(t *testing.T) {
	got := AnswerQuestion("please share the abstract with me", surveyDoc)
	if got.Kind != KindAbstract {
		t.Fatalf("expected abstract category, got kind %q", got.Kind)
	}
	if !strings.HasPrefix(got.Text, "This paper surveys") {
		t.Errorf("expected abstract preview, got %q", got.Text)
	}
	if !strings.HasSuffix(got.Text, "...") {
		t.Errorf("expected truncated preview, got %q", got.Text)
	}
}

func TestAnswerQuestion_CategoryMethodologyMissing(t *testing.T) {
	got := AnswerQuestion("tell me about the approach they took", surveyDoc)
	if got.Kind != KindMethodology {
		t.Fatalf("expected methodology category, got kind %q", got.Kind)
	}
	if got.Text != "Methodology section not explicitly identified" {
		t.Errorf("unexpected answer %q", got.Text)
	}
}

func TestAnswerQuestion_DefinitionLookup(t *testing.T) {
	doc := "A Primer on Sequence Models for Beginners\n" +
		"A transformer processes tokens in parallel rather than sequentially.\n"
	got := AnswerQuestion("what is a transformer?", doc)
	if got.Kind != KindDefinition {
		t.Fatalf("expected definition answer, got kind %q (%q)", got.Kind, got.Text)
	}
	if !strings.Contains(got.Text, "processes tokens in parallel") {
		t.Errorf("expected the defining line, got %q", got.Text)
	}
}

func TestAnswerQuestion_DefinitionTermNotFound(t *testing.T) {
	got := AnswerQuestion("what is a zorgon?", surveyDoc)
	if got.Kind != KindNotFound {
		t.Fatalf("expected not-found answer, got kind %q", got.Kind)
	}
	if !strings.Contains(got.Text, "'a zorgon'") {
		t.Errorf("expected the missing term named, got %q", got.Text)
	}
}

func TestAnswerQuestion_ShortQuestionGetsGuidance(t *testing.T) {
	// Three words, and the document even contains a matching keyword
	// line: guidance still wins because the keyword scan never runs.
	doc := "An Essay Concerning Short Questions\n" +
		"Explain everything carefully, the reviewers always say.\n"
	got := AnswerQuestion("Explain the paper", doc)
	if got.Kind != KindGuidance {
		t.Fatalf("expected guidance for a 3-word question, got kind %q (%q)", got.Kind, got.Text)
	}
	if !strings.Contains(got.Text, "specific questions") {
		t.Errorf("unexpected guidance text %q", got.Text)
	}
}

func TestAnswerQuestion_KeywordFallback(t *testing.T) {
	doc := "A Field Guide to Careful Testing\n" +
		"The benchmark suite draws on the LargeCorpus collection.\n"
	got := AnswerQuestion("which benchmark suite powers the evaluation", doc)
	if got.Kind != KindKeyword {
		t.Fatalf("expected keyword answer, got kind %q (%q)", got.Kind, got.Text)
	}
	if !strings.Contains(got.Text, "LargeCorpus") {
		t.Errorf("expected the matching line, got %q", got.Text)
	}
}

func TestAnswerQuestion_KeywordLineTruncated(t *testing.T) {
	line := "The benchmark number " + strings.Repeat("seven ", 25) + "closes it."
	doc := "A Field Guide to Careful Testing\n" + line + "\n"
	got := AnswerQuestion("which benchmark suite powers the evaluation", doc)
	if got.Kind != KindKeyword {
		t.Fatalf("expected keyword answer, got kind %q", got.Kind)
	}
	if len([]rune(strings.TrimSuffix(got.Text, "..."))) != 120 {
		t.Errorf("expected 120-char truncation, got %d chars: %q", len(got.Text), got.Text)
	}
}

func TestAnswerQuestion_FinalFallback(t *testing.T) {
	got := AnswerQuestion("qqqq wwww eeee rrrr tttt", surveyDoc)
	if got.Kind != KindNotFound {
		t.Fatalf("expected final fallback, got kind %q (%q)", got.Kind, got.Text)
	}
	if !strings.Contains(got.Text, "Try asking about") {
		t.Errorf("unexpected fallback text %q", got.Text)
	}
}
