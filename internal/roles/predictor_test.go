package roles

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/pathpilot/pathpilot/internal/skills"
)

func skillSet(names ...string) *skills.Set {
	// Round-trip through the matcher so department grouping is real.
	text := ""
	for _, n := range names {
		text += n + "\n"
	}
	return skills.Extract(text)
}

func TestPredictRanksDominantDepartmentRoles(t *testing.T) {
	p := NewPredictor(zap.NewNop())
	set := skillSet("Python", "SQL", "Machine Learning", "Pandas", "NumPy", "Statistics")

	got := p.Predict(set)
	if len(got) == 0 {
		t.Fatalf("expected predictions")
	}
	if got[0].Role != "Data Scientist" {
		t.Fatalf("expected Data Scientist first, got %+v", got)
	}
	if got[0].Score != 98 {
		t.Fatalf("expected clamped score 98, got %d", got[0].Score)
	}
}

func TestPredictOrderingAndBounds(t *testing.T) {
	p := NewPredictor(zap.NewNop())
	set := skillSet("Python", "SQL", "Machine Learning", "Pandas", "NumPy",
		"Statistics", "Docker", "Kubernetes", "AWS", "Linux", "Git", "Jenkins")

	got := p.Predict(set)
	if len(got) > 5 {
		t.Fatalf("expected at most 5 predictions, got %d", len(got))
	}
	for i, s := range got {
		if s.Score < 0 || s.Score > 98 {
			t.Fatalf("score out of bounds: %+v", s)
		}
		if i > 0 && got[i-1].Score < s.Score {
			t.Fatalf("predictions not sorted descending: %+v", got)
		}
	}
}

func TestPredictFiltersOtherDepartments(t *testing.T) {
	p := NewPredictor(zap.NewNop())
	set := skillSet("Excel", "Accounting", "Financial Analysis", "Budgeting", "Finance")

	got := p.Predict(set)
	if len(got) == 0 {
		t.Fatalf("expected predictions")
	}
	if got[0].Role != "Financial Analyst" {
		t.Fatalf("expected Financial Analyst first, got %+v", got)
	}
	for _, s := range got {
		if s.Role == "Video Editor" {
			t.Fatalf("low-weight creative role should not be eligible: %+v", got)
		}
	}
}

func TestPredictDiscardsLowRelevanceRoles(t *testing.T) {
	p := NewPredictor(zap.NewNop())
	set := skillSet("Python", "SQL")

	got := p.Predict(set)
	for _, s := range got {
		if s.Score <= 30 {
			t.Fatalf("role below relevance threshold leaked: %+v", s)
		}
	}
}

func TestPredictIsDeterministicByDefault(t *testing.T) {
	p := NewPredictor(zap.NewNop())
	set := skillSet("Python", "SQL", "Machine Learning", "Pandas", "Docker")

	first := p.Predict(set)
	for i := 0; i < 10; i++ {
		again := p.Predict(set)
		if len(again) != len(first) {
			t.Fatalf("non-deterministic prediction count")
		}
		for j := range again {
			if again[j] != first[j] {
				t.Fatalf("non-deterministic prediction: %+v vs %+v", again, first)
			}
		}
	}
}

type stubClassifier struct {
	probs map[string]float64
	err   error
}

func (s *stubClassifier) Probabilities([]string) (map[string]float64, error) {
	return s.probs, s.err
}

func TestPredictClassifierSeedsScores(t *testing.T) {
	set := skillSet("Python", "SQL")

	baseline := NewPredictor(zap.NewNop()).Predict(set)
	for _, s := range baseline {
		if s.Role == "Data Scientist" {
			t.Fatalf("Data Scientist should be below threshold without classifier")
		}
	}

	p := NewPredictor(zap.NewNop(), WithClassifier(&stubClassifier{
		probs: map[string]float64{"Data Scientist": 1.0},
	}))
	got := p.Predict(set)

	found := false
	for _, s := range got {
		if s.Role == "Data Scientist" && s.Score == 40 {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected classifier to lift Data Scientist to 40, got %+v", got)
	}
}

func TestPredictClassifierErrorFallsBackToRules(t *testing.T) {
	set := skillSet("Python", "SQL", "Machine Learning", "Pandas", "NumPy", "Statistics")

	baseline := NewPredictor(zap.NewNop()).Predict(set)
	withBroken := NewPredictor(zap.NewNop(), WithClassifier(&stubClassifier{
		err: errors.New("model artifact missing"),
	})).Predict(set)

	if len(baseline) != len(withBroken) {
		t.Fatalf("broken classifier changed predictions: %+v vs %+v", baseline, withBroken)
	}
	for i := range baseline {
		if baseline[i] != withBroken[i] {
			t.Fatalf("broken classifier changed predictions: %+v vs %+v", baseline, withBroken)
		}
	}
}
