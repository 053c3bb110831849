package classifier

import (
	"os"
	"path/filepath"
	"testing"
)

func testModel(t *testing.T) *Model {
	t.Helper()
	m, err := New(
		[]string{"python", "sql", "react"},
		[]string{"Data Scientist", "Frontend Developer"},
		[][]float64{
			{1, 1, 0},
			{0, 0, 2},
		},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return m
}

func TestEncode(t *testing.T) {
	m := testModel(t)

	vector := m.Encode([]string{"Python", "Kubernetes", " SQL "})
	want := []float64{1, 1, 0}
	for i := range want {
		if vector[i] != want[i] {
			t.Fatalf("unexpected vector: %v", vector)
		}
	}
}

func TestProbabilities(t *testing.T) {
	m := testModel(t)

	probs, err := m.Probabilities([]string{"python", "sql"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if probs["Data Scientist"] != 1.0 {
		t.Fatalf("expected full probability for Data Scientist, got %v", probs)
	}
	if probs["Frontend Developer"] != 0 {
		t.Fatalf("expected zero probability for Frontend Developer, got %v", probs)
	}
}

func TestProbabilitiesNoSignal(t *testing.T) {
	m := testModel(t)

	probs, err := m.Probabilities([]string{"cooking"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for role, p := range probs {
		if p != 0 {
			t.Fatalf("expected zero probability for %s, got %v", role, p)
		}
	}
}

func TestNewRejectsMismatchedArtifact(t *testing.T) {
	if _, err := New([]string{"python"}, []string{"A", "B"}, [][]float64{{1}}); err == nil {
		t.Fatalf("expected error for mismatched roles/weights")
	}
	if _, err := New([]string{"python", "sql"}, []string{"A"}, [][]float64{{1}}); err == nil {
		t.Fatalf("expected error for short weight row")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model.json")
	data := `{"vocabulary":["python"],"roles":["Data Scientist"],"weights":[[1]]}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write artifact: %v", err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	probs, err := m.Probabilities([]string{"python"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if probs["Data Scientist"] != 1.0 {
		t.Fatalf("unexpected probabilities: %v", probs)
	}
}

func TestLoadMissingArtifact(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatalf("expected error for missing artifact")
	}
}
