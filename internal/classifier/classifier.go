// Package classifier consumes the offline-trained skill->role model. The
// artifact is a JSON export of the training pipeline: the skill
// vocabulary the encoder was fitted on, the role labels, and one weight
// row per role. The engine only consumes probabilities; training lives
// elsewhere.
package classifier

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Artifact mirrors the exported model file.
type artifact struct {
	Vocabulary []string    `json:"vocabulary"`
	Roles      []string    `json:"roles"`
	Weights    [][]float64 `json:"weights"`
}

// Model scores binary skill vectors against per-role weight rows.
type Model struct {
	vocabulary map[string]int
	roles      []string
	weights    [][]float64
}

// Load reads a model artifact from disk. A missing or malformed artifact
// is an error the caller treats as "collaborator absent".
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model artifact: %w", err)
	}

	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parsing model artifact: %w", err)
	}
	return New(a.Vocabulary, a.Roles, a.Weights)
}

// New builds a model from in-memory artifact data.
func New(vocabulary, roles []string, weights [][]float64) (*Model, error) {
	if len(roles) != len(weights) {
		return nil, fmt.Errorf("model artifact mismatch: %d roles, %d weight rows", len(roles), len(weights))
	}
	vocab := make(map[string]int, len(vocabulary))
	for i, term := range vocabulary {
		vocab[strings.ToLower(term)] = i
	}
	for i, row := range weights {
		if len(row) != len(vocabulary) {
			return nil, fmt.Errorf("weight row %d has %d entries, want %d", i, len(row), len(vocabulary))
		}
	}
	return &Model{vocabulary: vocab, roles: roles, weights: weights}, nil
}

// Encode turns skill names into a binary vector over the fixed
// vocabulary. Unknown skills are ignored.
func (m *Model) Encode(skillNames []string) []float64 {
	vector := make([]float64, len(m.vocabulary))
	for _, name := range skillNames {
		if idx, ok := m.vocabulary[strings.ToLower(strings.TrimSpace(name))]; ok {
			vector[idx] = 1
		}
	}
	return vector
}

// Probabilities implements the roles.Classifier contract: per-role
// normalized scores for the given skills.
func (m *Model) Probabilities(skillNames []string) (map[string]float64, error) {
	vector := m.Encode(skillNames)

	scores := make([]float64, len(m.roles))
	var total float64
	for i, row := range m.weights {
		var dot float64
		for j, w := range row {
			dot += w * vector[j]
		}
		if dot < 0 {
			dot = 0
		}
		scores[i] = dot
		total += dot
	}

	probs := make(map[string]float64, len(m.roles))
	for i, role := range m.roles {
		if total > 0 {
			probs[role] = scores[i] / total
		} else {
			probs[role] = 0
		}
	}
	return probs, nil
}
