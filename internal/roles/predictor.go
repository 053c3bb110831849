package roles

import (
	"math"
	"math/rand"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/pathpilot/pathpilot/internal/skills"
)

const (
	pointsPerSkill = 10
	breadthBonus3  = 15
	breadthBonus5  = 25
	minScore       = 30
	maxScore       = 98
	topN           = 5

	classifierBlend = 20
)

// Score is one ranked role prediction. Scores are integers in [0, 98].
type Score struct {
	Role  string `json:"role"`
	Score int    `json:"score"`
}

// Classifier is the optional statistical collaborator. It reports a
// probability per role name for a binary-encoded skill vector. Any error
// simply leaves the rule-based scores untouched.
type Classifier interface {
	Probabilities(skillNames []string) (map[string]float64, error)
}

// Predictor ranks catalog roles against extracted skill sets.
type Predictor struct {
	catalog    []Requirement
	logger     *zap.Logger
	classifier Classifier
	jitter     *rand.Rand
}

// Option configures a Predictor.
type Option func(*Predictor)

// WithClassifier attaches the statistical classifier collaborator.
func WithClassifier(c Classifier) Option {
	return func(p *Predictor) { p.classifier = c }
}

// WithJitter enables score jitter from the given source. Off by default so
// predictions stay deterministic.
func WithJitter(r *rand.Rand) Option {
	return func(p *Predictor) { p.jitter = r }
}

// NewPredictor builds a Predictor over the static catalog.
func NewPredictor(logger *zap.Logger, opts ...Option) *Predictor {
	p := &Predictor{catalog: Catalog, logger: logger}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Predict scores every eligible role against the skill set and returns up
// to the top 5, sorted by score descending with catalog-order tie-breaks.
func (p *Predictor) Predict(set *skills.Set) []Score {
	dominant := dominantDepartment(set)
	lowered := set.Lowered()

	probs := p.classifierProbabilities(lowered)

	var scores []Score
	for _, role := range p.catalog {
		if role.Department != dominant && role.Weight < UniversalWeight {
			continue
		}

		matched := 0
		for _, required := range role.Skills {
			for _, skill := range lowered {
				if strings.Contains(skill, required) || strings.Contains(required, skill) {
					matched++
					break
				}
			}
		}

		score := int(math.Round(float64(matched*pointsPerSkill) * role.Weight))
		if matched >= 3 {
			score += breadthBonus3
		}
		if matched >= 5 {
			score += breadthBonus5
		}
		if prob, ok := probs[role.Name]; ok {
			score += int(math.Round(prob * classifierBlend))
		}
		if p.jitter != nil && score > 0 {
			score = jitterScore(score, p.jitter)
		}

		if score <= minScore {
			continue
		}
		if score > maxScore {
			score = maxScore
		}
		scores = append(scores, Score{Role: role.Name, Score: score})
	}

	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].Score > scores[j].Score
	})
	if len(scores) > topN {
		scores = scores[:topN]
	}

	p.logger.Debug("predicted roles",
		zap.String("dominant_department", dominant),
		zap.Int("candidates", len(scores)),
	)

	return scores
}

// classifierProbabilities consults the collaborator when present. Errors
// are logged and swallowed; the rule-based path always runs.
func (p *Predictor) classifierProbabilities(lowered []string) map[string]float64 {
	if p.classifier == nil {
		return nil
	}
	probs, err := p.classifier.Probabilities(lowered)
	if err != nil {
		p.logger.Warn("role classifier unavailable, using rule-based scoring only", zap.Error(err))
		return nil
	}
	return probs
}

// dominantDepartment picks the department with the most matched skills.
// Ties resolve to the department seen first in the skill set.
func dominantDepartment(set *skills.Set) string {
	best := ""
	bestCount := -1
	seenOrder := make(map[string]int)

	for i, name := range set.All {
		e, ok := lookupDepartment(set, name)
		if !ok {
			continue
		}
		if _, seen := seenOrder[e]; !seen {
			seenOrder[e] = i
		}
	}

	for dept, names := range set.ByDepartment {
		count := len(names)
		if count > bestCount || (count == bestCount && seenOrder[dept] < seenOrder[best]) {
			best = dept
			bestCount = count
		}
	}
	return best
}

func lookupDepartment(set *skills.Set, name string) (string, bool) {
	for dept, names := range set.ByDepartment {
		for _, n := range names {
			if n == name {
				return dept, true
			}
		}
	}
	return "", false
}

// jitterScore applies the optional +/-5 realism noise, clamped to the
// 60..98 band the original scorer used.
func jitterScore(score int, r *rand.Rand) int {
	score += r.Intn(11) - 5
	if score < 60 {
		score = 60
	}
	if score > maxScore {
		score = maxScore
	}
	return score
}
