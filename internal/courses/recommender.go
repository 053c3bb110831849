// Package courses recommends learning resources for an extracted skill
// set. A deterministic catalog lookup always produces a result; when a
// language model provider is configured it reranks a wider candidate
// pool, falling back silently on any failure.
package courses

import (
	"context"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/pathpilot/pathpilot/internal/ai"
	"github.com/pathpilot/pathpilot/internal/logger"
)

// Source reports which path produced a recommendation.
type Source string

const (
	SourceBaseline Source = "baseline"
	SourceLLM      Source = "llm"
)

const (
	maxRecommendations = 5
	minRecommendations = 3

	baselineSkillLimit  = 8
	baselinePerKeyLimit = 2

	rerankSkillLimit   = 10
	rerankPerKeyLimit  = 3
	rerankPoolLimit    = 15
	rerankPromptSkills = 7

	defaultRerankTimeout = 8 * time.Second
)

// Item is one recommended course, tagged with the catalog skill that
// produced it.
type Item struct {
	Skill string `json:"skill"`
	Title string `json:"title"`
}

// Recommendation is the full result of a recommendation request.
type Recommendation struct {
	Items  []Item `json:"items"`
	Source Source `json:"source"`
}

// Recommender picks courses for skill sets.
type Recommender struct {
	logger    *zap.Logger
	generator ai.ContentGenerator
	timeout   time.Duration
}

// Option configures a Recommender.
type Option func(*Recommender)

// WithGenerator attaches a language model provider for reranking.
func WithGenerator(g ai.ContentGenerator) Option {
	return func(r *Recommender) { r.generator = g }
}

// WithTimeout bounds the reranking call.
func WithTimeout(d time.Duration) Option {
	return func(r *Recommender) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// NewRecommender builds a Recommender. Without a generator only the
// baseline path runs.
func NewRecommender(log *zap.Logger, opts ...Option) *Recommender {
	r := &Recommender{logger: log, timeout: defaultRerankTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Recommend returns up to 5 courses for the given skill names. The
// result is never empty.
func (r *Recommender) Recommend(ctx context.Context, skillNames []string) Recommendation {
	baseline := r.baseline(skillNames)

	if r.generator == nil {
		return Recommendation{Items: baseline, Source: SourceBaseline}
	}

	reranked, err := r.rerank(ctx, skillNames)
	if err != nil {
		r.logger.Debug("course reranking unavailable, using baseline",
			zap.Error(err),
		)
		return Recommendation{Items: baseline, Source: SourceBaseline}
	}
	return Recommendation{Items: reranked, Source: SourceLLM}
}

// baseline walks the catalog for the top skills and pads from the
// popular list when too few courses match.
func (r *Recommender) baseline(skillNames []string) []Item {
	lowered := lowerLimit(skillNames, baselineSkillLimit)

	var items []Item
	seen := make(map[string]bool)
	for _, skill := range lowered {
		for _, key := range catalogOrder {
			if !keyMatches(key, skill) {
				continue
			}
			taken := 0
			for _, title := range catalog[key] {
				if taken == baselinePerKeyLimit || len(items) == maxRecommendations {
					break
				}
				if seen[title] {
					continue
				}
				seen[title] = true
				items = append(items, Item{Skill: titleKey(key), Title: title})
				taken++
			}
		}
		if len(items) == maxRecommendations {
			break
		}
	}

	if len(items) < minRecommendations {
		for _, p := range popular {
			if len(items) == maxRecommendations {
				break
			}
			if seen[p.Title] {
				continue
			}
			seen[p.Title] = true
			items = append(items, p)
		}
	}
	return items
}

// rerank asks the configured provider to pick the best courses from a
// wider candidate pool. Any failure is an error the caller turns into a
// baseline fallback.
func (r *Recommender) rerank(ctx context.Context, skillNames []string) ([]Item, error) {
	pool := r.candidatePool(skillNames)
	if len(pool) < maxRecommendations {
		return nil, errPoolTooSmall
	}
	if len(pool) > rerankPoolLimit {
		pool = pool[:rerankPoolLimit]
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	system := "You are a career advisor. Return only numbers of the best courses for the given skills."
	user := buildRerankPrompt(skillNames, pool)

	r.logger.Debug("course rerank request",
		zap.Int("candidates", len(pool)),
		zap.String("prompt_preview", logger.TruncateForLog(user, 200)),
	)

	raw, err := r.generator.GenerateContent(ctx, system, user)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("course rerank response",
		zap.Int("response_length", utf8.RuneCountInString(raw)),
		zap.String("response_preview", logger.TruncateForLog(raw, 200)),
	)

	indices := parseSelection(raw, maxRecommendations)
	var items []Item
	for _, idx := range indices {
		if idx >= 1 && idx <= len(pool) {
			items = append(items, pool[idx-1])
		}
	}
	if len(items) == 0 {
		return nil, errNoSelection
	}
	return items, nil
}

// candidatePool collects up to 3 courses per matching catalog key for
// the top skills, deduplicated by title.
func (r *Recommender) candidatePool(skillNames []string) []Item {
	lowered := lowerLimit(skillNames, rerankSkillLimit)

	var pool []Item
	seen := make(map[string]bool)
	for _, skill := range lowered {
		for _, key := range catalogOrder {
			if !keyMatches(key, skill) {
				continue
			}
			taken := 0
			for _, title := range catalog[key] {
				if taken == rerankPerKeyLimit {
					break
				}
				if seen[title] {
					continue
				}
				seen[title] = true
				pool = append(pool, Item{Skill: titleKey(key), Title: title})
				taken++
			}
		}
	}
	return pool
}

func buildRerankPrompt(skillNames []string, pool []Item) string {
	var b strings.Builder
	b.WriteString("User skills: ")
	limit := rerankPromptSkills
	if len(skillNames) < limit {
		limit = len(skillNames)
	}
	b.WriteString(strings.Join(skillNames[:limit], ", "))
	b.WriteString("\n\nCourse options:\n")
	for i, item := range pool {
		b.WriteString(strconv.Itoa(i+1) + ". [" + item.Skill + "] " + item.Title + "\n")
	}
	b.WriteString("\nPick the 5 most relevant courses. Return numbers only, comma-separated.")
	return b.String()
}

func keyMatches(key, skill string) bool {
	return strings.Contains(skill, key) || strings.Contains(key, skill)
}

func lowerLimit(skillNames []string, limit int) []string {
	if len(skillNames) > limit {
		skillNames = skillNames[:limit]
	}
	lowered := make([]string, 0, len(skillNames))
	for _, s := range skillNames {
		lowered = append(lowered, strings.ToLower(strings.TrimSpace(s)))
	}
	return lowered
}

// titleKey renders a catalog key for display, upper-casing the first
// letter of every word.
func titleKey(key string) string {
	runes := []rune(key)
	startOfWord := true
	for i, r := range runes {
		if startOfWord {
			runes[i] = unicode.ToUpper(r)
		}
		startOfWord = !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}
	return string(runes)
}
