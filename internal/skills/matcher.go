// Package skills matches raw document text against the skill taxonomy.
package skills

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/pathpilot/pathpilot/internal/taxonomy"
)

// MaxSkills bounds the extracted list to keep downstream scoring cheap.
const MaxSkills = 20

// Set is the outcome of a single extraction: display names in first-seen
// order plus the same names grouped by taxonomy department.
type Set struct {
	All          []string
	ByDepartment map[string][]string
}

// Default substituted when a document yields no skills at all, so scoring
// never runs on an empty set.
var Default = []string{
	"Python", "JavaScript", "SQL", "Communication", "Problem Solving",
	"Git", "HTML", "CSS", "Teamwork", "Leadership",
}

type matcher struct {
	entry taxonomy.Entry
	key   string
	// pattern is nil for names whose edges are not word characters
	// (C++, C#); \b cannot anchor against punctuation, so those rely
	// on plain containment.
	pattern *regexp.Regexp
}

var (
	entryMatchers     []matcher
	variationMatchers []matcher
)

func init() {
	for _, e := range taxonomy.Entries() {
		key := strings.ToLower(e.Name)
		entryMatchers = append(entryMatchers, matcher{
			entry:   e,
			key:     key,
			pattern: boundaryPattern(key),
		})
	}
	for abbr := range taxonomy.Variations {
		e, ok := taxonomy.Lookup(abbr)
		if !ok {
			continue
		}
		variationMatchers = append(variationMatchers, matcher{
			entry:   e,
			key:     abbr,
			pattern: boundaryPattern(abbr),
		})
	}
}

func boundaryPattern(key string) *regexp.Regexp {
	runes := []rune(key)
	if len(runes) == 0 {
		return nil
	}
	if !isWordRune(runes[0]) || !isWordRune(runes[len(runes)-1]) {
		return nil
	}
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(key) + `\b`)
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func (m matcher) matches(textLower string) bool {
	// Containment is the cheap precheck; word-boundary confirmation
	// keeps "react" out of "reaction".
	if !strings.Contains(textLower, m.key) {
		return false
	}
	if m.pattern == nil {
		return true
	}
	return m.pattern.MatchString(textLower)
}

// Extract scans text against the taxonomy and returns the matched skills
// in first-seen catalog order, deduplicated and capped at MaxSkills. An
// empty result is replaced with the Default starter set.
func Extract(text string) *Set {
	return extract(text, true)
}

// ExtractRequired works like Extract but never backfills the Default
// set. Job descriptions that name no skills must stay empty so fit
// scoring can treat the absence of signal as neutral.
func ExtractRequired(text string) *Set {
	return extract(text, false)
}

func extract(text string, backfill bool) *Set {
	set := &Set{ByDepartment: make(map[string][]string)}
	textLower := strings.ToLower(text)
	seen := make(map[string]bool)

	add := func(e taxonomy.Entry) {
		if len(set.All) >= MaxSkills || seen[e.Name] {
			return
		}
		seen[e.Name] = true
		set.All = append(set.All, e.Name)
		set.ByDepartment[e.Department] = append(set.ByDepartment[e.Department], e.Name)
	}

	if strings.TrimSpace(textLower) != "" {
		for _, m := range entryMatchers {
			if m.matches(textLower) {
				add(m.entry)
			}
		}
		for _, m := range variationMatchers {
			if m.matches(textLower) {
				add(m.entry)
			}
		}
	}

	if backfill && len(set.All) == 0 {
		for _, name := range Default {
			if e, ok := taxonomy.Lookup(name); ok {
				add(e)
			}
		}
	}

	return set
}

// Lowered returns the set's skills lower-cased, preserving order.
func (s *Set) Lowered() []string {
	out := make([]string, 0, len(s.All))
	for _, name := range s.All {
		out = append(out, strings.ToLower(name))
	}
	return out
}
