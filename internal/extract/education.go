package extract

import (
	"regexp"
	"strings"
)

const maxEducationEntries = 5

var educationKeywordList = []string{
	"bachelor", "master", "phd", "doctorate", "b.tech", "m.tech", "btech",
	"mtech", "b.sc", "m.sc", "bsc", "msc", "bca", "mca", "mba",
	"undergraduate", "graduate", "diploma", "degree", "university",
	"college", "institute",
}

var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bbachelor(?:'?s)?\b`),
	regexp.MustCompile(`(?i)\bmaster(?:'?s)?\b`),
	regexp.MustCompile(`(?i)\b(?:phd|ph\.d|doctorate)\b`),
	regexp.MustCompile(`(?i)\b(?:b\.?tech|m\.?tech|b\.?sc|m\.?sc)\b`),
	regexp.MustCompile(`(?i)\b(?:mba|bba|bca|mca)\b`),
	regexp.MustCompile(`(?i)\b(?:bs|ms|ba|ma)\s+[A-Za-z]`),
}

func looksLikeEducation(line string) bool {
	lower := strings.ToLower(line)
	if containsAny(lower, educationKeywordList) {
		return true
	}
	for _, p := range degreePatterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

// Education scans for degree/institution lines. A matched line is joined
// with the following line to recover multi-line degree descriptions,
// unless that next line opens a different section. Entries are
// deduplicated and capped at 5.
func Education(text string) []string {
	lines := strings.Split(text, "\n")
	var out []string
	seen := make(map[string]bool)

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || !looksLikeEducation(trimmed) {
			continue
		}

		entry := trimmed
		if i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if next != "" && !opensExperience(next) && !opensOtherSection(next) {
				entry += " " + next
			}
		}

		if seen[entry] {
			continue
		}
		seen[entry] = true
		out = append(out, entry)
		if len(out) >= maxEducationEntries {
			break
		}
	}

	return out
}
