package extract

import (
	"regexp"
	"strings"
	"time"
)

// ExperienceEntry is one dated position: the matched line joined with up
// to three context lines, plus the derived duration when a date range was
// present.
type ExperienceEntry struct {
	Text  string  `json:"text"`
	Years float64 `json:"years"`
}

const experienceContextLines = 3

var (
	yearPattern      = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	openEndedPattern = regexp.MustCompile(`(?i)\b(present|current|now|ongoing)\b`)
)

// nowYear is overridable in tests so open-ended ranges stay deterministic.
var nowYear = func() int { return time.Now().Year() }

// Experience locates dated lines inside the experience section and joins
// each with following context lines that do not open another section.
func Experience(text string) []ExperienceEntry {
	lines := strings.Split(text, "\n")
	var out []ExperienceEntry

	state := stateOutside
	for i := 0; i < len(lines); i++ {
		trimmed := strings.TrimSpace(lines[i])
		prev := state
		state = state.next(trimmed)
		if prev != stateInExperience || state != stateInExperience {
			continue
		}
		if trimmed == "" || !yearPattern.MatchString(trimmed) {
			continue
		}

		entry := trimmed
		joined := 0
		for j := i + 1; j < len(lines) && joined < experienceContextLines; j++ {
			next := strings.TrimSpace(lines[j])
			if next == "" {
				break
			}
			if startsNewSection(next) || yearPattern.MatchString(next) {
				break
			}
			entry += " " + next
			joined++
		}

		out = append(out, ExperienceEntry{
			Text:  entry,
			Years: Years(trimmed),
		})
	}

	return out
}

// Years derives a duration from the first two 4-digit years in a date
// range. Open-ended ranges (Present, Current) close at the current year.
// Malformed ranges yield 0; the result is never negative.
func Years(dateRange string) float64 {
	years := yearPattern.FindAllString(dateRange, -1)

	var start, end int
	switch {
	case len(years) >= 2:
		start = atoiYear(years[0])
		end = atoiYear(years[1])
	case len(years) == 1 && openEndedPattern.MatchString(dateRange):
		start = atoiYear(years[0])
		end = nowYear()
	default:
		return 0
	}

	if end < start {
		return 0
	}
	return float64(end - start)
}

// TotalYears sums the durations of all entries.
func TotalYears(entries []ExperienceEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.Years
	}
	return total
}

func atoiYear(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
