package extract

import "strings"

// sectionState tracks which resume section the line scanner is in. The
// transitions are keyword driven: a heading such as "WORK EXPERIENCE"
// opens the experience section, and any other section heading closes it.
type sectionState int

const (
	stateOutside sectionState = iota
	stateInEducation
	stateInExperience
)

var (
	experienceKeywords = []string{"experience", "employment", "work history", "career history"}
	educationKeywords  = []string{"education", "academic", "qualification"}
	otherSectionWords  = []string{"skill", "project", "certification", "summary", "objective"}
)

func containsAny(lower string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// opensExperience reports whether a line reads like an experience heading.
func opensExperience(line string) bool {
	return containsAny(strings.ToLower(line), experienceKeywords)
}

// opensEducation reports whether a line reads like an education heading.
func opensEducation(line string) bool {
	return containsAny(strings.ToLower(line), educationKeywords)
}

// opensOtherSection reports whether a line starts a section that is
// neither education nor experience.
func opensOtherSection(line string) bool {
	return containsAny(strings.ToLower(line), otherSectionWords)
}

// startsNewSection reports whether the line opens any section at all,
// which terminates context joining for the current entry.
func startsNewSection(line string) bool {
	lower := strings.ToLower(line)
	return containsAny(lower, experienceKeywords) ||
		containsAny(lower, educationKeywords) ||
		containsAny(lower, otherSectionWords)
}

// next computes the scanner state after seeing a line.
func (s sectionState) next(line string) sectionState {
	switch {
	case opensExperience(line):
		return stateInExperience
	case opensEducation(line):
		return stateInEducation
	case opensOtherSection(line):
		return stateOutside
	default:
		return s
	}
}
