package jobfit

import "strings"

const (
	titleScanLines = 15
	titleMinLen    = 4
	titleMaxLen    = 99

	// DefaultJobTitle is returned when no heading in the posting looks
	// like a role name.
	DefaultJobTitle = "Software Engineer Position"
)

var titleIndicators = []string{
	"engineer", "developer", "manager", "analyst", "architect",
	"specialist", "consultant", "director", "lead", "senior",
}

// ExtractJobTitle picks the first heading-sized line in a job posting
// that mentions a role word.
func ExtractJobTitle(jobText string) string {
	lines := strings.Split(jobText, "\n")
	if len(lines) > titleScanLines {
		lines = lines[:titleScanLines]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) < titleMinLen || len(line) > titleMaxLen {
			continue
		}
		lower := strings.ToLower(line)
		for _, indicator := range titleIndicators {
			if strings.Contains(lower, indicator) {
				return line
			}
		}
	}
	return DefaultJobTitle
}
