// Package extract pulls structured fields out of raw resume text using
// regular expressions and line heuristics. Everything here is best effort:
// missing fields stay empty, malformed values resolve to safe defaults and
// no function returns an error.
package extract

import (
	"regexp"
	"strings"
)

// ContactInfo holds whatever contact data could be located in the text.
// Absent fields are empty strings.
type ContactInfo struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
}

const nameScanLines = 5

var (
	emailPattern    = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern    = regexp.MustCompile(`(?:\+?[0-9]{1,3}[\s.-]?)?(?:\(?[0-9]{2,4}\)?[\s.-]?)?[0-9]{3,4}[\s.-]?[0-9]{3,4}`)
	linkedinPattern = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?linkedin\.com/in/[\w-]+`)
	githubPattern   = regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?github\.com/[\w-]+`)
	nonPhoneRunes   = regexp.MustCompile(`[^0-9+]`)
)

// Contact extracts name, email, phone and profile links. First match wins
// for each field.
func Contact(text string) ContactInfo {
	return ContactInfo{
		Name:     extractName(text),
		Email:    emailPattern.FindString(text),
		Phone:    extractPhone(text),
		LinkedIn: linkedinPattern.FindString(text),
		GitHub:   githubPattern.FindString(text),
	}
}

// extractName takes the first short line near the top that does not look
// like contact data or a URL.
func extractName(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > nameScanLines {
		lines = lines[:nameScanLines]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || len(strings.Fields(line)) > 4 {
			continue
		}
		lower := strings.ToLower(line)
		if strings.ContainsAny(line, "@") ||
			strings.Contains(lower, "http") ||
			strings.Contains(lower, "www") ||
			strings.Contains(lower, "phone") ||
			strings.Contains(lower, "email") {
			continue
		}
		return line
	}

	return ""
}

// extractPhone returns the first candidate whose digit count lands in the
// plausible 10..15 range.
func extractPhone(text string) string {
	for _, candidate := range phonePattern.FindAllString(text, -1) {
		digits := nonPhoneRunes.ReplaceAllString(candidate, "")
		digits = strings.TrimPrefix(digits, "+")
		if len(digits) >= 10 && len(digits) <= 15 {
			return strings.TrimSpace(candidate)
		}
	}
	return ""
}
