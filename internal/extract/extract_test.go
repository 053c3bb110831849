package extract

import (
	"strings"
	"testing"
)

const sampleResume = `John Doe
Email: john.doe@email.com | Phone: (555) 123-4567
https://www.linkedin.com/in/john-doe
github.com/johndoe

SUMMARY
Experienced software engineer with 5+ years in full-stack development.

WORK EXPERIENCE

Senior Software Engineer | TechCorp Inc. | 2020 - Present
Led development of microservices using Python and Docker
Mentored junior developers

Full Stack Developer | Startup Innovations | 2018 - 2020
Developed RESTful APIs serving 10k+ daily users

EDUCATION

BS Computer Science | University of Technology | 2014 - 2018
GPA: 3.8/4.0

SKILLS
Python, JavaScript, SQL
`

func TestContact(t *testing.T) {
	c := Contact(sampleResume)

	if c.Name != "John Doe" {
		t.Fatalf("unexpected name: %q", c.Name)
	}
	if c.Email != "john.doe@email.com" {
		t.Fatalf("unexpected email: %q", c.Email)
	}
	if !strings.Contains(c.Phone, "123-4567") {
		t.Fatalf("unexpected phone: %q", c.Phone)
	}
	if !strings.Contains(c.LinkedIn, "linkedin.com/in/john-doe") {
		t.Fatalf("unexpected linkedin: %q", c.LinkedIn)
	}
	if !strings.Contains(c.GitHub, "github.com/johndoe") {
		t.Fatalf("unexpected github: %q", c.GitHub)
	}
}

func TestContactSkipsNoiseLinesForName(t *testing.T) {
	text := "email: someone@example.com\nwww.example.com\nJane Smith\n"
	c := Contact(text)
	if c.Name != "Jane Smith" {
		t.Fatalf("unexpected name: %q", c.Name)
	}
}

func TestContactEmptyText(t *testing.T) {
	c := Contact("")
	if c != (ContactInfo{}) {
		t.Fatalf("expected zero contact info, got %+v", c)
	}
}

func TestEducationJoinsFollowingLine(t *testing.T) {
	entries := Education(sampleResume)

	if len(entries) == 0 {
		t.Fatalf("expected education entries")
	}
	found := false
	for _, e := range entries {
		if strings.Contains(e, "BS Computer Science") && strings.Contains(e, "GPA: 3.8/4.0") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected degree line joined with GPA line, got %v", entries)
	}
}

func TestEducationStopsJoinAtSectionBoundary(t *testing.T) {
	text := "MBA Finance\nSKILLS\nExcel"
	entries := Education(text)

	if len(entries) != 1 {
		t.Fatalf("expected a single entry, got %v", entries)
	}
	if entries[0] != "MBA Finance" {
		t.Fatalf("expected join to stop at section heading, got %q", entries[0])
	}
}

func TestEducationDeduplicatesAndCaps(t *testing.T) {
	line := "Bachelor of Science in Physics"
	text := strings.Repeat(line+"\n\n", 3)
	entries := Education(text)
	if len(entries) != 1 {
		t.Fatalf("expected deduplicated entry, got %v", entries)
	}

	var sb strings.Builder
	for i := 0; i < 10; i++ {
		sb.WriteString("Bachelor of Science cohort ")
		sb.WriteByte(byte('A' + i))
		sb.WriteString("\n\n")
	}
	entries = Education(sb.String())
	if len(entries) != maxEducationEntries {
		t.Fatalf("expected cap of %d, got %d", maxEducationEntries, len(entries))
	}
}

func TestExperienceFindsDatedEntries(t *testing.T) {
	entries := Experience(sampleResume)

	if len(entries) != 2 {
		t.Fatalf("expected 2 experience entries, got %v", entries)
	}
	if !strings.Contains(entries[0].Text, "TechCorp") {
		t.Fatalf("unexpected first entry: %q", entries[0].Text)
	}
	if !strings.Contains(entries[0].Text, "Mentored junior developers") {
		t.Fatalf("expected context lines joined, got %q", entries[0].Text)
	}
	if entries[1].Years != 2 {
		t.Fatalf("expected 2 years for 2018 - 2020, got %v", entries[1].Years)
	}
}

func TestExperienceIgnoresEducationDates(t *testing.T) {
	entries := Experience(sampleResume)
	for _, e := range entries {
		if strings.Contains(e.Text, "University of Technology") {
			t.Fatalf("education entry leaked into experience: %q", e.Text)
		}
	}
}

func TestYearsOpenEndedRange(t *testing.T) {
	restore := nowYear
	nowYear = func() int { return 2026 }
	defer func() { nowYear = restore }()

	if got := Years("2020 - Present"); got != 6 {
		t.Fatalf("expected 6 years, got %v", got)
	}
}

func TestYearsMalformedRanges(t *testing.T) {
	cases := []string{"", "no dates here", "2020", "2022 - 2019"}
	for _, c := range cases {
		if got := Years(c); got != 0 {
			t.Fatalf("Years(%q) = %v, want 0", c, got)
		}
	}
}

func TestYearsPlainRange(t *testing.T) {
	if got := Years("Jan 2014 - Dec 2018"); got != 4 {
		t.Fatalf("expected 4 years, got %v", got)
	}
}

func TestTotalYears(t *testing.T) {
	entries := []ExperienceEntry{{Years: 2}, {Years: 3.5}}
	if got := TotalYears(entries); got != 5.5 {
		t.Fatalf("expected 5.5, got %v", got)
	}
}
