package jobsearch

import "strings"

var boards = map[string]string{
	"linkedin":     "https://www.linkedin.com/jobs/search/?keywords=",
	"indeed":       "https://www.indeed.com/q-",
	"glassdoor":    "https://www.glassdoor.com/Job/jobs.htm?sc.keyword=",
	"ziprecruiter": "https://www.ziprecruiter.com/candidate/search?search=",
}

// FallbackJobs builds static job-board search links for the role,
// deduplicated by URL and capped at 5.
func FallbackJobs(role string) []Job {
	slug := slugify(role)
	plus := strings.ReplaceAll(slug, "-", "+")

	candidates := []Job{
		{Title: role + " - LinkedIn Jobs", URL: boards["linkedin"] + slug},
		{Title: role + " - Indeed Jobs", URL: boards["indeed"] + plus},
		{Title: "Remote " + role, URL: boards["linkedin"] + slug + "&location=remote"},
		{Title: "Senior " + role, URL: boards["linkedin"] + slug + "&f_E=2"},
		{Title: "Junior " + role, URL: boards["linkedin"] + slug + "&f_E=1"},
		{Title: role + " - Glassdoor", URL: boards["glassdoor"] + plus},
		{Title: role + " - ZipRecruiter", URL: boards["ziprecruiter"] + plus},
	}

	var jobs []Job
	seen := make(map[string]bool)
	for _, job := range candidates {
		if seen[job.URL] {
			continue
		}
		seen[job.URL] = true
		jobs = append(jobs, job)
		if len(jobs) == maxJobs {
			break
		}
	}
	return jobs
}

// slugify lowercases the role and collapses runs of non-alphanumeric
// characters into single dashes.
func slugify(role string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(role) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
