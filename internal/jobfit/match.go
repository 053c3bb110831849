// Package jobfit compares an extracted resume skill set against a job
// description and produces a weighted fit score with a categorical
// verdict.
package jobfit

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"
)

// Match levels, derived from the overall score.
const (
	LevelExcellent        = "Excellent Match"
	LevelGood             = "Good Match"
	LevelFair             = "Fair Match"
	LevelNeedsImprovement = "Needs Improvement"
)

const (
	// neutralSkillMatch is used when the job description yields no
	// extractable skills: absence of signal is not a 0% match.
	neutralSkillMatch = 60.0
	// neutralExperienceMatch applies when the job states no
	// experience requirement.
	neutralExperienceMatch = 80
	// defaultResumeYears assumes a junior-to-mid baseline when the
	// resume states nothing explicit.
	defaultResumeYears = 2

	skillWeight      = 0.7
	experienceWeight = 0.3
)

// Result is the full fit verdict for one resume/job pair.
type Result struct {
	OverallScore       float64  `json:"overall_score"`
	MatchLevel         string   `json:"match_level"`
	SkillMatch         float64  `json:"skill_match"`
	ExperienceMatch    int      `json:"experience_match"`
	MatchedSkills      []string `json:"matched_skills"`
	MissingSkills      []string `json:"missing_skills"`
	TotalJobSkills     int      `json:"total_job_skills"`
	TotalResumeSkills  int      `json:"total_resume_skills"`
	ResumeExperience   int      `json:"resume_experience"`
	RequiredExperience int      `json:"required_experience"`
}

var jobExperiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*(?:plus\s*)?years?[^\n]*?experience`),
	regexp.MustCompile(`experience[^\n]*?(\d+)\+?\s*(?:plus\s*)?years?`),
	regexp.MustCompile(`minimum[^\n]*?(\d+)\+?\s*years?`),
	regexp.MustCompile(`at least[^\n]*?(\d+)\+?\s*years?`),
}

var resumeExperiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*(?:plus\s*)?years?[^\n]*?experience`),
	regexp.MustCompile(`experience[^\n]*?(\d+)\+?\s*(?:plus\s*)?years?`),
}

// Compute scores resumeSkills against jobSkills with the 70/30 skill and
// experience weighting.
func Compute(resumeSkills, jobSkills []string, resumeText, jobText string) *Result {
	resumeSet := lowerSet(resumeSkills)
	jobSet := lowerSet(jobSkills)

	var matched, missing []string
	skillMatch := neutralSkillMatch
	if len(jobSet) > 0 {
		for skill := range jobSet {
			if resumeSet[skill] {
				matched = append(matched, capitalize(skill))
			} else {
				missing = append(missing, capitalize(skill))
			}
		}
		skillMatch = float64(len(matched)) / float64(len(jobSet)) * 100
	}
	sort.Strings(matched)
	sort.Strings(missing)

	resumeYears := ResumeExperienceYears(resumeText)
	requiredYears := RequiredExperienceYears(jobText)
	expMatch := experienceScore(resumeYears, requiredYears)

	overall := round2(skillMatch*skillWeight + float64(expMatch)*experienceWeight)

	return &Result{
		OverallScore:       overall,
		MatchLevel:         level(overall),
		SkillMatch:         round2(skillMatch),
		ExperienceMatch:    expMatch,
		MatchedSkills:      matched,
		MissingSkills:      missing,
		TotalJobSkills:     len(jobSet),
		TotalResumeSkills:  len(resumeSet),
		ResumeExperience:   resumeYears,
		RequiredExperience: requiredYears,
	}
}

// RequiredExperienceYears pulls the stated requirement out of a job
// description. No stated requirement means 0.
func RequiredExperienceYears(jobText string) int {
	return firstCapturedInt(jobExperiencePatterns, jobText, 0)
}

// ResumeExperienceYears pulls the candidate's stated experience out of a
// resume, assuming 2 years when nothing is stated.
func ResumeExperienceYears(resumeText string) int {
	return firstCapturedInt(resumeExperiencePatterns, resumeText, defaultResumeYears)
}

func firstCapturedInt(patterns []*regexp.Regexp, text string, fallback int) int {
	lower := strings.ToLower(text)
	for _, p := range patterns {
		if m := p.FindStringSubmatch(lower); len(m) > 1 {
			n := 0
			for _, r := range m[1] {
				n = n*10 + int(r-'0')
			}
			return n
		}
	}
	return fallback
}

func experienceScore(resumeYears, requiredYears int) int {
	if requiredYears <= 0 {
		return neutralExperienceMatch
	}
	switch {
	case float64(resumeYears) >= float64(requiredYears):
		return 100
	case float64(resumeYears) >= float64(requiredYears)*0.7:
		return 70
	default:
		return 40
	}
}

func level(score float64) string {
	switch {
	case score >= 80:
		return LevelExcellent
	case score >= 60:
		return LevelGood
	case score >= 40:
		return LevelFair
	default:
		return LevelNeedsImprovement
	}
}

func lowerSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			set[s] = true
		}
	}
	return set
}

// capitalize upper-cases the first rune and lower-cases the rest, so
// "sql" renders as "Sql" in output listings.
func capitalize(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return s
	}
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
