package engine

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/pathpilot/pathpilot/internal/courses"
	"github.com/pathpilot/pathpilot/internal/jobsearch"
	"github.com/pathpilot/pathpilot/internal/roles"
)

const sampleResume = `John Doe
john.doe@example.com
(555) 123-4567

EXPERIENCE
Software Engineer at Initech 2018 - 2021
Built data pipelines with Python and SQL, deployed with Docker
on AWS Linux hosts with Git based workflows.

EDUCATION
BS in Computer Science, State University 2014 - 2018
`

func newAnalyzer(opts ...Option) *Analyzer {
	log := zap.NewNop()
	return New(log, roles.NewPredictor(log), courses.NewRecommender(log), opts...)
}

func TestAnalyze(t *testing.T) {
	a := newAnalyzer()

	got, err := a.Analyze(context.Background(), sampleResume)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Contact.Name != "John Doe" {
		t.Fatalf("unexpected contact name: %q", got.Contact.Name)
	}
	if got.Contact.Email != "john.doe@example.com" {
		t.Fatalf("unexpected email: %q", got.Contact.Email)
	}
	for _, want := range []string{"Python", "SQL", "Docker"} {
		found := false
		for _, s := range got.Skills.All {
			if s == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected skill %q in %v", want, got.Skills.All)
		}
	}
	if len(got.Education) == 0 {
		t.Fatalf("expected education entries")
	}
	if len(got.Experience) == 0 {
		t.Fatalf("expected experience entries")
	}
	if got.TotalYears != 3 {
		t.Fatalf("expected 3 total years, got %v", got.TotalYears)
	}
	if len(got.Roles) == 0 {
		t.Fatalf("expected role predictions")
	}
	if len(got.Courses.Items) == 0 {
		t.Fatalf("expected course recommendations")
	}
	if got.Jobs != nil {
		t.Fatalf("expected no jobs without a job search client")
	}
}

func TestAnalyzeEmptyTextIsError(t *testing.T) {
	a := newAnalyzer()

	if _, err := a.Analyze(context.Background(), "   \n\t"); err == nil {
		t.Fatal("expected error for empty resume text")
	}
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	a := newAnalyzer()

	first, err := a.Analyze(context.Background(), sampleResume)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := a.Analyze(context.Background(), sampleResume)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(again.Roles) != len(first.Roles) {
			t.Fatalf("non-deterministic role count")
		}
		for j := range again.Roles {
			if again.Roles[j] != first.Roles[j] {
				t.Fatalf("non-deterministic roles: %+v vs %+v", again.Roles, first.Roles)
			}
		}
	}
}

func TestAnalyzeAttachesJobsForTopRole(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	jobs := jobsearch.New(context.Background(), zap.NewNop(), "test-key")
	jobs.APIURL = srv.URL

	a := newAnalyzer(WithJobSearch(jobs))

	got, err := a.Analyze(context.Background(), sampleResume)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Jobs == nil {
		t.Fatalf("expected jobs for top role")
	}
	if got.Jobs.Source != jobsearch.SourceFallback {
		t.Fatalf("expected fallback source when api is down, got %s", got.Jobs.Source)
	}
	if len(got.Jobs.Jobs) == 0 {
		t.Fatalf("expected fallback job links")
	}
}

func TestMatch(t *testing.T) {
	a := newAnalyzer()

	job := `Senior Backend Engineer
Requires 5+ years of experience with Python, SQL and Docker.`

	got, err := a.Match(context.Background(), sampleResume, job)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SkillMatch != 100 {
		t.Fatalf("expected full skill match, got %v", got.SkillMatch)
	}
	if got.ExperienceMatch != 40 {
		t.Fatalf("expected experience match 40, got %d", got.ExperienceMatch)
	}
}

func TestMatchNeutralWhenJobHasNoSkills(t *testing.T) {
	a := newAnalyzer()

	got, err := a.Match(context.Background(), sampleResume, "We hire nice people.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SkillMatch != 60 {
		t.Fatalf("expected neutral skill match, got %v", got.SkillMatch)
	}
	if got.TotalJobSkills != 0 {
		t.Fatalf("expected no job skills, got %d", got.TotalJobSkills)
	}
}

func TestMatchValidatesBothInputs(t *testing.T) {
	a := newAnalyzer()

	if _, err := a.Match(context.Background(), "", "job text"); err == nil {
		t.Fatal("expected error for empty resume")
	}
	if _, err := a.Match(context.Background(), "resume text", ""); err == nil {
		t.Fatal("expected error for empty job description")
	}
	if _, err := a.Match(context.Background(), "", ""); err == nil {
		t.Fatal("expected error for both inputs empty")
	}
}
