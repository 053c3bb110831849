// Package engine ties the extraction, prediction and recommendation
// stages into one analysis pipeline.
package engine

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/pathpilot/pathpilot/internal/courses"
	"github.com/pathpilot/pathpilot/internal/extract"
	"github.com/pathpilot/pathpilot/internal/jobfit"
	"github.com/pathpilot/pathpilot/internal/jobsearch"
	"github.com/pathpilot/pathpilot/internal/roles"
	"github.com/pathpilot/pathpilot/internal/skills"
)

// extractionWorkers bounds the concurrent field extractors.
const extractionWorkers = 3

var (
	errEmptyResume = errors.New("resume text is empty")
	errEmptyJob    = errors.New("job description text is empty")
)

// Analysis is the complete result for one resume.
type Analysis struct {
	Contact    extract.ContactInfo       `json:"contact"`
	Skills     *skills.Set               `json:"skills"`
	Education  []string                  `json:"education"`
	Experience []extract.ExperienceEntry `json:"experience"`
	TotalYears float64                   `json:"total_years"`
	Roles      []roles.Score             `json:"roles"`
	Courses    courses.Recommendation    `json:"courses"`
	Jobs       *jobsearch.Result         `json:"jobs,omitempty"`
}

// Analyzer runs the analysis pipeline. It holds no mutable state and is
// safe for concurrent use.
type Analyzer struct {
	logger      *zap.Logger
	predictor   *roles.Predictor
	recommender *courses.Recommender
	jobs        *jobsearch.Client
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithJobSearch attaches the job-search collaborator. Without it the
// analysis carries no job listings.
func WithJobSearch(c *jobsearch.Client) Option {
	return func(a *Analyzer) { a.jobs = c }
}

// New builds an Analyzer.
func New(logger *zap.Logger, predictor *roles.Predictor, recommender *courses.Recommender, opts ...Option) *Analyzer {
	a := &Analyzer{
		logger:      logger,
		predictor:   predictor,
		recommender: recommender,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze extracts every field from the resume text and derives role
// predictions and course recommendations. Empty input is the only
// error; collaborator failures degrade to fallbacks inside each stage.
func (a *Analyzer) Analyze(ctx context.Context, text string) (*Analysis, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errEmptyResume
	}

	analysis := &Analysis{}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(extractionWorkers)

	g.Go(func() error {
		analysis.Contact = extract.Contact(text)
		return gctx.Err()
	})
	g.Go(func() error {
		analysis.Skills = skills.Extract(text)
		return gctx.Err()
	})
	g.Go(func() error {
		analysis.Education = extract.Education(text)
		return gctx.Err()
	})
	g.Go(func() error {
		analysis.Experience = extract.Experience(text)
		analysis.TotalYears = extract.TotalYears(analysis.Experience)
		return gctx.Err()
	})

	if err := g.Wait(); err != nil {
		return nil, multierr.Append(errors.New("resume extraction interrupted"), err)
	}

	analysis.Roles = a.predictor.Predict(analysis.Skills)
	analysis.Courses = a.recommender.Recommend(ctx, analysis.Skills.All)

	if a.jobs != nil && len(analysis.Roles) > 0 {
		analysis.Jobs = a.jobs.JobsForRole(analysis.Roles[0].Role)
	}

	a.logger.Debug("resume analyzed",
		zap.Int("skills", len(analysis.Skills.All)),
		zap.Int("education_entries", len(analysis.Education)),
		zap.Int("experience_entries", len(analysis.Experience)),
		zap.Int("predicted_roles", len(analysis.Roles)),
		zap.String("course_source", string(analysis.Courses.Source)),
	)

	return analysis, nil
}

// Match scores a resume against a job description. Both texts must be
// non-empty; validation failures for the two inputs are reported
// together.
func (a *Analyzer) Match(ctx context.Context, resumeText, jobText string) (*jobfit.Result, error) {
	var err error
	if strings.TrimSpace(resumeText) == "" {
		err = multierr.Append(err, errEmptyResume)
	}
	if strings.TrimSpace(jobText) == "" {
		err = multierr.Append(err, errEmptyJob)
	}
	if err != nil {
		return nil, err
	}

	var resumeSet, jobSet *skills.Set

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(extractionWorkers)
	g.Go(func() error {
		resumeSet = skills.Extract(resumeText)
		return nil
	})
	g.Go(func() error {
		jobSet = skills.ExtractRequired(jobText)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := jobfit.Compute(resumeSet.All, jobSet.All, resumeText, jobText)

	a.logger.Debug("job fit computed",
		zap.String("job_title", jobfit.ExtractJobTitle(jobText)),
		zap.Float64("overall_score", result.OverallScore),
		zap.String("match_level", result.MatchLevel),
	)

	return result, nil
}
