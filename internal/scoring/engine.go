package scoring

import (
	"context"
	"math"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/cv-matcher/internal/features"
	"github.com/jonathan/cv-matcher/internal/similarity"
	"github.com/jonathan/cv-matcher/internal/textproc"
	"github.com/jonathan/cv-matcher/internal/types"
)

// Engine calculates weighted match scores. The weight configuration is the
// only mutable state; everything else is stateless per call, so independent
// match requests can run concurrently.
type Engine struct {
	sim       *similarity.Engine
	extractor *features.Extractor
	segmenter *textproc.Segmenter

	mu      sync.RWMutex
	weights Weights
}

// NewEngine creates a scoring engine with the default weights. A nil extractor
// or segmenter selects the built-in vocabulary tables.
func NewEngine(sim *similarity.Engine, extractor *features.Extractor, segmenter *textproc.Segmenter) *Engine {
	if extractor == nil {
		extractor = features.Default()
	}
	if segmenter == nil {
		segmenter = textproc.DefaultSegmenter()
	}
	return &Engine{
		sim:       sim,
		extractor: extractor,
		segmenter: segmenter,
		weights:   DefaultWeights(),
	}
}

// SetWeights atomically replaces the active weight set for subsequent calls.
// An invalid set is rejected and the prior weights remain in effect.
func (e *Engine) SetWeights(w Weights) error {
	if err := w.Validate(); err != nil {
		return err
	}
	e.mu.Lock()
	e.weights = w
	e.mu.Unlock()
	return nil
}

// Weights returns the active weight set.
func (e *Engine) Weights() Weights {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.weights
}

// Score computes the composite match score between a CV and a job description.
// Section maps may be nil; per-section similarity is then omitted, but feature
// extraction still segments the texts itself. An embedding provider failure is
// returned as the request's error, never folded into a zero score.
func (e *Engine) Score(ctx context.Context, cvText, jobText string, cvSections, jobSections *types.SectionMap) (*types.ScoreResult, error) {
	var (
		overall    float64
		perSection map[types.SectionLabel]float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		overall, err = e.sim.OverallSimilarity(gctx, cvText, jobText)
		return err
	})
	if cvSections != nil && jobSections != nil {
		g.Go(func() error {
			var err error
			perSection, err = e.sim.SectionSimilarities(gctx, cvSections, jobSections)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if perSection == nil {
		perSection = map[types.SectionLabel]float64{}
	}

	cvFeatSections := cvSections
	if cvFeatSections == nil {
		cvFeatSections = e.segmenter.Segment(cvText)
	}
	jobFeatSections := jobSections
	if jobFeatSections == nil {
		jobFeatSections = e.segmenter.Segment(jobText)
	}

	cvSkills := e.extractor.Skills(cvText, cvFeatSections)
	jobSkills := e.extractor.Skills(jobText, jobFeatSections)
	skillsMatch, matched, missing := skillsOverlap(cvSkills, jobSkills)

	experienceMatch := e.experienceMatch(cvText, jobText, perSection)
	educationMatch := e.educationMatch(cvFeatSections, jobFeatSections, perSection)

	weights := e.Weights()
	final := overall*weights.OverallSimilarity +
		skillsMatch*weights.SkillsMatch +
		experienceMatch*weights.ExperienceMatch +
		educationMatch*weights.EducationMatch

	perSectionPct := make(map[types.SectionLabel]float64, len(perSection))
	for label, sim := range perSection {
		perSectionPct[label] = round2(sim * 100)
	}

	return &types.ScoreResult{
		FinalScore:           round2(final * 100),
		OverallSimilarity:    round2(overall * 100),
		SkillsMatch:          round2(skillsMatch * 100),
		ExperienceMatch:      round2(experienceMatch * 100),
		EducationMatch:       round2(educationMatch * 100),
		PerSectionSimilarity: perSectionPct,
		MatchedSkills:        matched,
		MissingSkills:        missing,
		SkillCounts: types.SkillCounts{
			CV:      len(cvSkills),
			Job:     len(jobSkills),
			Matched: len(matched),
		},
	}, nil
}

// skillsOverlap returns |cv ∩ job| / |job| plus the sorted matched and missing
// skill lists. An empty job skill set scores 0.
func skillsOverlap(cvSkills, jobSkills []string) (float64, []string, []string) {
	matched := []string{}
	missing := []string{}
	if len(jobSkills) == 0 {
		return 0.0, matched, missing
	}

	cvSet := make(map[string]struct{}, len(cvSkills))
	for _, skill := range cvSkills {
		cvSet[skill] = struct{}{}
	}
	for _, skill := range jobSkills {
		if _, ok := cvSet[skill]; ok {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)

	return float64(len(matched)) / float64(len(jobSkills)), matched, missing
}

// experienceMatch compares numeric years estimates when both sides have one:
// full credit when the CV meets the requirement, linear partial credit below
// it. Without two estimates it falls back to the experience section
// similarity, 0.0 if that is absent.
func (e *Engine) experienceMatch(cvText, jobText string, perSection map[types.SectionLabel]float64) float64 {
	cvYears, cvOK := e.extractor.ExperienceYears(cvText)
	jobYears, jobOK := e.extractor.ExperienceYears(jobText)

	if cvOK && jobOK {
		if cvYears >= jobYears {
			return 1.0
		}
		return math.Max(0.0, cvYears/jobYears)
	}

	return perSection[types.SectionExperience]
}

// educationMatch gives full credit when both sides have education entries and
// half credit when only the job does. This is a deliberately lenient
// presence-only check; degree levels and fields are not compared. Without job
// entries it falls back to the education section similarity, 0.0 if absent.
func (e *Engine) educationMatch(cvSections, jobSections *types.SectionMap, perSection map[types.SectionLabel]float64) float64 {
	jobEducation := e.extractor.Education(jobSections)
	if len(jobEducation) > 0 {
		if len(e.extractor.Education(cvSections)) > 0 {
			return 1.0
		}
		return 0.5
	}

	return perSection[types.SectionEducation]
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
