package profile

import (
	"log/slog"

	"github.com/studentcoach/alpsbench/internal/domain"
	"github.com/studentcoach/alpsbench/internal/resolve"
	"github.com/studentcoach/alpsbench/internal/tables"
)

// megUnavailable marks a summary field whose benchmark could not be
// resolved; megNoPA marks the whole-profile degradation when the record has
// no prior attainment score.
const (
	megUnavailable = "N/A"
	megNoPA        = "N/A (No PA)"
)

// AcademicMEGs is the whole-profile A-Level aspiration block, one
// grade/points pair per benchmarking percentile.
type AcademicMEGs struct {
	PriorAttainmentScore *float64 `json:"prior_attainment_score"`
	ALevelMEGGrade60th   string   `json:"aLevel_meg_grade_60th"`
	ALevelMEGPoints60th  float64  `json:"aLevel_meg_points_60th"`
	ALevelMEGGrade75th   string   `json:"aLevel_meg_grade_75th"`
	ALevelMEGPoints75th  float64  `json:"aLevel_meg_points_75th"`
	ALevelMEGGrade90th   string   `json:"aLevel_meg_grade_90th"`
	ALevelMEGPoints90th  float64  `json:"aLevel_meg_points_90th"`
	ALevelMEGGrade100th  string   `json:"aLevel_meg_grade_100th"`
	ALevelMEGPoints100th float64  `json:"aLevel_meg_points_100th"`
}

// SubjectSummary is a subject record enriched with its normalized
// qualification, current-grade points and standard (75th percentile) MEG.
// The per-percentile point fields are populated for A-Level subjects only.
type SubjectSummary struct {
	SubjectRecord
	NormalizedQualificationType string   `json:"normalized_qualification_type"`
	CurrentGradePoints          float64  `json:"currentGradePoints"`
	StandardMEG                 string   `json:"standard_meg"`
	StandardMEGPoints           float64  `json:"standardMegPoints"`
	MEGPoints60                 *float64 `json:"megPoints60,omitempty"`
	MEGPoints75                 *float64 `json:"megPoints75,omitempty"`
	MEGPoints90                 *float64 `json:"megPoints90,omitempty"`
	MEGPoints100                *float64 `json:"megPoints100,omitempty"`
}

// Summary is the full academic benchmark summary for one student.
type Summary struct {
	StudentName  string           `json:"student_name"`
	AcademicMEGs AcademicMEGs     `json:"academic_megs"`
	Subjects     []SubjectSummary `json:"academic_profile_summary"`
}

// Summarizer builds benchmark summaries against a loaded table store.
type Summarizer struct {
	tables *tables.Store
	engine *resolve.Engine
	logger *slog.Logger
}

// NewSummarizer creates a summarizer over a validated table store.
func NewSummarizer(store *tables.Store, logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Summarizer{
		tables: store,
		engine: resolve.New(store),
		logger: logger,
	}
}

// BuildSummary enriches a parsed student record with aspiration benchmarks.
// A record without a prior attainment score yields a degraded summary with
// every benchmark marked unavailable, never an error.
func (s *Summarizer) BuildSummary(rec *StudentRecord) *Summary {
	summary := &Summary{
		StudentName: rec.Name,
		AcademicMEGs: AcademicMEGs{
			PriorAttainmentScore: rec.PriorAttainment,
		},
	}

	if rec.PriorAttainment == nil {
		s.logger.Warn("student record has no prior attainment score, benchmarks degraded",
			"student", rec.Name)
		for _, sub := range rec.Subjects {
			summary.Subjects = append(summary.Subjects, s.degradedSubject(sub))
		}
		summary.AcademicMEGs.ALevelMEGGrade60th = megUnavailable
		summary.AcademicMEGs.ALevelMEGGrade75th = megUnavailable
		summary.AcademicMEGs.ALevelMEGGrade90th = megUnavailable
		summary.AcademicMEGs.ALevelMEGGrade100th = megUnavailable
		return summary
	}

	score := *rec.PriorAttainment
	s.fillALevelMEGs(&summary.AcademicMEGs, score)
	for _, sub := range rec.Subjects {
		summary.Subjects = append(summary.Subjects, s.summarizeSubject(sub, score))
	}
	return summary
}

func (s *Summarizer) fillALevelMEGs(megs *AcademicMEGs, score float64) {
	grade := func(p domain.Percentile) (string, float64) {
		d, err := s.engine.AlpsBandDetails(score, p)
		if err != nil || d == nil {
			return megUnavailable, 0
		}
		pts, _ := s.tables.GradePoints().Points("A Level", d.MEGAspiration)
		return d.MEGAspiration, pts
	}

	megs.ALevelMEGGrade60th, megs.ALevelMEGPoints60th = grade(domain.Percentile60)
	megs.ALevelMEGGrade75th, megs.ALevelMEGPoints75th = grade(domain.Percentile75)
	megs.ALevelMEGGrade90th, megs.ALevelMEGPoints90th = grade(domain.Percentile90)
	megs.ALevelMEGGrade100th, megs.ALevelMEGPoints100th = grade(domain.Percentile100)
}

func (s *Summarizer) degradedSubject(sub SubjectRecord) SubjectSummary {
	et := domain.NormalizeExamType(sub.ExamType)
	out := SubjectSummary{
		SubjectRecord:               sub,
		NormalizedQualificationType: et.Normalized,
		StandardMEG:                 megNoPA,
	}
	if et.Family == domain.FamilyALevel {
		zero := 0.0
		out.MEGPoints60, out.MEGPoints75, out.MEGPoints90, out.MEGPoints100 = &zero, &zero, &zero, &zero
	}
	return out
}

func (s *Summarizer) summarizeSubject(sub SubjectRecord, score float64) SubjectSummary {
	et := domain.NormalizeExamType(sub.ExamType)
	out := SubjectSummary{
		SubjectRecord:               sub,
		NormalizedQualificationType: et.Normalized,
		StandardMEG:                 megUnavailable,
	}

	// Missing grades and unknown scales score 0, matching the upstream
	// convention for incomplete records.
	out.CurrentGradePoints, _ = s.tables.GradePoints().Points(et.Normalized, sub.CurrentGrade)

	megGrade, ok := s.standardMEGGrade(et, score)
	if !ok {
		s.logger.Warn("no benchmark table for qualification",
			"subject", sub.Subject, "qualification", et.Normalized)
		return out
	}
	out.StandardMEG = megGrade
	out.StandardMEGPoints, _ = s.tables.GradePoints().Points(et.Normalized, megGrade)

	// A-Level subjects additionally carry per-percentile aspiration
	// points; the standard MEG above is the 75th percentile figure.
	if et.Family == domain.FamilyALevel {
		out.MEGPoints75 = &out.StandardMEGPoints
		out.MEGPoints60 = s.alevelMEGPoints(score, domain.Percentile60)
		out.MEGPoints90 = s.alevelMEGPoints(score, domain.Percentile90)
		out.MEGPoints100 = s.alevelMEGPoints(score, domain.Percentile100)
	}
	return out
}

func (s *Summarizer) alevelMEGPoints(score float64, p domain.Percentile) *float64 {
	d, err := s.engine.AlpsBandDetails(score, p)
	if err != nil || d == nil {
		return nil
	}
	pts, _ := s.tables.GradePoints().Points("A Level", d.MEGAspiration)
	return &pts
}

// standardMEGGrade resolves the standard (75th percentile rooted) MEG grade
// string for a normalized qualification. A-Level and AS Level subjects read
// the A-Level baseline; every other family reads its own band table.
func (s *Summarizer) standardMEGGrade(et domain.ExamType, score float64) (string, bool) {
	switch et.Family {
	case domain.FamilyALevel, domain.FamilyASLevel:
		d, err := s.engine.AlpsBandDetails(score, domain.StandardPercentile)
		if err != nil || d == nil {
			return "", false
		}
		return d.MEGAspiration, true

	case domain.FamilyIB:
		level, ok := domain.ParseIBLevel(et.SizeOrLevel)
		if !ok {
			return "", false
		}
		d, err := s.engine.IBExpectedPointsDetails(score, level)
		if err != nil || d == nil {
			return "", false
		}
		return d.MEGAspiration, true

	case domain.FamilyPreU:
		course, ok := domain.ParsePreUCourse(et.SizeOrLevel)
		if !ok {
			return "", false
		}
		d, err := s.engine.PreUExpectedPointsDetails(score, course)
		if err != nil || d == nil {
			return "", false
		}
		return d.MEGAspiration, true

	case domain.FamilyBtec2016:
		size, ok := domain.ParseBtec2016Size(et.SizeOrLevel)
		if !ok {
			return "", false
		}
		d, err := s.engine.Btec2016MainDetails(score, size)
		if err != nil || d == nil {
			return "", false
		}
		return d.MEGAspiration, true

	case domain.FamilyBtec2016OneYear:
		size, ok := domain.ParseBtec2016OneYearSize(et.SizeOrLevel)
		if !ok {
			return "", false
		}
		d, err := s.engine.Btec2016OneYearDetails(score, size)
		if err != nil || d == nil {
			return "", false
		}
		return d.MEGAspiration, true

	case domain.FamilyBtec2010:
		size, ok := domain.ParseBtec2010Size(et.SizeOrLevel)
		if !ok {
			return "", false
		}
		d, err := s.engine.Btec2010MEGDetails(score, size)
		if err != nil || d == nil {
			return "", false
		}
		return d.MEGAspiration, true

	case domain.FamilyUAL:
		size, ok := domain.ParseUALSize(et.SizeOrLevel)
		if !ok {
			return "", false
		}
		d, err := s.engine.UALExpectedPointsDetails(score, size)
		if err != nil || d == nil {
			return "", false
		}
		return d.MEGAspiration, true

	case domain.FamilyWJEC:
		size, ok := domain.ParseWJECSize(et.SizeOrLevel)
		if !ok {
			return "", false
		}
		d, err := s.engine.WJECL3ExpectedPointsDetails(score, size)
		if err != nil || d == nil {
			return "", false
		}
		return d.MEGAspiration, true

	case domain.FamilyCache:
		size, ok := domain.ParseCacheSize(et.SizeOrLevel)
		if !ok {
			return "", false
		}
		d, err := s.engine.CacheExpectedPointsDetails(score, size)
		if err != nil || d == nil {
			return "", false
		}
		return d.MEGAspiration, true
	}

	return "", false
}
