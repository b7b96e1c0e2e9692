package profile

import (
	"testing"

	"github.com/studentcoach/alpsbench/internal/tables"
)

func newTestSummarizer(t *testing.T) *Summarizer {
	t.Helper()
	store, err := tables.Load()
	if err != nil {
		t.Fatalf("tables.Load() error: %v", err)
	}
	return NewSummarizer(store, nil)
}

func floatPtr(f float64) *float64 { return &f }

func TestBuildSummaryALevel(t *testing.T) {
	s := newTestSummarizer(t)

	rec := &StudentRecord{
		Name:            "Jordan Smith",
		PriorAttainment: floatPtr(7.75),
		Subjects: []SubjectRecord{
			{Subject: "Biology", CurrentGrade: "B", ExamType: "A Level"},
		},
	}

	got := s.BuildSummary(rec)

	megs := got.AcademicMEGs
	if megs.ALevelMEGGrade60th != "A" || megs.ALevelMEGPoints60th != 120 {
		t.Errorf("60th = %q %.0f, want A 120", megs.ALevelMEGGrade60th, megs.ALevelMEGPoints60th)
	}
	if megs.ALevelMEGGrade75th != "A+" || megs.ALevelMEGPoints75th != 130 {
		t.Errorf("75th = %q %.0f, want A+ 130", megs.ALevelMEGGrade75th, megs.ALevelMEGPoints75th)
	}
	if megs.ALevelMEGGrade90th != "A*" || megs.ALevelMEGPoints90th != 140 {
		t.Errorf("90th = %q %.0f, want A* 140", megs.ALevelMEGGrade90th, megs.ALevelMEGPoints90th)
	}
	if megs.ALevelMEGGrade100th != "A*+" || megs.ALevelMEGPoints100th != 145 {
		t.Errorf("100th = %q %.0f, want A*+ 145", megs.ALevelMEGGrade100th, megs.ALevelMEGPoints100th)
	}

	if len(got.Subjects) != 1 {
		t.Fatalf("summarized %d subjects, want 1", len(got.Subjects))
	}
	sub := got.Subjects[0]
	if sub.NormalizedQualificationType != "A Level" {
		t.Errorf("normalized type = %q, want A Level", sub.NormalizedQualificationType)
	}
	if sub.CurrentGradePoints != 100 {
		t.Errorf("CurrentGradePoints = %.0f, want 100", sub.CurrentGradePoints)
	}
	if sub.StandardMEG != "A+" || sub.StandardMEGPoints != 130 {
		t.Errorf("standard MEG = %q %.0f, want A+ 130", sub.StandardMEG, sub.StandardMEGPoints)
	}
	if sub.MEGPoints60 == nil || *sub.MEGPoints60 != 120 {
		t.Errorf("MEGPoints60 = %v, want 120", sub.MEGPoints60)
	}
	if sub.MEGPoints75 == nil || *sub.MEGPoints75 != 130 {
		t.Errorf("MEGPoints75 = %v, want 130", sub.MEGPoints75)
	}
	if sub.MEGPoints90 == nil || *sub.MEGPoints90 != 140 {
		t.Errorf("MEGPoints90 = %v, want 140", sub.MEGPoints90)
	}
	if sub.MEGPoints100 == nil || *sub.MEGPoints100 != 145 {
		t.Errorf("MEGPoints100 = %v, want 145", sub.MEGPoints100)
	}
}

func TestBuildSummaryVocationalSubjects(t *testing.T) {
	s := newTestSummarizer(t)

	rec := &StudentRecord{
		Name:            "Sam",
		PriorAttainment: floatPtr(7.0),
		Subjects: []SubjectRecord{
			{Subject: "Business", CurrentGrade: "Dist", ExamType: "BTEC Level 3 Diploma 2010"},
			{Subject: "Mathematics", CurrentGrade: "6", ExamType: "IB HL"},
		},
	}

	got := s.BuildSummary(rec)
	if len(got.Subjects) != 2 {
		t.Fatalf("summarized %d subjects, want 2", len(got.Subjects))
	}

	btec := got.Subjects[0]
	if btec.NormalizedQualificationType != "BTEC Level 3 Diploma" {
		t.Errorf("normalized type = %q", btec.NormalizedQualificationType)
	}
	if btec.StandardMEG != "D*D*" || btec.StandardMEGPoints != 280 {
		t.Errorf("standard MEG = %q %.0f, want D*D* 280", btec.StandardMEG, btec.StandardMEGPoints)
	}
	if btec.MEGPoints60 != nil {
		t.Error("vocational subject should not carry per-percentile points")
	}

	ib := got.Subjects[1]
	if ib.CurrentGradePoints != 120 {
		t.Errorf("IB CurrentGradePoints = %.0f, want 120", ib.CurrentGradePoints)
	}
	// 7.0 falls in IB band 6 (6.75 to 7.15).
	if ib.StandardMEG != "5" {
		t.Errorf("IB standard MEG = %q, want 5", ib.StandardMEG)
	}
}

func TestBuildSummaryNoPriorAttainment(t *testing.T) {
	s := newTestSummarizer(t)

	rec := &StudentRecord{
		Name: "Riley",
		Subjects: []SubjectRecord{
			{Subject: "History", CurrentGrade: "C", ExamType: "A Level"},
		},
	}

	got := s.BuildSummary(rec)
	if got.AcademicMEGs.PriorAttainmentScore != nil {
		t.Error("PriorAttainmentScore should stay nil")
	}
	if got.AcademicMEGs.ALevelMEGGrade75th != "N/A" {
		t.Errorf("75th grade = %q, want N/A", got.AcademicMEGs.ALevelMEGGrade75th)
	}

	sub := got.Subjects[0]
	if sub.StandardMEG != "N/A (No PA)" {
		t.Errorf("standard MEG = %q, want N/A (No PA)", sub.StandardMEG)
	}
	if sub.CurrentGradePoints != 0 || sub.StandardMEGPoints != 0 {
		t.Errorf("points = %.0f/%.0f, want 0/0", sub.CurrentGradePoints, sub.StandardMEGPoints)
	}
	if sub.MEGPoints60 == nil || *sub.MEGPoints60 != 0 {
		t.Errorf("MEGPoints60 = %v, want 0", sub.MEGPoints60)
	}
}
