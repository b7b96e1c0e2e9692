package profile

import "testing"

func TestParseStudentRecord(t *testing.T) {
	data := []byte(`{
		"name": "Jordan Smith",
		"prior_attainment_score": "7.75",
		"subjects": [
			{"subject": "Biology", "currentGrade": "B", "targetGrade": "A", "effortGrade": "2", "examType": "A Level"},
			{"subject_name": "Business", "current_grade": "DM", "exam_type": "BTEC Level 3 Diploma"}
		]
	}`)

	rec, err := ParseStudentRecord(data)
	if err != nil {
		t.Fatalf("ParseStudentRecord error: %v", err)
	}
	if rec.Name != "Jordan Smith" {
		t.Errorf("Name = %q, want Jordan Smith", rec.Name)
	}
	if rec.PriorAttainment == nil || *rec.PriorAttainment != 7.75 {
		t.Errorf("PriorAttainment = %v, want 7.75", rec.PriorAttainment)
	}
	if len(rec.Subjects) != 2 {
		t.Fatalf("parsed %d subjects, want 2", len(rec.Subjects))
	}
	if rec.Subjects[0].CurrentGrade != "B" || rec.Subjects[0].ExamType != "A Level" {
		t.Errorf("first subject = %+v", rec.Subjects[0])
	}
	if rec.Subjects[1].Subject != "Business" || rec.Subjects[1].CurrentGrade != "DM" {
		t.Errorf("second subject = %+v", rec.Subjects[1])
	}
}

func TestParseStudentRecordPaginatedWrapper(t *testing.T) {
	data := []byte(`{"records": [{"student_name": "Ash", "priorAttainment": 6.2, "subjects": []}]}`)

	rec, err := ParseStudentRecord(data)
	if err != nil {
		t.Fatalf("ParseStudentRecord error: %v", err)
	}
	if rec.Name != "Ash" {
		t.Errorf("Name = %q, want Ash", rec.Name)
	}
	if rec.PriorAttainment == nil || *rec.PriorAttainment != 6.2 {
		t.Errorf("PriorAttainment = %v, want 6.2", rec.PriorAttainment)
	}
}

func TestParseStudentRecordStringifiedSubjects(t *testing.T) {
	// Some CRM exports store each subject entry as a JSON string.
	data := []byte(`{
		"name": "Sam",
		"prior_attainment_score": 5.5,
		"subjects": [
			"{\"subject\": \"History\", \"currentGrade\": \"C\", \"examType\": \"A Level\"}",
			"{\"subject\": \"N/A\"}"
		]
	}`)

	rec, err := ParseStudentRecord(data)
	if err != nil {
		t.Fatalf("ParseStudentRecord error: %v", err)
	}
	if len(rec.Subjects) != 1 {
		t.Fatalf("parsed %d subjects, want 1", len(rec.Subjects))
	}
	if rec.Subjects[0].Subject != "History" || rec.Subjects[0].CurrentGrade != "C" {
		t.Errorf("subject = %+v", rec.Subjects[0])
	}
}

func TestParseStudentRecordMissingScore(t *testing.T) {
	data := []byte(`{"name": "Riley", "prior_attainment_score": "not a number", "subjects": []}`)

	rec, err := ParseStudentRecord(data)
	if err != nil {
		t.Fatalf("ParseStudentRecord error: %v", err)
	}
	if rec.PriorAttainment != nil {
		t.Errorf("PriorAttainment = %v, want nil", *rec.PriorAttainment)
	}
}

func TestParseStudentRecordInvalidPayloads(t *testing.T) {
	for _, data := range []string{`not json`, `{"records": []}`, `[1, 2]`} {
		if _, err := ParseStudentRecord([]byte(data)); err == nil {
			t.Errorf("ParseStudentRecord(%q) should fail", data)
		}
	}
}
