// Package profile parses student records from the upstream CRM and builds
// the academic benchmark summary consumed by coaching front ends. CRM
// payloads are loosely shaped: field names vary between exports, subject
// entries arrive as objects or as embedded JSON strings, and the prior
// attainment score may be absent entirely.
package profile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// SubjectRecord is one subject entry from a student's academic profile.
type SubjectRecord struct {
	Subject      string `json:"subject"`
	CurrentGrade string `json:"currentGrade"`
	TargetGrade  string `json:"targetGrade"`
	EffortGrade  string `json:"effortGrade"`
	ExamType     string `json:"examType"`
}

// StudentRecord is the parsed CRM academic profile. PriorAttainment is nil
// when the record carries no usable score; summaries degrade rather than
// fail in that case.
type StudentRecord struct {
	Name            string          `json:"name"`
	PriorAttainment *float64        `json:"priorAttainment"`
	Subjects        []SubjectRecord `json:"subjects"`
}

// Alternate field names seen across CRM exports, checked in order.
var (
	nameKeys    = []string{"name", "student_name", "studentName", "full_name"}
	scoreKeys   = []string{"prior_attainment_score", "priorAttainment", "prior_attainment", "gcse_prior_attainment"}
	subjectKeys = []string{"subject", "subject_name", "subjectName", "name"}
	currentKeys = []string{"currentGrade", "current_grade", "cg"}
	targetKeys  = []string{"targetGrade", "target_grade", "tg"}
	effortKeys  = []string{"effortGrade", "effort_grade", "eg"}
	examKeys    = []string{"examType", "exam_type", "qualificationType"}
)

// ParseStudentRecord extracts a student profile from a CRM JSON payload.
// Accepts either a bare record or a paginated response, in which case the
// first element of "records" is used.
func ParseStudentRecord(data []byte) (*StudentRecord, error) {
	if !gjson.ValidBytes(data) {
		return nil, fmt.Errorf("student record: invalid JSON")
	}

	root := gjson.ParseBytes(data)
	if recs := root.Get("records"); recs.IsArray() {
		arr := recs.Array()
		if len(arr) == 0 {
			return nil, fmt.Errorf("student record: empty records array")
		}
		root = arr[0]
	}
	if !root.IsObject() {
		return nil, fmt.Errorf("student record: not a JSON object")
	}

	rec := &StudentRecord{
		Name: firstString(root, nameKeys),
	}
	if score, ok := firstNumber(root, scoreKeys); ok && score >= 0 {
		rec.PriorAttainment = &score
	}

	subjects := root.Get("subjects")
	if !subjects.Exists() {
		subjects = root.Get("academic_profile")
	}
	subjects.ForEach(func(_, entry gjson.Result) bool {
		// Subject entries are sometimes JSON strings rather than objects.
		if entry.Type == gjson.String {
			entry = gjson.Parse(entry.String())
		}
		if !entry.IsObject() {
			return true
		}
		subject := firstString(entry, subjectKeys)
		if subject == "" || subject == "N/A" {
			return true
		}
		rec.Subjects = append(rec.Subjects, SubjectRecord{
			Subject:      subject,
			CurrentGrade: firstString(entry, currentKeys),
			TargetGrade:  firstString(entry, targetKeys),
			EffortGrade:  firstString(entry, effortKeys),
			ExamType:     firstString(entry, examKeys),
		})
		return true
	})

	return rec, nil
}

func firstString(r gjson.Result, keys []string) string {
	for _, k := range keys {
		if v := r.Get(k); v.Exists() {
			if s := strings.TrimSpace(v.String()); s != "" {
				return s
			}
		}
	}
	return ""
}

// firstNumber reads the first present key as a float. CRM exports store
// numbers as strings often enough that string values are coerced.
func firstNumber(r gjson.Result, keys []string) (float64, bool) {
	for _, k := range keys {
		v := r.Get(k)
		if !v.Exists() {
			continue
		}
		switch v.Type {
		case gjson.Number:
			return v.Float(), true
		case gjson.String:
			if f, err := strconv.ParseFloat(strings.TrimSpace(v.String()), 64); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}
