package service

import (
	"time"

	"mycollege_backend/internals/constants"
	helper "mycollege_backend/internals/helpers"
)

// ParseExamDate parses the submitted exam date and rejects years before
// the cutoff, which are always data-entry mistakes.
func ParseExamDate(raw string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, helper.NewFieldError("exam_date", "Exam date must be in YYYY-MM-DD format.")
	}
	if t.Year() < constants.ExamMinYear {
		return time.Time{}, helper.NewFieldError("exam_date", "Exam date looks invalid.")
	}
	return t, nil
}
