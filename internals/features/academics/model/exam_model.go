package model

import (
	"time"

	"gorm.io/datatypes"
)

// ExamModel is a scheduled examination, optionally carrying a PDF
// schedule file.
type ExamModel struct {
	ExamID        string         `gorm:"column:exam_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"exam_id"`
	ExamTitle     string         `gorm:"column:exam_title;type:varchar(200);not null" json:"exam_title"`
	ExamCourse    string         `gorm:"column:exam_course;type:varchar(120);not null" json:"exam_course"`
	ExamSemester  int            `gorm:"column:exam_semester;not null" json:"exam_semester"`
	ExamDate      datatypes.Date `gorm:"column:exam_date;not null;index" json:"exam_date"`
	ExamPdfURL    string         `gorm:"column:exam_pdf_url;type:text" json:"exam_pdf_url"`
	ExamCreatedAt time.Time      `gorm:"column:exam_created_at;autoCreateTime" json:"exam_created_at"`
}

func (ExamModel) TableName() string {
	return "exams"
}
