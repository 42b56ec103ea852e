package model

import "time"

// ClassTimetableModel is a per-course, per-semester timetable PDF.
type ClassTimetableModel struct {
	TimetableID           string    `gorm:"column:timetable_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"timetable_id"`
	TimetableCourse       string    `gorm:"column:timetable_course;type:varchar(120);not null" json:"timetable_course"`
	TimetableSemester     int       `gorm:"column:timetable_semester;not null" json:"timetable_semester"`
	TimetableAcademicYear string    `gorm:"column:timetable_academic_year;type:varchar(20);not null" json:"timetable_academic_year"`
	TimetablePdfURL       string    `gorm:"column:timetable_pdf_url;type:text" json:"timetable_pdf_url"`
	TimetableCreatedAt    time.Time `gorm:"column:timetable_created_at;autoCreateTime" json:"timetable_created_at"`
}

func (ClassTimetableModel) TableName() string {
	return "class_timetables"
}
