package dto

type SaveExamRequest struct {
	ExamTitle    string `json:"exam_title" form:"exam_title" validate:"required,max=200"`
	ExamCourse   string `json:"exam_course" form:"exam_course" validate:"required,max=120"`
	ExamSemester int    `json:"exam_semester" form:"exam_semester" validate:"required,min=1,max=8"`
	// YYYY-MM-DD; year must be 2000 or later.
	ExamDate string `json:"exam_date" form:"exam_date" validate:"required"`
}

type SaveTimetableRequest struct {
	TimetableCourse       string `json:"timetable_course" form:"timetable_course" validate:"required,max=120"`
	TimetableSemester     int    `json:"timetable_semester" form:"timetable_semester" validate:"required,min=1,max=8"`
	TimetableAcademicYear string `json:"timetable_academic_year" form:"timetable_academic_year" validate:"required,max=20"`
}
