package dto

type SaveStaffRequest struct {
	StaffName           string `json:"staff_name" form:"staff_name" validate:"required,max=120"`
	StaffRole           string `json:"staff_role" form:"staff_role" validate:"omitempty,oneof=HOD Professor 'Associate Professor' 'Assistant Professor' 'Lab Instructor' 'Technical Staff' Support"`
	StaffDesignation    string `json:"staff_designation" form:"staff_designation" validate:"omitempty,max=120"`
	StaffQualifications string `json:"staff_qualifications" form:"staff_qualifications" validate:"omitempty,max=200"`
	StaffSpecialization string `json:"staff_specialization" form:"staff_specialization" validate:"omitempty,max=200"`
	StaffArea           string `json:"staff_area" form:"staff_area" validate:"omitempty,max=200"`
	StaffBio            string `json:"staff_bio" form:"staff_bio"`
	StaffEmail          string `json:"staff_email" form:"staff_email" validate:"omitempty,email"`
	StaffPhone          string `json:"staff_phone" form:"staff_phone" validate:"omitempty,max=40"`
	StaffProfileURL     string `json:"staff_profile_url" form:"staff_profile_url" validate:"omitempty,url"`
	StaffIsHOD          *bool  `json:"staff_is_hod" form:"staff_is_hod"`
	StaffOrder          *int   `json:"staff_order" form:"staff_order"`
}

// Bulk set-HOD action payload. Only the first id is promoted.
type StaffBulkRequest struct {
	StaffIDs []string `json:"staff_ids" form:"staff_ids" validate:"required,min=1,dive,uuid"`
}
