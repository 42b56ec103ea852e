package model

import "time"

// StaffProfileModel is a department staff member. At most one profile
// may be HOD at a time; appointing a new one demotes the previous
// holder in the same transaction.
type StaffProfileModel struct {
	StaffID             string    `gorm:"column:staff_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"staff_id"`
	StaffName           string    `gorm:"column:staff_name;type:varchar(120);not null" json:"staff_name"`
	StaffRole           string    `gorm:"column:staff_role;type:varchar(32);not null;default:'Assistant Professor'" json:"staff_role"`
	StaffDesignation    string    `gorm:"column:staff_designation;type:varchar(120)" json:"staff_designation"`
	StaffQualifications string    `gorm:"column:staff_qualifications;type:varchar(200)" json:"staff_qualifications"`
	StaffSpecialization string    `gorm:"column:staff_specialization;type:varchar(200)" json:"staff_specialization"`
	StaffArea           string    `gorm:"column:staff_area;type:varchar(200)" json:"staff_area"`
	StaffBio            string    `gorm:"column:staff_bio;type:text" json:"staff_bio"`
	StaffEmail          string    `gorm:"column:staff_email;type:varchar(254)" json:"staff_email"`
	StaffPhone          string    `gorm:"column:staff_phone;type:varchar(40)" json:"staff_phone"`
	StaffProfileURL     string    `gorm:"column:staff_profile_url;type:text" json:"staff_profile_url"`
	StaffPhotoURL       string    `gorm:"column:staff_photo_url;type:text" json:"staff_photo_url"`
	StaffIsHOD          bool      `gorm:"column:staff_is_hod;default:false;index" json:"staff_is_hod"`
	StaffOrder          int       `gorm:"column:staff_order;default:0" json:"staff_order"`
	StaffCreatedAt      time.Time `gorm:"column:staff_created_at;autoCreateTime" json:"staff_created_at"`
	StaffUpdatedAt      time.Time `gorm:"column:staff_updated_at;autoUpdateTime" json:"staff_updated_at"`
}

func (StaffProfileModel) TableName() string {
	return "staff_profiles"
}
