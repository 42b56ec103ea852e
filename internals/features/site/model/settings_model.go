package model

import "time"

// DepartmentSettingsModel is a singleton: the admin surface refuses to
// create a second row.
type DepartmentSettingsModel struct {
	SettingsID         string    `gorm:"column:settings_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"settings_id"`
	SettingsSiteName   string    `gorm:"column:settings_site_name;type:varchar(255)" json:"settings_site_name"`
	SettingsLogoURL    string    `gorm:"column:settings_logo_url;type:text" json:"settings_logo_url"`
	SettingsAboutShort string    `gorm:"column:settings_about_short;type:text" json:"settings_about_short"`
	SettingsAddress    string    `gorm:"column:settings_address;type:text" json:"settings_address"`
	SettingsEmail      string    `gorm:"column:settings_email;type:varchar(255)" json:"settings_email"`
	SettingsPhone      string    `gorm:"column:settings_phone;type:varchar(40)" json:"settings_phone"`
	SettingsInstagram  string    `gorm:"column:settings_instagram;type:text" json:"settings_instagram"`
	SettingsFacebook   string    `gorm:"column:settings_facebook;type:text" json:"settings_facebook"`
	SettingsLinkedin   string    `gorm:"column:settings_linkedin;type:text" json:"settings_linkedin"`
	SettingsXTwitter   string    `gorm:"column:settings_x_twitter;type:text" json:"settings_x_twitter"`
	SettingsCreatedAt  time.Time `gorm:"column:settings_created_at;autoCreateTime" json:"settings_created_at"`
	SettingsUpdatedAt  time.Time `gorm:"column:settings_updated_at;autoUpdateTime" json:"settings_updated_at"`
}

func (DepartmentSettingsModel) TableName() string {
	return "department_settings"
}
