package model

import "time"

// ContactMessageModel is an inbound message from the public contact
// form. Append-only from the public side; admins flag them handled.
type ContactMessageModel struct {
	ContactID        string    `gorm:"column:contact_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"contact_id"`
	ContactName      string    `gorm:"column:contact_name;type:varchar(120);not null" json:"contact_name"`
	ContactEmail     string    `gorm:"column:contact_email;type:varchar(254);not null" json:"contact_email"`
	ContactPhone     string    `gorm:"column:contact_phone;type:varchar(40)" json:"contact_phone"`
	ContactSubject   string    `gorm:"column:contact_subject;type:varchar(200);not null" json:"contact_subject"`
	ContactMessage   string    `gorm:"column:contact_message;type:text;not null" json:"contact_message"`
	ContactIsHandled bool      `gorm:"column:contact_is_handled;default:false;index" json:"contact_is_handled"`
	ContactCreatedAt time.Time `gorm:"column:contact_created_at;autoCreateTime" json:"contact_created_at"`
}

func (ContactMessageModel) TableName() string {
	return "contact_messages"
}
