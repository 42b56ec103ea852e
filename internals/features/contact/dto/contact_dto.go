package dto

type CreateContactRequest struct {
	ContactName    string `json:"contact_name" form:"contact_name" validate:"required,max=120"`
	ContactEmail   string `json:"contact_email" form:"contact_email" validate:"required,email"`
	ContactPhone   string `json:"contact_phone" form:"contact_phone" validate:"omitempty,max=40"`
	ContactSubject string `json:"contact_subject" form:"contact_subject" validate:"required,max=200"`
	ContactMessage string `json:"contact_message" form:"contact_message" validate:"required"`
}

// Bulk handled / unhandled action payload.
type ContactBulkRequest struct {
	ContactIDs []string `json:"contact_ids" form:"contact_ids" validate:"required,min=1,dive,uuid"`
}
