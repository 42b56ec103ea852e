package admin

// ModelConfig describes how a generic admin UI should scaffold the
// list page for one content type.
type ModelConfig struct {
	Entity        string   `json:"entity"`
	DisplayFields []string `json:"display_fields"`
	SearchFields  []string `json:"search_fields"`
	FilterFields  []string `json:"filter_fields"`
	Ordering      []string `json:"ordering"`
	ThumbField    string   `json:"thumb_field,omitempty"`
}

// ModelConfigs lists every admin-managed content type beside its CRUD
// endpoints.
var ModelConfigs = []ModelConfig{
	{
		Entity:        "settings",
		DisplayFields: []string{"settings_site_name", "settings_email", "settings_phone", "settings_updated_at"},
		ThumbField:    "settings_logo_url",
	},
	{
		Entity:        "sliders",
		DisplayFields: []string{"slider_title", "slider_is_active", "slider_created_at"},
		SearchFields:  []string{"slider_title"},
		FilterFields:  []string{"slider_is_active"},
		Ordering:      []string{"-slider_created_at"},
		ThumbField:    "slider_image_url",
	},
	{
		Entity:        "about-images",
		DisplayFields: []string{"about_image_title", "about_image_created_at"},
		Ordering:      []string{"-about_image_created_at"},
		ThumbField:    "about_image_url",
	},
	{
		Entity:        "section-images",
		DisplayFields: []string{"section_image_key", "section_image_title", "section_image_created_at"},
		SearchFields:  []string{"section_image_title"},
		FilterFields:  []string{"section_image_key"},
		Ordering:      []string{"-section_image_created_at"},
		ThumbField:    "section_image_url",
	},
	{
		Entity:        "highlights",
		DisplayFields: []string{"highlight_title", "highlight_order", "highlight_is_active", "highlight_created_at"},
		SearchFields:  []string{"highlight_title", "highlight_subtitle"},
		FilterFields:  []string{"highlight_is_active"},
		Ordering:      []string{"highlight_order", "-highlight_created_at"},
		ThumbField:    "highlight_image_url",
	},
	{
		Entity:        "exams",
		DisplayFields: []string{"exam_title", "exam_course", "exam_semester", "exam_date"},
		SearchFields:  []string{"exam_title", "exam_course"},
		FilterFields:  []string{"exam_semester"},
		Ordering:      []string{"exam_date", "exam_semester"},
	},
	{
		Entity:        "timetables",
		DisplayFields: []string{"timetable_course", "timetable_semester", "timetable_academic_year", "timetable_created_at"},
		SearchFields:  []string{"timetable_course"},
		FilterFields:  []string{"timetable_semester", "timetable_academic_year"},
		Ordering:      []string{"-timetable_created_at", "timetable_course", "timetable_semester"},
	},
	{
		Entity:        "events",
		DisplayFields: []string{"event_title", "event_category", "event_start_at", "event_venue", "event_registration_open"},
		SearchFields:  []string{"event_title", "event_short_description", "event_description", "event_venue"},
		FilterFields:  []string{"event_category", "event_registration_open"},
		Ordering:      []string{"-event_start_at"},
		ThumbField:    "event_image_url",
	},
	{
		Entity:        "news",
		DisplayFields: []string{"news_title", "news_category", "news_published_at", "news_is_featured"},
		SearchFields:  []string{"news_title", "news_summary", "news_body"},
		FilterFields:  []string{"news_category", "news_is_featured"},
		Ordering:      []string{"-news_published_at", "-news_id"},
		ThumbField:    "news_image_url",
	},
	{
		Entity:        "staff",
		DisplayFields: []string{"staff_name", "staff_role", "staff_is_hod", "staff_order", "staff_phone", "staff_email"},
		SearchFields:  []string{"staff_name", "staff_email", "staff_phone", "staff_role"},
		FilterFields:  []string{"staff_role", "staff_is_hod"},
		Ordering:      []string{"-staff_is_hod", "staff_order", "staff_role", "staff_name"},
		ThumbField:    "staff_photo_url",
	},
	{
		Entity:        "albums",
		DisplayFields: []string{"album_title", "album_category", "album_year", "album_created_at"},
		SearchFields:  []string{"album_title"},
		FilterFields:  []string{"album_category", "album_year"},
		Ordering:      []string{"-album_created_at"},
		ThumbField:    "album_cover_image_url",
	},
	{
		Entity:        "gallery",
		DisplayFields: []string{"media_caption", "media_type", "media_year", "media_created_at"},
		SearchFields:  []string{"media_caption"},
		FilterFields:  []string{"media_type", "media_year"},
		Ordering:      []string{"-media_created_at", "-media_id"},
		ThumbField:    "media_image_url",
	},
	{
		Entity:        "contact-messages",
		DisplayFields: []string{"contact_name", "contact_email", "contact_subject", "contact_is_handled", "contact_created_at"},
		SearchFields:  []string{"contact_name", "contact_email", "contact_subject"},
		FilterFields:  []string{"contact_is_handled"},
		Ordering:      []string{"-contact_created_at"},
	},
}
