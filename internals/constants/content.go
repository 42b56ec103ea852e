package constants

// Staff roles. RoleHOD is exclusive: at most one profile may hold it.
const (
	RoleHOD        = "HOD"
	RoleProfessor  = "Professor"
	RoleAssociate  = "Associate Professor"
	RoleAssistant  = "Assistant Professor"
	RoleInstructor = "Lab Instructor"
	RoleTech       = "Technical Staff"
	RoleSupport    = "Support"

	// Role assigned to a demoted HOD when a new one is appointed.
	RoleDemotedHOD = RoleProfessor
)

var StaffRoles = []string{
	RoleHOD, RoleProfessor, RoleAssociate, RoleAssistant,
	RoleInstructor, RoleTech, RoleSupport,
}

var FacultyRoles = []string{RoleHOD, RoleProfessor, RoleAssociate, RoleAssistant}
var SupportRoles = []string{RoleInstructor, RoleTech, RoleSupport}

// Event categories.
const (
	EventWorkshop    = "Workshop"
	EventSeminar     = "Seminar"
	EventSymposium   = "Symposium"
	EventCompetition = "Competition"
	EventGuest       = "Guest Lecture"
	EventOther       = "Other"
)

var EventCategories = []string{
	EventWorkshop, EventSeminar, EventSymposium,
	EventCompetition, EventGuest, EventOther,
}

// News categories.
const (
	NewsAnnouncement = "Announcement"
	NewsAchievement  = "Achievement"
	NewsPlacement    = "Placement"
	NewsResearch     = "Research"
	NewsNotice       = "Notice"
	NewsGeneral      = "General"
)

var NewsCategories = []string{
	NewsAnnouncement, NewsAchievement, NewsPlacement,
	NewsResearch, NewsNotice, NewsGeneral,
}

// Album categories.
var AlbumCategories = []string{"event", "workshop", "annual", "misc"}

// Gallery media types.
const (
	MediaPhoto = "photo"
	MediaVideo = "video"
)

// Section image keys used by the public pages.
const (
	SectionKeyAbout  = "about"
	SectionKeyBottom = "bottom"
)

// Semester bounds for exams and timetables.
const (
	SemesterMin = 1
	SemesterMax = 8
)

// Earliest acceptable exam year; anything older is a data-entry mistake.
const ExamMinYear = 2000

// Highlight cards: maximum simultaneously active cards with an image.
const MaxActiveHighlights = 3

// Slug length limits per slugged type.
const (
	SlugMaxEvent = 220
	SlugMaxNews  = 240
	SlugMaxAlbum = 240
)

// Object-storage categories, one per file field.
const (
	StorageSettings      = "settings"
	StorageSliders       = "sliders"
	StorageSliderVideos  = "sliders/videos"
	StorageAbout         = "about"
	StorageSections      = "sections"
	StorageHighlights    = "highlights"
	StorageExams         = "exams"
	StorageTimetables    = "timetables"
	StorageEvents        = "events"
	StorageNews          = "news"
	StorageStaff         = "staff"
	StorageGalleryPhotos = "gallery/photos"
	StorageGalleryVideos = "gallery/videos"
)
