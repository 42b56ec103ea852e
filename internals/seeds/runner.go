package seeds

import (
	"gorm.io/gorm"

	siteSeed "mycollege_backend/internals/seeds/site"
	staffSeed "mycollege_backend/internals/seeds/staff"
)

// RunAllSeeds populates an empty database with a starting data set.
// Each seeder is idempotent: it skips tables that already hold rows.
func RunAllSeeds(db *gorm.DB) {
	siteSeed.SeedSettingsFromJSON(db, "internals/seeds/site/data_settings.json")
	staffSeed.SeedStaffFromJSON(db, "internals/seeds/staff/data_staff.json")
}
