package staff

import (
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"mycollege_backend/internals/features/staff/model"
)

// SeedStaffFromJSON inserts staff profiles from a JSON file when the
// table is empty.
func SeedStaffFromJSON(db *gorm.DB, path string) {
	var count int64
	if err := db.Model(&model.StaffProfileModel{}).Count(&count).Error; err != nil {
		log.Printf("[SEED] staff: count failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[SEED] staff: read %s: %v", path, err)
		return
	}

	var rows []model.StaffProfileModel
	if err := sonic.Unmarshal(raw, &rows); err != nil {
		log.Printf("[SEED] staff: parse %s: %v", path, err)
		return
	}
	if len(rows) == 0 {
		return
	}

	if err := db.Create(&rows).Error; err != nil {
		log.Printf("[SEED] staff: insert failed: %v", err)
		return
	}
	log.Printf("[SEED] staff: seeded %d profiles", len(rows))
}
