package site

import (
	"log"
	"os"

	"github.com/bytedance/sonic"
	"gorm.io/gorm"

	"mycollege_backend/internals/features/site/model"
)

// SeedSettingsFromJSON inserts the department settings row from a JSON
// file when the table is empty. The singleton rule makes this a no-op
// on a seeded database.
func SeedSettingsFromJSON(db *gorm.DB, path string) {
	var count int64
	if err := db.Model(&model.DepartmentSettingsModel{}).Count(&count).Error; err != nil {
		log.Printf("[SEED] settings: count failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[SEED] settings: read %s: %v", path, err)
		return
	}

	var m model.DepartmentSettingsModel
	if err := sonic.Unmarshal(raw, &m); err != nil {
		log.Printf("[SEED] settings: parse %s: %v", path, err)
		return
	}

	if err := db.Create(&m).Error; err != nil {
		log.Printf("[SEED] settings: insert failed: %v", err)
		return
	}
	log.Printf("[SEED] settings: seeded %q", m.SettingsSiteName)
}
