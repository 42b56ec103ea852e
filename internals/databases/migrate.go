package database

import (
	"log"

	academicsModel "mycollege_backend/internals/features/academics/model"
	contactModel "mycollege_backend/internals/features/contact/model"
	eventsModel "mycollege_backend/internals/features/events/model"
	galleryModel "mycollege_backend/internals/features/gallery/model"
	newsModel "mycollege_backend/internals/features/news/model"
	siteModel "mycollege_backend/internals/features/site/model"
	staffModel "mycollege_backend/internals/features/staff/model"
)

// AutoMigrate keeps the schema in step with the models. Needs
// pgcrypto for gen_random_uuid() on Postgres < 13.
func AutoMigrate() {
	if err := DB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		log.Printf("migrate: pgcrypto: %v", err)
	}

	err := DB.AutoMigrate(
		&siteModel.DepartmentSettingsModel{},
		&siteModel.AboutImageModel{},
		&siteModel.SectionImageModel{},
		&siteModel.SliderModel{},
		&siteModel.HighlightCardModel{},
		&academicsModel.ExamModel{},
		&academicsModel.ClassTimetableModel{},
		&eventsModel.EventModel{},
		&newsModel.NewsModel{},
		&staffModel.StaffProfileModel{},
		&galleryModel.AlbumModel{},
		&galleryModel.GalleryMediaModel{},
		&contactModel.ContactMessageModel{},
	)
	if err != nil {
		log.Fatalf("❌ migration failed: %v", err)
	}
	log.Println("✅ migrations applied.")
}
