package store

import "gorm.io/gorm"

// Migrate creates or updates the tables backing the gorm adapters.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&contactRow{}, &productRow{}, &reviewRow{})
}
