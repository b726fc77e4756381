package models

import (
	"log"

	"gorm.io/gorm"
)

// AutoMigrate создает таблицы в БД.
// Географический справочник мигрируется первым: на него ссылаются локации.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&Country{},
		&City{},
		&District{},
	); err != nil {
		log.Printf("❌ AutoMigrate для географического справочника failed: %v", err)
		return err
	}

	if err := db.AutoMigrate(
		&User{},
		&AuthToken{},
	); err != nil {
		log.Printf("❌ AutoMigrate для пользователей failed: %v", err)
		return err
	}

	if err := db.AutoMigrate(
		&Brand{},
		&Store{},
		&Order{},
		&Item{},
		&Location{},
		&Purchase{},
	); err != nil {
		log.Printf("❌ AutoMigrate для сущностей failed: %v", err)
		return err
	}

	return nil
}
