package store

import (
	"gorm.io/gorm"

	"github.com/96TSH/nutrimate/internal/model"
)

func Migrate(db *gorm.DB) error {
	entities := []interface{}{
		model.Customer{},
		model.Course{},
		model.CourseRegistration{},
		model.PasswordResetToken{},
	}
	for i := range entities {
		err := migrateModel(db, entities[i])
		if err != nil {
			return err
		}
	}
	return nil
}

func migrateModel(db *gorm.DB, dst any) error {
	return db.Migrator().AutoMigrate(dst)
}
