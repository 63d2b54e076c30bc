package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&State{},
		&SenatorialDistrict{},
		&LGA{},
		&Ward{},
		&Party{},
		&Election{},
		&Candidate{},
		&Vote{},
	)
}
