package configs

import (
	"github.com/jesh-analyst/campus-eats-hub/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Connect opens the sqlite database and migrates the persistent schema.
// Only the catalog and accounts live in the database; carts and orders
// stay in memory for the lifetime of the process.
func Connect(source string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.MenuItem{}); err != nil {
		return nil, err
	}
	return db, nil
}
