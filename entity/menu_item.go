package entity

import (
	"gorm.io/gorm"
)

const (
	CategoryDaily   = "daily"
	CategorySpecial = "special"
)

// MenuItem is the persistent catalog record. Price is kept in whole
// rupees (int64) to avoid float arithmetic on money. Soft delete only:
// historical orders may still reference a removed item, and they carry
// their own name/price snapshot regardless.
type MenuItem struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`
	Price       int64  `gorm:"not null" json:"price"`
	Category    string `gorm:"not null;default:daily" json:"category"`
	Type        string `json:"type"`
	Available   bool   `gorm:"not null;default:true" json:"available"`
	// PrepTime is the expected preparation time in minutes.
	PrepTime int `gorm:"column:prep_time" json:"preparationTime"`
}
