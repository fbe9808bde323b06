package entity

import (
	"gorm.io/gorm"
)

const (
	RoleStudent = "student"
	RoleStaff   = "staff"
	RoleOwner   = "owner"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `gorm:"not null;default:student" json:"role"`
}

// IsCanteen reports whether the role belongs to the food-service side
// (staff or owner) as opposed to a student customer.
func IsCanteen(role string) bool {
	return role == RoleStaff || role == RoleOwner
}
