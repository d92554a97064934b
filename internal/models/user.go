package models

import "gorm.io/gorm"

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

type User struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;size:50;not null"`
	PasswordHash string `gorm:"not null"`
	FullName     string `gorm:"size:255"`
	// Photo is a relative path under the upload directory, empty when unset.
	Photo string   `gorm:"size:255"`
	Role  UserRole `gorm:"type:varchar(20);not null;default:user"`
}
