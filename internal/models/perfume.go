package models

import "gorm.io/gorm"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderUnisex Gender = "unisex"
)

type Perfume struct {
	gorm.Model
	Name    string  `gorm:"size:255;not null"`
	Price   float64 `gorm:"not null"`
	Volume  int     `gorm:"not null"` // мл
	Gender  Gender  `gorm:"type:varchar(10);not null"`
	InStock bool    `gorm:"not null;default:true"`

	BrandID uint `gorm:"not null"`
	Brand   Brand

	CategoryID uint `gorm:"not null"`
	Category   Category

	SupplierID uint `gorm:"not null"`
	Supplier   Supplier
}
