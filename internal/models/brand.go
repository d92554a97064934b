package models

import "gorm.io/gorm"

type Brand struct {
	gorm.Model
	Name    string `gorm:"size:255;not null"` // Название бренда
	Country string `gorm:"size:100"`          // Страна (необязательно)

	Perfumes []Perfume
}
