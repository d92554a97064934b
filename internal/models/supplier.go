package models

import "gorm.io/gorm"

type Supplier struct {
	gorm.Model
	Name    string `gorm:"size:255;not null"` // Название поставщика
	Contact string `gorm:"size:255"`          // Контакт (email / телефон)

	Perfumes []Perfume
}
