package models

import "time"

type Category struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Name      string     `json:"name" gorm:"unique;not null"`
	Icon      string     `json:"icon" gorm:"default:'fa-utensils'"`
	MenuItems []MenuItem `json:"menu_items,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt time.Time  `json:"created_at"`
}
