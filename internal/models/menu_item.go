package models

import "time"

type MenuItem struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"type:text"`
	Price       float64   `json:"price" gorm:"not null"`
	CategoryID  uint      `json:"category_id" gorm:"not null;index"`
	ImageURL    string    `json:"image_url"`
	IsAvailable bool      `json:"is_available" gorm:"default:true"`
	IsPopular   bool      `json:"is_popular" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
