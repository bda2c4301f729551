package models

import "time"

type Restaurant struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	OwnerID     uint     `gorm:"index;not null" json:"owner_id"`
	Name        string   `gorm:"index;not null" json:"name"`
	Address     string   `json:"address,omitempty"`
	Description string   `json:"description,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`

	Owner     User      `gorm:"foreignKey:OwnerID" json:"-"`
	Menus     []Menu    `gorm:"foreignKey:RestaurantID" json:"menus,omitempty"`
	Orders    []Order   `gorm:"foreignKey:RestaurantID" json:"orders,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type Menu struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	RestaurantID uint    `gorm:"index;not null" json:"restaurant_id"`
	Name         string  `gorm:"not null" json:"name"`
	Description  string  `json:"description,omitempty"`
	Category     string  `json:"category,omitempty"` // starter, main, dessert
	Price        float64 `gorm:"not null" json:"price"`
	ImageURL     string  `json:"image_url,omitempty"`
}
