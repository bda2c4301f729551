package models

import "time"

type Reservation struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	HotelID    uint      `gorm:"index;not null" json:"hotel_id"`
	CheckIn    time.Time `gorm:"not null" json:"check_in"`
	CheckOut   time.Time `gorm:"not null" json:"check_out"`
	TotalPrice float64   `gorm:"not null" json:"total_price"`
	Latitude   *float64  `json:"latitude,omitempty"`
	Longitude  *float64  `json:"longitude,omitempty"`
	CreatedAt  time.Time `json:"created_at"`

	User  User  `gorm:"foreignKey:UserID" json:"-"`
	Hotel Hotel `gorm:"foreignKey:HotelID" json:"-"`
}
