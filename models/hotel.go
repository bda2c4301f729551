package models

import "time"

type Hotel struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	OwnerID       uint     `gorm:"index;not null" json:"owner_id"`
	Name          string   `gorm:"not null" json:"name"`
	Address       string   `gorm:"not null" json:"address"`
	City          string   `json:"city,omitempty"`
	PricePerNight float64  `json:"price_per_night"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`

	Owner        User          `gorm:"foreignKey:OwnerID" json:"-"`
	Rooms        []Room        `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
	Reservations []Reservation `gorm:"foreignKey:HotelID" json:"reservations,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

type Room struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	HotelID       uint    `gorm:"index;not null" json:"hotel_id"`
	RoomNumber    string  `gorm:"not null" json:"room_number"`
	Capacity      int     `gorm:"not null" json:"capacity"`
	PricePerNight float64 `gorm:"not null" json:"price_per_night"`
}
