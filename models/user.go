package models

import "time"

// Roles are stored as plain varchar and compared against these constants.
const (
	RoleClient            = "client"
	RoleRestaurantManager = "restaurant_manager"
	RoleHotelManager      = "hotel_manager"
	RoleDeliveryPerson    = "delivery_person"
	RoleAdmin             = "admin"
)

type User struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	PhoneNumber string    `gorm:"uniqueIndex;not null" json:"phone_number"`
	Email       *string   `gorm:"uniqueIndex" json:"email,omitempty"`
	Password    string    `gorm:"column:hashed_password" json:"-"` // bcrypt hash, empty for password-less clients
	Role        string    `gorm:"type:varchar(50);default:client;not null;index" json:"role"`
	IsActive    bool      `gorm:"default:true" json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`

	Restaurants  []Restaurant  `gorm:"foreignKey:OwnerID" json:"restaurants,omitempty"`
	Hotels       []Hotel       `gorm:"foreignKey:OwnerID" json:"hotels,omitempty"`
	Orders       []Order       `gorm:"foreignKey:UserID" json:"orders,omitempty"`
	Reservations []Reservation `gorm:"foreignKey:UserID" json:"reservations,omitempty"`
	Payments     []Payment     `gorm:"foreignKey:UserID" json:"payments,omitempty"`
	Deliveries   []Delivery    `gorm:"foreignKey:DeliveryPersonID" json:"deliveries,omitempty"`
}

type RefreshToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Token     string    `gorm:"uniqueIndex;not null" json:"-"` // sha256 of the opaque token
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
