package models

import "time"

// Order statuses that block delivery assignment.
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

type Order struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	RestaurantID uint      `gorm:"index;not null" json:"restaurant_id"`
	Total        float64   `gorm:"default:0" json:"total"`
	Status       string    `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	CreatedAt    time.Time `json:"created_at"`

	Items      []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	User       User        `gorm:"foreignKey:UserID" json:"-"`
	Restaurant Restaurant  `gorm:"foreignKey:RestaurantID" json:"-"`
	Delivery   *Delivery   `gorm:"foreignKey:OrderID" json:"delivery,omitempty"`
}

type OrderItem struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	OrderID  uint `gorm:"index;not null" json:"order_id"`
	MenuID   uint `gorm:"index;not null" json:"menu_id"`
	Quantity int  `gorm:"not null" json:"quantity"`

	Menu Menu `gorm:"foreignKey:MenuID" json:"menu"`
}
