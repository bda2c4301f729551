package models

import "time"

// Payment is one settlement attempt tied to exactly one order or reservation.
// The unique index on TransactionCode is the authoritative collision guard;
// handlers translate a duplicated-key error into a 409.
type Payment struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	UserID        uint    `gorm:"index;not null" json:"user_id"`
	OrderID       *uint   `gorm:"index" json:"order_id,omitempty"`
	ReservationID *uint   `gorm:"index" json:"reservation_id,omitempty"`
	Amount        float64 `gorm:"not null" json:"amount"`

	// net_amount = amount - commission, commission = app fee + gateway share
	NetAmount  float64 `gorm:"not null" json:"net_amount"`
	Commission float64 `gorm:"default:0" json:"commission"`

	PaymentMethod string `gorm:"size:50;default:'cash'" json:"payment_method"`
	Status        string `gorm:"size:20;default:'pending'" json:"status"`

	// nil until issued; is_used flips false->true exactly once on redemption
	TransactionCode *string `gorm:"uniqueIndex" json:"transaction_code,omitempty"`
	IsUsed          bool    `gorm:"default:false;not null" json:"is_used"`
	QRPath          *string `gorm:"column:qr_path" json:"qr_path,omitempty"`
	Discount        float64 `gorm:"default:0" json:"discount"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`

	User        User         `gorm:"foreignKey:UserID" json:"-"`
	Order       *Order       `gorm:"foreignKey:OrderID" json:"-"`
	Reservation *Reservation `gorm:"foreignKey:ReservationID" json:"-"`
}
