package models

import "time"

const (
	DeliveryPending    = "pending"
	DeliveryAccepted   = "accepted"
	DeliveryInProgress = "in_progress"
	DeliveryDelivered  = "delivered"
	DeliveryCancelled  = "cancelled"
)

// DeliveryTransitions is the operator-configurable allowed-transition set.
// The default is fully permissive among the five states (staff can override
// any status); updates outside the set are logged as warnings, not rejected.
var DeliveryTransitions = map[string][]string{
	DeliveryPending:    {DeliveryAccepted, DeliveryInProgress, DeliveryDelivered, DeliveryCancelled},
	DeliveryAccepted:   {DeliveryPending, DeliveryInProgress, DeliveryDelivered, DeliveryCancelled},
	DeliveryInProgress: {DeliveryPending, DeliveryAccepted, DeliveryDelivered, DeliveryCancelled},
	DeliveryDelivered:  {DeliveryPending, DeliveryAccepted, DeliveryInProgress, DeliveryCancelled},
	DeliveryCancelled:  {DeliveryPending, DeliveryAccepted, DeliveryInProgress, DeliveryDelivered},
}

func ValidDeliveryStatus(s string) bool {
	switch s {
	case DeliveryPending, DeliveryAccepted, DeliveryInProgress, DeliveryDelivered, DeliveryCancelled:
		return true
	}
	return false
}

func DeliveryTransitionAllowed(from, to string) bool {
	for _, s := range DeliveryTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Delivery is the fulfillment assignment for exactly one order; the unique
// index on OrderID enforces the one-delivery-per-order invariant.
type Delivery struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	OrderID          uint      `gorm:"uniqueIndex;not null" json:"order_id"`
	DeliveryPersonID uint      `gorm:"index;not null" json:"delivery_person_id"`
	Status           string    `gorm:"type:varchar(20);default:'pending';not null" json:"status"`
	Latitude         *float64  `json:"latitude,omitempty"` // courier's current position
	Longitude        *float64  `json:"longitude,omitempty"`
	CreatedAt        time.Time `json:"created_at"`

	Order          Order `gorm:"foreignKey:OrderID" json:"-"`
	DeliveryPerson User  `gorm:"foreignKey:DeliveryPersonID" json:"-"`
}
