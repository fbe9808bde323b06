package entity

import (
	"time"
)

const (
	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"

	MethodCash   = "cash"
	MethodOnline = "online"
)

// OrderItem is an immutable snapshot of a cart line taken at checkout.
// Later menu edits never touch it.
type OrderItem struct {
	MenuItemID uint   `json:"menuItemId"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Quantity   int    `json:"quantity"`
}

// Order is created once at checkout and afterwards mutated only through
// status and payment transitions. TotalAmount is fixed at creation and
// must never be recomputed from live menu prices.
type Order struct {
	ID          string      `json:"id"`
	TokenNumber int         `json:"tokenNumber"`
	UserID      uint        `json:"userId"`
	Items       []OrderItem `json:"items"`
	TotalAmount int64       `json:"totalAmount"`
	Status      OrderStatus `json:"status"`
	// PaymentStatus and Status are independent axes: a ready order may
	// still be unpaid (cash on pickup).
	PaymentStatus string    `json:"paymentStatus"`
	PaymentMethod string    `json:"paymentMethod,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
