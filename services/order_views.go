package services

import (
	"time"

	"github.com/jesh-analyst/campus-eats-hub/entity"
)

// Read-only projections over the order collection. Each call recomputes
// from the slice it is given; nothing here caches or mutates.

// ActiveOrders keeps orders still in the kitchen queue, in the same
// order as the underlying collection.
func ActiveOrders(orders []entity.Order) []entity.Order {
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status.Active() {
			out = append(out, o)
		}
	}
	return out
}

// PastOrders keeps completed and cancelled orders.
func PastOrders(orders []entity.Order) []entity.Order {
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status.Terminal() {
			out = append(out, o)
		}
	}
	return out
}

// OrdersForUser keeps the orders owned by userID.
func OrdersForUser(orders []entity.Order, userID uint) []entity.Order {
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

// OrdersByStatus keeps orders in exactly one status; canteen screens
// use it for operational queues.
func OrdersByStatus(orders []entity.Order, status entity.OrderStatus) []entity.Order {
	out := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out
}

// VisibleOrders applies role-based scoping: students only ever see
// their own orders, canteen roles see the whole collection. The role is
// an explicit parameter, never inferred from ambient state.
func VisibleOrders(orders []entity.Order, role string, userID uint) []entity.Order {
	if entity.IsCanteen(role) {
		return orders
	}
	return OrdersForUser(orders, userID)
}

// DashboardStats summarizes today's operation for the canteen screens.
type DashboardStats struct {
	ActiveOrders   int   `json:"activeOrders"`
	CompletedToday int   `json:"completedToday"`
	RevenueToday   int64 `json:"revenueToday"`
	UnpaidActive   int   `json:"unpaidActive"`
}

// Stats counts active orders, today's completions and today's revenue
// (paid orders created today).
func Stats(orders []entity.Order, now time.Time) DashboardStats {
	var st DashboardStats
	y, m, d := now.Date()
	sameDay := func(t time.Time) bool {
		ty, tm, td := t.Date()
		return ty == y && tm == m && td == d
	}
	for _, o := range orders {
		if o.Status.Active() {
			st.ActiveOrders++
			if o.PaymentStatus == entity.PaymentUnpaid {
				st.UnpaidActive++
			}
		}
		if o.Status == entity.StatusCompleted && sameDay(o.UpdatedAt) {
			st.CompletedToday++
		}
		if o.PaymentStatus == entity.PaymentPaid && sameDay(o.CreatedAt) {
			st.RevenueToday += o.TotalAmount
		}
	}
	return st
}
