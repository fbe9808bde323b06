package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jesh-analyst/campus-eats-hub/entity"
	"github.com/jesh-analyst/campus-eats-hub/repository"
)

// Event types pushed to the canteen live feed.
const (
	EventOrderCreated   = "order_created"
	EventStatusChanged  = "status_changed"
	EventPaymentChanged = "payment_changed"
)

// Publisher receives order events for fan-out (the ws hub). Nil is fine;
// events are then dropped.
type Publisher interface {
	Publish(event string, o entity.Order)
}

// OrderService is the order lifecycle engine: it turns carts into
// orders and owns every status/payment transition afterwards.
type OrderService struct {
	Orders  *repository.OrderStore
	Carts   *repository.CartStore
	Gateway PaymentGateway
	Events  Publisher

	// Now is the clock; nil means time.Now.
	Now func() time.Time
}

func NewOrderService(orders *repository.OrderStore, carts *repository.CartStore, gw PaymentGateway) *OrderService {
	return &OrderService{Orders: orders, Carts: carts, Gateway: gw}
}

func (s *OrderService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *OrderService) publish(event string, o entity.Order) {
	if s.Events != nil {
		s.Events.Publish(event, o)
	}
}

// PlaceOrder checks out the user's cart. The cart lines are frozen into
// order item snapshots and the total is computed from those snapshots,
// not from whatever the menu says by now. Online payments are confirmed
// through the gateway before the order is committed; the cart is cleared
// as a side effect of a successful checkout.
func (s *OrderService) PlaceOrder(ctx context.Context, userID uint, method string) (entity.Order, error) {
	if method != entity.MethodCash && method != entity.MethodOnline {
		return entity.Order{}, fmt.Errorf("unknown payment method %q", method)
	}

	lines := s.Carts.Drain(userID)
	if len(lines) == 0 {
		return entity.Order{}, ErrEmptyCart
	}

	items := make([]entity.OrderItem, 0, len(lines))
	var total int64
	for _, l := range lines {
		items = append(items, entity.OrderItem{
			MenuItemID: l.MenuItemID,
			Name:       l.Name,
			Price:      l.UnitPrice,
			Quantity:   l.Quantity,
		})
		total += l.UnitPrice * int64(l.Quantity)
	}

	payStatus := entity.PaymentUnpaid
	payMethod := ""
	if method == entity.MethodOnline {
		if s.Gateway != nil {
			if err := s.Gateway.Authorize(ctx, userID, total, method); err != nil {
				// Payment failed: put the lines back so the student
				// does not lose the cart.
				for _, l := range lines {
					s.Carts.Upsert(userID, l)
				}
				return entity.Order{}, fmt.Errorf("payment authorization: %w", err)
			}
		}
		payStatus = entity.PaymentPaid
		payMethod = entity.MethodOnline
	}

	now := s.now()
	o := &entity.Order{
		UserID:        userID,
		Items:         items,
		TotalAmount:   total,
		Status:        entity.StatusPending,
		PaymentStatus: payStatus,
		PaymentMethod: payMethod,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	s.Orders.Create(o)

	s.publish(EventOrderCreated, *o)
	return *o, nil
}

// ChangeStatus moves an order along the state machine. The edge is
// validated against the latest committed state under the store lock, so
// two staff clients cannot both win the same transition.
func (s *OrderService) ChangeStatus(orderID string, next entity.OrderStatus) (entity.Order, error) {
	if !next.Valid() {
		return entity.Order{}, fmt.Errorf("unknown order status %q", next)
	}
	now := s.now()
	o, err := s.Orders.Update(orderID, func(o *entity.Order) error {
		if !o.Status.CanTransition(next) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, next)
		}
		o.Status = next
		o.UpdatedAt = laterOf(now, o.UpdatedAt)
		return nil
	})
	if err != nil {
		return entity.Order{}, err
	}
	s.publish(EventStatusChanged, o)
	return o, nil
}

// ChangePayment sets the payment axis. Marking an order paid requires a
// method; marking it unpaid clears the method. Status is untouched:
// payment and progress are independent.
func (s *OrderService) ChangePayment(orderID, payStatus, method string) (entity.Order, error) {
	if payStatus != entity.PaymentPaid && payStatus != entity.PaymentUnpaid {
		return entity.Order{}, fmt.Errorf("unknown payment status %q", payStatus)
	}
	if payStatus == entity.PaymentPaid {
		if method == "" {
			return entity.Order{}, ErrMissingPaymentMethod
		}
		if method != entity.MethodCash && method != entity.MethodOnline {
			return entity.Order{}, fmt.Errorf("unknown payment method %q", method)
		}
	}

	now := s.now()
	o, err := s.Orders.Update(orderID, func(o *entity.Order) error {
		o.PaymentStatus = payStatus
		if payStatus == entity.PaymentPaid {
			o.PaymentMethod = method
		} else {
			o.PaymentMethod = ""
		}
		o.UpdatedAt = laterOf(now, o.UpdatedAt)
		return nil
	})
	if err != nil {
		return entity.Order{}, err
	}
	s.publish(EventPaymentChanged, o)
	return o, nil
}

func (s *OrderService) Get(orderID string) (entity.Order, error) {
	return s.Orders.Get(orderID)
}

// UpdatedAt never goes backwards, even with a skewed clock.
func laterOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return b
	}
	return a
}
