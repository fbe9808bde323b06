package entity

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusAccepted  OrderStatus = "accepted"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// transitions is the full edge set of the order state machine. Forward
// progression is strictly linear. Cancellation is possible until the
// order is ready for pickup; a ready order can only be completed.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:   {StatusAccepted, StatusCancelled},
	StatusAccepted:  {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusReady, StatusCancelled},
	StatusReady:     {StatusCompleted},
	StatusCompleted: {},
	StatusCancelled: {},
}

// Valid reports whether s is one of the six known statuses.
func (s OrderStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// Terminal reports whether no further transition exists from s.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Active reports whether an order in this status still occupies the
// kitchen queue (i.e. its token must stay unique).
func (s OrderStatus) Active() bool {
	return s.Valid() && !s.Terminal()
}

// CanTransition reports whether the edge s -> next exists. Re-applying
// the current status is not an edge.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}
