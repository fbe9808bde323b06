package repository

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jesh-analyst/campus-eats-hub/entity"
)

func newOrder(userID uint, createdAt time.Time) *entity.Order {
	return &entity.Order{
		UserID:        userID,
		Items:         []entity.OrderItem{{MenuItemID: 1, Name: "Masala Dosa", Price: 60, Quantity: 1}},
		TotalAmount:   60,
		Status:        entity.StatusPending,
		PaymentStatus: entity.PaymentUnpaid,
		CreatedAt:     createdAt,
		UpdatedAt:     createdAt,
	}
}

func TestCreateAssignsSequentialIDsAndTokens(t *testing.T) {
	s := NewOrderStore()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	a, b := newOrder(1, now), newOrder(2, now)
	s.Create(a)
	s.Create(b)

	if a.ID != "ORD001" || b.ID != "ORD002" {
		t.Fatalf("ids = %s, %s", a.ID, b.ID)
	}
	if a.TokenNumber != 1 || b.TokenNumber != 2 {
		t.Fatalf("tokens = %d, %d", a.TokenNumber, b.TokenNumber)
	}
}

func TestTokenResetsOnDayRollover(t *testing.T) {
	s := NewOrderStore()
	day1 := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 11, 8, 0, 0, 0, time.UTC)

	first := newOrder(1, day1)
	s.Create(first)
	second := newOrder(1, day1)
	s.Create(second)

	// close out yesterday's queue
	for _, id := range []string{first.ID, second.ID} {
		if _, err := s.Update(id, func(o *entity.Order) error {
			o.Status = entity.StatusCancelled
			return nil
		}); err != nil {
			t.Fatalf("cancel: %v", err)
		}
	}

	next := newOrder(2, day2)
	s.Create(next)
	if next.TokenNumber != 1 {
		t.Fatalf("token should reset on a new day, got %d", next.TokenNumber)
	}
}

func TestTokenSkipsActiveHolderAfterReset(t *testing.T) {
	s := NewOrderStore()
	day1 := time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 11, 0, 10, 0, 0, time.UTC)

	overnight := newOrder(1, day1) // stays active across midnight with token 1
	s.Create(overnight)

	next := newOrder(2, day2)
	s.Create(next)
	if next.TokenNumber == overnight.TokenNumber {
		t.Fatalf("two active orders share token %d", next.TokenNumber)
	}
	if next.TokenNumber != 2 {
		t.Fatalf("expected token 2 after skipping the active holder, got %d", next.TokenNumber)
	}
}

func TestConcurrentCreateKeepsTokensUnique(t *testing.T) {
	s := NewOrderStore()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	const n = 50
	orders := make([]*entity.Order, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			o := newOrder(uint(i+1), now)
			s.Create(o)
			orders[i] = o
		}(i)
	}
	wg.Wait()

	tokens := map[int]bool{}
	ids := map[string]bool{}
	for _, o := range orders {
		if tokens[o.TokenNumber] {
			t.Fatalf("duplicate token %d", o.TokenNumber)
		}
		if ids[o.ID] {
			t.Fatalf("duplicate id %s", o.ID)
		}
		tokens[o.TokenNumber] = true
		ids[o.ID] = true
	}
}

func TestUpdateRunsAgainstLatestState(t *testing.T) {
	s := NewOrderStore()
	now := time.Now()
	o := newOrder(1, now)
	s.Create(o)

	// first staff client wins the edge
	if _, err := s.Update(o.ID, func(o *entity.Order) error {
		if !o.Status.CanTransition(entity.StatusAccepted) {
			return errors.New("conflict")
		}
		o.Status = entity.StatusAccepted
		return nil
	}); err != nil {
		t.Fatalf("first update: %v", err)
	}

	// second client re-validates against the committed state and loses
	_, err := s.Update(o.ID, func(o *entity.Order) error {
		if !o.Status.CanTransition(entity.StatusAccepted) {
			return errors.New("conflict")
		}
		o.Status = entity.StatusAccepted
		return nil
	})
	if err == nil {
		t.Fatal("second identical transition must conflict")
	}

	got, _ := s.Get(o.ID)
	if got.Status != entity.StatusAccepted {
		t.Fatalf("status = %s", got.Status)
	}
}

func TestUpdateFailureLeavesOrderUntouched(t *testing.T) {
	s := NewOrderStore()
	o := newOrder(1, time.Now())
	s.Create(o)

	_, err := s.Update(o.ID, func(o *entity.Order) error {
		o.Status = entity.StatusCancelled // mutation on the working copy
		return errors.New("abort")
	})
	if err == nil {
		t.Fatal("expected mutate error")
	}
	got, _ := s.Get(o.ID)
	if got.Status != entity.StatusPending {
		t.Fatalf("failed update leaked: %s", got.Status)
	}
}

func TestUpdateUnknownOrder(t *testing.T) {
	s := NewOrderStore()
	if _, err := s.Update("ORD404", func(o *entity.Order) error { return nil }); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("want ErrOrderNotFound, got %v", err)
	}
	if _, err := s.Get("ORD404"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("want ErrOrderNotFound, got %v", err)
	}
}

func TestGetReturnsACopy(t *testing.T) {
	s := NewOrderStore()
	o := newOrder(1, time.Now())
	s.Create(o)

	got, _ := s.Get(o.ID)
	got.Items[0].Price = 999
	got.Status = entity.StatusCancelled

	again, _ := s.Get(o.ID)
	if again.Items[0].Price != 60 || again.Status != entity.StatusPending {
		t.Fatal("caller mutation reached the store")
	}
}

func TestSeedAdvancesCounters(t *testing.T) {
	s := NewOrderStore()
	now := time.Now()
	s.Seed([]entity.Order{
		{ID: "ORD003", TokenNumber: 3, UserID: 1, Status: entity.StatusPending,
			Items:     []entity.OrderItem{{MenuItemID: 1, Name: "x", Price: 10, Quantity: 1}},
			CreatedAt: now, UpdatedAt: now},
	})

	o := newOrder(2, now)
	s.Create(o)
	if o.ID != "ORD004" {
		t.Fatalf("id sequence did not continue: %s", o.ID)
	}
	if o.TokenNumber != 4 {
		t.Fatalf("token sequence did not continue: %d", o.TokenNumber)
	}
	if got := s.List(); len(got) != 2 {
		t.Fatalf("list = %d orders, want 2", len(got))
	}
}
