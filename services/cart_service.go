package services

import (
	"github.com/jesh-analyst/campus-eats-hub/entity"
	"github.com/jesh-analyst/campus-eats-hub/repository"
)

// CartService is the cart engine. The catalog is the source of truth
// for name, price and availability at the moment a line is added; the
// line then keeps that snapshot.
type CartService struct {
	Carts *repository.CartStore
	Menu  *repository.MenuRepository
}

func NewCartService(carts *repository.CartStore, menu *repository.MenuRepository) *CartService {
	return &CartService{Carts: carts, Menu: menu}
}

type CartOut struct {
	Cart        entity.Cart `json:"cart"`
	TotalItems  int         `json:"totalItems"`
	TotalAmount int64       `json:"totalAmount"`
}

func (s *CartService) Get(userID uint) CartOut {
	c := s.Carts.Get(userID)
	return CartOut{Cart: c, TotalItems: c.TotalItems(), TotalAmount: c.TotalAmount()}
}

// Add puts qty units of a menu item into the cart (qty <= 0 counts as
// 1). Items switched off by staff are rejected with ErrItemUnavailable
// so a stale menu page cannot corrupt the cart.
func (s *CartService) Add(userID, menuItemID uint, qty int) error {
	if qty <= 0 {
		qty = 1
	}
	item, err := s.Menu.FindByID(menuItemID)
	if err != nil {
		return err
	}
	if !item.Available {
		return ErrItemUnavailable
	}
	s.Carts.Upsert(userID, entity.CartItem{
		MenuItemID: item.ID,
		Name:       item.Name,
		UnitPrice:  item.Price,
		Quantity:   qty,
	})
	return nil
}

func (s *CartService) UpdateQuantity(userID, menuItemID uint, qty int) {
	s.Carts.SetQuantity(userID, menuItemID, qty)
}

func (s *CartService) Remove(userID, menuItemID uint) {
	s.Carts.Remove(userID, menuItemID)
}

func (s *CartService) Clear(userID uint) {
	s.Carts.Clear(userID)
}
