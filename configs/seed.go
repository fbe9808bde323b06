package configs

import (
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/jesh-analyst/campus-eats-hub/entity"
	"github.com/jesh-analyst/campus-eats-hub/repository"
)

// SeedUsers creates the demo accounts on first boot. Passwords come
// from SEED_PASSWORD (default "password") so dev setups work out of
// the box.
func SeedUsers(db *gorm.DB) error {
	pass := getEnv("SEED_PASSWORD", "password")
	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []entity.User{
		{Email: "student@campus.edu", Name: "Alex Student", Role: entity.RoleStudent},
		{Email: "staff@canteen.edu", Name: "Sam Staff", Role: entity.RoleStaff},
		{Email: "owner@canteen.edu", Name: "Omar Owner", Role: entity.RoleOwner},
	}
	for _, u := range users {
		var count int64
		if err := db.Model(&entity.User{}).Where("email = ?", u.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		u.Password = string(hash)
		if err := db.Create(&u).Error; err != nil {
			return err
		}
		log.Println("seeded user:", u.Email)
	}
	return nil
}

// SeedMenu loads the canteen menu once, on an empty catalog.
func SeedMenu(menuRepo *repository.MenuRepository) error {
	count, err := menuRepo.Count()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []entity.MenuItem{
		{Name: "Masala Dosa", Description: "Crispy rice crepe with spiced potato filling", Price: 60, Category: entity.CategoryDaily, Type: "South Indian", Available: true, PrepTime: 15},
		{Name: "Idli Sambar", Description: "Steamed rice cakes with lentil stew", Price: 40, Category: entity.CategoryDaily, Type: "South Indian", Available: true, PrepTime: 10},
		{Name: "Chicken Biryani", Description: "Fragrant rice layered with spiced chicken", Price: 150, Category: entity.CategorySpecial, Type: "North Indian", Available: true, PrepTime: 25},
		{Name: "Veg Fried Rice", Description: "Wok-tossed rice with seasonal vegetables", Price: 80, Category: entity.CategoryDaily, Type: "Chinese", Available: true, PrepTime: 15},
		{Name: "Samosa (2 pcs)", Description: "Golden pastry with spiced potato filling", Price: 30, Category: entity.CategoryDaily, Type: "Snacks", Available: true, PrepTime: 5},
		{Name: "Vada Pav", Description: "Spicy potato fritter in a bun", Price: 25, Category: entity.CategoryDaily, Type: "Snacks", Available: true, PrepTime: 8},
		{Name: "Cold Coffee", Description: "Chilled coffee blended with ice cream", Price: 60, Category: entity.CategoryDaily, Type: "Beverages", Available: true, PrepTime: 5},
		{Name: "Masala Chai", Description: "Spiced milk tea", Price: 15, Category: entity.CategoryDaily, Type: "Beverages", Available: true, PrepTime: 5},
		{Name: "Pav Bhaji", Description: "Buttery vegetable mash with soft rolls", Price: 70, Category: entity.CategoryDaily, Type: "Snacks", Available: true, PrepTime: 12},
		{Name: "Paneer Butter Masala", Description: "Cottage cheese in rich tomato gravy", Price: 120, Category: entity.CategorySpecial, Type: "North Indian", Available: false, PrepTime: 20},
		{Name: "Special Thali", Description: "Full meal: curry, dal, rice, roti, dessert", Price: 180, Category: entity.CategorySpecial, Type: "North Indian", Available: true, PrepTime: 20},
	}
	for i := range items {
		if err := menuRepo.Create(&items[i]); err != nil {
			return err
		}
	}
	log.Printf("seeded %d menu items", len(items))
	return nil
}

// SeedOrders preloads the demo order book so the dashboard has
// something to show. Tokens continue past the seeded maximum.
func SeedOrders(store *repository.OrderStore) {
	now := time.Now()
	store.Seed([]entity.Order{
		{
			ID: "ORD001", TokenNumber: 1, UserID: 1,
			Items: []entity.OrderItem{
				{MenuItemID: 1, Name: "Masala Dosa", Quantity: 2, Price: 60},
				{MenuItemID: 7, Name: "Cold Coffee", Quantity: 1, Price: 60},
			},
			TotalAmount: 180, Status: entity.StatusPreparing,
			PaymentStatus: entity.PaymentPaid, PaymentMethod: entity.MethodOnline,
			CreatedAt: now.Add(-15 * time.Minute), UpdatedAt: now.Add(-5 * time.Minute),
		},
		{
			ID: "ORD002", TokenNumber: 2, UserID: 2,
			Items: []entity.OrderItem{
				{MenuItemID: 3, Name: "Chicken Biryani", Quantity: 1, Price: 150},
			},
			TotalAmount: 150, Status: entity.StatusReady,
			PaymentStatus: entity.PaymentPaid, PaymentMethod: entity.MethodCash,
			CreatedAt: now.Add(-30 * time.Minute), UpdatedAt: now.Add(-2 * time.Minute),
		},
		{
			ID: "ORD003", TokenNumber: 3, UserID: 3,
			Items: []entity.OrderItem{
				{MenuItemID: 5, Name: "Samosa (2 pcs)", Quantity: 3, Price: 30},
				{MenuItemID: 9, Name: "Pav Bhaji", Quantity: 1, Price: 70},
			},
			TotalAmount: 160, Status: entity.StatusPending,
			PaymentStatus: entity.PaymentUnpaid,
			CreatedAt:     now.Add(-5 * time.Minute), UpdatedAt: now.Add(-5 * time.Minute),
		},
		{
			ID: "ORD004", TokenNumber: 4, UserID: 4,
			Items: []entity.OrderItem{
				{MenuItemID: 11, Name: "Special Thali", Quantity: 2, Price: 180},
			},
			TotalAmount: 360, Status: entity.StatusAccepted,
			PaymentStatus: entity.PaymentPaid, PaymentMethod: entity.MethodOnline,
			CreatedAt: now.Add(-10 * time.Minute), UpdatedAt: now.Add(-8 * time.Minute),
		},
	})
	log.Println("seeded demo orders")
}
