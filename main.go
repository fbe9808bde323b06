package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jesh-analyst/campus-eats-hub/configs"
	"github.com/jesh-analyst/campus-eats-hub/middlewares"
	"github.com/jesh-analyst/campus-eats-hub/repository"
	"github.com/jesh-analyst/campus-eats-hub/routes"
	"github.com/jesh-analyst/campus-eats-hub/services"
	"github.com/jesh-analyst/campus-eats-hub/ws"
)

func main() {
	cfg := configs.LoadConfig()

	// Persistent side: accounts + catalog.
	db, err := configs.Connect(cfg.DBSource)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)

	// In-memory side: carts and the order book, owned here and injected
	// everywhere they are needed.
	carts := repository.NewCartStore()
	orders := repository.NewOrderStore()

	if err := configs.SeedUsers(db); err != nil {
		log.Fatalf("seed users: %v", err)
	}
	if err := configs.SeedMenu(menuRepo); err != nil {
		log.Fatalf("seed menu: %v", err)
	}
	configs.SeedOrders(orders)

	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	menuSvc := services.NewMenuService(menuRepo)
	cartSvc := services.NewCartService(carts, menuRepo)
	orderSvc := services.NewOrderService(orders, carts, services.SimGateway{Delay: 2 * time.Second})

	hub := ws.NewOrderHub()
	go hub.Run()
	orderSvc.Events = hub

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, routes.Deps{
		Cfg:    cfg,
		Auth:   authSvc,
		Menu:   menuSvc,
		Cart:   cartSvc,
		Orders: orderSvc,
		Hub:    hub,
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
