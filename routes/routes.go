package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jesh-analyst/campus-eats-hub/configs"
	"github.com/jesh-analyst/campus-eats-hub/controllers"
	"github.com/jesh-analyst/campus-eats-hub/entity"
	"github.com/jesh-analyst/campus-eats-hub/middlewares"
	"github.com/jesh-analyst/campus-eats-hub/services"
	"github.com/jesh-analyst/campus-eats-hub/ws"
)

// Deps is everything the route tree needs. All state is built in main
// and injected; nothing here reaches for package-level globals.
type Deps struct {
	Cfg    *configs.Config
	Auth   *services.AuthService
	Menu   *services.MenuService
	Cart   *services.CartService
	Orders *services.OrderService
	Hub    *ws.OrderHub
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	authCtrl := controllers.NewAuthController(d.Auth)
	menuCtrl := controllers.NewMenuController(d.Menu)
	cartCtrl := controllers.NewCartController(d.Cart)
	orderCtrl := controllers.NewOrderController(d.Orders)
	canteenCtrl := controllers.NewCanteenOrderController(d.Orders)

	secret := d.Cfg.JWTSecret

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
	}
	a.GET("/me", middlewares.AuthMiddleware(secret), authCtrl.Me)

	// Catalog (public read)
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/:id", menuCtrl.Detail)

	// Cart + checkout (any signed-in user)
	u := r.Group("/", middlewares.AuthMiddleware(secret))
	{
		u.GET("/cart", cartCtrl.Get)
		u.POST("/cart/items", cartCtrl.Add)
		u.PATCH("/cart/items/qty", cartCtrl.UpdateQuantity)
		u.DELETE("/cart/items/:menuItemId", cartCtrl.Remove)
		u.DELETE("/cart", cartCtrl.Clear)

		u.POST("/orders", orderCtrl.Checkout)
		u.GET("/orders", orderCtrl.ListForMe)
		u.GET("/orders/:id", orderCtrl.Detail)
	}

	// Canteen side (staff/owner)
	canteen := r.Group("/canteen", middlewares.AuthMiddleware(secret, entity.RoleStaff, entity.RoleOwner))
	{
		canteen.GET("/dashboard", canteenCtrl.Dashboard)
		canteen.GET("/orders", canteenCtrl.List)
		canteen.PATCH("/orders/:id/status", canteenCtrl.ChangeStatus)
		canteen.PATCH("/orders/:id/payment", canteenCtrl.ChangePayment)

		canteen.POST("/menu", menuCtrl.Create)
		canteen.PATCH("/menu/:id", menuCtrl.Update)
		canteen.PATCH("/menu/:id/availability", menuCtrl.SetAvailability)
		canteen.DELETE("/menu/:id", menuCtrl.Delete)
	}

	// Live order feed for canteen dashboards
	r.GET("/ws/canteen/orders",
		middlewares.WSAuthMiddleware(secret, entity.RoleStaff, entity.RoleOwner),
		d.Hub.HandleWebSocket)
}
