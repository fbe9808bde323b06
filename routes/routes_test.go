package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jesh-analyst/campus-eats-hub/configs"
	"github.com/jesh-analyst/campus-eats-hub/entity"
	"github.com/jesh-analyst/campus-eats-hub/repository"
	"github.com/jesh-analyst/campus-eats-hub/services"
	"github.com/jesh-analyst/campus-eats-hub/ws"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&entity.User{}, &entity.MenuItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &configs.Config{
		Port:      "0",
		JWTSecret: "test-secret",
		JWTTTL:    time.Hour,
	}

	userRepo := repository.NewUserRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	carts := repository.NewCartStore()
	orders := repository.NewOrderStore()

	if err := configs.SeedUsers(db); err != nil {
		t.Fatalf("seed users: %v", err)
	}
	if err := configs.SeedMenu(menuRepo); err != nil {
		t.Fatalf("seed menu: %v", err)
	}

	hub := ws.NewOrderHub()
	go hub.Run()

	orderSvc := services.NewOrderService(orders, carts, services.SimGateway{})
	orderSvc.Events = hub

	r := gin.New()
	RegisterRoutes(r, Deps{
		Cfg:    cfg,
		Auth:   services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL),
		Menu:   services.NewMenuService(menuRepo),
		Cart:   services.NewCartService(carts, menuRepo),
		Orders: orderSvc,
		Hub:    hub,
	})
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope struct {
		OK   bool            `json:"ok"`
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, w.Body.String())
	}
	out := map[string]any{}
	if len(envelope.Data) > 0 {
		if err := json.Unmarshal(envelope.Data, &out); err != nil {
			t.Fatalf("decode data: %v (%s)", err, envelope.Data)
		}
	}
	return out
}

func login(t *testing.T, r *gin.Engine, email string) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email": email, "password": "password",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: %d %s", email, w.Code, w.Body.String())
	}
	token, _ := decodeData(t, w)["token"].(string)
	if token == "" {
		t.Fatalf("no token for %s", email)
	}
	return token
}

func TestCheckoutFlowOverHTTP(t *testing.T) {
	r := newTestServer(t)

	student := login(t, r, "student@campus.edu")
	staff := login(t, r, "staff@canteen.edu")

	// browse the catalog without auth
	if w := doJSON(t, r, http.MethodGet, "/menu?available=true", "", nil); w.Code != http.StatusOK {
		t.Fatalf("menu: %d", w.Code)
	}

	// checkout with an empty cart fails
	if w := doJSON(t, r, http.MethodPost, "/orders", student, gin.H{"paymentMethod": "cash"}); w.Code != http.StatusBadRequest {
		t.Fatalf("empty-cart checkout: %d %s", w.Code, w.Body.String())
	}

	// build the cart: 2x item 1, 1x item 7 (60 each, seeded menu)
	if w := doJSON(t, r, http.MethodPost, "/cart/items", student, gin.H{"menuItemId": 1, "quantity": 2}); w.Code != http.StatusCreated {
		t.Fatalf("add to cart: %d %s", w.Code, w.Body.String())
	}
	if w := doJSON(t, r, http.MethodPost, "/cart/items", student, gin.H{"menuItemId": 7, "quantity": 1}); w.Code != http.StatusCreated {
		t.Fatalf("add to cart: %d %s", w.Code, w.Body.String())
	}

	w := doJSON(t, r, http.MethodGet, "/cart", student, nil)
	if total := decodeData(t, w)["totalAmount"].(float64); total != 180 {
		t.Fatalf("cart total = %v, want 180", total)
	}

	// checkout
	w = doJSON(t, r, http.MethodPost, "/orders", student, gin.H{"paymentMethod": "cash"})
	if w.Code != http.StatusCreated {
		t.Fatalf("checkout: %d %s", w.Code, w.Body.String())
	}
	order := decodeData(t, w)
	orderID := order["id"].(string)
	if order["status"].(string) != "pending" || order["paymentStatus"].(string) != "unpaid" {
		t.Fatalf("fresh order: %v", order)
	}
	if order["totalAmount"].(float64) != 180 {
		t.Fatalf("order total = %v", order["totalAmount"])
	}

	// cart is now empty
	w = doJSON(t, r, http.MethodGet, "/cart", student, nil)
	if total := decodeData(t, w)["totalAmount"].(float64); total != 0 {
		t.Fatalf("cart not cleared, total = %v", total)
	}

	// students cannot reach the canteen surface
	if w := doJSON(t, r, http.MethodGet, "/canteen/orders", student, nil); w.Code != http.StatusForbidden {
		t.Fatalf("student on canteen route: %d", w.Code)
	}

	// staff advances the order; skipping a step conflicts
	if w := doJSON(t, r, http.MethodPatch, "/canteen/orders/"+orderID+"/status", staff, gin.H{"status": "preparing"}); w.Code != http.StatusConflict {
		t.Fatalf("skipped transition: %d %s", w.Code, w.Body.String())
	}
	if w := doJSON(t, r, http.MethodPatch, "/canteen/orders/"+orderID+"/status", staff, gin.H{"status": "accepted"}); w.Code != http.StatusOK {
		t.Fatalf("accept: %d %s", w.Code, w.Body.String())
	}

	// payment without method is rejected, with method accepted
	if w := doJSON(t, r, http.MethodPatch, "/canteen/orders/"+orderID+"/payment", staff, gin.H{"paymentStatus": "paid"}); w.Code != http.StatusBadRequest {
		t.Fatalf("paid without method: %d %s", w.Code, w.Body.String())
	}
	w = doJSON(t, r, http.MethodPatch, "/canteen/orders/"+orderID+"/payment", staff, gin.H{"paymentStatus": "paid", "method": "cash"})
	if w.Code != http.StatusOK {
		t.Fatalf("mark paid: %d %s", w.Code, w.Body.String())
	}
	if got := decodeData(t, w); got["paymentMethod"].(string) != "cash" {
		t.Fatalf("payment method: %v", got)
	}

	// the student sees the order in the active tab
	w = doJSON(t, r, http.MethodGet, "/orders", student, nil)
	data := decodeData(t, w)
	active := data["active"].([]any)
	if len(active) != 1 {
		t.Fatalf("active orders = %d, want 1", len(active))
	}

	// dashboard responds for staff
	if w := doJSON(t, r, http.MethodGet, "/canteen/dashboard", staff, nil); w.Code != http.StatusOK {
		t.Fatalf("dashboard: %d", w.Code)
	}
}

func TestUnavailableItemRejectedOverHTTP(t *testing.T) {
	r := newTestServer(t)
	student := login(t, r, "student@campus.edu")

	// item 10 (Paneer Butter Masala) is seeded unavailable
	w := doJSON(t, r, http.MethodPost, "/cart/items", student, gin.H{"menuItemId": 10, "quantity": 1})
	if w.Code != http.StatusConflict {
		t.Fatalf("unavailable item: %d %s", w.Code, w.Body.String())
	}
}

func TestRegisterAndMe(t *testing.T) {
	r := newTestServer(t)

	w := doJSON(t, r, http.MethodPost, "/auth/register", "", gin.H{
		"email": "new@campus.edu", "password": "secret1", "name": "New Student",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/auth/login", "", gin.H{
		"email": "new@campus.edu", "password": "secret1",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login: %d %s", w.Code, w.Body.String())
	}
	token := decodeData(t, w)["token"].(string)

	w = doJSON(t, r, http.MethodGet, "/auth/me", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("me: %d %s", w.Code, w.Body.String())
	}
	if role := decodeData(t, w)["role"].(string); role != entity.RoleStudent {
		t.Fatalf("registered role = %s, want student", role)
	}
}
