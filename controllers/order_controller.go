package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/jesh-analyst/campus-eats-hub/pkg/resp"
	"github.com/jesh-analyst/campus-eats-hub/repository"
	"github.com/jesh-analyst/campus-eats-hub/services"
	"github.com/jesh-analyst/campus-eats-hub/utils"
)

// OrderController is the student-facing order surface: checkout and
// tracking of own orders.
type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

type checkoutReq struct {
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=cash online"`
}

// POST /orders
func (h *OrderController) Checkout(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var req checkoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.PlaceOrder(c.Request.Context(), uid, req.PaymentMethod)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			resp.BadRequest(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, order)
}

// GET /orders — the student's own orders, split the way the tracking
// screen shows them.
func (h *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	mine := services.OrdersForUser(h.Svc.Orders.List(), uid)
	resp.OK(c, gin.H{
		"active": services.ActiveOrders(mine),
		"past":   services.PastOrders(mine),
	})
}

// GET /orders/:id — only the owning student may look.
func (h *OrderController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	order, err := h.Svc.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	if order.UserID != uid {
		resp.NotFound(c, "order not found")
		return
	}
	resp.OK(c, order)
}
