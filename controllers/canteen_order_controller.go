package controllers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jesh-analyst/campus-eats-hub/entity"
	"github.com/jesh-analyst/campus-eats-hub/pkg/resp"
	"github.com/jesh-analyst/campus-eats-hub/repository"
	"github.com/jesh-analyst/campus-eats-hub/services"
)

// CanteenOrderController is the staff/owner surface: the order queue,
// status and payment management, and the dashboard.
type CanteenOrderController struct{ Svc *services.OrderService }

func NewCanteenOrderController(s *services.OrderService) *CanteenOrderController {
	return &CanteenOrderController{Svc: s}
}

// GET /canteen/orders?scope=active|past&status=
func (h *CanteenOrderController) List(c *gin.Context) {
	orders := h.Svc.Orders.List()

	switch c.DefaultQuery("scope", "active") {
	case "past":
		orders = services.PastOrders(orders)
	case "all":
		// whole collection
	default:
		orders = services.ActiveOrders(orders)
	}

	if s := c.Query("status"); s != "" {
		st := entity.OrderStatus(s)
		if !st.Valid() {
			resp.BadRequest(c, "unknown status")
			return
		}
		orders = services.OrdersByStatus(orders, st)
	}

	resp.OK(c, gin.H{"items": orders, "total": len(orders)})
}

// PATCH /canteen/orders/:id/status
func (h *CanteenOrderController) ChangeStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.ChangeStatus(c.Param("id"), entity.OrderStatus(body.Status))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrOrderNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrInvalidTransition):
			resp.Conflict(c, err.Error())
		default:
			resp.BadRequest(c, err.Error())
		}
		return
	}
	resp.OK(c, order)
}

// PATCH /canteen/orders/:id/payment
func (h *CanteenOrderController) ChangePayment(c *gin.Context) {
	var body struct {
		PaymentStatus string `json:"paymentStatus" binding:"required,oneof=paid unpaid"`
		Method        string `json:"method"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.ChangePayment(c.Param("id"), body.PaymentStatus, body.Method)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrOrderNotFound):
			resp.NotFound(c, "order not found")
		case errors.Is(err, services.ErrMissingPaymentMethod):
			resp.BadRequest(c, err.Error())
		default:
			resp.BadRequest(c, err.Error())
		}
		return
	}
	resp.OK(c, order)
}

// GET /canteen/dashboard
func (h *CanteenOrderController) Dashboard(c *gin.Context) {
	resp.OK(c, services.Stats(h.Svc.Orders.List(), time.Now()))
}
