package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jesh-analyst/campus-eats-hub/pkg/resp"
	"github.com/jesh-analyst/campus-eats-hub/services"
	"github.com/jesh-analyst/campus-eats-hub/utils"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	resp.OK(c, h.Svc.Get(uid))
}

type addToCartIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	Quantity   int  `json:"quantity"`
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var req addToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(uid, req.MenuItemID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, services.ErrItemUnavailable):
			resp.Conflict(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "menu item not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, h.Svc.Get(uid))
}

// PATCH /cart/items/qty
func (h *CartController) UpdateQuantity(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var body struct {
		MenuItemID uint `json:"menuItemId" binding:"required"`
		Quantity   int  `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	h.Svc.UpdateQuantity(uid, body.MenuItemID, body.Quantity)
	resp.OK(c, h.Svc.Get(uid))
}

// DELETE /cart/items/:menuItemId
func (h *CartController) Remove(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, ok := paramUint(c, "menuItemId")
	if !ok {
		resp.BadRequest(c, "invalid menu item id")
		return
	}
	h.Svc.Remove(uid, id)
	resp.OK(c, h.Svc.Get(uid))
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	h.Svc.Clear(uid)
	resp.OK(c, h.Svc.Get(uid))
}
