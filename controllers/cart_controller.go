package controllers

import (
	"strconv"

	"backend/pkg/resp"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController {
	return &CartController{Svc: s}
}

// GET /cart?include_unavailable=
func (h *CartController) View(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	include := c.Query("include_unavailable") == "true"
	out, err := h.Svc.View(uid, include)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	line, err := h.Svc.Add(uid, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, line)
}

// POST /cart/quick-add?menu_item_id=
func (h *CartController) QuickAdd(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, err := strconv.ParseUint(c.Query("menu_item_id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid menu_item_id")
		return
	}
	line, err := h.Svc.QuickAdd(uid, uint(id))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, line)
}

// PUT /cart/items/:id
func (h *CartController) UpdateQuantity(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, ok := paramID(c)
	if !ok {
		return
	}
	var body struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	line, err := h.Svc.UpdateQuantity(uid, id, body.Quantity)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, line)
}

// DELETE /cart/items/:id
func (h *CartController) Remove(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Svc.Remove(uid, id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if err := h.Svc.Clear(uid); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}

// POST /cart/bulk-update
func (h *CartController) BulkUpdate(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var req services.BulkCartUpdateIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	out, err := h.Svc.BulkReplace(uid, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// POST /cart/sync
func (h *CartController) Sync(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	out, err := h.Svc.Sync(uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /cart/stats (staff)
func (h *CartController) Stats(c *gin.Context) {
	out, err := h.Svc.Stats()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}
