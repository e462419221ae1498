package controllers

import (
	"strconv"
	"time"

	"backend/entity"
	"backend/pkg/money"
	"backend/pkg/resp"
	"backend/repository"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

func currentCaller(c *gin.Context) services.Caller {
	return services.Caller{
		ID:   utils.CurrentUserID(c),
		Role: entity.Role(utils.CurrentRole(c)),
	}
}

// POST /orders
func (h *OrderController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	var req services.CreateOrderIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.CreateFromItems(uid, &req)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, order)
}

// POST /orders/from-cart?notes=
func (h *OrderController) CreateFromCart(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	out, err := h.Svc.CreateFromCart(uid, c.Query("notes"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, out)
}

// GET /orders/:id
func (h *OrderController) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	out, err := h.Svc.Get(currentCaller(c), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /orders?status=&user_id=&date_from=&date_to=&min_total=&max_total=&skip=&limit=
func (h *OrderController) List(c *gin.Context) {
	f, ok := parseOrderFilter(c)
	if !ok {
		return
	}
	out, err := h.Svc.List(currentCaller(c), f)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// PATCH /orders/:id/status (staff)
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var body struct {
		Status entity.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Svc.UpdateStatus(currentCaller(c), id, body.Status)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, order)
}

// DELETE /orders/:id → cancel, never hard-delete
func (h *OrderController) Cancel(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if _, err := h.Svc.Cancel(currentCaller(c), id); err != nil {
		resp.Error(c, err)
		return
	}
	resp.NoContent(c)
}

// GET /orders/stats/dashboard?date_from=&date_to= (staff)
func (h *OrderController) Stats(c *gin.Context) {
	from, ok := parseTimeQuery(c, "date_from")
	if !ok {
		return
	}
	to, ok := parseTimeQuery(c, "date_to")
	if !ok {
		return
	}
	out, err := h.Svc.Stats(from, to)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}

// ----- query parsing -----

func parseTimeQuery(c *gin.Context, key string) (*time.Time, bool) {
	v := c.Query(key)
	if v == "" {
		return nil, true
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		resp.BadRequest(c, "invalid "+key+", want RFC3339")
		return nil, false
	}
	return &t, true
}

func parseOrderFilter(c *gin.Context) (repository.OrderFilter, bool) {
	var f repository.OrderFilter

	if v := c.Query("status"); v != "" {
		st := entity.OrderStatus(v)
		if !st.Valid() {
			resp.BadRequest(c, "invalid status")
			return f, false
		}
		f.Status = &st
	}
	if v := c.Query("user_id"); v != "" {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			resp.BadRequest(c, "invalid user_id")
			return f, false
		}
		u := uint(id)
		f.UserID = &u
	}
	var ok bool
	if f.DateFrom, ok = parseTimeQuery(c, "date_from"); !ok {
		return f, false
	}
	if f.DateTo, ok = parseTimeQuery(c, "date_to"); !ok {
		return f, false
	}
	if v := c.Query("min_total"); v != "" {
		m, err := money.FromString(v)
		if err != nil {
			resp.BadRequest(c, "invalid min_total")
			return f, false
		}
		f.MinTotal = &m
	}
	if v := c.Query("max_total"); v != "" {
		m, err := money.FromString(v)
		if err != nil {
			resp.BadRequest(c, "invalid max_total")
			return f, false
		}
		f.MaxTotal = &m
	}
	f.Skip, _ = strconv.Atoi(c.DefaultQuery("skip", "0"))
	f.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	return f, true
}
