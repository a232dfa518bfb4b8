package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/faizaniiiking/Ecommerce/internal/http/middleware"
	"github.com/faizaniiiking/Ecommerce/internal/http/validation"
	"github.com/faizaniiiking/Ecommerce/internal/modules/orders"
	"github.com/faizaniiiking/Ecommerce/internal/shared/apperr"
)

// OrdersHandler serves the /orders API. Totals are stored as given and never
// verified against the product lines.
type OrdersHandler struct {
	Repo *orders.Repo
}

func NewOrdersHandler(repo *orders.Repo) *OrdersHandler {
	return &OrdersHandler{Repo: repo}
}

type orderLineInput struct {
	ID       string `json:"id" binding:"required"`
	Quantity *int   `json:"quantity" binding:"required"`
}

type createOrderInput struct {
	Products []orderLineInput `json:"products" binding:"required,min=1,dive"`
	Total    *float64         `json:"total" binding:"required"`
}

func (h *OrdersHandler) Create(c *gin.Context) {
	var in createOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Validation failed.", errs))
		return
	}

	lines := make([]orders.Line, 0, len(in.Products))
	for _, ln := range in.Products {
		lines = append(lines, orders.Line{ProductID: ln.ID, Quantity: *ln.Quantity})
	}

	o, err := h.Repo.Create(c.Request.Context(), orders.CreateInput{
		Lines: lines,
		Total: *in.Total,
	})
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":       o.ID,
		"products": in.Products,
		"total":    o.Total,
	})
}

func (h *OrdersHandler) Get(c *gin.Context) {
	id := c.Param("id")
	o, items, err := h.Repo.GetWithItems(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			middleware.Fail(c, apperr.NotFoundErr("Order not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       o.ID,
		"products": items,
		"total":    o.Total,
	})
}

func (h *OrdersHandler) List(c *gin.Context) {
	items, err := h.Repo.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, items)
}
