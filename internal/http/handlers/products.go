package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faizaniiiking/Ecommerce/internal/http/middleware"
	"github.com/faizaniiiking/Ecommerce/internal/http/validation"
	"github.com/faizaniiiking/Ecommerce/internal/modules/products"
	"github.com/faizaniiiking/Ecommerce/internal/shared/apperr"
)

// ProductsHandler serves GET /products and POST /products.
type ProductsHandler struct {
	Repo *products.Repo
}

func NewProductsHandler(repo *products.Repo) *ProductsHandler {
	return &ProductsHandler{Repo: repo}
}

func (h *ProductsHandler) List(c *gin.Context) {
	items, err := h.Repo.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusOK, items)
}

// Pointers so a zero price still counts as present. Price sign is
// deliberately not checked.
type createProductInput struct {
	Name  *string  `json:"name" binding:"required"`
	Price *float64 `json:"price" binding:"required"`
}

func (h *ProductsHandler) Create(c *gin.Context) {
	var in createProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errs := validation.FromBindError(err, &in)
		middleware.Fail(c, apperr.InvalidErr("Validation failed.", errs))
		return
	}

	p, err := h.Repo.Create(c.Request.Context(), *in.Name, *in.Price)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	c.JSON(http.StatusCreated, p)
}
