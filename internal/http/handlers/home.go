package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faizaniiiking/Ecommerce/internal/http/cartcookie"
	"github.com/faizaniiiking/Ecommerce/internal/http/middleware"
	"github.com/faizaniiiking/Ecommerce/internal/http/render"
	"github.com/faizaniiiking/Ecommerce/internal/modules/products"
	"github.com/faizaniiiking/Ecommerce/internal/shared/apperr"
	"github.com/faizaniiiking/Ecommerce/pkg/view"
)

// HomeHandler renders the storefront: product grid plus the server-rendered
// cart snapshot, hydrated client-side by /static/app.js.
type HomeHandler struct {
	Products *products.Repo
	CK       *cartcookie.Codec
}

func NewHomeHandler(repo *products.Repo, ck *cartcookie.Codec) *HomeHandler {
	return &HomeHandler{Products: repo, CK: ck}
}

func (h *HomeHandler) Home(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		c.Status(http.StatusNotFound)
		return
	}

	items, err := h.Products.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	cards := make([]view.ProductCard, 0, len(items))
	for _, p := range items {
		cards = append(cards, view.ProductCard{
			ID:       p.ID,
			Name:     p.Name,
			Price:    p.Price,
			PriceStr: view.Money(p.Price),
		})
	}

	crt := h.CK.Get(c)
	render.Page(c, http.StatusOK, "home", gin.H{
		"Page": view.HomePage{Products: cards, Cart: cartPage(crt)},
	})
}
