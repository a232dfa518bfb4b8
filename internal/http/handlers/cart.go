package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/faizaniiiking/Ecommerce/internal/http/cartcookie"
	"github.com/faizaniiiking/Ecommerce/internal/http/flash"
	"github.com/faizaniiiking/Ecommerce/internal/http/render"
	"github.com/faizaniiiking/Ecommerce/internal/modules/cart"
	"github.com/faizaniiiking/Ecommerce/internal/modules/products"
	"github.com/faizaniiiking/Ecommerce/pkg/view"
)

// CartHandler mutates the session cart cookie and renders the cart page.
// Cart operations are the pure reducers in internal/modules/cart; this layer
// only loads the snapshot, applies one action and writes it back.
type CartHandler struct {
	Flash    *flash.Codec
	CK       *cartcookie.Codec
	Products *products.Repo
}

func NewCartHandler(fl *flash.Codec, ck *cartcookie.Codec, repo *products.Repo) *CartHandler {
	return &CartHandler{Flash: fl, CK: ck, Products: repo}
}

// Page handles GET /cart.
func (h *CartHandler) Page(c *gin.Context) {
	crt := h.CK.Get(c)
	render.Page(c, http.StatusOK, "cart", gin.H{
		"Page":    cartPage(crt),
		"IdemKey": randHex(16),
	})
}

// Add handles POST /cart/add. The same product can be added any number of
// times; every add appends a new entry.
func (h *CartHandler) Add(c *gin.Context) {
	productID := strings.TrimSpace(c.PostForm("product_id"))
	if productID == "" {
		render.RedirectWithFlash(c, h.Flash, "/", view.FlashError, "No product selected.")
		return
	}

	p, err := h.Products.Get(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			render.RedirectWithFlash(c, h.Flash, "/", view.FlashError, "Product not found.")
			return
		}
		log.Printf("CartAdd: lookup failed for product_id=%s: %v", productID, err)
		render.RedirectWithFlash(c, h.Flash, "/", view.FlashError, "Could not add to cart.")
		return
	}

	crt := h.CK.Get(c)
	crt = cart.Add(crt, cart.Item{ID: p.ID, Name: p.Name, Price: p.Price})
	h.CK.Set(c, crt)

	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Added to cart.")
}

// Remove handles POST /cart/remove. Removes every entry with the given
// product ID, not just the first.
func (h *CartHandler) Remove(c *gin.Context) {
	productID := strings.TrimSpace(c.PostForm("product_id"))
	if productID == "" {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashWarning, "No product selected.")
		return
	}

	crt := h.CK.Get(c)
	crt = cart.Remove(crt, productID)
	h.CK.Set(c, crt)

	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Removed from cart.")
}

// Empty handles POST /cart/empty.
func (h *CartHandler) Empty(c *gin.Context) {
	crt := h.CK.Get(c)
	crt = cart.Empty(crt)
	h.CK.Set(c, crt)

	render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashSuccess, "Cart emptied.")
}
