package handlers

import (
	"errors"
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/faizaniiiking/Ecommerce/internal/http/cartcookie"
	"github.com/faizaniiiking/Ecommerce/internal/http/flash"
	"github.com/faizaniiiking/Ecommerce/internal/http/render"
	"github.com/faizaniiiking/Ecommerce/internal/modules/checkout"
	"github.com/faizaniiiking/Ecommerce/internal/modules/orders"
	"github.com/faizaniiiking/Ecommerce/pkg/view"
)

type CheckoutHandler struct {
	Flash *flash.Codec
	CK    *cartcookie.Codec
	Svc   *checkout.Service
}

func NewCheckoutHandler(fl *flash.Codec, ck *cartcookie.Codec, svc *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{Flash: fl, CK: ck, Svc: svc}
}

// Post handles POST /checkout: session cart -> persisted order. The cart
// cookie is cleared only after the order insert succeeds; a failed persist
// keeps the cart so the user can retry.
func (h *CheckoutHandler) Post(c *gin.Context) {
	crt := h.CK.Get(c)
	if len(crt.Items) == 0 {
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Cart is empty.")
		return
	}

	idem := strings.TrimSpace(c.PostForm("idempotency_key"))
	if idem == "" {
		idem = randHex(16)
	}

	log.Printf("Checkout: placing order, items=%d idem=%s", len(crt.Items), idem)

	res, err := h.Svc.Place(c.Request.Context(), crt, &idem)
	if err != nil {
		if errors.Is(err, orders.ErrCartEmpty) {
			render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Cart is empty.")
			return
		}
		log.Printf("Checkout failed: %v", err)
		render.RedirectWithFlash(c, h.Flash, "/cart", view.FlashError, "Checkout failed. Please try again.")
		return
	}

	h.CK.Clear(c)
	log.Printf("Checkout: order %s placed, total=%.2f", res.OrderID, res.Total)

	render.RedirectWithFlash(c, h.Flash, "/", view.FlashSuccess, "Order placed. Thank you!")
}
