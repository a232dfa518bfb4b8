package render

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/faizaniiiking/Ecommerce/internal/http/flash"
	"github.com/faizaniiiking/Ecommerce/internal/http/middleware"
	"github.com/faizaniiiking/Ecommerce/pkg/view"
)

// Page renders a named template with the shared fields every page expects.
func Page(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = middleware.GetFlash(c)
	}
	c.HTML(status, name, data)
}

func RedirectWithFlash(c *gin.Context, codec *flash.Codec, location string, kind view.FlashKind, msg string) {
	middleware.SetFlashCookie(c, codec, view.Flash{Kind: kind, Message: msg})
	c.Redirect(http.StatusSeeOther, location)
}
