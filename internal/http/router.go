package http

import (
	"io/fs"
	"log/slog"
	nethttp "net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/faizaniiiking/Ecommerce/internal/config"
	"github.com/faizaniiiking/Ecommerce/internal/http/cartcookie"
	"github.com/faizaniiiking/Ecommerce/internal/http/flash"
	"github.com/faizaniiiking/Ecommerce/internal/http/handlers"
	"github.com/faizaniiiking/Ecommerce/internal/http/middleware"
	"github.com/faizaniiiking/Ecommerce/internal/modules/checkout"
	"github.com/faizaniiiking/Ecommerce/internal/modules/orders"
	"github.com/faizaniiiking/Ecommerce/internal/modules/products"
	"github.com/faizaniiiking/Ecommerce/templates"
	"github.com/faizaniiiking/Ecommerce/web"
)

// NewRouter wires middleware, repos and routes onto a gin engine.
func NewRouter(l *slog.Logger, db *gorm.DB, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.SetHTMLTemplate(templates.Load())

	// ErrorHandler sits outside Recovery so a recovered panic still gets a
	// rendered 500.
	r.Use(
		middleware.RequestID(),
		middleware.Logger(l),
		middleware.ErrorHandler(l),
		middleware.Recovery(l),
	)

	flashCodec := flash.NewCodec(cfg.CookieSecret, "flash", cfg.SecureCookies)
	ck := cartcookie.New(cfg.CookieSecret, "cart", cfg.SecureCookies)
	r.Use(middleware.FlashMiddleware(flashCodec))

	productRepo := products.NewRepo(db)
	orderRepo := orders.NewRepo(db)
	checkoutSvc := checkout.NewService(orderRepo)

	ph := handlers.NewProductsHandler(productRepo)
	oh := handlers.NewOrdersHandler(orderRepo)
	ch := handlers.NewCartHandler(flashCodec, ck, productRepo)
	kh := handlers.NewCheckoutHandler(flashCodec, ck, checkoutSvc)
	hh := handlers.NewHomeHandler(productRepo, ck)

	// JSON API
	api := r.Group("/", middleware.JSONRoute())
	api.GET("/products", ph.List)
	api.POST("/products", ph.Create)
	api.GET("/orders", oh.List)
	api.POST("/orders", oh.Create)
	api.GET("/orders/:id", oh.Get)
	api.GET("/healthz", handlers.Health)

	// Session cart + checkout (server-rendered)
	r.GET("/cart", ch.Page)
	r.POST("/cart/add", ch.Add)
	r.POST("/cart/remove", ch.Remove)
	r.POST("/cart/empty", ch.Empty)
	r.POST("/checkout", kh.Post)

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		panic(err)
	}
	r.StaticFS("/static", nethttp.FS(staticFS))

	// Everything else is the storefront.
	r.NoRoute(hh.Home)

	return r
}
