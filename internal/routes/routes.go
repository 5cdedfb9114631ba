package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"locaneon_back_end/internal/auth"
	"locaneon_back_end/internal/cart"
	"locaneon_back_end/internal/checkout"
	"locaneon_back_end/internal/handlers"
	"locaneon_back_end/internal/handlers/admin"
	"locaneon_back_end/internal/middleware"
	"locaneon_back_end/internal/settings"
	"locaneon_back_end/internal/store"
)

// Deps reúne os colaboradores injetados em cada grupo de handlers.
type Deps struct {
	Catalog       store.Catalog
	Orders        store.Orders
	Carts         cart.Manager
	Pipeline      *checkout.Pipeline
	Settings      settings.Service
	Authenticator auth.Authenticator
	SessionSecret string
}

func Register(r *gin.Engine, d Deps) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	products := &handlers.ProductHandler{Catalog: d.Catalog}
	carts := &handlers.CartHandler{Carts: d.Carts, Catalog: d.Catalog}
	checkoutH := &handlers.CheckoutHandler{Pipeline: d.Pipeline}

	adminAuth := &admin.AuthHandler{Authenticator: d.Authenticator}
	adminProducts := &admin.ProductHandler{Catalog: d.Catalog}
	adminOrders := &admin.OrderHandler{Orders: d.Orders}
	adminSettings := &admin.SettingsHandler{Service: d.Settings}

	api := r.Group("/api")

	// vitrine: catálogo público
	api.GET("/products", products.List)
	api.GET("/products/search", products.Search)
	api.GET("/products/:id", products.Get)

	// carrinho e checkout, amarrados ao cookie de sessão
	shop := api.Group("/")
	shop.Use(middleware.CartSession(d.SessionSecret))
	{
		shop.GET("cart", carts.Get)
		shop.POST("cart", carts.Add)
		shop.PUT("cart/:productId", carts.UpdateQuantity)
		shop.DELETE("cart/:productId", carts.Remove)
		shop.DELETE("cart", carts.Clear)

		shop.POST("checkout", checkoutH.Start)
		shop.GET("checkout/payment", checkoutH.Payment)
		shop.POST("checkout/back", checkoutH.Back)
		shop.POST("checkout/confirm", checkoutH.Confirm)
	}

	// painel de admin
	api.POST("/admin/login", adminAuth.Login)
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.AuthRequired())
	{
		adminGroup.POST("/products", adminProducts.Create)
		adminGroup.PUT("/products/:id", adminProducts.Update)
		adminGroup.DELETE("/products/:id", adminProducts.Delete)
		adminGroup.GET("/orders", adminOrders.List)
		adminGroup.GET("/settings", adminSettings.Get)
		adminGroup.PUT("/settings", adminSettings.Save)
	}
}
