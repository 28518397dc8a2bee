package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"gorm.io/gorm"

	"example.com/shop-go/internal/service"
)

// RegisterRoutes wires services and handlers onto the router.
func RegisterRoutes(router *gin.Engine, db *gorm.DB, store *sessions.CookieStore) {
	cartSvc := service.NewCartService(db)
	orderSvc := service.NewOrderService(db)

	auth := &AuthHandler{DB: db, Store: store}
	catalog := &CatalogHandler{Store: store, Catalog: service.NewCatalogService(db)}
	cart := &CartHandler{Store: store, Cart: cartSvc}
	checkout := &CheckoutHandler{
		Store:    store,
		Cart:     cartSvc,
		Checkout: service.NewCheckoutService(db),
	}
	orders := &OrderHandler{Store: store, Orders: orderSvc}
	refund := &RefundHandler{Store: store, Refunds: service.NewRefundService(db)}
	report := &ReportHandler{
		Store:   store,
		Orders:  orderSvc,
		Reports: service.NewReportService(db),
	}

	router.Use(auth.LoadUser())

	router.GET("/", catalog.Home)
	router.GET("/product/:slug", catalog.ItemDetail)
	router.GET("/category/:slug", catalog.FilterByCategory)
	router.GET("/search-results", catalog.Search)

	router.GET("/register", auth.ShowRegisterPage)
	router.POST("/register", auth.ProcessRegisterForm)
	router.GET("/login", auth.ShowLoginPage)
	router.POST("/login", auth.ProcessLoginForm)
	router.GET("/logout", auth.Logout)

	router.GET("/request-refund", refund.ShowRefundForm)
	router.POST("/request-refund", refund.ProcessRefundForm)
	router.GET("/order-detail/:pk", orders.OrderDetail)
	router.GET("/payment", checkout.ShowPaymentPage)

	authed := router.Group("", auth.AuthRequired())
	authed.GET("/add-to-cart/:slug", cart.AddToCart)
	authed.GET("/remove-from-cart/:slug", cart.RemoveFromCart)
	authed.GET("/remove-single-item-from-cart/:slug", cart.RemoveSingleItem)
	authed.GET("/order-summary", cart.OrderSummary)
	authed.GET("/checkout", checkout.ShowCheckoutPage)
	authed.POST("/checkout", checkout.ProcessCheckoutForm)
	authed.GET("/order-list", orders.OrderList)
	authed.GET("/order/:pk/report", report.ShowReportForm)
	authed.POST("/order/:pk/report", report.ProcessReportForm)
}
