package routes

import (
	"curries-burger-api/handlers"
	"curries-burger-api/middleware"
	"curries-burger-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/register", h.Register)
		public.POST("/auth/login", h.Login)

		// Menu browsing (no auth needed)
		public.GET("/menu", h.GetMenu)
		public.GET("/menu/categories", h.GetCategories)

		// Order tracking works for guests too
		public.GET("/orders/:id/track", h.TrackOrder)

		// Front-of-house forms
		public.POST("/reservations", h.CreateReservation)
		public.POST("/catering", h.CreateCateringRequest)
		public.POST("/newsletter/subscribe", h.Subscribe)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", h.GetStateMachineInfo)
	}

	// ── Cart routes (session header, no auth) ──────────────────────
	cart := r.Group("/api/cart")
	{
		cart.GET("", h.GetCart)
		cart.POST("/items", h.AddToCart)
		cart.PUT("/items", h.UpdateCartQuantity)
		cart.DELETE("", h.ClearCart)
	}

	// ── Checkout: guests allowed, a token stamps the order ─────────
	r.POST("/api/checkout", middleware.OptionalAuth(h.JWTSecret), h.PlaceOrder)

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired(h.JWTSecret))
	{
		auth.GET("/profile", h.GetProfile)
		auth.GET("/my/orders", h.GetMyOrders)
		auth.GET("/my/orders/:id", h.GetMyOrderDetail)
		auth.PUT("/my/orders/:id/cancel", h.CancelMyOrder)
		auth.GET("/my/transactions", h.GetMyTransactions)
	}

	// ── Admin back-office ──────────────────────────────────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(h.JWTSecret), middleware.RoleRequired(models.RoleAdmin, models.RoleStaff))
	{
		admin.GET("/orders", h.AdminGetAllOrders)
		admin.PUT("/orders/:id/status", h.AdminUpdateOrderStatus)
		admin.GET("/transactions", h.AdminGetTransactions)
		admin.GET("/reservations", h.AdminGetReservations)
		admin.GET("/catering", h.AdminGetCateringRequests)
		admin.PUT("/catering/:id/status", h.AdminUpdateCateringStatus)
		admin.GET("/subscribers", h.AdminGetSubscribers)
		admin.GET("/users", h.AdminGetUsers)

		// Menu management
		admin.POST("/menu", h.AdminAddMenuItem)
		admin.PUT("/menu/:itemId", h.AdminUpdateMenuItem)
		admin.DELETE("/menu/:itemId", h.AdminDeleteMenuItem)
	}
}
