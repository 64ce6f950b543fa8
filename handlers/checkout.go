package handlers

import (
	"context"
	"net/http"

	"curries-burger-api/checkout"
	"curries-burger-api/middleware"
	"curries-burger-api/models"

	"github.com/gin-gonic/gin"
)

type CheckoutItem struct {
	MenuItemID    string `json:"menu_item_id" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required,min=1"`
	Customization string `json:"customization"`
}

type CheckoutRequest struct {
	Details checkout.DeliveryDetails `json:"details" binding:"required"`
	Payment checkout.PaymentInput    `json:"payment" binding:"required"`
	Items   []CheckoutItem           `json:"items" binding:"required,min=1"`
}

// PlaceOrder runs the whole checkout flow for one cart: details guard,
// payment validation, the simulated gateway, then transaction → order →
// link. Guests are welcome; a valid token stamps the order with the user
// id.
//
// Validation failures come back as a field → message map on the step that
// rejected them. Once processing starts it runs to completion on a
// detached context — closing the connection does not abandon the order.
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Snapshot cart lines against the stored menu so prices and names are
	// the store's, not the client's.
	items := make([]models.CartItem, 0, len(req.Items))
	for _, line := range req.Items {
		menuItem, found := h.Repo.GetMenuItem(line.MenuItemID)
		if !found {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item not found: " + line.MenuItemID})
			return
		}
		items = append(items, models.CartItem{
			MenuItem:      menuItem,
			Quantity:      line.Quantity,
			Customization: line.Customization,
		})
	}

	m := checkout.NewMachine(items)
	if !m.SubmitDetails(req.Details) {
		c.JSON(http.StatusBadRequest, gin.H{"step": m.Step(), "errors": m.Errors()})
		return
	}
	if !m.SubmitPayment(req.Payment) {
		c.JSON(http.StatusBadRequest, gin.H{"step": m.Step(), "errors": m.Errors()})
		return
	}

	userID := middleware.GetUserID(c)
	result, err := h.Checkout.Place(context.WithoutCancel(c.Request.Context()), userID, m)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		return
	}

	// The cart is the caller's to clear; drop the session cart here when
	// the caller identified one.
	if sid, ok := sessionID(c); ok {
		h.Carts.Drop(sid)
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Order placed successfully",
		"order":       result.Order,
		"transaction": result.Transaction,
		"totals":      result.Totals,
		"stages":      result.Stages,
	})
}
