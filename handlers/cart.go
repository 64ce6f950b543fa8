package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// sessionID identifies the caller's in-memory cart. Carts are per-session
// and never persisted.
func sessionID(c *gin.Context) (string, bool) {
	id := c.GetHeader("X-Session-ID")
	return id, id != ""
}

// GetCart returns the session's cart and subtotal.
func (h *Handler) GetCart(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Session-ID header required"})
		return
	}
	ct := h.Carts.Get(sid)
	c.JSON(http.StatusOK, gin.H{"items": ct.Items(), "subtotal": ct.Subtotal()})
}

type AddToCartRequest struct {
	MenuItemID    string `json:"menu_item_id" binding:"required"`
	Quantity      int    `json:"quantity"`
	Customization string `json:"customization"`
}

// AddToCart puts a menu item in the session's cart. Prices come from the
// stored menu, never from the client.
func (h *Handler) AddToCart(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Session-ID header required"})
		return
	}
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, found := h.Repo.GetMenuItem(req.MenuItemID)
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	ct := h.Carts.Get(sid)
	ct.Add(item, req.Quantity, req.Customization)
	c.JSON(http.StatusOK, gin.H{"items": ct.Items(), "subtotal": ct.Subtotal()})
}

type UpdateCartRequest struct {
	MenuItemID string `json:"menu_item_id" binding:"required"`
	Delta      int    `json:"delta" binding:"required"`
}

// UpdateCartQuantity applies a quantity delta; a line that reaches zero is
// removed.
func (h *Handler) UpdateCartQuantity(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Session-ID header required"})
		return
	}
	var req UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ct := h.Carts.Get(sid)
	ct.UpdateQuantity(req.MenuItemID, req.Delta)
	c.JSON(http.StatusOK, gin.H{"items": ct.Items(), "subtotal": ct.Subtotal()})
}

// ClearCart empties the session's cart.
func (h *Handler) ClearCart(c *gin.Context) {
	sid, ok := sessionID(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Session-ID header required"})
		return
	}
	h.Carts.Drop(sid)
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
