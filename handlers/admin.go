package handlers

import (
	"net/http"

	"curries-burger-api/middleware"
	"curries-burger-api/models"
	"curries-burger-api/statemachine"

	"github.com/gin-gonic/gin"
)

// AdminGetAllOrders returns every order plus a status summary — admin only
func (h *Handler) AdminGetAllOrders(c *gin.Context) {
	orders := h.Repo.ListOrders()

	if status := c.Query("status"); status != "" {
		filtered := orders[:0:0]
		for _, o := range orders {
			if string(o.Status) == status {
				filtered = append(filtered, o)
			}
		}
		orders = filtered
	}

	// Dashboard aggregates: orders by status, revenue from delivered orders.
	summary := map[string]int{}
	var totalRevenue float64
	for _, o := range orders {
		summary[string(o.Status)]++
		if o.Status == models.StatusDelivered {
			totalRevenue += o.Total
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"total_revenue": totalRevenue,
		"count":         len(orders),
		"orders":        orders,
	})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
	Force  bool               `json:"force"`
	Reason string             `json:"reason"`
}

// AdminUpdateOrderStatus moves an order along the pipeline. Transitions are
// checked against the state machine unless force is set (emergency use).
func (h *Handler) AdminUpdateOrderStatus(c *gin.Context) {
	orderID := c.Param("id")
	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !req.Status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status: " + string(req.Status)})
		return
	}

	order, found := h.Repo.GetOrder(orderID)
	if !found {
		// The repository treats unknown ids as a no-op; the admin API can
		// do better and say so.
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if !req.Force {
		actor := string(middleware.GetRole(c))
		if err := statemachine.CanTransition(order.Status, req.Status, actor); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	h.Repo.UpdateOrderStatus(orderID, req.Status)
	c.JSON(http.StatusOK, gin.H{
		"message":         "Order status updated",
		"order_id":        orderID,
		"previous_status": order.Status,
		"new_status":      req.Status,
	})
}

// AdminGetTransactions returns every recorded transaction — admin only
func (h *Handler) AdminGetTransactions(c *gin.Context) {
	txs := h.Repo.ListTransactions()
	c.JSON(http.StatusOK, gin.H{"count": len(txs), "transactions": txs})
}

// AdminGetUsers returns all accounts — admin only
func (h *Handler) AdminGetUsers(c *gin.Context) {
	users := h.Repo.ListUsers()
	public := make([]models.PublicUser, 0, len(users))
	for _, u := range users {
		public = append(public, u.Public())
	}
	c.JSON(http.StatusOK, gin.H{"count": len(public), "users": public})
}

// AdminGetReservations lists reservations — admin only
func (h *Handler) AdminGetReservations(c *gin.Context) {
	reservations := h.Repo.ListReservations()
	c.JSON(http.StatusOK, gin.H{"count": len(reservations), "reservations": reservations})
}

// AdminGetCateringRequests lists catering inquiries — admin only
func (h *Handler) AdminGetCateringRequests(c *gin.Context) {
	requests := h.Repo.ListCateringRequests()
	c.JSON(http.StatusOK, gin.H{"count": len(requests), "requests": requests})
}

type UpdateCateringStatusRequest struct {
	Status models.CateringStatus `json:"status" binding:"required"`
}

// AdminUpdateCateringStatus moves an inquiry through New/Contacted/Closed.
func (h *Handler) AdminUpdateCateringStatus(c *gin.Context) {
	var req UpdateCateringStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !h.Repo.UpdateCateringStatus(c.Param("id"), req.Status) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Catering request not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Catering request updated"})
}

// AdminGetSubscribers lists newsletter subscribers — admin only
func (h *Handler) AdminGetSubscribers(c *gin.Context) {
	subscribers := h.Repo.ListSubscribers()
	c.JSON(http.StatusOK, gin.H{"count": len(subscribers), "subscribers": subscribers})
}

// ── Menu management ────────────────────────────────────────────────

type MenuItemRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" binding:"required,gt=0"`
	Category      string  `json:"category" binding:"required"`
	Image         string  `json:"image"`
	IsVeg         bool    `json:"isVeg"`
	IsSpicy       bool    `json:"isSpicy"`
	IsChefSpecial bool    `json:"isChefSpecial"`
	Calories      int     `json:"calories"`
}

func (r MenuItemRequest) model() models.MenuItem {
	return models.MenuItem{
		Name:          r.Name,
		Description:   r.Description,
		Price:         r.Price,
		Category:      r.Category,
		Image:         r.Image,
		IsVeg:         r.IsVeg,
		IsSpicy:       r.IsSpicy,
		IsChefSpecial: r.IsChefSpecial,
		Calories:      r.Calories,
	}
}

// AdminAddMenuItem adds a dish to the menu.
func (h *Handler) AdminAddMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, err := h.Repo.AddMenuItem(req.model())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add menu item"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "item": item})
}

// AdminUpdateMenuItem replaces a dish's fields.
func (h *Handler) AdminUpdateMenuItem(c *gin.Context) {
	var req MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item, found, err := h.Repo.UpdateMenuItem(c.Param("itemId"), req.model())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update menu item"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "item": item})
}

// AdminDeleteMenuItem removes a dish.
func (h *Handler) AdminDeleteMenuItem(c *gin.Context) {
	found, err := h.Repo.DeleteMenuItem(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}
