package handlers

import (
	"net/http"

	"curries-burger-api/middleware"
	"curries-burger-api/models"
	"curries-burger-api/statemachine"
	"curries-burger-api/tracker"

	"github.com/gin-gonic/gin"
)

// GetMyOrders returns the logged-in user's orders, newest first.
func (h *Handler) GetMyOrders(c *gin.Context) {
	orders := h.Repo.ListOrdersForUser(middleware.GetUserID(c))
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetMyOrderDetail returns one of the caller's orders with its tracking
// projection.
func (h *Handler) GetMyOrderDetail(c *gin.Context) {
	order, ok := h.Repo.GetOrder(c.Param("id"))
	if !ok || order.UserID != middleware.GetUserID(c) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order, "tracking": tracker.Project(order)})
}

// CancelMyOrder cancels one of the caller's orders while the pipeline still
// allows it.
func (h *Handler) CancelMyOrder(c *gin.Context) {
	userID := middleware.GetUserID(c)
	order, ok := h.Repo.GetOrder(c.Param("id"))
	if !ok || order.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}
	if err := statemachine.CanTransition(order.Status, models.StatusCancelled, "customer"); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.Repo.UpdateOrderStatus(order.ID, models.StatusCancelled)
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled", "order_id": order.ID})
}

// GetMyTransactions returns the caller's payment history.
func (h *Handler) GetMyTransactions(c *gin.Context) {
	txs := h.Repo.ListTransactionsForUser(middleware.GetUserID(c))
	c.JSON(http.StatusOK, gin.H{"count": len(txs), "transactions": txs})
}
