package handlers

import (
	"net/http"

	"curries-burger-api/models"
	"curries-burger-api/repository"
	"curries-burger-api/statemachine"

	"github.com/gin-gonic/gin"
)

// GetMenu returns the menu, optionally filtered by category and search term.
func (h *Handler) GetMenu(c *gin.Context) {
	items := h.Repo.GetMenuItems()

	if category := c.Query("category"); category != "" && category != "All" {
		filtered := items[:0:0]
		for _, item := range items {
			if item.Category == category {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	c.JSON(http.StatusOK, gin.H{"count": len(items), "items": items})
}

// GetCategories returns the category list menu pages filter on.
func (h *Handler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.Categories})
}

// TrackOrder is the public order tracker: order id in, pipeline view out.
// Cancelled orders come back flagged as cancelled with no pipeline
// position.
func (h *Handler) TrackOrder(c *gin.Context) {
	view, ok := h.Tracker.Track(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found. Please check your Order ID."})
		return
	}
	c.JSON(http.StatusOK, view)
}

type ReservationRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Phone  string `json:"phone" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Time   string `json:"time" binding:"required"`
	Guests int    `json:"guests" binding:"required,min=1"`
}

// CreateReservation books a table.
func (h *Handler) CreateReservation(c *gin.Context) {
	var req ReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res, err := h.Repo.CreateReservation(repository.ReservationDraft{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Date:   req.Date,
		Time:   req.Time,
		Guests: req.Guests,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save reservation"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Reservation confirmed", "reservation": res})
}

type CateringRequestBody struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	EventType  string `json:"eventType" binding:"required"`
	Date       string `json:"date" binding:"required"`
	GuestCount int    `json:"guestCount" binding:"required,min=1"`
	Message    string `json:"message"`
}

// CreateCateringRequest files a catering inquiry.
func (h *Handler) CreateCateringRequest(c *gin.Context) {
	var req CateringRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	created, err := h.Repo.CreateCateringRequest(repository.CateringDraft{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		EventType:  req.EventType,
		Date:       req.Date,
		GuestCount: req.GuestCount,
		Message:    req.Message,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save catering request"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Catering request received, we will be in touch", "request": created})
}

type SubscribeRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Subscribe signs an email up for the newsletter; duplicates are silently
// accepted.
func (h *Handler) Subscribe(c *gin.Context) {
	var req SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, err := h.Repo.Subscribe(req.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subscribed to newsletter"})
}

// GetStateMachineInfo documents the order status pipeline and its valid
// transitions.
func (h *Handler) GetStateMachineInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"statuses": []models.OrderStatus{
			models.StatusPending,
			models.StatusPreparing,
			models.StatusOutForDelivery,
			models.StatusDelivered,
			models.StatusCancelled,
		},
		"transitions": statemachine.GetAllTransitions(),
	})
}
