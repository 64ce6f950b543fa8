// Package tracker projects an order's status onto the fixed four-step
// delivery pipeline. It holds no state of its own — progress is purely a
// function of the order's current status.
package tracker

import (
	"curries-burger-api/models"
	"curries-burger-api/repository"
)

// Pipeline is the ordered delivery progression. Cancelled has no slot here:
// it is a terminal state outside the pipeline and is reported separately.
var Pipeline = []models.OrderStatus{
	models.StatusPending,
	models.StatusPreparing,
	models.StatusOutForDelivery,
	models.StatusDelivered,
}

var stepLabels = map[models.OrderStatus]string{
	models.StatusPending:        "Order Placed",
	models.StatusPreparing:      "Preparing",
	models.StatusOutForDelivery: "Out for Delivery",
	models.StatusDelivered:      "Delivered",
}

type Step struct {
	Status  models.OrderStatus `json:"status"`
	Label   string             `json:"label"`
	Reached bool               `json:"reached"`
	Current bool               `json:"current"`
}

// View is the tracking projection for one order.
type View struct {
	Order        models.Order `json:"order"`
	Steps        []Step       `json:"steps"`
	CurrentIndex int          `json:"currentIndex"` // -1 when cancelled
	Cancelled    bool         `json:"cancelled"`
}

type Tracker struct {
	repo *repository.Repository
}

func New(repo *repository.Repository) *Tracker {
	return &Tracker{repo: repo}
}

// PipelineIndex maps a status to its pipeline position, or -1 for statuses
// outside the pipeline.
func PipelineIndex(status models.OrderStatus) int {
	for i, s := range Pipeline {
		if s == status {
			return i
		}
	}
	return -1
}

// Track looks the order up and builds its projection. A missing order
// reports found=false — a user-facing condition, not an error.
func (t *Tracker) Track(orderID string) (View, bool) {
	order, ok := t.repo.GetOrder(orderID)
	if !ok {
		return View{}, false
	}
	return Project(order), true
}

// Project builds the pipeline view for an order already in hand.
func Project(order models.Order) View {
	view := View{
		Order:        order,
		CurrentIndex: PipelineIndex(order.Status),
		Cancelled:    order.Status == models.StatusCancelled,
	}
	for i, status := range Pipeline {
		view.Steps = append(view.Steps, Step{
			Status:  status,
			Label:   stepLabels[status],
			Reached: !view.Cancelled && view.CurrentIndex >= i,
			Current: !view.Cancelled && view.CurrentIndex == i,
		})
	}
	return view
}
