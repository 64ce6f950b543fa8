package checkout

import (
	"context"
	"errors"
	"log"
	"math"

	"curries-burger-api/models"
	"curries-burger-api/repository"
)

var (
	// ErrNotProcessing means Place was called before the machine reached
	// the processing step (details or payment never validated).
	ErrNotProcessing = errors.New("checkout: machine is not in the processing step")
)

// Totals breaks down what the customer is charged. Tax and the delivery fee
// apply on top of the item subtotal; the gateway charges the grand total.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	Tax         float64 `json:"tax"`
	DeliveryFee float64 `json:"deliveryFee"`
	GrandTotal  float64 `json:"grandTotal"`
}

// Result is what one completed checkout produced.
type Result struct {
	Order       models.Order        `json:"order"`
	Transaction *models.Transaction `json:"transaction,omitempty"`
	Totals      Totals              `json:"totals"`
	Stages      []string            `json:"stages"`
}

// Service drives a validated checkout through the simulated gateway and the
// repository. Creation order is load-bearing: transaction first (for
// non-cash methods), then the order referencing it, then the link step that
// stamps the order id back onto the transaction.
type Service struct {
	repo        *repository.Repository
	sim         Simulator
	taxRate     float64
	deliveryFee float64
}

func NewService(repo *repository.Repository, sim Simulator, taxRate, deliveryFee float64) *Service {
	return &Service{repo: repo, sim: sim, taxRate: taxRate, deliveryFee: deliveryFee}
}

// ComputeTotals prices a subtotal: tax on top, flat delivery fee, rounded
// to cents.
func (s *Service) ComputeTotals(subtotal float64) Totals {
	round := func(v float64) float64 { return math.Round(v*100) / 100 }
	tax := round(subtotal * s.taxRate)
	return Totals{
		Subtotal:    round(subtotal),
		Tax:         tax,
		DeliveryFee: s.deliveryFee,
		GrandTotal:  round(subtotal + tax + s.deliveryFee),
	}
}

// Place runs the machine's processing step: the gateway simulation to
// completion, then the success transition, then the records. The machine
// must already be processing, so both validations have passed.
//
// Cancelling ctx mid-simulation abandons the checkout with ctx.Err() and no
// records written. The HTTP layer deliberately passes a non-cancelling
// context so a torn-down client still gets its order, matching the
// storefront behavior.
func (s *Service) Place(ctx context.Context, userID string, m *Machine) (Result, error) {
	if m.Step() != StepProcessing {
		return Result{}, ErrNotProcessing
	}

	var stages []string
	for ev := range s.sim.Run(ctx, m.payment.Method) {
		if !ev.Done {
			stages = append(stages, ev.Message)
		}
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	payload, ok := m.Succeed()
	if !ok {
		return Result{}, ErrNotProcessing
	}

	totals := s.ComputeTotals(payload.Total)
	result := Result{Totals: totals, Stages: stages}

	// 1. Transaction for non-cash methods. The gateway charges the grand
	// total, not the bare subtotal.
	var transactionID string
	if payload.Method != models.MethodCOD {
		var meta models.TransactionMeta
		if payload.Payment != nil {
			meta = payload.Payment.Meta()
		}
		tx, err := s.repo.CreateTransaction(repository.TransactionDraft{
			UserID: userID,
			Amount: totals.GrandTotal,
			Method: payload.Method,
			Meta:   meta,
		})
		if err != nil {
			return Result{}, err
		}
		transactionID = tx.ID
		result.Transaction = &tx
	}

	// 2. Order referencing the transaction.
	order, err := s.repo.CreateOrder(repository.OrderDraft{
		UserID:        userID,
		CustomerName:  payload.Name,
		Items:         payload.Items,
		Total:         totals.Subtotal,
		PaymentMethod: payload.Method,
		Address:       payload.Address,
		TransactionID: transactionID,
	})
	if err != nil {
		return Result{}, err
	}
	result.Order = order

	// 3. Link the transaction back to its order.
	if transactionID != "" {
		s.repo.LinkTransactionToOrder(transactionID, order.ID)
		if result.Transaction != nil {
			result.Transaction.OrderID = order.ID
		}
	}

	log.Printf("🧾 Order %s placed (%s, $%.2f)", order.ID, payload.Method, totals.GrandTotal)
	return result, nil
}
