// Package repository layers typed CRUD operations for every storefront
// collection on top of the local record store. It is injected into handlers
// as a single service object; nothing reaches the store directly.
package repository

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"curries-burger-api/models"
	"curries-burger-api/store"

	"github.com/google/uuid"
)

type Repository struct {
	store *store.Store

	// Injectable for tests.
	now  func() time.Time
	intN func(n int) int
}

func New(s *store.Store) *Repository {
	return &Repository{
		store: s,
		now:   time.Now,
		intN:  rand.Intn,
	}
}

// ── Menu ───────────────────────────────────────────────────────────

// GetMenuItems returns the stored menu, falling back to the built-in
// catalog only when the collection is absent or unreadable. A stored empty
// collection is honored: an admin who deletes every item gets an empty menu,
// not a resurrected catalog.
func (r *Repository) GetMenuItems() []models.MenuItem {
	items := store.Read[models.MenuItem](r.store, store.CollectionMenu)
	if items == nil {
		return store.MenuCatalog()
	}
	return items
}

func (r *Repository) GetMenuItem(id string) (models.MenuItem, bool) {
	for _, item := range r.GetMenuItems() {
		if item.ID == id {
			return item, true
		}
	}
	return models.MenuItem{}, false
}

func (r *Repository) AddMenuItem(item models.MenuItem) (models.MenuItem, error) {
	items := r.GetMenuItems()
	item.ID = "m-" + uuid.NewString()
	items = append(items, item)
	return item, store.Write(r.store, store.CollectionMenu, items)
}

// UpdateMenuItem replaces the mutable fields of the matching item. found is
// false when the id is unknown; a storage failure is reported separately so
// callers can tell the two apart.
func (r *Repository) UpdateMenuItem(id string, updated models.MenuItem) (models.MenuItem, bool, error) {
	items := r.GetMenuItems()
	for i := range items {
		if items[i].ID == id {
			updated.ID = id
			items[i] = updated
			if err := store.Write(r.store, store.CollectionMenu, items); err != nil {
				return models.MenuItem{}, false, err
			}
			return items[i], true, nil
		}
	}
	return models.MenuItem{}, false, nil
}

func (r *Repository) DeleteMenuItem(id string) (bool, error) {
	items := r.GetMenuItems()
	kept := items[:0]
	found := false
	for _, item := range items {
		if item.ID == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return false, nil
	}
	if err := store.Write(r.store, store.CollectionMenu, kept); err != nil {
		return false, err
	}
	return true, nil
}

// ── Orders ─────────────────────────────────────────────────────────

// OrderDraft carries everything the caller supplies; the repository assigns
// id, status and date.
type OrderDraft struct {
	UserID        string
	CustomerName  string
	Items         []models.CartItem
	Total         float64
	PaymentMethod models.PaymentMethod
	Address       string
	TransactionID string
}

func (r *Repository) ListOrders() []models.Order {
	return store.Read[models.Order](r.store, store.CollectionOrders)
}

func (r *Repository) GetOrder(id string) (models.Order, bool) {
	for _, o := range r.ListOrders() {
		if o.ID == id {
			return o, true
		}
	}
	return models.Order{}, false
}

// ListOrdersForUser returns the user's orders, newest first.
func (r *Repository) ListOrdersForUser(userID string) []models.Order {
	var out []models.Order
	for _, o := range r.ListOrders() {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out
}

// CreateOrder assigns a fresh CB-###### id, stamps status Pending and the
// creation time, and prepends the order so the stored collection stays
// newest-first.
func (r *Repository) CreateOrder(draft OrderDraft) (models.Order, error) {
	orders := r.ListOrders()
	order := models.Order{
		ID:            r.nextOrderID(orders),
		UserID:        draft.UserID,
		CustomerName:  draft.CustomerName,
		Items:         draft.Items,
		Total:         draft.Total,
		Status:        models.StatusPending,
		Date:          r.now(),
		PaymentMethod: draft.PaymentMethod,
		Address:       draft.Address,
		TransactionID: draft.TransactionID,
	}
	orders = append([]models.Order{order}, orders...)
	if err := store.Write(r.store, store.CollectionOrders, orders); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// UpdateOrderStatus mutates the matching order in place. Unknown ids are a
// no-op, reported through the return value so callers can surface them.
func (r *Repository) UpdateOrderStatus(id string, status models.OrderStatus) bool {
	orders := r.ListOrders()
	for i := range orders {
		if orders[i].ID == id {
			orders[i].Status = status
			return store.Write(r.store, store.CollectionOrders, orders) == nil
		}
	}
	return false
}

// ── Transactions ───────────────────────────────────────────────────

type TransactionDraft struct {
	UserID string
	Amount float64
	Method models.PaymentMethod
	Meta   models.TransactionMeta
}

func (r *Repository) ListTransactions() []models.Transaction {
	return store.Read[models.Transaction](r.store, store.CollectionTransactions)
}

func (r *Repository) GetTransaction(id string) (models.Transaction, bool) {
	for _, tx := range r.ListTransactions() {
		if tx.ID == id {
			return tx, true
		}
	}
	return models.Transaction{}, false
}

func (r *Repository) ListTransactionsForUser(userID string) []models.Transaction {
	var out []models.Transaction
	for _, tx := range r.ListTransactions() {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out
}

// CreateTransaction records a charge from the simulated gateway. The
// gateway is an always-succeeds stub, so status is fixed to success; the
// orderId stays empty until LinkTransactionToOrder runs.
func (r *Repository) CreateTransaction(draft TransactionDraft) (models.Transaction, error) {
	txs := r.ListTransactions()
	tx := models.Transaction{
		ID:     r.nextTransactionID(txs),
		UserID: draft.UserID,
		Amount: draft.Amount,
		Method: draft.Method,
		Status: models.TxSuccess,
		Date:   r.now(),
		Meta:   draft.Meta,
	}
	txs = append([]models.Transaction{tx}, txs...)
	if err := store.Write(r.store, store.CollectionTransactions, txs); err != nil {
		return models.Transaction{}, err
	}
	return tx, nil
}

// LinkTransactionToOrder sets the transaction's orderId once the order
// exists. Unknown transaction ids are a no-op.
func (r *Repository) LinkTransactionToOrder(transactionID, orderID string) bool {
	txs := r.ListTransactions()
	for i := range txs {
		if txs[i].ID == transactionID {
			txs[i].OrderID = orderID
			return store.Write(r.store, store.CollectionTransactions, txs) == nil
		}
	}
	return false
}

// ── Id generation ──────────────────────────────────────────────────
//
// The public formats (CB- + 6 digits, TXN- + 8 digits) are a wire contract.
// Suffixes are drawn at random, checked against the stored collection and
// redrawn on collision, so uniqueness holds for the lifetime of the store.

func (r *Repository) nextOrderID(existing []models.Order) string {
	taken := make(map[string]bool, len(existing))
	for _, o := range existing {
		taken[o.ID] = true
	}
	for {
		id := fmt.Sprintf("CB-%06d", 100000+r.intN(900000))
		if !taken[id] {
			return id
		}
	}
}

func (r *Repository) nextTransactionID(existing []models.Transaction) string {
	taken := make(map[string]bool, len(existing))
	for _, tx := range existing {
		taken[tx.ID] = true
	}
	for {
		id := fmt.Sprintf("TXN-%08d", 10000000+r.intN(90000000))
		if !taken[id] {
			return id
		}
	}
}
