package repository

import (
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"curries-burger-api/models"
	"curries-burger-api/store"
)

func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return New(st)
}

func sampleDraft(userID string) OrderDraft {
	return OrderDraft{
		UserID:       userID,
		CustomerName: "Bob",
		Items: []models.CartItem{
			{MenuItem: models.MenuItem{ID: "m-1", Name: "Butter Chicken", Price: 15.99}, Quantity: 2, Customization: "extra gravy"},
		},
		Total:         31.98,
		PaymentMethod: models.MethodCOD,
		Address:       "12 High St",
	}
}

var (
	orderIDPattern = regexp.MustCompile(`^CB-\d{6}$`)
	txIDPattern    = regexp.MustCompile(`^TXN-\d{8}$`)
)

func TestCreateOrderRoundTrip(t *testing.T) {
	repo := newTestRepo(t)

	created, err := repo.CreateOrder(sampleDraft("u-1"))
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if !orderIDPattern.MatchString(created.ID) {
		t.Fatalf("order id %q does not match CB-######", created.ID)
	}
	if created.Status != models.StatusPending {
		t.Fatalf("status = %s, want Pending", created.Status)
	}
	if created.Date.IsZero() {
		t.Fatal("date not stamped")
	}

	got, ok := repo.GetOrder(created.ID)
	if !ok {
		t.Fatalf("GetOrder(%q) not found", created.ID)
	}

	// Everything the caller supplied survives the round trip.
	if got.UserID != "u-1" || got.CustomerName != "Bob" || got.Address != "12 High St" {
		t.Fatalf("round trip lost fields: %+v", got)
	}
	if got.Total != 31.98 || got.PaymentMethod != models.MethodCOD {
		t.Fatalf("round trip lost fields: %+v", got)
	}
	if len(got.Items) != 1 || got.Items[0].Name != "Butter Chicken" ||
		got.Items[0].Quantity != 2 || got.Items[0].Customization != "extra gravy" {
		t.Fatalf("round trip lost items: %+v", got.Items)
	}
}

func TestOrdersStoredNewestFirst(t *testing.T) {
	repo := newTestRepo(t)
	base := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	times := []time.Time{base, base.Add(time.Hour), base.Add(2 * time.Hour)}
	i := 0
	repo.now = func() time.Time { t := times[i]; i++; return t }

	var ids []string
	for range times {
		o, err := repo.CreateOrder(sampleDraft("u-1"))
		if err != nil {
			t.Fatalf("CreateOrder: %v", err)
		}
		ids = append(ids, o.ID)
	}

	orders := repo.ListOrders()
	if len(orders) != 3 {
		t.Fatalf("len = %d", len(orders))
	}
	// Prepend ordering: most recent creation sits first.
	if orders[0].ID != ids[2] || orders[2].ID != ids[0] {
		t.Fatalf("stored order not newest-first: %v", []string{orders[0].ID, orders[1].ID, orders[2].ID})
	}
}

func TestListOrdersForUser(t *testing.T) {
	repo := newTestRepo(t)
	base := time.Date(2025, time.June, 1, 10, 0, 0, 0, time.UTC)
	stamps := []time.Time{base.Add(2 * time.Hour), base, base.Add(time.Hour), base.Add(3 * time.Hour)}
	i := 0
	repo.now = func() time.Time { t := stamps[i]; i++; return t }

	users := []string{"u-1", "u-1", "u-2", "u-1"}
	for _, u := range users {
		if _, err := repo.CreateOrder(sampleDraft(u)); err != nil {
			t.Fatalf("CreateOrder: %v", err)
		}
	}

	mine := repo.ListOrdersForUser("u-1")
	if len(mine) != 3 {
		t.Fatalf("len = %d, want 3", len(mine))
	}
	for _, o := range mine {
		if o.UserID != "u-1" {
			t.Fatalf("foreign order in listing: %+v", o)
		}
	}
	for i := 1; i < len(mine); i++ {
		if mine[i].Date.After(mine[i-1].Date) {
			t.Fatalf("not sorted newest-first: %v then %v", mine[i-1].Date, mine[i].Date)
		}
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	repo := newTestRepo(t)
	o, _ := repo.CreateOrder(sampleDraft("u-1"))

	if !repo.UpdateOrderStatus(o.ID, models.StatusPreparing) {
		t.Fatal("update reported not found")
	}
	got, _ := repo.GetOrder(o.ID)
	if got.Status != models.StatusPreparing {
		t.Fatalf("status = %s", got.Status)
	}

	// Unknown id is a lenient no-op, reported via the return value.
	if repo.UpdateOrderStatus("CB-000000", models.StatusDelivered) {
		t.Fatal("update of unknown id reported success")
	}
}

func TestCreateTransactionAndLink(t *testing.T) {
	repo := newTestRepo(t)

	tx, err := repo.CreateTransaction(TransactionDraft{
		UserID: "u-1",
		Amount: 49.00,
		Method: models.MethodCard,
		Meta:   models.TransactionMeta{Last4: "4242"},
	})
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}
	if !txIDPattern.MatchString(tx.ID) {
		t.Fatalf("transaction id %q does not match TXN-########", tx.ID)
	}
	if tx.Status != models.TxSuccess {
		t.Fatalf("status = %s, want success", tx.Status)
	}
	if tx.OrderID != "" {
		t.Fatalf("fresh transaction already linked: %q", tx.OrderID)
	}

	o, _ := repo.CreateOrder(sampleDraft("u-1"))
	if !repo.LinkTransactionToOrder(tx.ID, o.ID) {
		t.Fatal("link reported not found")
	}
	got, _ := repo.GetTransaction(tx.ID)
	if got.OrderID != o.ID {
		t.Fatalf("orderId = %q, want %q", got.OrderID, o.ID)
	}

	if repo.LinkTransactionToOrder("TXN-00000000", o.ID) {
		t.Fatal("link of unknown transaction reported success")
	}
}

func TestOrderIDCollisionRedraw(t *testing.T) {
	repo := newTestRepo(t)

	// Force the generator to repeat its first draw, then move on.
	draws := []int{11111, 11111, 22222}
	i := 0
	repo.intN = func(n int) int { d := draws[i%len(draws)]; i++; return d }

	first, _ := repo.CreateOrder(sampleDraft("u-1"))
	second, _ := repo.CreateOrder(sampleDraft("u-1"))
	if first.ID == second.ID {
		t.Fatalf("duplicate order id %q", first.ID)
	}
}

func TestMenuFallsBackToCatalog(t *testing.T) {
	repo := newTestRepo(t)

	// Nothing seeded: the built-in catalog stands in.
	items := repo.GetMenuItems()
	if len(items) == 0 {
		t.Fatal("empty menu with no stored collection")
	}

	byCategory := map[string]int{}
	for _, item := range items {
		byCategory[item.Category]++
	}
	for _, cat := range models.Categories {
		if byCategory[cat] == 0 {
			t.Errorf("catalog has no item in category %q", cat)
		}
	}
}

func TestMenuCRUD(t *testing.T) {
	repo := newTestRepo(t)

	added, err := repo.AddMenuItem(models.MenuItem{Name: "Test Special", Price: 9.99, Category: "Burgers"})
	if err != nil {
		t.Fatalf("AddMenuItem: %v", err)
	}
	if added.ID == "" {
		t.Fatal("no id assigned")
	}

	updated, ok, err := repo.UpdateMenuItem(added.ID, models.MenuItem{Name: "Renamed", Price: 10.99, Category: "Burgers"})
	if err != nil {
		t.Fatalf("UpdateMenuItem: %v", err)
	}
	if !ok || updated.Name != "Renamed" || updated.ID != added.ID {
		t.Fatalf("update = %+v ok=%v", updated, ok)
	}

	// Unknown ids report not-found without an error; the two are distinct.
	if _, ok, err := repo.UpdateMenuItem("m-404", models.MenuItem{Name: "X", Price: 1, Category: "Burgers"}); ok || err != nil {
		t.Fatalf("unknown update: ok=%v err=%v", ok, err)
	}

	deleted, err := repo.DeleteMenuItem(added.ID)
	if err != nil {
		t.Fatalf("DeleteMenuItem: %v", err)
	}
	if !deleted {
		t.Fatal("delete reported not found")
	}
	if _, found := repo.GetMenuItem(added.ID); found {
		t.Fatal("item still present after delete")
	}
	if deleted, err := repo.DeleteMenuItem(added.ID); deleted || err != nil {
		t.Fatalf("second delete: deleted=%v err=%v", deleted, err)
	}
}

func TestDeletedMenuStaysEmpty(t *testing.T) {
	repo := newTestRepo(t)

	// Deleting every item leaves a stored empty collection; the catalog
	// fallback is reserved for an absent or corrupt one and must not
	// resurrect here.
	for _, item := range repo.GetMenuItems() {
		if deleted, err := repo.DeleteMenuItem(item.ID); !deleted || err != nil {
			t.Fatalf("delete %s: deleted=%v err=%v", item.ID, deleted, err)
		}
	}
	if items := repo.GetMenuItems(); len(items) != 0 {
		t.Fatalf("emptied menu came back with %d items", len(items))
	}
	if _, found := repo.GetMenuItem("m-001"); found {
		t.Fatal("deleted item still resolvable")
	}
}

func TestSubscribeDeduplicates(t *testing.T) {
	repo := newTestRepo(t)

	added, err := repo.Subscribe("Alice@Example.com")
	if err != nil || !added {
		t.Fatalf("first subscribe: added=%v err=%v", added, err)
	}
	added, err = repo.Subscribe("alice@example.com")
	if err != nil || added {
		t.Fatalf("duplicate subscribe: added=%v err=%v", added, err)
	}
	if n := len(repo.ListSubscribers()); n != 1 {
		t.Fatalf("subscribers = %d, want 1", n)
	}
}

func TestReservationAndCateringLifecycle(t *testing.T) {
	repo := newTestRepo(t)

	res, err := repo.CreateReservation(ReservationDraft{Name: "Bob", Email: "bob@x.com", Phone: "555", Date: "2025-07-01", Time: "19:00", Guests: 4})
	if err != nil {
		t.Fatalf("CreateReservation: %v", err)
	}
	if res.Status != models.ReservationConfirmed {
		t.Fatalf("reservation status = %s", res.Status)
	}

	req, err := repo.CreateCateringRequest(CateringDraft{Name: "Bob", Email: "bob@x.com", Phone: "555", EventType: "Wedding", Date: "2025-08-01", GuestCount: 120})
	if err != nil {
		t.Fatalf("CreateCateringRequest: %v", err)
	}
	if req.Status != models.CateringNew {
		t.Fatalf("catering status = %s", req.Status)
	}
	if !repo.UpdateCateringStatus(req.ID, models.CateringContacted) {
		t.Fatal("catering update reported not found")
	}
	if repo.UpdateCateringStatus("CAT-missing", models.CateringClosed) {
		t.Fatal("unknown catering id reported success")
	}
}

func TestUserLifecycle(t *testing.T) {
	repo := newTestRepo(t)

	created, err := repo.CreateUser(models.User{Name: "Alice", Email: "alice@x.com", Role: models.RoleCustomer, PasswordHash: "h"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("user not stamped: %+v", created)
	}

	if _, ok := repo.FindUserByEmail("ALICE@x.com"); !ok {
		t.Fatal("email lookup is case-sensitive")
	}
	if _, ok := repo.GetUser(created.ID); !ok {
		t.Fatal("GetUser missed")
	}
}
