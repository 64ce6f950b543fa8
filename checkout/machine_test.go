package checkout

import (
	"testing"
	"time"

	"curries-burger-api/models"
)

func testItems() []models.CartItem {
	return []models.CartItem{
		{MenuItem: models.MenuItem{ID: "m-1", Name: "Butter Chicken", Price: 15.99}, Quantity: 1},
		{MenuItem: models.MenuItem{ID: "m-2", Name: "Garlic Butter Naan", Price: 3.99}, Quantity: 2},
	}
}

func validDetails() DeliveryDetails {
	return DeliveryDetails{Name: "Bob", Phone: "555-0101", Address: "12 High St", Instructions: "ring twice"}
}

func newTestMachine(items []models.CartItem) *Machine {
	m := NewMachine(items)
	m.now = func() time.Time { return fixedNow }
	return m
}

func TestMachineHappyPathCard(t *testing.T) {
	m := newTestMachine(testItems())
	if m.Step() != StepDetails {
		t.Fatalf("new machine step = %s", m.Step())
	}

	if !m.SubmitDetails(validDetails()) {
		t.Fatalf("SubmitDetails rejected valid details: %v", m.Errors())
	}
	if m.Step() != StepPayment {
		t.Fatalf("step after details = %s", m.Step())
	}

	if !m.SubmitPayment(cardInput("4242424242424242", "Bob", "07/25", "123")) {
		t.Fatalf("SubmitPayment rejected valid card: %v", m.Errors())
	}
	if m.Step() != StepProcessing {
		t.Fatalf("step after payment = %s", m.Step())
	}

	payload, ok := m.Succeed()
	if !ok {
		t.Fatal("Succeed returned false on first call")
	}
	if m.Step() != StepSucceeded {
		t.Fatalf("step after success = %s", m.Step())
	}
	if payload.Name != "Bob" || payload.Instructions != "ring twice" {
		t.Fatalf("payload details = %+v", payload)
	}
	if payload.Method != models.MethodCard || payload.Payment == nil {
		t.Fatalf("payload payment = %+v", payload)
	}
	want := 15.99 + 2*3.99
	if payload.Total != want {
		t.Fatalf("payload total = %v, want %v", payload.Total, want)
	}
	if len(payload.Items) != 2 {
		t.Fatalf("payload items = %d", len(payload.Items))
	}

	// Exactly once.
	if _, ok := m.Succeed(); ok {
		t.Fatal("Succeed emitted a second payload")
	}
}

func TestMachineDetailsGuard(t *testing.T) {
	m := newTestMachine(testItems())
	if m.SubmitDetails(DeliveryDetails{Name: "Bob"}) {
		t.Fatal("SubmitDetails accepted missing phone and address")
	}
	if m.Step() != StepDetails {
		t.Fatalf("rejection moved the machine to %s", m.Step())
	}
	if len(m.Errors()) == 0 {
		t.Fatal("no field errors recorded")
	}
	// Payment before details is a no-op.
	if m.SubmitPayment(PaymentInput{Method: models.MethodCOD}) {
		t.Fatal("SubmitPayment accepted while collecting details")
	}
}

func TestMachinePaymentRejectionHoldsStep(t *testing.T) {
	m := newTestMachine(testItems())
	m.SubmitDetails(validDetails())

	if m.SubmitPayment(cardInput("4242424242424241", "Bob", "07/25", "123")) {
		t.Fatal("SubmitPayment accepted a Luhn-failing card")
	}
	if m.Step() != StepPayment {
		t.Fatalf("rejection moved the machine to %s", m.Step())
	}
	if _, ok := m.Errors()["cardNumber"]; !ok {
		t.Fatalf("errors = %v", m.Errors())
	}

	// Retry with a corrected card succeeds and clears the errors.
	if !m.SubmitPayment(cardInput("4242424242424242", "Bob", "07/25", "123")) {
		t.Fatalf("retry rejected: %v", m.Errors())
	}
	if len(m.Errors()) != 0 {
		t.Fatalf("errors not cleared: %v", m.Errors())
	}
}

func TestMachineCODPayloadHasNoPaymentDetails(t *testing.T) {
	m := newTestMachine(testItems())
	m.SubmitDetails(validDetails())
	if !m.SubmitPayment(PaymentInput{Method: models.MethodCOD}) {
		t.Fatalf("cod rejected: %v", m.Errors())
	}
	payload, ok := m.Succeed()
	if !ok {
		t.Fatal("Succeed returned false")
	}
	if payload.Payment != nil {
		t.Fatalf("cod payload carries payment details: %+v", payload.Payment)
	}
}

func TestMachineSucceedBeforeProcessing(t *testing.T) {
	m := newTestMachine(testItems())
	if _, ok := m.Succeed(); ok {
		t.Fatal("Succeed fired while collecting details")
	}
}
