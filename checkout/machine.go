package checkout

import (
	"time"

	"curries-burger-api/models"
)

// Step is where the checkout flow currently stands. There is no failed
// terminal step: validation failures hold the machine in place with field
// errors, and the simulated gateway never fails once processing starts.
type Step string

const (
	StepDetails    Step = "details"
	StepPayment    Step = "payment"
	StepProcessing Step = "processing"
	StepSucceeded  Step = "success"
)

// OrderPayload is emitted exactly once when the machine succeeds. It is the
// order-placement contract: the caller owns clearing the cart and creating
// the transaction/order records.
type OrderPayload struct {
	Name         string
	Phone        string
	Address      string
	Instructions string
	Method       models.PaymentMethod
	Payment      *PaymentInput // nil for cash on delivery
	Items        []models.CartItem
	Total        float64 // item subtotal, excludes tax and delivery
}

// Machine walks one checkout through
// details → payment → processing → success. It snapshots the cart at
// construction, the way the modal receives a frozen cart and subtotal.
type Machine struct {
	step    Step
	items   []models.CartItem
	details DeliveryDetails
	payment PaymentInput
	errs    map[string]string
	emitted bool

	now func() time.Time
}

func NewMachine(items []models.CartItem) *Machine {
	return &Machine{
		step:  StepDetails,
		items: items,
		now:   time.Now,
	}
}

func (m *Machine) Step() Step { return m.step }

// Errors returns the field errors from the last rejected submission.
func (m *Machine) Errors() map[string]string { return m.errs }

// Subtotal is the sum of line totals for the snapshotted cart.
func (m *Machine) Subtotal() float64 {
	var sum float64
	for _, item := range m.items {
		sum += item.LineTotal()
	}
	return sum
}

// SubmitDetails advances details → payment when name, phone and address are
// all present. Rejection stays on the details step.
func (m *Machine) SubmitDetails(d DeliveryDetails) bool {
	if m.step != StepDetails {
		return false
	}
	if errs := ValidateDetails(d); len(errs) > 0 {
		m.errs = errs
		return false
	}
	m.details = d
	m.errs = nil
	m.step = StepPayment
	return true
}

// SubmitPayment advances payment → processing when the method's fields
// validate. Rejection stays on the payment step with field errors.
func (m *Machine) SubmitPayment(p PaymentInput) bool {
	if m.step != StepPayment {
		return false
	}
	if errs := ValidatePayment(p, m.now()); len(errs) > 0 {
		m.errs = errs
		return false
	}
	m.payment = p
	m.errs = nil
	m.step = StepProcessing
	return true
}

// Succeed moves processing → success and returns the order payload. The
// payload is emitted exactly once; later calls return false.
func (m *Machine) Succeed() (OrderPayload, bool) {
	if m.step != StepProcessing || m.emitted {
		return OrderPayload{}, false
	}
	m.step = StepSucceeded
	m.emitted = true

	payload := OrderPayload{
		Name:         m.details.Name,
		Phone:        m.details.Phone,
		Address:      m.details.Address,
		Instructions: m.details.Instructions,
		Method:       m.payment.Method,
		Items:        m.items,
		Total:        m.Subtotal(),
	}
	if m.payment.Method != models.MethodCOD {
		p := m.payment
		payload.Payment = &p
	}
	return payload, true
}
