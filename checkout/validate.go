package checkout

import (
	"regexp"
	"strings"
	"time"

	"curries-burger-api/models"
)

// CardDetails, UPIDetails and PaymentInput form a tagged variant keyed by
// payment method: each method carries only its own fields, cash carries
// nothing.
type CardDetails struct {
	Number string `json:"cardNumber"`
	Name   string `json:"cardName"`
	Expiry string `json:"cardExpiry"` // MM/YY
	CVV    string `json:"cardCvv"`
}

type UPIDetails struct {
	UpiID string `json:"upiId"`
}

type PaymentInput struct {
	Method models.PaymentMethod `json:"method"`
	Card   *CardDetails         `json:"card,omitempty"`
	UPI    *UPIDetails          `json:"upi,omitempty"`
}

// DeliveryDetails is what the details step collects. Only non-emptiness is
// enforced; there is no format validation on phone or address.
type DeliveryDetails struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Instructions string `json:"instructions"`
}

var (
	upiPattern    = regexp.MustCompile(`^[\w.-]+@[\w.-]+$`)
	expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)
	digitsOnly    = regexp.MustCompile(`^\d+$`)
)

// LuhnValid reports whether a digits-only string passes the Luhn checksum:
// right to left, every second digit doubled, doubled values above 9 reduced
// by 9, total must be divisible by 10.
func LuhnValid(digits string) bool {
	if digits == "" || !digitsOnly.MatchString(digits) {
		return false
	}
	checksum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		checksum += d
		double = !double
	}
	return checksum%10 == 0
}

// NormalizeCardNumber strips spaces so "4242 4242 4242 4242" and the raw
// digit run validate identically.
func NormalizeCardNumber(number string) string {
	return strings.ReplaceAll(number, " ", "")
}

// ValidateDetails guards the details → payment transition.
func ValidateDetails(d DeliveryDetails) map[string]string {
	errs := map[string]string{}
	if strings.TrimSpace(d.Name) == "" {
		errs["name"] = "Name is required"
	}
	if strings.TrimSpace(d.Phone) == "" {
		errs["phone"] = "Phone is required"
	}
	if strings.TrimSpace(d.Address) == "" {
		errs["address"] = "Address is required"
	}
	return errs
}

// ValidatePayment guards the payment → processing transition. Failures come
// back as a field → message map and never as an error; an empty map means
// the input is accepted. now anchors the expiry comparison.
func ValidatePayment(p PaymentInput, now time.Time) map[string]string {
	errs := map[string]string{}

	switch p.Method {
	case models.MethodCard:
		card := p.Card
		if card == nil {
			card = &CardDetails{}
		}
		num := NormalizeCardNumber(card.Number)
		if len(num) < 13 || len(num) > 19 || !digitsOnly.MatchString(num) {
			errs["cardNumber"] = "Invalid card length"
		} else if !LuhnValid(num) {
			errs["cardNumber"] = "Invalid card number"
		}

		if strings.TrimSpace(card.Name) == "" {
			errs["cardName"] = "Name on card is required"
		}

		if !expiryPattern.MatchString(card.Expiry) {
			errs["cardExpiry"] = "Invalid Date (MM/YY)"
		} else {
			month := int(card.Expiry[0]-'0')*10 + int(card.Expiry[1]-'0')
			year := int(card.Expiry[3]-'0')*10 + int(card.Expiry[4]-'0')
			currentYear := now.Year() % 100
			currentMonth := int(now.Month())
			if month < 1 || month > 12 {
				errs["cardExpiry"] = "Invalid Month"
			} else if year < currentYear || (year == currentYear && month < currentMonth) {
				errs["cardExpiry"] = "Card Expired"
			}
		}

		if len(card.CVV) < 3 || !digitsOnly.MatchString(card.CVV) {
			errs["cardCvv"] = "Invalid CVV"
		}

	case models.MethodUPI:
		upi := p.UPI
		if upi == nil || !upiPattern.MatchString(strings.TrimSpace(upi.UpiID)) {
			errs["upiId"] = "Invalid UPI ID (e.g. user@bank)"
		}

	case models.MethodCOD:
		// Cash on delivery needs no payment fields.

	default:
		errs["method"] = "Unknown payment method"
	}

	return errs
}

// Meta reduces the validated input to what is safe to persist on the
// transaction: last four card digits, or the UPI handle.
func (p PaymentInput) Meta() models.TransactionMeta {
	switch p.Method {
	case models.MethodCard:
		if p.Card == nil {
			return models.TransactionMeta{}
		}
		num := NormalizeCardNumber(p.Card.Number)
		if len(num) < 4 {
			return models.TransactionMeta{}
		}
		return models.TransactionMeta{Last4: num[len(num)-4:]}
	case models.MethodUPI:
		if p.UPI == nil {
			return models.TransactionMeta{}
		}
		return models.TransactionMeta{UpiID: strings.TrimSpace(p.UPI.UpiID)}
	}
	return models.TransactionMeta{}
}
