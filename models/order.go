package models

import "time"

// OrderStatus values are part of the wire contract — exact, case-sensitive.
type OrderStatus string

const (
	StatusPending        OrderStatus = "Pending"
	StatusPreparing      OrderStatus = "Preparing"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCancelled      OrderStatus = "Cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusOutForDelivery, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	MethodCard PaymentMethod = "card"
	MethodUPI  PaymentMethod = "upi"
	MethodCOD  PaymentMethod = "cod"
)

func (m PaymentMethod) Valid() bool {
	return m == MethodCard || m == MethodUPI || m == MethodCOD
}

type Order struct {
	ID            string        `json:"id"` // CB- + 6 digits
	UserID        string        `json:"userId"` // "guest" or a user id
	CustomerName  string        `json:"customerName"`
	Items         []CartItem    `json:"items"`
	Total         float64       `json:"total"` // item subtotal, excludes tax and delivery
	Status        OrderStatus   `json:"status"`
	Date          time.Time     `json:"date"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Address       string        `json:"address"`
	TransactionID string        `json:"transactionId,omitempty"`
}

type TransactionStatus string

const (
	TxSuccess  TransactionStatus = "success"
	TxFailed   TransactionStatus = "failed"
	TxRefunded TransactionStatus = "refunded"
)

// TransactionMeta carries only the method-specific fields that are safe to
// persist: the card's last four digits, or the UPI handle. COD transactions
// do not exist at all.
type TransactionMeta struct {
	Last4     string `json:"last4,omitempty"`
	CardBrand string `json:"cardBrand,omitempty"`
	UpiID     string `json:"upiId,omitempty"`
}

type Transaction struct {
	ID      string            `json:"id"` // TXN- + 8 digits
	OrderID string            `json:"orderId,omitempty"` // set by the link step after the order exists
	UserID  string            `json:"userId"`
	Amount  float64           `json:"amount"` // grand total charged: subtotal + tax + delivery
	Method  PaymentMethod     `json:"method"`
	Status  TransactionStatus `json:"status"`
	Date    time.Time         `json:"date"`
	Meta    TransactionMeta   `json:"metadata"`
}
