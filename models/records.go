package models

import "time"

type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "Confirmed"
	ReservationPending   ReservationStatus = "Pending"
	ReservationCancelled ReservationStatus = "Cancelled"
)

type Reservation struct {
	ID     string            `json:"id"`
	Name   string            `json:"name"`
	Email  string            `json:"email"`
	Phone  string            `json:"phone"`
	Date   string            `json:"date"`
	Time   string            `json:"time"`
	Guests int               `json:"guests"`
	Status ReservationStatus `json:"status"`
}

type CateringStatus string

const (
	CateringNew       CateringStatus = "New"
	CateringContacted CateringStatus = "Contacted"
	CateringClosed    CateringStatus = "Closed"
)

type CateringRequest struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone"`
	EventType  string         `json:"eventType"`
	Date       string         `json:"date"`
	GuestCount int            `json:"guestCount"`
	Message    string         `json:"message"`
	Status     CateringStatus `json:"status"`
}

type NewsletterSubscriber struct {
	Email        string    `json:"email"`
	SubscribedAt time.Time `json:"subscribedAt"`
}
