package repository

import (
	"strings"

	"curries-burger-api/models"
	"curries-burger-api/store"

	"github.com/google/uuid"
)

// ── Reservations ───────────────────────────────────────────────────

type ReservationDraft struct {
	Name   string
	Email  string
	Phone  string
	Date   string
	Time   string
	Guests int
}

func (r *Repository) ListReservations() []models.Reservation {
	return store.Read[models.Reservation](r.store, store.CollectionReservations)
}

// CreateReservation appends a confirmed reservation.
func (r *Repository) CreateReservation(draft ReservationDraft) (models.Reservation, error) {
	reservations := r.ListReservations()
	res := models.Reservation{
		ID:     "RES-" + uuid.NewString(),
		Name:   draft.Name,
		Email:  draft.Email,
		Phone:  draft.Phone,
		Date:   draft.Date,
		Time:   draft.Time,
		Guests: draft.Guests,
		Status: models.ReservationConfirmed,
	}
	reservations = append(reservations, res)
	if err := store.Write(r.store, store.CollectionReservations, reservations); err != nil {
		return models.Reservation{}, err
	}
	return res, nil
}

func (r *Repository) UpdateReservationStatus(id string, status models.ReservationStatus) bool {
	reservations := r.ListReservations()
	for i := range reservations {
		if reservations[i].ID == id {
			reservations[i].Status = status
			return store.Write(r.store, store.CollectionReservations, reservations) == nil
		}
	}
	return false
}

// ── Catering ───────────────────────────────────────────────────────

type CateringDraft struct {
	Name       string
	Email      string
	Phone      string
	EventType  string
	Date       string
	GuestCount int
	Message    string
}

func (r *Repository) ListCateringRequests() []models.CateringRequest {
	return store.Read[models.CateringRequest](r.store, store.CollectionCatering)
}

// CreateCateringRequest appends a new inquiry with status New.
func (r *Repository) CreateCateringRequest(draft CateringDraft) (models.CateringRequest, error) {
	requests := r.ListCateringRequests()
	req := models.CateringRequest{
		ID:         "CAT-" + uuid.NewString(),
		Name:       draft.Name,
		Email:      draft.Email,
		Phone:      draft.Phone,
		EventType:  draft.EventType,
		Date:       draft.Date,
		GuestCount: draft.GuestCount,
		Message:    draft.Message,
		Status:     models.CateringNew,
	}
	requests = append(requests, req)
	if err := store.Write(r.store, store.CollectionCatering, requests); err != nil {
		return models.CateringRequest{}, err
	}
	return req, nil
}

func (r *Repository) UpdateCateringStatus(id string, status models.CateringStatus) bool {
	requests := r.ListCateringRequests()
	for i := range requests {
		if requests[i].ID == id {
			requests[i].Status = status
			return store.Write(r.store, store.CollectionCatering, requests) == nil
		}
	}
	return false
}

// ── Newsletter ─────────────────────────────────────────────────────

func (r *Repository) ListSubscribers() []models.NewsletterSubscriber {
	return store.Read[models.NewsletterSubscriber](r.store, store.CollectionSubscribers)
}

// Subscribe adds the email once; re-subscribing is a silent no-op. Returns
// true when a new subscriber was recorded.
func (r *Repository) Subscribe(email string) (bool, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	subscribers := r.ListSubscribers()
	for _, s := range subscribers {
		if s.Email == email {
			return false, nil
		}
	}
	subscribers = append(subscribers, models.NewsletterSubscriber{
		Email:        email,
		SubscribedAt: r.now(),
	})
	if err := store.Write(r.store, store.CollectionSubscribers, subscribers); err != nil {
		return false, err
	}
	return true, nil
}

// ── Users ──────────────────────────────────────────────────────────

func (r *Repository) ListUsers() []models.User {
	return store.Read[models.User](r.store, store.CollectionUsers)
}

func (r *Repository) GetUser(id string) (models.User, bool) {
	for _, u := range r.ListUsers() {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (r *Repository) FindUserByEmail(email string) (models.User, bool) {
	email = strings.ToLower(email)
	for _, u := range r.ListUsers() {
		if strings.ToLower(u.Email) == email {
			return u, true
		}
	}
	return models.User{}, false
}

// CreateUser appends a new account. Callers check email uniqueness first
// via FindUserByEmail; the id is assigned here.
func (r *Repository) CreateUser(user models.User) (models.User, error) {
	users := r.ListUsers()
	user.ID = "u-" + uuid.NewString()
	user.CreatedAt = r.now()
	users = append(users, user)
	if err := store.Write(r.store, store.CollectionUsers, users); err != nil {
		return models.User{}, err
	}
	return user, nil
}
