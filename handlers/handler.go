// Package handlers is the gin HTTP surface. All handlers hang off a single
// Handler carrying the injected services; nothing reaches storage through a
// global.
package handlers

import (
	"curries-burger-api/cart"
	"curries-burger-api/checkout"
	"curries-burger-api/repository"
	"curries-burger-api/tracker"
)

type Handler struct {
	Repo      *repository.Repository
	Carts     *cart.Store
	Checkout  *checkout.Service
	Tracker   *tracker.Tracker
	JWTSecret []byte
}

func New(repo *repository.Repository, carts *cart.Store, co *checkout.Service, tr *tracker.Tracker, jwtSecret []byte) *Handler {
	return &Handler{
		Repo:      repo,
		Carts:     carts,
		Checkout:  co,
		Tracker:   tr,
		JWTSecret: jwtSecret,
	}
}
