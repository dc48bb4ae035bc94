package services

import "errors"

// Erreurs métier : toutes récupérables, traduites en réponses HTTP par la
// couche handlers.
var (
	ErrNotFound          = errors.New("ressource introuvable")
	ErrInsufficientStock = errors.New("stock insuffisant")
	ErrEmptyCart         = errors.New("panier vide")
	ErrInvalidQuantity   = errors.New("quantité invalide")
	ErrInvalidRating     = errors.New("note invalide")
)
