package entity

import (
	"fmt"
	"time"
)

// DefaultReviewerName nombre mostrado cuando el autor de la reseña no indica uno.
const DefaultReviewerName = "Anonimous"

// Límites de la calificación de una reseña.
const (
	MinRate = 1
	MaxRate = 5
)

// CompanyReview representa una reseña sobre una cuenta company.
// No hay restricción de unicidad: un mismo email puede reseñar varias veces.
// Las reseñas nunca se actualizan ni se borran.
type CompanyReview struct {
	ID               string
	CompanyID        string
	Rate             int // 1..5
	Email            string
	Username         string
	ShortDescription string
	CreatedAt        time.Time
}

// FormattedRate devuelve la calificación como "4/5".
func (r *CompanyReview) FormattedRate() string {
	return fmt.Sprintf("%d/5", r.Rate)
}
