package dto

import "time"

// SubmitReviewRequest entrada para reseñar una empresa. No requiere cuenta;
// basta con un email. Username vacío se sustituye por el nombre por defecto.
type SubmitReviewRequest struct {
	Rate             int    `json:"rate" validate:"required,min=1,max=5"`
	Email            string `json:"email" validate:"required,email"`
	Username         string `json:"username" validate:"omitempty,max=30"`
	ShortDescription string `json:"short_description" validate:"required,max=200"`
}

// ReviewResponse salida de una reseña.
type ReviewResponse struct {
	ID               string    `json:"id"`
	CompanyID        string    `json:"company_id"`
	Rate             int       `json:"rate"`
	FormattedRate    string    `json:"formatted_rate"`
	Email            string    `json:"email"`
	Username         string    `json:"username"`
	ShortDescription string    `json:"short_description"`
	CreatedAt        time.Time `json:"created_at"`
}
