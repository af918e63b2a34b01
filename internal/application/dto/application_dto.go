package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApplyRequest entrada para postular a una oferta. No requiere autenticación.
type ApplyRequest struct {
	FirstName   string          `json:"first_name" validate:"required,max=50"`
	LastName    string          `json:"last_name" validate:"required,max=50"`
	Email       string          `json:"email" validate:"required,email"`
	PhoneNumber string          `json:"phone_number"`
	Message     string          `json:"message" validate:"required"`
	ExpectedPay decimal.Decimal `json:"expected_pay"`
	Portfolio   string          `json:"portfolio" validate:"omitempty,url"`
	Linkedin    string          `json:"linkedin" validate:"omitempty,url"`
	CVRef       string          `json:"cv_ref"`
}

// ApplicationResponse salida de una postulación.
type ApplicationResponse struct {
	ID          string          `json:"id"`
	OfferID     string          `json:"offer_id"`
	FirstName   string          `json:"first_name"`
	LastName    string          `json:"last_name"`
	FullName    string          `json:"full_name"`
	Email       string          `json:"email"`
	PhoneNumber string          `json:"phone_number,omitempty"`
	Message     string          `json:"message"`
	ExpectedPay decimal.Decimal `json:"expected_pay"`
	Portfolio   string          `json:"portfolio,omitempty"`
	Linkedin    string          `json:"linkedin,omitempty"`
	CVRef       string          `json:"cv_ref,omitempty"`
	Answered    bool            `json:"answered"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ApplicationListResponse lista paginada de postulaciones de una oferta.
type ApplicationListResponse struct {
	Items []ApplicationResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}

// FeedbackRequest entrada para responder una postulación por correo.
type FeedbackRequest struct {
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}
