package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Application representa la postulación de un candidato a una oferta.
// No requiere cuenta: se correlaciona con el postulante por email.
// Answered pasa de false a true una única vez, cuando la empresa responde.
type Application struct {
	ID          string
	OfferID     string
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	Message     string
	ExpectedPay decimal.Decimal
	Portfolio   string // URL, opcional
	Linkedin    string // URL, opcional
	CVRef       string // referencia al CV subido; el almacenamiento es externo
	Answered    bool
	CreatedAt   time.Time
}

// FullName devuelve nombre y apellido del postulante.
func (a *Application) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}
