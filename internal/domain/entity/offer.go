package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// SalaryUndefined es el texto mostrado cuando una oferta no publica rango salarial.
const SalaryUndefined = "undefined"

// Offer representa una oferta de trabajo publicada por una cuenta company.
// Las referencias de catálogo se guardan por id; los nombres se resuelven al leer.
type Offer struct {
	ID             string
	CompanyID      string
	Name           string
	Description    string
	PositionID     string
	LevelID        string
	LocalizationID string
	ContractIDs    []string
	RequirementIDs []string
	Address        string
	SalaryFrom     *decimal.Decimal // nil = no publicado
	SalaryTo       *decimal.Decimal // nil = no publicado
	Remote         bool
	CreatedAt      time.Time
}

// Salary devuelve el rango salarial formateado en PLN.
// Cualquiera de los dos extremos puede faltar.
func (o *Offer) Salary() string {
	switch {
	case o.SalaryFrom == nil && o.SalaryTo == nil:
		return SalaryUndefined
	case o.SalaryFrom == nil:
		return fmt.Sprintf("up to %s PLN", o.SalaryTo.String())
	case o.SalaryTo == nil:
		return fmt.Sprintf("from %s PLN", o.SalaryFrom.String())
	default:
		return fmt.Sprintf("%s - %s PLN", o.SalaryFrom.String(), o.SalaryTo.String())
	}
}

// FullAddress combina ciudad y dirección ("Warsaw, Zielona 4").
func FullAddress(city, address string) string {
	if city == "" {
		return address
	}
	if address == "" {
		return city
	}
	return city + ", " + address
}

// JoinContracts une los tipos de contrato de una oferta.
func JoinContracts(types []string) string {
	return strings.Join(types, ", ")
}

// SummarizeRequirements resume los requisitos de una oferta: el primero por nombre
// y cuántos más hay. N es el total de requisitos asociados, no el resto; el
// recuento doble del primero se mantiene por compatibilidad con el listado actual.
func SummarizeRequirements(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return fmt.Sprintf("%s and %d other requirement/s", names[0], len(names))
	}
}
