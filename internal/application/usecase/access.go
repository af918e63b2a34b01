package usecase

import (
	"github.com/DEENUU1/Jobs-portal/internal/domain"
	"github.com/DEENUU1/Jobs-portal/internal/domain/entity"
)

// Caller identidad del llamador, extraída del JWT por el borde HTTP y pasada
// explícitamente a cada operación. Un Caller vacío representa un anónimo.
type Caller struct {
	ID    string
	Email string
	Role  string
}

// Anonymous caller sin autenticar.
var Anonymous = Caller{}

// requireRole falla con ErrUnauthorized si no hay llamador autenticado y con
// ErrForbidden si el rol no coincide. Se evalúa de forma síncrona antes de
// cualquier mutación o lectura restringida.
func requireRole(caller Caller, role string) error {
	if caller.ID == "" {
		return domain.ErrUnauthorized
	}
	if caller.Role != role {
		return domain.ErrForbidden
	}
	return nil
}

// requireOwnership falla con ErrForbidden si la oferta no pertenece al llamador.
func requireOwnership(caller Caller, offer *entity.Offer) error {
	if offer == nil || offer.CompanyID != caller.ID {
		return domain.ErrForbidden
	}
	return nil
}
