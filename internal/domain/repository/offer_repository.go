package repository

import "github.com/DEENUU1/Jobs-portal/internal/domain/entity"

// Orden de los listados de ofertas por fecha de creación.
const (
	OrderCreatedAtAsc  = "created_at_asc"
	OrderCreatedAtDesc = "created_at_desc"
)

// OfferFilter predicados componibles para listar ofertas. Un campo en cero
// no filtra; los campos presentes se combinan con AND.
type OfferFilter struct {
	Name           string   // substring, case-insensitive
	Remote         *bool    // nil = sin filtro
	PositionIDs    []string // pertenencia al conjunto
	LevelID        string
	LocalizationID string
	ContractID     string
	OrderBy        string // OrderCreatedAtAsc | OrderCreatedAtDesc | "" (orden natural)
	Limit          int
	Offset         int
}

// OfferRepository define el puerto de persistencia para Offer (DIP).
// Las operaciones de escritura acotadas por empresa expresan la propiedad como
// filtro: un id ajeno se comporta igual que un id inexistente.
type OfferRepository interface {
	Create(offer *entity.Offer) error
	GetByID(id string) (*entity.Offer, error)
	// GetByIDAndCompany devuelve nil si la oferta no existe o no pertenece a la empresa.
	GetByIDAndCompany(id, companyID string) (*entity.Offer, error)
	// Update escribe solo si la oferta pertenece a offer.CompanyID.
	Update(offer *entity.Offer) error
	// Delete elimina la oferta de la empresa junto con sus postulaciones.
	Delete(id, companyID string) error
	List(filter OfferFilter) ([]*entity.Offer, error)
	ListByCompany(companyID string) ([]*entity.Offer, error)
}
