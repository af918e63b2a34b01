package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/DEENUU1/Jobs-portal/internal/application/dto"
	"github.com/DEENUU1/Jobs-portal/internal/domain"
	"github.com/DEENUU1/Jobs-portal/internal/domain/entity"
	"github.com/DEENUU1/Jobs-portal/internal/domain/repository"
)

// OfferUseCase casos de uso CRUD para ofertas. Toda escritura exige rol company
// y la propiedad se expresa como filtro: una oferta ajena se ve como inexistente.
type OfferUseCase struct {
	offers   repository.OfferRepository
	catalog  repository.CatalogRepository
	accounts repository.AccountRepository
	reviews  repository.ReviewRepository
}

// NewOfferUseCase construye el caso de uso.
func NewOfferUseCase(offers repository.OfferRepository, catalog repository.CatalogRepository, accounts repository.AccountRepository, reviews repository.ReviewRepository) *OfferUseCase {
	return &OfferUseCase{offers: offers, catalog: catalog, accounts: accounts, reviews: reviews}
}

// Create crea una oferta propiedad del llamador. Las referencias de catálogo
// deben resolver; no hay más validación de campos que requerido/opcional.
func (uc *OfferUseCase) Create(caller Caller, in dto.CreateOfferRequest) (*dto.OfferResponse, error) {
	if err := requireRole(caller, entity.RoleCompany); err != nil {
		return nil, err
	}
	if err := uc.validateRefs(in.PositionID, in.LevelID, in.LocalizationID, in.ContractIDs, in.RequirementIDs); err != nil {
		return nil, err
	}
	offer := &entity.Offer{
		ID:             uuid.New().String(),
		CompanyID:      caller.ID,
		Name:           in.Name,
		Description:    in.Description,
		PositionID:     in.PositionID,
		LevelID:        in.LevelID,
		LocalizationID: in.LocalizationID,
		ContractIDs:    in.ContractIDs,
		RequirementIDs: in.RequirementIDs,
		Address:        in.Address,
		SalaryFrom:     in.SalaryFrom,
		SalaryTo:       in.SalaryTo,
		Remote:         in.Remote,
		CreatedAt:      time.Now(),
	}
	if err := uc.offers.Create(offer); err != nil {
		return nil, err
	}
	return toOfferResponse(offer), nil
}

// Update aplica un diff de campos sobre una oferta propia.
// Un id ajeno o inexistente devuelve ErrNotFound, sin distinguir los casos.
func (uc *OfferUseCase) Update(caller Caller, offerID string, in dto.UpdateOfferRequest) (*dto.OfferResponse, error) {
	if err := requireRole(caller, entity.RoleCompany); err != nil {
		return nil, err
	}
	offer, err := uc.offers.GetByIDAndCompany(offerID, caller.ID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name != nil {
		offer.Name = *in.Name
	}
	if in.Description != nil {
		offer.Description = *in.Description
	}
	if in.PositionID != nil {
		offer.PositionID = *in.PositionID
	}
	if in.LevelID != nil {
		offer.LevelID = *in.LevelID
	}
	if in.LocalizationID != nil {
		offer.LocalizationID = *in.LocalizationID
	}
	if in.ContractIDs != nil {
		offer.ContractIDs = in.ContractIDs
	}
	if in.RequirementIDs != nil {
		offer.RequirementIDs = in.RequirementIDs
	}
	if in.Address != nil {
		offer.Address = *in.Address
	}
	if in.SalaryFrom != nil {
		offer.SalaryFrom = in.SalaryFrom
	}
	if in.SalaryTo != nil {
		offer.SalaryTo = in.SalaryTo
	}
	if in.Remote != nil {
		offer.Remote = *in.Remote
	}
	if err := uc.validateRefs(offer.PositionID, offer.LevelID, offer.LocalizationID, offer.ContractIDs, offer.RequirementIDs); err != nil {
		return nil, err
	}
	if err := uc.offers.Update(offer); err != nil {
		return nil, err
	}
	return toOfferResponse(offer), nil
}

// Delete elimina una oferta propia junto con todas sus postulaciones.
func (uc *OfferUseCase) Delete(caller Caller, offerID string) error {
	if err := requireRole(caller, entity.RoleCompany); err != nil {
		return err
	}
	offer, err := uc.offers.GetByIDAndCompany(offerID, caller.ID)
	if err != nil {
		return err
	}
	if offer == nil {
		return domain.ErrNotFound
	}
	return uc.offers.Delete(offerID, caller.ID)
}

// List lista ofertas públicas con filtros componibles y orden por fecha.
func (uc *OfferUseCase) List(in dto.ListOffersRequest) (*dto.OfferListResponse, error) {
	in.DefaultPage()
	filter := repository.OfferFilter{
		Name:           in.Name,
		Remote:         in.Remote,
		PositionIDs:    in.PositionIDs,
		LevelID:        in.LevelID,
		LocalizationID: in.LocalizationID,
		ContractID:     in.ContractID,
		Limit:          in.Limit,
		Offset:         in.Offset,
	}
	switch in.OrderBy {
	case "newest":
		filter.OrderBy = repository.OrderCreatedAtDesc
	case "oldest":
		filter.OrderBy = repository.OrderCreatedAtAsc
	}
	list, err := uc.offers.List(filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OfferResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOfferResponse(o))
	}
	return &dto.OfferListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: in.Limit, Offset: in.Offset},
	}, nil
}

// GetDetail devuelve el detalle público de una oferta con las referencias de
// catálogo resueltas, el salario formateado y la calificación media de la empresa.
func (uc *OfferUseCase) GetDetail(offerID string) (*dto.OfferDetailResponse, error) {
	offer, err := uc.offers.GetByID(offerID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, domain.ErrNotFound
	}

	out := &dto.OfferDetailResponse{OfferResponse: *toOfferResponse(offer)}

	if p, err := uc.catalog.GetPosition(offer.PositionID); err == nil && p != nil {
		out.Position = p.Name
	}
	if l, err := uc.catalog.GetLevel(offer.LevelID); err == nil && l != nil {
		out.Level = l.Name
	}
	city := ""
	if loc, err := uc.catalog.GetLocalization(offer.LocalizationID); err == nil && loc != nil {
		city = loc.City
		out.Localization = loc.City
	}
	out.FullAddress = entity.FullAddress(city, offer.Address)

	contracts, err := uc.catalog.GetContractsByIDs(offer.ContractIDs)
	if err != nil {
		return nil, err
	}
	types := make([]string, 0, len(contracts))
	for _, c := range contracts {
		types = append(types, c.Type)
	}
	out.Contracts = entity.JoinContracts(types)

	requirements, err := uc.catalog.GetRequirementsByIDs(offer.RequirementIDs)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(requirements))
	for _, r := range requirements {
		names = append(names, r.Name)
	}
	out.Requirements = names
	out.RequirementsSummary = entity.SummarizeRequirements(names)

	if company, err := uc.accounts.GetByID(offer.CompanyID); err == nil && company != nil {
		out.CompanyUsername = company.Username
	}
	avg, err := uc.reviews.AverageByCompany(offer.CompanyID)
	if err != nil {
		return nil, err
	}
	out.AverageRating = FormatAverageRating(avg)

	return out, nil
}

// validateRefs comprueba que todas las referencias de catálogo existan.
func (uc *OfferUseCase) validateRefs(positionID, levelID, localizationID string, contractIDs, requirementIDs []string) error {
	if p, err := uc.catalog.GetPosition(positionID); err != nil {
		return err
	} else if p == nil {
		return domain.ErrInvalidInput
	}
	if l, err := uc.catalog.GetLevel(levelID); err != nil {
		return err
	} else if l == nil {
		return domain.ErrInvalidInput
	}
	if loc, err := uc.catalog.GetLocalization(localizationID); err != nil {
		return err
	} else if loc == nil {
		return domain.ErrInvalidInput
	}
	contracts, err := uc.catalog.GetContractsByIDs(contractIDs)
	if err != nil {
		return err
	}
	if len(contracts) != len(contractIDs) {
		return domain.ErrInvalidInput
	}
	requirements, err := uc.catalog.GetRequirementsByIDs(requirementIDs)
	if err != nil {
		return err
	}
	if len(requirements) != len(requirementIDs) {
		return domain.ErrInvalidInput
	}
	return nil
}

func toOfferResponse(o *entity.Offer) *dto.OfferResponse {
	if o == nil {
		return nil
	}
	return &dto.OfferResponse{
		ID:             o.ID,
		CompanyID:      o.CompanyID,
		Name:           o.Name,
		Description:    o.Description,
		PositionID:     o.PositionID,
		LevelID:        o.LevelID,
		LocalizationID: o.LocalizationID,
		ContractIDs:    o.ContractIDs,
		RequirementIDs: o.RequirementIDs,
		Address:        o.Address,
		SalaryFrom:     o.SalaryFrom,
		SalaryTo:       o.SalaryTo,
		Salary:         o.Salary(),
		Remote:         o.Remote,
		CreatedAt:      o.CreatedAt,
	}
}
