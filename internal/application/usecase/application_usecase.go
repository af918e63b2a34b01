package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/DEENUU1/Jobs-portal/internal/application/dto"
	"github.com/DEENUU1/Jobs-portal/internal/application/ports"
	"github.com/DEENUU1/Jobs-portal/internal/domain"
	"github.com/DEENUU1/Jobs-portal/internal/domain/entity"
	"github.com/DEENUU1/Jobs-portal/internal/domain/repository"
	"github.com/DEENUU1/Jobs-portal/pkg/logger"
)

// ApplicationUseCase ciclo de vida de las postulaciones: crear, listar,
// responder con feedback por correo y eliminar.
type ApplicationUseCase struct {
	applications repository.ApplicationRepository
	offers       repository.OfferRepository
	dispatcher   ports.Dispatcher
	log          *logger.Logger
	// strictOwnership exige que la oferta pertenezca al llamador al listar y
	// exportar postulaciones. Apagado replica el comportamiento histórico,
	// que solo comprueba el rol company.
	strictOwnership bool
}

// NewApplicationUseCase construye el caso de uso.
func NewApplicationUseCase(applications repository.ApplicationRepository, offers repository.OfferRepository, dispatcher ports.Dispatcher, log *logger.Logger, strictOwnership bool) *ApplicationUseCase {
	return &ApplicationUseCase{
		applications:    applications,
		offers:          offers,
		dispatcher:      dispatcher,
		log:             log,
		strictOwnership: strictOwnership,
	}
}

// Apply crea una postulación contra una oferta existente. No requiere
// autenticación: cualquier llamador, incluso anónimo, puede postular.
func (uc *ApplicationUseCase) Apply(offerID string, in dto.ApplyRequest) (*dto.ApplicationResponse, error) {
	offer, err := uc.offers.GetByID(offerID)
	if err != nil {
		return nil, err
	}
	if offer == nil {
		return nil, domain.ErrNotFound
	}
	application := &entity.Application{
		ID:          uuid.New().String(),
		OfferID:     offerID,
		FirstName:   in.FirstName,
		LastName:    in.LastName,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		Message:     in.Message,
		ExpectedPay: in.ExpectedPay,
		Portfolio:   in.Portfolio,
		Linkedin:    in.Linkedin,
		CVRef:       in.CVRef,
		Answered:    false,
		CreatedAt:   time.Now(),
	}
	if err := uc.applications.Create(application); err != nil {
		return nil, err
	}
	return toApplicationResponse(application), nil
}

// ListByOffer lista las postulaciones de una oferta para una empresa.
// Por defecto NO se verifica que la oferta pertenezca al llamador, replicando
// el comportamiento histórico; con strictOwnership una oferta ajena responde
// ErrForbidden.
func (uc *ApplicationUseCase) ListByOffer(caller Caller, offerID string, page dto.PageRequest) (*dto.ApplicationListResponse, error) {
	if err := requireRole(caller, entity.RoleCompany); err != nil {
		return nil, err
	}
	if err := uc.checkOfferAccess(caller, offerID); err != nil {
		return nil, err
	}
	page.DefaultPage()
	list, err := uc.applications.ListByOffer(offerID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ApplicationResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toApplicationResponse(a))
	}
	return &dto.ApplicationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// ListAllByOffer devuelve todas las postulaciones de una oferta, sin paginar.
// Mismo control de acceso que ListByOffer; lo usa la exportación CSV.
func (uc *ApplicationUseCase) ListAllByOffer(caller Caller, offerID string) ([]*entity.Application, error) {
	if err := requireRole(caller, entity.RoleCompany); err != nil {
		return nil, err
	}
	if err := uc.checkOfferAccess(caller, offerID); err != nil {
		return nil, err
	}
	return uc.applications.ListByOffer(offerID, 0, 0)
}

// History devuelve las postulaciones del llamador con rol user, correlacionadas
// por su email: el postulante pudo haber aplicado sin cuenta.
func (uc *ApplicationUseCase) History(caller Caller) ([]dto.ApplicationResponse, error) {
	if err := requireRole(caller, entity.RoleUser); err != nil {
		return nil, err
	}
	list, err := uc.applications.ListByEmail(caller.Email)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ApplicationResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toApplicationResponse(a))
	}
	return items, nil
}

// SendFeedback responde una postulación: encola el correo al postulante y marca
// answered=true. La transición es de un solo sentido pero no se re-verifica el
// estado previo: repetir la llamada vuelve a encolar el correo. Un fallo al
// encolar se registra y no revierte la marca.
func (uc *ApplicationUseCase) SendFeedback(caller Caller, applicationID string, in dto.FeedbackRequest) error {
	if err := requireRole(caller, entity.RoleCompany); err != nil {
		return err
	}
	application, err := uc.applications.GetByID(applicationID)
	if err != nil {
		return err
	}
	if application == nil {
		return domain.ErrNotFound
	}
	offer, err := uc.offers.GetByID(application.OfferID)
	if err != nil {
		return err
	}
	if err := requireOwnership(caller, offer); err != nil {
		return err
	}
	if _, err := uc.dispatcher.EnqueueEmail(ports.EmailJob{
		To:      application.Email,
		Subject: in.Subject,
		Body:    in.Message,
	}); err != nil {
		uc.log.Error().Err(err).Str("application_id", applicationID).Msg("no se pudo encolar el correo de feedback")
	}
	return uc.applications.SetAnswered(applicationID, true)
}

// Delete elimina una postulación de una oferta propia. Una postulación ajena
// se comporta como inexistente.
func (uc *ApplicationUseCase) Delete(caller Caller, applicationID string) error {
	if err := requireRole(caller, entity.RoleCompany); err != nil {
		return err
	}
	application, err := uc.applications.GetByID(applicationID)
	if err != nil {
		return err
	}
	if application == nil {
		return domain.ErrNotFound
	}
	offer, err := uc.offers.GetByIDAndCompany(application.OfferID, caller.ID)
	if err != nil {
		return err
	}
	if offer == nil {
		return domain.ErrNotFound
	}
	return uc.applications.Delete(applicationID)
}

// ExportAsync encola la generación del CSV de postulaciones de una oferta.
// Fire-and-forget: un fallo al encolar se registra y la operación no falla.
func (uc *ApplicationUseCase) ExportAsync(caller Caller, offerID string) error {
	if err := requireRole(caller, entity.RoleCompany); err != nil {
		return err
	}
	if err := uc.checkOfferAccess(caller, offerID); err != nil {
		return err
	}
	if _, err := uc.dispatcher.EnqueueExport(ports.ExportJob{OfferID: offerID}); err != nil {
		uc.log.Error().Err(err).Str("offer_id", offerID).Msg("no se pudo encolar la exportación CSV")
	}
	return nil
}

// checkOfferAccess aplica la política de propiedad configurada sobre la oferta.
func (uc *ApplicationUseCase) checkOfferAccess(caller Caller, offerID string) error {
	if !uc.strictOwnership {
		return nil
	}
	offer, err := uc.offers.GetByIDAndCompany(offerID, caller.ID)
	if err != nil {
		return err
	}
	if offer == nil {
		return domain.ErrForbidden
	}
	return nil
}

func toApplicationResponse(a *entity.Application) *dto.ApplicationResponse {
	if a == nil {
		return nil
	}
	return &dto.ApplicationResponse{
		ID:          a.ID,
		OfferID:     a.OfferID,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		FullName:    a.FullName(),
		Email:       a.Email,
		PhoneNumber: a.PhoneNumber,
		Message:     a.Message,
		ExpectedPay: a.ExpectedPay,
		Portfolio:   a.Portfolio,
		Linkedin:    a.Linkedin,
		CVRef:       a.CVRef,
		Answered:    a.Answered,
		CreatedAt:   a.CreatedAt,
	}
}
