package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DEENUU1/Jobs-portal/internal/application/dto"
	"github.com/DEENUU1/Jobs-portal/internal/domain"
	"github.com/DEENUU1/Jobs-portal/internal/domain/entity"
)

// fixture conjunto de fakes cableados como en main.
type fixture struct {
	accounts     *fakeAccountRepo
	offers       *fakeOfferRepo
	applications *fakeApplicationRepo
	reviews      *fakeReviewRepo
	catalog      *fakeCatalogRepo
	dispatcher   *fakeDispatcher

	offerUC       *OfferUseCase
	applicationUC *ApplicationUseCase
	reviewUC      *ReviewUseCase
	companyUC     *CompanyUseCase

	companyA Caller
	companyB Caller
	user     Caller
}

func newFixture(t *testing.T, strictOwnership bool) *fixture {
	t.Helper()
	f := &fixture{
		accounts:     newFakeAccountRepo(),
		applications: newFakeApplicationRepo(),
		reviews:      &fakeReviewRepo{},
		catalog:      newFakeCatalogRepo(),
		dispatcher:   &fakeDispatcher{},
	}
	f.offers = newFakeOfferRepo(f.applications)
	f.applications.offers = f.offers

	require.NoError(t, f.accounts.Create(&entity.Account{
		ID: "company-a", Username: "empresa-a", Email: "a@empresa.com", Role: entity.RoleCompany, IsActive: true,
	}))
	require.NoError(t, f.accounts.Create(&entity.Account{
		ID: "company-b", Username: "empresa-b", Email: "b@empresa.com", Role: entity.RoleCompany, IsActive: true,
	}))
	require.NoError(t, f.accounts.Create(&entity.Account{
		ID: "user-u", Username: "candidato", Email: "u@candidato.com", Role: entity.RoleUser, IsActive: true,
	}))

	f.companyA = Caller{ID: "company-a", Email: "a@empresa.com", Role: entity.RoleCompany}
	f.companyB = Caller{ID: "company-b", Email: "b@empresa.com", Role: entity.RoleCompany}
	f.user = Caller{ID: "user-u", Email: "u@candidato.com", Role: entity.RoleUser}

	f.offerUC = NewOfferUseCase(f.offers, f.catalog, f.accounts, f.reviews)
	f.applicationUC = NewApplicationUseCase(f.applications, f.offers, f.dispatcher, testLogger(), strictOwnership)
	f.reviewUC = NewReviewUseCase(f.reviews, f.accounts)
	f.companyUC = NewCompanyUseCase(f.accounts, f.offers, f.applications, f.reviewUC)
	return f
}

func validOfferRequest() dto.CreateOfferRequest {
	from := decimal.NewFromInt(20000)
	to := decimal.NewFromInt(25000)
	return dto.CreateOfferRequest{
		Name:           "Backend Developer",
		Description:    "descripción",
		PositionID:     "pos-1",
		LevelID:        "lvl-1",
		LocalizationID: "loc-1",
		ContractIDs:    []string{"con-1"},
		RequirementIDs: []string{"req-1"},
		Address:        "Zielona 4",
		SalaryFrom:     &from,
		SalaryTo:       &to,
		Remote:         true,
	}
}

func TestOfferCreate_RequiereRolCompany(t *testing.T) {
	f := newFixture(t, false)

	_, err := f.offerUC.Create(Anonymous, validOfferRequest())
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "anónimo no puede crear ofertas")

	_, err = f.offerUC.Create(f.user, validOfferRequest())
	assert.ErrorIs(t, err, domain.ErrForbidden, "rol user no puede crear ofertas")

	offer, err := f.offerUC.Create(f.companyA, validOfferRequest())
	require.NoError(t, err)
	assert.Equal(t, "company-a", offer.CompanyID)
	assert.Equal(t, "20000 - 25000 PLN", offer.Salary)
}

func TestOfferCreate_ReferenciaInexistente(t *testing.T) {
	f := newFixture(t, false)

	in := validOfferRequest()
	in.PositionID = "pos-no-existe"
	_, err := f.offerUC.Create(f.companyA, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = validOfferRequest()
	in.ContractIDs = []string{"con-1", "con-no-existe"}
	_, err = f.offerUC.Create(f.companyA, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOfferUpdate_AjenaRespondeNotFound(t *testing.T) {
	f := newFixture(t, false)

	offer, err := f.offerUC.Create(f.companyA, validOfferRequest())
	require.NoError(t, err)

	name := "intento de edición ajena"
	_, err = f.offerUC.Update(f.companyB, offer.ID, dto.UpdateOfferRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrNotFound,
		"una oferta ajena se comporta igual que una inexistente")

	// El dueño sí puede editar con diff parcial
	updated, err := f.offerUC.Update(f.companyA, offer.ID, dto.UpdateOfferRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
	assert.Equal(t, "descripción", updated.Description, "los campos no enviados no cambian")
}

func TestOfferDelete_EliminaPostulacionesEnCascada(t *testing.T) {
	f := newFixture(t, false)

	offer, err := f.offerUC.Create(f.companyA, validOfferRequest())
	require.NoError(t, err)

	_, err = f.applicationUC.Apply(offer.ID, dto.ApplyRequest{
		FirstName: "Kacper", LastName: "Kowalski", Email: "kacper@example.com", Message: "hola",
	})
	require.NoError(t, err)
	require.Len(t, f.applications.applications, 1)

	require.NoError(t, f.offerUC.Delete(f.companyA, offer.ID))
	assert.Empty(t, f.offers.offers, "la oferta desaparece")
	assert.Empty(t, f.applications.applications, "sus postulaciones desaparecen con ella")
}

func TestOfferDelete_AjenaRespondeNotFound(t *testing.T) {
	f := newFixture(t, false)

	offer, err := f.offerUC.Create(f.companyA, validOfferRequest())
	require.NoError(t, err)

	err = f.offerUC.Delete(f.companyB, offer.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Len(t, f.offers.offers, 1, "la oferta sigue existiendo")
}

func TestOfferGetDetail_ResuelveCatalogoYMedia(t *testing.T) {
	f := newFixture(t, false)

	in := validOfferRequest()
	in.RequirementIDs = []string{"req-1", "req-2", "req-3"}
	offer, err := f.offerUC.Create(f.companyA, in)
	require.NoError(t, err)

	// Dos reseñas para la empresa dueña
	_, err = f.reviewUC.Submit("company-a", dto.SubmitReviewRequest{Rate: 5, Email: "x@y.z", ShortDescription: "bien"})
	require.NoError(t, err)
	_, err = f.reviewUC.Submit("company-a", dto.SubmitReviewRequest{Rate: 4, Email: "x@y.z", ShortDescription: "ok"})
	require.NoError(t, err)

	detail, err := f.offerUC.GetDetail(offer.ID)
	require.NoError(t, err)

	assert.Equal(t, "Python", detail.Position)
	assert.Equal(t, "Junior", detail.Level)
	assert.Equal(t, "Warsaw", detail.Localization)
	assert.Equal(t, "Warsaw, Zielona 4", detail.FullAddress)
	assert.Equal(t, "B2B", detail.Contracts)
	assert.Equal(t, "Git and 3 other requirement/s", detail.RequirementsSummary)
	assert.Equal(t, "empresa-a", detail.CompanyUsername)
	assert.Equal(t, "4.5", detail.AverageRating)
}

func TestOfferGetDetail_Inexistente(t *testing.T) {
	f := newFixture(t, false)
	_, err := f.offerUC.GetDetail("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOfferList_FiltrosYOrden(t *testing.T) {
	f := newFixture(t, false)

	first, err := f.offerUC.Create(f.companyA, validOfferRequest())
	require.NoError(t, err)
	in := validOfferRequest()
	in.Name = "Frontend Developer"
	in.Remote = false
	second, err := f.offerUC.Create(f.companyA, in)
	require.NoError(t, err)

	remote := true
	out, err := f.offerUC.List(dto.ListOffersRequest{Remote: &remote})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, first.ID, out.Items[0].ID)

	out, err = f.offerUC.List(dto.ListOffersRequest{Name: "frontend"})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, second.ID, out.Items[0].ID, "el filtro por nombre no distingue mayúsculas")

	out, err = f.offerUC.List(dto.ListOffersRequest{})
	require.NoError(t, err)
	assert.Len(t, out.Items, 2)
}
