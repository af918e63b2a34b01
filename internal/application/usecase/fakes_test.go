package usecase

import (
	"sort"
	"strings"

	"github.com/DEENUU1/Jobs-portal/internal/application/ports"
	"github.com/DEENUU1/Jobs-portal/internal/domain"
	"github.com/DEENUU1/Jobs-portal/internal/domain/entity"
	"github.com/DEENUU1/Jobs-portal/internal/domain/repository"
	"github.com/DEENUU1/Jobs-portal/pkg/logger"
)

// Fakes en memoria de los puertos de persistencia, para probar los casos de
// uso sin PostgreSQL.

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "test", Level: "error"})
}

// ─── cuentas ──────────────────────────────────────────────────────────────────

type fakeAccountRepo struct {
	accounts map[string]*entity.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*entity.Account)}
}

func (r *fakeAccountRepo) Create(a *entity.Account) error {
	for _, existing := range r.accounts {
		if existing.Email == a.Email {
			return domain.ErrEmailAlreadyExists
		}
		if existing.Username == a.Username {
			return domain.ErrUsernameTaken
		}
	}
	cp := *a
	r.accounts[a.ID] = &cp
	return nil
}

func (r *fakeAccountRepo) GetByID(id string) (*entity.Account, error) {
	if a, ok := r.accounts[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeAccountRepo) GetByEmail(email string) (*entity.Account, error) {
	for _, a := range r.accounts {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) GetByUsername(username string) (*entity.Account, error) {
	for _, a := range r.accounts {
		if a.Username == username {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) Update(a *entity.Account) error {
	cp := *a
	r.accounts[a.ID] = &cp
	return nil
}

func (r *fakeAccountRepo) SetActive(id string, active bool) error {
	if a, ok := r.accounts[id]; ok {
		a.IsActive = active
	}
	return nil
}

func (r *fakeAccountRepo) UpdatePassword(id, passwordHash string) error {
	if a, ok := r.accounts[id]; ok {
		a.PasswordHash = passwordHash
	}
	return nil
}

func (r *fakeAccountRepo) ListCompanies(limit, offset int) ([]*entity.Account, error) {
	var list []*entity.Account
	for _, a := range r.accounts {
		if a.IsCompany() {
			cp := *a
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return paginate(list, limit, offset), nil
}

// ─── ofertas ──────────────────────────────────────────────────────────────────

type fakeOfferRepo struct {
	offers map[string]*entity.Offer
	// apps permite simular el borrado en cascada de las postulaciones.
	apps *fakeApplicationRepo
}

func newFakeOfferRepo(apps *fakeApplicationRepo) *fakeOfferRepo {
	return &fakeOfferRepo{offers: make(map[string]*entity.Offer), apps: apps}
}

func (r *fakeOfferRepo) Create(o *entity.Offer) error {
	cp := *o
	r.offers[o.ID] = &cp
	return nil
}

func (r *fakeOfferRepo) GetByID(id string) (*entity.Offer, error) {
	if o, ok := r.offers[id]; ok {
		cp := *o
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeOfferRepo) GetByIDAndCompany(id, companyID string) (*entity.Offer, error) {
	if o, ok := r.offers[id]; ok && o.CompanyID == companyID {
		cp := *o
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeOfferRepo) Update(o *entity.Offer) error {
	if existing, ok := r.offers[o.ID]; ok && existing.CompanyID == o.CompanyID {
		cp := *o
		r.offers[o.ID] = &cp
	}
	return nil
}

func (r *fakeOfferRepo) Delete(id, companyID string) error {
	if o, ok := r.offers[id]; ok && o.CompanyID == companyID {
		delete(r.offers, id)
		if r.apps != nil {
			for appID, a := range r.apps.applications {
				if a.OfferID == id {
					delete(r.apps.applications, appID)
				}
			}
		}
	}
	return nil
}

func (r *fakeOfferRepo) List(filter repository.OfferFilter) ([]*entity.Offer, error) {
	var list []*entity.Offer
	for _, o := range r.offers {
		if filter.Name != "" && !strings.Contains(strings.ToLower(o.Name), strings.ToLower(filter.Name)) {
			continue
		}
		if filter.Remote != nil && o.Remote != *filter.Remote {
			continue
		}
		if len(filter.PositionIDs) > 0 && !contains(filter.PositionIDs, o.PositionID) {
			continue
		}
		if filter.LevelID != "" && o.LevelID != filter.LevelID {
			continue
		}
		if filter.LocalizationID != "" && o.LocalizationID != filter.LocalizationID {
			continue
		}
		if filter.ContractID != "" && !contains(o.ContractIDs, filter.ContractID) {
			continue
		}
		cp := *o
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool {
		if filter.OrderBy == repository.OrderCreatedAtAsc {
			return list[i].CreatedAt.Before(list[j].CreatedAt)
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return paginate(list, filter.Limit, filter.Offset), nil
}

func (r *fakeOfferRepo) ListByCompany(companyID string) ([]*entity.Offer, error) {
	var list []*entity.Offer
	for _, o := range r.offers {
		if o.CompanyID == companyID {
			cp := *o
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].CreatedAt.After(list[j].CreatedAt) })
	return list, nil
}

// ─── postulaciones ────────────────────────────────────────────────────────────

type fakeApplicationRepo struct {
	applications map[string]*entity.Application
	// offers se asigna tras crear ambos fakes; CountByCompany lo necesita
	// para resolver la empresa dueña de cada oferta.
	offers *fakeOfferRepo
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[string]*entity.Application)}
}

func (r *fakeApplicationRepo) Create(a *entity.Application) error {
	cp := *a
	r.applications[a.ID] = &cp
	return nil
}

func (r *fakeApplicationRepo) GetByID(id string) (*entity.Application, error) {
	if a, ok := r.applications[id]; ok {
		cp := *a
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeApplicationRepo) ListByOffer(offerID string, limit, offset int) ([]*entity.Application, error) {
	var list []*entity.Application
	for _, a := range r.applications {
		if a.OfferID == offerID {
			cp := *a
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	if limit <= 0 {
		return list, nil
	}
	return paginate(list, limit, offset), nil
}

func (r *fakeApplicationRepo) ListByEmail(email string) ([]*entity.Application, error) {
	var list []*entity.Application
	for _, a := range r.applications {
		if a.Email == email {
			cp := *a
			list = append(list, &cp)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *fakeApplicationRepo) SetAnswered(id string, answered bool) error {
	if a, ok := r.applications[id]; ok {
		a.Answered = answered
	}
	return nil
}

func (r *fakeApplicationRepo) Delete(id string) error {
	delete(r.applications, id)
	return nil
}

func (r *fakeApplicationRepo) CountByCompany(companyID string) (int, error) {
	count := 0
	for _, a := range r.applications {
		if r.offers == nil {
			continue
		}
		if o, ok := r.offers.offers[a.OfferID]; ok && o.CompanyID == companyID {
			count++
		}
	}
	return count, nil
}

// ─── reseñas ──────────────────────────────────────────────────────────────────

type fakeReviewRepo struct {
	reviews []*entity.CompanyReview
}

func (r *fakeReviewRepo) Create(review *entity.CompanyReview) error {
	cp := *review
	r.reviews = append(r.reviews, &cp)
	return nil
}

func (r *fakeReviewRepo) ListByCompany(companyID string) ([]*entity.CompanyReview, error) {
	var list []*entity.CompanyReview
	for _, rv := range r.reviews {
		if rv.CompanyID == companyID {
			cp := *rv
			list = append(list, &cp)
		}
	}
	return list, nil
}

func (r *fakeReviewRepo) AverageByCompany(companyID string) (*float64, error) {
	sum, n := 0, 0
	for _, rv := range r.reviews {
		if rv.CompanyID == companyID {
			sum += rv.Rate
			n++
		}
	}
	if n == 0 {
		return nil, nil
	}
	avg := float64(sum) / float64(n)
	return &avg, nil
}

// ─── catálogo ─────────────────────────────────────────────────────────────────

type fakeCatalogRepo struct {
	positions     map[string]string
	levels        map[string]string
	localizations map[string]entity.Localization
	contracts     map[string]string
	requirements  map[string]string
}

// newFakeCatalogRepo catálogo mínimo con una fila por tabla.
func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		positions:     map[string]string{"pos-1": "Python"},
		levels:        map[string]string{"lvl-1": "Junior"},
		localizations: map[string]entity.Localization{"loc-1": {ID: "loc-1", CountryID: "country-1", City: "Warsaw"}},
		contracts:     map[string]string{"con-1": "B2B"},
		requirements:  map[string]string{"req-1": "Git", "req-2": "Docker", "req-3": "Linux"},
	}
}

func (r *fakeCatalogRepo) ListPositions() ([]*entity.Position, error) {
	var list []*entity.Position
	for id, name := range r.positions {
		list = append(list, &entity.Position{ID: id, Name: name})
	}
	return list, nil
}

func (r *fakeCatalogRepo) ListLevels() ([]*entity.Level, error) {
	var list []*entity.Level
	for id, name := range r.levels {
		list = append(list, &entity.Level{ID: id, Name: name})
	}
	return list, nil
}

func (r *fakeCatalogRepo) ListCountries() ([]*entity.Country, error) {
	return []*entity.Country{{ID: "country-1", Name: "Poland"}}, nil
}

func (r *fakeCatalogRepo) ListLocalizations() ([]*entity.Localization, error) {
	var list []*entity.Localization
	for _, l := range r.localizations {
		cp := l
		list = append(list, &cp)
	}
	return list, nil
}

func (r *fakeCatalogRepo) ListContracts() ([]*entity.Contract, error) {
	var list []*entity.Contract
	for id, typ := range r.contracts {
		list = append(list, &entity.Contract{ID: id, Type: typ})
	}
	return list, nil
}

func (r *fakeCatalogRepo) ListRequirements() ([]*entity.Requirement, error) {
	var list []*entity.Requirement
	for id, name := range r.requirements {
		list = append(list, &entity.Requirement{ID: id, Name: name})
	}
	return list, nil
}

func (r *fakeCatalogRepo) GetPosition(id string) (*entity.Position, error) {
	if name, ok := r.positions[id]; ok {
		return &entity.Position{ID: id, Name: name}, nil
	}
	return nil, nil
}

func (r *fakeCatalogRepo) GetLevel(id string) (*entity.Level, error) {
	if name, ok := r.levels[id]; ok {
		return &entity.Level{ID: id, Name: name}, nil
	}
	return nil, nil
}

func (r *fakeCatalogRepo) GetLocalization(id string) (*entity.Localization, error) {
	if l, ok := r.localizations[id]; ok {
		cp := l
		return &cp, nil
	}
	return nil, nil
}

func (r *fakeCatalogRepo) GetContractsByIDs(ids []string) ([]*entity.Contract, error) {
	var list []*entity.Contract
	for _, id := range ids {
		if typ, ok := r.contracts[id]; ok {
			list = append(list, &entity.Contract{ID: id, Type: typ})
		}
	}
	return list, nil
}

func (r *fakeCatalogRepo) GetRequirementsByIDs(ids []string) ([]*entity.Requirement, error) {
	var list []*entity.Requirement
	for _, id := range ids {
		if name, ok := r.requirements[id]; ok {
			list = append(list, &entity.Requirement{ID: id, Name: name})
		}
	}
	return list, nil
}

// ─── despachador ──────────────────────────────────────────────────────────────

type fakeDispatcher struct {
	emails  []ports.EmailJob
	exports []ports.ExportJob
	failAll bool
}

func (d *fakeDispatcher) EnqueueEmail(job ports.EmailJob) (string, error) {
	if d.failAll {
		return "", domain.ErrConflict
	}
	d.emails = append(d.emails, job)
	return "job-email", nil
}

func (d *fakeDispatcher) EnqueueExport(job ports.ExportJob) (string, error) {
	if d.failAll {
		return "", domain.ErrConflict
	}
	d.exports = append(d.exports, job)
	return "job-export", nil
}

// ─── helpers ──────────────────────────────────────────────────────────────────

func paginate[T any](list []T, limit, offset int) []T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
