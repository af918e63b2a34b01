package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/DEENUU1/Jobs-portal/internal/domain/entity"
	"github.com/DEENUU1/Jobs-portal/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementación del puerto CatalogRepository sobre PostgreSQL (usable con pool o tx).
// Las tablas de catálogo se cargan fuera de banda; aquí solo hay lecturas.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador de lectura del catálogo. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// ListPositions lista todas las posiciones.
func (r *CatalogRepo) ListPositions() ([]*entity.Position, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM positions ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list positions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Position
	for rows.Next() {
		var p entity.Position
		if err := rows.Scan(&p.ID, &p.Name); err != nil {
			return nil, fmt.Errorf("scan position: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// ListLevels lista todos los niveles de seniority.
func (r *CatalogRepo) ListLevels() ([]*entity.Level, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM levels ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list levels: %w", err)
	}
	defer rows.Close()
	var list []*entity.Level
	for rows.Next() {
		var l entity.Level
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, fmt.Errorf("scan level: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// ListCountries lista todos los países.
func (r *CatalogRepo) ListCountries() ([]*entity.Country, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM countries ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	defer rows.Close()
	var list []*entity.Country
	for rows.Next() {
		var c entity.Country
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan country: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ListLocalizations lista todas las localizaciones (ciudad por país).
func (r *CatalogRepo) ListLocalizations() ([]*entity.Localization, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, country_id, city FROM localizations ORDER BY city`)
	if err != nil {
		return nil, fmt.Errorf("list localizations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Localization
	for rows.Next() {
		var l entity.Localization
		if err := rows.Scan(&l.ID, &l.CountryID, &l.City); err != nil {
			return nil, fmt.Errorf("scan localization: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// ListContracts lista todos los tipos de contrato.
func (r *CatalogRepo) ListContracts() ([]*entity.Contract, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, type FROM contracts ORDER BY type`)
	if err != nil {
		return nil, fmt.Errorf("list contracts: %w", err)
	}
	defer rows.Close()
	var list []*entity.Contract
	for rows.Next() {
		var c entity.Contract
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// ListRequirements lista todos los requisitos.
func (r *CatalogRepo) ListRequirements() ([]*entity.Requirement, error) {
	rows, err := r.q.Query(context.Background(), `SELECT id, name FROM requirements ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list requirements: %w", err)
	}
	defer rows.Close()
	var list []*entity.Requirement
	for rows.Next() {
		var rq entity.Requirement
		if err := rows.Scan(&rq.ID, &rq.Name); err != nil {
			return nil, fmt.Errorf("scan requirement: %w", err)
		}
		list = append(list, &rq)
	}
	return list, rows.Err()
}

// GetPosition obtiene una posición por ID.
func (r *CatalogRepo) GetPosition(id string) (*entity.Position, error) {
	var p entity.Position
	err := r.q.QueryRow(context.Background(), `SELECT id, name FROM positions WHERE id = $1`, id).
		Scan(&p.ID, &p.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get position: %w", err)
	}
	return &p, nil
}

// GetLevel obtiene un nivel por ID.
func (r *CatalogRepo) GetLevel(id string) (*entity.Level, error) {
	var l entity.Level
	err := r.q.QueryRow(context.Background(), `SELECT id, name FROM levels WHERE id = $1`, id).
		Scan(&l.ID, &l.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get level: %w", err)
	}
	return &l, nil
}

// GetLocalization obtiene una localización por ID.
func (r *CatalogRepo) GetLocalization(id string) (*entity.Localization, error) {
	var l entity.Localization
	err := r.q.QueryRow(context.Background(), `SELECT id, country_id, city FROM localizations WHERE id = $1`, id).
		Scan(&l.ID, &l.CountryID, &l.City)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get localization: %w", err)
	}
	return &l, nil
}

// GetContractsByIDs obtiene los contratos con los IDs dados, en el orden de entrada.
// Los IDs que no existen simplemente no aparecen en el resultado.
func (r *CatalogRepo) GetContractsByIDs(ids []string) ([]*entity.Contract, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.q.Query(context.Background(),
		`SELECT id, type FROM contracts WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get contracts by ids: %w", err)
	}
	defer rows.Close()
	byID := make(map[string]*entity.Contract, len(ids))
	for rows.Next() {
		var c entity.Contract
		if err := rows.Scan(&c.ID, &c.Type); err != nil {
			return nil, fmt.Errorf("scan contract: %w", err)
		}
		byID[c.ID] = &c
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	var list []*entity.Contract
	for _, id := range ids {
		if c, ok := byID[id]; ok {
			list = append(list, c)
		}
	}
	return list, nil
}

// GetRequirementsByIDs obtiene los requisitos con los IDs dados, en el orden de entrada.
// Los IDs que no existen simplemente no aparecen en el resultado.
func (r *CatalogRepo) GetRequirementsByIDs(ids []string) ([]*entity.Requirement, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := r.q.Query(context.Background(),
		`SELECT id, name FROM requirements WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get requirements by ids: %w", err)
	}
	defer rows.Close()
	byID := make(map[string]*entity.Requirement, len(ids))
	for rows.Next() {
		var rq entity.Requirement
		if err := rows.Scan(&rq.ID, &rq.Name); err != nil {
			return nil, fmt.Errorf("scan requirement: %w", err)
		}
		byID[rq.ID] = &rq
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	var list []*entity.Requirement
	for _, id := range ids {
		if rq, ok := byID[id]; ok {
			list = append(list, rq)
		}
	}
	return list, nil
}
