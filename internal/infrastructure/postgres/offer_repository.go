package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DEENUU1/Jobs-portal/internal/domain/entity"
	"github.com/DEENUU1/Jobs-portal/internal/domain/repository"
)

var _ repository.OfferRepository = (*OfferRepo)(nil)

const offerColumns = `o.id, o.company_id, o.name, o.description, o.position_id, o.level_id, o.localization_id, o.address, o.salary_from, o.salary_to, o.remote, o.created_at`

// OfferRepo implementación del puerto OfferRepository sobre PostgreSQL.
// Usa el pool directamente porque Create, Update y Delete tocan las tablas
// de enlace de contratos y requisitos dentro de una transacción.
type OfferRepo struct {
	pool *pgxpool.Pool
}

// NewOfferRepository construye el adaptador de persistencia para ofertas.
func NewOfferRepository(pool *pgxpool.Pool) *OfferRepo {
	return &OfferRepo{pool: pool}
}

// Create persiste una nueva oferta junto con sus contratos y requisitos.
func (r *OfferRepo) Create(offer *entity.Offer) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO offers (id, company_id, name, description, position_id, level_id, localization_id, address, salary_from, salary_to, remote, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err = tx.Exec(ctx, query,
		offer.ID, offer.CompanyID, offer.Name, offer.Description, offer.PositionID,
		offer.LevelID, offer.LocalizationID, offer.Address, offer.SalaryFrom, offer.SalaryTo,
		offer.Remote, offer.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert offer: %w", err)
	}
	if err := insertOfferRefs(ctx, tx, offer); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una oferta por ID con sus contratos y requisitos.
func (r *OfferRepo) GetByID(id string) (*entity.Offer, error) {
	return r.getOne(`SELECT `+offerColumns+` FROM offers o WHERE o.id = $1`, id)
}

// GetByIDAndCompany devuelve nil si la oferta no existe o no pertenece a la empresa.
func (r *OfferRepo) GetByIDAndCompany(id, companyID string) (*entity.Offer, error) {
	return r.getOne(`SELECT `+offerColumns+` FROM offers o WHERE o.id = $1 AND o.company_id = $2`, id, companyID)
}

func (r *OfferRepo) getOne(query string, args ...any) (*entity.Offer, error) {
	var o entity.Offer
	err := r.pool.QueryRow(context.Background(), query, args...).Scan(
		&o.ID, &o.CompanyID, &o.Name, &o.Description, &o.PositionID, &o.LevelID,
		&o.LocalizationID, &o.Address, &o.SalaryFrom, &o.SalaryTo, &o.Remote, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get offer: %w", err)
	}
	if err := r.loadRefs([]*entity.Offer{&o}); err != nil {
		return nil, err
	}
	return &o, nil
}

// Update escribe solo si la oferta pertenece a offer.CompanyID y reemplaza
// los contratos y requisitos asociados.
func (r *OfferRepo) Update(offer *entity.Offer) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		UPDATE offers SET name = $3, description = $4, position_id = $5, level_id = $6,
			localization_id = $7, address = $8, salary_from = $9, salary_to = $10, remote = $11
		WHERE id = $1 AND company_id = $2`
	cmd, err := tx.Exec(ctx, query,
		offer.ID, offer.CompanyID, offer.Name, offer.Description, offer.PositionID,
		offer.LevelID, offer.LocalizationID, offer.Address, offer.SalaryFrom, offer.SalaryTo,
		offer.Remote,
	)
	if err != nil {
		return fmt.Errorf("update offer: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return nil
	}
	if _, err := tx.Exec(ctx, `DELETE FROM offer_contracts WHERE offer_id = $1`, offer.ID); err != nil {
		return fmt.Errorf("delete offer contracts: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM offer_requirements WHERE offer_id = $1`, offer.ID); err != nil {
		return fmt.Errorf("delete offer requirements: %w", err)
	}
	if err := insertOfferRefs(ctx, tx, offer); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Delete elimina la oferta de la empresa junto con sus postulaciones,
// contratos y requisitos asociados.
func (r *OfferRepo) Delete(id, companyID string) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`DELETE FROM applications WHERE offer_id IN (SELECT id FROM offers WHERE id = $1 AND company_id = $2)`,
		id, companyID,
	); err != nil {
		return fmt.Errorf("delete offer applications: %w", err)
	}
	if _, err := tx.Exec(ctx,
		`DELETE FROM offer_contracts WHERE offer_id IN (SELECT id FROM offers WHERE id = $1 AND company_id = $2)`,
		id, companyID,
	); err != nil {
		return fmt.Errorf("delete offer contracts: %w", err)
	}
	if _, err := tx.Exec(ctx,
		`DELETE FROM offer_requirements WHERE offer_id IN (SELECT id FROM offers WHERE id = $1 AND company_id = $2)`,
		id, companyID,
	); err != nil {
		return fmt.Errorf("delete offer requirements: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM offers WHERE id = $1 AND company_id = $2`, id, companyID); err != nil {
		return fmt.Errorf("delete offer: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// List lista ofertas aplicando los predicados presentes del filtro.
func (r *OfferRepo) List(filter repository.OfferFilter) ([]*entity.Offer, error) {
	var conds []string
	var args []any

	addArg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Name != "" {
		conds = append(conds, fmt.Sprintf("o.name ILIKE '%%' || %s || '%%'", addArg(filter.Name)))
	}
	if filter.Remote != nil {
		conds = append(conds, fmt.Sprintf("o.remote = %s", addArg(*filter.Remote)))
	}
	if len(filter.PositionIDs) > 0 {
		conds = append(conds, fmt.Sprintf("o.position_id = ANY(%s)", addArg(filter.PositionIDs)))
	}
	if filter.LevelID != "" {
		conds = append(conds, fmt.Sprintf("o.level_id = %s", addArg(filter.LevelID)))
	}
	if filter.LocalizationID != "" {
		conds = append(conds, fmt.Sprintf("o.localization_id = %s", addArg(filter.LocalizationID)))
	}
	if filter.ContractID != "" {
		conds = append(conds, fmt.Sprintf(
			"EXISTS (SELECT 1 FROM offer_contracts oc WHERE oc.offer_id = o.id AND oc.contract_id = %s)",
			addArg(filter.ContractID),
		))
	}

	query := `SELECT ` + offerColumns + ` FROM offers o`
	if len(conds) > 0 {
		query += ` WHERE ` + strings.Join(conds, " AND ")
	}
	switch filter.OrderBy {
	case repository.OrderCreatedAtAsc:
		query += ` ORDER BY o.created_at ASC`
	default:
		query += ` ORDER BY o.created_at DESC`
	}
	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %s OFFSET %s", addArg(filter.Limit), addArg(filter.Offset))
	}

	return r.list(query, args...)
}

// ListByCompany lista todas las ofertas de una empresa (panel de la empresa).
func (r *OfferRepo) ListByCompany(companyID string) ([]*entity.Offer, error) {
	query := `SELECT ` + offerColumns + ` FROM offers o WHERE o.company_id = $1 ORDER BY o.created_at DESC`
	return r.list(query, companyID)
}

func (r *OfferRepo) list(query string, args ...any) ([]*entity.Offer, error) {
	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Offer
	for rows.Next() {
		var o entity.Offer
		if err := rows.Scan(&o.ID, &o.CompanyID, &o.Name, &o.Description, &o.PositionID, &o.LevelID,
			&o.LocalizationID, &o.Address, &o.SalaryFrom, &o.SalaryTo, &o.Remote, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if err := r.loadRefs(list); err != nil {
		return nil, err
	}
	return list, nil
}

// loadRefs carga en lote los contratos y requisitos de las ofertas dadas.
func (r *OfferRepo) loadRefs(offers []*entity.Offer) error {
	if len(offers) == 0 {
		return nil
	}
	byID := make(map[string]*entity.Offer, len(offers))
	ids := make([]string, 0, len(offers))
	for _, o := range offers {
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	ctx := context.Background()
	rows, err := r.pool.Query(ctx,
		`SELECT offer_id, contract_id FROM offer_contracts WHERE offer_id = ANY($1) ORDER BY contract_id`, ids)
	if err != nil {
		return fmt.Errorf("load offer contracts: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var offerID, contractID string
		if err := rows.Scan(&offerID, &contractID); err != nil {
			return fmt.Errorf("scan offer contract: %w", err)
		}
		if o := byID[offerID]; o != nil {
			o.ContractIDs = append(o.ContractIDs, contractID)
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}

	rows, err = r.pool.Query(ctx,
		`SELECT offer_id, requirement_id FROM offer_requirements WHERE offer_id = ANY($1) ORDER BY requirement_id`, ids)
	if err != nil {
		return fmt.Errorf("load offer requirements: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var offerID, requirementID string
		if err := rows.Scan(&offerID, &requirementID); err != nil {
			return fmt.Errorf("scan offer requirement: %w", err)
		}
		if o := byID[offerID]; o != nil {
			o.RequirementIDs = append(o.RequirementIDs, requirementID)
		}
	}
	return rows.Err()
}

func insertOfferRefs(ctx context.Context, tx pgx.Tx, offer *entity.Offer) error {
	for _, contractID := range offer.ContractIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO offer_contracts (offer_id, contract_id) VALUES ($1, $2)`,
			offer.ID, contractID,
		); err != nil {
			return fmt.Errorf("insert offer contract: %w", err)
		}
	}
	for _, requirementID := range offer.RequirementIDs {
		if _, err := tx.Exec(ctx,
			`INSERT INTO offer_requirements (offer_id, requirement_id) VALUES ($1, $2)`,
			offer.ID, requirementID,
		); err != nil {
			return fmt.Errorf("insert offer requirement: %w", err)
		}
	}
	return nil
}
