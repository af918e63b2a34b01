package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/DEENUU1/Jobs-portal/internal/domain"
	"github.com/DEENUU1/Jobs-portal/internal/domain/entity"
	"github.com/DEENUU1/Jobs-portal/internal/domain/repository"
)

var _ repository.AccountRepository = (*AccountRepo)(nil)

const accountColumns = `id, username, email, password_hash, role, is_active, first_name, last_name, phone_number, description, avatar_ref, created_at, updated_at`

// AccountRepo implementación del puerto AccountRepository sobre PostgreSQL (usable con pool o tx).
type AccountRepo struct {
	q Querier
}

// NewAccountRepository construye el adaptador de persistencia para cuentas. Pasar pool o tx (Querier).
func NewAccountRepository(q Querier) *AccountRepo {
	return &AccountRepo{q: q}
}

// Create persiste una nueva cuenta. Email y username tienen constraint único;
// la violación se distingue por el nombre del constraint.
func (r *AccountRepo) Create(account *entity.Account) error {
	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.Username, account.Email, account.PasswordHash, account.Role,
		account.IsActive, account.FirstName, account.LastName, account.PhoneNumber,
		account.Description, account.AvatarRef, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uniqueAccountError(err)
		}
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID obtiene una cuenta por ID.
func (r *AccountRepo) GetByID(id string) (*entity.Account, error) {
	return r.getOne(`SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)
}

// GetByEmail obtiene una cuenta por email.
func (r *AccountRepo) GetByEmail(email string) (*entity.Account, error) {
	return r.getOne(`SELECT `+accountColumns+` FROM accounts WHERE email = $1`, email)
}

// GetByUsername obtiene una cuenta por username.
func (r *AccountRepo) GetByUsername(username string) (*entity.Account, error) {
	return r.getOne(`SELECT `+accountColumns+` FROM accounts WHERE username = $1`, username)
}

func (r *AccountRepo) getOne(query string, arg any) (*entity.Account, error) {
	var a entity.Account
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.Role, &a.IsActive,
		&a.FirstName, &a.LastName, &a.PhoneNumber, &a.Description, &a.AvatarRef,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return &a, nil
}

// Update actualiza el perfil de una cuenta. El rol y el hash de contraseña no se tocan aquí.
func (r *AccountRepo) Update(account *entity.Account) error {
	query := `
		UPDATE accounts SET username = $2, email = $3, first_name = $4, last_name = $5,
			phone_number = $6, description = $7, avatar_ref = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		account.ID, account.Username, account.Email, account.FirstName, account.LastName,
		account.PhoneNumber, account.Description, account.AvatarRef, account.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return uniqueAccountError(err)
		}
		return fmt.Errorf("update account: %w", err)
	}
	return nil
}

// SetActive cambia el estado de activación de la cuenta.
func (r *AccountRepo) SetActive(id string, active bool) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE accounts SET is_active = $2, updated_at = now() WHERE id = $1`,
		id, active,
	)
	if err != nil {
		return fmt.Errorf("set account active: %w", err)
	}
	return nil
}

// UpdatePassword actualiza solo el hash de contraseña.
func (r *AccountRepo) UpdatePassword(id, passwordHash string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE accounts SET password_hash = $2, updated_at = now() WHERE id = $1`,
		id, passwordHash,
	)
	if err != nil {
		return fmt.Errorf("update account password: %w", err)
	}
	return nil
}

// ListCompanies lista cuentas con rol company con paginación.
func (r *AccountRepo) ListCompanies(limit, offset int) ([]*entity.Account, error) {
	query := `
		SELECT ` + accountColumns + `
		FROM accounts WHERE role = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, entity.RoleCompany, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Account
	for rows.Next() {
		var a entity.Account
		if err := rows.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.Role, &a.IsActive,
			&a.FirstName, &a.LastName, &a.PhoneNumber, &a.Description, &a.AvatarRef,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		list = append(list, &a)
	}
	return list, rows.Err()
}

// uniqueAccountError mapea una violación de unicidad al sentinel según el constraint afectado.
func uniqueAccountError(err error) error {
	if containsConstraint(err, "username") {
		return domain.ErrUsernameTaken
	}
	return domain.ErrEmailAlreadyExists
}
