package entity

import "time"

// Roles válidos para Account. El rol se fija al crear la cuenta y no cambia.
const (
	RoleUser    = "user"
	RoleCompany = "company"
)

// Account representa una cuenta del portal: candidato (user) o empresa (company).
// Las cuentas se crean inactivas y se activan con un token enviado por correo.
type Account struct {
	ID           string
	Username     string // único
	Email        string // único
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // user, company
	IsActive     bool
	FirstName    string // vacío siempre que Role == company
	LastName     string // vacío siempre que Role == company
	PhoneNumber  string
	Description  string
	AvatarRef    string // referencia a la imagen de perfil; el almacenamiento es externo
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Normalize fuerza las invariantes de la cuenta antes de cada escritura:
// las empresas no tienen nombre ni apellido.
func (a *Account) Normalize() {
	if a.Role == RoleCompany {
		a.FirstName = ""
		a.LastName = ""
	}
}

// IsCompany indica si la cuenta tiene rol company.
func (a *Account) IsCompany() bool {
	return a.Role == RoleCompany
}
