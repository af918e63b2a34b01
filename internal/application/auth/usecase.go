package auth

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/DEENUU1/Jobs-portal/internal/application/dto"
	"github.com/DEENUU1/Jobs-portal/internal/application/ports"
	"github.com/DEENUU1/Jobs-portal/internal/domain"
	"github.com/DEENUU1/Jobs-portal/internal/domain/entity"
	"github.com/DEENUU1/Jobs-portal/internal/domain/repository"
	"github.com/DEENUU1/Jobs-portal/pkg/jwt"
	"github.com/DEENUU1/Jobs-portal/pkg/logger"
	"github.com/DEENUU1/Jobs-portal/pkg/token"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de identidad: registro con activación por correo,
// login, cambio de contraseña y perfil.
type AuthUseCase struct {
	accounts   repository.AccountRepository
	dispatcher ports.Dispatcher
	tokens     *token.Generator
	jwtCfg     JWTConfig
	baseURL    string
	log        *logger.Logger
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(accounts repository.AccountRepository, dispatcher ports.Dispatcher, tokens *token.Generator, jwtCfg JWTConfig, baseURL string, log *logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		accounts:   accounts,
		dispatcher: dispatcher,
		tokens:     tokens,
		jwtCfg:     jwtCfg,
		baseURL:    baseURL,
		log:        log,
	}
}

// Register crea una cuenta inactiva y encola el correo de activación.
// Devuelve ErrEmailAlreadyExists o ErrUsernameTaken en caso de duplicado.
// Un fallo al encolar el correo no revierte el registro: se registra y se sigue.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AccountResponse, error) {
	if in.Role != entity.RoleUser && in.Role != entity.RoleCompany {
		return nil, domain.ErrInvalidInput
	}
	if existing, _ := uc.accounts.GetByEmail(in.Email); existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if existing, _ := uc.accounts.GetByUsername(in.Username); existing != nil {
		return nil, domain.ErrUsernameTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	account := &entity.Account{
		ID:           uuid.New().String(),
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		IsActive:     false,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	account.Normalize()
	if err := uc.accounts.Create(account); err != nil {
		return nil, err
	}

	activation := uc.tokens.Issue(account.ID, account.PasswordHash, account.IsActive, now)
	link := fmt.Sprintf("%s/api/auth/activate/%s/%s", uc.baseURL, account.ID, activation)
	if _, err := uc.dispatcher.EnqueueEmail(ports.EmailJob{
		To:      account.Email,
		Subject: "Activate your account",
		Body:    fmt.Sprintf("Hi %s,\n\nConfirm your registration by visiting the link below:\n%s\n", account.Username, link),
	}); err != nil {
		uc.log.Error().Err(err).Str("account_id", account.ID).Msg("no se pudo encolar el correo de activación")
	}

	return toAccountResponse(account), nil
}

// Activate valida el token de activación y marca la cuenta como activa.
// Una cuenta ya activa invalida el token (el estado firmado cambió).
func (uc *AuthUseCase) Activate(accountID, activationToken string) error {
	account, err := uc.accounts.GetByID(accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrNotFound
	}
	if !uc.tokens.Verify(account.ID, account.PasswordHash, account.IsActive, activationToken, time.Now()) {
		return domain.ErrInvalidInput
	}
	return uc.accounts.SetActive(account.ID, true)
}

// Login verifica email/password, exige cuenta activa y genera el JWT de sesión.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	account, err := uc.accounts.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !account.IsActive {
		return nil, domain.ErrForbidden
	}
	tok, err := jwt.Generate(uc.jwtCfg.Secret, account.ID, account.Email, account.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   tok,
		Account: *toAccountResponse(account),
	}, nil
}

// ChangePassword valida la contraseña anterior y guarda la nueva.
func (uc *AuthUseCase) ChangePassword(in dto.ChangePasswordRequest) error {
	account, err := uc.accounts.GetByEmail(in.Email)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.OldPassword)); err != nil {
		return domain.ErrUnauthorized
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return uc.accounts.UpdatePassword(account.ID, string(hash))
}

// GetAccount devuelve una cuenta por id.
func (uc *AuthUseCase) GetAccount(id string) (*dto.AccountResponse, error) {
	account, err := uc.accounts.GetByID(id)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	return toAccountResponse(account), nil
}

// UpdateProfile actualiza el perfil de la cuenta autenticada. El rol es
// inmutable y la invariante company-sin-nombres se aplica en cada escritura.
func (uc *AuthUseCase) UpdateProfile(callerID string, in dto.UpdateProfileRequest) (*dto.AccountResponse, error) {
	account, err := uc.accounts.GetByID(callerID)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, domain.ErrNotFound
	}
	if in.Email != nil && *in.Email != account.Email {
		if existing, _ := uc.accounts.GetByEmail(*in.Email); existing != nil {
			return nil, domain.ErrEmailAlreadyExists
		}
		account.Email = *in.Email
	}
	if in.Username != nil && *in.Username != account.Username {
		if existing, _ := uc.accounts.GetByUsername(*in.Username); existing != nil {
			return nil, domain.ErrUsernameTaken
		}
		account.Username = *in.Username
	}
	if in.FirstName != nil {
		account.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		account.LastName = *in.LastName
	}
	if in.PhoneNumber != nil {
		account.PhoneNumber = *in.PhoneNumber
	}
	if in.Description != nil {
		account.Description = *in.Description
	}
	if in.AvatarRef != nil {
		account.AvatarRef = *in.AvatarRef
	}
	account.UpdatedAt = time.Now()
	account.Normalize()
	if err := uc.accounts.Update(account); err != nil {
		return nil, err
	}
	return toAccountResponse(account), nil
}

func toAccountResponse(a *entity.Account) *dto.AccountResponse {
	if a == nil {
		return nil
	}
	return &dto.AccountResponse{
		ID:          a.ID,
		Username:    a.Username,
		Email:       a.Email,
		Role:        a.Role,
		IsActive:    a.IsActive,
		FirstName:   a.FirstName,
		LastName:    a.LastName,
		PhoneNumber: a.PhoneNumber,
		Description: a.Description,
		AvatarRef:   a.AvatarRef,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}
