package auth

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/almacen-api/internal/application/audit"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	pkgjwt "github.com/jhoicas/almacen-api/pkg/jwt"
)

// JWTConfig parámetros de emisión de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registra usuarios y emite tokens de acceso.
type AuthUseCase struct {
	users       repository.UserRepository
	departments repository.DepartmentRepository
	recorder    *audit.Recorder
	jwtCfg      JWTConfig
}

// NewAuthUseCase construye el caso de uso de autenticación.
func NewAuthUseCase(
	users repository.UserRepository,
	departments repository.DepartmentRepository,
	recorder *audit.Recorder,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{users: users, departments: departments, recorder: recorder, jwtCfg: jwtCfg}
}

// RegisterInput alta de usuario.
type RegisterInput struct {
	Name         string
	Email        string
	Password     string
	Role         string
	DepartmentID int64
}

// Register crea el usuario con la contraseña hasheada (bcrypt) y devuelve el
// usuario junto con un token recién emitido.
func (uc *AuthUseCase) Register(in RegisterInput, performedBy int64) (*entity.User, string, error) {
	if in.Email == "" {
		return nil, "", &domain.ValidationError{Field: "email", Reason: "requerido"}
	}
	if len(in.Password) < 8 {
		return nil, "", &domain.ValidationError{Field: "password", Reason: "mínimo 8 caracteres"}
	}
	if in.Role != entity.RoleAdmin && in.Role != entity.RoleUser {
		return nil, "", &domain.ValidationError{Field: "role", Reason: "debe ser admin o user"}
	}
	dep, err := uc.departments.GetByID(in.DepartmentID)
	if err != nil {
		return nil, "", err
	}
	if dep == nil {
		return nil, "", &domain.ValidationError{Field: "department_id", Reason: fmt.Sprintf("dependencia %d desconocida", in.DepartmentID)}
	}

	existing, err := uc.users.GetByEmail(in.Email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash de contraseña: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         in.Role,
		DepartmentID: in.DepartmentID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.users.Create(user); err != nil {
		return nil, "", err
	}

	uc.recorder.Record(entity.AuditActionCreate, entity.AuditEntityUser, user.ID, performedBy,
		fmt.Sprintf("usuario %q registrado con rol %s", user.Email, user.Role))

	token, err := pkgjwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, user.DepartmentID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Login valida credenciales y emite un token.
func (uc *AuthUseCase) Login(email, password string) (*entity.User, string, error) {
	user, err := uc.users.GetByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrUnauthorized
	}
	token, err := pkgjwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, user.DepartmentID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}
