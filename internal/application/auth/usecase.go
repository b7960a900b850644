package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/sys360/internal/application/dto"
	"github.com/jhoicas/sys360/internal/domain"
	"github.com/jhoicas/sys360/internal/domain/entity"
	"github.com/jhoicas/sys360/internal/domain/repository"
	"github.com/jhoicas/sys360/pkg/jwt"
	"github.com/jhoicas/sys360/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// Credenciales del administrador creado en el primer arranque.
const (
	DefaultAdminName     = "Administrador do Sistema"
	DefaultAdminLogin    = "admin"
	DefaultAdminPassword = "admin"
	minPasswordLen       = 4
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación y gestión de usuarios.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	log      *logger.Logger
	cost     int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig, log *logger.Logger) *AuthUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, log: log.Named("auth"), cost: bcrypt.DefaultCost}
}

// WithBcryptCost ajusta el costo de bcrypt (tests usan bcrypt.MinCost).
func (uc *AuthUseCase) WithBcryptCost(cost int) *AuthUseCase {
	uc.cost = cost
	return uc
}

// RegisterUser crea un usuario con password hasheado. Login repetido devuelve ErrDuplicate sin insertar.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterUserRequest) (*dto.UserResponse, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Login = strings.TrimSpace(in.Login)
	if in.Name == "" || in.Login == "" || in.Password == "" || in.Role == "" {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "Todos os campos são obrigatórios")
	}
	if !entity.ValidRole(in.Role) {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "Perfil inválido: %s", in.Role)
	}
	if len(in.Password) < minPasswordLen {
		return nil, domain.NewValidationError(domain.ErrInvalidInput, "A senha deve ter pelo menos %d caracteres", minPasswordLen)
	}
	existing, err := uc.userRepo.GetByLogin(ctx, in.Login)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		return nil, fmt.Errorf("hash de senha: %w", err)
	}
	user := &entity.User{
		Name:         in.Name,
		Login:        in.Login,
		PasswordHash: string(hash),
		Role:         in.Role,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	uc.log.Info().Int64("user_id", user.ID).Str("login", user.Login).Str("role", user.Role).Msg("usuário criado")
	return toUserResponse(user), nil
}

// VerifyLogin valida login/contraseña. Login desconocido y contraseña incorrecta devuelven el mismo ErrUnauthorized.
func (uc *AuthUseCase) VerifyLogin(ctx context.Context, login, password string) (*Session, error) {
	user, err := uc.userRepo.GetByLogin(ctx, strings.TrimSpace(login))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return &Session{UserID: user.ID, Name: user.Name, Login: user.Login, Role: user.Role}, nil
}

// Login verifica credenciales y emite el JWT con los menús del rol.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	sess, err := uc.VerifyLogin(ctx, in.Login, in.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			uc.log.Warn().Str("login", in.Login).Msg("login rejeitado")
		}
		return nil, err
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, jwt.Subject{
		UserID: sess.UserID,
		Name:   sess.Name,
		Login:  sess.Login,
		Role:   sess.Role,
	}, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  dto.UserResponse{ID: sess.UserID, Name: sess.Name, Login: sess.Login, Role: sess.Role},
		Menus: MenusForRole(sess.Role),
	}, nil
}

// ListUsers lista usuarios ordenados por nombre, sin hash.
func (uc *AuthUseCase) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		uc.log.Warn().Err(err).Msg("listar usuários")
		return []dto.UserResponse{}, nil
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, *toUserResponse(u))
	}
	return out, nil
}

// ChangePassword cambia la contraseña del usuario id.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, id int64, password string) error {
	if len(password) < minPasswordLen {
		return domain.NewValidationError(domain.ErrInvalidInput, "A senha deve ter pelo menos %d caracteres", minPasswordLen)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), uc.cost)
	if err != nil {
		return fmt.Errorf("hash de senha: %w", err)
	}
	n, err := uc.userRepo.UpdatePassword(ctx, id, string(hash))
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DeleteUser elimina un usuario. Un admin no puede eliminarse a sí mismo.
func (uc *AuthUseCase) DeleteUser(ctx context.Context, sess Session, id int64) error {
	if sess.UserID == id {
		return domain.NewValidationError(domain.ErrConflict, "Não é possível excluir o próprio usuário")
	}
	n, err := uc.userRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// EnsureDefaultAdmin crea admin/admin si el login no existe. Devuelve true si lo creó.
func (uc *AuthUseCase) EnsureDefaultAdmin(ctx context.Context) (bool, error) {
	existing, err := uc.userRepo.GetByLogin(ctx, DefaultAdminLogin)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, nil
	}
	_, err = uc.RegisterUser(ctx, dto.RegisterUserRequest{
		Name:     DefaultAdminName,
		Login:    DefaultAdminLogin,
		Password: DefaultAdminPassword,
		Role:     entity.RoleAdmin,
	})
	if err != nil {
		return false, err
	}
	uc.log.Warn().Msg("usuário admin padrão criado; altere a senha")
	return true, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{ID: u.ID, Name: u.Name, Login: u.Login, Role: u.Role}
}
