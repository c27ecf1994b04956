package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/mes-api/internal/application/dto"
	"github.com/tu-usuario/mes-api/internal/domain"
	"github.com/tu-usuario/mes-api/internal/domain/entity"
	"github.com/tu-usuario/mes-api/internal/domain/repository"
	"github.com/tu-usuario/mes-api/pkg/jwt"
)

const maxUsernameLen = 50

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret   string
	ExpHours int
	Issuer   string
	Audience string
}

// AuthUseCase casos de uso de autenticación: login, registro, import masivo
// y consultas de usuarios.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica (username, factory, password) y emite el token de sesión.
// Cualquier causa de fallo (usuario inexistente, contraseña mala, fábrica
// desconocida) devuelve el mismo domain.ErrUnauthorized: el llamador nunca
// sabe cuál de los factores falló.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	factory, err := entity.ParseFactory(in.Factory)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByUsernameAndFactory(ctx, in.Username, factory)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, expiresAt, err := uc.GenerateToken(user.Username, user.Factory)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     token,
		Username:  user.Username,
		Factory:   user.Factory.String(),
		ExpiresAt: expiresAt,
		IsAdmin:   user.IsAdmin,
	}, nil
}

// GenerateToken emite el bearer token firmado para (username, factory).
// Cada llamada produce jti e iat frescos; los claims parseados son siempre
// los mismos para las mismas entradas.
func (uc *AuthUseCase) GenerateToken(username string, factory entity.Factory) (string, time.Time, error) {
	return jwt.Generate(uc.jwtCfg.Secret, username, factory.String(),
		uc.jwtCfg.Issuer, uc.jwtCfg.Audience, uc.jwtCfg.ExpHours)
}

// Register crea una cuenta nueva. Devuelve domain.ErrUserAlreadyExists si el
// par (username, factory) ya existe. Con password en blanco se genera una y
// se devuelve una única vez; los usuarios nuevos nunca son admin.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.RegisterResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || len(username) > maxUsernameLen {
		return nil, fmt.Errorf("%w: username requerido (máx. %d caracteres)", domain.ErrInvalidInput, maxUsernameLen)
	}
	factory, err := entity.ParseFactory(in.Factory)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	existing, err := uc.userRepo.GetByUsernameAndFactory(ctx, username, factory)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrUserAlreadyExists
	}

	password := strings.TrimSpace(in.Password)
	generated := ""
	if password == "" {
		generated, err = generatePassword()
		if err != nil {
			return nil, err
		}
		password = generated
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username:     username,
		PasswordHash: string(hash),
		Factory:      factory,
		IsAdmin:      false,
		CreatedAt:    time.Now(),
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return &dto.RegisterResponse{
		Username:          user.Username,
		Factory:           user.Factory.String(),
		GeneratedPassword: generated,
		IsAdmin:           user.IsAdmin,
	}, nil
}

// ImportUsers procesa las filas del RowSource de forma independiente: cada
// fila aplica la misma unicidad y generación de contraseña que Register. Un
// fallo en una fila se registra en su resultado y el lote continúa; no hay
// transacción que envuelva el batch.
func (uc *AuthUseCase) ImportUsers(ctx context.Context, src RowSource) (*dto.ImportUsersResponse, error) {
	out := &dto.ImportUsersResponse{Results: []dto.ImportUserResult{}}
	for {
		row, ok, err := src.Next()
		if !ok {
			break
		}
		if err != nil {
			out.Results = append(out.Results, dto.ImportUserResult{
				Username: row.Username,
				Factory:  row.Factory,
				Error:    err.Error(),
			})
			continue
		}
		res, err := uc.Register(ctx, dto.RegisterRequest{
			Username: row.Username,
			Password: row.Password,
			Factory:  row.Factory,
		})
		if err != nil {
			out.Results = append(out.Results, dto.ImportUserResult{
				Username: row.Username,
				Factory:  row.Factory,
				Error:    err.Error(),
			})
			continue
		}
		out.Results = append(out.Results, dto.ImportUserResult{
			Username:          res.Username,
			Factory:           res.Factory,
			Success:           true,
			GeneratedPassword: res.GeneratedPassword,
		})
	}
	return out, nil
}

// GetUserByUsername busca un usuario por username exacto, sin discriminar
// fábrica. Lo usa el gate de rutas admin. Devuelve (nil, nil) si no existe.
func (uc *AuthUseCase) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	return uc.userRepo.GetByUsername(ctx, username)
}

// GetAllUsers devuelve todos los usuarios con campos no sensibles; el hash
// de contraseña nunca sale del repositorio hacia el wire.
func (uc *AuthUseCase) GetAllUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.UserResponse{
			Username: u.Username,
			Factory:  u.Factory.String(),
			IsAdmin:  u.IsAdmin,
		})
	}
	return out, nil
}
