package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/mes-api/internal/domain"
	"github.com/tu-usuario/mes-api/internal/domain/entity"
	"github.com/tu-usuario/mes-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL.
// La tabla users lleva UNIQUE (username, factory).
type UserRepo struct {
	pool *pgxpool.Pool
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
func NewUserRepository(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

// Create persiste un nuevo usuario y asigna user.ID.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (username, password_hash, factory, is_admin, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.pool.QueryRow(ctx, query,
		user.Username, user.PasswordHash, user.Factory.String(), user.IsAdmin, user.CreatedAt,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUserAlreadyExists
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByUsernameAndFactory obtiene un usuario por el par único (username, factory).
func (r *UserRepo) GetByUsernameAndFactory(ctx context.Context, username string, factory entity.Factory) (*entity.User, error) {
	query := `
		SELECT id, username, password_hash, factory, is_admin, created_at
		FROM users WHERE username = $1 AND factory = $2`
	return r.scanOne(r.pool.QueryRow(ctx, query, username, factory.String()), "get user by username and factory")
}

// GetByUsername obtiene un usuario por username sin discriminar fábrica
// (primera coincidencia si el nombre se repite entre plantas).
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `
		SELECT id, username, password_hash, factory, is_admin, created_at
		FROM users WHERE username = $1 LIMIT 1`
	return r.scanOne(r.pool.QueryRow(ctx, query, username), "get user by username")
}

// List devuelve todos los usuarios.
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	query := `
		SELECT id, username, password_hash, factory, is_admin, created_at
		FROM users ORDER BY factory, username`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		var factory string
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &factory, &u.IsAdmin, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		u.Factory = entity.Factory(factory)
		list = append(list, &u)
	}
	return list, rows.Err()
}

func (r *UserRepo) scanOne(row pgx.Row, op string) (*entity.User, error) {
	var u entity.User
	var factory string
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &factory, &u.IsAdmin, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	u.Factory = entity.Factory(factory)
	return &u, nil
}
