package repository

import (
	"context"

	"github.com/tu-usuario/mes-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los lookups devuelven (nil, nil) cuando no hay fila.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByUsernameAndFactory(ctx context.Context, username string, factory entity.Factory) (*entity.User, error)
	// GetByUsername busca solo por username, sin discriminar fábrica.
	// Lo usa el gate de admin; si un username se repite entre fábricas,
	// devuelve la primera coincidencia.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
}
