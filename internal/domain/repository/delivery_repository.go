package repository

import (
	"context"

	"github.com/tu-usuario/mes-api/internal/domain/entity"
)

// DeliveryRepository define el puerto de persistencia para DeliveryOverview.
type DeliveryRepository interface {
	// Create persiste el registro y asigna delivery.ID.
	Create(ctx context.Context, delivery *entity.DeliveryOverview) error
	GetByID(ctx context.Context, id int64) (*entity.DeliveryOverview, error)
	// List devuelve los registros ordenados por FtyEta descendente; los NULL
	// se ordenan como los más antiguos (al final). factory == nil lista todas
	// las plantas.
	List(ctx context.Context, factory *entity.Factory) ([]*entity.DeliveryOverview, error)
	Update(ctx context.Context, delivery *entity.DeliveryOverview) error
	// Delete elimina físicamente. Devuelve false (sin error) si el id no existe.
	Delete(ctx context.Context, id int64) (bool, error)
}
