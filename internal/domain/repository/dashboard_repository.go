package repository

import (
	"context"

	"github.com/tu-usuario/mes-api/internal/domain/entity"
)

// DashboardRepository consultas read-only para el resumen del dashboard.
type DashboardRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountAdmins(ctx context.Context) (int64, error)
	CountDeliveries(ctx context.Context) (int64, error)
	CountDeliveriesByStatus(ctx context.Context, status entity.ArriveStatus) (int64, error)
}
