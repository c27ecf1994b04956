package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/mes-api/internal/domain/entity"
	"github.com/tu-usuario/mes-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para el resumen del dashboard.
type DashboardRepo struct {
	pool *pgxpool.Pool
}

// NewDashboardRepository construye el adaptador de conteos.
func NewDashboardRepository(pool *pgxpool.Pool) *DashboardRepo {
	return &DashboardRepo{pool: pool}
}

// CountUsers total de usuarios registrados.
func (r *DashboardRepo) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`)
}

// CountAdmins total de usuarios con is_admin.
func (r *DashboardRepo) CountAdmins(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users WHERE is_admin`)
}

// CountDeliveries total de registros de entrega.
func (r *DashboardRepo) CountDeliveries(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM delivery_overviews`)
}

// CountDeliveriesByStatus entregas con el estado de llegada dado.
func (r *DashboardRepo) CountDeliveriesByStatus(ctx context.Context, status entity.ArriveStatus) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM delivery_overviews WHERE arrive_status = $1`, status.String(),
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count deliveries by status: %w", err)
	}
	return n, nil
}

func (r *DashboardRepo) count(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}
