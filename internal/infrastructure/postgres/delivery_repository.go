package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tu-usuario/mes-api/internal/domain/entity"
	"github.com/tu-usuario/mes-api/internal/domain/repository"
)

var _ repository.DeliveryRepository = (*DeliveryRepo)(nil)

// DeliveryRepo implementación del puerto DeliveryRepository sobre PostgreSQL.
type DeliveryRepo struct {
	pool *pgxpool.Pool
}

// NewDeliveryRepository construye el adaptador de persistencia para entregas.
func NewDeliveryRepository(pool *pgxpool.Pool) *DeliveryRepo {
	return &DeliveryRepo{pool: pool}
}

const deliveryColumns = `id, bl_no, customer, style, po_no, rolls, etd, eta, fty_eta, arrive_status, factory`

// Create persiste un registro y asigna delivery.ID.
func (r *DeliveryRepo) Create(ctx context.Context, d *entity.DeliveryOverview) error {
	query := `
		INSERT INTO delivery_overviews (bl_no, customer, style, po_no, rolls, etd, eta, fty_eta, arrive_status, factory)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.pool.QueryRow(ctx, query,
		d.BlNo, d.Customer, d.Style, d.PoNo, d.Rolls, d.Etd, d.Eta, d.FtyEta,
		d.ArriveStatus.String(), d.Factory.String(),
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("insert delivery: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID; (nil, nil) si no existe.
func (r *DeliveryRepo) GetByID(ctx context.Context, id int64) (*entity.DeliveryOverview, error) {
	query := `SELECT ` + deliveryColumns + ` FROM delivery_overviews WHERE id = $1`
	d, err := scanDelivery(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get delivery by id: %w", err)
	}
	return d, nil
}

// List devuelve los registros ordenados por fty_eta descendente. NULLS LAST:
// las fechas ausentes cuentan como las más antiguas.
func (r *DeliveryRepo) List(ctx context.Context, factory *entity.Factory) ([]*entity.DeliveryOverview, error) {
	query := `SELECT ` + deliveryColumns + ` FROM delivery_overviews`
	args := []interface{}{}
	if factory != nil {
		query += ` WHERE factory = $1`
		args = append(args, factory.String())
	}
	query += ` ORDER BY fty_eta DESC NULLS LAST, id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	defer rows.Close()
	var list []*entity.DeliveryOverview
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("scan delivery: %w", err)
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

// Update reemplaza los campos mutables. La columna factory no aparece en el
// SET: es inmutable desde la creación.
func (r *DeliveryRepo) Update(ctx context.Context, d *entity.DeliveryOverview) error {
	query := `
		UPDATE delivery_overviews
		SET bl_no = $2, customer = $3, style = $4, po_no = $5, rolls = $6,
		    etd = $7, eta = $8, fty_eta = $9, arrive_status = $10
		WHERE id = $1`
	_, err := r.pool.Exec(ctx, query,
		d.ID, d.BlNo, d.Customer, d.Style, d.PoNo, d.Rolls, d.Etd, d.Eta, d.FtyEta,
		d.ArriveStatus.String(),
	)
	if err != nil {
		return fmt.Errorf("update delivery: %w", err)
	}
	return nil
}

// Delete elimina físicamente; devuelve false si el id no existía.
func (r *DeliveryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM delivery_overviews WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete delivery: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanDelivery(row pgx.Row) (*entity.DeliveryOverview, error) {
	var d entity.DeliveryOverview
	var status, factory string
	err := row.Scan(&d.ID, &d.BlNo, &d.Customer, &d.Style, &d.PoNo, &d.Rolls,
		&d.Etd, &d.Eta, &d.FtyEta, &status, &factory)
	if err != nil {
		return nil, err
	}
	d.ArriveStatus = entity.ArriveStatus(status)
	d.Factory = entity.Factory(factory)
	return &d, nil
}
