// Package dashboard contiene el caso de uso del resumen de la página inicial.
package dashboard

import (
	"context"
	"fmt"

	"github.com/tu-usuario/mes-api/internal/application/dto"
	"github.com/tu-usuario/mes-api/internal/domain/entity"
	"github.com/tu-usuario/mes-api/internal/domain/repository"
)

// DashboardUseCase arma el resumen global: conteos de usuarios y entregas.
//
// Fuente de datos: DashboardRepository (consultas read-only).
// No accede directamente a las tablas; delega todo en el repositorio.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// GetSummary lanza los cinco conteos en paralelo y arma el SummaryResponse.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.SummaryResponse, error) {
	type countResult struct {
		n   int64
		err error
	}

	usersCh := make(chan countResult, 1)
	adminsCh := make(chan countResult, 1)
	totalCh := make(chan countResult, 1)
	onTimeCh := make(chan countResult, 1)
	delayedCh := make(chan countResult, 1)

	go func() {
		n, err := uc.repo.CountUsers(ctx)
		usersCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountAdmins(ctx)
		adminsCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountDeliveries(ctx)
		totalCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountDeliveriesByStatus(ctx, entity.ArriveOnTime)
		onTimeCh <- countResult{n, err}
	}()
	go func() {
		n, err := uc.repo.CountDeliveriesByStatus(ctx, entity.ArriveDelayed)
		delayedCh <- countResult{n, err}
	}()

	users := <-usersCh
	admins := <-adminsCh
	total := <-totalCh
	onTime := <-onTimeCh
	delayed := <-delayedCh

	if users.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de usuarios: %w", users.err)
	}
	if admins.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de admins: %w", admins.err)
	}
	if total.err != nil {
		return nil, fmt.Errorf("dashboard: conteo de entregas: %w", total.err)
	}
	if onTime.err != nil {
		return nil, fmt.Errorf("dashboard: entregas a tiempo: %w", onTime.err)
	}
	if delayed.err != nil {
		return nil, fmt.Errorf("dashboard: entregas retrasadas: %w", delayed.err)
	}

	return &dto.SummaryResponse{
		TotalUsers:        users.n,
		AdminUsers:        admins.n,
		TotalDeliveries:   total.n,
		OnTimeDeliveries:  onTime.n,
		DelayedDeliveries: delayed.n,
	}, nil
}
