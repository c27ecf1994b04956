package delivery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/tu-usuario/mes-api/internal/application/dto"
	"github.com/tu-usuario/mes-api/internal/domain"
	"github.com/tu-usuario/mes-api/internal/domain/entity"
	"github.com/tu-usuario/mes-api/internal/domain/repository"
)

const (
	maxBlNoLen     = 50
	maxCustomerLen = 100
	maxStyleLen    = 50
	maxPoNoLen     = 50

	dateLayout = "2006-01-02"
)

// DeliveryUseCase CRUD sobre la tabla de estimación de llegadas a planta.
// El alcance de fábrica sale siempre del claim del token del llamador.
type DeliveryUseCase struct {
	repo repository.DeliveryRepository
	pdf  SheetPDFGenerator
}

// NewDeliveryUseCase construye el caso de uso.
func NewDeliveryUseCase(repo repository.DeliveryRepository, pdf SheetPDFGenerator) *DeliveryUseCase {
	return &DeliveryUseCase{repo: repo, pdf: pdf}
}

// List devuelve los registros ordenados por FtyEta descendente (NULL al
// final), opcionalmente filtrados a una fábrica.
func (uc *DeliveryUseCase) List(ctx context.Context, factory *entity.Factory) ([]dto.DeliveryResponse, error) {
	list, err := uc.repo.List(ctx, factory)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DeliveryResponse, 0, len(list))
	for _, d := range list {
		out = append(out, *toDeliveryResponse(d))
	}
	return out, nil
}

// GetByID devuelve un registro o domain.ErrNotFound.
func (uc *DeliveryUseCase) GetByID(ctx context.Context, id int64) (*dto.DeliveryResponse, error) {
	d, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrNotFound
	}
	return toDeliveryResponse(d), nil
}

// Create crea un registro. La fábrica se estampa desde el claim del llamador;
// cualquier valor de fábrica del body se ignora.
func (uc *DeliveryUseCase) Create(ctx context.Context, in dto.CreateDeliveryRequest, callerFactory entity.Factory) (*dto.DeliveryResponse, error) {
	fields, err := parseFields(in)
	if err != nil {
		return nil, err
	}
	d := fields
	d.Factory = callerFactory
	if err := uc.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return toDeliveryResponse(d), nil
}

// Update reemplaza todos los campos mutables; la fábrica del registro nunca
// cambia. Devuelve domain.ErrNotFound si el id no existe.
func (uc *DeliveryUseCase) Update(ctx context.Context, id int64, in dto.CreateDeliveryRequest) (*dto.DeliveryResponse, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrNotFound
	}
	fields, err := parseFields(in)
	if err != nil {
		return nil, err
	}
	fields.ID = existing.ID
	fields.Factory = existing.Factory
	if err := uc.repo.Update(ctx, fields); err != nil {
		return nil, err
	}
	return toDeliveryResponse(fields), nil
}

// Delete elimina físicamente. Un id inexistente devuelve false, no un error.
func (uc *DeliveryUseCase) Delete(ctx context.Context, id int64) (bool, error) {
	return uc.repo.Delete(ctx, id)
}

// ExportPDF renderiza la tabla actual (con el mismo orden y filtro que List)
// como hoja imprimible.
func (uc *DeliveryUseCase) ExportPDF(ctx context.Context, factory *entity.Factory) ([]byte, error) {
	list, err := uc.repo.List(ctx, factory)
	if err != nil {
		return nil, err
	}
	label := "todas las plantas"
	if factory != nil {
		label = factory.String()
	}
	return uc.pdf.GenerateDeliverySheet(ctx, label, list)
}

// parseFields valida el request y lo convierte a entidad (sin ID ni Factory).
func parseFields(in dto.CreateDeliveryRequest) (*entity.DeliveryOverview, error) {
	blNo := strings.TrimSpace(in.BlNo)
	if blNo == "" || len(blNo) > maxBlNoLen {
		return nil, fmt.Errorf("%w: blNo requerido (máx. %d caracteres)", domain.ErrInvalidInput, maxBlNoLen)
	}
	customer := strings.TrimSpace(in.Customer)
	if customer == "" || len(customer) > maxCustomerLen {
		return nil, fmt.Errorf("%w: customer requerido (máx. %d caracteres)", domain.ErrInvalidInput, maxCustomerLen)
	}
	if in.Style != nil && len(*in.Style) > maxStyleLen {
		return nil, fmt.Errorf("%w: style supera %d caracteres", domain.ErrInvalidInput, maxStyleLen)
	}
	if in.PoNo != nil && len(*in.PoNo) > maxPoNoLen {
		return nil, fmt.Errorf("%w: poNo supera %d caracteres", domain.ErrInvalidInput, maxPoNoLen)
	}
	status, err := entity.ParseArriveStatus(in.ArriveStatus)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	etd, err := parseDate(in.Etd, "etd")
	if err != nil {
		return nil, err
	}
	eta, err := parseDate(in.Eta, "eta")
	if err != nil {
		return nil, err
	}
	ftyEta, err := parseDate(in.FtyEta, "ftyEta")
	if err != nil {
		return nil, err
	}
	return &entity.DeliveryOverview{
		BlNo:         blNo,
		Customer:     customer,
		Style:        in.Style,
		PoNo:         in.PoNo,
		Rolls:        in.Rolls,
		Etd:          etd,
		Eta:          eta,
		FtyEta:       ftyEta,
		ArriveStatus: status,
	}, nil
}

func parseDate(s *string, field string) (*time.Time, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, strings.TrimSpace(*s))
	if err != nil {
		return nil, fmt.Errorf("%w: %s debe ser YYYY-MM-DD", domain.ErrInvalidInput, field)
	}
	return &t, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func toDeliveryResponse(d *entity.DeliveryOverview) *dto.DeliveryResponse {
	if d == nil {
		return nil
	}
	return &dto.DeliveryResponse{
		ID:           d.ID,
		BlNo:         d.BlNo,
		Customer:     d.Customer,
		Style:        d.Style,
		PoNo:         d.PoNo,
		Rolls:        d.Rolls,
		Etd:          formatDate(d.Etd),
		Eta:          formatDate(d.Eta),
		FtyEta:       formatDate(d.FtyEta),
		ArriveStatus: d.ArriveStatus.String(),
		Factory:      d.Factory.String(),
	}
}
