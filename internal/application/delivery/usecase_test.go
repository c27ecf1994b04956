package delivery_test

import (
	"context"
	"sort"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/mes-api/internal/application/delivery"
	"github.com/tu-usuario/mes-api/internal/application/dto"
	"github.com/tu-usuario/mes-api/internal/domain"
	"github.com/tu-usuario/mes-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

// fakeDeliveryRepo réplica del puerto DeliveryRepository con el mismo orden que
// el adaptador SQL: fty_eta DESC con NULL al final, id como desempate.
type fakeDeliveryRepo struct {
	seq  int64
	rows map[int64]*entity.DeliveryOverview
}

func newFakeDeliveryRepo() *fakeDeliveryRepo {
	return &fakeDeliveryRepo{rows: map[int64]*entity.DeliveryOverview{}}
}

func (f *fakeDeliveryRepo) Create(_ context.Context, d *entity.DeliveryOverview) error {
	f.seq++
	d.ID = f.seq
	cp := *d
	f.rows[d.ID] = &cp
	return nil
}

func (f *fakeDeliveryRepo) GetByID(_ context.Context, id int64) (*entity.DeliveryOverview, error) {
	d, ok := f.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDeliveryRepo) List(_ context.Context, factory *entity.Factory) ([]*entity.DeliveryOverview, error) {
	out := []*entity.DeliveryOverview{}
	for _, d := range f.rows {
		if factory != nil && d.Factory != *factory {
			continue
		}
		cp := *d
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case a.FtyEta == nil && b.FtyEta == nil:
			return a.ID < b.ID
		case a.FtyEta == nil:
			return false
		case b.FtyEta == nil:
			return true
		case !a.FtyEta.Equal(*b.FtyEta):
			return a.FtyEta.After(*b.FtyEta)
		}
		return a.ID < b.ID
	})
	return out, nil
}

func (f *fakeDeliveryRepo) Update(_ context.Context, d *entity.DeliveryOverview) error {
	cp := *d
	f.rows[d.ID] = &cp
	return nil
}

func (f *fakeDeliveryRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.rows[id]; !ok {
		return false, nil
	}
	delete(f.rows, id)
	return true, nil
}

// fakePDF registra la última llamada; el render real vive en infraestructura.
type fakePDF struct {
	label string
	rows  int
}

func (f *fakePDF) GenerateDeliverySheet(_ context.Context, label string, list []*entity.DeliveryOverview) ([]byte, error) {
	f.label = label
	f.rows = len(list)
	return []byte("%PDF-fake"), nil
}

func newUseCase() (*delivery.DeliveryUseCase, *fakeDeliveryRepo, *fakePDF) {
	repo := newFakeDeliveryRepo()
	pdf := &fakePDF{}
	return delivery.NewDeliveryUseCase(repo, pdf), repo, pdf
}

func strPtr(s string) *string { return &s }

func validRequest() dto.CreateDeliveryRequest {
	rolls := decimal.NewFromFloat(120.5)
	return dto.CreateDeliveryRequest{
		BlNo:         "BL-001",
		Customer:     "ACME Textiles",
		Style:        strPtr("ST-9"),
		PoNo:         strPtr("PO-7788"),
		Rolls:        &rolls,
		Etd:          strPtr("2026-08-01"),
		Eta:          strPtr("2026-08-15"),
		FtyEta:       strPtr("2026-08-20"),
		ArriveStatus: "OnTime",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Create / Update
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_EstampaFabricaDelToken_IgnoraElBody(t *testing.T) {
	uc, repo, _ := newUseCase()

	in := validRequest()
	in.Factory = "LR" // el body miente; manda el claim

	out, err := uc.Create(context.Background(), in, entity.FactoryNVN)
	require.NoError(t, err)
	assert.Equal(t, "NVN", out.Factory)
	assert.Equal(t, "BL-001", out.BlNo)
	assert.Equal(t, strPtr("2026-08-20"), out.FtyEta)

	stored, err := repo.GetByID(context.Background(), out.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entity.FactoryNVN, stored.Factory)
}

func TestCreate_Validacion(t *testing.T) {
	uc, _, _ := newUseCase()
	ctx := context.Background()

	in := validRequest()
	in.BlNo = "   "
	_, err := uc.Create(ctx, in, entity.FactoryTPL)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "blNo en blanco")

	in = validRequest()
	in.Customer = ""
	_, err = uc.Create(ctx, in, entity.FactoryTPL)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "customer requerido")

	in = validRequest()
	in.ArriveStatus = "Maybe"
	_, err = uc.Create(ctx, in, entity.FactoryTPL)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "estado de llegada desconocido")

	in = validRequest()
	in.Eta = strPtr("15/08/2026")
	_, err = uc.Create(ctx, in, entity.FactoryTPL)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "fecha fuera de formato YYYY-MM-DD")
}

func TestCreate_FechasOpcionalesEnBlanco(t *testing.T) {
	uc, _, _ := newUseCase()

	in := validRequest()
	in.Etd = nil
	in.Eta = strPtr("  ")
	in.FtyEta = nil

	out, err := uc.Create(context.Background(), in, entity.FactoryTPL)
	require.NoError(t, err)
	assert.Nil(t, out.Etd)
	assert.Nil(t, out.Eta)
	assert.Nil(t, out.FtyEta)
}

func TestUpdate_PreservaFabricaYReemplazaCamposMutables(t *testing.T) {
	uc, _, _ := newUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, validRequest(), entity.FactoryTPL)
	require.NoError(t, err)

	in := validRequest()
	in.Customer = "Nuevo Cliente"
	in.ArriveStatus = "Delayed"
	in.Style = nil // campo opcional se limpia, no se conserva
	in.Factory = "LR"

	out, err := uc.Update(ctx, created.ID, in)
	require.NoError(t, err)
	assert.Equal(t, created.ID, out.ID)
	assert.Equal(t, "TPL", out.Factory, "la fábrica del registro nunca cambia")
	assert.Equal(t, "Nuevo Cliente", out.Customer)
	assert.Equal(t, "Delayed", out.ArriveStatus)
	assert.Nil(t, out.Style)
}

func TestUpdate_IDInexistente(t *testing.T) {
	uc, _, _ := newUseCase()
	_, err := uc.Update(context.Background(), 999, validRequest())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// List / GetByID / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestList_OrdenFtyEtaDescConNullAlFinal(t *testing.T) {
	uc, _, _ := newUseCase()
	ctx := context.Background()

	mk := func(blNo string, ftyEta *string) {
		in := validRequest()
		in.BlNo = blNo
		in.FtyEta = ftyEta
		_, err := uc.Create(ctx, in, entity.FactoryTPL)
		require.NoError(t, err)
	}
	mk("BL-VIEJO", strPtr("2026-07-01"))
	mk("BL-SIN-FECHA", nil)
	mk("BL-NUEVO", strPtr("2026-09-01"))

	out, err := uc.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "BL-NUEVO", out[0].BlNo)
	assert.Equal(t, "BL-VIEJO", out[1].BlNo)
	assert.Equal(t, "BL-SIN-FECHA", out[2].BlNo, "los registros sin fty_eta van al final")
}

func TestList_FiltraPorFabrica(t *testing.T) {
	uc, _, _ := newUseCase()
	ctx := context.Background()

	for i, fty := range []entity.Factory{entity.FactoryTPL, entity.FactoryNVN, entity.FactoryTPL} {
		in := validRequest()
		in.BlNo = in.BlNo + string(rune('A'+i))
		_, err := uc.Create(ctx, in, fty)
		require.NoError(t, err)
	}

	tpl := entity.FactoryTPL
	out, err := uc.List(ctx, &tpl)
	require.NoError(t, err)
	require.Len(t, out, 2)
	for _, d := range out {
		assert.Equal(t, "TPL", d.Factory)
	}

	all, err := uc.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestGetByID_Inexistente(t *testing.T) {
	uc, _, _ := newUseCase()
	_, err := uc.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete_DevuelveBoolSinError(t *testing.T) {
	uc, _, _ := newUseCase()
	ctx := context.Background()

	created, err := uc.Create(ctx, validRequest(), entity.FactoryLR)
	require.NoError(t, err)

	ok, err := uc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, ok, "borrar un id inexistente no es un error")
}

// ──────────────────────────────────────────────────────────────────────────────
// Export PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestExportPDF_EtiquetaYAlcance(t *testing.T) {
	uc, _, pdf := newUseCase()
	ctx := context.Background()

	_, err := uc.Create(ctx, validRequest(), entity.FactoryTPL)
	require.NoError(t, err)
	in := validRequest()
	in.BlNo = "BL-002"
	_, err = uc.Create(ctx, in, entity.FactoryNVN)
	require.NoError(t, err)

	nvn := entity.FactoryNVN
	doc, err := uc.ExportPDF(ctx, &nvn)
	require.NoError(t, err)
	assert.NotEmpty(t, doc)
	assert.Equal(t, "NVN", pdf.label)
	assert.Equal(t, 1, pdf.rows)

	_, err = uc.ExportPDF(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "todas las plantas", pdf.label)
	assert.Equal(t, 2, pdf.rows)
}
