package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/carniceria-pos/internal/application/dto"
	"github.com/jhoicas/carniceria-pos/internal/application/usecase"
	"github.com/jhoicas/carniceria-pos/internal/domain"
)

type fakeReports struct {
	sales     *dto.SalesReportResponse
	top       *dto.TopProductsResponse
	inventory *dto.InventoryResponse
	calls     int
}

func (f *fakeReports) SalesReport(context.Context, string, string) (*dto.SalesReportResponse, error) {
	f.calls++
	return f.sales, nil
}
func (f *fakeReports) TopProducts(context.Context, string, string) (*dto.TopProductsResponse, error) {
	f.calls++
	return f.top, nil
}
func (f *fakeReports) Inventory(context.Context) (*dto.InventoryResponse, error) {
	f.calls++
	return f.inventory, nil
}

func TestSalesReport_ValidaRango(t *testing.T) {
	reports := &fakeReports{}
	uc := usecase.NewReportUseCase(reports)

	cases := []struct {
		name     string
		from, to string
	}{
		{"sin inicio", "", "2026-08-31"},
		{"sin fin", "2026-08-01", ""},
		{"inicio malformado", "01/08/2026", "2026-08-31"},
		{"inicio posterior al fin", "2026-09-01", "2026-08-01"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.SalesReport(context.Background(), tc.from, tc.to)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
	assert.Zero(t, reports.calls, "un rango inválido no llega al backend")
}

func TestSalesReport_RangoValido(t *testing.T) {
	reports := &fakeReports{sales: &dto.SalesReportResponse{}}
	uc := usecase.NewReportUseCase(reports)

	_, err := uc.SalesReport(context.Background(), "2026-08-01", "2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, 1, reports.calls)
}

func TestTopProducts_MismaValidacion(t *testing.T) {
	uc := usecase.NewReportUseCase(&fakeReports{})

	_, err := uc.TopProducts(context.Background(), "", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInventory_SinRango(t *testing.T) {
	reports := &fakeReports{inventory: &dto.InventoryResponse{}}
	uc := usecase.NewReportUseCase(reports)

	_, err := uc.Inventory(context.Background())
	require.NoError(t, err)
}
