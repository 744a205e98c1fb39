package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/carniceria-pos/internal/application/dto"
	"github.com/jhoicas/carniceria-pos/internal/application/ports"
	"github.com/jhoicas/carniceria-pos/internal/domain"
)

const reportDateLayout = "2006-01-02"

// ReportUseCase valida los rangos de fechas y delega los reportes al backend.
type ReportUseCase struct {
	reports ports.ReportProvider
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(reports ports.ReportProvider) *ReportUseCase {
	return &ReportUseCase{reports: reports}
}

// SalesReport reporte de ventas entre dos fechas (inclusive).
func (uc *ReportUseCase) SalesReport(ctx context.Context, from, to string) (*dto.SalesReportResponse, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	return uc.reports.SalesReport(ctx, from, to)
}

// TopProducts productos más vendidos entre dos fechas.
func (uc *ReportUseCase) TopProducts(ctx context.Context, from, to string) (*dto.TopProductsResponse, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	return uc.reports.TopProducts(ctx, from, to)
}

// Inventory existencia actual del catálogo.
func (uc *ReportUseCase) Inventory(ctx context.Context) (*dto.InventoryResponse, error) {
	return uc.reports.Inventory(ctx)
}

func validateRange(from, to string) error {
	if from == "" || to == "" {
		return fmt.Errorf("%w: selecciona ambas fechas", domain.ErrInvalidInput)
	}
	start, err := time.Parse(reportDateLayout, from)
	if err != nil {
		return fmt.Errorf("%w: fecha de inicio inválida", domain.ErrInvalidInput)
	}
	end, err := time.Parse(reportDateLayout, to)
	if err != nil {
		return fmt.Errorf("%w: fecha de fin inválida", domain.ErrInvalidInput)
	}
	if start.After(end) {
		return fmt.Errorf("%w: el inicio no puede ser posterior al fin", domain.ErrInvalidInput)
	}
	return nil
}
