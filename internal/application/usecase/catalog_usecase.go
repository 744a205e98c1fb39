package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/carniceria-pos/internal/application/dto"
	"github.com/jhoicas/carniceria-pos/internal/application/ports"
	"github.com/jhoicas/carniceria-pos/internal/domain"
	"github.com/jhoicas/carniceria-pos/internal/domain/entity"
)

// CatalogUseCase pantalla de administración del catálogo: listado con
// búsqueda y altas/ediciones/bajas delegadas al backend. El POS no persiste
// nada; el catálogo siempre es del backend.
type CatalogUseCase struct {
	catalog ports.CatalogProvider
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(catalog ports.CatalogProvider) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

// List trae el catálogo y lo filtra por nombre. La búsqueda ignora mayúsculas
// y acentos: "jamon" encuentra "Jamón serrano".
func (uc *CatalogUseCase) List(ctx context.Context, query string) ([]entity.Product, error) {
	products, err := uc.catalog.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return products, nil
	}
	needle := foldForSearch(query)
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(foldForSearch(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out, nil
}

// Create valida y da de alta un producto.
func (uc *CatalogUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateProductInput(in.Name, in.Unit, in.Price.IsNegative() || in.Stock.IsNegative()); err != nil {
		return nil, err
	}
	return uc.catalog.CreateProduct(ctx, in)
}

// Update valida y edita un producto existente.
func (uc *CatalogUseCase) Update(ctx context.Context, id int64, in dto.UpdateProductRequest) (*entity.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validateProductInput(in.Name, in.Unit, in.Price.IsNegative() || in.Stock.IsNegative()); err != nil {
		return nil, err
	}
	return uc.catalog.UpdateProduct(ctx, id, in)
}

// Delete elimina un producto del catálogo remoto.
func (uc *CatalogUseCase) Delete(ctx context.Context, id int64) error {
	return uc.catalog.DeleteProduct(ctx, id)
}

func validateProductInput(name, unit string, negative bool) error {
	if name == "" {
		return fmt.Errorf("%w: nombre es requerido", domain.ErrInvalidInput)
	}
	if !entity.ValidUnit(unit) {
		return fmt.Errorf("%w: unidad debe ser %s o %s", domain.ErrInvalidInput, entity.UnitKg, entity.UnitPiece)
	}
	if negative {
		return fmt.Errorf("%w: precio y existencia no pueden ser negativos", domain.ErrInvalidInput)
	}
	return nil
}

// foldForSearch normaliza para búsqueda: minúsculas y sin marcas diacríticas
// (NFD, remover Mn, NFC). El transformador se construye por llamada porque
// transform.Chain arrastra estado interno.
func foldForSearch(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(folded)
}
