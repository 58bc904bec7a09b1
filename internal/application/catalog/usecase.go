package catalog

import (
	"context"
	"fmt"

	"github.com/miriamyi01/facturas-cfdi/internal/application/dto"
	"github.com/miriamyi01/facturas-cfdi/internal/domain"
	"github.com/miriamyi01/facturas-cfdi/internal/domain/entity"
	"github.com/miriamyi01/facturas-cfdi/internal/domain/repository"
)

// CatalogUseCase expone los catálogos SAT como pares (clave, descripción).
type CatalogUseCase struct {
	repo repository.CatalogRepository
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(repo repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

// List devuelve las opciones de un catálogo. Un nombre desconocido es ErrInvalidInput.
func (uc *CatalogUseCase) List(ctx context.Context, kind string) ([]dto.CatalogOption, error) {
	k := entity.CatalogKind(kind)
	if !k.Valid() {
		return nil, fmt.Errorf("%w: catálogo desconocido %q", domain.ErrInvalidInput, kind)
	}
	entries, err := uc.repo.List(ctx, k)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CatalogOption, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.NewCatalogOption(e))
	}
	return out, nil
}

// ListProducts devuelve el catálogo de productos y servicios con su precio.
func (uc *CatalogUseCase) ListProducts(ctx context.Context) ([]dto.ProductResponse, error) {
	products, err := uc.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, dto.NewProductResponse(p))
	}
	return out, nil
}

// Resolve busca una clave y devuelve ErrCatalogNotFound si no existe.
func Resolve(ctx context.Context, repo repository.CatalogRepository, kind entity.CatalogKind, code string) (entity.CatalogEntry, error) {
	entry, err := repo.Get(ctx, kind, code)
	if err != nil {
		return entity.CatalogEntry{}, fmt.Errorf("catálogo %s: %w", kind, err)
	}
	if entry == nil {
		return entity.CatalogEntry{}, fmt.Errorf("%w: %s %q", domain.ErrCatalogNotFound, kind, code)
	}
	return *entry, nil
}

// ResolveProduct busca un producto por clave; ErrCatalogNotFound si no existe.
func ResolveProduct(ctx context.Context, repo repository.CatalogRepository, code string) (entity.Product, error) {
	p, err := repo.GetProduct(ctx, code)
	if err != nil {
		return entity.Product{}, fmt.Errorf("catálogo productos: %w", err)
	}
	if p == nil {
		return entity.Product{}, fmt.Errorf("%w: producto %q", domain.ErrCatalogNotFound, code)
	}
	return *p, nil
}
