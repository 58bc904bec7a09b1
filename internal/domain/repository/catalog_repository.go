package repository

import (
	"context"

	"github.com/miriamyi01/facturas-cfdi/internal/domain/entity"
)

// CatalogRepository lectura de catálogos SAT. Get devuelve nil, nil si la clave no existe.
type CatalogRepository interface {
	List(ctx context.Context, kind entity.CatalogKind) ([]entity.CatalogEntry, error)
	Get(ctx context.Context, kind entity.CatalogKind, code string) (*entity.CatalogEntry, error)
	ListProducts(ctx context.Context) ([]entity.Product, error)
	GetProduct(ctx context.Context, code string) (*entity.Product, error)
}
