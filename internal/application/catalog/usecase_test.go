package catalog_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/miriamyi01/facturas-cfdi/internal/application/catalog"
	"github.com/miriamyi01/facturas-cfdi/internal/domain"
	"github.com/miriamyi01/facturas-cfdi/internal/domain/entity"
)

type stubCatalogRepo struct {
	entries  map[entity.CatalogKind][]entity.CatalogEntry
	products []entity.Product
}

func (s *stubCatalogRepo) List(_ context.Context, kind entity.CatalogKind) ([]entity.CatalogEntry, error) {
	return s.entries[kind], nil
}

func (s *stubCatalogRepo) Get(_ context.Context, kind entity.CatalogKind, code string) (*entity.CatalogEntry, error) {
	for _, e := range s.entries[kind] {
		if e.Code == code {
			cp := e
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *stubCatalogRepo) ListProducts(context.Context) ([]entity.Product, error) {
	return s.products, nil
}

func (s *stubCatalogRepo) GetProduct(_ context.Context, code string) (*entity.Product, error) {
	for _, p := range s.products {
		if p.Code == code {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func newStub() *stubCatalogRepo {
	return &stubCatalogRepo{
		entries: map[entity.CatalogKind][]entity.CatalogEntry{
			entity.CatalogUsoCFDI: {
				{Code: "G01", Description: "Adquisición de mercancías"},
				{Code: "G03", Description: "Gastos en general"},
			},
		},
		products: []entity.Product{
			{Code: "01010101", Unit: "PIEZA", Description: "No existe en el catálogo", UnitPrice: decimal.RequireFromString("100.00")},
		},
	}
}

func TestList_DevuelvePares(t *testing.T) {
	uc := catalog.NewCatalogUseCase(newStub())

	out, err := uc.List(context.Background(), "uso_cfdi")
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "G01", out[0].Code)
	assert.Equal(t, "Adquisición de mercancías", out[0].Description)
	assert.Equal(t, "G01 - Adquisición de mercancías", out[0].Label)
}

func TestList_CatalogoDesconocido(t *testing.T) {
	uc := catalog.NewCatalogUseCase(newStub())

	_, err := uc.List(context.Background(), "usuarios")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestListProducts(t *testing.T) {
	uc := catalog.NewCatalogUseCase(newStub())

	out, err := uc.ListProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "100", out[0].UnitPrice.String())
	assert.Equal(t, "PIEZA", out[0].Unit)
}

func TestResolve(t *testing.T) {
	repo := newStub()

	e, err := catalog.Resolve(context.Background(), repo, entity.CatalogUsoCFDI, "G03")
	require.NoError(t, err)
	assert.Equal(t, "Gastos en general", e.Description)

	_, err = catalog.Resolve(context.Background(), repo, entity.CatalogUsoCFDI, "ZZZ")
	assert.ErrorIs(t, err, domain.ErrCatalogNotFound)

	_, err = catalog.ResolveProduct(context.Background(), repo, "99999999")
	assert.ErrorIs(t, err, domain.ErrCatalogNotFound)
}
