package dto

import (
	"github.com/shopspring/decimal"

	"github.com/miriamyi01/facturas-cfdi/internal/domain/entity"
)

// CatalogOption par (clave, descripción). Label es solo para mostrar; los
// clientes envían de vuelta Code.
type CatalogOption struct {
	Code        string `json:"code"`
	Description string `json:"description"`
	Label       string `json:"label"`
}

// ProductResponse fila del catálogo de productos y servicios.
type ProductResponse struct {
	Code        string          `json:"code"`
	Unit        string          `json:"unit"`
	Description string          `json:"description"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Label       string          `json:"label"`
}

// NewCatalogOption convierte una entrada de catálogo en su DTO.
func NewCatalogOption(e entity.CatalogEntry) CatalogOption {
	return CatalogOption{Code: e.Code, Description: e.Description, Label: e.Label()}
}

// NewProductResponse convierte un producto en su DTO.
func NewProductResponse(p entity.Product) ProductResponse {
	return ProductResponse{
		Code:        p.Code,
		Unit:        p.Unit,
		Description: p.Description,
		UnitPrice:   p.UnitPrice,
		Label:       p.Code + " - " + p.Description,
	}
}
