package entity

import "github.com/shopspring/decimal"

// CatalogKind identifica un catálogo SAT de solo lectura.
type CatalogKind string

// Catálogos usados por facturas y recibos de nómina.
const (
	CatalogTipoComprobante CatalogKind = "tipo_comprobante"
	CatalogUsoCFDI         CatalogKind = "uso_cfdi"
	CatalogRegimenFiscal   CatalogKind = "regimen_fiscal"
	CatalogMetodoPago      CatalogKind = "metodo_pago"
	CatalogFormaPago       CatalogKind = "forma_pago"
	CatalogRegimenLaboral  CatalogKind = "regimen_laboral"
	CatalogBanco           CatalogKind = "banco"
	CatalogPercepcion      CatalogKind = "percepcion"
	CatalogDeduccion       CatalogKind = "deduccion"
)

// CatalogKinds lista los catálogos clave/descripción en orden de presentación.
var CatalogKinds = []CatalogKind{
	CatalogTipoComprobante,
	CatalogUsoCFDI,
	CatalogRegimenFiscal,
	CatalogMetodoPago,
	CatalogFormaPago,
	CatalogRegimenLaboral,
	CatalogBanco,
	CatalogPercepcion,
	CatalogDeduccion,
}

// Valid indica si el catálogo es conocido.
func (k CatalogKind) Valid() bool {
	for _, known := range CatalogKinds {
		if k == known {
			return true
		}
	}
	return false
}

// CatalogEntry es un par (clave, descripción) de un catálogo SAT.
type CatalogEntry struct {
	Code        string
	Description string
}

// Label es la forma "clave - descripción" usada solo para mostrar.
func (e CatalogEntry) Label() string {
	return e.Code + " - " + e.Description
}

// Product es una fila del catálogo de productos y servicios.
type Product struct {
	Code        string
	Unit        string
	Description string
	UnitPrice   decimal.Decimal
}
