package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa un CFDI emitido por la farmacia a un receptor registrado.
// Un concepto por factura; los montos cumplen total = subtotal + iva.
type Invoice struct {
	ID              string
	CompanyName     string
	IssuerRFC       string
	IssuePlace      string
	IssuedAt        time.Time
	ReceiverRFC     string
	TipoComprobante string
	UsoCFDI         string
	RegimenFiscal   string
	MetodoPago      string
	FormaPago       string
	ProductCode     string
	Quantity        int
	UnitPrice       decimal.Decimal
	Amount          decimal.Decimal // importe del concepto
	Subtotal        decimal.Decimal
	Tax             decimal.Decimal
	Total           decimal.Decimal
	TotalInWords    string
	Currency        string
	ExchangeRate    decimal.Decimal
	Seals           Seals
	QRCode          string
	CreatedAt       time.Time
}

// Seals agrupa los sellos digitales. Son valores ilustrativos, no firmas.
type Seals struct {
	CFDI               string
	SAT                string
	CertificationChain string
}

// InvoiceView es la factura con todas las claves resueltas a su descripción.
type InvoiceView struct {
	Invoice         Invoice
	TipoComprobante CatalogEntry
	UsoCFDI         CatalogEntry
	RegimenFiscal   CatalogEntry
	MetodoPago      CatalogEntry
	FormaPago       CatalogEntry
	Product         Product
}

// Document es el PDF persistido de una factura o recibo.
type Document struct {
	ID        string
	OwnerID   string // id de la factura o del recibo
	PDF       []byte
	CreatedAt time.Time
}

// Issuer son los datos fijos del emisor que se copian a cada comprobante.
type Issuer struct {
	CompanyName  string
	RFC          string
	Place        string
	Currency     string
	ExchangeRate decimal.Decimal
}
