package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteRequest body para POST /api/invoices/quote.
type QuoteRequest struct {
	ProductCode string `json:"clave_producto_servicio" validate:"required"`
	Quantity    int    `json:"cantidad" validate:"required,gt=0,lte=2147483647"`
}

// QuoteResponse importes calculados sin persistir.
type QuoteResponse struct {
	ProductCode string          `json:"clave_producto_servicio"`
	Quantity    int             `json:"cantidad"`
	UnitPrice   decimal.Decimal `json:"precio_unitario"`
	Amount      decimal.Decimal `json:"importe"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Tax         decimal.Decimal `json:"iva"`
	Total       decimal.Decimal `json:"total"`
}

// CreateInvoiceRequest body para POST /api/invoices. Solo claves de catálogo.
// ReceiverRFC vacío significa el RFC del usuario autenticado.
type CreateInvoiceRequest struct {
	TipoComprobante string `json:"tipo_comprobante" validate:"required"`
	UsoCFDI         string `json:"uso_cfdi" validate:"required"`
	RegimenFiscal   string `json:"regimen_fiscal" validate:"required"`
	MetodoPago      string `json:"metodo_pago" validate:"required"`
	FormaPago       string `json:"forma_pago" validate:"required"`
	ProductCode     string `json:"clave_producto_servicio" validate:"required"`
	Quantity        int    `json:"cantidad" validate:"required,gt=0,lte=2147483647"`
	ReceiverRFC     string `json:"rfc_receptor,omitempty"`
}

// InvoiceResponse factura con catálogos resueltos.
type InvoiceResponse struct {
	ID              string          `json:"id"`
	CompanyName     string          `json:"nombre_empresa"`
	IssuerRFC       string          `json:"rfc_emisor"`
	IssuePlace      string          `json:"lugar_expedicion"`
	IssuedAt        time.Time       `json:"fecha_expedicion"`
	ReceiverRFC     string          `json:"rfc_receptor"`
	TipoComprobante CatalogOption   `json:"tipo_comprobante"`
	UsoCFDI         CatalogOption   `json:"uso_cfdi"`
	RegimenFiscal   CatalogOption   `json:"regimen_fiscal"`
	MetodoPago      CatalogOption   `json:"metodo_pago"`
	FormaPago       CatalogOption   `json:"forma_pago"`
	Product         ProductResponse `json:"producto"`
	Quantity        int             `json:"cantidad"`
	Amount          decimal.Decimal `json:"importe"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	Tax             decimal.Decimal `json:"iva"`
	Total           decimal.Decimal `json:"total"`
	TotalInWords    string          `json:"total_con_letra"`
	Currency        string          `json:"moneda"`
	ExchangeRate    decimal.Decimal `json:"tipo_cambio"`
	HasPDF          bool            `json:"tiene_pdf"`
}

// InvoiceSummary fila del listado GET /api/invoices.
type InvoiceSummary struct {
	ID          string          `json:"id"`
	IssuedAt    time.Time       `json:"fecha_expedicion"`
	ProductCode string          `json:"clave_producto_servicio"`
	Quantity    int             `json:"cantidad"`
	Total       decimal.Decimal `json:"total"`
}

// InvoiceListResponse listado paginado.
type InvoiceListResponse struct {
	Items []InvoiceSummary `json:"items"`
	Page  PageResponse     `json:"page"`
}

// InvoiceListRequest filtros del listado de facturas. RFC solo lo pueden
// usar empleados; vacío significa el RFC del usuario autenticado.
type InvoiceListRequest struct {
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
	RFC    string `query:"rfc"`
}

// Page devuelve la ventana normalizada.
func (r InvoiceListRequest) Page() PageRequest {
	return PageRequest{Limit: r.Limit, Offset: r.Offset}.Normalize()
}

// SendInvoiceRequest body para POST /api/invoices/:id/email.
// To vacío significa el correo del usuario autenticado.
type SendInvoiceRequest struct {
	To string `json:"to,omitempty"`
}
