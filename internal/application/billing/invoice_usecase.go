package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/miriamyi01/facturas-cfdi/internal/application/catalog"
	"github.com/miriamyi01/facturas-cfdi/internal/application/dto"
	"github.com/miriamyi01/facturas-cfdi/internal/application/ports"
	"github.com/miriamyi01/facturas-cfdi/internal/domain"
	"github.com/miriamyi01/facturas-cfdi/internal/domain/cfdi"
	"github.com/miriamyi01/facturas-cfdi/internal/domain/entity"
	"github.com/miriamyi01/facturas-cfdi/internal/domain/repository"
)

// Deps dependencias del caso de uso de facturación. Mirror es opcional.
type Deps struct {
	TxRunner  BillingTxRunner
	Catalogs  repository.CatalogRepository
	Users     repository.UserRepository
	Invoices  repository.InvoiceRepository
	Documents repository.DocumentRepository
	Renderer  ports.InvoiceRenderer
	Mirror    ports.DocumentMirror
	Mailer    ports.Mailer
	Issuer    entity.Issuer
	Log       zerolog.Logger
}

// InvoiceUseCase cotiza, emite, consulta y envía facturas CFDI.
type InvoiceUseCase struct {
	txRunner     BillingTxRunner
	catalogRepo  repository.CatalogRepository
	userRepo     repository.UserRepository
	invoiceRepo  repository.InvoiceRepository
	documentRepo repository.DocumentRepository
	renderer     ports.InvoiceRenderer
	mirror       ports.DocumentMirror
	mailer       ports.Mailer
	issuer       entity.Issuer
	log          zerolog.Logger
	now          func() time.Time
}

// NewInvoiceUseCase construye el caso de uso inyectando todas sus dependencias.
func NewInvoiceUseCase(d Deps) *InvoiceUseCase {
	return &InvoiceUseCase{
		txRunner:     d.TxRunner,
		catalogRepo:  d.Catalogs,
		userRepo:     d.Users,
		invoiceRepo:  d.Invoices,
		documentRepo: d.Documents,
		renderer:     d.Renderer,
		mirror:       d.Mirror,
		mailer:       d.Mailer,
		issuer:       d.Issuer,
		log:          d.Log,
		now:          time.Now,
	}
}

// Quote calcula subtotal, IVA y total de un concepto sin persistir nada.
func (uc *InvoiceUseCase) Quote(ctx context.Context, in dto.QuoteRequest) (*dto.QuoteResponse, error) {
	if in.Quantity <= 0 {
		return nil, fmt.Errorf("%w: la cantidad debe ser un entero positivo", domain.ErrInvalidInput)
	}
	product, err := catalog.ResolveProduct(ctx, uc.catalogRepo, in.ProductCode)
	if err != nil {
		return nil, err
	}
	amounts, err := cfdi.Calculate(in.Quantity, product.UnitPrice)
	if err != nil {
		return nil, err
	}
	return &dto.QuoteResponse{
		ProductCode: product.Code,
		Quantity:    in.Quantity,
		UnitPrice:   product.UnitPrice,
		Amount:      amounts.Amount,
		Subtotal:    amounts.Subtotal,
		Tax:         amounts.Tax,
		Total:       amounts.Total,
	}, nil
}

// CreateInvoice resuelve las claves de catálogo, calcula importes, genera
// sellos ilustrativos y guarda factura y PDF en una sola transacción.
//
// El receptor es el RFC del usuario autenticado; solo un empleado puede
// facturar a otro RFC registrado.
func (uc *InvoiceUseCase) CreateInvoice(ctx context.Context, caller Caller, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	// ── 1. Receptor ───────────────────────────────────────────────────────────
	receiverRFC := caller.RFC
	if r := cfdi.Upper(in.ReceiverRFC); r != "" && r != caller.RFC {
		if !caller.IsEmployee() {
			return nil, domain.ErrForbidden
		}
		receiverRFC = r
	}
	if err := cfdi.ValidateRFC(receiverRFC); err != nil {
		return nil, err
	}
	receiver, err := uc.userRepo.GetByRFC(ctx, receiverRFC)
	if err != nil {
		return nil, fmt.Errorf("factura: obtener receptor: %w", err)
	}
	if receiver == nil {
		return nil, fmt.Errorf("%w: el RFC %s no pertenece a un usuario registrado", domain.ErrNotFound, receiverRFC)
	}

	// ── 2. Catálogos ──────────────────────────────────────────────────────────
	view := &entity.InvoiceView{}
	lookups := []struct {
		kind entity.CatalogKind
		code string
		dst  *entity.CatalogEntry
	}{
		{entity.CatalogTipoComprobante, in.TipoComprobante, &view.TipoComprobante},
		{entity.CatalogUsoCFDI, in.UsoCFDI, &view.UsoCFDI},
		{entity.CatalogRegimenFiscal, in.RegimenFiscal, &view.RegimenFiscal},
		{entity.CatalogMetodoPago, in.MetodoPago, &view.MetodoPago},
		{entity.CatalogFormaPago, in.FormaPago, &view.FormaPago},
	}
	for _, l := range lookups {
		if *l.dst, err = catalog.Resolve(ctx, uc.catalogRepo, l.kind, l.code); err != nil {
			return nil, err
		}
	}
	if view.Product, err = catalog.ResolveProduct(ctx, uc.catalogRepo, in.ProductCode); err != nil {
		return nil, err
	}

	// ── 3. Importes y sellos ──────────────────────────────────────────────────
	amounts, err := cfdi.Calculate(in.Quantity, view.Product.UnitPrice)
	if err != nil {
		return nil, err
	}
	seals, qr, err := cfdi.PlaceholderSeals()
	if err != nil {
		return nil, err
	}

	now := uc.now()
	view.Invoice = entity.Invoice{
		ID:              uuid.New().String(),
		CompanyName:     uc.issuer.CompanyName,
		IssuerRFC:       uc.issuer.RFC,
		IssuePlace:      uc.issuer.Place,
		IssuedAt:        now,
		ReceiverRFC:     receiverRFC,
		TipoComprobante: view.TipoComprobante.Code,
		UsoCFDI:         view.UsoCFDI.Code,
		RegimenFiscal:   view.RegimenFiscal.Code,
		MetodoPago:      view.MetodoPago.Code,
		FormaPago:       view.FormaPago.Code,
		ProductCode:     view.Product.Code,
		Quantity:        in.Quantity,
		UnitPrice:       view.Product.UnitPrice,
		Amount:          amounts.Amount,
		Subtotal:        amounts.Subtotal,
		Tax:             amounts.Tax,
		Total:           amounts.Total,
		TotalInWords:    cfdi.AmountInWords(amounts.Total),
		Currency:        uc.issuer.Currency,
		ExchangeRate:    uc.issuer.ExchangeRate,
		Seals:           seals,
		QRCode:          qr,
		CreatedAt:       now,
	}

	// ── 4. Factura + PDF en la misma transacción ─────────────────────────────
	var pdf []byte
	err = uc.txRunner.RunBilling(ctx, func(invoiceRepo repository.InvoiceRepository, documentRepo repository.DocumentRepository) error {
		if err := invoiceRepo.Create(ctx, &view.Invoice); err != nil {
			return fmt.Errorf("factura: guardar: %w", err)
		}
		rendered, err := uc.renderer.RenderInvoice(ctx, view)
		if err != nil {
			return fmt.Errorf("factura: generar pdf: %w", err)
		}
		pdf = rendered
		return documentRepo.Create(ctx, &entity.Document{
			ID:        uuid.New().String(),
			OwnerID:   view.Invoice.ID,
			PDF:       rendered,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	uc.mirrorPDF(ctx, InvoiceObjectKey(view.Invoice.ID), pdf)
	uc.log.Info().
		Str("invoice_id", view.Invoice.ID).
		Str("rfc_receptor", receiverRFC).
		Str("total", view.Invoice.Total.StringFixed(2)).
		Msg("factura emitida")

	return toInvoiceResponse(view, true), nil
}

// mirrorPDF replica el PDF después del commit; solo registra la falla.
func (uc *InvoiceUseCase) mirrorPDF(ctx context.Context, key string, pdf []byte) {
	if uc.mirror == nil {
		return
	}
	if err := uc.mirror.PutPDF(ctx, key, pdf); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("no se pudo replicar el pdf")
	}
}

func toInvoiceResponse(v *entity.InvoiceView, hasPDF bool) *dto.InvoiceResponse {
	inv := v.Invoice
	return &dto.InvoiceResponse{
		ID:              inv.ID,
		CompanyName:     inv.CompanyName,
		IssuerRFC:       inv.IssuerRFC,
		IssuePlace:      inv.IssuePlace,
		IssuedAt:        inv.IssuedAt,
		ReceiverRFC:     inv.ReceiverRFC,
		TipoComprobante: dto.NewCatalogOption(v.TipoComprobante),
		UsoCFDI:         dto.NewCatalogOption(v.UsoCFDI),
		RegimenFiscal:   dto.NewCatalogOption(v.RegimenFiscal),
		MetodoPago:      dto.NewCatalogOption(v.MetodoPago),
		FormaPago:       dto.NewCatalogOption(v.FormaPago),
		Product:         dto.NewProductResponse(v.Product),
		Quantity:        inv.Quantity,
		Amount:          inv.Amount,
		Subtotal:        inv.Subtotal,
		Tax:             inv.Tax,
		Total:           inv.Total,
		TotalInWords:    inv.TotalInWords,
		Currency:        inv.Currency,
		ExchangeRate:    inv.ExchangeRate,
		HasPDF:          hasPDF,
	}
}
