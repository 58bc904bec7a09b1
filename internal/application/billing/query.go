package billing

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/miriamyi01/facturas-cfdi/internal/application/catalog"
	"github.com/miriamyi01/facturas-cfdi/internal/application/dto"
	"github.com/miriamyi01/facturas-cfdi/internal/domain"
	"github.com/miriamyi01/facturas-cfdi/internal/domain/cfdi"
	"github.com/miriamyi01/facturas-cfdi/internal/domain/entity"
)

// GetInvoice devuelve la factura con sus catálogos resueltos.
func (uc *InvoiceUseCase) GetInvoice(ctx context.Context, caller Caller, invoiceID string) (*dto.InvoiceResponse, error) {
	inv, err := uc.loadOwned(ctx, caller, invoiceID)
	if err != nil {
		return nil, err
	}
	view, err := uc.resolveView(ctx, inv)
	if err != nil {
		return nil, err
	}
	doc, err := uc.documentRepo.GetByOwnerID(ctx, inv.ID)
	if err != nil {
		return nil, fmt.Errorf("factura: obtener pdf: %w", err)
	}
	return toInvoiceResponse(view, doc != nil), nil
}

// ListInvoices lista las facturas de un RFC, más recientes primero. Un cliente
// solo ve las propias; un empleado puede pedir las de cualquier RFC.
func (uc *InvoiceUseCase) ListInvoices(ctx context.Context, caller Caller, in dto.InvoiceListRequest) (*dto.InvoiceListResponse, error) {
	rfc := caller.RFC
	if requested := cfdi.Upper(in.RFC); requested != "" && requested != caller.RFC {
		if !caller.IsEmployee() {
			return nil, domain.ErrForbidden
		}
		rfc = requested
	}

	page := in.Page()
	invoices, err := uc.invoiceRepo.ListByReceiver(ctx, rfc, page.Limit+1, page.Offset)
	if err != nil {
		return nil, err
	}
	fetched := len(invoices)
	if fetched > page.Limit {
		invoices = invoices[:page.Limit]
	}

	items := make([]dto.InvoiceSummary, 0, len(invoices))
	for _, inv := range invoices {
		items = append(items, dto.InvoiceSummary{
			ID:          inv.ID,
			IssuedAt:    inv.IssuedAt,
			ProductCode: inv.ProductCode,
			Quantity:    inv.Quantity,
			Total:       inv.Total,
		})
	}
	return &dto.InvoiceListResponse{
		Items: items,
		Page:  dto.NewPageResponse(page, fetched),
	}, nil
}

// DownloadPDF devuelve el PDF guardado al emitir la factura. No se regenera.
//
// Retorna:
//   - domain.ErrNotFound   si la factura o su PDF no existen, o el id no es un UUID.
//   - domain.ErrForbidden  si la factura es de otro RFC y el usuario no es empleado.
func (uc *InvoiceUseCase) DownloadPDF(ctx context.Context, caller Caller, invoiceID string) (pdf []byte, filename string, err error) {
	inv, err := uc.loadOwned(ctx, caller, invoiceID)
	if err != nil {
		return nil, "", err
	}
	doc, err := uc.documentRepo.GetByOwnerID(ctx, inv.ID)
	if err != nil {
		return nil, "", fmt.Errorf("factura: obtener pdf: %w", err)
	}
	if doc == nil {
		return nil, "", domain.ErrNotFound
	}
	return doc.PDF, fmt.Sprintf("factura_%s.pdf", inv.ID), nil
}

// loadOwned carga la factura y verifica que el usuario pueda verla.
func (uc *InvoiceUseCase) loadOwned(ctx context.Context, caller Caller, invoiceID string) (*entity.Invoice, error) {
	if invoiceID == "" {
		return nil, domain.ErrInvalidInput
	}
	// Los ids son UUID; cualquier otra cadena no puede existir.
	if _, err := uuid.Parse(invoiceID); err != nil {
		return nil, domain.ErrNotFound
	}
	inv, err := uc.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("factura: obtener: %w", err)
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if inv.ReceiverRFC != caller.RFC && !caller.IsEmployee() {
		return nil, domain.ErrForbidden
	}
	return inv, nil
}

func (uc *InvoiceUseCase) resolveView(ctx context.Context, inv *entity.Invoice) (*entity.InvoiceView, error) {
	view := &entity.InvoiceView{Invoice: *inv}
	var err error
	lookups := []struct {
		kind entity.CatalogKind
		code string
		dst  *entity.CatalogEntry
	}{
		{entity.CatalogTipoComprobante, inv.TipoComprobante, &view.TipoComprobante},
		{entity.CatalogUsoCFDI, inv.UsoCFDI, &view.UsoCFDI},
		{entity.CatalogRegimenFiscal, inv.RegimenFiscal, &view.RegimenFiscal},
		{entity.CatalogMetodoPago, inv.MetodoPago, &view.MetodoPago},
		{entity.CatalogFormaPago, inv.FormaPago, &view.FormaPago},
	}
	for _, l := range lookups {
		if *l.dst, err = catalog.Resolve(ctx, uc.catalogRepo, l.kind, l.code); err != nil {
			return nil, err
		}
	}
	if view.Product, err = catalog.ResolveProduct(ctx, uc.catalogRepo, inv.ProductCode); err != nil {
		return nil, err
	}
	return view, nil
}
