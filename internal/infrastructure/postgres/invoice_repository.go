package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/miriamyi01/facturas-cfdi/internal/domain"
	"github.com/miriamyi01/facturas-cfdi/internal/domain/entity"
	"github.com/miriamyi01/facturas-cfdi/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

const invoiceColumns = `
	id, nombre_empresa, rfc_emisor, lugar_expedicion, fecha_expedicion, rfc_receptor,
	tipo_comprobante_clave, uso_destino_cfdi_clave, regimen_fiscal_clave, metodo_pago_clave, forma_pago_clave,
	clave_producto_servicio, cantidad, precio_unitario, importe, subtotal, iva, total, total_con_letra,
	moneda, tipo_cambio, sello_digital_cfdi, sello_digital_sat, cadena_original_complemento_certificacion,
	codigo_qr, created_at`

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la factura. Una clave de catálogo o un RFC receptor
// inexistente llega como violación de llave foránea y se reporta como tal.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	if inv.ID == "" {
		inv.ID = uuid.New().String()
	}
	query := `INSERT INTO facturas (` + invoiceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)`
	_, err := r.q.Exec(ctx, query,
		inv.ID, inv.CompanyName, inv.IssuerRFC, inv.IssuePlace, inv.IssuedAt, inv.ReceiverRFC,
		inv.TipoComprobante, inv.UsoCFDI, inv.RegimenFiscal, inv.MetodoPago, inv.FormaPago,
		inv.ProductCode, inv.Quantity, inv.UnitPrice, inv.Amount, inv.Subtotal, inv.Tax, inv.Total, inv.TotalInWords,
		inv.Currency, inv.ExchangeRate, inv.Seals.CFDI, inv.Seals.SAT, inv.Seals.CertificationChain,
		inv.QRCode, inv.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrCatalogNotFound, constraintName(err))
		}
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: factura duplicada", domain.ErrConflict)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura por ID o nil si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	row := r.q.QueryRow(ctx, `SELECT `+invoiceColumns+` FROM facturas WHERE id = $1`, id)
	inv, err := scanInvoice(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// ListByReceiver lista las facturas de un RFC, las más recientes primero.
func (r *InvoiceRepo) ListByReceiver(ctx context.Context, rfc string, limit, offset int) ([]*entity.Invoice, error) {
	query := `SELECT ` + invoiceColumns + ` FROM facturas
		WHERE rfc_receptor = $1 ORDER BY fecha_expedicion DESC, id LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, rfc, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

func scanInvoice(row pgx.Row) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.CompanyName, &inv.IssuerRFC, &inv.IssuePlace, &inv.IssuedAt, &inv.ReceiverRFC,
		&inv.TipoComprobante, &inv.UsoCFDI, &inv.RegimenFiscal, &inv.MetodoPago, &inv.FormaPago,
		&inv.ProductCode, &inv.Quantity, &inv.UnitPrice, &inv.Amount, &inv.Subtotal, &inv.Tax, &inv.Total, &inv.TotalInWords,
		&inv.Currency, &inv.ExchangeRate, &inv.Seals.CFDI, &inv.Seals.SAT, &inv.Seals.CertificationChain,
		&inv.QRCode, &inv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
