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

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// documentTable describe una tabla de PDFs: facturas_pdf o recibos_pdf.
type documentTable struct {
	name     string
	ownerCol string
}

var (
	invoiceDocuments = documentTable{name: "facturas_pdf", ownerCol: "id_factura"}
	payrollDocuments = documentTable{name: "recibos_pdf", ownerCol: "id_recibo"}
)

// DocumentRepo guarda PDFs con a lo sumo una fila por propietario.
type DocumentRepo struct {
	q     Querier
	table documentTable
}

// NewInvoiceDocumentRepository PDFs de facturas (facturas_pdf).
func NewInvoiceDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q, table: invoiceDocuments}
}

// NewPayrollDocumentRepository PDFs de recibos de nómina (recibos_pdf).
func NewPayrollDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q, table: payrollDocuments}
}

// Create inserta el PDF. El índice único sobre el propietario impide una segunda fila.
func (r *DocumentRepo) Create(ctx context.Context, doc *entity.Document) error {
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	query := fmt.Sprintf(`INSERT INTO %s (id, %s, pdf, created_at) VALUES ($1, $2, $3, $4)`,
		r.table.name, r.table.ownerCol)
	_, err := r.q.Exec(ctx, query, doc.ID, doc.OwnerID, doc.PDF, doc.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDocumentExists
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: %s %s", domain.ErrNotFound, r.table.ownerCol, doc.OwnerID)
		}
		return fmt.Errorf("insert %s: %w", r.table.name, err)
	}
	return nil
}

// GetByOwnerID devuelve el PDF del propietario o nil si no existe.
func (r *DocumentRepo) GetByOwnerID(ctx context.Context, ownerID string) (*entity.Document, error) {
	query := fmt.Sprintf(`SELECT id, %s, pdf, created_at FROM %s WHERE %s = $1`,
		r.table.ownerCol, r.table.name, r.table.ownerCol)
	var d entity.Document
	err := r.q.QueryRow(ctx, query, ownerID).Scan(&d.ID, &d.OwnerID, &d.PDF, &d.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %s: %w", r.table.name, err)
	}
	return &d, nil
}
