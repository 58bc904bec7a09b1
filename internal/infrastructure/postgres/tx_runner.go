package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/miriamyi01/facturas-cfdi/internal/application/billing"
	"github.com/miriamyi01/facturas-cfdi/internal/application/payroll"
	"github.com/miriamyi01/facturas-cfdi/internal/domain/repository"
)

// Ensure TxRunner implements billing.BillingTxRunner and payroll.PayrollTxRunner.
var (
	_ billing.BillingTxRunner = (*TxRunner)(nil)
	_ payroll.PayrollTxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunBilling ejecuta fn con los repos de factura y PDF atados a la misma tx:
// la factura y su documento se confirman juntos o no se confirma ninguno.
func (r *TxRunner) RunBilling(ctx context.Context, fn func(
	invoiceRepo repository.InvoiceRepository,
	documentRepo repository.DocumentRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewInvoiceRepository(tx), NewInvoiceDocumentRepository(tx))
	})
}

// RunPayroll igual que RunBilling para recibo de nómina + PDF.
func (r *TxRunner) RunPayroll(ctx context.Context, fn func(
	receiptRepo repository.PayrollReceiptRepository,
	documentRepo repository.DocumentRepository,
) error) error {
	return r.run(ctx, func(tx pgx.Tx) error {
		return fn(NewPayrollReceiptRepository(tx), NewPayrollDocumentRepository(tx))
	})
}

// run inicia la transacción, hace Rollback diferido y Commit si fn no falla.
func (r *TxRunner) run(ctx context.Context, fn func(tx pgx.Tx) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
