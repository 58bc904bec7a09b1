package repository

import (
	"context"

	"github.com/miriamyi01/facturas-cfdi/internal/domain/entity"
)

// EmployeeRepository persistencia de empleados.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByNumber(ctx context.Context, number string) (*entity.Employee, error)
}

// PayrollReceiptRepository persistencia de recibos de nómina.
type PayrollReceiptRepository interface {
	Create(ctx context.Context, receipt *entity.PayrollReceipt) error
	GetByID(ctx context.Context, id string) (*entity.PayrollReceipt, error)
}
