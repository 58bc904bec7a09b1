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

var (
	_ repository.EmployeeRepository       = (*EmployeeRepo)(nil)
	_ repository.PayrollReceiptRepository = (*PayrollReceiptRepo)(nil)
)

// ── Empleados ─────────────────────────────────────────────────────────────────

const employeeColumns = `
	numero_empleado, rfc, curp, nss, fecha_ingreso, sueldo_base, puesto, departamento,
	riesgo, tipo_jornada, tipo_contrato, periodicidad_pago, created_at`

// EmployeeRepo implementación de EmployeeRepository.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador.
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste un empleado. Número, CURP y NSS son únicos.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `INSERT INTO empleados (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(ctx, query,
		e.Number, e.RFC, e.CURP, e.NSS, e.HiredAt, e.BaseSalary, e.Position, e.Department,
		e.Risk, e.WorkdayType, e.ContractType, e.PayPeriodicity, e.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrEmployeeAlreadyExists, constraintName(err))
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: el RFC no corresponde a un usuario registrado", domain.ErrNotFound)
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// GetByNumber obtiene un empleado por número o nil si no existe.
func (r *EmployeeRepo) GetByNumber(ctx context.Context, number string) (*entity.Employee, error) {
	var e entity.Employee
	err := r.q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM empleados WHERE numero_empleado = $1`, number).Scan(
		&e.Number, &e.RFC, &e.CURP, &e.NSS, &e.HiredAt, &e.BaseSalary, &e.Position, &e.Department,
		&e.Risk, &e.WorkdayType, &e.ContractType, &e.PayPeriodicity, &e.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return &e, nil
}

// ── Recibos de nómina ─────────────────────────────────────────────────────────

const receiptColumns = `
	id, nombre_empresa, rfc_emisor, lugar_expedicion, fecha_expedicion, numero_empleado,
	regimen_laboral_clave, fecha_pago, banco_clave, percepcion_clave, valor_percepciones,
	total_percepciones, deduccion_clave, valor_deducciones, total_deducciones, importe,
	importe_con_letra, moneda, tipo_cambio, sello_digital_cfdi, sello_digital_sat,
	cadena_original_complemento_certificacion, codigo_qr, created_at`

// PayrollReceiptRepo implementación de PayrollReceiptRepository.
type PayrollReceiptRepo struct {
	q Querier
}

// NewPayrollReceiptRepository construye el adaptador.
func NewPayrollReceiptRepository(q Querier) *PayrollReceiptRepo {
	return &PayrollReceiptRepo{q: q}
}

// Create persiste el recibo; banco es opcional.
func (r *PayrollReceiptRepo) Create(ctx context.Context, rc *entity.PayrollReceipt) error {
	if rc.ID == "" {
		rc.ID = uuid.New().String()
	}
	query := `INSERT INTO recibos_nomina (` + receiptColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
		        $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24)`
	_, err := r.q.Exec(ctx, query,
		rc.ID, rc.CompanyName, rc.IssuerRFC, rc.IssuePlace, rc.IssuedAt, rc.EmployeeNumber,
		rc.RegimenLaboral, rc.PaidAt, nullIfEmpty(rc.Banco), rc.Perception, rc.PerceptionValue,
		rc.TotalPerceptions, rc.Deduction, rc.DeductionValue, rc.TotalDeductions, rc.Amount,
		rc.AmountInWords, rc.Currency, rc.ExchangeRate, rc.Seals.CFDI, rc.Seals.SAT,
		rc.Seals.CertificationChain, rc.QRCode, rc.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: %s", domain.ErrCatalogNotFound, constraintName(err))
		}
		return fmt.Errorf("insert payroll receipt: %w", err)
	}
	return nil
}

// GetByID obtiene un recibo por ID o nil si no existe.
func (r *PayrollReceiptRepo) GetByID(ctx context.Context, id string) (*entity.PayrollReceipt, error) {
	var (
		rc    entity.PayrollReceipt
		banco *string
	)
	err := r.q.QueryRow(ctx, `SELECT `+receiptColumns+` FROM recibos_nomina WHERE id = $1`, id).Scan(
		&rc.ID, &rc.CompanyName, &rc.IssuerRFC, &rc.IssuePlace, &rc.IssuedAt, &rc.EmployeeNumber,
		&rc.RegimenLaboral, &rc.PaidAt, &banco, &rc.Perception, &rc.PerceptionValue,
		&rc.TotalPerceptions, &rc.Deduction, &rc.DeductionValue, &rc.TotalDeductions, &rc.Amount,
		&rc.AmountInWords, &rc.Currency, &rc.ExchangeRate, &rc.Seals.CFDI, &rc.Seals.SAT,
		&rc.Seals.CertificationChain, &rc.QRCode, &rc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payroll receipt: %w", err)
	}
	if banco != nil {
		rc.Banco = *banco
	}
	return &rc, nil
}
