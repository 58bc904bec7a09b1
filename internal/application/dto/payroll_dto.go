package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest body para POST /api/payroll/employees.
type CreateEmployeeRequest struct {
	Number         string          `json:"numero_empleado" validate:"required"`
	RFC            string          `json:"rfc" validate:"required"`
	CURP           string          `json:"curp" validate:"required"`
	NSS            string          `json:"nss" validate:"required"`
	HiredAt        string          `json:"fecha_ingreso" validate:"required"` // YYYY-MM-DD
	BaseSalary     decimal.Decimal `json:"sueldo_base"`
	Position       string          `json:"puesto" validate:"required"`
	Department     string          `json:"departamento" validate:"required"`
	Risk           string          `json:"riesgo" validate:"required"`
	WorkdayType    string          `json:"tipo_jornada" validate:"required"`
	ContractType   string          `json:"tipo_contrato" validate:"required"`
	PayPeriodicity string          `json:"periodicidad_pago" validate:"required"`
}

// EmployeeResponse empleado registrado.
type EmployeeResponse struct {
	Number     string          `json:"numero_empleado"`
	RFC        string          `json:"rfc"`
	CURP       string          `json:"curp"`
	NSS        string          `json:"nss"`
	HiredAt    string          `json:"fecha_ingreso"`
	BaseSalary decimal.Decimal `json:"sueldo_base"`
	Position   string          `json:"puesto"`
	Department string          `json:"departamento"`
}

// CreatePayrollReceiptRequest body para POST /api/payroll/receipts.
type CreatePayrollReceiptRequest struct {
	EmployeeNumber  string          `json:"numero_empleado" validate:"required"`
	RegimenLaboral  string          `json:"regimen_laboral" validate:"required"`
	PaidAt          string          `json:"fecha_pago" validate:"required"` // YYYY-MM-DD
	Banco           string          `json:"banco,omitempty"`
	Perception      string          `json:"percepcion" validate:"required"`
	PerceptionValue decimal.Decimal `json:"valor_percepciones"`
	Deduction       string          `json:"deduccion" validate:"required"`
	DeductionValue  decimal.Decimal `json:"valor_deducciones"`
}

// PayrollReceiptResponse recibo creado.
type PayrollReceiptResponse struct {
	ID               string          `json:"id"`
	EmployeeNumber   string          `json:"numero_empleado"`
	IssuedAt         time.Time       `json:"fecha_expedicion"`
	PaidAt           time.Time       `json:"fecha_pago"`
	RegimenLaboral   CatalogOption   `json:"regimen_laboral"`
	Perception       CatalogOption   `json:"percepcion"`
	Deduction        CatalogOption   `json:"deduccion"`
	TotalPerceptions decimal.Decimal `json:"total_percepciones"`
	TotalDeductions  decimal.Decimal `json:"total_deducciones"`
	Amount           decimal.Decimal `json:"importe"`
	AmountInWords    string          `json:"importe_con_letra"`
	HasPDF           bool            `json:"tiene_pdf"`
}
