package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee es un empleado de la farmacia que recibe recibos de nómina.
type Employee struct {
	Number         string // numero_empleado
	RFC            string // RFC de la cuenta de usuario asociada
	CURP           string
	NSS            string
	HiredAt        time.Time
	BaseSalary     decimal.Decimal
	Position       string
	Department     string
	Risk           string
	WorkdayType    string
	ContractType   string
	PayPeriodicity string
	CreatedAt      time.Time
}

// PayrollReceipt es un recibo de nómina con una percepción y una deducción.
// Importe = TotalPerceptions - TotalDeductions.
type PayrollReceipt struct {
	ID               string
	CompanyName      string
	IssuerRFC        string
	IssuePlace       string
	IssuedAt         time.Time
	EmployeeNumber   string
	RegimenLaboral   string
	PaidAt           time.Time
	Banco            string // opcional
	Perception       string
	PerceptionValue  decimal.Decimal
	TotalPerceptions decimal.Decimal
	Deduction        string
	DeductionValue   decimal.Decimal
	TotalDeductions  decimal.Decimal
	Amount           decimal.Decimal
	AmountInWords    string
	Currency         string
	ExchangeRate     decimal.Decimal
	Seals            Seals
	QRCode           string
	CreatedAt        time.Time
}

// PayrollReceiptView es el recibo con empleado y catálogos resueltos.
type PayrollReceiptView struct {
	Receipt        PayrollReceipt
	Employee       Employee
	RegimenLaboral CatalogEntry
	Banco          CatalogEntry
	Perception     CatalogEntry
	Deduction      CatalogEntry
}
