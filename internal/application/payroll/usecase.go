package payroll

import (
	"context"
	"fmt"
	"strings"
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

const dateLayout = "2006-01-02"

// Deps dependencias del caso de uso de nómina. Mirror es opcional.
type Deps struct {
	TxRunner  PayrollTxRunner
	Catalogs  repository.CatalogRepository
	Users     repository.UserRepository
	Employees repository.EmployeeRepository
	Receipts  repository.PayrollReceiptRepository
	Documents repository.DocumentRepository
	Renderer  ports.PayrollRenderer
	Mirror    ports.DocumentMirror
	Issuer    entity.Issuer
	Log       zerolog.Logger
}

// PayrollUseCase registra empleados y emite recibos de nómina con su PDF.
type PayrollUseCase struct {
	txRunner     PayrollTxRunner
	catalogRepo  repository.CatalogRepository
	userRepo     repository.UserRepository
	employeeRepo repository.EmployeeRepository
	receiptRepo  repository.PayrollReceiptRepository
	documentRepo repository.DocumentRepository
	renderer     ports.PayrollRenderer
	mirror       ports.DocumentMirror
	issuer       entity.Issuer
	log          zerolog.Logger
	now          func() time.Time
}

// NewPayrollUseCase construye el caso de uso.
func NewPayrollUseCase(d Deps) *PayrollUseCase {
	return &PayrollUseCase{
		txRunner:     d.TxRunner,
		catalogRepo:  d.Catalogs,
		userRepo:     d.Users,
		employeeRepo: d.Employees,
		receiptRepo:  d.Receipts,
		documentRepo: d.Documents,
		renderer:     d.Renderer,
		mirror:       d.Mirror,
		issuer:       d.Issuer,
		log:          d.Log,
		now:          time.Now,
	}
}

// RegisterEmployee da de alta un empleado ligado a una cuenta registrada.
func (uc *PayrollUseCase) RegisterEmployee(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	number := strings.TrimSpace(in.Number)
	rfc := cfdi.Upper(in.RFC)
	curp := cfdi.Upper(in.CURP)
	nss := strings.TrimSpace(in.NSS)

	if err := cfdi.RequireFields(
		"numero_empleado", number,
		"puesto", in.Position,
		"departamento", in.Department,
	); err != nil {
		return nil, err
	}
	if err := cfdi.ValidateRFC(rfc); err != nil {
		return nil, err
	}
	if err := cfdi.ValidateCURP(curp); err != nil {
		return nil, err
	}
	if err := cfdi.ValidateNSS(nss); err != nil {
		return nil, err
	}
	hiredAt, err := parseDate("fecha_ingreso", in.HiredAt)
	if err != nil {
		return nil, err
	}
	if in.BaseSalary.IsNegative() {
		return nil, fmt.Errorf("%w: el sueldo base no puede ser negativo", domain.ErrInvalidInput)
	}

	user, err := uc.userRepo.GetByRFC(ctx, rfc)
	if err != nil {
		return nil, fmt.Errorf("nómina: obtener usuario: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: el RFC %s no pertenece a un usuario registrado", domain.ErrNotFound, rfc)
	}
	if existing, err := uc.employeeRepo.GetByNumber(ctx, number); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, domain.ErrEmployeeAlreadyExists
	}

	e := &entity.Employee{
		Number:         number,
		RFC:            rfc,
		CURP:           curp,
		NSS:            nss,
		HiredAt:        hiredAt,
		BaseSalary:     in.BaseSalary,
		Position:       cfdi.Upper(in.Position),
		Department:     cfdi.Upper(in.Department),
		Risk:           strings.TrimSpace(in.Risk),
		WorkdayType:    strings.TrimSpace(in.WorkdayType),
		ContractType:   strings.TrimSpace(in.ContractType),
		PayPeriodicity: strings.TrimSpace(in.PayPeriodicity),
		CreatedAt:      uc.now(),
	}
	if err := uc.employeeRepo.Create(ctx, e); err != nil {
		return nil, err
	}
	return &dto.EmployeeResponse{
		Number:     e.Number,
		RFC:        e.RFC,
		CURP:       e.CURP,
		NSS:        e.NSS,
		HiredAt:    e.HiredAt.Format(dateLayout),
		BaseSalary: e.BaseSalary,
		Position:   e.Position,
		Department: e.Department,
	}, nil
}

// CreateReceipt calcula el neto, genera sellos ilustrativos y guarda recibo y
// PDF en una sola transacción.
func (uc *PayrollUseCase) CreateReceipt(ctx context.Context, in dto.CreatePayrollReceiptRequest) (*dto.PayrollReceiptResponse, error) {
	// ── 1. Empleado y fecha ──────────────────────────────────────────────────
	employee, err := uc.employeeRepo.GetByNumber(ctx, strings.TrimSpace(in.EmployeeNumber))
	if err != nil {
		return nil, fmt.Errorf("nómina: obtener empleado: %w", err)
	}
	if employee == nil {
		return nil, fmt.Errorf("%w: empleado %q", domain.ErrNotFound, in.EmployeeNumber)
	}
	paidAt, err := parseDate("fecha_pago", in.PaidAt)
	if err != nil {
		return nil, err
	}

	// ── 2. Catálogos ──────────────────────────────────────────────────────────
	view := &entity.PayrollReceiptView{Employee: *employee}
	if view.RegimenLaboral, err = catalog.Resolve(ctx, uc.catalogRepo, entity.CatalogRegimenLaboral, in.RegimenLaboral); err != nil {
		return nil, err
	}
	if view.Perception, err = catalog.Resolve(ctx, uc.catalogRepo, entity.CatalogPercepcion, in.Perception); err != nil {
		return nil, err
	}
	if view.Deduction, err = catalog.Resolve(ctx, uc.catalogRepo, entity.CatalogDeduccion, in.Deduction); err != nil {
		return nil, err
	}
	if in.Banco != "" {
		if view.Banco, err = catalog.Resolve(ctx, uc.catalogRepo, entity.CatalogBanco, in.Banco); err != nil {
			return nil, err
		}
	}

	// ── 3. Importes y sellos ──────────────────────────────────────────────────
	net, err := cfdi.NetPay(in.PerceptionValue, in.DeductionValue)
	if err != nil {
		return nil, err
	}
	seals, qr, err := cfdi.PlaceholderSeals()
	if err != nil {
		return nil, err
	}

	now := uc.now()
	view.Receipt = entity.PayrollReceipt{
		ID:               uuid.New().String(),
		CompanyName:      uc.issuer.CompanyName,
		IssuerRFC:        uc.issuer.RFC,
		IssuePlace:       uc.issuer.Place,
		IssuedAt:         now,
		EmployeeNumber:   employee.Number,
		RegimenLaboral:   view.RegimenLaboral.Code,
		PaidAt:           paidAt,
		Banco:            view.Banco.Code,
		Perception:       view.Perception.Code,
		PerceptionValue:  in.PerceptionValue,
		TotalPerceptions: in.PerceptionValue,
		Deduction:        view.Deduction.Code,
		DeductionValue:   in.DeductionValue,
		TotalDeductions:  in.DeductionValue,
		Amount:           net,
		AmountInWords:    cfdi.AmountInWords(net),
		Currency:         uc.issuer.Currency,
		ExchangeRate:     uc.issuer.ExchangeRate,
		Seals:            seals,
		QRCode:           qr,
		CreatedAt:        now,
	}

	// ── 4. Recibo + PDF en la misma transacción ──────────────────────────────
	var pdf []byte
	err = uc.txRunner.RunPayroll(ctx, func(receiptRepo repository.PayrollReceiptRepository, documentRepo repository.DocumentRepository) error {
		if err := receiptRepo.Create(ctx, &view.Receipt); err != nil {
			return fmt.Errorf("nómina: guardar recibo: %w", err)
		}
		rendered, err := uc.renderer.RenderPayrollReceipt(ctx, view)
		if err != nil {
			return fmt.Errorf("nómina: generar pdf: %w", err)
		}
		pdf = rendered
		return documentRepo.Create(ctx, &entity.Document{
			ID:        uuid.New().String(),
			OwnerID:   view.Receipt.ID,
			PDF:       rendered,
			CreatedAt: now,
		})
	})
	if err != nil {
		return nil, err
	}

	if uc.mirror != nil {
		if err := uc.mirror.PutPDF(ctx, ReceiptObjectKey(view.Receipt.ID), pdf); err != nil {
			uc.log.Warn().Err(err).Str("receipt_id", view.Receipt.ID).Msg("no se pudo replicar el pdf")
		}
	}
	uc.log.Info().
		Str("receipt_id", view.Receipt.ID).
		Str("numero_empleado", employee.Number).
		Str("importe", net.StringFixed(2)).
		Msg("recibo de nómina emitido")

	rc := view.Receipt
	return &dto.PayrollReceiptResponse{
		ID:               rc.ID,
		EmployeeNumber:   rc.EmployeeNumber,
		IssuedAt:         rc.IssuedAt,
		PaidAt:           rc.PaidAt,
		RegimenLaboral:   dto.NewCatalogOption(view.RegimenLaboral),
		Perception:       dto.NewCatalogOption(view.Perception),
		Deduction:        dto.NewCatalogOption(view.Deduction),
		TotalPerceptions: rc.TotalPerceptions,
		TotalDeductions:  rc.TotalDeductions,
		Amount:           rc.Amount,
		AmountInWords:    rc.AmountInWords,
		HasPDF:           true,
	}, nil
}

// DownloadPDF devuelve el PDF guardado del recibo.
func (uc *PayrollUseCase) DownloadPDF(ctx context.Context, receiptID string) (pdf []byte, filename string, err error) {
	if receiptID == "" {
		return nil, "", domain.ErrInvalidInput
	}
	if _, err := uuid.Parse(receiptID); err != nil {
		return nil, "", domain.ErrNotFound
	}
	rc, err := uc.receiptRepo.GetByID(ctx, receiptID)
	if err != nil {
		return nil, "", fmt.Errorf("nómina: obtener recibo: %w", err)
	}
	if rc == nil {
		return nil, "", domain.ErrNotFound
	}
	doc, err := uc.documentRepo.GetByOwnerID(ctx, rc.ID)
	if err != nil {
		return nil, "", fmt.Errorf("nómina: obtener pdf: %w", err)
	}
	if doc == nil {
		return nil, "", domain.ErrNotFound
	}
	return doc.PDF, fmt.Sprintf("recibo_nomina_%s.pdf", rc.ID), nil
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s debe tener formato AAAA-MM-DD", domain.ErrInvalidInput, field)
	}
	return t, nil
}
