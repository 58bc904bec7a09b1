package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/miriamyi01/facturas-cfdi/internal/application/dto"
)

type payrollService interface {
	RegisterEmployee(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error)
	CreateReceipt(ctx context.Context, in dto.CreatePayrollReceiptRequest) (*dto.PayrollReceiptResponse, error)
	DownloadPDF(ctx context.Context, receiptID string) ([]byte, string, error)
}

// PayrollHandler maneja empleados y recibos de nómina. Solo rol empleado.
type PayrollHandler struct {
	uc payrollService
}

// NewPayrollHandler construye el handler.
func NewPayrollHandler(uc payrollService) *PayrollHandler {
	return &PayrollHandler{uc: uc}
}

// RegisterEmployee godoc
// @Summary      Registrar empleado
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateEmployeeRequest  true  "datos del empleado"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/payroll/employees [post]
func (h *PayrollHandler) RegisterEmployee(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.RegisterEmployee(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// CreateReceipt godoc
// @Summary      Emitir recibo de nómina
// @Tags         payroll
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreatePayrollReceiptRequest  true  "percepción y deducción"
// @Success      201   {object}  dto.PayrollReceiptResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/payroll/receipts [post]
func (h *PayrollHandler) CreateReceipt(c *fiber.Ctx) error {
	var in dto.CreatePayrollReceiptRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.CreateReceipt(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DownloadPDF godoc
// @Summary      Descargar PDF del recibo
// @Tags         payroll
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "id del recibo"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/payroll/receipts/{id}/pdf [get]
func (h *PayrollHandler) DownloadPDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.DownloadPDF(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, data, filename)
}
