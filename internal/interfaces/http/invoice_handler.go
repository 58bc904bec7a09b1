package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/miriamyi01/facturas-cfdi/internal/application/billing"
	"github.com/miriamyi01/facturas-cfdi/internal/application/dto"
)

// invoiceService contrato que necesita el handler; lo implementa *billing.InvoiceUseCase.
type invoiceService interface {
	Quote(ctx context.Context, in dto.QuoteRequest) (*dto.QuoteResponse, error)
	CreateInvoice(ctx context.Context, caller billing.Caller, in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error)
	GetInvoice(ctx context.Context, caller billing.Caller, invoiceID string) (*dto.InvoiceResponse, error)
	ListInvoices(ctx context.Context, caller billing.Caller, in dto.InvoiceListRequest) (*dto.InvoiceListResponse, error)
	DownloadPDF(ctx context.Context, caller billing.Caller, invoiceID string) ([]byte, string, error)
	SendInvoice(ctx context.Context, caller billing.Caller, invoiceID, to string) error
}

// InvoiceHandler maneja las facturas CFDI.
type InvoiceHandler struct {
	uc invoiceService
}

// NewInvoiceHandler construye el handler.
func NewInvoiceHandler(uc invoiceService) *InvoiceHandler {
	return &InvoiceHandler{uc: uc}
}

// Quote godoc
// @Summary      Cotizar un concepto
// @Description  Calcula subtotal, IVA (16%) y total sin guardar nada.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.QuoteRequest  true  "producto y cantidad"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/invoices/quote [post]
func (h *InvoiceHandler) Quote(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Quote(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Emitir factura
// @Description  Resuelve las claves de catálogo, calcula importes y guarda factura y PDF en una transacción.
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateInvoiceRequest  true  "claves de catálogo, producto y cantidad"
// @Success      201   {object}  dto.InvoiceResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/invoices [post]
func (h *InvoiceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateInvoiceRequest
	if ok, err := bindBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.CreateInvoice(c.UserContext(), callerFrom(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Mis facturas
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query  int  false  "máximo 100"
// @Param        offset  query  int  false  "desplazamiento"
// @Param        rfc     query  string  false  "RFC receptor (solo empleados)"
// @Success      200   {object}  dto.InvoiceListResponse
// @Router       /api/invoices [get]
func (h *InvoiceHandler) List(c *fiber.Ctx) error {
	var in dto.InvoiceListRequest
	if err := c.QueryParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "limit y offset deben ser enteros"})
	}
	out, err := h.uc.ListInvoices(c.UserContext(), callerFrom(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Detalle de factura
// @Tags         invoices
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "id de la factura"
// @Success      200  {object}  dto.InvoiceResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id} [get]
func (h *InvoiceHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetInvoice(c.UserContext(), callerFrom(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DownloadPDF godoc
// @Summary      Descargar PDF
// @Tags         invoices
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        id   path  string  true  "id de la factura"
// @Success      200  {file}    binary
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/pdf [get]
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	data, filename, err := h.uc.DownloadPDF(c.UserContext(), callerFrom(c), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return sendPDF(c, data, filename)
}

// SendEmail godoc
// @Summary      Enviar factura por correo
// @Description  Sin "to" se envía al correo del usuario autenticado.
// @Tags         invoices
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  string                  true   "id de la factura"
// @Param        body  body  dto.SendInvoiceRequest  false  "destinatario"
// @Success      204
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/invoices/{id}/email [post]
func (h *InvoiceHandler) SendEmail(c *fiber.Ctx) error {
	var in dto.SendInvoiceRequest
	if len(c.Body()) > 0 {
		if ok, err := bindBody(c, &in); !ok {
			return err
		}
	}
	if err := h.uc.SendInvoice(c.UserContext(), callerFrom(c), c.Params("id"), in.To); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func sendPDF(c *fiber.Ctx, data []byte, filename string) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(data)
}
