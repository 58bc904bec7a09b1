package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/miriamyi01/facturas-cfdi/internal/application/dto"
)

type catalogService interface {
	List(ctx context.Context, kind string) ([]dto.CatalogOption, error)
	ListProducts(ctx context.Context) ([]dto.ProductResponse, error)
}

// CatalogHandler expone los catálogos SAT.
type CatalogHandler struct {
	uc catalogService
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc catalogService) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List godoc
// @Summary      Opciones de un catálogo SAT
// @Description  kind: tipo_comprobante, uso_cfdi, regimen_fiscal, metodo_pago, forma_pago, regimen_laboral, banco, percepcion, deduccion
// @Tags         catalogs
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path  string  true  "catálogo"
// @Success      200   {array}   dto.CatalogOption
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/catalogs/{kind} [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext(), c.Params("kind"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ListProducts godoc
// @Summary      Catálogo de productos y servicios
// @Tags         catalogs
// @Produce      json
// @Security     BearerAuth
// @Success      200   {array}   dto.ProductResponse
// @Router       /api/catalogs/products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	out, err := h.uc.ListProducts(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
