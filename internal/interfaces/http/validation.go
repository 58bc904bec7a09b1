package http

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/miriamyi01/facturas-cfdi/internal/application/dto"
)

// validate es seguro para uso concurrente y cachea la metadata de cada struct.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Nombres de campo según el tag json para que el mensaje coincida con el body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindBody parsea el JSON y valida los tags. Escribe la respuesta 400 y
// devuelve ok=false si algo falla.
func bindBody(c *fiber.Ctx, out interface{}) (ok bool, err error) {
	if err := c.BodyParser(out); err != nil {
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := validate.Struct(out); err != nil {
		return false, writeError(c, err)
	}
	return true, nil
}

// validationMessage resume el primer error en español.
func validationMessage(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "datos inválidos"
	}
	e := errs[0]
	field := e.Field()
	switch e.Tag() {
	case "required":
		return "el campo " + field + " es obligatorio"
	case "min":
		return "el campo " + field + " debe tener al menos " + e.Param() + " caracteres"
	case "len":
		return "el campo " + field + " debe tener exactamente " + e.Param() + " caracteres"
	case "numeric":
		return "el campo " + field + " debe ser numérico"
	case "gt":
		return "el campo " + field + " debe ser mayor que " + e.Param()
	case "email":
		return "el campo " + field + " no es un correo válido"
	default:
		return "el campo " + field + " es inválido"
	}
}
