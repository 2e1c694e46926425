package http

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockboard/internal/application/dto"
)

// validate valida la forma de los DTO (email, rangos, enumerados). Las reglas de negocio
// (campos obligatorios, líneas sin nombre) viven en los casos de uso.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// normalizer lo implementan los DTO que limpian su entrada antes de validarse.
type normalizer interface {
	Normalize()
}

// bind parsea el cuerpo JSON y valida su forma. Si devuelve false, la respuesta 400 ya fue escrita.
func bind(c *fiber.Ctx, out any) (bool, error) {
	if err := c.BodyParser(out); err != nil {
		return false, invalidBody(c)
	}
	if n, ok := out.(normalizer); ok {
		n.Normalize()
	}
	if err := validate.Struct(out); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return false, invalidBody(c)
		}
		return false, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: CodeValidation, Message: "campos inválidos", Fields: fieldNames(verrs),
		})
	}
	return true, nil
}

// fieldNames devuelve los nombres JSON con su ruta sin el tipo raíz, ej: "lines[0].quantity".
func fieldNames(verrs validator.ValidationErrors) []string {
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		ns := fe.Namespace()
		if i := strings.IndexByte(ns, '.'); i >= 0 {
			ns = ns[i+1:]
		}
		out = append(out, ns)
	}
	return out
}
