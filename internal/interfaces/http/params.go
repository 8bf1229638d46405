package http

import (
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/inventario-bom/internal/application/dto"
	"github.com/jhoicas/inventario-bom/internal/domain/validation"
)

// paramID lee un parámetro de ruta entero positivo.
func paramID(c *fiber.Ctx, name string) (int, bool) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseBody decodifica el JSON y valida las etiquetas `validate`. Devuelve el cuerpo de
// error 400 a responder, o nil si la entrada es válida.
func parseBody(c *fiber.Ctx, out any) *dto.ErrorResponse {
	if err := c.BodyParser(out); err != nil {
		return &dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"}
	}
	if err := validation.Struct(out); err != nil {
		return &dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()}
	}
	return nil
}

// csvPayload devuelve el CSV de una carga masiva: campo multipart "file" o el cuerpo crudo.
func csvPayload(c *fiber.Ctx) ([]byte, bool) {
	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return nil, false
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return nil, false
		}
		return data, len(data) > 0
	}
	body := c.Body()
	return body, len(body) > 0
}
