package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=500"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 100
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// Window devuelve los índices [from, to) de la página dentro de una lista de n elementos.
func (p PageRequest) Window(n int) (from, to int) {
	from = min(p.Offset, n)
	to = min(from+p.Limit, n)
	return from, to
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ImportError fila rechazada en una carga masiva. Line cuenta la cabecera como línea 1.
type ImportError struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ImportReport resultado de una carga masiva.
type ImportReport struct {
	Imported int           `json:"imported"`
	Errors   []ImportError `json:"errors"`
}

// Reject agrega una fila rechazada al reporte.
func (r *ImportReport) Reject(line int, msg string) {
	r.Errors = append(r.Errors, ImportError{Line: line, Message: msg})
}
