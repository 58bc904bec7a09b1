package dto

// Límites de paginación de los listados.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// PageRequest ventana de un listado (limit/offset).
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// Normalize devuelve la ventana con límites válidos: Limit en [1, MaxPageLimit]
// y Offset no negativo.
func (p PageRequest) Normalize() PageRequest {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// PageResponse metadatos de página. HasMore indica que existe al menos una fila más.
type PageResponse struct {
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

// NewPageResponse arma los metadatos a partir de cuántas filas devolvió la
// consulta, que pide Limit+1 para saber si hay otra página.
func NewPageResponse(p PageRequest, fetched int) PageResponse {
	return PageResponse{Limit: p.Limit, Offset: p.Offset, HasMore: fetched > p.Limit}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
