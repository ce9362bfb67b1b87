package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ListQuery filtros comunes de los listados (?q=...&status=...&method=...).
type ListQuery struct {
	Query  string `query:"q"`
	Status string `query:"status"`
	Method string `query:"method"`
}

// ListMeta metadatos de un listado filtrado.
type ListMeta struct {
	Total int    `json:"total"`
	Query string `json:"query,omitempty"`
}
