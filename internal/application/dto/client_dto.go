package dto

import "time"

// CreateClientRequest alta de cliente.
type CreateClientRequest struct {
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Cedula    string `json:"cedula"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
	Direccion string `json:"direccion"`
}

// UpdateClientRequest edición de cliente; la cédula puede corregirse.
type UpdateClientRequest struct {
	Nombre    string `json:"nombre"`
	Apellido  string `json:"apellido"`
	Cedula    string `json:"cedula"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
	Direccion string `json:"direccion"`
}

// DeleteClientRequest motivo del paso a historial.
type DeleteClientRequest struct {
	Motivo string `json:"motivo"`
}

// ClientResponse cliente en respuestas.
type ClientResponse struct {
	ID            string    `json:"id"`
	Nombre        string    `json:"nombre"`
	Apellido      string    `json:"apellido"`
	Cedula        string    `json:"cedula"`
	Telefono      string    `json:"telefono,omitempty"`
	Email         string    `json:"email,omitempty"`
	Direccion     string    `json:"direccion,omitempty"`
	FechaRegistro time.Time `json:"fecha_registro"`
	Activo        bool      `json:"activo"`
}

// ClientHistoryResponse entrada del historial de clientes eliminados.
type ClientHistoryResponse struct {
	ID                string    `json:"id"`
	ClienteIDOriginal string    `json:"cliente_id_original"`
	Nombre            string    `json:"nombre"`
	Apellido          string    `json:"apellido"`
	Cedula            string    `json:"cedula"`
	Telefono          string    `json:"telefono,omitempty"`
	Email             string    `json:"email,omitempty"`
	Direccion         string    `json:"direccion,omitempty"`
	FechaRegistro     time.Time `json:"fecha_registro"`
	FechaEliminacion  time.Time `json:"fecha_eliminacion"`
	MotivoEliminacion string    `json:"motivo_eliminacion,omitempty"`
}

// HistorySummaryDTO resumen del historial (pie del listado).
type HistorySummaryDTO struct {
	Total   int `json:"total"`
	EsteMes int `json:"este_mes"`
	EsteAno int `json:"este_ano"`
}

// HistoryListResponse historial completo con resumen.
type HistoryListResponse struct {
	Historial []ClientHistoryResponse `json:"historial"`
	Resumen   HistorySummaryDTO       `json:"resumen"`
}
