package entity

import "time"

// Client representa un cliente del camposanto.
// La cédula es única por regla de negocio; el borrado es lógico: el cliente
// pasa al historial y Active queda en false (la fila no se destruye).
type Client struct {
	ID           string
	FirstName    string // nombre
	LastName     string // apellido
	NationalID   string // cédula
	Phone        string
	Email        string
	Address      string
	RegisteredAt time.Time
	Active       bool
}

// FullName nombre y apellido para listados.
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}
