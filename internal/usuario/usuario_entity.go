package usuario

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Usuario struct {
	ID               uuid.UUID
	EmpresaID        uuid.UUID
	NumeroDocumento  string
	NombreCompleto   string
	Celular          string
	Email            string
	CodigoUnico      string
	Activo           bool
	DatosAdicionales json.RawMessage
	CreatedAt        time.Time
	UpdatedAt        time.Time

	// Joined from empresas, never written back
	EmpresaNombre string
}
