package usuario

import (
	"encoding/json"
	"time"
)

type CreateUsuarioRequest struct {
	EmpresaID        string          `json:"empresa_id" binding:"required,uuid"`
	NumeroDocumento  string          `json:"numero_documento" binding:"required"`
	NombreCompleto   string          `json:"nombre_completo" binding:"required"`
	Celular          string          `json:"celular"`
	Email            string          `json:"email" binding:"omitempty,email"`
	DatosAdicionales json.RawMessage `json:"datos_adicionales"`
}

type UpdateUsuarioRequest struct {
	NumeroDocumento  string          `json:"numero_documento"`
	NombreCompleto   string          `json:"nombre_completo"`
	Celular          string          `json:"celular"`
	Email            string          `json:"email" binding:"omitempty,email"`
	DatosAdicionales json.RawMessage `json:"datos_adicionales"`
}

type SetActivoRequest struct {
	Activo *bool `json:"activo" binding:"required"`
}

type UsuarioResponse struct {
	ID               string          `json:"id"`
	EmpresaID        string          `json:"empresa_id"`
	EmpresaNombre    string          `json:"empresa_nombre,omitempty"`
	NumeroDocumento  string          `json:"numero_documento"`
	NombreCompleto   string          `json:"nombre_completo"`
	Celular          string          `json:"celular,omitempty"`
	Email            string          `json:"email,omitempty"`
	CodigoUnico      string          `json:"codigo_unico"`
	Activo           bool            `json:"activo"`
	DatosAdicionales json.RawMessage `json:"datos_adicionales,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}
