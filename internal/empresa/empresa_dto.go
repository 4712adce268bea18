package empresa

import "time"

type CreateEmpresaRequest struct {
	Nombre    string `json:"nombre" binding:"required"`
	NIT       string `json:"nit"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email" binding:"omitempty,email"`
}

type UpdateEmpresaRequest struct {
	Nombre    string `json:"nombre"`
	NIT       string `json:"nit"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email" binding:"omitempty,email"`
	Activa    *bool  `json:"activa"`
}

type SetEstadoRequest struct {
	Activa *bool `json:"activa" binding:"required"`
}

type EmpresaResponse struct {
	ID        string    `json:"id"`
	Nombre    string    `json:"nombre"`
	NIT       string    `json:"nit,omitempty"`
	Direccion string    `json:"direccion,omitempty"`
	Telefono  string    `json:"telefono,omitempty"`
	Email     string    `json:"email,omitempty"`
	Activa    bool      `json:"activa"`
	CreatedAt time.Time `json:"created_at"`
}

// EmpresaOption feeds select inputs; only active empresas are listed.
type EmpresaOption struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
}
