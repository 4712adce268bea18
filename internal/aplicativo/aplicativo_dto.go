package aplicativo

import (
	"encoding/json"
	"time"
)

type CreateGlobalRequest struct {
	Nombre           string          `json:"nombre" binding:"required"`
	Descripcion      string          `json:"descripcion"`
	Icono            string          `json:"icono"`
	CamposRequeridos json.RawMessage `json:"campos_requeridos"`
}

type UpdateGlobalRequest struct {
	Nombre           string          `json:"nombre"`
	Descripcion      string          `json:"descripcion"`
	Icono            string          `json:"icono"`
	CamposRequeridos json.RawMessage `json:"campos_requeridos"`
	Activo           *bool           `json:"activo"`
}

type GlobalResponse struct {
	ID               string          `json:"id"`
	Nombre           string          `json:"nombre"`
	Descripcion      string          `json:"descripcion,omitempty"`
	Icono            string          `json:"icono,omitempty"`
	CamposRequeridos json.RawMessage `json:"campos_requeridos,omitempty"`
	Activo           bool            `json:"activo"`
	CreatedAt        time.Time       `json:"created_at"`
}

type CreateEmpresaAppRequest struct {
	EmpresaID            string          `json:"empresa_id" binding:"required,uuid"`
	Nombre               string          `json:"nombre" binding:"required"`
	Descripcion          string          `json:"descripcion"`
	Icono                string          `json:"icono"`
	CamposPersonalizados json.RawMessage `json:"campos_personalizados"`
}

type UpdateEmpresaAppRequest struct {
	Nombre               string          `json:"nombre"`
	Descripcion          string          `json:"descripcion"`
	Icono                string          `json:"icono"`
	CamposPersonalizados json.RawMessage `json:"campos_personalizados"`
	Activo               *bool           `json:"activo"`
}

type EmpresaAppResponse struct {
	ID                   string          `json:"id"`
	EmpresaID            string          `json:"empresa_id"`
	Nombre               string          `json:"nombre"`
	Descripcion          string          `json:"descripcion,omitempty"`
	Icono                string          `json:"icono,omitempty"`
	CamposPersonalizados json.RawMessage `json:"campos_personalizados,omitempty"`
	Activo               bool            `json:"activo"`
	CreatedAt            time.Time       `json:"created_at"`
}

type CreateAsignacionRequest struct {
	UsuarioFinalID      string          `json:"usuario_final_id" binding:"required,uuid"`
	AplicativoGlobalID  string          `json:"aplicativo_global_id" binding:"omitempty,uuid"`
	AplicativoEmpresaID string          `json:"aplicativo_empresa_id" binding:"omitempty,uuid"`
	DatosAcceso         json.RawMessage `json:"datos_acceso"`
	Notas               string          `json:"notas"`
}

type AsignacionResponse struct {
	ID                  string          `json:"id"`
	UsuarioFinalID      string          `json:"usuario_final_id"`
	AplicativoGlobalID  string          `json:"aplicativo_global_id,omitempty"`
	AplicativoEmpresaID string          `json:"aplicativo_empresa_id,omitempty"`
	AplicativoNombre    string          `json:"aplicativo_nombre,omitempty"`
	DatosAcceso         json.RawMessage `json:"datos_acceso,omitempty"`
	Notas               string          `json:"notas,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
}
