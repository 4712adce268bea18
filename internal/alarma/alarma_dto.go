package alarma

import (
	"encoding/json"
	"time"
)

type CreateAlarmaRequest struct {
	UsuarioFinalID string `json:"usuario_final_id" binding:"required,uuid"`
	Titulo         string `json:"titulo" binding:"required"`
	Descripcion    string `json:"descripcion" binding:"required"`
	Prioridad      string `json:"prioridad"`
}

type UpdateAlarmaRequest struct {
	Titulo           string          `json:"titulo"`
	Descripcion      string          `json:"descripcion"`
	Estado           string          `json:"estado"`
	Prioridad        string          `json:"prioridad"`
	Comentarios      json.RawMessage `json:"comentarios"`
	ArchivosAdjuntos json.RawMessage `json:"archivos_adjuntos"`
}

type ResolverAlarmaRequest struct {
	Estado string `json:"estado"`
}

type AlarmaResponse struct {
	ID               string          `json:"id"`
	UsuarioFinalID   string          `json:"usuario_final_id"`
	UsuarioNombre    string          `json:"usuario_nombre,omitempty"`
	EmpresaNombre    string          `json:"empresa_nombre,omitempty"`
	Titulo           string          `json:"titulo"`
	Descripcion      string          `json:"descripcion"`
	Estado           string          `json:"estado"`
	Prioridad        string          `json:"prioridad"`
	ResueltaAt       *time.Time      `json:"resuelta_at,omitempty"`
	ResueltaPor      string          `json:"resuelta_por,omitempty"`
	Comentarios      json.RawMessage `json:"comentarios,omitempty"`
	ArchivosAdjuntos json.RawMessage `json:"archivos_adjuntos,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}
