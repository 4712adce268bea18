package sistema

import (
	"encoding/json"
	"time"
)

type UpsertConfiguracionRequest struct {
	Valor       json.RawMessage `json:"valor" binding:"required"`
	Descripcion string          `json:"descripcion"`
}

type ConfiguracionResponse struct {
	Clave       string          `json:"clave"`
	Valor       json.RawMessage `json:"valor"`
	Descripcion string          `json:"descripcion,omitempty"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
