package historial

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// HistorialCambio is one row of the best-effort change trail. Rows are written
// asynchronously from lifecycle events; CRUD operations never block on them.
type HistorialCambio struct {
	ID              uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Tabla           string          `gorm:"column:tabla;type:text;not null"`
	RegistroID      string          `gorm:"column:registro_id;type:text;not null"`
	Accion          string          `gorm:"column:accion;type:text;not null"`
	AdminUserID     *uuid.UUID      `gorm:"column:admin_user_id;type:uuid"`
	DatosAnteriores json.RawMessage `gorm:"column:datos_anteriores;type:jsonb"`
	DatosNuevos     json.RawMessage `gorm:"column:datos_nuevos;type:jsonb"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime"`
}

func (HistorialCambio) TableName() string {
	return "historial_cambios"
}
