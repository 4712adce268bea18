package sistema

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Configuracion is a key/value store for runtime settings, one row per clave.
type Configuracion struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Clave       string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	Valor       json.RawMessage `gorm:"type:jsonb;not null"`
	Descripcion string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null;default:now()"`
	UpdatedAt   time.Time       `gorm:"not null;default:now()"`
}

func (Configuracion) TableName() string {
	return "configuracion_sistema"
}
