package alarma

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Alarma is a help-desk ticket owned by a usuario final. Estado and prioridad
// are free-form strings; there is no state machine in code.
type Alarma struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioFinalID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Titulo           string          `gorm:"type:varchar(200);not null"`
	Descripcion      string          `gorm:"type:text;not null"`
	Estado           string          `gorm:"type:varchar(50);default:'abierta'"`
	Prioridad        string          `gorm:"type:varchar(50);default:'media'"`
	ResueltaAt       *time.Time      `gorm:"type:timestamptz"`
	ResueltaPor      *uuid.UUID      `gorm:"type:uuid"`
	Comentarios      json.RawMessage `gorm:"type:jsonb"`
	ArchivosAdjuntos json.RawMessage `gorm:"type:jsonb"`
	CreatedAt        time.Time       `gorm:"not null;default:now()"`
	UpdatedAt        time.Time       `gorm:"not null;default:now()"`
}

func (Alarma) TableName() string {
	return "alarmas"
}
