package aplicativo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type AplicativoGlobal struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Nombre           string          `gorm:"type:varchar(150);not null"`
	Descripcion      string          `gorm:"type:text"`
	Icono            string          `gorm:"type:varchar(100)"`
	CamposRequeridos json.RawMessage `gorm:"type:jsonb"`
	Activo           bool            `gorm:"not null;default:true"`
	CreatedAt        time.Time       `gorm:"not null;default:now()"`
	UpdatedAt        time.Time       `gorm:"not null;default:now()"`
}

func (AplicativoGlobal) TableName() string {
	return "aplicativos_globales"
}

type AplicativoEmpresa struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmpresaID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	Nombre               string          `gorm:"type:varchar(150);not null"`
	Descripcion          string          `gorm:"type:text"`
	Icono                string          `gorm:"type:varchar(100)"`
	CamposPersonalizados json.RawMessage `gorm:"type:jsonb"`
	Activo               bool            `gorm:"not null;default:true"`
	CreatedAt            time.Time       `gorm:"not null;default:now()"`
	UpdatedAt            time.Time       `gorm:"not null;default:now()"`
}

func (AplicativoEmpresa) TableName() string {
	return "aplicativos_empresa"
}

// Asignacion links a usuario final to exactly one aplicativo, global or de
// empresa. DatosAcceso holds per-user credentials and is only ever exposed on
// the admin surface.
type Asignacion struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UsuarioFinalID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	AplicativoGlobalID  *uuid.UUID      `gorm:"type:uuid"`
	AplicativoEmpresaID *uuid.UUID      `gorm:"type:uuid"`
	DatosAcceso         json.RawMessage `gorm:"type:jsonb"`
	Notas               string          `gorm:"type:text"`
	CreatedAt           time.Time       `gorm:"not null;default:now()"`
	UpdatedAt           time.Time       `gorm:"not null;default:now()"`
}

func (Asignacion) TableName() string {
	return "asignaciones_aplicativos"
}
