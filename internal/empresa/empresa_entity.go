package empresa

import (
	"time"

	"github.com/google/uuid"
)

type Empresa struct {
	ID        uuid.UUID
	Nombre    string
	NIT       string
	Direccion string
	Telefono  string
	Email     string
	Activa    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
