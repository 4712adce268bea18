package events

import "time"

// Topics are per-aggregate; the consumer folds all of them into the
// historial_cambios change trail.
const (
	UsuarioLifecycleTopic = "convertia.usuario.lifecycle.v1"
	EmpresaLifecycleTopic = "convertia.empresa.lifecycle.v1"
	AdminLifecycleTopic   = "convertia.admin.lifecycle.v1"
)

type UsuarioCreatedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	UsuarioID   string    `json:"usuario_id"`
	EmpresaID   string    `json:"empresa_id"`
	CodigoUnico string    `json:"codigo_unico"`
	AdminUserID string    `json:"admin_user_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type EmpresaDeletedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	EmpresaID   string    `json:"empresa_id"`
	Nombre      string    `json:"nombre"`
	AdminUserID string    `json:"admin_user_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type AdminBootstrappedEvent struct {
	EventType  string    `json:"event_type"`
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurred_at"`
}
