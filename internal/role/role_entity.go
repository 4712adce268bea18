package role

import (
	"time"

	"github.com/google/uuid"
)

// UserRole maps an identity-provider user id to a role. The table doubles as
// the bootstrap marker: zero rows means the first admin was never created.
type UserRole struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_user_roles_user_role"`
	Role      string    `gorm:"column:role;type:varchar(50);not null;uniqueIndex:uq_user_roles_user_role"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (UserRole) TableName() string {
	return "user_roles"
}
