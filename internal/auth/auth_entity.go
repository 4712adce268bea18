package auth

import (
	"time"

	"github.com/google/uuid"
)

// AuthUser is an identity-provider account. Only administrators live here;
// end users (usuarios finales) are looked up by code and never authenticate.
type AuthUser struct {
	ID             uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Email          string    `gorm:"column:email;type:text;not null;uniqueIndex:uq_auth_users_email"`
	PasswordHash   string    `gorm:"column:password_hash;type:text;not null"`
	EmailConfirmed bool      `gorm:"column:email_confirmed;default:false"`
	IsActive       bool      `gorm:"column:is_active;default:true"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (AuthUser) TableName() string {
	return "auth_users"
}
