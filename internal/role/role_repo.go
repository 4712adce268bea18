package role

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=role_repo.go -destination=mock/role_repo_mock.go -package=mock
type Repository interface {
	Count(ctx context.Context) (int64, error)
	HasRole(ctx context.Context, userID, role string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Count is a global existence check over the whole table, not a per-user
// lookup: it only answers "did bootstrap ever run".
func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&UserRole{}).Count(&count).Error
	return count, err
}

func (r *repository) HasRole(ctx context.Context, userID, role string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&UserRole{}).
		Where("user_id = ?", userID).
		Where("role = ?", role).
		Count(&count).Error
	return count > 0, err
}
