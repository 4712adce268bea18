package historial

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=historial_repo.go -destination=mock/historial_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, entry *HistorialCambio) error
	FindByRegistro(ctx context.Context, tabla, registroID string) ([]HistorialCambio, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, entry *HistorialCambio) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *repository) FindByRegistro(ctx context.Context, tabla, registroID string) ([]HistorialCambio, error) {
	var entries []HistorialCambio
	err := r.db.WithContext(ctx).
		Where("tabla = ?", tabla).
		Where("registro_id = ?", registroID).
		Order("created_at DESC").
		Find(&entries).Error
	return entries, err
}
