package alarma

import (
	"context"

	"gorm.io/gorm"
)

// AlarmaRow carries the joined usuario and empresa names for listings.
type AlarmaRow struct {
	Alarma
	UsuarioNombre string
	EmpresaNombre string
}

//go:generate mockgen -source=alarma_repo.go -destination=mock/alarma_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, a *Alarma) error
	FindAll(ctx context.Context) ([]AlarmaRow, error)
	FindByID(ctx context.Context, id string) (*Alarma, error)
	Update(ctx context.Context, a *Alarma) error
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, a *Alarma) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) FindAll(ctx context.Context) ([]AlarmaRow, error) {
	var rows []AlarmaRow
	err := r.db.WithContext(ctx).
		Table("alarmas AS a").
		Select("a.*, u.nombre_completo AS usuario_nombre, e.nombre AS empresa_nombre").
		Joins("JOIN usuarios_finales u ON u.id = a.usuario_final_id").
		Joins("JOIN empresas e ON e.id = u.empresa_id").
		Order("a.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Alarma, error) {
	var a Alarma
	err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) Update(ctx context.Context, a *Alarma) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&Alarma{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
