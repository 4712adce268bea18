package sistema

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=sistema_repo.go -destination=mock/sistema_repo_mock.go -package=mock
type Repository interface {
	FindAll(ctx context.Context) ([]Configuracion, error)
	FindByClave(ctx context.Context, clave string) (*Configuracion, error)
	Upsert(ctx context.Context, cfg *Configuracion) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindAll(ctx context.Context) ([]Configuracion, error) {
	var configs []Configuracion
	err := r.db.WithContext(ctx).Order("clave ASC").Find(&configs).Error
	return configs, err
}

func (r *repository) FindByClave(ctx context.Context, clave string) (*Configuracion, error) {
	var cfg Configuracion
	err := r.db.WithContext(ctx).First(&cfg, "clave = ?", clave).Error
	return &cfg, err
}

// Upsert writes the value for a clave, inserting the row on first use.
func (r *repository) Upsert(ctx context.Context, cfg *Configuracion) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "clave"}},
			DoUpdates: clause.AssignmentColumns([]string{"valor", "descripcion", "updated_at"}),
		}).
		Create(cfg).Error
}
