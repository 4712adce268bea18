package dashboard

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	CountEmpresas(ctx context.Context) (int64, error)
	CountUsuarios(ctx context.Context) (int64, error)
	CountAplicativosGlobales(ctx context.Context) (int64, error)
	CountAplicativosEmpresa(ctx context.Context) (int64, error)
	CountAlarmas(ctx context.Context) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CountEmpresas(ctx context.Context) (int64, error) {
	return r.count(ctx, "empresas")
}

func (r *repository) CountUsuarios(ctx context.Context) (int64, error) {
	return r.count(ctx, "usuarios_finales")
}

func (r *repository) CountAplicativosGlobales(ctx context.Context) (int64, error) {
	return r.count(ctx, "aplicativos_globales")
}

func (r *repository) CountAplicativosEmpresa(ctx context.Context) (int64, error) {
	return r.count(ctx, "aplicativos_empresa")
}

func (r *repository) CountAlarmas(ctx context.Context) (int64, error) {
	return r.count(ctx, "alarmas")
}

func (r *repository) count(ctx context.Context, table string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Table(table).Count(&total).Error
	return total, err
}
