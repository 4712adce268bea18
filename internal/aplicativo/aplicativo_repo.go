package aplicativo

import (
	"context"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=aplicativo_repo.go -destination=mock/aplicativo_repo_mock.go -package=mock
type Repository interface {
	CreateGlobal(ctx context.Context, app *AplicativoGlobal) error
	FindGlobales(ctx context.Context) ([]AplicativoGlobal, error)
	FindGlobalByID(ctx context.Context, id string) (*AplicativoGlobal, error)
	UpdateGlobal(ctx context.Context, app *AplicativoGlobal) error
	DeleteGlobal(ctx context.Context, id string) error

	CreateEmpresaApp(ctx context.Context, app *AplicativoEmpresa) error
	FindEmpresaApps(ctx context.Context, empresaID string) ([]AplicativoEmpresa, error)
	FindEmpresaAppByID(ctx context.Context, id string) (*AplicativoEmpresa, error)
	UpdateEmpresaApp(ctx context.Context, app *AplicativoEmpresa) error
	DeleteEmpresaApp(ctx context.Context, id string) error

	CreateAsignacion(ctx context.Context, asig *Asignacion) error
	FindAsignaciones(ctx context.Context, usuarioID string) ([]AsignacionResponse, error)
	DeleteAsignacion(ctx context.Context, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateGlobal(ctx context.Context, app *AplicativoGlobal) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *repository) FindGlobales(ctx context.Context) ([]AplicativoGlobal, error) {
	var apps []AplicativoGlobal
	err := r.db.WithContext(ctx).Order("nombre").Find(&apps).Error
	return apps, err
}

func (r *repository) FindGlobalByID(ctx context.Context, id string) (*AplicativoGlobal, error) {
	var app AplicativoGlobal
	err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error
	return &app, err
}

func (r *repository) UpdateGlobal(ctx context.Context, app *AplicativoGlobal) error {
	return r.db.WithContext(ctx).Save(app).Error
}

func (r *repository) DeleteGlobal(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&AplicativoGlobal{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CreateEmpresaApp(ctx context.Context, app *AplicativoEmpresa) error {
	return r.db.WithContext(ctx).Create(app).Error
}

func (r *repository) FindEmpresaApps(ctx context.Context, empresaID string) ([]AplicativoEmpresa, error) {
	var apps []AplicativoEmpresa
	q := r.db.WithContext(ctx)
	if empresaID != "" {
		q = q.Scopes(tenant.Scope(empresaID))
	}
	err := q.Order("nombre").Find(&apps).Error
	return apps, err
}

func (r *repository) FindEmpresaAppByID(ctx context.Context, id string) (*AplicativoEmpresa, error) {
	var app AplicativoEmpresa
	err := r.db.WithContext(ctx).First(&app, "id = ?", id).Error
	return &app, err
}

func (r *repository) UpdateEmpresaApp(ctx context.Context, app *AplicativoEmpresa) error {
	return r.db.WithContext(ctx).Save(app).Error
}

func (r *repository) DeleteEmpresaApp(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&AplicativoEmpresa{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CreateAsignacion(ctx context.Context, asig *Asignacion) error {
	return r.db.WithContext(ctx).Create(asig).Error
}

func (r *repository) FindAsignaciones(ctx context.Context, usuarioID string) ([]AsignacionResponse, error) {
	var rows []AsignacionResponse
	q := r.db.WithContext(ctx).
		Table("asignaciones_aplicativos AS a").
		Select(`a.id, a.usuario_final_id,
            COALESCE(a.aplicativo_global_id::text, '') AS aplicativo_global_id,
            COALESCE(a.aplicativo_empresa_id::text, '') AS aplicativo_empresa_id,
            COALESCE(g.nombre, c.nombre, '') AS aplicativo_nombre,
            a.datos_acceso, COALESCE(a.notas, '') AS notas, a.created_at`).
		Joins("LEFT JOIN aplicativos_globales g ON g.id = a.aplicativo_global_id").
		Joins("LEFT JOIN aplicativos_empresa c ON c.id = a.aplicativo_empresa_id").
		Order("a.created_at DESC")
	if usuarioID != "" {
		q = q.Where("a.usuario_final_id = ?", usuarioID)
	}
	err := q.Scan(&rows).Error
	return rows, err
}

func (r *repository) DeleteAsignacion(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&Asignacion{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
