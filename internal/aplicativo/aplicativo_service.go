package aplicativo

import (
	"context"
	"errors"

	aplicativoerrors "github.com/Harols34/convertia-hub-790d3cfd/internal/aplicativo/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=aplicativo_service.go -destination=mock/aplicativo_service_mock.go -package=mock
type Service interface {
	CreateGlobal(ctx context.Context, req CreateGlobalRequest) (GlobalResponse, error)
	GetGlobales(ctx context.Context) ([]GlobalResponse, error)
	UpdateGlobal(ctx context.Context, id string, req UpdateGlobalRequest) (GlobalResponse, error)
	DeleteGlobal(ctx context.Context, id string) error

	CreateEmpresaApp(ctx context.Context, req CreateEmpresaAppRequest) (EmpresaAppResponse, error)
	GetEmpresaApps(ctx context.Context, empresaID string) ([]EmpresaAppResponse, error)
	UpdateEmpresaApp(ctx context.Context, id string, req UpdateEmpresaAppRequest) (EmpresaAppResponse, error)
	DeleteEmpresaApp(ctx context.Context, id string) error

	CreateAsignacion(ctx context.Context, req CreateAsignacionRequest) (AsignacionResponse, error)
	GetAsignaciones(ctx context.Context, usuarioID string) ([]AsignacionResponse, error)
	DeleteAsignacion(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("aplicativo.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("aplicativo.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) CreateGlobal(ctx context.Context, req CreateGlobalRequest) (GlobalResponse, error) {
	app := &AplicativoGlobal{
		ID:               uuid.New(),
		Nombre:           req.Nombre,
		Descripcion:      req.Descripcion,
		Icono:            req.Icono,
		CamposRequeridos: req.CamposRequeridos,
		Activo:           true,
	}

	if err := s.repo.CreateGlobal(ctx, app); err != nil {
		s.logger.Error("create aplicativo global failed", zap.Error(err))
		return GlobalResponse{}, mapRepositoryError(err)
	}

	return mapGlobal(*app), nil
}

func (s *service) GetGlobales(ctx context.Context) ([]GlobalResponse, error) {
	apps, err := s.repo.FindGlobales(ctx)
	if err != nil {
		s.logger.Error("get aplicativos globales failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	result := make([]GlobalResponse, 0, len(apps))
	for _, a := range apps {
		result = append(result, mapGlobal(a))
	}
	return result, nil
}

func (s *service) UpdateGlobal(ctx context.Context, id string, req UpdateGlobalRequest) (GlobalResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return GlobalResponse{}, aplicativoerrors.ErrInvalidAplicativoID
	}

	app, err := s.repo.FindGlobalByID(ctx, id)
	if err != nil {
		return GlobalResponse{}, mapRepositoryError(err)
	}

	if req.Nombre != "" {
		app.Nombre = req.Nombre
	}
	if req.Descripcion != "" {
		app.Descripcion = req.Descripcion
	}
	if req.Icono != "" {
		app.Icono = req.Icono
	}
	if len(req.CamposRequeridos) > 0 {
		app.CamposRequeridos = req.CamposRequeridos
	}
	if req.Activo != nil {
		app.Activo = *req.Activo
	}

	if err := s.repo.UpdateGlobal(ctx, app); err != nil {
		s.logger.Error("update aplicativo global failed", zap.Error(err))
		return GlobalResponse{}, mapRepositoryError(err)
	}

	return mapGlobal(*app), nil
}

func (s *service) DeleteGlobal(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return aplicativoerrors.ErrInvalidAplicativoID
	}
	if err := s.repo.DeleteGlobal(ctx, id); err != nil {
		s.logger.Error("delete aplicativo global failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	return nil
}

func (s *service) CreateEmpresaApp(ctx context.Context, req CreateEmpresaAppRequest) (EmpresaAppResponse, error) {
	empresaID, err := uuid.Parse(req.EmpresaID)
	if err != nil {
		return EmpresaAppResponse{}, aplicativoerrors.ErrInvalidEmpresaID
	}

	app := &AplicativoEmpresa{
		ID:                   uuid.New(),
		EmpresaID:            empresaID,
		Nombre:               req.Nombre,
		Descripcion:          req.Descripcion,
		Icono:                req.Icono,
		CamposPersonalizados: req.CamposPersonalizados,
		Activo:               true,
	}

	if err := s.repo.CreateEmpresaApp(ctx, app); err != nil {
		s.logger.Error("create aplicativo empresa failed", zap.Error(err))
		return EmpresaAppResponse{}, mapRepositoryError(err)
	}

	return mapEmpresaApp(*app), nil
}

func (s *service) GetEmpresaApps(ctx context.Context, empresaID string) ([]EmpresaAppResponse, error) {
	if empresaID != "" {
		if _, err := uuid.Parse(empresaID); err != nil {
			return nil, aplicativoerrors.ErrInvalidEmpresaID
		}
	}

	apps, err := s.repo.FindEmpresaApps(ctx, empresaID)
	if err != nil {
		s.logger.Error("get aplicativos empresa failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	result := make([]EmpresaAppResponse, 0, len(apps))
	for _, a := range apps {
		result = append(result, mapEmpresaApp(a))
	}
	return result, nil
}

func (s *service) UpdateEmpresaApp(ctx context.Context, id string, req UpdateEmpresaAppRequest) (EmpresaAppResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmpresaAppResponse{}, aplicativoerrors.ErrInvalidAplicativoID
	}

	app, err := s.repo.FindEmpresaAppByID(ctx, id)
	if err != nil {
		return EmpresaAppResponse{}, mapRepositoryError(err)
	}

	if req.Nombre != "" {
		app.Nombre = req.Nombre
	}
	if req.Descripcion != "" {
		app.Descripcion = req.Descripcion
	}
	if req.Icono != "" {
		app.Icono = req.Icono
	}
	if len(req.CamposPersonalizados) > 0 {
		app.CamposPersonalizados = req.CamposPersonalizados
	}
	if req.Activo != nil {
		app.Activo = *req.Activo
	}

	if err := s.repo.UpdateEmpresaApp(ctx, app); err != nil {
		s.logger.Error("update aplicativo empresa failed", zap.Error(err))
		return EmpresaAppResponse{}, mapRepositoryError(err)
	}

	return mapEmpresaApp(*app), nil
}

func (s *service) DeleteEmpresaApp(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return aplicativoerrors.ErrInvalidAplicativoID
	}
	if err := s.repo.DeleteEmpresaApp(ctx, id); err != nil {
		s.logger.Error("delete aplicativo empresa failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	return nil
}

// CreateAsignacion enforces the exactly-one-reference rule: a row points at a
// global aplicativo or an empresa one, never both and never neither.
func (s *service) CreateAsignacion(ctx context.Context, req CreateAsignacionRequest) (AsignacionResponse, error) {
	usuarioID, err := uuid.Parse(req.UsuarioFinalID)
	if err != nil {
		return AsignacionResponse{}, aplicativoerrors.ErrInvalidUsuarioID
	}

	hasGlobal := req.AplicativoGlobalID != ""
	hasEmpresa := req.AplicativoEmpresaID != ""
	if hasGlobal == hasEmpresa {
		return AsignacionResponse{}, aplicativoerrors.ErrAsignacionReferencia
	}

	asig := &Asignacion{
		ID:             uuid.New(),
		UsuarioFinalID: usuarioID,
		DatosAcceso:    req.DatosAcceso,
		Notas:          req.Notas,
	}
	if hasGlobal {
		gid, err := uuid.Parse(req.AplicativoGlobalID)
		if err != nil {
			return AsignacionResponse{}, aplicativoerrors.ErrInvalidAplicativoID
		}
		asig.AplicativoGlobalID = &gid
	} else {
		eid, err := uuid.Parse(req.AplicativoEmpresaID)
		if err != nil {
			return AsignacionResponse{}, aplicativoerrors.ErrInvalidAplicativoID
		}
		asig.AplicativoEmpresaID = &eid
	}

	if err := s.repo.CreateAsignacion(ctx, asig); err != nil {
		s.logger.Error("create asignacion failed", zap.Error(err))
		return AsignacionResponse{}, mapRepositoryError(err)
	}

	resp := AsignacionResponse{
		ID:             asig.ID.String(),
		UsuarioFinalID: usuarioID.String(),
		DatosAcceso:    asig.DatosAcceso,
		Notas:          asig.Notas,
		CreatedAt:      asig.CreatedAt,
	}
	if asig.AplicativoGlobalID != nil {
		resp.AplicativoGlobalID = asig.AplicativoGlobalID.String()
	}
	if asig.AplicativoEmpresaID != nil {
		resp.AplicativoEmpresaID = asig.AplicativoEmpresaID.String()
	}
	return resp, nil
}

func (s *service) GetAsignaciones(ctx context.Context, usuarioID string) ([]AsignacionResponse, error) {
	if usuarioID != "" {
		if _, err := uuid.Parse(usuarioID); err != nil {
			return nil, aplicativoerrors.ErrInvalidUsuarioID
		}
	}

	rows, err := s.repo.FindAsignaciones(ctx, usuarioID)
	if err != nil {
		s.logger.Error("get asignaciones failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	if rows == nil {
		rows = []AsignacionResponse{}
	}
	return rows, nil
}

func (s *service) DeleteAsignacion(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return aplicativoerrors.ErrInvalidAplicativoID
	}
	if err := s.repo.DeleteAsignacion(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return aplicativoerrors.ErrAsignacionNotFound
		}
		s.logger.Error("delete asignacion failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	return nil
}

func mapGlobal(a AplicativoGlobal) GlobalResponse {
	return GlobalResponse{
		ID:               a.ID.String(),
		Nombre:           a.Nombre,
		Descripcion:      a.Descripcion,
		Icono:            a.Icono,
		CamposRequeridos: a.CamposRequeridos,
		Activo:           a.Activo,
		CreatedAt:        a.CreatedAt,
	}
}

func mapEmpresaApp(a AplicativoEmpresa) EmpresaAppResponse {
	return EmpresaAppResponse{
		ID:                   a.ID.String(),
		EmpresaID:            a.EmpresaID.String(),
		Nombre:               a.Nombre,
		Descripcion:          a.Descripcion,
		Icono:                a.Icono,
		CamposPersonalizados: a.CamposPersonalizados,
		Activo:               a.Activo,
		CreatedAt:            a.CreatedAt,
	}
}
