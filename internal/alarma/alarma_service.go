package alarma

import (
	"context"
	"time"

	alarmaerrors "github.com/Harols34/convertia-hub-790d3cfd/internal/alarma/errors"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	EstadoAbierta  = "abierta"
	EstadoResuelta = "resuelta"

	PrioridadMedia = "media"
)

//go:generate mockgen -source=alarma_service.go -destination=mock/alarma_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateAlarmaRequest) (AlarmaResponse, error)
	GetAll(ctx context.Context) ([]AlarmaResponse, error)
	Update(ctx context.Context, id string, req UpdateAlarmaRequest) (AlarmaResponse, error)
	Resolver(ctx context.Context, id string, req ResolverAlarmaRequest) (AlarmaResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("alarma.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("alarma.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateAlarmaRequest) (AlarmaResponse, error) {
	usuarioID, err := uuid.Parse(req.UsuarioFinalID)
	if err != nil {
		return AlarmaResponse{}, alarmaerrors.ErrInvalidUsuarioID
	}

	prioridad := req.Prioridad
	if prioridad == "" {
		prioridad = PrioridadMedia
	}

	a := &Alarma{
		ID:             uuid.New(),
		UsuarioFinalID: usuarioID,
		Titulo:         req.Titulo,
		Descripcion:    req.Descripcion,
		Estado:         EstadoAbierta,
		Prioridad:      prioridad,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		s.logger.Error("create alarma failed", zap.Error(err))
		return AlarmaResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*a, "", ""), nil
}

func (s *service) GetAll(ctx context.Context) ([]AlarmaResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all alarmas failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	result := make([]AlarmaResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, mapToResponse(row.Alarma, row.UsuarioNombre, row.EmpresaNombre))
	}
	return result, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateAlarmaRequest) (AlarmaResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AlarmaResponse{}, alarmaerrors.ErrInvalidAlarmaID
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AlarmaResponse{}, mapRepositoryError(err)
	}

	if req.Titulo != "" {
		a.Titulo = req.Titulo
	}
	if req.Descripcion != "" {
		a.Descripcion = req.Descripcion
	}
	if req.Estado != "" {
		a.Estado = req.Estado
	}
	if req.Prioridad != "" {
		a.Prioridad = req.Prioridad
	}
	if len(req.Comentarios) > 0 {
		a.Comentarios = req.Comentarios
	}
	if len(req.ArchivosAdjuntos) > 0 {
		a.ArchivosAdjuntos = req.ArchivosAdjuntos
	}

	if err := s.repo.Update(ctx, a); err != nil {
		s.logger.Error("update alarma failed", zap.Error(err))
		return AlarmaResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*a, "", ""), nil
}

// Resolver stamps resolution metadata with the acting admin. The estado is
// free-form; callers that send nothing get "resuelta".
func (s *service) Resolver(ctx context.Context, id string, req ResolverAlarmaRequest) (AlarmaResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return AlarmaResponse{}, alarmaerrors.ErrInvalidAlarmaID
	}

	a, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return AlarmaResponse{}, mapRepositoryError(err)
	}

	estado := req.Estado
	if estado == "" {
		estado = EstadoResuelta
	}
	now := time.Now().UTC()
	a.Estado = estado
	a.ResueltaAt = &now

	if adminID := contextutil.GetUserID(ctx); adminID != "" {
		if uid, err := uuid.Parse(adminID); err == nil {
			a.ResueltaPor = &uid
		}
	}

	if err := s.repo.Update(ctx, a); err != nil {
		s.logger.Error("resolve alarma failed", zap.Error(err))
		return AlarmaResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("alarma resuelta",
		zap.String("alarma_id", a.ID.String()),
		zap.String("estado", estado),
	)
	return mapToResponse(*a, "", ""), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return alarmaerrors.ErrInvalidAlarmaID
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete alarma failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	return nil
}

func mapToResponse(a Alarma, usuarioNombre, empresaNombre string) AlarmaResponse {
	resp := AlarmaResponse{
		ID:               a.ID.String(),
		UsuarioFinalID:   a.UsuarioFinalID.String(),
		UsuarioNombre:    usuarioNombre,
		EmpresaNombre:    empresaNombre,
		Titulo:           a.Titulo,
		Descripcion:      a.Descripcion,
		Estado:           a.Estado,
		Prioridad:        a.Prioridad,
		ResueltaAt:       a.ResueltaAt,
		Comentarios:      a.Comentarios,
		ArchivosAdjuntos: a.ArchivosAdjuntos,
		CreatedAt:        a.CreatedAt,
	}
	if a.ResueltaPor != nil {
		resp.ResueltaPor = a.ResueltaPor.String()
	}
	return resp
}
