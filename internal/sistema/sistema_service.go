package sistema

import (
	"context"
	"errors"
	"strings"

	sistemaerrors "github.com/Harols34/convertia-hub-790d3cfd/internal/sistema/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=sistema_service.go -destination=mock/sistema_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]ConfiguracionResponse, error)
	GetByClave(ctx context.Context, clave string) (ConfiguracionResponse, error)
	Upsert(ctx context.Context, clave string, req UpsertConfiguracionRequest) (ConfiguracionResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("sistema.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("sistema.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]ConfiguracionResponse, error) {
	configs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all configuraciones failed", zap.Error(err))
		return nil, err
	}

	result := make([]ConfiguracionResponse, 0, len(configs))
	for _, cfg := range configs {
		result = append(result, mapToResponse(cfg))
	}
	return result, nil
}

func (s *service) GetByClave(ctx context.Context, clave string) (ConfiguracionResponse, error) {
	clave = strings.TrimSpace(clave)
	if clave == "" {
		return ConfiguracionResponse{}, sistemaerrors.ErrClaveRequired
	}

	cfg, err := s.repo.FindByClave(ctx, clave)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ConfiguracionResponse{}, sistemaerrors.ErrConfiguracionNotFound
		}
		s.logger.Error("get configuracion failed", zap.String("clave", clave), zap.Error(err))
		return ConfiguracionResponse{}, err
	}

	return mapToResponse(*cfg), nil
}

func (s *service) Upsert(ctx context.Context, clave string, req UpsertConfiguracionRequest) (ConfiguracionResponse, error) {
	clave = strings.TrimSpace(clave)
	if clave == "" {
		return ConfiguracionResponse{}, sistemaerrors.ErrClaveRequired
	}

	cfg := &Configuracion{
		ID:          uuid.New(),
		Clave:       clave,
		Valor:       req.Valor,
		Descripcion: req.Descripcion,
	}

	if err := s.repo.Upsert(ctx, cfg); err != nil {
		s.logger.Error("upsert configuracion failed", zap.String("clave", clave), zap.Error(err))
		return ConfiguracionResponse{}, err
	}

	s.logger.Info("configuracion actualizada", zap.String("clave", clave))
	return mapToResponse(*cfg), nil
}

func mapToResponse(cfg Configuracion) ConfiguracionResponse {
	return ConfiguracionResponse{
		Clave:       cfg.Clave,
		Valor:       cfg.Valor,
		Descripcion: cfg.Descripcion,
		UpdatedAt:   cfg.UpdatedAt,
	}
}
