package dashboard

import (
	"context"

	"go.uber.org/zap"
)

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	GetStats(ctx context.Context) (StatsResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) GetStats(ctx context.Context) (StatsResponse, error) {
	empresas, err := s.repo.CountEmpresas(ctx)
	if err != nil {
		s.logger.Error("count empresas failed", zap.Error(err))
		return StatsResponse{}, err
	}

	usuarios, err := s.repo.CountUsuarios(ctx)
	if err != nil {
		s.logger.Error("count usuarios failed", zap.Error(err))
		return StatsResponse{}, err
	}

	globales, err := s.repo.CountAplicativosGlobales(ctx)
	if err != nil {
		s.logger.Error("count aplicativos globales failed", zap.Error(err))
		return StatsResponse{}, err
	}

	deEmpresa, err := s.repo.CountAplicativosEmpresa(ctx)
	if err != nil {
		s.logger.Error("count aplicativos empresa failed", zap.Error(err))
		return StatsResponse{}, err
	}

	alarmas, err := s.repo.CountAlarmas(ctx)
	if err != nil {
		s.logger.Error("count alarmas failed", zap.Error(err))
		return StatsResponse{}, err
	}

	return StatsResponse{
		Empresas:    empresas,
		Usuarios:    usuarios,
		Aplicativos: globales + deEmpresa,
		Alarmas:     alarmas,
	}, nil
}
