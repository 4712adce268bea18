package portal

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	portalerrors "github.com/Harols34/convertia-hub-790d3cfd/internal/portal/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=portal_service.go -destination=mock/portal_service_mock.go -package=mock
type Service interface {
	Lookup(ctx context.Context, codigo string) (PortalUsuarioResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("portal.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("portal.service")
	}
	return &service{repo: repo, logger: l}
}

// Lookup resolves a self-service code to the owning usuario and its assigned
// aplicativos. The code is matched exactly after trimming surrounding
// whitespace; a miss is an expected outcome and logged at debug only.
func (s *service) Lookup(ctx context.Context, codigo string) (PortalUsuarioResponse, error) {
	codigo = strings.TrimSpace(codigo)
	if codigo == "" {
		return PortalUsuarioResponse{}, portalerrors.ErrCodigoRequired
	}

	row, err := s.repo.FindByCodigo(ctx, codigo)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Debug("portal lookup miss", zap.String("codigo", codigo))
			return PortalUsuarioResponse{}, portalerrors.ErrCodigoNotFound
		}
		s.logger.Error("portal lookup failed", zap.Error(err))
		return PortalUsuarioResponse{}, err
	}

	apps, err := s.repo.FindAplicativos(ctx, row.ID)
	if err != nil {
		s.logger.Error("portal aplicativos lookup failed",
			zap.String("usuario_id", row.ID.String()),
			zap.Error(err),
		)
		return PortalUsuarioResponse{}, err
	}
	if apps == nil {
		apps = []PortalAplicativo{}
	}

	return PortalUsuarioResponse{
		NombreCompleto:  row.NombreCompleto,
		NumeroDocumento: row.NumeroDocumento,
		Celular:         row.Celular,
		Email:           row.Email,
		CodigoUnico:     row.CodigoUnico,
		Activo:          row.Activo,
		EmpresaNombre:   row.EmpresaNombre,
		Aplicativos:     apps,
	}, nil
}
