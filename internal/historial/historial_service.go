package historial

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// aggregate types carried in event headers, mapped to the tables the trail
// reports on.
var tablaByAggregate = map[string]string{
	"usuario_final": "usuarios_finales",
	"empresa":       "empresas",
	"admin":         "user_roles",
}

type Entry struct {
	AggregateType string
	RegistroID    string
	Accion        string
	AdminUserID   string
	Payload       []byte
}

//go:generate mockgen -source=historial_service.go -destination=mock/historial_service_mock.go -package=mock
type Service interface {
	Record(ctx context.Context, entry Entry) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("historial.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("historial.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Record(ctx context.Context, entry Entry) error {
	tabla, ok := tablaByAggregate[entry.AggregateType]
	if !ok {
		// Unknown aggregates are skipped, not failed: the trail must never
		// poison the consumer loop.
		s.logger.Warn("unknown aggregate type in lifecycle event",
			zap.String("aggregate_type", entry.AggregateType),
		)
		return nil
	}

	row := &HistorialCambio{
		ID:          uuid.New(),
		Tabla:       tabla,
		RegistroID:  entry.RegistroID,
		Accion:      entry.Accion,
		DatosNuevos: json.RawMessage(entry.Payload),
	}

	if entry.AdminUserID != "" {
		if adminID, err := uuid.Parse(entry.AdminUserID); err == nil {
			row.AdminUserID = &adminID
		}
	}

	if err := s.repo.Create(ctx, row); err != nil {
		return err
	}

	s.logger.Info("change recorded",
		zap.String("tabla", tabla),
		zap.String("registro_id", entry.RegistroID),
		zap.String("accion", entry.Accion),
	)
	return nil
}
