package empresa

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	empresaerrors "github.com/Harols34/convertia-hub-790d3cfd/internal/empresa/errors"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/events"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/messaging/kafka"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const EmpresaOptionsKey = "empresas:options"

//go:generate mockgen -source=empresa_service.go -destination=mock/empresa_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmpresaRequest) (EmpresaResponse, error)
	GetAll(ctx context.Context) ([]EmpresaResponse, error)
	GetOptions(ctx context.Context) ([]EmpresaOption, error)
	GetByID(ctx context.Context, id string) (EmpresaResponse, error)
	Update(ctx context.Context, id string, req UpdateEmpresaRequest) (EmpresaResponse, error)
	SetEstado(ctx context.Context, id string, activa bool) (EmpresaResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("empresa.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("empresa.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmpresaRequest) (EmpresaResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create empresa requested",
		zap.String("request_id", rid),
		zap.String("nombre", req.Nombre),
	)

	emp := &Empresa{
		ID:        uuid.New(),
		Nombre:    req.Nombre,
		NIT:       req.NIT,
		Direccion: req.Direccion,
		Telefono:  req.Telefono,
		Email:     req.Email,
		Activa:    true,
	}

	if err := s.repo.Create(ctx, emp); err != nil {
		s.logger.Error("create empresa persist failed", zap.Error(err))
		return EmpresaResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptions(ctx)

	emp.CreatedAt = time.Now().UTC()
	s.logger.Info("create empresa success",
		zap.String("request_id", rid),
		zap.String("empresa_id", emp.ID.String()),
	)
	return mapToResponse(*emp), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmpresaResponse, error) {
	emps, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all empresas failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	result := make([]EmpresaResponse, 0, len(emps))
	for _, e := range emps {
		result = append(result, mapToResponse(e))
	}
	return result, nil
}

func (s *service) GetOptions(ctx context.Context) ([]EmpresaOption, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, EmpresaOptionsKey).Result(); err == nil {
			var resp []EmpresaOption
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(EmpresaOptionsKey, func() (interface{}, error) {
		opts, err := s.repo.FindOptions(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		if s.rdb != nil {
			if jsonData, err := json.Marshal(opts); err == nil {
				s.rdb.Set(ctx, EmpresaOptionsKey, jsonData, 1*time.Hour)
			}
		}

		return opts, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmpresaOption), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmpresaResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return EmpresaResponse{}, empresaerrors.ErrInvalidEmpresaID
	}

	emp, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		s.logger.Error("get empresa by id failed", zap.Error(err))
		return EmpresaResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*emp), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmpresaRequest) (EmpresaResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return EmpresaResponse{}, empresaerrors.ErrInvalidEmpresaID
	}

	emp, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return EmpresaResponse{}, mapRepositoryError(err)
	}

	if req.Nombre != "" {
		emp.Nombre = req.Nombre
	}
	if req.NIT != "" {
		emp.NIT = req.NIT
	}
	if req.Direccion != "" {
		emp.Direccion = req.Direccion
	}
	if req.Telefono != "" {
		emp.Telefono = req.Telefono
	}
	if req.Email != "" {
		emp.Email = req.Email
	}
	if req.Activa != nil {
		emp.Activa = *req.Activa
	}

	if err := s.repo.Update(ctx, emp); err != nil {
		s.logger.Error("update empresa failed", zap.Error(err))
		return EmpresaResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptions(ctx)

	return mapToResponse(*emp), nil
}

func (s *service) SetEstado(ctx context.Context, id string, activa bool) (EmpresaResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return EmpresaResponse{}, empresaerrors.ErrInvalidEmpresaID
	}

	if err := s.repo.SetActiva(ctx, uid, activa); err != nil {
		s.logger.Error("set empresa estado failed", zap.Error(err))
		return EmpresaResponse{}, mapRepositoryError(err)
	}

	s.invalidateOptions(ctx)

	emp, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return EmpresaResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*emp), nil
}

// Delete removes an empresa without dependents. The usuario count check and
// the delete run in one transaction together with the outbox event, so a
// usuario created between check and delete still trips the FK constraint and
// rolls everything back.
func (s *service) Delete(ctx context.Context, id string) error {
	rid := contextutil.GetRequestID(ctx)

	uid, err := uuid.Parse(id)
	if err != nil {
		return empresaerrors.ErrInvalidEmpresaID
	}

	emp, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return mapRepositoryError(err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete empresa begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	count, err := qtx.CountUsuarios(ctx, uid)
	if err != nil {
		s.logger.Error("count empresa usuarios failed", zap.Error(err))
		return mapRepositoryError(err)
	}
	if count > 0 {
		return empresaerrors.ErrEmpresaHasUsuarios
	}

	if err := qtx.Delete(ctx, uid); err != nil {
		s.logger.Error("delete empresa failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.EmpresaDeletedEvent{
			EventType:   "empresa_deleted",
			RequestID:   rid,
			EmpresaID:   uid.String(),
			Nombre:      emp.Nombre,
			AdminUserID: contextutil.GetUserID(ctx),
			OccurredAt:  time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal empresa event failed", zap.Error(err))
			return err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "empresa",
			AggregateID:   uid.String(),
			EventType:     event.EventType,
			Topic:         events.EmpresaLifecycleTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("delete empresa outbox persist failed", zap.Error(err))
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete empresa commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	s.invalidateOptions(ctx)

	s.logger.Info("delete empresa success",
		zap.String("request_id", rid),
		zap.String("empresa_id", uid.String()),
	)
	return nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, EmpresaOptionsKey).Err(); err != nil {
		s.logger.Warn("invalidate empresa options cache failed", zap.Error(err))
	}
}

func mapToResponse(e Empresa) EmpresaResponse {
	return EmpresaResponse{
		ID:        e.ID.String(),
		Nombre:    e.Nombre,
		NIT:       e.NIT,
		Direccion: e.Direccion,
		Telefono:  e.Telefono,
		Email:     e.Email,
		Activa:    e.Activa,
		CreatedAt: e.CreatedAt,
	}
}
