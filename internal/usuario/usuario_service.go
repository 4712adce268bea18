package usuario

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/events"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/messaging/kafka"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/shared/contextutil"
	usuarioerrors "github.com/Harols34/convertia-hub-790d3cfd/internal/usuario/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=usuario_service.go -destination=mock/usuario_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateUsuarioRequest) (UsuarioResponse, error)
	GetAll(ctx context.Context, empresaID string) ([]UsuarioResponse, error)
	GetByID(ctx context.Context, id string) (UsuarioResponse, error)
	Update(ctx context.Context, id string, req UpdateUsuarioRequest) (UsuarioResponse, error)
	SetEstado(ctx context.Context, id string, activo bool) (UsuarioResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("usuario.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("usuario.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

// Create inserts the usuario with its derived codigo_unico. A unique-index
// violation on the code is surfaced as a Conflict; the caller must change the
// document number or the name, there is no silent suffixing.
func (s *service) Create(ctx context.Context, req CreateUsuarioRequest) (UsuarioResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create usuario requested",
		zap.String("request_id", rid),
		zap.String("empresa_id", req.EmpresaID),
		zap.String("numero_documento", req.NumeroDocumento),
	)

	empresaID, err := uuid.Parse(req.EmpresaID)
	if err != nil {
		return UsuarioResponse{}, usuarioerrors.ErrInvalidEmpresaID
	}

	exists, err := s.repo.EmpresaExists(ctx, empresaID)
	if err != nil {
		s.logger.Error("create usuario empresa check failed", zap.Error(err))
		return UsuarioResponse{}, mapRepositoryError(err)
	}
	if !exists {
		return UsuarioResponse{}, usuarioerrors.ErrEmpresaNotFound
	}

	u := &Usuario{
		ID:               uuid.New(),
		EmpresaID:        empresaID,
		NumeroDocumento:  req.NumeroDocumento,
		NombreCompleto:   req.NombreCompleto,
		Celular:          req.Celular,
		Email:            req.Email,
		CodigoUnico:      GenerateCodigoUnico(req.NumeroDocumento, req.NombreCompleto),
		Activo:           true,
		DatosAdicionales: req.DatosAdicionales,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create usuario begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return UsuarioResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Create(ctx, u); err != nil {
		s.logger.Error("create usuario persist failed",
			zap.String("codigo_unico", u.CodigoUnico),
			zap.Error(err),
		)
		return UsuarioResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.UsuarioCreatedEvent{
			EventType:   "usuario_created",
			RequestID:   rid,
			UsuarioID:   u.ID.String(),
			EmpresaID:   empresaID.String(),
			CodigoUnico: u.CodigoUnico,
			AdminUserID: contextutil.GetUserID(ctx),
			OccurredAt:  time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal usuario event failed", zap.Error(err))
			return UsuarioResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "usuario_final",
			AggregateID:   u.ID.String(),
			EventType:     event.EventType,
			Topic:         events.UsuarioLifecycleTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("create usuario outbox persist failed", zap.Error(err))
			return UsuarioResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create usuario commit failed", zap.String("request_id", rid), zap.Error(err))
		return UsuarioResponse{}, err
	}

	u.CreatedAt = time.Now().UTC()
	s.logger.Info("create usuario success",
		zap.String("request_id", rid),
		zap.String("usuario_id", u.ID.String()),
		zap.String("codigo_unico", u.CodigoUnico),
	)
	return mapToResponse(*u), nil
}

func (s *service) GetAll(ctx context.Context, empresaID string) ([]UsuarioResponse, error) {
	if empresaID != "" {
		if _, err := uuid.Parse(empresaID); err != nil {
			return nil, usuarioerrors.ErrInvalidEmpresaID
		}
	}

	users, err := s.repo.FindAll(ctx, empresaID)
	if err != nil {
		s.logger.Error("get all usuarios failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	result := make([]UsuarioResponse, 0, len(users))
	for _, u := range users {
		result = append(result, mapToResponse(u))
	}
	return result, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UsuarioResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return UsuarioResponse{}, usuarioerrors.ErrInvalidUsuarioID
	}

	u, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		s.logger.Error("get usuario by id failed", zap.Error(err))
		return UsuarioResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*u), nil
}

// Update never touches codigo_unico: the code is handed out to the end user
// at creation time and must keep resolving after profile edits.
func (s *service) Update(ctx context.Context, id string, req UpdateUsuarioRequest) (UsuarioResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return UsuarioResponse{}, usuarioerrors.ErrInvalidUsuarioID
	}

	u, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return UsuarioResponse{}, mapRepositoryError(err)
	}

	if req.NumeroDocumento != "" {
		u.NumeroDocumento = req.NumeroDocumento
	}
	if req.NombreCompleto != "" {
		u.NombreCompleto = req.NombreCompleto
	}
	if req.Celular != "" {
		u.Celular = req.Celular
	}
	if req.Email != "" {
		u.Email = req.Email
	}
	if len(req.DatosAdicionales) > 0 {
		u.DatosAdicionales = req.DatosAdicionales
	}

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("update usuario failed", zap.Error(err))
		return UsuarioResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*u), nil
}

func (s *service) SetEstado(ctx context.Context, id string, activo bool) (UsuarioResponse, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return UsuarioResponse{}, usuarioerrors.ErrInvalidUsuarioID
	}

	if err := s.repo.SetActivo(ctx, uid, activo); err != nil {
		s.logger.Error("set usuario estado failed", zap.Error(err))
		return UsuarioResponse{}, mapRepositoryError(err)
	}

	u, err := s.repo.FindByID(ctx, uid)
	if err != nil {
		return UsuarioResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*u), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	uid, err := uuid.Parse(id)
	if err != nil {
		return usuarioerrors.ErrInvalidUsuarioID
	}

	if err := s.repo.Delete(ctx, uid); err != nil {
		s.logger.Error("delete usuario failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete usuario success", zap.String("usuario_id", uid.String()))
	return nil
}

func mapToResponse(u Usuario) UsuarioResponse {
	datos := u.DatosAdicionales
	if string(datos) == "null" {
		datos = nil
	}
	return UsuarioResponse{
		ID:               u.ID.String(),
		EmpresaID:        u.EmpresaID.String(),
		EmpresaNombre:    u.EmpresaNombre,
		NumeroDocumento:  u.NumeroDocumento,
		NombreCompleto:   u.NombreCompleto,
		Celular:          u.Celular,
		Email:            u.Email,
		CodigoUnico:      u.CodigoUnico,
		Activo:           u.Activo,
		DatosAdicionales: datos,
		CreatedAt:        u.CreatedAt,
	}
}
