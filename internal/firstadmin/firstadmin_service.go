package firstadmin

import (
	"context"
	"encoding/json"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/domain"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/events"
	firstadminerrors "github.com/Harols34/convertia-hub-790d3cfd/internal/firstadmin/errors"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/messaging/kafka"

	"database/sql"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=firstadmin_service.go -destination=mock/firstadmin_service_mock.go -package=mock
type Service interface {
	CreateFirstAdmin(ctx context.Context, req CreateFirstAdminRequest) (CreateFirstAdminResult, error)
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
	l := zap.L().Named("firstadmin.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("firstadmin.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

// CreateFirstAdmin creates the identity account and its admin role row in a
// single transaction, serialized by an advisory lock. Either both rows exist
// afterwards or neither does; an orphaned account can no longer be left
// behind by a failed role insert, and concurrent attempts cannot both pass
// the zero-count check.
func (s *service) CreateFirstAdmin(ctx context.Context, req CreateFirstAdminRequest) (CreateFirstAdminResult, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))

	// Re-validate server-side; the form layer is not trusted
	if _, err := mail.ParseAddress(email); err != nil {
		return CreateFirstAdminResult{}, firstadminerrors.ErrInvalidEmail
	}
	if len(req.Password) < 6 {
		return CreateFirstAdminResult{}, firstadminerrors.ErrPasswordTooShort
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		return CreateFirstAdminResult{}, firstadminerrors.ErrIdentityCreationFailed
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("bootstrap begin tx failed", zap.Error(err))
		return CreateFirstAdminResult{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.AcquireBootstrapLock(ctx); err != nil {
		s.logger.Error("acquire bootstrap lock failed", zap.Error(err))
		return CreateFirstAdminResult{}, err
	}

	count, err := qtx.CountRoles(ctx)
	if err != nil {
		s.logger.Error("count roles failed", zap.Error(err))
		return CreateFirstAdminResult{}, err
	}
	if count > 0 {
		return CreateFirstAdminResult{}, firstadminerrors.ErrAlreadyBootstrapped
	}

	userID := uuid.New()

	if err := qtx.CreateAuthUser(ctx, userID.String(), email, string(hashed)); err != nil {
		s.logger.Error("create auth user failed", zap.Error(err))
		if isUniqueViolation(err) {
			return CreateFirstAdminResult{}, firstadminerrors.ErrAlreadyBootstrapped
		}
		return CreateFirstAdminResult{}, firstadminerrors.ErrIdentityCreationFailed
	}

	if err := qtx.AssignRole(ctx, userID.String(), domain.RoleAdmin); err != nil {
		// Rolling back also removes the account created above
		s.logger.Error("assign admin role failed", zap.Error(err))
		if isUniqueViolation(err) {
			return CreateFirstAdminResult{}, firstadminerrors.ErrAlreadyBootstrapped
		}
		return CreateFirstAdminResult{}, firstadminerrors.ErrRoleAssignmentFailed
	}

	if s.outbox != nil {
		event := events.AdminBootstrappedEvent{
			EventType:  "admin_bootstrapped",
			UserID:     userID.String(),
			Email:      email,
			OccurredAt: time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal bootstrap event failed", zap.Error(err))
			return CreateFirstAdminResult{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			AggregateType: "admin",
			AggregateID:   userID.String(),
			EventType:     event.EventType,
			Topic:         events.AdminLifecycleTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("bootstrap outbox persist failed", zap.Error(err))
			return CreateFirstAdminResult{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("bootstrap commit failed", zap.Error(err))
		return CreateFirstAdminResult{}, err
	}

	s.logger.Info("first admin created",
		zap.String("user_id", userID.String()),
		zap.String("email", email),
	)

	return CreateFirstAdminResult{
		UserID:  userID.String(),
		Message: "Usuario administrador creado correctamente",
	}, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(strings.ToLower(err.Error()), "duplicate key value")
}
