package firstadmin_test

import (
	"context"
	"testing"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/firstadmin"
	firstadminerrors "github.com/Harols34/convertia-hub-790d3cfd/internal/firstadmin/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newBootstrapService(t *testing.T) (firstadmin.Service, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := firstadmin.NewRepository(db)
	svc := firstadmin.NewService(db, repo, zap.NewNop())

	return svc, mock, func() { db.Close() }
}

func TestCreateFirstAdmin_Success(t *testing.T) {
	svc, mock, cleanup := newBootstrapService(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(\$1\)`).
		WithArgs(int64(784312001)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM user_roles`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO auth_users`).
		WithArgs(sqlmock.AnyArg(), "admin@convert-ia.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO user_roles`).
		WithArgs(sqlmock.AnyArg(), "admin").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	result, err := svc.CreateFirstAdmin(context.Background(), firstadmin.CreateFirstAdminRequest{
		Email:    "Admin@Convert-IA.com",
		Password: "supersecret",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, result.UserID)
	assert.Equal(t, "Usuario administrador creado correctamente", result.Message)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFirstAdmin_AlreadyBootstrapped(t *testing.T) {
	svc, mock, cleanup := newBootstrapService(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(\$1\)`).
		WithArgs(int64(784312001)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM user_roles`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	_, err := svc.CreateFirstAdmin(context.Background(), firstadmin.CreateFirstAdminRequest{
		Email:    "admin@convert-ia.com",
		Password: "supersecret",
	})

	assert.ErrorIs(t, err, firstadminerrors.ErrAlreadyBootstrapped)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFirstAdmin_DuplicateEmailMapsToAlreadyBootstrapped(t *testing.T) {
	svc, mock, cleanup := newBootstrapService(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(\$1\)`).
		WithArgs(int64(784312001)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM user_roles`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO auth_users`).
		WithArgs(sqlmock.AnyArg(), "admin@convert-ia.com", sqlmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "auth_users_email_key"})
	mock.ExpectRollback()

	_, err := svc.CreateFirstAdmin(context.Background(), firstadmin.CreateFirstAdminRequest{
		Email:    "admin@convert-ia.com",
		Password: "supersecret",
	})

	assert.ErrorIs(t, err, firstadminerrors.ErrAlreadyBootstrapped)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFirstAdmin_RoleInsertFailureRollsBackAccount(t *testing.T) {
	svc, mock, cleanup := newBootstrapService(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec(`SELECT pg_advisory_xact_lock\(\$1\)`).
		WithArgs(int64(784312001)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM user_roles`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`INSERT INTO auth_users`).
		WithArgs(sqlmock.AnyArg(), "admin@convert-ia.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`INSERT INTO user_roles`).
		WithArgs(sqlmock.AnyArg(), "admin").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	_, err := svc.CreateFirstAdmin(context.Background(), firstadmin.CreateFirstAdminRequest{
		Email:    "admin@convert-ia.com",
		Password: "supersecret",
	})

	assert.ErrorIs(t, err, firstadminerrors.ErrRoleAssignmentFailed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateFirstAdmin_RejectsInvalidInput(t *testing.T) {
	svc, _, cleanup := newBootstrapService(t)
	defer cleanup()

	_, err := svc.CreateFirstAdmin(context.Background(), firstadmin.CreateFirstAdminRequest{
		Email:    "not-an-email",
		Password: "supersecret",
	})
	assert.ErrorIs(t, err, firstadminerrors.ErrInvalidEmail)

	_, err = svc.CreateFirstAdmin(context.Background(), firstadmin.CreateFirstAdminRequest{
		Email:    "admin@convert-ia.com",
		Password: "short",
	})
	assert.ErrorIs(t, err, firstadminerrors.ErrPasswordTooShort)
}
