package usuario_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/usuario"
	usuarioerrors "github.com/Harols34/convertia-hub-790d3cfd/internal/usuario/errors"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/usuario/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newUsuarioService(t *testing.T) (usuario.Service, *mock.MockRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)

	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)

	svc := usuario.NewService(db, repo, zap.NewNop())
	return svc, repo, dbMock, func() { db.Close() }
}

func TestUsuarioCreate_GeneratesCodigoUnico(t *testing.T) {
	svc, repo, dbMock, cleanup := newUsuarioService(t)
	defer cleanup()

	empresaID := uuid.New()
	repo.EXPECT().EmpresaExists(gomock.Any(), empresaID).Return(true, nil)

	dbMock.ExpectBegin()
	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *usuario.Usuario) error {
			assert.Equal(t, "12345_juan", u.CodigoUnico)
			assert.True(t, u.Activo)
			return nil
		})
	dbMock.ExpectCommit()

	resp, err := svc.Create(context.Background(), usuario.CreateUsuarioRequest{
		EmpresaID:       empresaID.String(),
		NumeroDocumento: "12345",
		NombreCompleto:  "Juan Perez",
	})

	assert.NoError(t, err)
	assert.Equal(t, "12345_juan", resp.CodigoUnico)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestUsuarioCreate_CodigoCollisionRejected(t *testing.T) {
	svc, repo, dbMock, cleanup := newUsuarioService(t)
	defer cleanup()

	empresaID := uuid.New()
	repo.EXPECT().EmpresaExists(gomock.Any(), empresaID).Return(true, nil)

	dbMock.ExpectBegin()
	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(&pgconn.PgError{Code: "23505", ConstraintName: "usuarios_finales_codigo_unico_key"})
	dbMock.ExpectRollback()

	_, err := svc.Create(context.Background(), usuario.CreateUsuarioRequest{
		EmpresaID:       empresaID.String(),
		NumeroDocumento: "12345",
		NombreCompleto:  "Juan Perez",
	})

	assert.ErrorIs(t, err, usuarioerrors.ErrCodigoUnicoConflict)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestUsuarioCreate_EmpresaMissing(t *testing.T) {
	svc, repo, _, cleanup := newUsuarioService(t)
	defer cleanup()

	empresaID := uuid.New()
	repo.EXPECT().EmpresaExists(gomock.Any(), empresaID).Return(false, nil)

	_, err := svc.Create(context.Background(), usuario.CreateUsuarioRequest{
		EmpresaID:       empresaID.String(),
		NumeroDocumento: "12345",
		NombreCompleto:  "Juan Perez",
	})

	assert.ErrorIs(t, err, usuarioerrors.ErrEmpresaNotFound)
}

func TestUsuarioUpdate_KeepsCodigoUnico(t *testing.T) {
	svc, repo, _, cleanup := newUsuarioService(t)
	defer cleanup()

	id := uuid.New()
	existing := &usuario.Usuario{
		ID:              id,
		EmpresaID:       uuid.New(),
		NumeroDocumento: "12345",
		NombreCompleto:  "Juan Perez",
		CodigoUnico:     "12345_juan",
		Activo:          true,
	}
	repo.EXPECT().FindByID(gomock.Any(), id).Return(existing, nil)
	repo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *usuario.Usuario) error {
			assert.Equal(t, "Juan Carlos Perez", u.NombreCompleto)
			assert.Equal(t, "12345_juan", u.CodigoUnico)
			return nil
		})

	resp, err := svc.Update(context.Background(), id.String(), usuario.UpdateUsuarioRequest{
		NombreCompleto: "Juan Carlos Perez",
	})

	assert.NoError(t, err)
	assert.Equal(t, "12345_juan", resp.CodigoUnico)
}

func TestUsuarioGetAll_InvalidEmpresaFilter(t *testing.T) {
	svc, _, _, cleanup := newUsuarioService(t)
	defer cleanup()

	_, err := svc.GetAll(context.Background(), "nope")
	assert.ErrorIs(t, err, usuarioerrors.ErrInvalidEmpresaID)
}

func TestUsuarioDelete_NotFound(t *testing.T) {
	svc, repo, _, cleanup := newUsuarioService(t)
	defer cleanup()

	id := uuid.New()
	repo.EXPECT().Delete(gomock.Any(), id).Return(sql.ErrNoRows)

	err := svc.Delete(context.Background(), id.String())
	assert.ErrorIs(t, err, usuarioerrors.ErrUsuarioNotFound)
}
