package empresa_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/empresa"
	empresaerrors "github.com/Harols34/convertia-hub-790d3cfd/internal/empresa/errors"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/empresa/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newEmpresaService(t *testing.T) (empresa.Service, *mock.MockRepository, sqlmock.Sqlmock, func()) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)

	db, dbMock, err := sqlmock.New()
	assert.NoError(t, err)

	svc := empresa.NewService(db, repo, nil, zap.NewNop())
	return svc, repo, dbMock, func() { db.Close() }
}

func TestEmpresaCreate_Success(t *testing.T) {
	svc, repo, _, cleanup := newEmpresaService(t)
	defer cleanup()

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, emp *empresa.Empresa) error {
			assert.Equal(t, "Convert-IA", emp.Nombre)
			assert.True(t, emp.Activa)
			assert.NotEqual(t, uuid.Nil, emp.ID)
			return nil
		})

	resp, err := svc.Create(context.Background(), empresa.CreateEmpresaRequest{
		Nombre: "Convert-IA",
		NIT:    "900123456-7",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Convert-IA", resp.Nombre)
	assert.True(t, resp.Activa)
}

func TestEmpresaGetByID_InvalidID(t *testing.T) {
	svc, _, _, cleanup := newEmpresaService(t)
	defer cleanup()

	_, err := svc.GetByID(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, empresaerrors.ErrInvalidEmpresaID)
}

func TestEmpresaGetByID_NotFound(t *testing.T) {
	svc, repo, _, cleanup := newEmpresaService(t)
	defer cleanup()

	id := uuid.New()
	repo.EXPECT().FindByID(gomock.Any(), id).Return(nil, sql.ErrNoRows)

	_, err := svc.GetByID(context.Background(), id.String())
	assert.ErrorIs(t, err, empresaerrors.ErrEmpresaNotFound)
}

func TestEmpresaDelete_RestrictedWhenUsuariosExist(t *testing.T) {
	svc, repo, dbMock, cleanup := newEmpresaService(t)
	defer cleanup()

	id := uuid.New()
	repo.EXPECT().FindByID(gomock.Any(), id).Return(&empresa.Empresa{ID: id, Nombre: "Acme"}, nil)

	dbMock.ExpectBegin()
	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().CountUsuarios(gomock.Any(), id).Return(int64(3), nil)
	dbMock.ExpectRollback()

	err := svc.Delete(context.Background(), id.String())

	assert.ErrorIs(t, err, empresaerrors.ErrEmpresaHasUsuarios)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestEmpresaDelete_Success(t *testing.T) {
	svc, repo, dbMock, cleanup := newEmpresaService(t)
	defer cleanup()

	id := uuid.New()
	repo.EXPECT().FindByID(gomock.Any(), id).Return(&empresa.Empresa{ID: id, Nombre: "Acme"}, nil)

	dbMock.ExpectBegin()
	repo.EXPECT().WithTx(gomock.Any()).Return(repo)
	repo.EXPECT().CountUsuarios(gomock.Any(), id).Return(int64(0), nil)
	repo.EXPECT().Delete(gomock.Any(), id).Return(nil)
	dbMock.ExpectCommit()

	err := svc.Delete(context.Background(), id.String())

	assert.NoError(t, err)
	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestEmpresaGetOptions_NoRedisHitsRepo(t *testing.T) {
	svc, repo, _, cleanup := newEmpresaService(t)
	defer cleanup()

	opts := []empresa.EmpresaOption{{ID: uuid.NewString(), Nombre: "Acme"}}
	repo.EXPECT().FindOptions(gomock.Any()).Return(opts, nil)

	got, err := svc.GetOptions(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, opts, got)
}
