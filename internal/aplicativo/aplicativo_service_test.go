package aplicativo_test

import (
	"context"
	"testing"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/aplicativo"
	aplicativoerrors "github.com/Harols34/convertia-hub-790d3cfd/internal/aplicativo/errors"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/aplicativo/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newAplicativoService(t *testing.T) (aplicativo.Service, *mock.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	return aplicativo.NewService(repo, zap.NewNop()), repo
}

func TestCreateAsignacion_RequiresExactlyOneReference(t *testing.T) {
	svc, _ := newAplicativoService(t)

	usuarioID := uuid.NewString()

	// neither reference
	_, err := svc.CreateAsignacion(context.Background(), aplicativo.CreateAsignacionRequest{
		UsuarioFinalID: usuarioID,
	})
	assert.ErrorIs(t, err, aplicativoerrors.ErrAsignacionReferencia)

	// both references
	_, err = svc.CreateAsignacion(context.Background(), aplicativo.CreateAsignacionRequest{
		UsuarioFinalID:      usuarioID,
		AplicativoGlobalID:  uuid.NewString(),
		AplicativoEmpresaID: uuid.NewString(),
	})
	assert.ErrorIs(t, err, aplicativoerrors.ErrAsignacionReferencia)
}

func TestCreateAsignacion_GlobalReference(t *testing.T) {
	svc, repo := newAplicativoService(t)

	usuarioID := uuid.New()
	globalID := uuid.New()

	repo.EXPECT().
		CreateAsignacion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, asig *aplicativo.Asignacion) error {
			assert.Equal(t, usuarioID, asig.UsuarioFinalID)
			assert.NotNil(t, asig.AplicativoGlobalID)
			assert.Nil(t, asig.AplicativoEmpresaID)
			return nil
		})

	resp, err := svc.CreateAsignacion(context.Background(), aplicativo.CreateAsignacionRequest{
		UsuarioFinalID:     usuarioID.String(),
		AplicativoGlobalID: globalID.String(),
	})

	assert.NoError(t, err)
	assert.Equal(t, globalID.String(), resp.AplicativoGlobalID)
	assert.Empty(t, resp.AplicativoEmpresaID)
}

func TestCreateGlobal_DefaultsActivo(t *testing.T) {
	svc, repo := newAplicativoService(t)

	repo.EXPECT().
		CreateGlobal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, app *aplicativo.AplicativoGlobal) error {
			assert.True(t, app.Activo)
			assert.Equal(t, "CRM", app.Nombre)
			return nil
		})

	resp, err := svc.CreateGlobal(context.Background(), aplicativo.CreateGlobalRequest{Nombre: "CRM"})

	assert.NoError(t, err)
	assert.True(t, resp.Activo)
}

func TestGetEmpresaApps_InvalidFilter(t *testing.T) {
	svc, _ := newAplicativoService(t)

	_, err := svc.GetEmpresaApps(context.Background(), "bad-id")
	assert.ErrorIs(t, err, aplicativoerrors.ErrInvalidEmpresaID)
}

func TestDeleteAsignacion_NotFound(t *testing.T) {
	svc, repo := newAplicativoService(t)

	id := uuid.NewString()
	repo.EXPECT().DeleteAsignacion(gomock.Any(), id).Return(gorm.ErrRecordNotFound)

	err := svc.DeleteAsignacion(context.Background(), id)
	assert.ErrorIs(t, err, aplicativoerrors.ErrAsignacionNotFound)
}

func TestUpdateGlobal_NotFound(t *testing.T) {
	svc, repo := newAplicativoService(t)

	id := uuid.NewString()
	repo.EXPECT().FindGlobalByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.UpdateGlobal(context.Background(), id, aplicativo.UpdateGlobalRequest{Nombre: "Nuevo"})
	assert.ErrorIs(t, err, aplicativoerrors.ErrAplicativoNotFound)
}
