package sistema_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/sistema"
	sistemaerrors "github.com/Harols34/convertia-hub-790d3cfd/internal/sistema/errors"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/sistema/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func newSistemaService(t *testing.T) (sistema.Service, *mock.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	return sistema.NewService(repo), repo
}

func TestSistemaService_GetByClaveNotFound(t *testing.T) {
	svc, repo := newSistemaService(t)

	repo.EXPECT().FindByClave(gomock.Any(), "portal_mensaje").Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetByClave(context.Background(), "portal_mensaje")

	assert.ErrorIs(t, err, sistemaerrors.ErrConfiguracionNotFound)
}

func TestSistemaService_GetByClaveEmpty(t *testing.T) {
	svc, _ := newSistemaService(t)

	_, err := svc.GetByClave(context.Background(), "   ")

	assert.ErrorIs(t, err, sistemaerrors.ErrClaveRequired)
}

func TestSistemaService_UpsertTrimsClave(t *testing.T) {
	svc, repo := newSistemaService(t)

	valor := json.RawMessage(`{"habilitado":true}`)
	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cfg *sistema.Configuracion) error {
			assert.Equal(t, "modo_mantenimiento", cfg.Clave)
			assert.JSONEq(t, `{"habilitado":true}`, string(cfg.Valor))
			return nil
		})

	resp, err := svc.Upsert(context.Background(), " modo_mantenimiento ", sistema.UpsertConfiguracionRequest{Valor: valor})

	assert.NoError(t, err)
	assert.Equal(t, "modo_mantenimiento", resp.Clave)
}

func TestSistemaService_GetAll(t *testing.T) {
	svc, repo := newSistemaService(t)

	repo.EXPECT().FindAll(gomock.Any()).Return([]sistema.Configuracion{
		{Clave: "modo_mantenimiento", Valor: json.RawMessage(`false`)},
		{Clave: "portal_mensaje", Valor: json.RawMessage(`"Bienvenido"`)},
	}, nil)

	configs, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, configs, 2)
	assert.Equal(t, "modo_mantenimiento", configs[0].Clave)
}
