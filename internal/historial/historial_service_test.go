package historial_test

import (
	"context"
	"testing"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/historial"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/historial/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newHistorialService(t *testing.T) (historial.Service, *mock.MockRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	return historial.NewService(repo), repo
}

func TestHistorialService_RecordMapsAggregateToTabla(t *testing.T) {
	svc, repo := newHistorialService(t)

	registroID := uuid.NewString()
	adminID := uuid.New()

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, row *historial.HistorialCambio) error {
			assert.Equal(t, "usuarios_finales", row.Tabla)
			assert.Equal(t, registroID, row.RegistroID)
			assert.Equal(t, "usuario.created", row.Accion)
			if assert.NotNil(t, row.AdminUserID) {
				assert.Equal(t, adminID, *row.AdminUserID)
			}
			assert.JSONEq(t, `{"codigo_unico":"12345_juan"}`, string(row.DatosNuevos))
			return nil
		})

	err := svc.Record(context.Background(), historial.Entry{
		AggregateType: "usuario_final",
		RegistroID:    registroID,
		Accion:        "usuario.created",
		AdminUserID:   adminID.String(),
		Payload:       []byte(`{"codigo_unico":"12345_juan"}`),
	})

	assert.NoError(t, err)
}

func TestHistorialService_UnknownAggregateSkipped(t *testing.T) {
	svc, _ := newHistorialService(t)

	err := svc.Record(context.Background(), historial.Entry{
		AggregateType: "factura",
		RegistroID:    uuid.NewString(),
		Accion:        "factura.created",
		Payload:       []byte(`{}`),
	})

	assert.NoError(t, err)
}

func TestHistorialService_RecordPropagatesRepoError(t *testing.T) {
	svc, repo := newHistorialService(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(assert.AnError)

	err := svc.Record(context.Background(), historial.Entry{
		AggregateType: "empresa",
		RegistroID:    uuid.NewString(),
		Accion:        "empresa.deleted",
		Payload:       []byte(`{}`),
	})

	assert.ErrorIs(t, err, assert.AnError)
}
