package dashboard_test

import (
	"context"
	"testing"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/dashboard"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/dashboard/mock"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDashboardService_GetStatsSumsAplicativos(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := dashboard.NewService(repo)

	repo.EXPECT().CountEmpresas(gomock.Any()).Return(int64(3), nil)
	repo.EXPECT().CountUsuarios(gomock.Any()).Return(int64(10), nil)
	repo.EXPECT().CountAplicativosGlobales(gomock.Any()).Return(int64(2), nil)
	repo.EXPECT().CountAplicativosEmpresa(gomock.Any()).Return(int64(1), nil)
	repo.EXPECT().CountAlarmas(gomock.Any()).Return(int64(4), nil)

	stats, err := svc.GetStats(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, dashboard.StatsResponse{
		Empresas:    3,
		Usuarios:    10,
		Aplicativos: 3,
		Alarmas:     4,
	}, stats)
}

func TestDashboardService_GetStatsPropagatesError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockRepository(ctrl)
	svc := dashboard.NewService(repo)

	repo.EXPECT().CountEmpresas(gomock.Any()).Return(int64(0), assert.AnError)

	_, err := svc.GetStats(context.Background())

	assert.ErrorIs(t, err, assert.AnError)
}
