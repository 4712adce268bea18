package role_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/role"
	roleMock "github.com/Harols34/convertia-hub-790d3cfd/internal/role/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestService_HasRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()

	t.Run("Cache Miss Queries Repo And Caches", func(t *testing.T) {
		mockRepo := roleMock.NewMockRepository(ctrl)
		rdb, rmock := redismock.NewClientMock()
		service := role.NewService(mockRepo, rdb)

		rmock.ExpectGet("roles:has:user-1:admin").RedisNil()
		mockRepo.EXPECT().HasRole(ctx, "user-1", "admin").Return(true, nil)
		rmock.ExpectSet("roles:has:user-1:admin", "1", 30*time.Second).SetVal("OK")

		has, err := service.HasRole(ctx, "user-1", "admin")

		assert.NoError(t, err)
		assert.True(t, has)
		assert.NoError(t, rmock.ExpectationsWereMet())
	})

	t.Run("Cache Hit Skips Repo", func(t *testing.T) {
		mockRepo := roleMock.NewMockRepository(ctrl)
		rdb, rmock := redismock.NewClientMock()
		service := role.NewService(mockRepo, rdb)

		rmock.ExpectGet("roles:has:user-2:admin").SetVal("0")

		has, err := service.HasRole(ctx, "user-2", "admin")

		assert.NoError(t, err)
		assert.False(t, has)
		assert.NoError(t, rmock.ExpectationsWereMet())
	})

	t.Run("Repo Error Propagates", func(t *testing.T) {
		mockRepo := roleMock.NewMockRepository(ctrl)
		rdb, rmock := redismock.NewClientMock()
		service := role.NewService(mockRepo, rdb)

		rmock.ExpectGet("roles:has:user-3:admin").RedisNil()
		mockRepo.EXPECT().HasRole(ctx, "user-3", "admin").Return(false, errors.New("db down"))

		_, err := service.HasRole(ctx, "user-3", "admin")
		assert.Error(t, err)
	})

	t.Run("Works Without Redis", func(t *testing.T) {
		mockRepo := roleMock.NewMockRepository(ctrl)
		service := role.NewService(mockRepo, nil)

		mockRepo.EXPECT().HasRole(ctx, "user-4", "admin").Return(true, nil)

		has, err := service.HasRole(ctx, "user-4", "admin")
		assert.NoError(t, err)
		assert.True(t, has)
	})
}

func TestService_CountRoles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := roleMock.NewMockRepository(ctrl)
	service := role.NewService(mockRepo, nil)
	ctx := context.Background()

	t.Run("Zero Means Pre-Bootstrap", func(t *testing.T) {
		mockRepo.EXPECT().Count(ctx).Return(int64(0), nil)

		count, err := service.CountRoles(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("Never Cached", func(t *testing.T) {
		// Two calls, two repo hits
		mockRepo.EXPECT().Count(ctx).Return(int64(1), nil).Times(2)

		for i := 0; i < 2; i++ {
			count, err := service.CountRoles(ctx)
			assert.NoError(t, err)
			assert.Equal(t, int64(1), count)
		}
	})
}
