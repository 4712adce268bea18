package role

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Cache entries are short-lived on purpose: the only role write in the system
// is the first-admin bootstrap, which runs in a separate process and cannot
// invalidate this cache directly.
const hasRoleCacheTTL = 30 * time.Second

func hasRoleCacheKey(userID, role string) string {
	return fmt.Sprintf("roles:has:%s:%s", userID, role)
}

//go:generate mockgen -source=role_service.go -destination=mock/role_service_mock.go -package=mock
type Service interface {
	CountRoles(ctx context.Context) (int64, error)
	HasRole(ctx context.Context, userID, role string) (bool, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("role.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("role.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// CountRoles is never cached: the pre-bootstrap check must see the store.
func (s *service) CountRoles(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *service) HasRole(ctx context.Context, userID, role string) (bool, error) {
	cacheKey := hasRoleCacheKey(userID, role)

	if s.rdb != nil {
		if val, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			return val == "1", nil
		}
	}

	// Collapse concurrent misses for the same user into one query
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		has, err := s.repo.HasRole(ctx, userID, role)
		if err != nil {
			return false, err
		}

		if s.rdb != nil {
			val := "0"
			if has {
				val = "1"
			}
			if err := s.rdb.Set(ctx, cacheKey, val, hasRoleCacheTTL).Err(); err != nil {
				s.logger.Warn("has-role cache write failed",
					zap.String("key", cacheKey),
					zap.Error(err),
				)
			}
		}

		return has, nil
	})
	if err != nil {
		return false, err
	}

	return v.(bool), nil
}
