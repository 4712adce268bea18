package auth

import (
	"context"
	"os"
	"time"

	autherrors "github.com/Harols34/convertia-hub-790d3cfd/internal/auth/errors"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/domain"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/role"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	accessTokenTTL  = 15 * time.Minute
	refreshTokenTTL = 7 * 24 * time.Hour
)

// dummyPasswordHash is compared against on unknown emails so that path costs
// the same bcrypt verification as a wrong password.
var dummyPasswordHash = []byte("$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy")

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, email, password string) (accessToken, refreshToken string, resp AuthResponse, err error)

	RefreshToken(ctx context.Context, refreshToken string) (newAccessToken, newRefreshToken string, resp AuthResponse, err error)

	GetMe(ctx context.Context, userID string) (*AuthResponse, error)

	Status(ctx context.Context) (StatusResponse, error)
}

type service struct {
	repo  Repository
	roles role.Service
}

func NewService(repo Repository, roles role.Service) Service {
	return &service{repo: repo, roles: roles}
}

func (s *service) Login(ctx context.Context, email, password string) (accessToken, refreshToken string, resp AuthResponse, err error) {
	// Invalid email and wrong password are indistinguishable to the caller,
	// in both timing and result.
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		_ = bcrypt.CompareHashAndPassword(dummyPasswordHash, []byte(password))
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", "", AuthResponse{}, autherrors.ErrUserInactive
	}

	isAdmin, err := s.roles.HasRole(ctx, user.ID.String(), domain.RoleAdmin)
	if err != nil {
		return "", "", AuthResponse{}, err
	}

	accessToken, err = s.generateToken(user.ID.String(), user.Email, accessTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err = s.generateToken(user.ID.String(), user.Email, refreshTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return accessToken, refreshToken, AuthResponse{
		ID:      user.ID.String(),
		Email:   user.Email,
		IsAdmin: isAdmin,
	}, nil
}

func (s *service) RefreshToken(ctx context.Context, refreshToken string) (string, string, AuthResponse, error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherrors.ErrInvalidToken
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})

	if err != nil || !token.Valid {
		return "", "", AuthResponse{}, autherrors.ErrInvalidRefreshToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	userIDStr, ok := claims["user_id"].(string)
	if !ok {
		return "", "", AuthResponse{}, autherrors.ErrInvalidToken
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrInvalidUserID
	}

	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrUserNotFound
	}

	isAdmin, err := s.roles.HasRole(ctx, user.ID.String(), domain.RoleAdmin)
	if err != nil {
		return "", "", AuthResponse{}, err
	}

	newAccessToken, err := s.generateToken(user.ID.String(), user.Email, accessTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	newRefreshToken, err := s.generateToken(user.ID.String(), user.Email, refreshTokenTTL)
	if err != nil {
		return "", "", AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return newAccessToken, newRefreshToken, AuthResponse{
		ID:      user.ID.String(),
		Email:   user.Email,
		IsAdmin: isAdmin,
	}, nil
}

func (s *service) GetMe(ctx context.Context, userID string) (*AuthResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, autherrors.ErrInvalidUserID
	}

	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, autherrors.ErrUserNotFound
	}

	isAdmin, err := s.roles.HasRole(ctx, u.ID.String(), domain.RoleAdmin)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		ID:      u.ID.String(),
		Email:   u.Email,
		IsAdmin: isAdmin,
	}, nil
}

// Status reports whether any role row exists. Zero rows means the system is
// pre-bootstrap and the first-admin flow is still open.
func (s *service) Status(ctx context.Context) (StatusResponse, error) {
	count, err := s.roles.CountRoles(ctx)
	if err != nil {
		return StatusResponse{}, err
	}
	return StatusResponse{HasAdmin: count > 0}, nil
}

// reusable token generator
func (s *service) generateToken(userID, email string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
