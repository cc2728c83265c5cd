package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"secret-server/internal/domain/entities"
	"secret-server/pkg/errors"
)

type Claims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

type AuthService struct {
	db            *gorm.DB
	sessions      SessionCache
	jwtSecret     string
	tokenDuration time.Duration
}

func NewAuthService(db *gorm.DB, sessions SessionCache, jwtSecret string, tokenDuration time.Duration) *AuthService {
	return &AuthService{
		db:            db,
		sessions:      sessions,
		jwtSecret:     jwtSecret,
		tokenDuration: tokenDuration,
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	var user entities.User
	err := s.db.WithContext(ctx).
		Where("username = ? AND active = ? AND deleted = ?", username, true, false).
		First(&user).Error
	if err != nil {
		return "", errors.NewUnauthorizedError("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", errors.NewUnauthorizedError("invalid credentials")
	}

	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", errors.NewInternalError("failed to sign token")
	}

	if err := s.sessions.SetSession(ctx, claims.ID, user.ID); err != nil {
		return "", errors.NewInternalError("failed to store session")
	}

	return token, nil
}

// ValidateToken checks the token signature, the revocation list and that
// the user is still active.
func (s *AuthService) ValidateToken(ctx context.Context, tokenStr string) (*entities.User, error) {
	claims, err := s.parseClaims(tokenStr)
	if err != nil {
		return nil, errors.NewUnauthorizedError("invalid or expired token")
	}

	if _, err := s.sessions.GetSession(ctx, claims.ID); err != nil {
		return nil, errors.NewUnauthorizedError("session revoked")
	}

	var user entities.User
	err = s.db.WithContext(ctx).
		Where("id = ? AND active = ? AND deleted = ?", claims.UserID, true, false).
		First(&user).Error
	if err != nil {
		return nil, errors.NewUnauthorizedError("user not found")
	}

	return &user, nil
}

func (s *AuthService) Logout(ctx context.Context, tokenStr string) error {
	claims, err := s.parseClaims(tokenStr)
	if err != nil {
		return errors.NewUnauthorizedError("invalid token")
	}
	return s.sessions.InvalidateSession(ctx, claims.ID)
}

func (s *AuthService) parseClaims(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (any, error) {
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.NewUnauthorizedError("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.NewUnauthorizedError("invalid claims")
	}
	return claims, nil
}
