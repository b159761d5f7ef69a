package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/lshigami/courseboard/config"
	"github.com/lshigami/courseboard/internal/apperror"
	"github.com/lshigami/courseboard/internal/dto"
	"github.com/lshigami/courseboard/internal/model"
	"github.com/lshigami/courseboard/internal/repository"
	"github.com/rs/zerolog/log"
)

const tokenIssuer = "courseboard"

// Claims identify the session holder and carry the role flag.
type Claims struct {
	Username string     `json:"username"`
	Role     model.Role `json:"role"`
	jwt.RegisteredClaims
}

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	ParseToken(token string) (*Claims, error)
}

type authService struct {
	users  repository.UserRepository
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewAuthService(users repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		users:  users,
		secret: []byte(cfg.JWT.Secret),
		ttl:    cfg.JWT.TTL,
		now:    time.Now,
	}
}

// Login compares the stored plaintext password with the supplied one.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.users.FindByUsername(ctx, req.Username)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil, apperror.ErrUnknownUser
	}
	if err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("Login: user lookup failed")
		return nil, err
	}
	if user.Password != req.Password {
		return nil, apperror.ErrWrongPassword
	}

	token, expiresAt, err := s.issue(user)
	if err != nil {
		return nil, err
	}
	log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("User logged in")
	return &dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      toUserResponse(user),
	}, nil
}

func (s *authService) issue(user *model.User) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.ttl)
	claims := &Claims{
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

func (s *authService) ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("parse token: invalid claims")
	}
	return claims, nil
}
