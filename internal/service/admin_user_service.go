package service

import (
	"context"
	"strings"

	"github.com/lshigami/courseboard/internal/apperror"
	"github.com/lshigami/courseboard/internal/dto"
	"github.com/lshigami/courseboard/internal/repository"
	"github.com/rs/zerolog/log"
)

type AdminUserService interface {
	ListUsers(ctx context.Context) ([]dto.UserResponse, error)
	CreateUser(ctx context.Context, req dto.UserUpsertRequest) (*dto.UserResponse, error)
	ReplaceUser(ctx context.Context, username string, req dto.UserUpsertRequest) (*dto.UserResponse, error)
	DeleteUser(ctx context.Context, username string) error
}

type adminUserService struct {
	users repository.UserRepository
}

func NewAdminUserService(users repository.UserRepository) AdminUserService {
	return &adminUserService{users: users}
}

func (s *adminUserService) ListUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("Admin ListUsers: repository error")
		return nil, err
	}
	out := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return out, nil
}

func (s *adminUserService) CreateUser(ctx context.Context, req dto.UserUpsertRequest) (*dto.UserResponse, error) {
	user, err := validateUser(req)
	if err != nil {
		return nil, err
	}
	if err := s.users.Create(ctx, user); err != nil {
		log.Error().Err(err).Str("username", user.Username).Msg("Admin CreateUser: repository error")
		return nil, err
	}
	log.Info().Str("username", user.Username).Str("role", string(user.Role)).Msg("User created")
	resp := toUserResponse(user)
	return &resp, nil
}

// ReplaceUser keeps the username fixed; it is the record key.
func (s *adminUserService) ReplaceUser(ctx context.Context, username string, req dto.UserUpsertRequest) (*dto.UserResponse, error) {
	if req.Username == "" {
		req.Username = username
	}
	if strings.TrimSpace(req.Username) != username {
		return nil, apperror.NewValidation("Username cannot be changed", "username")
	}
	user, err := validateUser(req)
	if err != nil {
		return nil, err
	}
	if err := s.users.Replace(ctx, user); err != nil {
		log.Error().Err(err).Str("username", username).Msg("Admin ReplaceUser: repository error")
		return nil, err
	}
	updated, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		resp := toUserResponse(user)
		return &resp, nil
	}
	resp := toUserResponse(updated)
	return &resp, nil
}

func (s *adminUserService) DeleteUser(ctx context.Context, username string) error {
	if err := s.users.Delete(ctx, username); err != nil {
		return err
	}
	log.Info().Str("username", username).Msg("User deleted")
	return nil
}
