package services

import (
	"context"

	"go.uber.org/zap"

	"quotation-system/internal/dto"
	"quotation-system/internal/repositories"
	"quotation-system/pkg/constants"
	"quotation-system/pkg/utils"
)

type UserServiceInterface interface {
	GetUsers(ctx context.Context, limit, offset uint64) ([]dto.UserDTO, uint64, error)
	GetAssignees(ctx context.Context) ([]dto.UserDTO, error)
	FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error)
	CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error)
}

type UserService struct {
	userRepo repositories.UserRepositoryInterface
	logger   *zap.Logger
}

func NewUserService(userRepo repositories.UserRepositoryInterface, logger *zap.Logger) UserServiceInterface {
	return &UserService{userRepo: userRepo, logger: logger}
}

func (s *UserService) GetUsers(ctx context.Context, limit, offset uint64) ([]dto.UserDTO, uint64, error) {
	users, total, err := s.userRepo.ListUsers(ctx, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	list := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		list = append(list, mapUserToDTO(u))
	}
	return list, total, nil
}

// GetAssignees возвращает активных пользователей, которым можно
// назначать позиции (роли VP и VPP).
func (s *UserService) GetAssignees(ctx context.Context) ([]dto.UserDTO, error) {
	users, err := s.userRepo.ListAssignees(ctx, constants.AssignableRoles, true)
	if err != nil {
		return nil, err
	}

	list := make([]dto.UserDTO, 0, len(users))
	for _, u := range users {
		list = append(list, mapUserToDTO(u))
	}
	return list, nil
}

func (s *UserService) FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	out := mapUserToDTO(*user)
	return &out, nil
}

func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error) {
	hashed, err := utils.HashPassword(payload.Password)
	if err != nil {
		return nil, err
	}

	id, err := s.userRepo.CreateUser(ctx, payload, hashed)
	if err != nil {
		s.logger.Error("Ошибка создания пользователя",
			zap.String("email", payload.Email), zap.Error(err))
		return nil, err
	}
	return s.FindUser(ctx, id)
}
