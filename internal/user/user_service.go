package user

import (
	"context"
	"time"

	"go-engnet/internal/shared/identity"
	usererrors "go-engnet/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetAll(ctx context.Context) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	s.logger.Debug("create user requested", zap.String("email", req.Email))

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Senha), bcrypt.DefaultCost)
	if err != nil {
		return UserResponse{}, err
	}

	role := req.Role
	if role == "" {
		role = identity.RoleMember
	}
	status := req.Status
	if status == "" {
		status = StatusActive
	}

	u := &User{
		ID:         uuid.New(),
		Name:       req.Nome,
		Email:      req.Email,
		Phone:      req.Telefone,
		Department: req.Departamento,
		Position:   req.Cargo,
		Role:       role,
		Status:     status,
		About:      req.Descricao,
		Password:   string(hashed),
	}

	if err := s.repo.Create(ctx, u); err != nil {
		s.logger.Error("create user persist failed", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create user success", zap.String("user_id", u.ID.String()))
	return mapToResponse(*u), nil
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*u), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	if req.Nome != nil {
		u.Name = *req.Nome
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Telefone != nil {
		u.Phone = *req.Telefone
	}
	if req.Departamento != nil {
		u.Department = *req.Departamento
	}
	if req.Cargo != nil {
		u.Position = *req.Cargo
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	if req.Status != nil {
		u.Status = *req.Status
	}
	if req.Descricao != nil {
		u.About = *req.Descricao
	}

	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("update user persist failed", zap.String("user_id", id), zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("update user success", zap.String("user_id", id))
	return mapToResponse(*u), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return usererrors.ErrInvalidUserID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Warn("delete user failed", zap.String("user_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("delete user success", zap.String("user_id", id))
	return nil
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:                u.ID.String(),
		Nome:              u.Name,
		Email:             u.Email,
		Telefone:          u.Phone,
		Departamento:      u.Department,
		Cargo:             u.Position,
		Role:              u.Role,
		Status:            u.Status,
		Descricao:         u.About,
		DataCriacao:       u.CreatedAt.Format(time.RFC3339),
		UltimaAtualizacao: u.UpdatedAt.Format(time.RFC3339),
	}
}
