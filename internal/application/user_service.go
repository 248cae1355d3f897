package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/farhanadit/go-user-api/internal/domain/entity"
	repo "github.com/farhanadit/go-user-api/internal/domain/repository"
)

var ErrUserNotFound = errors.New("user not found")

// Service mediates between the HTTP surface and the persistence context.
// It owns entity construction (id generation, required-field checks) and
// translates repository absence into ErrUserNotFound.
type Service struct {
	Repo   repo.UserRepository
	IDs    entity.IDGenerator
	Logger *logrus.Logger
}

func NewService(r repo.UserRepository, ids entity.IDGenerator, logger *logrus.Logger) *Service {
	return &Service{Repo: r, IDs: ids, Logger: logger}
}

type CreateUserInput struct {
	DisplayName string
	Email       string
	MyProperty  int
}

type UpdateUserInput struct {
	DisplayName string
	Email       string
	MyProperty  int
}

func (s *Service) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := s.Repo.List(ctx)
	if err != nil {
		s.logError("list users failed", err, nil)
		return nil, err
	}
	return users, nil
}

func (s *Service) GetUser(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		s.logError("get user failed", err, logrus.Fields{"user_id": id})
		return nil, err
	}
	return u, nil
}

func (s *Service) CreateUser(ctx context.Context, in CreateUserInput) (*entity.User, error) {
	u, err := entity.NewUser(s.IDs, in.DisplayName, in.Email, in.MyProperty)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		s.logError("create user failed", err, logrus.Fields{"user_id": u.ID})
		return nil, err
	}
	return u, nil
}

// UpdateUser replaces all mutable fields of the user matched by id.
func (s *Service) UpdateUser(ctx context.Context, id string, in UpdateUserInput) (*entity.User, error) {
	u := &entity.User{
		ID:          id,
		DisplayName: in.DisplayName,
		Email:       in.Email,
		MyProperty:  in.MyProperty,
	}
	if err := s.Repo.Update(ctx, u); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		s.logError("update user failed", err, logrus.Fields{"user_id": id})
		return nil, err
	}
	return u, nil
}

func (s *Service) DeleteUser(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrUserNotFound
		}
		s.logError("delete user failed", err, logrus.Fields{"user_id": id})
		return err
	}
	return nil
}

func (s *Service) logError(msg string, err error, fields logrus.Fields) {
	if s.Logger == nil {
		return
	}
	if fields == nil {
		fields = logrus.Fields{}
	}
	s.Logger.WithError(err).WithFields(fields).Error(msg)
}
