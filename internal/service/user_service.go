package service

import (
	"context"

	"Social_Model/internal/model"
	"Social_Model/internal/repository/rdb"
)

type UserService struct {
	repo *rdb.UserRepository
}

func NewUserService(store *rdb.Store) *UserService {
	return &UserService{repo: store.Users}
}

// UserFields 用户可写字段
type UserFields struct {
	Username  string
	Firstname string
	Lastname  string
	Email     string
}

func (s *UserService) Create(ctx context.Context, f UserFields) (map[string]any, error) {
	user := &model.User{
		Username:  f.Username,
		Firstname: f.Firstname,
		Lastname:  f.Lastname,
		Email:     f.Email,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user.Serialize(ctx, s.repo)
}

func (s *UserService) Get(ctx context.Context, id uint64) (map[string]any, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Serialize(ctx, s.repo)
}

// Update 先确认记录存在，再整行覆盖
func (s *UserService) Update(ctx context.Context, id uint64, f UserFields) (map[string]any, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Username = f.Username
	user.Firstname = f.Firstname
	user.Lastname = f.Lastname
	user.Email = f.Email
	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user.Serialize(ctx, s.repo)
}

func (s *UserService) Delete(ctx context.Context, id uint64) error {
	return s.repo.Delete(ctx, id)
}
