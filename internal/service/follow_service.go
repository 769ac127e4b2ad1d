package service

import (
	"context"

	"Social_Model/internal/model"
	"Social_Model/internal/repository/rdb"
)

type FollowerService struct {
	repo *rdb.FollowerRepository
}

func NewFollowerService(store *rdb.Store) *FollowerService {
	return &FollowerService{repo: store.Followers}
}

// Follow 记录 fromID 关注 toID。重复关注和自己关注自己都会照常落库
func (s *FollowerService) Follow(ctx context.Context, fromID, toID uint64) (map[string]any, error) {
	f := &model.Follower{UserFromID: fromID, UserToID: toID}
	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f.Serialize(), nil
}

func (s *FollowerService) Get(ctx context.Context, id uint64) (map[string]any, error) {
	f, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return f.Serialize(), nil
}

func (s *FollowerService) Delete(ctx context.Context, id uint64) error {
	return s.repo.Delete(ctx, id)
}
