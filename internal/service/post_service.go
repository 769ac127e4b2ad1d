package service

import (
	"context"

	"Social_Model/internal/model"
	"Social_Model/internal/repository/rdb"
)

type PostService struct {
	repo *rdb.PostRepository
}

func NewPostService(store *rdb.Store) *PostService {
	return &PostService{repo: store.Posts}
}

func (s *PostService) Create(ctx context.Context, userID uint64) (map[string]any, error) {
	post := &model.Post{UserID: userID}
	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post.Serialize(ctx, s.repo)
}

func (s *PostService) Get(ctx context.Context, id uint64) (map[string]any, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return post.Serialize(ctx, s.repo)
}

func (s *PostService) Delete(ctx context.Context, id uint64) error {
	return s.repo.Delete(ctx, id)
}
