package service

import (
	"context"

	"Social_Model/internal/model"
	"Social_Model/internal/repository/rdb"
)

type CommentService struct {
	repo *rdb.CommentRepository
}

func NewCommentService(store *rdb.Store) *CommentService {
	return &CommentService{repo: store.Comments}
}

type CommentFields struct {
	CommentText string
	AuthorID    uint64
	PostID      uint64
}

func (s *CommentService) Create(ctx context.Context, f CommentFields) (map[string]any, error) {
	c := &model.Comment{
		CommentText: f.CommentText,
		AuthorID:    f.AuthorID,
		PostID:      f.PostID,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c.Serialize(), nil
}

func (s *CommentService) Get(ctx context.Context, id uint64) (map[string]any, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.Serialize(), nil
}

func (s *CommentService) Update(ctx context.Context, id uint64, f CommentFields) (map[string]any, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.CommentText = f.CommentText
	c.AuthorID = f.AuthorID
	c.PostID = f.PostID
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c.Serialize(), nil
}

func (s *CommentService) Delete(ctx context.Context, id uint64) error {
	return s.repo.Delete(ctx, id)
}
