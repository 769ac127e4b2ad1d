package service

import (
	"context"

	"Social_Model/internal/model"
	"Social_Model/internal/repository/rdb"
)

type MediaService struct {
	repo *rdb.MediaRepository
}

func NewMediaService(store *rdb.Store) *MediaService {
	return &MediaService{repo: store.Media}
}

type MediaFields struct {
	Type   string
	URL    string
	PostID uint64
}

func (s *MediaService) Create(ctx context.Context, f MediaFields) (map[string]any, error) {
	m := &model.Media{Type: f.Type, URL: f.URL, PostID: f.PostID}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m.Serialize(), nil
}

func (s *MediaService) Get(ctx context.Context, id uint64) (map[string]any, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return m.Serialize(), nil
}

func (s *MediaService) Update(ctx context.Context, id uint64, f MediaFields) (map[string]any, error) {
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	m.Type = f.Type
	m.URL = f.URL
	m.PostID = f.PostID
	if err := s.repo.Update(ctx, m); err != nil {
		return nil, err
	}
	return m.Serialize(), nil
}

func (s *MediaService) Delete(ctx context.Context, id uint64) error {
	return s.repo.Delete(ctx, id)
}
