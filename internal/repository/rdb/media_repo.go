package rdb

import (
	"context"

	"Social_Model/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MediaRepository struct {
	DB *gorm.DB
}

func (r *MediaRepository) Create(ctx context.Context, m *model.Media) error {
	return r.DB.WithContext(ctx).Create(m).Error
}

func (r *MediaRepository) FindByID(ctx context.Context, id uint64) (*model.Media, error) {
	var m model.Media
	err := r.DB.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *MediaRepository) Update(ctx context.Context, m *model.Media) error {
	return r.DB.WithContext(ctx).Model(m).
		Select("*").Omit(clause.Associations).
		Updates(m).Error
}

func (r *MediaRepository) Delete(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Delete(&model.Media{}, id).Error
}
