package rdb

import (
	"context"

	"Social_Model/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CommentRepository struct {
	DB *gorm.DB
}

func (r *CommentRepository) Create(ctx context.Context, c *model.Comment) error {
	return r.DB.WithContext(ctx).Create(c).Error
}

func (r *CommentRepository) FindByID(ctx context.Context, id uint64) (*model.Comment, error) {
	var c model.Comment
	err := r.DB.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *CommentRepository) Update(ctx context.Context, c *model.Comment) error {
	return r.DB.WithContext(ctx).Model(c).
		Select("*").Omit(clause.Associations).
		Updates(c).Error
}

func (r *CommentRepository) Delete(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Delete(&model.Comment{}, id).Error
}
