package rdb

import (
	"context"

	"Social_Model/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository struct {
	DB *gorm.DB
}

func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	return r.DB.WithContext(ctx).Create(post).Error
}

func (r *PostRepository) FindByID(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.WithContext(ctx).First(&post, id).Error
	return &post, err
}

func (r *PostRepository) Update(ctx context.Context, post *model.Post) error {
	return r.DB.WithContext(ctx).Model(post).
		Select("*").Omit(clause.Associations).
		Updates(post).Error
}

func (r *PostRepository) Delete(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Delete(&model.Post{}, id).Error
}

// Comments 帖子下的评论
func (r *PostRepository) Comments(ctx context.Context, postID uint64) ([]model.Comment, error) {
	var list []model.Comment
	err := r.DB.WithContext(ctx).Where("post_id = ?", postID).Order("id ASC").Find(&list).Error
	return list, err
}

// Media 帖子挂的媒体
func (r *PostRepository) Media(ctx context.Context, postID uint64) ([]model.Media, error) {
	var list []model.Media
	err := r.DB.WithContext(ctx).Where("post_id = ?", postID).Order("id ASC").Find(&list).Error
	return list, err
}

func (r *PostRepository) CommentIDs(ctx context.Context, postID uint64) ([]uint64, error) {
	return pluckIDs(ctx, r.DB, &model.Comment{}, "id", "post_id", postID)
}

func (r *PostRepository) MediaIDs(ctx context.Context, postID uint64) ([]uint64, error) {
	return pluckIDs(ctx, r.DB, &model.Media{}, "id", "post_id", postID)
}
