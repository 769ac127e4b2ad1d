package rdb

import (
	"context"

	"Social_Model/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowerRepository struct {
	DB *gorm.DB
}

// Create 不做去重，也不拦截自己关注自己
func (r *FollowerRepository) Create(ctx context.Context, f *model.Follower) error {
	return r.DB.WithContext(ctx).Create(f).Error
}

func (r *FollowerRepository) FindByID(ctx context.Context, id uint64) (*model.Follower, error) {
	var f model.Follower
	err := r.DB.WithContext(ctx).First(&f, id).Error
	return &f, err
}

// Update 整行写回，两端用户 id 仍受外键约束
func (r *FollowerRepository) Update(ctx context.Context, f *model.Follower) error {
	return r.DB.WithContext(ctx).Model(f).
		Select("*").Omit(clause.Associations).
		Updates(f).Error
}

func (r *FollowerRepository) Delete(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Delete(&model.Follower{}, id).Error
}

// Between 两个用户之间 from -> to 的全部关注边（可能有重复）
func (r *FollowerRepository) Between(ctx context.Context, fromID, toID uint64) ([]model.Follower, error) {
	var list []model.Follower
	err := r.DB.WithContext(ctx).
		Where("user_from_id = ? AND user_to_id = ?", fromID, toID).
		Order("id ASC").
		Find(&list).Error
	return list, err
}
