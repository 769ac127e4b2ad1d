package rdb

import (
	"context"

	"Social_Model/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	DB *gorm.DB
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	return r.DB.WithContext(ctx).Create(user).Error
}

func (r *UserRepository) FindByID(ctx context.Context, id uint64) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Where("username = ?", username).First(&user).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	err := r.DB.WithContext(ctx).Where("email = ?", email).First(&user).Error
	return &user, err
}

// Update 整行写回，零值字段也会写入
func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	return r.DB.WithContext(ctx).Model(user).
		Select("*").Omit(clause.Associations).
		Updates(user).Error
}

// Delete 幂等删除；仍有关联行时由引擎的外键约束决定成败
func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Delete(&model.User{}, id).Error
}

// Posts 用户发的帖子
func (r *UserRepository) Posts(ctx context.Context, userID uint64) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&list).Error
	return list, err
}

// Comments 用户写的评论
func (r *UserRepository) Comments(ctx context.Context, userID uint64) ([]model.Comment, error) {
	var list []model.Comment
	err := r.DB.WithContext(ctx).Where("author_id = ?", userID).Order("id ASC").Find(&list).Error
	return list, err
}

// Followers 指向该用户的关注边
func (r *UserRepository) Followers(ctx context.Context, userID uint64) ([]model.Follower, error) {
	var list []model.Follower
	err := r.DB.WithContext(ctx).Where("user_to_id = ?", userID).Order("id ASC").Find(&list).Error
	return list, err
}

// Following 该用户发出的关注边
func (r *UserRepository) Following(ctx context.Context, userID uint64) ([]model.Follower, error) {
	var list []model.Follower
	err := r.DB.WithContext(ctx).Where("user_from_id = ?", userID).Order("id ASC").Find(&list).Error
	return list, err
}

func (r *UserRepository) PostIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	return pluckIDs(ctx, r.DB, &model.Post{}, "id", "user_id", userID)
}

func (r *UserRepository) CommentIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	return pluckIDs(ctx, r.DB, &model.Comment{}, "id", "author_id", userID)
}

// FollowerIDs 关注该用户的人（user_from_id）
func (r *UserRepository) FollowerIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	return pluckIDs(ctx, r.DB, &model.Follower{}, "user_from_id", "user_to_id", userID)
}

// FollowingIDs 该用户关注的人（user_to_id）
func (r *UserRepository) FollowingIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	return pluckIDs(ctx, r.DB, &model.Follower{}, "user_to_id", "user_from_id", userID)
}

// pluckIDs 按外键过滤，按主键顺序取出一列 id
func pluckIDs(ctx context.Context, db *gorm.DB, table any, column, fk string, key uint64) ([]uint64, error) {
	var ids []uint64
	err := db.WithContext(ctx).Model(table).
		Where(fk+" = ?", key).
		Order("id ASC").
		Pluck(column, &ids).Error
	return ids, err
}
