package model

import "context"

type User struct {
	ID        uint64 `gorm:"primaryKey"`
	Username  string `gorm:"uniqueIndex;size:80;not null;check:username <> ''"`
	Firstname string `gorm:"size:80;not null;check:firstname <> ''"`
	Lastname  string `gorm:"size:80;not null;check:lastname <> ''"`
	Email     string `gorm:"uniqueIndex;size:120;not null;check:email <> ''"`
}

func (User) TableName() string {
	return "user"
}

// UserRelations 按外键解析用户的派生关系
type UserRelations interface {
	PostIDs(ctx context.Context, userID uint64) ([]uint64, error)
	CommentIDs(ctx context.Context, userID uint64) ([]uint64, error)
	FollowerIDs(ctx context.Context, userID uint64) ([]uint64, error)
	FollowingIDs(ctx context.Context, userID uint64) ([]uint64, error)
}

// Serialize 关系字段只输出关联记录的 id，每次调用都重新查询
func (u *User) Serialize(ctx context.Context, rel UserRelations) (map[string]any, error) {
	posts, err := rel.PostIDs(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	// followers 取 user_from_id，following 取 user_to_id
	followers, err := rel.FollowerIDs(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	following, err := rel.FollowingIDs(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	comments, err := rel.CommentIDs(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"id":        u.ID,
		"username":  u.Username,
		"firstname": u.Firstname,
		"lastname":  u.Lastname,
		"email":     u.Email,
		"posts":     nonNil(posts),
		"followers": nonNil(followers),
		"following": nonNil(following),
		"comments":  nonNil(comments),
	}, nil
}

// nonNil 保证空关系序列化为 [] 而不是 null
func nonNil(ids []uint64) []uint64 {
	if ids == nil {
		return []uint64{}
	}
	return ids
}
