package model

import "context"

type Post struct {
	ID     uint64 `gorm:"primaryKey"`
	UserID uint64 `gorm:"not null;index:idx_post_user_id"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Post) TableName() string {
	return "post"
}

// PostRelations 按外键解析帖子的评论和媒体
type PostRelations interface {
	CommentIDs(ctx context.Context, postID uint64) ([]uint64, error)
	MediaIDs(ctx context.Context, postID uint64) ([]uint64, error)
}

func (p *Post) Serialize(ctx context.Context, rel PostRelations) (map[string]any, error) {
	comments, err := rel.CommentIDs(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	media, err := rel.MediaIDs(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"id":       p.ID,
		"user_id":  p.UserID,
		"comments": nonNil(comments),
		"media":    nonNil(media),
	}, nil
}
