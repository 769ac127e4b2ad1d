package model

type Comment struct {
	ID          uint64 `gorm:"primaryKey"`
	CommentText string `gorm:"size:300;not null;check:comment_text <> ''"`
	AuthorID    uint64 `gorm:"not null;index:idx_comment_author_id"`
	PostID      uint64 `gorm:"not null;index:idx_comment_post_id"`

	Author User `gorm:"foreignKey:AuthorID" json:"-"`
	Post   Post `gorm:"foreignKey:PostID" json:"-"`
}

func (Comment) TableName() string {
	return "comment"
}

func (c *Comment) Serialize() map[string]any {
	return map[string]any{
		"id":           c.ID,
		"comment_text": c.CommentText,
		"author_id":    c.AuthorID,
		"post_id":      c.PostID,
	}
}
