package model

// 常见的媒体类型，列本身是自由文本
const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

type Media struct {
	ID     uint64 `gorm:"primaryKey"`
	Type   string `gorm:"size:50;not null;check:type <> ''"`
	URL    string `gorm:"column:url;size:255;not null;check:url <> ''"`
	PostID uint64 `gorm:"not null;index:idx_media_post_id"`

	Post Post `gorm:"foreignKey:PostID" json:"-"`
}

func (Media) TableName() string {
	return "media"
}

func (m *Media) Serialize() map[string]any {
	return map[string]any{
		"id":      m.ID,
		"type":    m.Type,
		"url":     m.URL,
		"post_id": m.PostID,
	}
}
