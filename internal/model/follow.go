package model

// Follower user_from_id 关注 user_to_id 的有向边。
// (user_from_id, user_to_id) 上没有唯一约束，也不禁止自己关注自己。
type Follower struct {
	ID         uint64 `gorm:"primaryKey"`
	UserFromID uint64 `gorm:"not null;index:idx_user_from_id"`
	UserToID   uint64 `gorm:"not null;index:idx_user_to_id"`

	// 只用于生成外键约束，从不加载
	UserFrom User `gorm:"foreignKey:UserFromID" json:"-"`
	UserTo   User `gorm:"foreignKey:UserToID" json:"-"`
}

// TableName sets table name for Follower
func (Follower) TableName() string {
	return "follower"
}

func (f *Follower) Serialize() map[string]any {
	return map[string]any{
		"id":           f.ID,
		"user_from_id": f.UserFromID,
		"user_to_id":   f.UserToID,
	}
}
