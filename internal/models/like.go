package models

import (
	"time"
)

// Like is one user's like on a post or a comment. The (user, target type,
// target id) triple is unique at the storage layer, so concurrent likes from
// the same user collapse into a single row.
type Like struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	UserID     uint       `gorm:"not null;uniqueIndex:idx_like_user_target,priority:1" json:"user_id"`
	TargetType TargetType `gorm:"type:varchar(16);not null;uniqueIndex:idx_like_user_target,priority:2;index:idx_like_target,priority:1" json:"target_type"`
	TargetID   uint       `gorm:"not null;uniqueIndex:idx_like_user_target,priority:3;index:idx_like_target,priority:2" json:"target_id"`
	CreatedAt  time.Time  `gorm:"not null;index" json:"created_at"`
}

func (l Like) Target() LikeTarget {
	return LikeTarget{Type: l.TargetType, ID: l.TargetID}
}
