package model

import "time"

// Follow 关注关系（有向边）
//
// The relation is directional: follower → following. The app treats the set
// of profiles a viewer follows as their "friends".
type Follow struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	FollowerID  string    `json:"followerId" gorm:"size:36;not null;uniqueIndex:uq_follower_following;index"`
	FollowingID string    `json:"followingId" gorm:"size:36;not null;uniqueIndex:uq_follower_following"`
	CreatedAt   time.Time `json:"createdAt"`
}

// TableName 指定表名
func (Follow) TableName() string {
	return "follows"
}
