package models

// Follow is a directed edge: the follower receives the followed user's
// messages in their feed. The composite primary key keeps the edge unique
// per (follower, followed) pair.
type Follow struct {
	FollowerID uint `gorm:"primaryKey;autoIncrement:false;column:follower_id" json:"follower_id"`
	FollowedID uint `gorm:"primaryKey;autoIncrement:false;column:followed_id" json:"followed_id"`

	Follower User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"-"`
	Followed User `gorm:"foreignKey:FollowedID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName overrides the table name used by GORM
func (Follow) TableName() string {
	return "follows"
}
