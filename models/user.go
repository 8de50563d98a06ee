package models

// User represents a registered account.
type User struct {
	ID       uint   `gorm:"primaryKey;column:user_id" json:"id"`
	Username string `gorm:"uniqueIndex;size:50;not null" json:"username"`
	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PwHash   string `gorm:"column:pw_hash;not null" json:"-"`
	ImageURL string `gorm:"column:image_url" json:"image_url"`
}

// TableName overrides the table name used by GORM
func (User) TableName() string {
	return "users"
}
