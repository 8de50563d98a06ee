package models

// MaxMessageLength bounds the text of a single message.
const MaxMessageLength = 140

// Message represents a single post. Messages are immutable once created;
// the only mutation is deletion by the owning user.
type Message struct {
	ID       uint   `gorm:"primaryKey;column:message_id" json:"id"`
	Text     string `gorm:"size:140;not null" json:"text"`
	PubDate  int64  `gorm:"column:pub_date;not null;index" json:"pub_date"`
	AuthorID uint   `gorm:"column:author_id;not null;index" json:"author_id"`
	Author   User   `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author"`
}

// TableName overrides the table name used by GORM
func (Message) TableName() string {
	return "messages"
}
