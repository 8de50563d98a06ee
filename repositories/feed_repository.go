package repositories

import (
	"gorm.io/gorm"

	"warbler/models"
)

// DefaultFeedLimit is applied when a caller passes a non-positive limit.
const DefaultFeedLimit = 100

type feedRepository struct {
	db *gorm.DB
}

func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &feedRepository{db: db}
}

// TopMessagesForUser composes the feed for a user: their own messages plus
// messages from everyone they follow, newest first. Equal timestamps are
// broken by message id descending so the ordering is deterministic.
func (r *feedRepository) TopMessagesForUser(userID uint, limit int) ([]models.Message, error) {
	followed := r.db.Model(&models.Follow{}).
		Select("followed_id").
		Where("follower_id = ?", userID)

	var messages []models.Message
	err := r.db.Preload("Author").
		Where("author_id = ? OR author_id IN (?)", userID, followed).
		Order("pub_date DESC, message_id DESC").
		Limit(normalizeLimit(limit)).
		Find(&messages).Error
	return messages, err
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultFeedLimit
	}
	return limit
}
