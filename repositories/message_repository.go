package repositories

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"gorm.io/gorm"

	"warbler/models"
)

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

// Create stores a new message owned by authorID. The author must exist and
// the text must be non-empty and within the length bound.
func (r *messageRepository) Create(authorID uint, text string, pubDate int64) (*models.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: message text is required", ErrValidation)
	}
	if utf8.RuneCountInString(text) > models.MaxMessageLength {
		return nil, fmt.Errorf("%w: message text exceeds %d characters", ErrValidation, models.MaxMessageLength)
	}

	var count int64
	if err := r.db.Model(&models.User{}).Where("user_id = ?", authorID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, fmt.Errorf("%w: author %d does not exist", ErrValidation, authorID)
	}

	message := models.Message{
		Text:     text,
		PubDate:  pubDate,
		AuthorID: authorID,
	}
	if err := r.db.Create(&message).Error; err != nil {
		return nil, err
	}

	return &message, nil
}

// Delete removes a message permanently. The ownership check happens before
// any mutation, so a rejected delete leaves the row untouched.
func (r *messageRepository) Delete(messageID, actorID uint) error {
	message, err := r.ByID(messageID)
	if err != nil {
		return err
	}
	if message == nil {
		return fmt.Errorf("%w: message %d", ErrNotFound, messageID)
	}
	if message.AuthorID != actorID {
		return fmt.Errorf("%w: user %d does not own message %d", ErrUnauthorized, actorID, messageID)
	}

	return r.db.Delete(&models.Message{}, messageID).Error
}

func (r *messageRepository) ByID(messageID uint) (*models.Message, error) {
	var message models.Message
	err := r.db.Preload("Author").First(&message, messageID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &message, nil
}

// ByAuthor returns a user's own messages, newest first.
func (r *messageRepository) ByAuthor(authorID uint, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Preload("Author").
		Where("author_id = ?", authorID).
		Order("pub_date DESC, message_id DESC").
		Limit(normalizeLimit(limit)).
		Find(&messages).Error
	return messages, err
}

// Latest returns the newest messages across all users (the public timeline).
func (r *messageRepository) Latest(limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Preload("Author").
		Order("pub_date DESC, message_id DESC").
		Limit(normalizeLimit(limit)).
		Find(&messages).Error
	return messages, err
}
