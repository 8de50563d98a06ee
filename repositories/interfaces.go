package repositories

import "warbler/models"

type UserRepository interface {
	Signup(username, email, password, imageURL string) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
	ByUsername(username string) (*models.User, error)
	ByID(id uint) (*models.User, error)
	UpdateProfile(userID uint, email, imageURL string) (*models.User, error)
	Delete(userID uint) error
}

type FollowRepository interface {
	Follow(followerID, followedID uint) error
	Unfollow(followerID, followedID uint) error
	IsFollowing(followerID, followedID uint) (bool, error)
	IsFollowedBy(userID, followerID uint) (bool, error)
	FollowersOf(userID uint) ([]models.User, error)
	FollowingOf(userID uint) ([]models.User, error)
}

type MessageRepository interface {
	Create(authorID uint, text string, pubDate int64) (*models.Message, error)
	Delete(messageID, actorID uint) error
	ByID(messageID uint) (*models.Message, error)
	ByAuthor(authorID uint, limit int) ([]models.Message, error)
	Latest(limit int) ([]models.Message, error)
}

type FeedRepository interface {
	TopMessagesForUser(userID uint, limit int) ([]models.Message, error)
}
