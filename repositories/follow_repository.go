package repositories

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"warbler/models"
)

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Follow inserts the edge follower -> followed. Following yourself is
// rejected, and a second follow of the same user is an error rather than
// a silent no-op.
func (r *followRepository) Follow(followerID, followedID uint) error {
	if followerID == followedID {
		return fmt.Errorf("%w: cannot follow yourself", ErrValidation)
	}

	var count int64
	if err := r.db.Model(&models.User{}).
		Where("user_id IN ?", []uint{followerID, followedID}).
		Count(&count).Error; err != nil {
		return err
	}
	if count != 2 {
		return fmt.Errorf("%w: user %d or %d", ErrNotFound, followerID, followedID)
	}

	edge := models.Follow{FollowerID: followerID, FollowedID: followedID}
	if err := r.db.Create(&edge).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("%w: %d -> %d", ErrDuplicateEdge, followerID, followedID)
		}
		return err
	}

	return nil
}

// Unfollow removes the edge if present.
func (r *followRepository) Unfollow(followerID, followedID uint) error {
	res := r.db.Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: no edge %d -> %d", ErrNotFound, followerID, followedID)
	}
	return nil
}

func (r *followRepository) IsFollowing(followerID, followedID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followed_id = ?", followerID, followedID).
		Count(&count).Error
	return count > 0, err
}

// IsFollowedBy is the inverse query: true iff followerID follows userID.
func (r *followRepository) IsFollowedBy(userID, followerID uint) (bool, error) {
	return r.IsFollowing(followerID, userID)
}

// FollowersOf returns the users following the given user.
func (r *followRepository) FollowersOf(userID uint) ([]models.User, error) {
	var followers []models.User
	err := r.db.Model(&models.User{}).
		Joins("INNER JOIN follows ON follows.follower_id = users.user_id").
		Where("follows.followed_id = ?", userID).
		Find(&followers).Error
	return followers, err
}

// FollowingOf returns the users the given user follows.
func (r *followRepository) FollowingOf(userID uint) ([]models.User, error) {
	var following []models.User
	err := r.db.Model(&models.User{}).
		Joins("INNER JOIN follows ON follows.followed_id = users.user_id").
		Where("follows.follower_id = ?", userID).
		Find(&following).Error
	return following, err
}
