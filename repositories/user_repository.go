package repositories

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"warbler/models"
)

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Signup hashes the password and creates the user. Uniqueness of username
// and email is enforced by the store's unique indexes, so concurrent
// signups cannot both succeed.
func (r *userRepository) Signup(username, email, password, imageURL string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Email:    email,
		PwHash:   string(hash),
		ImageURL: imageURL,
	}

	if err := r.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: username or email already taken", ErrValidation)
		}
		return nil, err
	}

	return &user, nil
}

// Authenticate returns the user only when the supplied password matches the
// stored hash. Unknown usernames and wrong passwords both yield (nil, nil)
// rather than an error.
func (r *userRepository) Authenticate(username, password string) (*models.User, error) {
	user, err := r.ByUsername(username)
	if err != nil || user == nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PwHash), []byte(password)) != nil {
		return nil, nil
	}

	return user, nil
}

func (r *userRepository) ByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile changes the mutable parts of a user record. An empty email
// leaves the stored email untouched.
func (r *userRepository) UpdateProfile(userID uint, email, imageURL string) (*models.User, error) {
	user, err := r.ByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	updates := map[string]interface{}{"image_url": imageURL}
	if email = strings.ToLower(strings.TrimSpace(email)); email != "" {
		updates["email"] = email
	}

	if err := r.db.Model(user).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: email already taken", ErrValidation)
		}
		return nil, err
	}

	return r.ByID(userID)
}

// Delete removes the user together with their messages and every follow
// edge touching them. The cascade runs in one transaction so a failure
// leaves the account fully intact.
func (r *userRepository) Delete(userID uint) error {
	user, err := r.ByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("follower_id = ? OR followed_id = ?", userID, userID).
			Delete(&models.Follow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("author_id = ?", userID).
			Delete(&models.Message{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}
