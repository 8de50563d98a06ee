package handlers

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"

	"warbler/dto"
	"warbler/models"
	"warbler/monitoring"
	"warbler/repositories"
)

// FollowHandler handles follow graph endpoints
type FollowHandler struct {
	Follows repositories.FollowRepository
	Users   repositories.UserRepository
	Store   *sessions.CookieStore
}

func NewFollowHandler(follows repositories.FollowRepository, users repositories.UserRepository, store *sessions.CookieStore) *FollowHandler {
	return &FollowHandler{Follows: follows, Users: users, Store: store}
}

// targetUser resolves the {username} route variable to a user, writing the
// error response itself when the user is missing.
func (h *FollowHandler) targetUser(w http.ResponseWriter, r *http.Request) (*models.User, bool) {
	username := mux.Vars(r)["username"]

	user, err := h.Users.ByUsername(username)
	if err != nil {
		logrus.Errorf("Failed to look up user %q: %v", username, err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return nil, false
	}
	if user == nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return nil, false
	}
	return user, true
}

// FollowUser creates a follow edge from the logged-in user to {username}.
func (h *FollowHandler) FollowUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireLogin(h.Store, w, r)
	if !ok {
		return
	}

	target, ok := h.targetUser(w, r)
	if !ok {
		return
	}

	err := h.Follows.Follow(userID, target.ID)
	switch {
	case errors.Is(err, repositories.ErrDuplicateEdge):
		http.Error(w, "Already following that user", http.StatusBadRequest)
		return
	case errors.Is(err, repositories.ErrValidation):
		http.Error(w, "You cannot follow yourself", http.StatusBadRequest)
		return
	case errors.Is(err, repositories.ErrNotFound):
		http.Error(w, "User not found", http.StatusNotFound)
		return
	case err != nil:
		logrus.Errorf("Failed to follow %d -> %d: %v", userID, target.ID, err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	monitoring.FollowsCreated.Inc()
	w.WriteHeader(http.StatusNoContent)
}

// UnfollowUser removes the follow edge from the logged-in user to {username}.
func (h *FollowHandler) UnfollowUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireLogin(h.Store, w, r)
	if !ok {
		return
	}

	target, ok := h.targetUser(w, r)
	if !ok {
		return
	}

	err := h.Follows.Unfollow(userID, target.ID)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		http.Error(w, "You are not following that user", http.StatusNotFound)
		return
	case err != nil:
		logrus.Errorf("Failed to unfollow %d -> %d: %v", userID, target.ID, err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Followers lists the users following {username}.
func (h *FollowHandler) Followers(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireLogin(h.Store, w, r); !ok {
		return
	}

	target, ok := h.targetUser(w, r)
	if !ok {
		return
	}

	followers, err := h.Follows.FollowersOf(target.ID)
	if err != nil {
		logrus.Errorf("Failed to fetch followers of %d: %v", target.ID, err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"followers": dto.NewUserDTOs(followers)})
}

// Following lists the users {username} follows.
func (h *FollowHandler) Following(w http.ResponseWriter, r *http.Request) {
	if _, ok := requireLogin(h.Store, w, r); !ok {
		return
	}

	target, ok := h.targetUser(w, r)
	if !ok {
		return
	}

	following, err := h.Follows.FollowingOf(target.ID)
	if err != nil {
		logrus.Errorf("Failed to fetch following of %d: %v", target.ID, err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"following": dto.NewUserDTOs(following)})
}
