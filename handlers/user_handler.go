package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"

	"warbler/dto"
	"warbler/monitoring"
	"warbler/repositories"
)

// UserHandler handles signup, login and account lifecycle endpoints
type UserHandler struct {
	Users repositories.UserRepository
	Store *sessions.CookieStore
}

func NewUserHandler(users repositories.UserRepository, store *sessions.CookieStore) *UserHandler {
	return &UserHandler{Users: users, Store: store}
}

// RegisterHandler creates a new account from form data
func (h *UserHandler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	email := strings.TrimSpace(r.FormValue("email"))
	password := r.FormValue("password")
	password2 := r.FormValue("password2")
	imageURL := r.FormValue("image_url")

	switch {
	case username == "":
		http.Error(w, "You have to enter a username", http.StatusBadRequest)
		return
	case email == "" || !strings.Contains(email, "@"):
		http.Error(w, "You have to enter a valid email address", http.StatusBadRequest)
		return
	case password == "":
		http.Error(w, "You have to enter a password", http.StatusBadRequest)
		return
	case password != password2:
		http.Error(w, "The two passwords do not match", http.StatusBadRequest)
		return
	}

	if _, err := h.Users.Signup(username, email, password, imageURL); err != nil {
		if errors.Is(err, repositories.ErrValidation) {
			// The store rejects on either unique index; check which one
			// collided so the caller gets a usable message.
			if existing, lookupErr := h.Users.ByUsername(username); lookupErr == nil && existing != nil {
				http.Error(w, "The username is already taken", http.StatusBadRequest)
				return
			}
			http.Error(w, "The email address is already taken", http.StatusBadRequest)
			return
		}
		logrus.Errorf("Failed to create user: %v", err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	monitoring.RegisterSuccess.Inc()
	http.Redirect(w, r, "/login", http.StatusFound)
}

// LoginHandler verifies credentials and starts a session
func (h *UserHandler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	if username == "" {
		http.Error(w, "You have to enter a username", http.StatusBadRequest)
		return
	}
	if password == "" {
		http.Error(w, "You have to enter a password", http.StatusBadRequest)
		return
	}

	user, err := h.Users.Authenticate(username, password)
	if err != nil {
		logrus.Errorf("Failed to authenticate %q: %v", username, err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if user == nil {
		monitoring.LoginFailure.WithLabelValues("bad credentials").Inc()
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	session, _ := h.Store.Get(r, SessionName)
	session.Values[sessionUserKey] = user.ID
	if err := session.Save(r, w); err != nil {
		logrus.Errorf("Failed to save session: %v", err)
		http.Error(w, "Session error", http.StatusInternalServerError)
		return
	}

	monitoring.LoginSuccess.Inc()
	http.Redirect(w, r, "/", http.StatusFound)
}

// LogoutHandler ends the current session
func (h *UserHandler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	session, _ := h.Store.Get(r, SessionName)
	session.Options.MaxAge = -1
	if err := session.Save(r, w); err != nil {
		logrus.Errorf("Failed to clear session: %v", err)
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

// UpdateProfileHandler changes the current user's email and profile image
func (h *UserHandler) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireLogin(h.Store, w, r)
	if !ok {
		return
	}

	user, err := h.Users.UpdateProfile(userID, r.FormValue("email"), r.FormValue("image_url"))
	if err != nil {
		if errors.Is(err, repositories.ErrValidation) {
			http.Error(w, "The email address is already taken", http.StatusBadRequest)
			return
		}
		logrus.Errorf("Failed to update profile for user %d: %v", userID, err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewUserDTO(*user))
}

// DeleteAccountHandler removes the current user's account. The password is
// re-checked so a stolen session cookie alone cannot destroy the account.
func (h *UserHandler) DeleteAccountHandler(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireLogin(h.Store, w, r)
	if !ok {
		return
	}

	user, err := h.Users.ByID(userID)
	if err != nil || user == nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	verified, err := h.Users.Authenticate(user.Username, r.FormValue("password"))
	if err != nil {
		logrus.Errorf("Failed to verify password for user %d: %v", userID, err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if verified == nil {
		http.Error(w, "Incorrect password", http.StatusBadRequest)
		return
	}

	if err := h.Users.Delete(userID); err != nil {
		logrus.Errorf("Failed to delete user %d: %v", userID, err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	session, _ := h.Store.Get(r, SessionName)
	session.Options.MaxAge = -1
	session.Save(r, w)

	http.Redirect(w, r, "/", http.StatusFound)
}
