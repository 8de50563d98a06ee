package handlers

import (
	"encoding/json"
	"net/http"
	"os"

	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"
)

// SessionName is the cookie holding the logged-in user's session.
const SessionName = "session"

const sessionUserKey = "user_id"

// NewSessionStore builds the cookie store backing session auth. The key
// comes from SESSION_KEY; the fallback keeps local development and tests
// working without configuration.
func NewSessionStore() *sessions.CookieStore {
	key := os.Getenv("SESSION_KEY")
	if key == "" {
		key = "development-key"
	}
	return sessions.NewCookieStore([]byte(key))
}

// currentUserID extracts the logged-in user's id from the request session.
func currentUserID(store *sessions.CookieStore, r *http.Request) (uint, bool) {
	session, err := store.Get(r, SessionName)
	if err != nil {
		return 0, false
	}
	raw, ok := session.Values[sessionUserKey]
	if !ok {
		return 0, false
	}
	id, ok := raw.(uint)
	return id, ok
}

// requireLogin resolves the current user or redirects to the login page.
func requireLogin(store *sessions.CookieStore, w http.ResponseWriter, r *http.Request) (uint, bool) {
	userID, ok := currentUserID(store, r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return 0, false
	}
	return userID, true
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorf("Failed to encode response: %v", err)
	}
}
