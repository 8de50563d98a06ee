package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"

	"warbler/dto"
	"warbler/monitoring"
	"warbler/repositories"
)

// MessageHandler handles message and timeline endpoints
type MessageHandler struct {
	Messages repositories.MessageRepository
	Feed     repositories.FeedRepository
	Users    repositories.UserRepository
	Store    *sessions.CookieStore
}

func NewMessageHandler(messages repositories.MessageRepository, feed repositories.FeedRepository, users repositories.UserRepository, store *sessions.CookieStore) *MessageHandler {
	return &MessageHandler{Messages: messages, Feed: feed, Users: users, Store: store}
}

// limitParam reads the ?no= query parameter, falling back to the
// repository-wide default page size.
func limitParam(r *http.Request) int {
	noMsgs := repositories.DefaultFeedLimit
	if noMsgsStr := r.URL.Query().Get("no"); noMsgsStr != "" {
		if num, err := strconv.Atoi(noMsgsStr); err == nil {
			noMsgs = num
		}
	}
	return noMsgs
}

// HomeTimeline serves the logged-in user's feed: their own messages plus
// messages from everyone they follow, newest first.
func (h *MessageHandler) HomeTimeline(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireLogin(h.Store, w, r)
	if !ok {
		return
	}

	messages, err := h.Feed.TopMessagesForUser(userID, limitParam(r))
	if err != nil {
		logrus.Errorf("Failed to compose feed for user %d: %v", userID, err)
		http.Error(w, "Error fetching messages", http.StatusInternalServerError)
		return
	}

	monitoring.FeedRequests.Inc()
	writeJSON(w, http.StatusOK, dto.NewMessageDTOs(messages))
}

// PublicTimeline serves the latest messages from all users.
func (h *MessageHandler) PublicTimeline(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Messages.Latest(limitParam(r))
	if err != nil {
		logrus.Errorf("Failed to fetch public timeline: %v", err)
		http.Error(w, "Error fetching messages", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewMessageDTOs(messages))
}

// AddMessage posts a new message owned by the logged-in user.
func (h *MessageHandler) AddMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireLogin(h.Store, w, r)
	if !ok {
		return
	}

	if _, err := h.Messages.Create(userID, r.FormValue("text"), time.Now().Unix()); err != nil {
		if errors.Is(err, repositories.ErrValidation) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		logrus.Errorf("Failed to post message for user %d: %v", userID, err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	monitoring.MessagesPosted.Inc()
	http.Redirect(w, r, "/", http.StatusFound)
}

// DeleteMessage removes a message. Only the owner may delete it.
func (h *MessageHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireLogin(h.Store, w, r)
	if !ok {
		return
	}

	messageID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid message ID", http.StatusBadRequest)
		return
	}

	err = h.Messages.Delete(uint(messageID), userID)
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		http.Error(w, "Message not found", http.StatusNotFound)
		return
	case errors.Is(err, repositories.ErrUnauthorized):
		http.Error(w, "Access unauthorized", http.StatusUnauthorized)
		return
	case err != nil:
		logrus.Errorf("Failed to delete message %d: %v", messageID, err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	monitoring.MessagesDeleted.Inc()
	http.Redirect(w, r, "/", http.StatusFound)
}

// ShowMessage serves a single message by id.
func (h *MessageHandler) ShowMessage(w http.ResponseWriter, r *http.Request) {
	messageID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid message ID", http.StatusBadRequest)
		return
	}

	message, err := h.Messages.ByID(uint(messageID))
	if err != nil {
		logrus.Errorf("Failed to fetch message %d: %v", messageID, err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if message == nil {
		http.Error(w, "Message not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewMessageDTO(*message))
}

// MessagesPerUser serves one user's messages, newest first.
func (h *MessageHandler) MessagesPerUser(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	user, err := h.Users.ByUsername(username)
	if err != nil {
		logrus.Errorf("Failed to look up user %q: %v", username, err)
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}
	if user == nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	messages, err := h.Messages.ByAuthor(user.ID, limitParam(r))
	if err != nil {
		logrus.Errorf("Failed to fetch messages for user %q: %v", username, err)
		http.Error(w, "Error fetching messages", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, dto.NewMessageDTOs(messages))
}
