package routes

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"warbler/handlers"
	"warbler/monitoring"
)

// SetupRoutes initializes all the application routes
// The routing logic is isolated here
func SetupRoutes(userHandler *handlers.UserHandler, messageHandler *handlers.MessageHandler, followHandler *handlers.FollowHandler) http.Handler {
	router := mux.NewRouter()

	// User routes
	router.HandleFunc("/register", userHandler.RegisterHandler).Methods("POST")
	router.HandleFunc("/login", userHandler.LoginHandler).Methods("POST")
	router.HandleFunc("/logout", userHandler.LogoutHandler).Methods("GET")
	router.HandleFunc("/profile", userHandler.UpdateProfileHandler).Methods("POST")
	router.HandleFunc("/account/delete", userHandler.DeleteAccountHandler).Methods("POST")

	// Timeline routes
	router.HandleFunc("/", messageHandler.HomeTimeline).Methods("GET")
	router.HandleFunc("/public", messageHandler.PublicTimeline).Methods("GET")

	// Message routes
	router.HandleFunc("/add_message", messageHandler.AddMessage).Methods("POST")
	router.HandleFunc("/messages/{id}", messageHandler.ShowMessage).Methods("GET")
	router.HandleFunc("/messages/{id}/delete", messageHandler.DeleteMessage).Methods("POST")
	router.HandleFunc("/msgs/{username}", messageHandler.MessagesPerUser).Methods("GET")

	// Follow routes
	router.HandleFunc("/users/{username}/follow", followHandler.FollowUser).Methods("POST")
	router.HandleFunc("/users/{username}/unfollow", followHandler.UnfollowUser).Methods("POST")
	router.HandleFunc("/users/{username}/followers", followHandler.Followers).Methods("GET")
	router.HandleFunc("/users/{username}/following", followHandler.Following).Methods("GET")

	// Add metrics endpoint
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	return monitoring.InstrumentHandler(router)
}
