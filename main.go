package main

import (
	"net/http"
	"os"

	"github.com/sirupsen/logrus"

	"warbler/database"
	"warbler/handlers"
	"warbler/logger"
	"warbler/repositories"
	"warbler/routes"
)

func main() {
	logger.Init()

	db, err := database.Connect()
	if err != nil {
		logrus.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}

	userRepo := repositories.NewUserRepository(db)
	followRepo := repositories.NewFollowRepository(db)
	messageRepo := repositories.NewMessageRepository(db)
	feedRepo := repositories.NewFeedRepository(db)

	store := handlers.NewSessionStore()

	userHandler := handlers.NewUserHandler(userRepo, store)
	messageHandler := handlers.NewMessageHandler(messageRepo, feedRepo, userRepo, store)
	followHandler := handlers.NewFollowHandler(followRepo, userRepo, store)

	router := routes.SetupRoutes(userHandler, messageHandler, followHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	logrus.Infof("Server started on port %s", port)
	logrus.Fatal(http.ListenAndServe(":"+port, router))
}
